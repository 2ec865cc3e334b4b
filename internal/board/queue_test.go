package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pointage/internal/models"
)

func event(id string) models.NotificationEvent {
	return models.NotificationEvent{
		Member: models.Member{ID: id},
		Kind:   models.NotifyNewAbsence,
		Status: models.StatusAbsent,
	}
}

func TestQueueIsFIFO(t *testing.T) {
	var q Queue

	q.Push(event("a"), event("b"))

	first, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, "a", first.Member.ID)
	assert.True(t, q.Showing())

	q.Push(event("c"))
	assert.Equal(t, 2, q.Len(), "push while showing appends")

	cur, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, "a", cur.Member.ID)

	var order []string

	for {
		ev, ok := q.Next()
		if !ok {
			break
		}

		order = append(order, ev.Member.ID)
	}

	assert.Equal(t, []string{"b", "c"}, order)
	assert.False(t, q.Showing())
}

func TestQueueClear(t *testing.T) {
	var q Queue

	q.Push(event("a"), event("b"))
	q.Next()
	q.Clear()

	assert.False(t, q.Showing())
	assert.Zero(t, q.Len())

	q.Push(event("c"))
	q.Next()
	q.Done()

	_, ok := q.Current()
	assert.False(t, ok)
}
