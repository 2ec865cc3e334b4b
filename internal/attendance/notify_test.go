package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pointage/internal/models"
)

func TestNewlyListedPolicy(t *testing.T) {
	e := Engine{View: ViewAbsent, Corrector: Corrector{Offset: time.Hour}}

	in := reconcileInput(t)
	first := e.Reconcile(in)

	assert.Empty(t, NewlyListed{}.Events(nil, &first, at(9, 0)), "first cycle is a baseline")

	// Omar has been added to the roster with no punch
	in.Members = append(in.Members, member("7", "Omar", "Alami", "M7"))
	second := e.Reconcile(in)

	events := NewlyListed{}.Events(&first, &second, at(9, 0))
	require.Len(t, events, 1)

	assert.Equal(t, "7", events[0].Member.ID)
	assert.Equal(t, models.NotifyNewAbsence, events[0].Kind)
	assert.Equal(t, models.StatusAbsent, events[0].Status)
}

func TestArrivalsPolicy(t *testing.T) {
	e := Engine{View: ViewAbsent, Corrector: Corrector{Offset: time.Hour}}

	in := reconcileInput(t)
	first := e.Reconcile(in)

	in.Punches = append(in.Punches, models.Punch{
		UserName:  "m2",
		Timestamp: "2025-03-12 07:20:00",
	})
	second := e.Reconcile(in)

	events := Arrivals{}.Events(&first, &second, at(9, 0))
	require.Len(t, events, 1)

	assert.Equal(t, "2", events[0].Member.ID)
	assert.Equal(t, models.NotifyArrival, events[0].Kind)
	assert.Equal(t, models.StatusPresent, events[0].Status)

	assert.Empty(t, NewlyListed{}.Events(&first, &second, at(9, 0)))
	assert.Empty(t, Silent{}.Events(&first, &second, at(9, 0)))
}

func TestParsePolicy(t *testing.T) {
	for _, name := range []string{"", PolicyNewlyListed, PolicyArrivals, PolicySilent} {
		p, err := ParsePolicy(name)
		require.NoError(t, err, name)
		assert.NotNil(t, p)
	}

	_, err := ParsePolicy("face-recognition")
	assert.Error(t, err)
}
