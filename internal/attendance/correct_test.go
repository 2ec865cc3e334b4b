package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectAppliesOffset(t *testing.T) {
	c := Corrector{Offset: 60 * time.Minute}

	got, err := c.Correct("2025-03-12 07:15:00", testDay)
	require.NoError(t, err)

	assert.Equal(t, at(8, 15), got)
}

func TestCorrectFailsSoft(t *testing.T) {
	now := at(9, 0)
	c := Corrector{Offset: time.Hour, Now: func() time.Time { return now }}

	got, err := c.Correct("??", testDay)

	assert.True(t, errors.Is(err, ErrTimestampParse))
	assert.Equal(t, now, got)
}
