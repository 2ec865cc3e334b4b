package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = &Error{Message: "fetching %s failed"}

func TestFmtMatchesSentinel(t *testing.T) {
	err := errSample.Fmt("roster")

	assert.Equal(t, "fetching roster failed", err.Error())
	assert.ErrorIs(t, err, errSample)
}

func TestWrapKeepsCause(t *testing.T) {
	err := errSample.Fmt("punches").Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "fetching punches failed: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, errSample)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDistinctSentinels(t *testing.T) {
	other := &Error{Message: "fetching %s failed"}

	assert.False(t, errors.Is(errSample.Fmt("x"), other))
}
