package attendance

import (
	"time"

	"github.com/ayoisaiah/pointage/internal/timeutil"
)

// Corrector turns raw device timestamps into instants comparable with a
// session window, adding a fixed offset for devices whose clock is skewed.
type Corrector struct {
	Now    func() time.Time
	Offset time.Duration
}

// Parse reads raw without applying the offset. On failure it returns the
// current time alongside an ErrTimestampParse error.
func (c Corrector) Parse(raw string, day time.Time) (time.Time, error) {
	t, err := timeutil.ParseTimestamp(raw, day)
	if err != nil {
		return c.now(), ErrTimestampParse.Fmt(raw).Wrap(err)
	}

	return t, nil
}

// Correct parses raw and applies the configured offset.
func (c Corrector) Correct(raw string, day time.Time) (time.Time, error) {
	t, err := c.Parse(raw, day)
	if err != nil {
		return t, err
	}

	return c.Apply(t), nil
}

// Apply adds the configured offset to an already parsed instant.
func (c Corrector) Apply(t time.Time) time.Time {
	return t.Add(c.Offset)
}

func (c Corrector) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}

	return time.Now()
}
