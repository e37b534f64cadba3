package clock

import "time"

// ISOLayout matches the millisecond ISO-8601 instants written by the storefront.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// ISO formats t in UTC with millisecond precision.
func ISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}
