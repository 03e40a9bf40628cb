// Package timeconv converts between signed epoch-millisecond timestamps
// and UTC calendar representations: time.Time values, RFC3339 strings
// with millisecond precision, and date-time strings with missing or
// ambiguous timezone information.
package timeconv

import "time"

// RFC3339 with exactly millisecond precision. "-07:00" renders UTC as a
// numeric "+00:00", "Z07:00" as a literal "Z".
const (
	millisOffsetLayout = "2006-01-02T15:04:05.000-07:00"
	millisZuluLayout   = "2006-01-02T15:04:05.000Z07:00"
)

// splitUnixMillis decomposes a signed millisecond count into whole
// seconds and a non-negative nanosecond remainder. Negative counts
// borrow from the second: -1ms is -1s + 999ms, not 0s - 1ms, so the
// remainder always measures forward from the whole second.
func splitUnixMillis(ms int64) (secs, nsecs int64) {
	secs = ms / 1000
	millis := ms % 1000
	if millis < 0 {
		secs--
		millis += 1000
	}
	return secs, millis * int64(time.Millisecond)
}

// UnixMillisToUTC converts a millisecond timestamp to a UTC time.Time.
func UnixMillisToUTC(ms int64) time.Time {
	secs, nsecs := splitUnixMillis(ms)
	return time.Unix(secs, nsecs).UTC()
}

// UTCToUnixMillis converts a time.Time to a millisecond timestamp,
// rounding the sub-millisecond remainder half-up. Because the
// nanosecond field is non-negative, this is floor((nanos+500µs)/1ms)
// over the whole value, which makes UnixMillisToUTC followed by
// UTCToUnixMillis an exact identity for negative timestamps too.
func UTCToUnixMillis(t time.Time) int64 {
	return t.Unix()*1000 + (int64(t.Nanosecond())+500_000)/int64(time.Millisecond)
}

// NowUnixMillis returns the current wall-clock UTC time as a
// millisecond timestamp, rounded half-up.
func NowUnixMillis() int64 {
	return UTCToUnixMillis(time.Now())
}

// UnixMillisToUTCString formats a millisecond timestamp as RFC3339 with
// millisecond precision and a numeric "+00:00" suffix.
func UnixMillisToUTCString(ms int64) string {
	return UnixMillisToUTC(ms).Format(millisOffsetLayout)
}

// UnixMillisToZuluString formats a millisecond timestamp as RFC3339
// with millisecond precision and a "Z" suffix.
func UnixMillisToZuluString(ms int64) string {
	return UnixMillisToUTC(ms).Format(millisZuluLayout)
}
