package core

import "time"

// TimestampLen is the size of a formatted timestamp block
const TimestampLen = 22

// Timestamp is a fixed-width "[YYYY-MM-DD HH:MM:SS] " block
type Timestamp [TimestampLen]byte

// Now returns the current time. Tests replace it to pin timestamps.
var Now = time.Now

// FormatTimestamp renders t into a timestamp block without allocating
func FormatTimestamp(t time.Time) Timestamp {
	var ts Timestamp
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	ts[0] = '['
	putDigits(ts[1:5], year)
	ts[5] = '-'
	putDigits(ts[6:8], int(month))
	ts[8] = '-'
	putDigits(ts[9:11], day)
	ts[11] = ' '
	putDigits(ts[12:14], hour)
	ts[14] = ':'
	putDigits(ts[15:17], minute)
	ts[17] = ':'
	putDigits(ts[18:20], second)
	ts[20] = ']'
	ts[21] = ' '
	return ts
}

// CurrentTimestamp formats Now()
func CurrentTimestamp() Timestamp {
	return FormatTimestamp(Now())
}

// String returns the block as text
func (ts Timestamp) String() string {
	return string(ts[:])
}

// putDigits writes the low len(dst) decimal digits of n, zero padded
func putDigits(dst []byte, n int) {
	if n < 0 {
		n = -n
	}
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte('0' + n%10)
		n /= 10
	}
}
