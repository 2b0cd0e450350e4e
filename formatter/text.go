package formatter

import (
	"encoding"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// AppendField appends " key=value" to dst
func AppendField(dst []byte, key string, value interface{}) []byte {
	dst = append(dst, ' ')
	dst = appendString(dst, key)
	dst = append(dst, '=')
	return AppendValue(dst, value)
}

// AppendValue appends the text form of v. Strings that would break the
// line apart or are ambiguous are quoted.
func AppendValue(dst []byte, v interface{}) []byte {
	switch v := v.(type) {
	case nil:
		return append(dst, "<nil>"...)
	case string:
		return appendString(dst, v)
	case []byte:
		return appendString(dst, string(v))
	case bool:
		return strconv.AppendBool(dst, v)
	case int:
		return strconv.AppendInt(dst, int64(v), 10)
	case int8:
		return strconv.AppendInt(dst, int64(v), 10)
	case int16:
		return strconv.AppendInt(dst, int64(v), 10)
	case int32:
		return strconv.AppendInt(dst, int64(v), 10)
	case int64:
		return strconv.AppendInt(dst, v, 10)
	case uint:
		return strconv.AppendUint(dst, uint64(v), 10)
	case uint8:
		return strconv.AppendUint(dst, uint64(v), 10)
	case uint16:
		return strconv.AppendUint(dst, uint64(v), 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(v), 10)
	case uint64:
		return strconv.AppendUint(dst, v, 10)
	case uintptr:
		return strconv.AppendUint(dst, uint64(v), 10)
	case float32:
		return strconv.AppendFloat(dst, float64(v), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, v, 'f', -1, 64)
	case time.Time:
		return v.AppendFormat(dst, time.RFC3339)
	case time.Duration:
		return append(dst, v.String()...)
	case error:
		return appendString(dst, v.Error())
	case fmt.Stringer:
		return appendString(dst, v.String())
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return appendString(dst, err.Error())
		}
		return appendString(dst, string(text))
	default:
		return appendString(dst, fmt.Sprint(v))
	}
}

// appendString appends s, quoted when it is empty or contains spaces,
// quotes, '=', control characters or invalid UTF-8
func appendString(dst []byte, s string) []byte {
	if needsQuoting(s) {
		return strconv.AppendQuote(dst, s)
	}
	return append(dst, s...)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c <= ' ' || c == '"' || c == '=' || c == 0x7f {
				return true
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return true
		}
		i += size
	}
	return false
}
