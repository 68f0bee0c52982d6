package uiutil

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/destinity/erp-ui/internal/domain/model"
)

// DateLayout is the display layout for calendar dates (dd/mm/yyyy).
const DateLayout = "02/01/2006"

// EmptyValue is rendered in place of missing values.
const EmptyValue = "-"

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// FormatDate renders v as dd/mm/yyyy in the local time zone.
// Missing and unparseable values render as "-".
func FormatDate(v any) string {
	return FormatDateIn(v, time.Local)
}

// FormatDateIn is FormatDate with an explicit location.
func FormatDateIn(v any, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, ok := ParseTimestamp(v, loc)
	if !ok {
		return EmptyValue
	}
	return t.In(loc).Format(DateLayout)
}

// ParseTimestamp converts a timestamp-like value into a time.
// Accepted forms: time.Time, *time.Time, epoch milliseconds (numbers,
// json.Number or digit strings), RFC 3339 strings, zone-less ISO
// date-times read in loc, bare dates, and Jackson [y, m, d, ...] arrays.
// Falsy values (nil, "", 0, false, zero time) report false.
func ParseTimestamp(v any, loc *time.Location) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case model.Timestamp:
		return ParseTimestamp(x.Interface(), loc)
	case *model.Timestamp:
		if x == nil {
			return time.Time{}, false
		}
		return ParseTimestamp(x.Interface(), loc)
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil || x.IsZero() {
			return time.Time{}, false
		}
		return *x, true
	case string:
		return parseString(x, loc)
	case json.Number:
		return parseString(x.String(), loc)
	case int:
		return fromMillis(float64(x))
	case int64:
		return fromMillis(float64(x))
	case float64:
		return fromMillis(x)
	case []any:
		return parseParts(x, loc)
	default:
		return time.Time{}, false
	}
}

func parseString(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		return fromMillis(ms)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}

	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, true
	}

	return time.Time{}, false
}

func fromMillis(ms float64) (time.Time, bool) {
	if ms == 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

// parseParts reads Jackson's array form of LocalDate/LocalDateTime.
func parseParts(parts []any, loc *time.Location) (time.Time, bool) {
	if len(parts) < 3 {
		return time.Time{}, false
	}

	nums := make([]int, 7)
	for i := 0; i < len(parts) && i < len(nums); i++ {
		n, ok := toInt(parts[i])
		if !ok {
			return time.Time{}, false
		}
		nums[i] = n
	}

	if nums[1] < 1 || nums[1] > 12 || nums[2] < 1 || nums[2] > 31 {
		return time.Time{}, false
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], nums[3], nums[4], nums[5], nums[6], loc), true
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case float64:
		return int(n), n == math.Trunc(n)
	case int:
		return n, true
	default:
		return 0, false
	}
}

// Initials returns the upper-cased first letters of first and last.
func Initials(first, last string) string {
	var b strings.Builder
	for _, s := range []string{first, last} {
		if r, _ := utf8.DecodeRuneInString(strings.TrimSpace(s)); r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// OrEmpty returns s, or "-" when s is blank.
func OrEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return EmptyValue
	}
	return s
}

// TruncateWithEllipsis shortens text to the provided rune limit and appends an ellipsis when truncated.
func TruncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
