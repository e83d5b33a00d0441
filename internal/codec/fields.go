package codec

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Wire layouts.
const (
	// DateLayout is the calendar-day form used for FoodEntry.date.
	DateLayout = "2006-01-02"
	// TimestampLayout is the canonical timestamp form: ISO-8601, UTC,
	// nanosecond fraction always present.
	TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// timestampParser tries to read an instant from one wire representation.
type timestampParser func(v gjson.Result) (time.Time, bool)

// timestampParsers are attempted in order; the first success wins.
var timestampParsers = []timestampParser{
	parseISOFractional,
	parseISOPlain,
	parseNativeTime,
}

// numberParser tries to read a float from one wire representation.
type numberParser func(v gjson.Result) (float64, bool)

var numberParsers = []numberParser{
	parseNativeNumber,
	parseNumericString,
}

func parseISOFractional(v gjson.Result) (time.Time, bool) {
	if v.Type != gjson.String || !hasFractionalSeconds(v.Str) {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, v.Str)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func parseISOPlain(v gjson.Result) (time.Time, bool) {
	if v.Type != gjson.String || hasFractionalSeconds(v.Str) {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v.Str)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// parseNativeTime accepts a JSON number as Unix seconds.
func parseNativeTime(v gjson.Result) (time.Time, bool) {
	if v.Type != gjson.Number {
		return time.Time{}, false
	}
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}
	sec := math.Floor(f)
	nsec := math.Round((f - sec) * 1e9)
	return time.Unix(int64(sec), int64(nsec)).UTC(), true
}

func hasFractionalSeconds(s string) bool {
	// 2006-01-02T15:04:05 is 19 bytes; a fraction starts right after.
	return len(s) > 20 && s[19] == '.'
}

func parseNativeNumber(v gjson.Result) (float64, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	return v.Float(), true
}

func parseNumericString(v gjson.Result) (float64, bool) {
	if v.Type != gjson.String {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseTimestamp reads a timestamp using every accepted representation.
func ParseTimestamp(v gjson.Result) (time.Time, bool) {
	for _, parse := range timestampParsers {
		if t, ok := parse(v); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDate reads a YYYY-MM-DD string as midnight UTC.
func ParseDate(s string) (time.Time, bool) {
	if len(s) != len(DateLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders the UTC calendar day of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatTimestamp renders t in the canonical timestamp form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// TruncateToDate returns midnight UTC of t's UTC calendar day.
func TruncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func parseNumber(v gjson.Result) (float64, bool) {
	for _, parse := range numberParsers {
		if f, ok := parse(v); ok {
			return f, true
		}
	}
	return 0, false
}

func decodeTimestamp(obj gjson.Result, field string) (time.Time, error) {
	v := obj.Get(field)
	if t, ok := ParseTimestamp(v); ok {
		return t, nil
	}
	return time.Time{}, malformed(field, v.Raw)
}

func decodeOptionalTimestamp(obj gjson.Result, field string) *time.Time {
	v := obj.Get(field)
	if v.Type == gjson.String {
		if t, ok := ParseDate(v.Str); ok {
			return &t
		}
	}
	if t, ok := ParseTimestamp(v); ok {
		return &t
	}
	return nil
}

func decodeDate(obj gjson.Result, field string) (time.Time, error) {
	v := obj.Get(field)
	if v.Type == gjson.String {
		if t, ok := ParseDate(v.Str); ok {
			return t, nil
		}
	}
	return time.Time{}, malformed(field, v.Raw)
}

func decodeNumber(obj gjson.Result, field string) (float64, error) {
	v := obj.Get(field)
	if f, ok := parseNumber(v); ok {
		return f, nil
	}
	return 0, malformed(field, v.Raw)
}

// decodeOptionalNumber yields nil when the field is absent or unparseable.
func decodeOptionalNumber(obj gjson.Result, field string) *float64 {
	if f, ok := parseNumber(obj.Get(field)); ok {
		return &f
	}
	return nil
}

func decodeInt(obj gjson.Result, field string) (int, error) {
	v := obj.Get(field)
	f, ok := parseNumber(v)
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, malformed(field, v.Raw)
	}
	return int(f), nil
}

func decodeOptionalInt(obj gjson.Result, field string) *int {
	f, ok := parseNumber(obj.Get(field))
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return nil
	}
	n := int(f)
	return &n
}

// decodeBool defaults to false when absent or not a boolean.
func decodeBool(obj gjson.Result, field string) bool {
	v := obj.Get(field)
	return v.Type == gjson.True
}

func decodeString(obj gjson.Result, field string) (string, error) {
	v := obj.Get(field)
	if v.Type != gjson.String {
		return "", malformed(field, v.Raw)
	}
	return v.Str, nil
}

func decodeOptionalString(obj gjson.Result, field string) *string {
	v := obj.Get(field)
	if v.Type != gjson.String {
		return nil
	}
	s := v.Str
	return &s
}

// parseObject validates data and returns it as a JSON object.
func parseObject(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, ErrMalformedRecord
	}
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return gjson.Result{}, ErrMalformedRecord
	}
	return obj, nil
}

// parseArray validates data and returns it as a JSON array.
func parseArray(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, ErrMalformedRecord
	}
	arr := gjson.ParseBytes(data)
	if !arr.IsArray() {
		return gjson.Result{}, ErrMalformedRecord
	}
	return arr, nil
}

func formatOptionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}
