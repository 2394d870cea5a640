package codec

import (
	"encoding/json"
	"reflect"
	"time"
)

// Timestamp is a date-valued field. It encodes canonically and decodes
// through the fallback chain described in the package documentation.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, normalized to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

var timestampType = reflect.TypeOf(Timestamp{})

type dateLayout struct {
	layout string
	// loc is used for layouts without an offset. Those must match the
	// whole string, since time.Parse accepts fractional seconds after "05"
	// even when the layout has none.
	loc *time.Location
}

// dateLayouts is the decoding fallback chain, in priority order.
var dateLayouts = []dateLayout{
	{layout: "2006-01-02T15:04:05.999999999Z07:00"},
	{layout: time.RFC3339},
	{layout: "2006-01-02T15:04:05.000000", loc: time.UTC},
	{layout: "2006-01-02T15:04:05", loc: time.UTC},
}

// ParseTime parses s with the first layout of the chain that accepts the
// whole string. The result is in UTC.
func ParseTime(s string) (time.Time, error) {
	for _, l := range dateLayouts {
		var (
			t   time.Time
			err error
		)
		if l.loc != nil {
			if len(s) != len(l.layout) {
				continue
			}
			t, err = time.ParseInLocation(l.layout, s, l.loc)
		} else {
			t, err = time.Parse(l.layout, s)
		}
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &DateError{Value: s}
}

// FormatTime renders t in the canonical wire form.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatTime(t.Time))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: timestampType}
	}

	parsed, err := ParseTime(s)
	if err != nil {
		// UnmarshalTypeError lets encoding/json attach the field path.
		return &json.UnmarshalTypeError{Value: s, Type: timestampType}
	}
	t.Time = parsed
	return nil
}
