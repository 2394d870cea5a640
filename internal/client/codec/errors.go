package codec

import "fmt"

// DateError reports a date string that matched none of the accepted layouts.
type DateError struct {
	// Value is the offending string as received.
	Value string
	// Field is the dotted logical path of the field, when known.
	Field string
}

func (e *DateError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("codec: cannot parse date %q", e.Value)
	}
	return fmt.Sprintf("codec: cannot parse date %q in field %s", e.Value, e.Field)
}

// MissingFieldError reports a required field absent from (or null in) the payload.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	if e.Path == "" {
		return "codec: document is null"
	}
	return fmt.Sprintf("codec: required field %s is missing", e.Path)
}
