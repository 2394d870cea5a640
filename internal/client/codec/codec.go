package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Marshal encodes v as JSON with snake_case object keys.
func Marshal(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}

	tree, err := parseTree(raw)
	if err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}

	out, err := json.Marshal(rewriteKeys(tree, SnakeCase))
	if err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	return out, nil
}

// Unmarshal decodes snake_case JSON into v, which must be a non-nil pointer.
//
// Unknown fields are ignored. Date failures surface as *DateError and
// missing required fields as *MissingFieldError; other failures are the
// underlying encoding/json errors.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("codec: decode target must be a non-nil pointer, got %T", v)
	}

	tree, err := parseTree(data)
	if err != nil {
		return err
	}
	tree = rewriteKeys(tree, CamelCase)

	converted, err := json.Marshal(tree)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(converted, v); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Type == timestampType {
			return &DateError{Value: ute.Value, Field: ute.Field}
		}
		return err
	}

	target := rv.Type().Elem()
	if tree == nil {
		if nullable(target) {
			return nil
		}
		return &MissingFieldError{}
	}
	return checkRequired(target, tree, "")
}

// parseTree decodes data into generic JSON values, keeping numbers exact.
func parseTree(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("codec: trailing data after JSON document")
	}
	return tree, nil
}

var (
	unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	timeType        = reflect.TypeOf(time.Time{})
)

func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	}
	return false
}

// opaque types decode themselves and are not descended into.
func opaque(t reflect.Type) bool {
	return t == timeType || reflect.PointerTo(t).Implements(unmarshalerType)
}

// checkRequired walks t alongside the decoded tree and reports the first
// required field that is absent or null.
func checkRequired(t reflect.Type, node any, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if node == nil || opaque(t) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		return checkFields(t, obj, path)

	case reflect.Slice, reflect.Array:
		items, ok := node.([]any)
		if !ok {
			return nil
		}
		for i, item := range items {
			if err := checkRequired(t.Elem(), item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkFields(t reflect.Type, obj map[string]any, path string) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}

		// Untagged embedded structs are flattened by encoding/json.
		if f.Anonymous && tag == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if err := checkFields(ft, obj, path); err != nil {
					return err
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fieldPath := name
		if path != "" {
			fieldPath = path + "." + name
		}

		value, present := obj[name]
		if !present || value == nil {
			if required(f.Type, opts) {
				return &MissingFieldError{Path: fieldPath}
			}
			continue
		}
		if err := checkRequired(f.Type, value, fieldPath); err != nil {
			return err
		}
	}
	return nil
}

func required(t reflect.Type, opts string) bool {
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return false
	}
	for _, o := range strings.Split(opts, ",") {
		if o == "omitempty" || o == "omitzero" {
			return false
		}
	}
	return true
}
