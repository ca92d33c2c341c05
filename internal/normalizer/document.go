package normalizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Object is a JSON object that remembers the order its members appeared in.
// Question files are hand-curated and diff-reviewed, so rewriting them must
// not shuffle keys or drop fields the normalizer does not know about.
type Object struct {
	keys   []string
	values map[string]any
}

// ParseObject decodes a JSON document whose top level is an object. Numbers
// are kept as json.Number so integer literals survive the round trip.
func ParseObject(data []byte) (*Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse question document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("parse question document: top level is not an object")
	}

	obj, err := decodeObject(dec)
	if err != nil {
		return nil, fmt.Errorf("parse question document: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("parse question document: trailing content after object")
	}
	return obj, nil
}

// decodeObject consumes members until the closing brace. The opening brace
// has already been read.
func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := &Object{values: map[string]any{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", keyTok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			var items []any
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			// Consume the closing ']'.
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			if items == nil {
				items = []any{}
			}
			return items, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	default:
		// string, json.Number, bool or nil.
		return tok, nil
	}
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	value, ok := o.values[key]
	return value, ok
}

// GetObject returns the nested object under key, or nil when the member is
// absent or not an object.
func (o *Object) GetObject(key string) *Object {
	value, ok := o.values[key]
	if !ok {
		return nil
	}
	nested, _ := value.(*Object)
	return nested
}

// GetString returns the string under key and whether it was present as a string.
func (o *Object) GetString(key string) (string, bool) {
	value, ok := o.values[key]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// GetArray returns the array under key, or nil when absent or not an array.
func (o *Object) GetArray(key string) []any {
	value, ok := o.values[key]
	if !ok {
		return nil
	}
	items, _ := value.([]any)
	return items
}

// Set stores value under key, keeping the member's original position when the
// key already exists and appending otherwise.
func (o *Object) Set(key string, value any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Keys returns the member names in document order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// MarshalJSON renders the object compactly in document order without HTML
// escaping. Callers wanting indentation run the result through an encoder
// with SetIndent, which re-formats nested output.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeValue(&buf, o.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, value any) error {
	switch v := value.(type) {
	case *Object:
		data, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	case []any:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		var scratch bytes.Buffer
		enc := json.NewEncoder(&scratch)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return err
		}
		buf.Write(bytes.TrimRight(scratch.Bytes(), "\n"))
		return nil
	}
}
