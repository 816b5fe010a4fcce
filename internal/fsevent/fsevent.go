// Package fsevent models the Firestore background-event envelope delivered
// to Cloud Functions. Field values arrive wrapped in typed variants
// (stringValue, mapValue, ...) and are unwrapped here with safe defaults so
// that malformed or missing fields never panic downstream.
package fsevent

import (
	"strconv"
	"strings"
	"time"
)

// Event is the payload of a Firestore document-create or document-update
// trigger. OldValue is zero for create events.
type Event struct {
	OldValue   Document   `json:"oldValue"`
	Value      Document   `json:"value"`
	UpdateMask UpdateMask `json:"updateMask"`
}

type UpdateMask struct {
	FieldPaths []string `json:"fieldPaths"`
}

// Document is one side of a change: the full resource name plus the wrapped
// field map.
type Document struct {
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
	Name       string    `json:"name"`
	Fields     Fields    `json:"fields"`
}

// Exists reports whether this side of the change carries a document.
func (d Document) Exists() bool {
	return d.Name != "" || len(d.Fields) > 0
}

// ID returns the document id, the last segment of the resource name.
func (d Document) ID() string {
	if d.Name == "" {
		return ""
	}
	segs := strings.Split(d.Name, "/")
	return segs[len(segs)-1]
}

// Param extracts the document id that follows the given collection segment
// in the resource name, e.g. Param("chats") on
// ".../documents/chats/c1/messages/m1" returns "c1".
func (d Document) Param(collection string) string {
	segs := strings.Split(d.Name, "/")
	for i := 0; i < len(segs)-1; i++ {
		if segs[i] == collection {
			return segs[i+1]
		}
	}
	return ""
}

type Fields map[string]Value

// Value is the union of Firestore's wrapped value variants.
type Value struct {
	StringValue    *string    `json:"stringValue,omitempty"`
	BooleanValue   *bool      `json:"booleanValue,omitempty"`
	IntegerValue   *string    `json:"integerValue,omitempty"`
	DoubleValue    *float64   `json:"doubleValue,omitempty"`
	TimestampValue *time.Time `json:"timestampValue,omitempty"`
	ReferenceValue *string    `json:"referenceValue,omitempty"`
	NullValue      *string    `json:"nullValue,omitempty"`
	ArrayValue     *Array     `json:"arrayValue,omitempty"`
	MapValue       *Map       `json:"mapValue,omitempty"`
}

type Array struct {
	Values []Value `json:"values"`
}

type Map struct {
	Fields Fields `json:"fields"`
}

// Str unwraps a string value, empty for anything else.
func (v Value) Str() string {
	if v.StringValue != nil {
		return *v.StringValue
	}
	return ""
}

// Bool unwraps a boolean value, false for anything else.
func (v Value) Bool() bool {
	return v.BooleanValue != nil && *v.BooleanValue
}

// Int unwraps an integer value. Firestore encodes integers as strings.
func (v Value) Int() int64 {
	if v.IntegerValue == nil {
		return 0
	}
	n, err := strconv.ParseInt(*v.IntegerValue, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Time unwraps a timestamp value; ok is false when absent.
func (v Value) Time() (time.Time, bool) {
	if v.TimestampValue == nil {
		return time.Time{}, false
	}
	return *v.TimestampValue, true
}

// List unwraps an array value, nil for anything else.
func (v Value) List() []Value {
	if v.ArrayValue == nil {
		return nil
	}
	return v.ArrayValue.Values
}

// Map unwraps a map value, nil for anything else.
func (v Value) Map() Fields {
	if v.MapValue == nil {
		return nil
	}
	return v.MapValue.Fields
}

func (f Fields) Str(key string) string { return f[key].Str() }

func (f Fields) Bool(key string) bool { return f[key].Bool() }

func (f Fields) Int(key string) int64 { return f[key].Int() }

func (f Fields) Time(key string) (time.Time, bool) { return f[key].Time() }

func (f Fields) List(key string) []Value { return f[key].List() }

func (f Fields) Map(key string) Fields { return f[key].Map() }

// StrOr unwraps a string field, falling back when absent or empty.
func (f Fields) StrOr(key, fallback string) string {
	if s := f.Str(key); s != "" {
		return s
	}
	return fallback
}
