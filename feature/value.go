package feature

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the type of a discrete Value.
type Kind uint8

const (
	// KindInvalid is the Kind of the zero Value.
	KindInvalid Kind = iota
	// KindString is the Kind of values built with String.
	KindString
	// KindInt is the Kind of values built with Int.
	KindInt
	// KindBool is the Kind of values built with Bool.
	KindBool
)

var kindNames = map[Kind]string{
	KindString: "string",
	KindInt:    "int",
	KindBool:   "bool",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

/*
ParseKind takes the name of a kind ("string", "int" or "bool") and returns
the corresponding Kind or an error if the name is unknown.
*/
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown value kind %q", name)
}

/*
Value is a discrete value a feature or a class label can take on a record.

Values are comparable: two values are equal (==) when they have the same
kind and the same content, which allows using them as map keys.
*/
type Value struct {
	kind Kind
	s    string
	i    int64
	b    bool
}

// String returns a Value of KindString holding s.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Int returns a Value of KindInt holding i.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Bool returns a Value of KindBool holding b.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

/*
Parse takes a Kind and a raw string and returns the Value of that kind
represented by the string, or an error if the string cannot be parsed
as such.
*/
func Parse(k Kind, raw string) (Value, error) {
	switch k {
	case KindString:
		return String(raw), nil
	case KindInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parsing %q as int: %w", raw, err)
		}
		return Int(i), nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parsing %q as bool: %w", raw, err)
		}
		return Bool(b), nil
	}
	return Value{}, fmt.Errorf("cannot parse %q as %v", raw, k)
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Valid reports whether v was built with one of the constructors.
func (v Value) Valid() bool {
	_, ok := kindNames[v.kind]
	return ok
}

// Raw returns the value as a string, int64 or bool, or nil for an
// invalid value.
func (v Value) Raw() interface{} {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindBool:
		return v.b
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return "<invalid>"
}

type jsonValue struct {
	String *string `json:"string,omitempty"`
	Int    *int64  `json:"int,omitempty"`
	Bool   *bool   `json:"bool,omitempty"`
}

/*
MarshalJSON serializes the value as a JSON object with a single property
named after its kind, so the kind survives a round trip:
  * {"string":"yes"}
  * {"int":1}
  * {"bool":true}
*/
func (v Value) MarshalJSON() ([]byte, error) {
	jv := &jsonValue{}
	switch v.kind {
	case KindString:
		jv.String = &v.s
	case KindInt:
		jv.Int = &v.i
	case KindBool:
		jv.Bool = &v.b
	default:
		return nil, fmt.Errorf("cannot marshal invalid value")
	}
	return json.Marshal(jv)
}

/*
UnmarshalJSON takes a slice of bytes with a value serialized by MarshalJSON
and loads it. It fails unless exactly one kind property is present.
*/
func (v *Value) UnmarshalJSON(b []byte) error {
	jv := &jsonValue{}
	err := json.Unmarshal(b, jv)
	if err != nil {
		return err
	}
	var set int
	if jv.String != nil {
		*v = String(*jv.String)
		set++
	}
	if jv.Int != nil {
		*v = Int(*jv.Int)
		set++
	}
	if jv.Bool != nil {
		*v = Bool(*jv.Bool)
		set++
	}
	if set != 1 {
		return fmt.Errorf("value %s must have exactly one of string, int or bool", b)
	}
	return nil
}
