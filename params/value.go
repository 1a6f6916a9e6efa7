package params

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"sort"
	"strconv"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindList
	KindObject
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Value is a single request parameter. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  int64
	real float64
	flag bool
	list []Value
	obj  *Params
	file *InputFile
}

func Null() Value {
	return Value{}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Int(n int) Value {
	return Value{kind: KindInt, num: int64(n)}
}

func Int64(n int64) Value {
	return Value{kind: KindInt, num: n}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, real: f}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

func List(items ...Value) Value {
	return Value{kind: KindList, list: slices.Clone(items)}
}

// Strings converts a string slice into a list. A nil slice is null so that
// unset optional lists are left out of the request.
func Strings(items []string) Value {
	if items == nil {
		return Null()
	}

	list := make([]Value, 0, len(items))
	for _, item := range items {
		list = append(list, String(item))
	}

	return Value{kind: KindList, list: list}
}

func Object(p *Params) Value {
	if p == nil {
		return Null()
	}

	return Value{kind: KindObject, obj: p}
}

func File(f *InputFile) Value {
	if f == nil {
		return Null()
	}

	return Value{kind: KindFile, file: f}
}

// Enum stores an enum-like value by its name.
func Enum(e fmt.Stringer) Value {
	return String(e.String())
}

func NonEmpty(s string) Value {
	if s == "" {
		return Null()
	}

	return String(s)
}

func NonZero(n int) Value {
	if n == 0 {
		return Null()
	}

	return Int(n)
}

// Flag keeps a boolean that defaults to false out of the request unless set.
func Flag(b bool) Value {
	if !b {
		return Null()
	}

	return Bool(true)
}

func BoolPtr(b *bool) Value {
	if b == nil {
		return Null()
	}

	return Bool(*b)
}

func IntPtr(n *int) Value {
	if n == nil {
		return Null()
	}

	return Int(*n)
}

func Int64Ptr(n *int64) Value {
	if n == nil {
		return Null()
	}

	return Int64(*n)
}

func FloatPtr(f *float64) Value {
	if f == nil {
		return Null()
	}

	return Float(*f)
}

// Of converts a dynamic Go value. Maps must be keyed by strings; their keys
// are sorted so the result does not depend on map iteration order.
func Of(v any) (Value, error) {
	switch typed := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return typed, nil
	case *Params:
		return Object(typed), nil
	case *InputFile:
		return File(typed), nil
	case string:
		return String(typed), nil
	case bool:
		return Bool(typed), nil
	case json.Number:
		if n, err := typed.Int64(); err == nil {
			return Int64(n), nil
		}

		f, err := typed.Float64()
		if err != nil {
			return Null(), fmt.Errorf("%w: %q is not a number", ErrInvalidParam, typed)
		}

		return Float(f), nil
	case fmt.Stringer:
		return Enum(typed), nil
	}

	return ofReflect(reflect.ValueOf(v))
}

func ofReflect(rv reflect.Value) (Value, error) {
	//nolint:exhaustive
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}

		return Of(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt64 {
			return Float(float64(n)), nil
		}

		return Int64(int64(n)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}

		items := make([]Value, 0, rv.Len())

		for i := range rv.Len() {
			item, err := Of(rv.Index(i).Interface())
			if err != nil {
				return Null(), err
			}

			items = append(items, item)
		}

		return Value{kind: KindList, list: items}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Null(), fmt.Errorf("%w: map key type %s is not a string", ErrInvalidParam, rv.Type().Key())
		}

		if rv.IsNil() {
			return Null(), nil
		}

		keys := make([]string, 0, rv.Len())
		for _, key := range rv.MapKeys() {
			keys = append(keys, key.String())
		}

		sort.Strings(keys)

		obj := New()

		for _, key := range keys {
			item, err := Of(rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return Null(), fmt.Errorf("%s: %w", key, err)
			}

			obj.Set(key, item)
		}

		return Object(obj), nil
	default:
		return Null(), fmt.Errorf("%w: unsupported type %s", ErrInvalidParam, rv.Type())
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) Items() []Value {
	return v.list
}

func (v Value) AsObject() *Params {
	return v.obj
}

func (v Value) AsFile() *InputFile {
	return v.file
}

// Text renders the value the way it travels in a query string or a
// multipart text part.
func (v Value) Text() (string, error) {
	switch v.kind {
	case KindNull:
		return "", nil
	case KindString:
		return v.str, nil
	case KindInt:
		return strconv.FormatInt(v.num, 10), nil
	case KindFloat:
		return strconv.FormatFloat(v.real, 'f', -1, 64), nil
	case KindBool:
		return strconv.FormatBool(v.flag), nil
	case KindList, KindObject:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}

		return string(data), nil
	case KindFile:
		return "", fmt.Errorf("%w: file %q has no text form", ErrInvalidParam, v.file.Name)
	default:
		return "", fmt.Errorf("%w: unknown kind %d", ErrInvalidParam, v.kind)
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindInt:
		return strconv.AppendInt(nil, v.num, 10), nil
	case KindFloat:
		return json.Marshal(v.real)
	case KindBool:
		return strconv.AppendBool(nil, v.flag), nil
	case KindList:
		buf := []byte{'['}

		for i, item := range v.list {
			if i > 0 {
				buf = append(buf, ',')
			}

			data, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}

			buf = append(buf, data...)
		}

		return append(buf, ']'), nil
	case KindObject:
		return v.obj.MarshalJSON()
	case KindFile:
		return nil, fmt.Errorf("%w: file %q cannot be sent as JSON", ErrInvalidParam, v.file.Name)
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidParam, v.kind)
	}
}
