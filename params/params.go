// Package params holds the request parameter map shared by every service
// call: an insertion-ordered, string-keyed map of tagged values that knows how
// to travel as a query string, a JSON body, or multipart form fields.
package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidParam = errors.New("params: invalid parameter")

type Params struct {
	keys   []string
	values map[string]Value
}

func New() *Params {
	return &Params{
		keys:   []string{},
		values: map[string]Value{},
	}
}

// FromMap converts a dynamic map, for example decoded preferences or document
// data, into Params with sorted keys.
func FromMap(m map[string]any) (*Params, error) {
	if m == nil {
		return New(), nil
	}

	v, err := Of(m)
	if err != nil {
		return nil, err
	}

	return v.AsObject(), nil
}

// Set stores v under key, keeping the key's first insertion position. Setting
// a null value removes the key. The zero Params is ready to use; a nil
// *Params is read-only, so build one with New before calling Set.
func (p *Params) Set(key string, v Value) *Params {
	if v.IsNull() {
		p.Delete(key)

		return p
	}

	if p.values == nil {
		p.values = map[string]Value{}
	}

	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}

	p.values[key] = v

	return p
}

func (p *Params) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}

	delete(p.values, key)

	if idx := slices.Index(p.keys, key); idx >= 0 {
		p.keys = slices.Delete(p.keys, idx, idx+1)
	}
}

func (p *Params) Get(key string) (Value, bool) {
	if p == nil {
		return Null(), false
	}

	v, ok := p.values[key]

	return v, ok
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.keys)
}

func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}

	return slices.Clone(p.keys)
}

func (p *Params) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if p == nil {
			return
		}

		for _, key := range p.keys {
			if !yield(key, p.values[key]) {
				return
			}
		}
	}
}

// Encode renders the parameters as a query string. Scalars become key=value,
// list items become repeated key[]=value.
func (p *Params) Encode() (string, error) {
	parts := make([]string, 0, p.Len())

	for key, v := range p.All() {
		escapedKey := url.QueryEscape(key)

		if v.Kind() == KindList {
			for _, item := range v.Items() {
				text, err := item.Text()
				if err != nil {
					return "", fmt.Errorf("%s: %w", key, err)
				}

				parts = append(parts, escapedKey+"[]="+url.QueryEscape(text))
			}

			continue
		}

		text, err := v.Text()
		if err != nil {
			return "", fmt.Errorf("%s: %w", key, err)
		}

		parts = append(parts, escapedKey+"="+url.QueryEscape(text))
	}

	return strings.Join(parts, "&"), nil
}

type FormField struct {
	Name  string
	Value string
	File  *InputFile
}

// FormFields flattens the parameters into multipart parts. Files keep their
// key, list items are indexed as key[0], key[1], and everything else is sent
// as text.
func (p *Params) FormFields() ([]FormField, error) {
	fields := make([]FormField, 0, p.Len())

	for key, v := range p.All() {
		switch v.Kind() {
		case KindFile:
			fields = append(fields, FormField{Name: key, File: v.AsFile()})
		case KindList:
			for idx, item := range v.Items() {
				text, err := item.Text()
				if err != nil {
					return nil, fmt.Errorf("%s[%d]: %w", key, idx, err)
				}

				fields = append(fields, FormField{Name: key + "[" + strconv.Itoa(idx) + "]", Value: text})
			}
		default:
			text, err := v.Text()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}

			fields = append(fields, FormField{Name: key, Value: text})
		}
	}

	return fields, nil
}

// MarshalJSON writes the parameters as an object in insertion order with
// camelCase keys.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true

	for key, v := range p.All() {
		data, err := v.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		name, err := json.Marshal(CamelCase(key))
		if err != nil {
			return nil, err
		}

		if !first {
			buf.WriteByte(',')
		}

		first = false

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(data)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// CamelCase lowers the leading run of upper-case letters, leaving the last
// one of the run alone when it starts the next word: "ID" -> "id",
// "IDCard" -> "idCard", "UserName" -> "userName".
func CamelCase(s string) string {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return s
	}

	for i := range runes {
		if i == 1 && !unicode.IsUpper(runes[i]) {
			break
		}

		hasNext := i+1 < len(runes)
		if i > 0 && hasNext && !unicode.IsUpper(runes[i+1]) {
			if unicode.IsSpace(runes[i+1]) {
				runes[i] = unicode.ToLower(runes[i])
			}

			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}
