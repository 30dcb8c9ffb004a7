// File: input.go
// Title: Input Resolution
// Description: Resolves the closed set of inputs accepted by Make, Append and
//              friends into plain text once, at the API boundary.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package str

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// toText renders a single accepted input. A nil *Str is rejected.
func toText(input any) (string, bool) {
	switch v := input.(type) {
	case string:
		return v, true
	case *Str:
		if v == nil {
			return "", false
		}
		return v.value, true
	case []byte:
		return string(v), true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		return v.String(), true
	default:
		return "", false
	}
}

// toTexts renders a slice of accepted inputs.
func toTexts(parts any) ([]string, bool) {
	switch v := parts.(type) {
	case []string:
		return v, true
	case []*Str:
		texts := make([]string, 0, len(v))
		for _, s := range v {
			if s == nil {
				return nil, false
			}
			texts = append(texts, s.value)
		}
		return texts, true
	case *Collection:
		if v == nil {
			return nil, false
		}
		return v.ToStrings(), true
	}

	rv := reflect.ValueOf(parts)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	texts := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		text, ok := toText(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		texts = append(texts, text)
	}
	return texts, true
}

// toTextOrJoined renders a single input, or a slice of inputs joined by
// delimiter.
func toTextOrJoined(input any, delimiter string) (string, bool) {
	if _, isBytes := input.([]byte); !isBytes {
		if texts, ok := toTexts(input); ok {
			return strings.Join(texts, delimiter), true
		}
	}
	return toText(input)
}
