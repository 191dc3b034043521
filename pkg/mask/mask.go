// Package mask hides sensitive struct fields before they reach logs.
package mask

import (
	"fmt"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const tagName = "mask"

// StructToOrdMap returns an ordered map of fields with sensitive values masked.
// Fields tagged with `mask:"true"` have their values replaced. Field names
// follow json tag > yaml tag > struct field name priority; fields tagged
// json:"-" or yaml:"-" are excluded.
func StructToOrdMap(v any) *orderedmap.OrderedMap[string, any] {
	if v == nil {
		return nil
	}
	return toOrdMap(reflect.ValueOf(v), "")
}

func toOrdMap(val reflect.Value, prefix string) *orderedmap.OrderedMap[string, any] {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			om := orderedmap.New[string, any]()
			om.Set(prefix, nil)
			return om
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		om := orderedmap.New[string, any]()
		om.Set(prefix, val.Interface())
		return om
	}

	om := orderedmap.New[string, any]()
	typ := val.Type()

	for i := range val.NumField() {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !fieldType.IsExported() {
			continue
		}

		fieldName, skip := extractFieldName(fieldType)
		if skip {
			continue
		}

		name := fieldName
		if prefix != "" {
			name = prefix + "." + name
		}

		switch {
		case strings.EqualFold(fieldType.Tag.Get(tagName), "true"):
			om.Set(name, maskValue(field))
		case isExpandable(field):
			nested := toOrdMap(field, name)
			for pair := nested.Oldest(); pair != nil; pair = pair.Next() {
				om.Set(pair.Key, pair.Value)
			}
		default:
			om.Set(name, field.Interface())
		}
	}

	return om
}

func isExpandable(val reflect.Value) bool {
	kind := val.Kind()
	if kind == reflect.Pointer {
		if val.IsNil() {
			return false
		}
		kind = val.Elem().Kind()
	}
	return kind == reflect.Struct
}

func maskValue(val reflect.Value) any {
	switch val.Kind() { //nolint:exhaustive // remaining kinds fall through
	case reflect.Pointer:
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	case reflect.Slice, reflect.Map:
		if val.IsNil() {
			return nil
		}
	}

	// Zero values carry no information worth hiding.
	if val.IsZero() {
		return val.Interface()
	}

	return fmt.Sprintf("***masked-%s***", val.Kind())
}

// extractFieldName resolves the logged name of a struct field.
// Returns skip=true for fields tagged json:"-" or yaml:"-".
func extractFieldName(field reflect.StructField) (name string, skip bool) {
	for _, tag := range []string{"json", "yaml"} {
		tagVal, ok := field.Tag.Lookup(tag)
		if !ok {
			continue
		}
		if tagVal == "-" {
			return "", true
		}
		if idx := strings.Index(tagVal, ","); idx != -1 {
			tagVal = tagVal[:idx]
		}
		if tagVal != "" {
			return tagVal, false
		}
	}
	return field.Name, false
}
