package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
}

type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields returns the exported fields of struct type t.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Index:     i,
				IsPointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

// Field is one line of a struct dump.
type Field struct {
	Name  string
	Value string
}

// Describe flattens the exported fields of a struct into name/value lines.
// Nested structs are prefixed with their field name; embedded ones are not.
// Slices and maps are summarized by length.
func Describe(v any) []Field {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return []Field{{Name: val.Type().String(), Value: fmt.Sprint(v)}}
	}
	return describe(nil, "", val)
}

func describe(out []Field, prefix string, val reflect.Value) []Field {
	t := val.Type()
	for _, f := range globalReflectionCache.GetFields(t) {
		name := prefix + f.Name
		fv := val.Field(f.Index)

		if f.IsPointer {
			if fv.IsNil() {
				out = append(out, Field{Name: name, Value: "nil"})
				continue
			}
			fv = fv.Elem()
		}

		switch fv.Kind() {
		case reflect.Struct:
			if _, ok := fv.Interface().(fmt.Stringer); ok {
				out = append(out, Field{Name: name, Value: fmt.Sprint(fv.Interface())})
				continue
			}
			nested := name + "."
			if t.Field(f.Index).Anonymous {
				nested = prefix
			}
			out = describe(out, nested, fv)
		case reflect.Slice:
			out = append(out, Field{Name: name, Value: fmt.Sprintf("[%d items]", fv.Len())})
		case reflect.Map:
			out = append(out, Field{Name: name, Value: fmt.Sprintf("map[%d items]", fv.Len())})
		default:
			out = append(out, Field{Name: name, Value: fmt.Sprint(fv.Interface())})
		}
	}
	return out
}
