package assemblers

import (
	"maps"
	"reflect"
)

// ConverterFunc turns a source field value into the value stored in the resource field of
// the same name. Returning nil zeroes the resource field.
type ConverterFunc func(src any) (any, error)

// ComposeConverters feeds each converter the previous one's output. The first error wins,
// and a nil output ends the pipeline with nil.
func ComposeConverters(fns ...ConverterFunc) ConverterFunc {
	return func(src any) (any, error) {
		v := src
		for _, fn := range fns {
			next, err := fn(v)
			if err != nil {
				return nil, err
			}
			if next == nil {
				return nil, nil
			}
			v = next
		}
		return v, nil
	}
}

// MapString lifts a string transform into a ConverterFunc. Non-string values pass through.
func MapString(transform func(string) string) ConverterFunc {
	return func(src any) (any, error) {
		s, ok := src.(string)
		if !ok {
			return src, nil
		}
		return transform(s), nil
	}
}

type scopeKey struct {
	src, dst reflect.Type
}

// converterRegistry is immutable once published; writers clone it.
type converterRegistry struct {
	global map[string]ConverterFunc
	byDst  map[reflect.Type]map[string]ConverterFunc
	byPair map[scopeKey]map[string]ConverterFunc
}

func newConverterRegistry() *converterRegistry {
	return &converterRegistry{
		global: make(map[string]ConverterFunc),
		byDst:  make(map[reflect.Type]map[string]ConverterFunc),
		byPair: make(map[scopeKey]map[string]ConverterFunc),
	}
}

func (r *converterRegistry) clone() *converterRegistry {
	c := &converterRegistry{
		global: maps.Clone(r.global),
		byDst:  make(map[reflect.Type]map[string]ConverterFunc, len(r.byDst)+1),
		byPair: make(map[scopeKey]map[string]ConverterFunc, len(r.byPair)+1),
	}
	for k, v := range r.byDst {
		c.byDst[k] = maps.Clone(v)
	}
	for k, v := range r.byPair {
		c.byPair[k] = maps.Clone(v)
	}
	return c
}

func (r *converterRegistry) setForDst(dt reflect.Type, field string, fn ConverterFunc) {
	m := r.byDst[dt]
	if m == nil {
		m = make(map[string]ConverterFunc)
		r.byDst[dt] = m
	}
	m[field] = fn
}

func (r *converterRegistry) setForPair(key scopeKey, field string, fn ConverterFunc) {
	m := r.byPair[key]
	if m == nil {
		m = make(map[string]ConverterFunc)
		r.byPair[key] = m
	}
	m[field] = fn
}

// lookup resolves precedence pair > dst > global.
func (r *converterRegistry) lookup(st, dt reflect.Type, field string) ConverterFunc {
	if fn := r.byPair[scopeKey{st, dt}][field]; fn != nil {
		return fn
	}
	if fn := r.byDst[dt][field]; fn != nil {
		return fn
	}
	return r.global[field]
}

func baseType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// RegisterConverter applies fn to fieldName for every source and resource type.
func (m *FieldMapper) RegisterConverter(fieldName string, fn ConverterFunc) {
	m.updateConverters(func(r *converterRegistry) { r.global[fieldName] = fn })
}

// RegisterConverterFor applies fn to fieldName when mapping into dstType (a value or pointer).
// It takes precedence over RegisterConverter.
func (m *FieldMapper) RegisterConverterFor(dstType any, fieldName string, fn ConverterFunc) {
	dt := baseType(dstType)
	m.updateConverters(func(r *converterRegistry) { r.setForDst(dt, fieldName, fn) })
}

// RegisterConverterForPair applies fn to fieldName only when mapping srcType into dstType.
// It takes precedence over every other registration.
func (m *FieldMapper) RegisterConverterForPair(srcType, dstType any, fieldName string, fn ConverterFunc) {
	key := scopeKey{baseType(srcType), baseType(dstType)}
	m.updateConverters(func(r *converterRegistry) { r.setForPair(key, fieldName, fn) })
}

func (m *FieldMapper) updateConverters(apply func(*converterRegistry)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.converters.Load().clone()
	apply(next)
	m.converters.Store(next)
}
