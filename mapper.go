package assemblers

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/go-logr/logr"
	"github.com/goccy/go-json"
)

const additionalDataField = "AdditionalData"

var (
	nullJSONType   = reflect.TypeOf(null.JSON{})
	boilerJSONType = reflect.TypeOf(boilertypes.JSON{})
)

type fieldInfo struct {
	index            []int
	name             string
	jsonName         string
	typ              reflect.Type
	isAdditionalData bool
	ignore           bool
}

type structMetadata struct {
	fields              []fieldInfo
	fieldsByName        map[string]*fieldInfo
	fieldsByJSONName    map[string]*fieldInfo
	additionalDataField *fieldInfo
}

// FieldMapper populates resources field by field using reflection, with optional converters
// and AdditionalData handling. It is safe for concurrent use, including registering converters
// while mapping.
type FieldMapper struct {
	converters    atomic.Pointer[converterRegistry]
	mu            sync.Mutex
	metadataCache sync.Map // map[reflect.Type]*structMetadata
	options       MapperOptions
	log           logr.Logger
}

// NewFieldMapper creates a FieldMapper with the provided options.
func NewFieldMapper(opts ...MapperOption) *FieldMapper {
	o := MapperOptions{OverwritePolicy: PreferFields, Logger: logr.Discard()}
	for _, f := range opts {
		f(&o)
	}
	m := &FieldMapper{options: o, log: o.Logger.WithName("fieldmapper")}
	m.converters.Store(newConverterRegistry())
	return m
}

// WarmMetadata pre-builds metadata for provided example values or types (pass either a value or a *T or T).
func (m *FieldMapper) WarmMetadata(examples ...any) {
	for _, e := range examples {
		t := baseType(e)
		if t == nil || t.Kind() != reflect.Struct {
			continue
		}
		_ = m.metadata(t)
	}
}

// Map populates the struct dst points to from the struct src points to.
func (m *FieldMapper) Map(src, dst any) error {
	if m == nil {
		return fmt.Errorf("nil FieldMapper")
	}
	if src == nil || dst == nil {
		return fmt.Errorf("src and dst must not be nil")
	}
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)
	if srcVal.Kind() != reflect.Ptr || dstVal.Kind() != reflect.Ptr {
		return fmt.Errorf("src and dst must be pointers")
	}
	if srcVal.IsNil() || dstVal.IsNil() {
		return fmt.Errorf("src and dst must not be nil pointers")
	}
	srcVal = srcVal.Elem()
	dstVal = dstVal.Elem()
	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return fmt.Errorf("src and dst must point to structs")
	}
	return m.mapStruct(srcVal, dstVal)
}

// --- metadata ---

func (m *FieldMapper) metadata(typ reflect.Type) *structMetadata {
	if cached, ok := m.metadataCache.Load(typ); ok {
		return cached.(*structMetadata)
	}
	meta := &structMetadata{}
	buildFieldMetadata(typ, meta, nil)
	meta.fieldsByName = visibleFields(meta.fields, func(fi *fieldInfo) string { return fi.name })
	meta.fieldsByJSONName = visibleFields(meta.fields, func(fi *fieldInfo) string { return fi.jsonName })
	if ad, ok := meta.fieldsByName[additionalDataField]; ok && ad.isAdditionalData {
		meta.additionalDataField = ad
	}
	actual, _ := m.metadataCache.LoadOrStore(typ, meta)
	return actual.(*structMetadata)
}

func buildFieldMetadata(typ reflect.Type, meta *structMetadata, prefix []int) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				buildFieldMetadata(ft, meta, idx)
				continue
			}
		}
		if f.PkgPath != "" {
			continue
		}
		tag := f.Tag.Get("resource")
		jsonName := ""
		if jt, ok := f.Tag.Lookup("json"); ok {
			jt, _, _ = strings.Cut(jt, ",")
			if jt != "-" {
				jsonName = jt
			}
		}
		meta.fields = append(meta.fields, fieldInfo{
			index:            idx,
			name:             f.Name,
			jsonName:         jsonName,
			typ:              f.Type,
			isAdditionalData: f.Name == additionalDataField && (f.Type == nullJSONType || f.Type == boilerJSONType),
			ignore:           tag == "ignore" || tag == "-",
		})
	}
}

// visibleFields indexes fields by key the way Go resolves selectors: the shallowest field
// wins, and equally shallow duplicates hide each other.
func visibleFields(fields []fieldInfo, key func(*fieldInfo) string) map[string]*fieldInfo {
	out := make(map[string]*fieldInfo, len(fields))
	ambiguous := make(map[string]bool)
	for i := range fields {
		fi := &fields[i]
		k := key(fi)
		if k == "" {
			continue
		}
		cur, ok := out[k]
		switch {
		case !ok || len(fi.index) < len(cur.index):
			out[k] = fi
			delete(ambiguous, k)
		case len(fi.index) == len(cur.index):
			ambiguous[k] = true
		}
	}
	for k := range ambiguous {
		delete(out, k)
	}
	return out
}

// visible reports whether fi is the field its name resolves to.
func (meta *structMetadata) visible(fi *fieldInfo) bool {
	return meta.fieldsByName[fi.name] == fi
}

// fieldByIndex walks index, reporting false when it crosses a nil embedded pointer.
func fieldByIndex(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return reflect.Value{}, false
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, true
}

// settableField is fieldByIndex for destinations: nil embedded pointers are allocated when possible.
func settableField(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Ptr {
			if val.IsNil() {
				if !val.CanSet() {
					return reflect.Value{}, false
				}
				val.Set(reflect.New(val.Type().Elem()))
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, true
}

// --- mapping ---

func (m *FieldMapper) mapStruct(srcVal, dstVal reflect.Value) error {
	st := srcVal.Type()
	dt := dstVal.Type()
	srcMeta := m.metadata(st)
	dstMeta := m.metadata(dt)
	reg := m.converters.Load()

	processed := make(map[string]bool, len(srcMeta.fields))
	dstSet := make(map[string]bool, len(dstMeta.fields))

	for i := range dstMeta.fields {
		df := &dstMeta.fields[i]
		if df.isAdditionalData || df.ignore || !dstMeta.visible(df) {
			continue
		}
		sf, found := srcMeta.fieldsByName[df.name]
		if !found && df.jsonName != "" {
			sf, found = srcMeta.fieldsByJSONName[df.jsonName]
		}
		if !found {
			continue
		}
		processed[sf.name] = true
		if sf.isAdditionalData || sf.ignore {
			continue
		}
		srcField, ok := fieldByIndex(srcVal, sf.index)
		if !ok {
			continue
		}
		dstField, ok := settableField(dstVal, df.index)
		if !ok {
			continue
		}
		set, err := m.mapField(reg, dstField, srcField, df.name, st, dt)
		if err != nil {
			return fmt.Errorf("mapping field %s: %w", df.name, err)
		}
		if set {
			dstSet[df.name] = true
		}
	}

	if srcMeta.additionalDataField != nil && !m.options.DisableUnmarshalAdditionalData {
		if srcAD, ok := fieldByIndex(srcVal, srcMeta.additionalDataField.index); ok {
			if err := m.unmarshalAdditionalData(reg, dstVal, dstMeta, srcAD, st, dstSet); err != nil {
				return fmt.Errorf("unmarshaling AdditionalData: %w", err)
			}
		}
	}
	if dstMeta.additionalDataField != nil && !m.options.DisableMarshalAdditionalData {
		if dstAD, ok := settableField(dstVal, dstMeta.additionalDataField.index); ok {
			if err := m.marshalRemainingFields(dstAD, srcVal, srcMeta, processed); err != nil {
				return fmt.Errorf("marshaling remaining fields to AdditionalData: %w", err)
			}
		}
	}
	return nil
}

func (m *FieldMapper) mapField(reg *converterRegistry, dstField, srcField reflect.Value, fieldName string, st, dt reflect.Type) (bool, error) {
	if !dstField.CanSet() {
		return false, fmt.Errorf("cannot set field %s (unexported or unsettable)", fieldName)
	}
	if fn := reg.lookup(st, dt, fieldName); fn != nil {
		return true, applyConverter(dstField, fn, srcField.Interface(), fieldName)
	}
	srcType := srcField.Type()
	dstType := dstField.Type()
	switch {
	case srcType.AssignableTo(dstType):
		dstField.Set(srcField)
	case convertible(srcType, dstType):
		dstField.Set(srcField.Convert(dstType))
	default:
		m.log.V(1).Info("skipping incompatible field", "field", fieldName, "srcType", srcType.String(), "dstType", dstType.String())
		return false, nil
	}
	return true, nil
}

// convertible excludes conversions reflect allows but that do not preserve meaning:
// integers to strings (rune conversion) and slices to arrays (panics on short slices).
func convertible(src, dst reflect.Type) bool {
	if !src.ConvertibleTo(dst) {
		return false
	}
	switch src.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return dst.Kind() != reflect.String
	case reflect.Slice:
		return dst.Kind() != reflect.Array && !(dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Array)
	}
	return true
}

func applyConverter(dstField reflect.Value, fn ConverterFunc, src any, fieldName string) error {
	converted, err := fn(src)
	if err != nil {
		return err
	}
	if converted == nil {
		dstField.Set(reflect.Zero(dstField.Type()))
		return nil
	}
	cv := reflect.ValueOf(converted)
	if !cv.Type().AssignableTo(dstField.Type()) {
		return fmt.Errorf("converter for %s returned type %s, expected %s", fieldName, cv.Type(), dstField.Type())
	}
	dstField.Set(cv)
	return nil
}

func additionalDataBytes(v reflect.Value) []byte {
	switch ad := v.Interface().(type) {
	case null.JSON:
		if !ad.Valid {
			return nil
		}
		return ad.JSON
	case boilertypes.JSON:
		return ad
	}
	return nil
}

func (m *FieldMapper) lookupAdditional(meta *structMetadata, key string) (*fieldInfo, bool) {
	if fi, ok := meta.fieldsByName[key]; ok {
		return fi, true
	}
	if fi, ok := meta.fieldsByJSONName[key]; ok {
		return fi, true
	}
	if !m.options.CaseInsensitiveAdditionalData {
		return nil, false
	}
	for n, fi := range meta.fieldsByName {
		if strings.EqualFold(n, key) {
			return fi, true
		}
	}
	for jn, fi := range meta.fieldsByJSONName {
		if strings.EqualFold(jn, key) {
			return fi, true
		}
	}
	return nil, false
}

func (m *FieldMapper) unmarshalAdditionalData(reg *converterRegistry, dstVal reflect.Value, dstMeta *structMetadata, srcAD reflect.Value, st reflect.Type, dstSet map[string]bool) error {
	raw := additionalDataBytes(srcAD)
	if len(raw) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	dt := dstVal.Type()
	for k, rawVal := range fields {
		fi, ok := m.lookupAdditional(dstMeta, k)
		if !ok || fi.ignore || fi.isAdditionalData {
			continue
		}
		if m.options.OverwritePolicy == PreferFields && dstSet[fi.name] {
			continue
		}
		dstField, ok := settableField(dstVal, fi.index)
		if !ok || !dstField.CanSet() {
			continue
		}
		if fn := reg.lookup(st, dt, fi.name); fn != nil {
			// A registered converter owns the field; never fall back to a direct decode.
			var anyVal any
			if err := json.Unmarshal(rawVal, &anyVal); err != nil {
				m.log.V(1).Info("skipping undecodable AdditionalData entry", "key", k, "error", err.Error())
				continue
			}
			converted, err := fn(anyVal)
			if err != nil || converted == nil {
				m.log.V(1).Info("converter rejected AdditionalData entry", "key", k, "field", fi.name)
				continue
			}
			cv := reflect.ValueOf(converted)
			if !cv.Type().AssignableTo(dstField.Type()) {
				m.log.V(1).Info("converter returned incompatible type for AdditionalData entry", "key", k, "type", cv.Type().String())
				continue
			}
			dstField.Set(cv)
			dstSet[fi.name] = true
			continue
		}
		ptr := reflect.New(dstField.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err != nil {
			m.log.V(1).Info("skipping undecodable AdditionalData entry", "key", k, "error", err.Error())
			continue
		}
		dstField.Set(ptr.Elem())
		dstSet[fi.name] = true
	}
	return nil
}

func (m *FieldMapper) marshalRemainingFields(dstAD reflect.Value, srcVal reflect.Value, srcMeta *structMetadata, processed map[string]bool) error {
	remaining := make(map[string]any)
	for i := range srcMeta.fields {
		sf := &srcMeta.fields[i]
		if sf.isAdditionalData || sf.ignore || processed[sf.name] || !srcMeta.visible(sf) {
			continue
		}
		srcField, ok := fieldByIndex(srcVal, sf.index)
		if !ok || !srcField.CanInterface() {
			continue
		}
		if !m.options.IncludeZeroValues && srcField.IsZero() {
			continue
		}
		remaining[sf.name] = srcField.Interface()
	}
	if len(remaining) == 0 {
		dstAD.Set(reflect.Zero(dstAD.Type()))
		return nil
	}
	data, err := json.Marshal(remaining)
	if err != nil {
		return err
	}
	switch dstAD.Type() {
	case nullJSONType:
		dstAD.Set(reflect.ValueOf(null.JSONFrom(data)))
	case boilerJSONType:
		dstAD.Set(reflect.ValueOf(boilertypes.JSON(data)))
	}
	return nil
}
