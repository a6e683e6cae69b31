package assemblers

import (
	"fmt"
	"reflect"

	"github.com/jinzhu/copier"
	"github.com/mitchellh/mapstructure"
)

// Populator fills a freshly constructed resource from a non-nil source.
type Populator[S, T any] interface {
	Populate(src *S, dst *T) error
}

// PopulateFunc adapts an ordinary function to the Populator interface.
type PopulateFunc[S, T any] func(src *S, dst *T) error

// Populate calls f(src, dst).
func (f PopulateFunc[S, T]) Populate(src *S, dst *T) error { return f(src, dst) }

// isNilPopulator also catches nil pointers and funcs held in a non-nil interface.
func isNilPopulator[S, T any](p Populator[S, T]) bool {
	if p == nil {
		return true
	}
	switch v := reflect.ValueOf(p); v.Kind() {
	case reflect.Ptr, reflect.Func:
		return v.IsNil()
	}
	return false
}

// Chain runs populators left-to-right on the same resource. If any returns an error it aborts.
func Chain[S, T any](ps ...Populator[S, T]) Populator[S, T] {
	return PopulateFunc[S, T](func(src *S, dst *T) error {
		for _, p := range ps {
			if err := p.Populate(src, dst); err != nil {
				return err
			}
		}
		return nil
	})
}

// Fields populates resources with a FieldMapper. A nil mapper yields a nil Populator.
func Fields[S, T any](m *FieldMapper) Populator[S, T] {
	if m == nil {
		return nil
	}
	return PopulateFunc[S, T](func(src *S, dst *T) error {
		return m.Map(src, dst)
	})
}

// Copier populates resources with github.com/jinzhu/copier, matching fields and methods by name.
func Copier[S, T any](opt copier.Option) Populator[S, T] {
	return PopulateFunc[S, T](func(src *S, dst *T) error {
		if err := copier.CopyWithOption(dst, src, opt); err != nil {
			return fmt.Errorf("copier: %w", err)
		}
		return nil
	})
}

// Decoded populates resources with a weakly typed mapstructure decode keyed on tagName
// ("mapstructure" when empty). Source fields are matched by the same tag.
func Decoded[S, T any](tagName string) Populator[S, T] {
	return PopulateFunc[S, T](func(src *S, dst *T) error {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          tagName,
			Result:           dst,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return fmt.Errorf("mapstructure: %w", err)
		}
		if err = decoder.Decode(src); err != nil {
			return fmt.Errorf("mapstructure: %w", err)
		}
		return nil
	})
}
