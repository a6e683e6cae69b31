package assemblers

import (
	"github.com/imdario/mergo"
)

// Factory constructs a new, empty resource.
type Factory[T any] func() (*T, error)

// Zero returns a factory producing zero-valued resources.
func Zero[T any]() Factory[T] {
	return func() (*T, error) { return new(T), nil }
}

// Func adapts a constructor that cannot fail.
func Func[T any](fn func() *T) Factory[T] {
	if fn == nil {
		return nil
	}
	return func() (*T, error) { return fn(), nil }
}

// Template returns a factory producing resources pre-filled with the non-zero fields of defaults.
// T must be a struct. Slices and maps in defaults are shared with every produced resource.
func Template[T any](defaults T, opts ...func(*mergo.Config)) Factory[T] {
	return func() (*T, error) {
		t := new(T)
		if err := mergo.Merge(t, defaults, opts...); err != nil {
			return nil, err
		}
		return t, nil
	}
}
