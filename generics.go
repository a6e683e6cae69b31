package assemblers

// Generic one-shot helpers for call sites that do not keep an Assembler around.

// Assemble converts src with a zero-value factory and populate.
func Assemble[S, T any](src *S, populate PopulateFunc[S, T]) (*T, error) {
	a, err := New[S, T](Zero[T](), populate)
	if err != nil {
		return nil, err
	}
	return a.ToResource(src)
}

// AssembleAll converts srcs with a zero-value factory and populate.
func AssembleAll[S, T any](srcs []*S, populate PopulateFunc[S, T]) ([]*T, error) {
	a, err := New[S, T](Zero[T](), populate)
	if err != nil {
		return nil, err
	}
	return a.ToResources(srcs)
}
