package assemblers

import (
	"github.com/hashicorp/go-multierror"
)

// Builder provides a fluent API to construct an Assembler. Build reports every missing or
// conflicting collaborator in one error.
type Builder[S, T any] struct {
	factory     Factory[T]
	instantiate Instantiator[S, T]
	populators  []Populator[S, T]
}

// NewBuilder creates a new builder.
func NewBuilder[S, T any]() *Builder[S, T] { return &Builder[S, T]{} }

// WithFactory sets the factory used to construct empty resources.
func (b *Builder[S, T]) WithFactory(f Factory[T]) *Builder[S, T] { b.factory = f; return b }

// WithInstantiator sets a source-aware constructor in place of a factory.
func (b *Builder[S, T]) WithInstantiator(fn Instantiator[S, T]) *Builder[S, T] {
	b.instantiate = fn
	return b
}

// WithPopulator appends a populator. Populators run in the order they were added.
func (b *Builder[S, T]) WithPopulator(p Populator[S, T]) *Builder[S, T] {
	b.populators = append(b.populators, p)
	return b
}

// WithPopulators appends several populators at once.
func (b *Builder[S, T]) WithPopulators(ps ...Populator[S, T]) *Builder[S, T] {
	b.populators = append(b.populators, ps...)
	return b
}

// Build validates the configuration and returns the Assembler.
func (b *Builder[S, T]) Build() (*Assembler[S, T], error) {
	const op = "assemblers.Build"
	var result *multierror.Error

	switch {
	case b.factory == nil && b.instantiate == nil:
		result = multierror.Append(result, invalidArgument(op, "factory must not be nil"))
	case b.factory != nil && b.instantiate != nil:
		result = multierror.Append(result, invalidArgument(op, "factory and instantiator are mutually exclusive"))
	}

	if len(b.populators) == 0 {
		result = multierror.Append(result, invalidArgument(op, "populator must not be nil"))
	}
	for _, p := range b.populators {
		if isNilPopulator(p) {
			result = multierror.Append(result, invalidArgument(op, "populator must not be nil"))
			break
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	a := &Assembler[S, T]{instantiate: b.instantiate}
	if a.instantiate == nil {
		factory := b.factory
		a.instantiate = func(*S) (*T, error) { return factory() }
	}
	if len(b.populators) == 1 {
		a.populator = b.populators[0]
	} else {
		a.populator = Chain(append([]Populator[S, T](nil), b.populators...)...)
	}
	return a, nil
}

// MustBuild is Build for package-level wiring; it panics on a configuration error.
func (b *Builder[S, T]) MustBuild() *Assembler[S, T] {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}
