package assemblers

import (
	"fmt"
	"iter"
)

// ResourceAssembler converts service-layer values into resources.
type ResourceAssembler[S, T any] interface {
	ToResource(src *S) (*T, error)
	ToResources(srcs []*S) ([]*T, error)
}

// Instantiator creates the empty resource that will be populated from src.
// Most assemblers ignore src; see Builder.WithInstantiator.
type Instantiator[S, T any] func(src *S) (*T, error)

// Assembler builds resources of type T from values of type S. It instantiates a fresh T for
// every non-nil source and hands it to its Populator.
//
// An Assembler holds no per-call state and is safe for concurrent use when its factory and
// populator are.
type Assembler[S, T any] struct {
	instantiate Instantiator[S, T]
	populator   Populator[S, T]
}

var _ ResourceAssembler[struct{}, struct{}] = (*Assembler[struct{}, struct{}])(nil)

// New creates an Assembler that constructs resources with factory and fills them with populator.
// Both are required; a nil value of either fails with ErrInvalidArgument.
func New[S, T any](factory Factory[T], populator Populator[S, T]) (*Assembler[S, T], error) {
	return NewBuilder[S, T]().WithFactory(factory).WithPopulator(populator).Build()
}

// ToResource converts src into a new resource. A nil src yields a nil resource and no error.
func (a *Assembler[S, T]) ToResource(src *S) (*T, error) {
	const op = "assemblers.ToResource"
	if src == nil {
		return nil, nil
	}
	dst, err := a.instantiate(src)
	if err != nil {
		return nil, constructionFailed(op, err)
	}
	if dst == nil {
		return nil, constructionFailed(op, errNilInstance)
	}
	if err = a.populator.Populate(src, dst); err != nil {
		return nil, fmt.Errorf("%s: populating %T: %w", op, dst, err)
	}
	return dst, nil
}

// ToResources converts every element of srcs in order. The result has the same length as srcs;
// nil elements produce nil resources at the same index. A nil srcs fails with ErrInvalidArgument,
// and the first element that fails aborts the whole conversion.
func (a *Assembler[S, T]) ToResources(srcs []*S) ([]*T, error) {
	const op = "assemblers.ToResources"
	if srcs == nil {
		return nil, invalidArgument(op, "sources must not be nil")
	}
	result := make([]*T, 0, len(srcs))
	for i, src := range srcs {
		res, err := a.ToResource(src)
		if err != nil {
			return nil, fmt.Errorf("%s: element %d: %w", op, i, err)
		}
		result = append(result, res)
	}
	return result, nil
}

// ToResourcesSeq is ToResources for lazily produced sources. Iteration stops at the first error.
func (a *Assembler[S, T]) ToResourcesSeq(srcs iter.Seq[*S]) ([]*T, error) {
	const op = "assemblers.ToResourcesSeq"
	if srcs == nil {
		return nil, invalidArgument(op, "sources must not be nil")
	}
	result := make([]*T, 0)
	var (
		i   int
		err error
	)
	for src := range srcs {
		var res *T
		if res, err = a.ToResource(src); err != nil {
			err = fmt.Errorf("%s: element %d: %w", op, i, err)
			break
		}
		result = append(result, res)
		i++
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
