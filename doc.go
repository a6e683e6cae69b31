// Package assemblers turns service-layer values into the resources an API serves.
//
// An Assembler pairs a Factory, which constructs an empty resource, with a Populator, which
// fills it from a source value.
//
// Basic Usage
//
//	a, err := assemblers.New[Person, PersonView](
//	    assemblers.Zero[PersonView](),
//	    assemblers.PopulateFunc[Person, PersonView](func(src *Person, dst *PersonView) error {
//	        dst.ID = src.ID
//	        dst.Name = src.Name
//	        return nil
//	    }),
//	)
//	view, err := a.ToResource(&person)    // nil person gives a nil view
//	views, err := a.ToResources(people)   // one view per element, in order
//
// # Absent values
//
// ToResource returns a nil resource for a nil source without constructing anything.
// ToResources keeps a nil placeholder for every nil element so indexes line up with the input;
// use Compact to drop them. A nil slice, unlike an empty one, is rejected with ErrInvalidArgument.
//
// # Errors
//
// Errors match ErrInvalidArgument (missing collaborators, nil source slice) or
// ErrConstruction (the factory failed) via errors.Is. Population errors are returned wrapped.
// The first failure aborts a bulk conversion and no partial result is returned.
//
// # Populators
//
// Besides PopulateFunc, the package ships populators backed by a reflective FieldMapper
// (Fields), a JSON round-trip (JSON), github.com/jinzhu/copier (Copier) and
// github.com/mitchellh/mapstructure (Decoded). Chain runs several in order.
//
// # FieldMapper
//
// FieldMapper copies same-named fields and applies converters registered per field name at
// global, destination or (source, destination) scope; the narrowest scope wins.
// Fields tagged `resource:"-"` or `resource:"ignore"` are skipped. An AdditionalData field of
// type null.JSON or sqlboiler types.JSON collects unmatched source fields on the destination,
// and feeds matching destination fields when present on the source.
//
// # Thread Safety
//
// An Assembler holds no mutable state. FieldMapper is safe for concurrent use, including
// registering converters while mapping.
package assemblers
