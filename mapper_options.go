package assemblers

import "github.com/go-logr/logr"

// OverwritePolicy decides which value a resource field keeps when it is matched both by a
// source field and by a key in the source's AdditionalData.
type OverwritePolicy int

const (
	// PreferFields keeps the value copied from the source field.
	PreferFields OverwritePolicy = iota
	// PreferAdditionalData replaces it with the AdditionalData entry.
	PreferAdditionalData
)

// MapperOptions is the FieldMapper configuration assembled from MapperOption values.
type MapperOptions struct {
	// IncludeZeroValues keeps zero-valued leftovers in the resource's AdditionalData.
	IncludeZeroValues bool
	// CaseInsensitiveAdditionalData matches AdditionalData keys to fields ignoring case.
	CaseInsensitiveAdditionalData bool
	OverwritePolicy               OverwritePolicy
	// DisableMarshalAdditionalData leaves the resource's AdditionalData untouched.
	DisableMarshalAdditionalData bool
	// DisableUnmarshalAdditionalData ignores the source's AdditionalData.
	DisableUnmarshalAdditionalData bool
	// Logger receives V(1) reports of skipped fields. Defaults to logr.Discard().
	Logger logr.Logger
}

// MapperOption configures a FieldMapper at construction.
type MapperOption func(*MapperOptions)

// WithIncludeZeroValues sets MapperOptions.IncludeZeroValues.
func WithIncludeZeroValues(include bool) MapperOption {
	return func(o *MapperOptions) { o.IncludeZeroValues = include }
}

// WithCaseInsensitiveAdditionalData sets MapperOptions.CaseInsensitiveAdditionalData.
func WithCaseInsensitiveAdditionalData(fold bool) MapperOption {
	return func(o *MapperOptions) { o.CaseInsensitiveAdditionalData = fold }
}

// WithOverwritePolicy selects the OverwritePolicy. PreferFields is the default.
func WithOverwritePolicy(policy OverwritePolicy) MapperOption {
	return func(o *MapperOptions) { o.OverwritePolicy = policy }
}

// WithDisableMarshalAdditionalData sets MapperOptions.DisableMarshalAdditionalData.
func WithDisableMarshalAdditionalData(disable bool) MapperOption {
	return func(o *MapperOptions) { o.DisableMarshalAdditionalData = disable }
}

// WithDisableUnmarshalAdditionalData sets MapperOptions.DisableUnmarshalAdditionalData.
func WithDisableUnmarshalAdditionalData(disable bool) MapperOption {
	return func(o *MapperOptions) { o.DisableUnmarshalAdditionalData = disable }
}

// WithLogger routes the mapper's diagnostics to l.
func WithLogger(l logr.Logger) MapperOption {
	return func(o *MapperOptions) { o.Logger = l }
}
