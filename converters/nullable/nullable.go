// Package nullable converts between github.com/aarondl/null values, as found on service and
// persistence types, and the plain values resources expose. All functions are
// assemblers.ConverterFunc compatible.
package nullable

import (
	"time"

	"github.com/Station-Manager/assemblers/converters"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// StringValue converts a null.String to a string; an invalid null.String becomes "".
// Plain strings pass through.
func StringValue(src any) (any, error) {
	const op errors.Op = "converters.nullable.StringValue"
	switch v := src.(type) {
	case null.String:
		if !v.Valid {
			return "", nil
		}
		return v.String, nil
	case string:
		return v, nil
	}
	return "", errors.New(op).Errorf("Given parameter not a string or null.String, got %T", src)
}

// StringFrom converts a string to a null.String; the empty string becomes null.
func StringFrom(src any) (any, error) {
	const op errors.Op = "converters.nullable.StringFrom"
	s, ok := src.(string)
	if !ok {
		return null.String{}, errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	if s == "" {
		return null.String{}, nil
	}
	return null.StringFrom(s), nil
}

// BoolValue converts a null.Bool to a bool; an invalid null.Bool becomes false.
func BoolValue(src any) (any, error) {
	const op errors.Op = "converters.nullable.BoolValue"
	switch v := src.(type) {
	case null.Bool:
		if !v.Valid {
			return false, nil
		}
		return v.Bool, nil
	case bool:
		return v, nil
	}
	return false, errors.New(op).Errorf("Given parameter not a bool or null.Bool, got %T", src)
}

// BoolFrom converts a bool to a valid null.Bool.
func BoolFrom(src any) (any, error) {
	const op errors.Op = "converters.nullable.BoolFrom"
	b, ok := src.(bool)
	if !ok {
		return null.Bool{}, errors.New(op).Errorf("Given parameter not a bool, got %T", src)
	}
	return null.BoolFrom(b), nil
}

// TimeValue converts a null.Time to a time.Time; an invalid null.Time becomes the zero time.
func TimeValue(src any) (any, error) {
	const op errors.Op = "converters.nullable.TimeValue"
	if v, ok := src.(null.Time); ok {
		if !v.Valid {
			return time.Time{}, nil
		}
		return v.Time, nil
	}
	t, err := converters.CheckTime(op, src)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	return t, nil
}

// TimePtr converts a null.Time to a *time.Time; an invalid null.Time becomes nil, which
// zeroes the resource field.
func TimePtr(src any) (any, error) {
	const op errors.Op = "converters.nullable.TimePtr"
	v, ok := src.(null.Time)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.Time, got %T", src)
	}
	if !v.Valid {
		return nil, nil
	}
	t := v.Time
	return &t, nil
}

// TimeFrom converts a time.Time to a null.Time; the zero time becomes null.
func TimeFrom(src any) (any, error) {
	const op errors.Op = "converters.nullable.TimeFrom"
	t, err := converters.CheckTime(op, src)
	if err != nil {
		return null.Time{}, errors.New(op).Err(err)
	}
	if t.IsZero() {
		return null.Time{}, nil
	}
	return null.TimeFrom(t), nil
}

// Int64Value converts a null.Int64 to an int64; an invalid null.Int64 becomes 0.
// Other integer kinds are widened.
func Int64Value(src any) (any, error) {
	const op errors.Op = "converters.nullable.Int64Value"
	if v, ok := src.(null.Int64); ok {
		if !v.Valid {
			return int64(0), nil
		}
		return v.Int64, nil
	}
	i, err := converters.CheckInt64(op, src)
	if err != nil {
		return int64(0), errors.New(op).Err(err)
	}
	return i, nil
}

// Int64From converts any integer to a valid null.Int64.
func Int64From(src any) (any, error) {
	const op errors.Op = "converters.nullable.Int64From"
	i, err := converters.CheckInt64(op, src)
	if err != nil {
		return null.Int64{}, errors.New(op).Err(err)
	}
	return null.Int64From(i), nil
}
