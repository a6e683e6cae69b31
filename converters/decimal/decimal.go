// Package decimal renders sqlboiler decimal columns as strings for resources, and parses them back.
package decimal

import (
	"github.com/Station-Manager/assemblers/converters"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"
)

// ToString converts a types.Decimal or types.NullDecimal to its exact decimal text.
// A null decimal becomes "".
func ToString(src any) (any, error) {
	const op errors.Op = "converters.decimal.ToString"
	switch v := src.(type) {
	case types.Decimal:
		if v.Big == nil {
			return "", errors.New(op).Msg("Decimal has no value")
		}
		return v.Big.String(), nil
	case types.NullDecimal:
		if v.Big == nil {
			return "", nil
		}
		return v.Big.String(), nil
	case *decimal.Big:
		if v == nil {
			return "", nil
		}
		return v.String(), nil
	}
	return "", errors.New(op).Errorf("Given parameter not a decimal, got %T", src)
}

// FromString parses decimal text into a types.Decimal.
func FromString(src any) (any, error) {
	const op errors.Op = "converters.decimal.FromString"
	s, err := converters.CheckString(op, src)
	if err != nil {
		return types.Decimal{}, errors.New(op).Err(err)
	}
	// SetString reports malformed text as NaN rather than failing.
	big, ok := new(decimal.Big).SetString(s)
	if !ok || big.IsNaN(0) || big.IsInf(0) {
		return types.Decimal{}, errors.New(op).Msg(converters.ErrMsgBadDecimalText)
	}
	return types.NewDecimal(big), nil
}

// NullFromString parses decimal text into a types.NullDecimal; "" becomes null.
func NullFromString(src any) (any, error) {
	const op errors.Op = "converters.decimal.NullFromString"
	if s, ok := src.(string); ok && s == "" {
		return types.NewNullDecimal(nil), nil
	}
	d, err := FromString(src)
	if err != nil {
		return types.NullDecimal{}, errors.New(op).Err(err)
	}
	return types.NewNullDecimal(d.(types.Decimal).Big), nil
}
