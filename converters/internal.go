package converters

import (
	"math"
	"time"

	"github.com/Station-Manager/errors"
)

// CheckString asserts src is a non-empty string.
func CheckString(op errors.Op, src any) (string, error) {
	srcVal, ok := src.(string)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	if srcVal == "" {
		return "", errors.New(op).Msg(ErrMsgEmptyString)
	}
	return srcVal, nil
}

// CheckFloat64 asserts src is a non-zero float64.
func CheckFloat64(op errors.Op, src any) (float64, error) {
	srcVal, ok := src.(float64)
	if !ok {
		return 0, errors.New(op).Errorf("Given parameter not a float64, got %T", src)
	}
	if srcVal == 0 {
		return 0, errors.New(op).Msg(ErrMsgEmptyString)
	}
	return srcVal, nil
}

// CheckInt64 accepts any integer kind, and float64 values without a fractional part since
// that is how numbers come back out of AdditionalData JSON.
func CheckInt64(op errors.Op, src any) (int64, error) {
	switch v := src.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return -1, errors.New(op).Msg(ErrMsgOutOfRange)
		}
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return -1, errors.New(op).Msg(ErrMsgOutOfRange)
		}
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return -1, errors.New(op).Msg(ErrMsgNotIntegral)
		}
		if v >= 0x1p63 || v < -0x1p63 {
			return -1, errors.New(op).Msg(ErrMsgOutOfRange)
		}
		return int64(v), nil
	}
	return -1, errors.New(op).Errorf("Given parameter not an integer, got %T", src)
}

// CheckTime asserts src is a time.Time. The zero time is accepted.
func CheckTime(op errors.Op, src any) (time.Time, error) {
	srcVal, ok := src.(time.Time)
	if !ok {
		return time.Time{}, errors.New(op).Errorf("Given parameter not a time.Time, got %T", src)
	}
	return srcVal, nil
}
