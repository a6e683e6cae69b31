// Package radio converts the amateur-radio field formats used by logged contacts into the
// formats QSO resources expose.
package radio

import (
	"math"
	"strconv"
	"time"

	"github.com/Station-Manager/assemblers/converters"
	"github.com/Station-Manager/errors"
)

// FrequencyToHz converts a frequency in MHz, given as a string such as "14.320", to Hz.
func FrequencyToHz(src any) (any, error) {
	const op errors.Op = "converters.radio.FrequencyToHz"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return int64(0), errors.New(op).Err(err)
	}
	mhz, err := strconv.ParseFloat(srcVal, 64)
	if err != nil {
		return int64(0), errors.New(op).Err(err).Msg(converters.ErrMsgBadFrequency)
	}
	if mhz <= 0 || math.IsInf(mhz, 0) || math.IsNaN(mhz) {
		return int64(0), errors.New(op).Msg(converters.ErrMsgBadFrequency)
	}
	return int64(math.Round(mhz * 1e6)), nil
}

// HzToFrequency converts a frequency in Hz to MHz with 3 decimal places.
func HzToFrequency(src any) (any, error) {
	const op errors.Op = "converters.radio.HzToFrequency"
	hz, err := converters.CheckInt64(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	return strconv.FormatFloat(float64(hz)/1e6, 'f', 3, 64), nil
}

// DateToISO accepts YYYYMMDD or YYYY-MM-DD and returns YYYY-MM-DD.
// A time.Time is formatted directly.
func DateToISO(src any) (any, error) {
	const op errors.Op = "converters.radio.DateToISO"
	if t, ok := src.(time.Time); ok {
		return t.Format(time.DateOnly), nil
	}
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}

	var layout string
	switch {
	case len(srcVal) == 8:
		layout = "20060102"
	case len(srcVal) == 10 && srcVal[4] == '-' && srcVal[7] == '-':
		layout = time.DateOnly
	default:
		return "", errors.New(op).Msg(converters.ErrMsgBadDateFormat)
	}
	d, err := time.Parse(layout, srcVal)
	if err != nil {
		return "", errors.New(op).Err(err).Msg(converters.ErrMsgBadDateFormat)
	}
	return d.Format(time.DateOnly), nil
}

// TimeToClock accepts HHMM or HH:MM and returns HH:MM.
func TimeToClock(src any) (any, error) {
	const op errors.Op = "converters.radio.TimeToClock"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}

	var layout string
	switch {
	case len(srcVal) == 5 && srcVal[2] == ':':
		layout = "15:04"
	case len(srcVal) == 4:
		layout = "1504"
	default:
		return "", errors.New(op).Msg(converters.ErrMsgBadTimeFormat)
	}
	t, err := time.Parse(layout, srcVal)
	if err != nil {
		return "", errors.New(op).Err(err).Msg(converters.ErrMsgBadTimeFormat)
	}
	return t.Format("15:04"), nil
}
