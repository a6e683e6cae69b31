package qso

import (
	"strings"
	"unicode/utf8"

	"github.com/Station-Manager/assemblers"
	"github.com/Station-Manager/assemblers/converters/radio"
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
)

// MaxNameLength caps the contacted operator's name, in runes.
const MaxNameLength = 100

// NewAssembler returns an assembler from logged contacts to Resources.
func NewAssembler() (*assemblers.Assembler[types.Qso, Resource], error) {
	return assemblers.New[types.Qso, Resource](assemblers.Zero[Resource](), assemblers.PopulateFunc[types.Qso, Resource](Populate))
}

// Populate fills dst from src. Empty date, time and frequency fields are left empty.
func Populate(src *types.Qso, dst *Resource) error {
	const op errors.Op = "qso.Populate"

	dst.Call = strings.ToUpper(strings.TrimSpace(src.ContactedStation.Call))
	dst.Name = NormalizeName(src.ContactedStation.Name)
	dst.Country = src.ContactedStation.Country
	dst.Continent = src.ContactedStation.Cont
	dst.Band = src.QsoDetails.Band
	dst.Mode = src.QsoDetails.Mode
	dst.RstSent = src.QsoDetails.RstSent
	dst.RstRcvd = src.QsoDetails.RstRcvd
	dst.StationCallsign = src.LoggingStation.StationCallsign
	dst.Operator = src.LoggingStation.MyName

	if f := src.QsoDetails.Freq; f != "" {
		hz, err := radio.FrequencyToHz(f)
		if err != nil {
			return errors.New(op).Err(err)
		}
		dst.FrequencyHz = hz.(int64)
	}
	if d := src.QsoDetails.QsoDate; d != "" {
		iso, err := radio.DateToISO(d)
		if err != nil {
			return errors.New(op).Err(err)
		}
		dst.Date = iso.(string)
	}
	var err error
	if dst.TimeOn, err = clock(src.QsoDetails.TimeOn); err != nil {
		return errors.New(op).Err(err)
	}
	if dst.TimeOff, err = clock(src.QsoDetails.TimeOff); err != nil {
		return errors.New(op).Err(err)
	}
	return nil
}

func clock(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	v, err := radio.TimeToClock(s)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// NormalizeName replaces invalid UTF-8, trims surrounding space and caps the result at
// MaxNameLength runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(strings.ToValidUTF8(name, "�"))
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	return string([]rune(name)[:MaxNameLength])
}
