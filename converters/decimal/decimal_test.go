package decimal

import (
	"testing"

	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func big(t *testing.T, s string) *decimal.Big {
	t.Helper()
	b, ok := new(decimal.Big).SetString(s)
	require.True(t, ok)
	return b
}

func TestToString(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{name: "decimal", input: types.NewDecimal(big(t, "14.320")), want: "14.320"},
		{name: "null decimal with value", input: types.NewNullDecimal(big(t, "7.074")), want: "7.074"},
		{name: "null decimal without value", input: types.NewNullDecimal(nil), want: ""},
		{name: "big", input: big(t, "144"), want: "144"},
		{name: "decimal without value", input: types.Decimal{}, wantErr: true},
		{name: "float", input: 14.32, wantErr: true},
		{name: "nil", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromString(t *testing.T) {
	got, err := FromString("14.320")
	require.NoError(t, err)
	d, ok := got.(types.Decimal)
	require.True(t, ok)
	assert.Equal(t, "14.320", d.Big.String())

	for _, in := range []any{"", "abc", "1.2.3", "NaN", "Inf", "-Infinity", 14.32, nil} {
		_, err = FromString(in)
		assert.Error(t, err, "input %v", in)
	}
}

func TestNullFromString(t *testing.T) {
	got, err := NullFromString("")
	require.NoError(t, err)
	assert.Nil(t, got.(types.NullDecimal).Big)

	got, err = NullFromString("0.137")
	require.NoError(t, err)
	assert.Equal(t, "0.137", got.(types.NullDecimal).Big.String())

	for _, in := range []string{"x", "1.2.3", "NaN"} {
		_, err = NullFromString(in)
		assert.Error(t, err, "input %q", in)
	}
}
