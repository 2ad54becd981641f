package currency

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount string
		want   int64
	}{
		{"0.70", 70},
		{"0.30", 30},
		{"50.00", 5000},
		{"50", 5000},
		{"1.005", 101},
		{"1.004", 100},
		{" 12.34 ", 1234},
		{"-3.50", -350},
		{"0", 0},
	}
	for _, tc := range cases {
		got, err := ToMinorUnits(tc.amount, "DKK")
		require.NoError(t, err, tc.amount)
		require.Equal(t, tc.want, got, tc.amount)
	}
}

func TestToMinorUnits_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"", "abc", "1,50", "12.3.4", "99999999999999999999.99", "-92233720368547758.09"} {
		_, err := ToMinorUnits(amount, "EUR")
		require.Error(t, err, amount)
		require.True(t, errors.Is(err, ErrInvalidAmount), amount)
	}
}

func TestToMinorUnits_Int64Bounds(t *testing.T) {
	got, err := ToMinorUnits("92233720368547758.07", "EUR")
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), got)

	got, err = ToMinorUnits("-92233720368547758.08", "EUR")
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), got)
}

func TestToMajorUnits(t *testing.T) {
	require.Equal(t, "50.00", ToMajorUnits(5000, "DKK"))
	require.Equal(t, "0.70", ToMajorUnits(70, "DKK"))
	require.Equal(t, "0.05", ToMajorUnits(5, "EUR"))
	require.Equal(t, "0.00", ToMajorUnits(0, "EUR"))
	require.Equal(t, "100.00", ToMajorUnits(10000, "EUR"))
	require.Equal(t, "-1.25", ToMajorUnits(-125, "USD"))
}

func TestRoundTrip(t *testing.T) {
	for _, code := range []string{"DKK", "EUR", "USD", "GBP"} {
		for _, amount := range []string{"0.00", "0.01", "0.70", "9.99", "50.00", "123456.78"} {
			minor, err := ToMinorUnits(amount, code)
			require.NoError(t, err)
			require.Equal(t, amount, ToMajorUnits(minor, code))
		}
		for _, minor := range []int64{0, 1, 99, 5000, 1234567} {
			major := ToMajorUnits(minor, code)
			back, err := ToMinorUnits(major, code)
			require.NoError(t, err)
			require.Equal(t, minor, back)
		}
	}
}
