package vecmath

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{2, "2.0"},
		{-2.5, "-2.5"},
		{0.5, "0.5"},
		{0.001, "0.001"},
		{math.Pi, "3.141592653589793"},
		{123456.789, "123456.789"},
		{9999999, "9999999.0"},
		{1e7, "1.0E7"},
		{12345678.9, "1.23456789E7"},
		{1.5e-4, "1.5E-4"},
		{-2e-10, "-2.0E-10"},
		{1e21, "1.0E21"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatFloat(tt.in), "FormatFloat(%v)", tt.in)
	}
}

func TestFormatFloat_RoundTrips(t *testing.T) {
	for _, v := range []float64{math.Pi, math.Sqrt2, 1.0 / 3, 6.02214076e23, 1.602176634e-19} {
		s := FormatFloat(v)
		got, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, "parse %q", s)
		require.Equal(t, v, got)
	}
}
