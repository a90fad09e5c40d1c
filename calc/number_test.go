package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, tok string) Value {
	t.Helper()
	v, ok, err := ParseNumber(tok)
	require.NoError(t, err)
	require.True(t, ok)
	return v
}

func TestParseNumber(t *testing.T) {
	t.Run("bare decimal", func(t *testing.T) {
		require.EqualValues(t, Real(42, ""), parseOK(t, "42"))
		require.EqualValues(t, Real(-1.25, ""), parseOK(t, "-1.25"))
		require.EqualValues(t, Real(0.5, ""), parseOK(t, ".5"))
	})
	t.Run("scientific", func(t *testing.T) {
		require.EqualValues(t, Real(1.4e9, ""), parseOK(t, "1.4e9"))
		require.EqualValues(t, Real(-2e-3, ""), parseOK(t, "-2E-3"))
	})
	t.Run("scientific with units", func(t *testing.T) {
		v := parseOK(t, "2.998e8Hz")
		require.EqualValues(t, 2.998e8, v.Re)
		require.EqualValues(t, "Hz", v.Units)
	})
	t.Run("si scale factor", func(t *testing.T) {
		v := parseOK(t, "1.4GHz")
		require.EqualValues(t, 1.4e9, v.Re)
		require.EqualValues(t, "Hz", v.Units)
	})
	t.Run("lower k upper K", func(t *testing.T) {
		require.EqualValues(t, 3e3, parseOK(t, "3k").Re)
		require.EqualValues(t, 3e3, parseOK(t, "3K").Re)
	})
	t.Run("unity scale", func(t *testing.T) {
		v := parseOK(t, "10_V")
		require.EqualValues(t, 10.0, v.Re)
		require.EqualValues(t, "V", v.Units)
	})
	t.Run("negative scaled", func(t *testing.T) {
		v := parseOK(t, "-2.5uA")
		require.InEpsilon(t, -2.5e-6, v.Re, 1e-12)
		require.EqualValues(t, "A", v.Units)
	})
	t.Run("currency", func(t *testing.T) {
		v := parseOK(t, "$250K")
		require.EqualValues(t, 250e3, v.Re)
		require.EqualValues(t, "$", v.Units)
	})
	t.Run("c style bases", func(t *testing.T) {
		require.EqualValues(t, 255.0, parseOK(t, "0xFF").Re)
		require.EqualValues(t, 8.0, parseOK(t, "0o10").Re)
		require.EqualValues(t, 5.0, parseOK(t, "0b101").Re)
		require.EqualValues(t, -255.0, parseOK(t, "-0xff").Re)
	})
	t.Run("verilog bases", func(t *testing.T) {
		require.EqualValues(t, 255.0, parseOK(t, "'hFF").Re)
		require.EqualValues(t, 42.0, parseOK(t, "'d42").Re)
		require.EqualValues(t, 8.0, parseOK(t, "'o10").Re)
		require.EqualValues(t, 5.0, parseOK(t, "'b101").Re)
	})
	t.Run("verilog separators", func(t *testing.T) {
		require.EqualValues(t, 255.0, parseOK(t, "'hF_F").Re)
		require.EqualValues(t, 1000000.0, parseOK(t, "'d1_000_000").Re)
	})
	t.Run("not a number", func(t *testing.T) {
		for _, tok := range []string{"pi", "swap", "to_omega", "+"} {
			_, ok, err := ParseNumber(tok)
			require.NoError(t, err, tok)
			require.False(t, ok, tok)
		}
	})
	t.Run("digit leading but malformed", func(t *testing.T) {
		for _, tok := range []string{"1.2.3", "0x", "3..", "'hZZ"} {
			_, ok, err := ParseNumber(tok)
			require.False(t, ok, tok)
			require.True(t, IsKind(err, ErrNumberFormat), tok)
		}
	})
	t.Run("scale factors table", func(t *testing.T) {
		require.EqualValues(t, 1e-15, ScaleFactors['f'])
		require.EqualValues(t, 1e12, ScaleFactors['T'])
		require.EqualValues(t, 1.0, ScaleFactors['_'])
	})
	t.Run("no precision loss", func(t *testing.T) {
		v := parseOK(t, "1M")
		require.True(t, math.Trunc(v.Re) == v.Re)
	})
}
