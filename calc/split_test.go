package calc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("whitespace", func(t *testing.T) {
		toks, err := Split("  2   3\t+ ")
		require.NoError(t, err)
		require.EqualValues(t, []string{"2", "3", "+"}, toks)
	})
	t.Run("empty", func(t *testing.T) {
		toks, err := Split("")
		require.NoError(t, err)
		require.EqualValues(t, 0, len(toks))
	})
	t.Run("comment", func(t *testing.T) {
		toks, err := Split("2 3 + # add them")
		require.NoError(t, err)
		require.EqualValues(t, []string{"2", "3", "+"}, toks)
	})
	t.Run("comment only", func(t *testing.T) {
		toks, err := Split("# nothing here")
		require.NoError(t, err)
		require.EqualValues(t, 0, len(toks))
	})
	t.Run("glued operator", func(t *testing.T) {
		toks, err := Split("2 3*")
		require.NoError(t, err)
		require.EqualValues(t, []string{"2", "3", "*"}, toks)
	})
	t.Run("glued power", func(t *testing.T) {
		toks, err := Split("2 4**")
		require.NoError(t, err)
		require.EqualValues(t, []string{"2", "4", "**"}, toks)
	})
	t.Run("glued after identifier", func(t *testing.T) {
		toks, err := Split("pi 2pi*")
		require.NoError(t, err)
		require.EqualValues(t, []string{"pi", "2pi", "*"}, toks)
	})
	t.Run("longest prefix wins", func(t *testing.T) {
		// "2pi" is one token, never "2" "pi"
		toks, err := Split("2pi")
		require.NoError(t, err)
		require.EqualValues(t, []string{"2pi"}, toks)
	})
	t.Run("lone operator", func(t *testing.T) {
		toks, err := Split("+ - **")
		require.NoError(t, err)
		require.EqualValues(t, []string{"+", "-", "**"}, toks)
	})
	t.Run("quoted units", func(t *testing.T) {
		toks, err := Split(`100M "rads/s"`)
		require.NoError(t, err)
		require.EqualValues(t, []string{"100M", `"rads/s"`}, toks)
	})
	t.Run("quoted span keeps spaces", func(t *testing.T) {
		toks, err := Split(`10 "m / s"`)
		require.NoError(t, err)
		require.EqualValues(t, []string{"10", `"m / s"`}, toks)
	})
	t.Run("unterminated quote", func(t *testing.T) {
		_, err := Split(`10 "m/s`)
		require.Error(t, err)
		require.True(t, IsKind(err, ErrSyntax))
	})
	t.Run("print directive", func(t *testing.T) {
		toks, err := Split("`x is $0` 7")
		require.NoError(t, err)
		require.EqualValues(t, []string{"`x is $0`", "7"}, toks)
	})
	t.Run("unterminated backquote", func(t *testing.T) {
		_, err := Split("`oops")
		require.True(t, IsKind(err, ErrSyntax))
	})
	t.Run("macro definition", func(t *testing.T) {
		toks, err := Split(`(2pi * "rads/s")to_omega 1.4GHz to_omega`)
		require.NoError(t, err)
		require.EqualValues(t,
			[]string{`(2pi * "rads/s")to_omega`, "1.4GHz", "to_omega"}, toks)
	})
	t.Run("nested parens in macro", func(t *testing.T) {
		toks, err := Split("((1)x)outer")
		require.NoError(t, err)
		require.EqualValues(t, []string{"((1)x)outer"}, toks)
	})
	t.Run("unterminated macro", func(t *testing.T) {
		_, err := Split("(2pi *")
		require.True(t, IsKind(err, ErrSyntax))
	})
	t.Run("macro without name", func(t *testing.T) {
		_, err := Split("(2pi *) 3")
		require.True(t, IsKind(err, ErrSyntax))
	})
}
