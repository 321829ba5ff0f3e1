package compare_test

import (
	"errors"
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/compare"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/pseudomuto/sqlfmt/pkg/lexer"
	"github.com/stretchr/testify/require"
)

func TestFirstMismatch(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	tests := []struct {
		name     string
		a, b     []int
		expected int
	}{
		{name: "both empty", expected: -1},
		{name: "equal", a: []int{1, 2, 3}, b: []int{1, 2, 3}, expected: -1},
		{name: "differs", a: []int{1, 2, 3}, b: []int{1, 5, 3}, expected: 1},
		{name: "shorter first", a: []int{1, 2}, b: []int{1, 2, 3}, expected: 2},
		{name: "shorter second", a: []int{1, 2, 3}, b: []int{1}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FirstMismatch(tt.a, tt.b, eq))
			require.Equal(t, tt.expected < 0, Slices(tt.a, tt.b, eq))
		})
	}
}

func TestEquivalent(t *testing.T) {
	t.Run("layout only", func(t *testing.T) {
		inputs := []string{
			"select a, b from t where x in (1, 2, 3)",
			"SELECT a FROM t GROUP\n\tBY a -- trailing  ",
			"SELECT a, /* two\n line */ b FROM (SELECT c FROM d) e",
			"UPDATE t SET a = -1 WHERE b >= 2; DELETE FROM t",
			"SELECT a -- note\r\nFROM t\r\n",
			"SELECT /* block\n\t\tcomment */ a FROM t",
		}

		for _, in := range inputs {
			require.NoError(t, Equivalent(in, format.Format(in)), "input: %q", in)
		}
	})

	t.Run("changed token", func(t *testing.T) {
		err := Equivalent("select a from t", "select b from t")
		require.Error(t, err)

		var mismatch *MismatchError
		require.True(t, errors.As(err, &mismatch))
		require.Equal(t, 1, mismatch.Index)
		require.Equal(t, "a", mismatch.Original.Text)
		require.Equal(t, "b", mismatch.Result.Text)
		require.Contains(t, err.Error(), `token 1 differs: Word("a") != Word("b")`)
	})

	t.Run("missing token", func(t *testing.T) {
		err := Equivalent("select a from t", "select a from")

		var mismatch *MismatchError
		require.True(t, errors.As(err, &mismatch))
		require.Equal(t, 3, mismatch.Index)
		require.Nil(t, mismatch.Result)
		require.Contains(t, err.Error(), "end of input")
	})

	t.Run("changed type", func(t *testing.T) {
		err := Equivalent("t.from", "t from")

		var mismatch *MismatchError
		require.True(t, errors.As(err, &mismatch))
		require.Equal(t, lexer.Boundary, mismatch.Original.Type)
	})
}
