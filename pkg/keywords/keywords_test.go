package keywords_test

import (
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/keywords"
	"github.com/stretchr/testify/require"
)

func TestDefault_SortedLongestFirst(t *testing.T) {
	tables := Default()

	for name, words := range map[string][]string{
		"top level":  tables.TopLevel,
		"newline":    tables.Newline,
		"reserved":   tables.Reserved,
		"functions":  tables.Functions,
		"boundaries": tables.Boundaries,
	} {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, words)
			for i := 1; i < len(words); i++ {
				require.GreaterOrEqual(t, len(words[i-1]), len(words[i]), "%q before %q", words[i-1], words[i])
			}
		})
	}
}

func TestDefault_PhrasesBeforeTheirSuffixes(t *testing.T) {
	tables := Default()

	require.Less(t, indexOf(tables.Newline, "LEFT OUTER JOIN"), indexOf(tables.Newline, "LEFT JOIN"))
	require.Less(t, indexOf(tables.Newline, "LEFT JOIN"), indexOf(tables.Newline, "JOIN"))
	require.Less(t, indexOf(tables.TopLevel, "UNION ALL"), indexOf(tables.TopLevel, "UNION"))
}

func TestDefault_ReturnsCopies(t *testing.T) {
	first := Default()
	first.TopLevel[0] = "CHANGED"

	require.NotEqual(t, "CHANGED", Default().TopLevel[0])
}

func TestByLength_Stable(t *testing.T) {
	require.Equal(t, []string{"ccc", "aa", "bb", "d"}, ByLength([]string{"aa", "d", "bb", "ccc"}))
}

func indexOf(words []string, want string) int {
	for i, w := range words {
		if w == want {
			return i
		}
	}
	return -1
}
