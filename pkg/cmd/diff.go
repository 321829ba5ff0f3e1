package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// diffColors holds the colors of one diff. Color output is forced on since
// the caller already decided the output is a terminal.
type diffColors struct {
	header *color.Color
	hunk   *color.Color
	add    *color.Color
	del    *color.Color
}

func newDiffColors() *diffColors {
	c := &diffColors{
		header: color.New(color.Bold),
		hunk:   color.New(color.FgCyan),
		add:    color.New(color.FgGreen),
		del:    color.New(color.FgRed),
	}

	for _, cc := range []*color.Color{c.header, c.hunk, c.add, c.del} {
		cc.EnableColor()
	}

	return c
}

// writeDiff prints a unified diff between the original and formatted content
// of res. Lines are colored when colored is set.
func writeDiff(w io.Writer, res *fmtResult, colored bool) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(res.original),
		B:        difflib.SplitLines(res.formatted),
		FromFile: res.path + ".orig",
		ToFile:   res.path,
		Context:  3,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to compute diff for %s", res.path)
	}

	var colors *diffColors
	if colored {
		colors = newDiffColors()
	}

	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}

		if colors != nil {
			line = colors.line(line)
		}

		if _, err := fmt.Fprint(w, line); err != nil {
			return errors.Wrap(err, "failed to write diff to output")
		}
	}

	return nil
}

func (dc *diffColors) line(line string) string {
	text := strings.TrimSuffix(line, "\n")
	nl := line[len(text):]

	var c *color.Color
	switch {
	case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
		c = dc.header
	case strings.HasPrefix(text, "@@"):
		c = dc.hunk
	case strings.HasPrefix(text, "+"):
		c = dc.add
	case strings.HasPrefix(text, "-"):
		c = dc.del
	default:
		return line
	}

	return c.Sprint(text) + nl
}
