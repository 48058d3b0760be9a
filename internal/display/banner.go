package display

import (
	_ "embed"
	"io"
	"strings"

	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// Banner returns the banner art horizontally centred for the terminal w
// writes to. To change the banner just replace banner.txt.
func (t *Theme) Banner(w io.Writer) string {
	return t.centre(bannerRaw, termWidth(w))
}

func (t *Theme) centre(art string, width int) string {
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")

	maxW := 0
	for _, l := range lines {
		if len(l) > maxW {
			maxW = len(l)
		}
	}

	pad := 0
	if width > maxW {
		pad = (width - maxW) / 2
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(t.banner.Render(l))
		b.WriteByte('\n')
	}
	return b.String()
}

// termWidth returns the column count of the terminal behind w, or 80 when
// w is not a terminal.
func termWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 80
	}
	if cols, _, err := term.GetSize(f.Fd()); err == nil && cols > 0 {
		return cols
	}
	return 80
}
