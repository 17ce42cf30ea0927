package collect

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// banner returns "=== title ===", styled when styled is set
func banner(title string, styled bool) string {
	text := fmt.Sprintf("=== %s ===", title)
	if !styled {
		return text
	}
	return bannerStyle.Render(text)
}
