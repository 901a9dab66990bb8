package console

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Palette.
var (
	Blue   = lipgloss.Color("12")
	Green  = lipgloss.Color("10")
	Red    = lipgloss.Color("9")
	Yellow = lipgloss.Color("11")
)

// Separator frames the output of every test binary.
const Separator = "~~~~~~~~~~~~~~~~~~~~"

// Icons.
const (
	Check = "✓"
	Cross = "✗"
)

// ColorProfile returns Ascii when NO_COLOR is set or w is not a terminal,
// and the profile advertised by the environment otherwise.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) { //nolint:gosec // file descriptors fit in int
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

type styles struct {
	heading lipgloss.Style
	failure lipgloss.Style
	banner  lipgloss.Style
	success lipgloss.Style
	stale   lipgloss.Style
	faint   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true),
		failure: r.NewStyle().Bold(true).Foreground(Red),
		banner:  r.NewStyle().Bold(true).Foreground(Blue),
		success: r.NewStyle().Bold(true).Foreground(Green),
		stale:   r.NewStyle().Foreground(Yellow),
		faint:   r.NewStyle().Faint(true),
	}
}
