package display

import (
	"fmt"
	"io"

	"github.com/abhisek/vennquiz/internal/ui/theme"
)

// Surface shows a rendered diagram or plot. Show returns once the content
// has been displayed (inline) or dismissed (window).
type Surface interface {
	Show(title, body string) error
}

// New returns the surface for a resolved mode. Inline output goes to w.
// ModeAuto must be resolved first; it is treated as inline here.
func New(m Mode, w io.Writer) Surface {
	if m == ModeWindow {
		return &Window{}
	}
	return &Inline{W: w}
}

// Inline prints content into the transcript.
type Inline struct {
	W io.Writer
}

func (s *Inline) Show(title, body string) error {
	_, err := fmt.Fprintf(s.W, "\n%s\n%s\n", theme.Title.Render(title), body)
	return err
}
