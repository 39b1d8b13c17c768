package venn

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/vennquiz/internal/display"
	"github.com/abhisek/vennquiz/internal/sets"
)

// Renderer builds diagrams and shows them on a display surface.
type Renderer struct {
	ab      Abbreviator
	surface display.Surface
	log     *zap.Logger
}

// NewRenderer creates a Renderer. A nil logger disables logging.
func NewRenderer(ab Abbreviator, surface display.Surface, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{ab: ab, surface: surface, log: log}
}

// RenderTwo shows the two-set diagram of a and b and returns its regions.
func (r *Renderer) RenderTwo(a, b sets.Set[string], labelA, labelB, title string, h Highlight) (Diagram, error) {
	d, err := Build2(r.ab, a, b, labelA, labelB, title, h)
	if err != nil {
		return Diagram{}, fmt.Errorf("build diagram %q: %w", title, err)
	}
	return d, r.show(d)
}

// RenderThree shows the three-set diagram of a, b and c and returns its
// regions.
func (r *Renderer) RenderThree(a, b, c sets.Set[string], labelA, labelB, labelC, title string) (Diagram, error) {
	d, err := Build3(r.ab, a, b, c, labelA, labelB, labelC, title)
	if err != nil {
		return Diagram{}, fmt.Errorf("build diagram %q: %w", title, err)
	}
	return d, r.show(d)
}

func (r *Renderer) show(d Diagram) error {
	r.log.Debug("showing diagram",
		zap.String("title", d.Title),
		zap.Strings("sets", d.SetLabels),
		zap.String("highlight", string(d.Highlight)),
		zap.Int("regions", len(d.Regions)),
	)
	if err := r.surface.Show(d.Title, Draw(d)); err != nil {
		return fmt.Errorf("display diagram %q: %w", d.Title, err)
	}
	return nil
}
