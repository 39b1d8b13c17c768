package display

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vennquiz/internal/ui/layout"
)

// Window shows content on the alternate screen and blocks until the user
// closes it.
type Window struct {
	// Options are passed to every Bubble Tea program started by Show.
	Options []tea.ProgramOption
}

func (w *Window) Show(title, body string) error {
	p := tea.NewProgram(newViewer(title, body), w.Options...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("show %q: %w", title, err)
	}
	return nil
}

type keyMap struct {
	Close key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Close: key.NewBinding(
			key.WithKeys("enter", "esc", "q", "space"),
			key.WithHelp("Enter", "Continuar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "Sair"),
		),
	}
}

// viewer is the Bubble Tea model behind Window.
type viewer struct {
	title  string
	body   string
	keys   keyMap
	width  int
	height int
}

func newViewer(title, body string) viewer {
	return viewer{title: title, body: body, keys: defaultKeyMap()}
}

func (v viewer) Init() tea.Cmd {
	return nil
}

func (v viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, v.keys.Close, v.keys.Quit) {
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v viewer) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	if v.width == 0 || v.height == 0 {
		return view
	}

	view.SetContent(v.frame())
	return view
}

// frame renders header, body and key hints for the current size.
func (v viewer) frame() string {
	hints := make([]layout.KeyHint, 0, 2)
	for _, b := range []key.Binding{v.keys.Close, v.keys.Quit} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}

	header := layout.RenderHeader(v.title, v.width)
	footer := layout.RenderFooter(hints, v.width)
	return layout.RenderFrame(header, v.body, footer, v.width, v.height)
}
