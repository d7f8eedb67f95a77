package roster

import (
	"errors"
	"io"

	"github.com/bnema/roster-cli/internal/application"
	"github.com/bnema/roster-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// screen is what one program run draws. Exactly one field is set.
type screen struct {
	roster  *application.RosterView
	catalog *domain.RuleCatalog
}

type drawMsg struct{}

// program draws its screen on the first message and quits.
type program struct {
	screen screen
	styles styles
	drawn  string
}

func (p program) Init() tea.Cmd {
	return func() tea.Msg { return drawMsg{} }
}

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(drawMsg); !ok {
		return p, nil
	}

	switch {
	case p.screen.roster != nil:
		p.drawn = renderView(*p.screen.roster, p.styles)
	case p.screen.catalog != nil:
		p.drawn = renderCatalog(p.screen.catalog, p.styles)
	}
	return p, tea.Quit
}

func (p program) View() string {
	return p.drawn
}

func draw(s screen) (string, error) {
	final, err := tea.NewProgram(
		program{screen: s, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	).Run()
	if err != nil {
		return "", err
	}

	done, ok := final.(program)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}
	return done.drawn, nil
}
