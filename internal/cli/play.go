package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	derrors "github.com/matzehuels/dialoguewheel/pkg/errors"
	"github.com/matzehuels/dialoguewheel/pkg/render/sink"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
	"github.com/matzehuels/dialoguewheel/pkg/widget"
)

// Terminal styles for the player.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

const perspectiveStep = 5

// playCommand creates the play command, a keyboard-driven widget in the terminal.
func (c *CLI) playCommand() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "play [options-file]",
		Short: "Pick an option from a wheel in the terminal",
		Long: `Drive a dialogue wheel from the keyboard.

The terminal mirrors the widget: option colors, disabled desaturation, the
selected marker, and the frame counters. Arrow keys move the cursor, enter
clicks the option under it, and digits click directly. The final selection is
printed on exit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				src.options = args[0]
			}
			return c.runPlay(cmd.Context(), src)
		},
	}
	src.register(cmd)
	return cmd
}

func (c *CLI) runPlay(ctx context.Context, flags sourceFlags) error {
	src, err := flags.load(c.Config)
	if err != nil {
		return err
	}

	m := newPlayModel(src.Options, src.Appearance, c.Logger)
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("play: %w", err)
	}

	pm, ok := final.(playModel)
	if !ok {
		return nil
	}
	if opt, ok := pm.widget.SelectedOption(); ok {
		printSuccess("Selected %d: %s", pm.widget.SelectedIndex(), opt.Text)
	} else {
		printInfo("No option selected")
	}
	return nil
}

// =============================================================================
// playModel - bubbletea model around a widget
// =============================================================================

// playState is shared between the model copies bubbletea passes around and
// the widget callbacks.
type playState struct {
	frame  widget.Frame
	status string
}

type playModel struct {
	widget *widget.Widget
	state  *playState
	cursor int
}

func newPlayModel(opts []wheel.Option, a wheel.Appearance, logger *log.Logger) playModel {
	st := &playState{}
	w := widget.New(
		widget.WithLogger(logger),
		widget.WithSurface(widget.SurfaceFunc(func(f widget.Frame) { st.frame = f })),
		widget.WithAppearance(a),
		widget.WithOptions(opts),
	)
	w.Subscribe(func(sel widget.Selection) {
		st.status = fmt.Sprintf("selected %q", sel.Option.Text)
	})
	return playModel{widget: w, state: st}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	n := len(m.state.frame.Options)

	switch k := key.String(); k {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k", "left", "h":
		if n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
	case "down", "j", "right", "l":
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case "enter", " ", "space":
		m.click(m.cursor)
	case "+", "=":
		m.apply(m.widget.SetPerspectiveAngleX(m.widget.PerspectiveAngleX() + perspectiveStep))
	case "-":
		m.apply(m.widget.SetPerspectiveAngleX(m.widget.PerspectiveAngleX() - perspectiveStep))
	case "t":
		m.apply(m.widget.SetDisableAffectsText(!m.widget.DisableAffectsText()))
	case "b":
		next := 0.5
		if m.widget.BevelIntensity() > 0 {
			next = 0
		}
		m.apply(m.widget.SetBevelIntensity(next))
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			if i := int(k[0] - '1'); i < n {
				m.cursor = i
				m.click(i)
			}
		}
	}
	return m, nil
}

func (m playModel) click(i int) {
	if !m.widget.Click(i) {
		m.state.status = fmt.Sprintf("option %d is disabled", i+1)
	}
}

func (m playModel) apply(err error) {
	if err != nil {
		m.state.status = derrors.UserMessage(err)
		return
	}
	m.state.status = ""
}

func (m playModel) View() string {
	f := m.state.frame
	a := m.widget.Appearance()
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Dialogue Wheel"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move  ⏎ select  1-9 pick  +/- tilt  b bevel  t text  q quit"))
	b.WriteString("\n\n")

	if f.Scene.Empty() {
		b.WriteString(listDimStyle.Render("  (no options)"))
		b.WriteString("\n")
	}
	for i, opt := range f.Options {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		fill := segmentFill(f, i)
		text := opt.Text
		var style lipgloss.Style
		switch {
		case opt.Disabled:
			fill = sink.Desaturate(fill, a.DisabledSaturation)
			style = listDimStyle
			if !a.DisableAffectsText {
				style = listNormalStyle
			}
			text += listDimStyle.Render("  (disabled)")
		case i == f.Selected:
			fill = sink.Brighten(fill, 1.4)
			style = listSelectedStyle
			text += StyleSuccess.Render("  ✓")
		case i == m.cursor:
			style = listSelectedStyle
		default:
			style = listNormalStyle
		}

		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(fill)).Render("██")
		fmt.Fprintf(&b, "%s%d %s %s\n", cursor, i+1, swatch, style.Render(text))
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d of %d enabled  tilt %g°  bevel %g  revision %d  build %d",
		wheel.EnabledCount(f.Options), len(f.Options), a.PerspectiveAngleX, a.BevelIntensity, f.Revision, f.Build)))
	if m.state.status != "" {
		b.WriteString("\n  ")
		b.WriteString(StyleWarning.Render(m.state.status))
	}
	b.WriteString("\n")
	return b.String()
}

// segmentFill returns the top-layer fill of option i.
func segmentFill(f widget.Frame, i int) string {
	if l, ok := f.Scene.TopLayer(i); ok {
		return l.Fill
	}
	return "#888888"
}
