package tui

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dualnum/internal/curve"
	"github.com/san-kum/dualnum/internal/plot"
)

var (
	canvasStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(36)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

const (
	canvasWidth  = 60
	canvasHeight = 24
)

// Model steps a cursor along a sampled curve and shows the dual-number
// tangent at the cursor.
type Model struct {
	curve     curve.Curve
	samples   *curve.Samples
	cursor    int
	normalize bool
	width     int
}

func New(ctx context.Context, c curve.Curve, opts curve.Options) (Model, error) {
	s, err := curve.Sample(ctx, c, opts)
	if err != nil {
		return Model{}, err
	}
	return Model{curve: c, samples: s, normalize: opts.Normalize, width: 100}, nil
}

func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		n := len(m.samples.Path)
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l":
			m.cursor = (m.cursor + 1) % n
		case "left", "h":
			m.cursor = (m.cursor - 1 + n) % n
		case "L", "shift+right":
			m.cursor = (m.cursor + n/20) % n
		case "H", "shift+left":
			m.cursor = (m.cursor - n/20 + n) % n
		case "n":
			m.normalize = !m.normalize
		case "home", "0":
			m.cursor = 0
		}
	}
	return m, nil
}

// Current returns the parameter, point and tangent under the cursor.
func (m Model) Current() (float64, curve.Point, curve.Vec) {
	t := float64(m.cursor) / float64(len(m.samples.Path))
	p, v := curve.At(m.curve, t)
	if m.normalize {
		if l := math.Hypot(v.DX, v.DY); l > 0 {
			v = curve.Vec{DX: v.DX / l, DY: v.DY / l}
		}
	}
	return t, p, v
}

func (m Model) View() string {
	t, p, v := m.Current()

	c := plot.NewCanvas(canvasWidth, canvasHeight)
	c.Plot(m.samples.Path)
	c.Scatter([]curve.Point{p}, 4)
	c.Quiver([]curve.Point{p}, []curve.Vec{v})
	c.Render()

	var stats strings.Builder
	stats.WriteString(headerStyle.Render(m.curve.Name()) + "\n")
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("t", fmt.Sprintf("%.4f", t))
	row("x", fmt.Sprintf("%+.4f", p.X))
	row("y", fmt.Sprintf("%+.4f", p.Y))
	row("dx/dt", fmt.Sprintf("%+.4f", v.DX))
	row("dy/dt", fmt.Sprintf("%+.4f", v.DY))
	row("|v|", fmt.Sprintf("%.4f", math.Hypot(v.DX, v.DY)))
	if m.normalize {
		row("tangent", "normalized")
	}
	if cfg, ok := m.curve.(curve.Configurable); ok {
		params := cfg.Params()
		names := make([]string, 0, len(params))
		for name := range params {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			row(name, fmt.Sprintf("%g", params[name]))
		}
	}
	if !m.samples.Valid() {
		stats.WriteString(warnStyle.Render("non-finite samples") + "\n")
	}

	// Narrow terminals get the stats below the canvas.
	var body string
	if m.width < canvasWidth+40 {
		body = lipgloss.JoinVertical(lipgloss.Left, canvasStyle.Render(c.String()), stats.String())
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(c.String()), statsStyle.Render(stats.String()))
	}
	help := helpStyle.Render("←/→ step · H/L jump · n normalize · q quit")
	return body + "\n" + help
}
