// Package tui is the interactive terminal collaborator driving the
// diagram core. It owns the session state the core leaves to its
// callers: resolving velocity input (keys vs. the numeric field),
// placing and selecting events, and triggering the alignment solver.
// Each change recomputes one full frame, rasterized as braille cells.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"minkowski/diagram"
	"minkowski/lorentz"
	"minkowski/paths"
)

// VelocityLimit keeps slider-style input strictly inside the valid
// range, like the originals' sliders running -0.99..0.99.
const VelocityLimit = 0.99

var pointPalette = []string{"purple", "teal", "orange", "yellow", "red"}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Model is the bubbletea model for one interactive session.
type Model struct {
	width  int
	height int

	scene    *diagram.Scene
	curve    diagram.CurveFunc // kept while toggled off
	curveOn  bool
	cursor   diagram.Coord
	colorIdx int
	selected []diagram.Coord // alignment picks, at most two

	input    textinput.Model
	entering bool

	status   string
	statErr  bool
	showHelp bool
}

// New builds a model around the given scene. The scene's curve, if
// any, starts enabled.
func New(scene *diagram.Scene) Model {
	ti := textinput.New()
	ti.Placeholder = "-0.99 .. 0.99"
	ti.CharLimit = 8
	ti.Prompt = "v = "
	ti.SetValue(strconv.FormatFloat(scene.Velocity, 'f', -1, 64))
	return Model{
		scene:    scene,
		curve:    scene.Curve,
		curveOn:  scene.Curve != nil,
		input:    ti,
		status:   "ready",
		showHelp: true,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) say(format string, args ...interface{}) {
	m.status = fmt.Sprintf(format, args...)
	m.statErr = false
}

func (m *Model) sayErr(err error) {
	m.status = err.Error()
	m.statErr = true
}

func (m *Model) nudgeVelocity(d float64) {
	m.scene.Velocity = lorentz.Clamp(m.scene.Velocity+d, VelocityLimit)
	m.say("v = %.2fc", m.scene.Velocity)
}

func (m *Model) moveCursor(dx, dt float64) {
	e := m.scene.Grid.Extent
	m.cursor.X = lorentz.Clamp(m.cursor.X+dx, e)
	m.cursor.T = lorentz.Clamp(m.cursor.T+dt, e)
}

func (m *Model) togglePoint() {
	c := m.cursor
	if m.scene.Points.Has(c) {
		m.scene.Points.Remove(c)
		m.dropSelection(c)
		m.say("removed (%g, %g)", c.X, c.T)
		return
	}
	m.scene.Points.Add(diagram.Event{Coord: c, Color: pointPalette[m.colorIdx]})
	m.say("placed (%g, %g) %s", c.X, c.T, pointPalette[m.colorIdx])
}

func (m *Model) dropSelection(c diagram.Coord) {
	kept := m.selected[:0]
	for _, s := range m.selected {
		if s != c {
			kept = append(kept, s)
		}
	}
	m.selected = kept
}

func (m *Model) selectPoint() {
	c := m.cursor
	if !m.scene.Points.Has(c) {
		m.say("no event at (%g, %g) to select", c.X, c.T)
		return
	}
	for _, s := range m.selected {
		if s == c {
			m.dropSelection(c)
			m.say("deselected (%g, %g)", c.X, c.T)
			return
		}
	}
	m.selected = append(m.selected, c)
	if len(m.selected) > 2 {
		m.selected = m.selected[len(m.selected)-2:]
	}
	m.say("selected %d/2 for alignment", len(m.selected))
}

func (m *Model) align() {
	if len(m.selected) != 2 {
		m.say("select exactly two events first (s)")
		return
	}
	a, b := m.selected[0], m.selected[1]
	v, err := lorentz.Align(a.X, a.T, b.X, b.T)
	if err != nil {
		m.sayErr(err)
		return
	}
	m.scene.Velocity = v
	m.say("aligned: v = %.3fc", v)
}

func (m *Model) applyVelocityInput() {
	v, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64)
	if err != nil {
		m.sayErr(fmt.Errorf("not a number: %q", m.input.Value()))
		return
	}
	if _, err := lorentz.New(v); err != nil {
		m.sayErr(err)
		return
	}
	m.scene.Velocity = v
	m.say("v = %.2fc", v)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.entering {
			switch msg.String() {
			case "enter":
				m.applyVelocityInput()
				m.entering = false
				m.input.Blur()
			case "esc":
				m.entering = false
				m.input.Blur()
				m.say("velocity entry cancelled")
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left":
			m.moveCursor(-1, 0)
		case "right":
			m.moveCursor(1, 0)
		case "up":
			m.moveCursor(0, 1)
		case "down":
			m.moveCursor(0, -1)
		case " ", "space", "enter":
			m.togglePoint()
		case "+", "=":
			m.nudgeVelocity(0.01)
		case "-", "_":
			m.nudgeVelocity(-0.01)
		case "}":
			m.nudgeVelocity(0.1)
		case "{":
			m.nudgeVelocity(-0.1)
		case "0":
			m.scene.Velocity = 0
			m.say("rest frame")
		case "v":
			m.entering = true
			m.input.SetValue(strconv.FormatFloat(m.scene.Velocity, 'f', -1, 64))
			m.input.Focus()
		case "s":
			m.selectPoint()
		case "a":
			m.align()
		case "x":
			m.scene.Points.Remove(m.cursor)
			m.dropSelection(m.cursor)
		case "C":
			m.scene.Points.Clear()
			m.selected = nil
			m.say("cleared all events")
		case "c":
			m.colorIdx = (m.colorIdx + 1) % len(pointPalette)
			m.say("point color: %s", pointPalette[m.colorIdx])
		case "g":
			if m.curve == nil {
				m.say("no curve loaded")
				break
			}
			m.curveOn = !m.curveOn
			if m.curveOn {
				m.scene.Curve = m.curve
			} else {
				m.scene.Curve = nil
			}
			m.say("curve: %v", m.curveOn)
		case "h":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight := 1
	footerHeight := 2
	mapW := m.width
	mapH := m.height - headerHeight - footerHeight
	if mapW < 20 {
		mapW = 20
	}
	if mapH < 8 {
		mapH = 8
	}

	frame, err := m.scene.Render()
	if err != nil {
		// Velocity input is clamped or validated before it reaches
		// the scene, so this is a programming error worth showing.
		return errStyle.Render("render failed: " + err.Error())
	}

	r := newRaster(mapW, mapH)
	for _, l := range frame.Lines {
		r.drawLine(l, frame.Bounds)
	}

	var overlays []overlayGlyph
	for _, mk := range frame.Markers {
		cx, cy := cellXY(mk.At, frame.Bounds, mapW, mapH)
		glyph := '●'
		if m.isSelected(mk.Event.Coord) {
			glyph = '◎'
		}
		overlays = append(overlays, overlayGlyph{
			cx: cx, cy: cy, glyph: glyph,
			color: ansiColors[mk.Event.Color],
		})
	}
	// The cursor lives on the untransformed grid, like the clicks
	// it stands in for; show it at its boosted position.
	b, _ := lorentz.New(m.scene.Velocity)
	cxp, ctp := b.XT(m.cursor.X, m.cursor.T)
	ccx, ccy := cellXY(paths.Vec2{cxp, ctp}, frame.Bounds, mapW, mapH)
	overlays = append(overlays, overlayGlyph{cx: ccx, cy: ccy, glyph: '┼', color: "205"})

	rows := r.compose(overlays)

	header := titleStyle.Render(" minkowski ") +
		statusStyle.Render(fmt.Sprintf(" v = %+.2fc  γ = %.3f  events: %d ",
			m.scene.Velocity, b.Gamma(), m.scene.Points.Len()))

	status := m.status
	if frame.CurveErr != nil {
		status = frame.CurveErr.Error()
		m.statErr = true
	}
	st := statusStyle
	if m.statErr {
		st = errStyle
	}
	footer := st.Render(" " + status + " ")
	if m.entering {
		footer = m.input.View()
	}
	help := ""
	if m.showHelp {
		help = dimStyle.Render("  arrows move  space toggle  s select  a align  +/- {/} v velocity  c color  x/C remove  g curve  h help  q quit")
	}

	return strings.Join(append([]string{header}, append(rows, footer, help)...), "\n")
}

func (m Model) isSelected(c diagram.Coord) bool {
	for _, s := range m.selected {
		if s == c {
			return true
		}
	}
	return false
}
