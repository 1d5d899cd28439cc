package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/physutil/internal/calc"
	"github.com/san-kum/physutil/internal/config"
)

const (
	stateMenu = iota
	stateConfig
	stateResult
)

const (
	plotWidth  = 60
	plotHeight = 10
	figWidth   = 30
	figHeight  = 12
	nudge      = 0.1
)

type model struct {
	state, cursor int
	registry      *calc.Registry
	calcs         []string
	selected      calc.Calculation
	params        map[string]float64
	paramCursor   int
	editing       bool
	editBuf       string
	strict        bool
	result        *calc.Result
	cam           *Camera
	err           error
	width, height int
}

func NewInteractiveApp() *model {
	reg := calc.NewRegistry()
	return &model{
		state:    stateMenu,
		registry: reg,
		calcs:    reg.List(),
		params:   map[string]float64{},
		cam:      NewCamera(),
		width:    80, height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateResult:
		return m.resultKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.calcs)-1 {
			m.cursor++
		}
	case "enter", " ":
		c, err := m.registry.Get(m.calcs[m.cursor])
		if err != nil {
			m.err = err
			return m, nil
		}
		m.selected = c
		m.state, m.paramCursor, m.err = stateConfig, 0, nil
		m.setParamsForCalculation()
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	names := m.selected.Params
	if m.editing {
		switch msg.String() {
		case "enter":
			val, err := strconv.ParseFloat(m.editBuf, 64)
			if err != nil {
				m.err = fmt.Errorf("invalid number %q", m.editBuf)
			} else {
				m.params[names[m.paramCursor]] = val
				m.err = nil
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' || c == '+' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "esc":
		m.state, m.err = stateMenu, nil
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(names)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.params[names[m.paramCursor]], 'g', -1, 64)
	case "left", "h":
		m.params[names[m.paramCursor]] -= nudge
	case "right", "l":
		m.params[names[m.paramCursor]] += nudge
	case "x":
		m.strict = !m.strict
	case "s":
		m.compute()
	}
	return m, nil
}

func (m model) resultKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "enter", "backspace":
		m.state = stateConfig
	case "left", "h":
		m.cam.Rotate(-rotateStep, 0)
	case "right", "l":
		m.cam.Rotate(rotateStep, 0)
	case "up", "k":
		m.cam.Rotate(0, rotateStep)
	case "down", "j":
		m.cam.Rotate(0, -rotateStep)
	case "+", "=":
		m.cam.ZoomIn()
	case "-":
		m.cam.ZoomOut()
	case "r":
		m.cam = NewCamera()
	}
	return m, nil
}

// setParamsForCalculation seeds the editor from the first preset, or
// zeros when the calculation has none.
func (m *model) setParamsForCalculation() {
	m.params = make(map[string]float64, len(m.selected.Params))
	if names := config.ListPresets(m.selected.Name); len(names) > 0 {
		if cfg := config.GetPreset(m.selected.Name, names[0]); cfg != nil {
			for k, v := range cfg.Inputs {
				m.params[k] = v
			}
		}
	}
	for _, name := range m.selected.Params {
		if _, ok := m.params[name]; !ok {
			m.params[name] = 0.0
		}
	}
}

func (m *model) compute() {
	res, err := m.selected.Eval(m.params, calc.Options{Strict: m.strict})
	if err != nil {
		m.err, m.result = err, nil
		return
	}
	m.err, m.result = nil, res
	m.state = stateResult
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateResult:
		return m.viewResult()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + Title.Render("PHYSUTIL") + "\n    " + Subtle.Render("vector and oscillator calculator") + "\n    " + Separator(25) + "\n\n")
	for i, name := range m.calcs {
		desc := ""
		if c, err := m.registry.Get(name); err == nil {
			desc = c.Description
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", Cursor.Render("▸"), Selected.Render(fmt.Sprintf("%-12s", name)), Equation.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", Unselected.Render(fmt.Sprintf("  %-12s", name)), KeyHint.Render(desc)))
		}
	}
	b.WriteString("\n    " + Keys("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + Title.Render(strings.ToUpper(m.selected.Name)) + "\n    " + Subtle.Render(m.selected.Description) + "\n    " + Separator(25) + "\n\n")
	for i, name := range m.selected.Params {
		valStr := fmt.Sprintf("%10.4f", m.params[name])
		if m.editing && i == m.paramCursor {
			valStr = fmt.Sprintf("%10s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", Cursor.Render("▸"), Selected.Render(fmt.Sprintf("%-10s", name)), Equation.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", Unselected.Render(fmt.Sprintf("  %-10s", name)), KeyHint.Render(valStr)))
		}
	}

	mode := Subtle.Render("propagate NaN/Inf")
	if m.strict {
		mode = Warning.Render("strict")
	}
	b.WriteString("\n    mode: " + mode + "\n")
	if m.err != nil {
		b.WriteString("    " + ErrorText.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + Keys("j/k", "select", "enter", "edit", "h/l", "adjust", "x", "strict", "s", "compute", "esc", "back") + "\n")
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(indent(RenderResult(m.result), "    "))
	keys := []string{"esc", "back", "q", "quit"}
	if h, ok := HarmonicFor(m.result); ok {
		if plot := PlotDisplacement(h, config.DefaultCycles, min(plotWidth, max(m.width-16, 10)), plotHeight); plot != "" {
			b.WriteString("\n\n" + indent(plot, "    "))
		}
	}
	if v, planar, ok := VectorFor(m.result); ok {
		if fig := RenderVector(v, planar, m.cam, figWidth, figHeight); fig != "" {
			b.WriteString("\n\n" + indent(Figure.Render(fig), "    "))
			keys = append(keys, "+/-", "zoom")
			if !planar {
				keys = append(keys, "h/j/k/l", "rotate", "r", "reset view")
			}
		}
	}
	b.WriteString("\n\n    " + Keys(keys...) + "\n")
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func RunInteractive() error {
	_, err := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen()).Run()
	return err
}
