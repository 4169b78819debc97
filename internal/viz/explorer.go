package viz

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/san-kum/fdlab/internal/config"
	"github.com/san-kum/fdlab/internal/fdiff"
)

const (
	fieldTarget = iota
	fieldX0
	fieldEpsilon
	fieldMinExp
	fieldMaxExp
	fieldPoints
	numFields
)

var fieldNames = [numFields]string{"target", "x0", "epsilon", "min_exp", "max_exp", "points"}

// Explorer is the interactive parameter explorer. Every parameter change
// re-runs the analysis through a memoizing cache.
type Explorer struct {
	cfg     config.Config
	initial config.Config
	cursor  int
	editing bool
	input   textinput.Model
	cache   *fdiff.Cache
	report  *fdiff.Report
	err     error
	// forward and central hold the curves when the optimum is undefined.
	forward []fdiff.ErrorRecord
	central []fdiff.ErrorRecord
	width   int
	log     zerolog.Logger
}

func NewExplorer(cfg config.Config, log zerolog.Logger) Explorer {
	in := textinput.New()
	in.Prompt = "› "
	in.CharLimit = 32

	m := Explorer{
		cfg:     cfg,
		initial: cfg,
		input:   in,
		cache: fdiff.NewCache(),
		width: 80,
		log:   log,
	}
	m.recompute()
	return m
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		return m.navKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Explorer) navKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < numFields-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
		m.recompute()
	case "right", "l":
		m.adjust(1)
		m.recompute()
	case "r":
		m.cfg = m.initial
		m.cache.Reset()
		m.recompute()
	case "enter", " ":
		m.editing = true
		m.input.SetValue("")
		m.input.Placeholder = m.value(m.cursor)
		cmd := m.input.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Explorer) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(m.input.Value())
		m.editing = false
		m.input.Blur()
		if raw == "" {
			return m, nil
		}
		if err := m.set(m.cursor, raw); err != nil {
			m.err = err
			return m, nil
		}
		m.recompute()
		return m, nil
	case "esc", "ctrl+c":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Explorer) adjust(dir int) {
	switch m.cursor {
	case fieldTarget:
		names := fdiff.TargetNames()
		i := 0
		for j, n := range names {
			if n == m.cfg.Target {
				i = j
			}
		}
		m.cfg.Target = names[(i+dir+len(names))%len(names)]
	case fieldX0:
		m.cfg.X0 = math.Round((m.cfg.X0+0.1*float64(dir))*1e6) / 1e6
	case fieldEpsilon:
		m.cfg.Epsilon *= math.Pow(2, float64(dir))
	case fieldMinExp:
		m.cfg.MinExp += dir
	case fieldMaxExp:
		m.cfg.MaxExp += dir
	case fieldPoints:
		m.cfg.NumPoints += 5 * dir
		if m.cfg.NumPoints < 1 {
			m.cfg.NumPoints = 1
		}
	}
}

func (m *Explorer) set(field int, raw string) error {
	switch field {
	case fieldTarget:
		if _, err := fdiff.LookupTarget(raw); err != nil {
			return err
		}
		m.cfg.Target = raw
	case fieldX0, fieldEpsilon:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %q", fieldNames[field], raw)
		}
		if field == fieldX0 {
			m.cfg.X0 = v
		} else {
			m.cfg.Epsilon = v
		}
	default:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %q", fieldNames[field], raw)
		}
		switch field {
		case fieldMinExp:
			m.cfg.MinExp = v
		case fieldMaxExp:
			m.cfg.MaxExp = v
		case fieldPoints:
			m.cfg.NumPoints = v
		}
	}
	return nil
}

func (m *Explorer) recompute() {
	m.report, m.forward, m.central = nil, nil, nil
	target, p, err := m.cfg.Resolve()
	if err == nil {
		m.report, err = m.cache.Analyze(target, p)
	}
	m.err = err
	if err != nil {
		m.log.Debug().Err(err).Str("target", m.cfg.Target).Msg("analysis rejected")
		if errors.Is(err, fdiff.ErrDegenerateInput) {
			m.forward, m.central, _ = fdiff.Curves(target, p)
		}
		return
	}
	hits, misses := m.cache.Stats()
	m.log.Debug().Int("hits", hits).Int("misses", misses).Msg("analysis updated")
}

func (m Explorer) value(field int) string {
	switch field {
	case fieldTarget:
		return m.cfg.Target
	case fieldX0:
		return strconv.FormatFloat(m.cfg.X0, 'g', -1, 64)
	case fieldEpsilon:
		return strconv.FormatFloat(m.cfg.Epsilon, 'e', 3, 64)
	case fieldMinExp:
		return strconv.Itoa(m.cfg.MinExp)
	case fieldMaxExp:
		return strconv.Itoa(m.cfg.MaxExp)
	case fieldPoints:
		return strconv.Itoa(m.cfg.NumPoints)
	}
	return ""
}

// Report returns the current analysis, or nil with the error that prevented
// it.
func (m Explorer) Report() (*fdiff.Report, error) {
	return m.report, m.err
}

func (m Explorer) View() string {
	var b strings.Builder
	b.WriteString("\n  " + Title.Render("FDLAB") + "  " + Subtle.Render("finite-difference error explorer") + "\n")
	b.WriteString("  " + Separator(40) + "\n\n")

	for i := 0; i < numFields; i++ {
		val := m.value(i)
		if m.editing && i == m.cursor {
			val = m.input.View()
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", Title.Render("▸"), Selected.Render(fmt.Sprintf("%-8s", fieldNames[i])), MetricValue.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", MetricLabel.Render(fmt.Sprintf("%-8s", fieldNames[i])), Subtle.Render(val)))
		}
	}
	b.WriteString("\n  " + KeyHints("j/k", "select", "h/l", "adjust", "enter", "edit", "esc", "cancel", "r", "reset", "q", "quit") + "\n\n")

	plotWidth := m.cfg.Plot.Width
	if m.width > 20 && plotWidth > m.width-20 {
		plotWidth = m.width - 20
	}
	switch {
	case m.err != nil && m.forward != nil:
		b.WriteString(RenderCurves(m.cfg.Target, m.cfg.Params(), m.forward, m.central, m.err, plotWidth, m.cfg.Plot.Height))
	case m.err != nil:
		b.WriteString("  " + ErrorText.Render(m.err.Error()) + "\n")
	case m.report != nil:
		b.WriteString(Render(m.report, plotWidth, m.cfg.Plot.Height))
	}
	return b.String()
}

// RunExplorer starts the explorer on the alternate screen.
func RunExplorer(cfg config.Config, log zerolog.Logger) error {
	_, err := tea.NewProgram(NewExplorer(cfg, log), tea.WithAltScreen()).Run()
	return err
}
