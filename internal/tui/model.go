// internal/tui/model.go
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tamzrod/hoist-loadtester/internal/form"
	"github.com/tamzrod/hoist-loadtester/internal/sampler"
	"github.com/tamzrod/hoist-loadtester/internal/status"
)

// Launcher builds a sampler for one run against address. It must not block.
type Launcher func(address string) (*sampler.Sampler, error)

// Generator fills and saves the report for d and returns the written path.
// It runs on its own goroutine with a private copy of the form.
type Generator func(d *form.Data) (string, error)

// fieldModbusIP is the console-only row holding the device address.
const fieldModbusIP = "modbus_ip"

type rowKind uint8

const (
	rowText rowKind = iota
	rowCapacity
	rowOverload
)

type row struct {
	kind  rowKind
	field string
	label string
}

// rows is the on-screen order of the form.
var rows = buildRows()

func buildRows() []row {
	out := []row{{rowText, fieldModbusIP, "Modbus IP"}}
	for _, f := range form.TextFields {
		out = append(out, row{rowText, f.Name, f.Label})
		switch f.Name {
		case form.PowerSupply:
			out = append(out, row{rowCapacity, form.RatedCap, form.RatedCapLabel})
		case form.Pounds:
			out = append(out, row{rowOverload, form.Overload, form.OverloadLabel})
		}
	}
	return out
}

// --- MESSAGES ---

type eventMsg sampler.Event

type streamClosedMsg struct{}

type reportMsg struct {
	path string
	err  error
}

// --- MODEL ---

// Options wires the console to the rest of the program.
type Options struct {
	Context  context.Context
	Address  string
	Launch   Launcher
	Generate Generator
	Logger   *zap.Logger
}

type Model struct {
	ctx      context.Context
	launch   Launcher
	generate Generator
	log      *zap.Logger

	form     *form.Data
	inputs   map[string]textinput.Model
	focus    int
	progress progress.Model

	snap   status.Snapshot
	run    *sampler.Sampler
	events <-chan sampler.Event

	notice    string
	noticeErr bool
	saving    bool
}

// NewModel builds the console with an empty form.
func NewModel(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	m := Model{
		ctx:      opts.Context,
		launch:   opts.Launch,
		generate: opts.Generate,
		log:      opts.Logger,
		form:     form.New(),
		inputs:   make(map[string]textinput.Model, len(rows)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(50)),
		snap:     status.Reset(),
	}

	for _, r := range rows {
		if r.kind != rowText {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 40
		m.inputs[r.field] = ti
	}

	addr := m.inputs[fieldModbusIP]
	addr.SetValue(opts.Address)
	addr.Focus()
	m.inputs[fieldModbusIP] = addr

	return m
}

// Form exposes the form state (read-only use).
func (m Model) Form() *form.Data {
	return m.form
}

// Snapshot returns the current run snapshot.
func (m Model) Snapshot() status.Snapshot {
	return m.snap
}

// Running reports whether a run is active (the run trigger is disabled).
func (m Model) Running() bool {
	return m.run != nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// --- UPDATE ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 60 {
			w = 60
		}
		if w > 10 {
			m.progress.Width = w
		}
		return m, nil

	case eventMsg:
		return m.handleEvent(sampler.Event(msg))

	case streamClosedMsg:
		// Run over and connection released: the trigger is live again.
		if !m.snap.Outcome.Terminal() {
			m.snap.Outcome = status.OutcomeFailed
			m.setNotice("Modbus Error: run ended without a result", true)
		}
		m.run = nil
		m.events = nil
		return m, nil

	case reportMsg:
		m.saving = false
		if msg.err != nil {
			m.log.Warn("report failed", zap.Error(msg.err))
			m.setNotice(noticeForReportError(msg.err), true)
			return m, nil
		}
		m.log.Info("report saved", zap.String("path", msg.path))
		m.form.Clear()
		m.syncInputs()
		m.snap = status.Reset()
		m.setNotice("Report saved to: "+msg.path, false)
		return m, nil

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		if m.run != nil {
			m.run.Stop()
		}
		return m, tea.Quit

	case "ctrl+r":
		return m.startRun()

	case "ctrl+x":
		if m.run != nil {
			m.run.Stop()
			m.setNotice("Stopping load test...", false)
		}
		return m, nil

	case "ctrl+g":
		return m.startReport()

	case "tab", "down", "enter":
		return m.moveFocus(1)

	case "shift+tab", "up":
		return m.moveFocus(-1)

	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch rows[m.focus].kind {
		case rowCapacity:
			m.form.SelectCapacity(m.form.CapacityIndex() + delta)
			return m, nil
		case rowOverload:
			if delta > 0 {
				m.form.SetOverload(m.form.Overload().Next())
			} else {
				m.form.SetOverload(m.form.Overload().Prev())
			}
			return m, nil
		}
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	r := rows[m.focus]
	if r.kind != rowText {
		return m, nil
	}

	ti, cmd := m.inputs[r.field].Update(msg)
	m.inputs[r.field] = ti

	if r.field != fieldModbusIP {
		if err := m.form.Set(r.field, ti.Value()); err != nil {
			m.log.Debug("form set failed", zap.String("field", r.field), zap.Error(err))
		}
	}
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if r := rows[m.focus]; r.kind == rowText {
		ti := m.inputs[r.field]
		ti.Blur()
		m.inputs[r.field] = ti
	}

	m.focus = (m.focus + delta + len(rows)) % len(rows)

	if r := rows[m.focus]; r.kind == rowText {
		ti := m.inputs[r.field]
		cmd := ti.Focus()
		m.inputs[r.field] = ti
		return m, cmd
	}
	return m, nil
}

func (m Model) startRun() (tea.Model, tea.Cmd) {
	if m.run != nil {
		m.setNotice("A load test is already running", true)
		return m, nil
	}
	if m.launch == nil {
		m.setNotice("No device configured", true)
		return m, nil
	}

	s, err := m.launch(m.inputs[fieldModbusIP].Value())
	if err != nil {
		m.setNotice("Modbus Error: "+err.Error(), true)
		return m, nil
	}

	m.run = s
	m.events = s.Start(m.ctx)
	m.snap = status.Snapshot{RunID: s.RunID(), Outcome: status.OutcomeRunning}
	m.setNotice("", false)
	m.log.Info("load test started", zap.String("run_id", s.RunID()))

	return m, waitForEvent(m.events)
}

func (m Model) handleEvent(ev sampler.Event) (tea.Model, tea.Cmd) {
	m.snap = ev.Apply(m.snap)

	switch ev.Kind {
	case sampler.EventResult:
		m.form.ApplySummary(ev.Summary)
		m.syncInputs()
	case sampler.EventCompleted:
		m.setNotice("Load test completed", false)
	case sampler.EventError:
		m.snap.Percent = 0
		m.setNotice(fmt.Sprintf("Modbus Error: %v", ev.Err), true)
	case sampler.EventCancelled:
		m.snap.Percent = 0
		m.setNotice("Load test cancelled", false)
	}

	return m, waitForEvent(m.events)
}

func (m Model) startReport() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	if err := m.form.Validate(); err != nil {
		m.setNotice(noticeForReportError(err), true)
		return m, nil
	}
	if m.generate == nil {
		m.setNotice("No report output configured", true)
		return m, nil
	}

	m.saving = true
	gen, d := m.generate, m.form.Clone()
	return m, func() tea.Msg {
		path, err := gen(d)
		return reportMsg{path: path, err: err}
	}
}

// waitForEvent delivers the next worker event to the update loop.
func waitForEvent(events <-chan sampler.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return streamClosedMsg{}
		}
		return eventMsg(ev)
	}
}

// syncInputs copies form values back into the text inputs.
func (m *Model) syncInputs() {
	for name, ti := range m.inputs {
		if name == fieldModbusIP {
			continue
		}
		ti.SetValue(m.form.Get(name))
		m.inputs[name] = ti
	}
}

func (m *Model) setNotice(s string, isErr bool) {
	m.notice = s
	m.noticeErr = isErr
}

func noticeForReportError(err error) string {
	if errors.Is(err, form.ErrMissingData) {
		return "Missing Data: Please fill in all fields. (" + err.Error() + ")"
	}
	return "Failed to generate report: " + err.Error()
}
