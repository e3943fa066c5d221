// internal/tui/model_test.go
package tui

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tamzrod/hoist-loadtester/internal/form"
	"github.com/tamzrod/hoist-loadtester/internal/measure"
	"github.com/tamzrod/hoist-loadtester/internal/sampler"
	"github.com/tamzrod/hoist-loadtester/internal/status"
)

// ---- fakes ----

type fakeClient struct {
	mu     sync.Mutex
	block  []uint16
	err    error
	closed bool
}

func (f *fakeClient) ReadInputRegisters(addr, qty uint16) ([]uint16, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.block, nil
}

func (f *fakeClient) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func launcherFor(c *fakeClient, addrSeen *string) Launcher {
	return func(address string) (*sampler.Sampler, error) {
		if addrSeen != nil {
			*addrSeen = address
		}
		return sampler.New(
			sampler.Config{Iterations: 3},
			func() (sampler.Client, error) { return c, nil },
		)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// drain feeds every command result back into the model until none remain.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		if i > 100 {
			t.Fatalf("command chain did not settle")
		}
		m, cmd = update(t, m, cmd())
	}
	return m
}

func focusRow(t *testing.T, m Model, field string) Model {
	t.Helper()
	for i := 0; i < len(rows); i++ {
		if rows[m.focus].field == field {
			return m
		}
		m, _ = update(t, m, key("tab"))
	}
	t.Fatalf("row %q not found", field)
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, key(string(r)))
	}
	return m
}

func fillRequired(t *testing.T, m Model) Model {
	t.Helper()
	for _, name := range form.Required {
		m = focusRow(t, m, name)
		m = typeText(t, m, "x")
	}
	return m
}

// ---- tests ----

func TestRunFillsMeasuredCurrents(t *testing.T) {
	c := &fakeClient{block: measure.Encode(measure.Reading{230, 231, 232, 5.5, 6.25, 7})}
	var addr string
	m := NewModel(Options{Address: "10.0.0.5", Launch: launcherFor(c, &addr)})

	m, cmd := update(t, m, key("ctrl+r"))
	if !m.Running() {
		t.Fatalf("expected run active after ctrl+r")
	}
	if addr != "10.0.0.5" {
		t.Fatalf("launcher got address %q", addr)
	}

	m = drain(t, m, cmd)

	if m.Running() {
		t.Fatalf("trigger not re-enabled after run")
	}
	if got := m.Snapshot().Outcome; got != status.OutcomeCompleted {
		t.Fatalf("outcome: got %v", got)
	}
	if got := m.Snapshot().Percent; got != 100 {
		t.Fatalf("percent: got %d", got)
	}
	want := map[string]string{form.ActualIP1: "5.50", form.ActualIP2: "6.25", form.ActualIP3: "7.00"}
	for f, v := range want {
		if got := m.Form().Get(f); got != v {
			t.Fatalf("%s: got %q want %q", f, got, v)
		}
		if got := m.inputs[f].Value(); got != v {
			t.Fatalf("%s input: got %q want %q", f, got, v)
		}
	}
	if !c.closed {
		t.Fatalf("client not closed")
	}
}

func TestRunErrorShowsModbusError(t *testing.T) {
	c := &fakeClient{err: errors.New("timeout")}
	m := NewModel(Options{Launch: launcherFor(c, nil)})

	m, cmd := update(t, m, key("ctrl+r"))
	m = drain(t, m, cmd)

	if m.Running() {
		t.Fatalf("trigger not re-enabled after error")
	}
	if m.Snapshot().Outcome != status.OutcomeFailed {
		t.Fatalf("outcome: got %v", m.Snapshot().Outcome)
	}
	if m.Snapshot().Percent != 0 {
		t.Fatalf("progress not reset: %d", m.Snapshot().Percent)
	}
	if !m.noticeErr || !strings.HasPrefix(m.notice, "Modbus Error:") {
		t.Fatalf("notice: %q", m.notice)
	}
	if m.Form().Get(form.ActualIP1) != "" {
		t.Fatalf("form changed by failed run")
	}
}

func TestStopCancelsRunAndReenablesTrigger(t *testing.T) {
	c := &fakeClient{block: measure.Encode(measure.Reading{230, 231, 232, 5, 6, 7})}
	m := NewModel(Options{Launch: func(string) (*sampler.Sampler, error) {
		// The pause after the first read outlasts the test unless stopped.
		return sampler.New(
			sampler.Config{Iterations: 15, Interval: time.Hour},
			func() (sampler.Client, error) { return c, nil },
		)
	}})

	m, cmd := update(t, m, key("ctrl+r"))
	m, cmd = update(t, m, cmd())
	if got := m.Snapshot().Percent; got == 0 {
		t.Fatalf("expected progress after first read")
	}

	m, _ = update(t, m, key("ctrl+x"))
	if !m.Running() {
		t.Fatalf("trigger must stay disabled until the stream closes")
	}

	m = drain(t, m, cmd)

	if m.Running() {
		t.Fatalf("trigger not re-enabled after cancel")
	}
	if got := m.Snapshot().Outcome; got != status.OutcomeCancelled {
		t.Fatalf("outcome: got %v", got)
	}
	if got := m.Snapshot().Percent; got != 0 {
		t.Fatalf("progress not reset after cancel: %d", got)
	}
	if m.noticeErr || m.notice != "Load test cancelled" {
		t.Fatalf("notice: %q err=%v", m.notice, m.noticeErr)
	}
	if m.Form().Get(form.ActualIP1) != "" {
		t.Fatalf("cancelled run must not fill measured currents")
	}
	if !c.closed {
		t.Fatalf("client not closed after cancel")
	}

	// The next run can start.
	m, cmd = update(t, m, key("ctrl+r"))
	if !m.Running() || cmd == nil {
		t.Fatalf("second run did not start")
	}
	m, _ = update(t, m, key("ctrl+x"))
	drain(t, m, cmd)
}

func TestLaunchFailureKeepsTriggerEnabled(t *testing.T) {
	m := NewModel(Options{Launch: func(string) (*sampler.Sampler, error) {
		return nil, errors.New("bad config")
	}})

	m, cmd := update(t, m, key("ctrl+r"))
	if cmd != nil || m.Running() {
		t.Fatalf("expected no run")
	}
	if !m.noticeErr {
		t.Fatalf("expected error notice")
	}
}

func TestGenerateBlockedOnMissingData(t *testing.T) {
	calls := 0
	m := NewModel(Options{Generate: func(*form.Data) (string, error) {
		calls++
		return "out.pdf", nil
	}})

	m, cmd := update(t, m, key("ctrl+g"))
	if cmd != nil {
		t.Fatalf("expected no generate command")
	}
	if calls != 0 {
		t.Fatalf("generator called with missing data")
	}
	if !strings.HasPrefix(m.notice, "Missing Data") {
		t.Fatalf("notice: %q", m.notice)
	}
}

func TestGenerateSavesAndClears(t *testing.T) {
	var got *form.Data
	m := NewModel(Options{Generate: func(d *form.Data) (string, error) {
		got = d
		return "/tmp/report.pdf", nil
	}})
	m = fillRequired(t, m)

	m, cmd := update(t, m, key("ctrl+g"))
	if cmd == nil {
		t.Fatalf("expected generate command")
	}
	m = drain(t, m, cmd)

	if got == nil || got.Get(form.Owner) != "x" {
		t.Fatalf("generator did not receive form data")
	}
	if got == m.Form() {
		t.Fatalf("generator received the live form")
	}
	if m.Form().Get(form.Owner) != "" || m.inputs[form.Owner].Value() != "" {
		t.Fatalf("form not cleared after save")
	}
	if !strings.Contains(m.notice, "/tmp/report.pdf") {
		t.Fatalf("notice: %q", m.notice)
	}
}

func TestGenerateFailureKeepsForm(t *testing.T) {
	m := NewModel(Options{Generate: func(*form.Data) (string, error) {
		return "", errors.New("disk full")
	}})
	m = fillRequired(t, m)

	m, cmd := update(t, m, key("ctrl+g"))
	m = drain(t, m, cmd)

	if m.Form().Get(form.Owner) != "x" {
		t.Fatalf("form cleared after failed save")
	}
	if !m.noticeErr {
		t.Fatalf("expected error notice")
	}
}

func TestChoiceRows(t *testing.T) {
	m := NewModel(Options{})

	m = focusRow(t, m, form.RatedCap)
	m, _ = update(t, m, key("right"))
	if got := m.Form().RatedCapacity(); got != form.RatedCapacities[1] {
		t.Fatalf("capacity: got %q", got)
	}
	m, _ = update(t, m, key("left"))
	m, _ = update(t, m, key("left"))
	if got := m.Form().RatedCapacity(); got != form.RatedCapacities[len(form.RatedCapacities)-1] {
		t.Fatalf("capacity wrap: got %q", got)
	}

	m = focusRow(t, m, form.Overload)
	if m.Form().Overload() != form.Unset {
		t.Fatalf("overload must start unset")
	}
	m, _ = update(t, m, key("right"))
	if m.Form().Overload() != form.Yes {
		t.Fatalf("overload: got %v", m.Form().Overload())
	}
	if !strings.Contains(m.View(), "[X] Yes") {
		t.Fatalf("view does not show selection")
	}
}
