// internal/tui/view.go
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamzrod/hoist-loadtester/internal/form"
	"github.com/tamzrod/hoist-loadtester/internal/status"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hoist Load Tester"))
	b.WriteString("\n\n")

	for i, r := range rows {
		label := labelStyle.Render(r.label)
		if i == m.focus {
			label = focusedLabelStyle.Render("> " + r.label)
		}

		var value string
		switch r.kind {
		case rowText:
			value = m.inputs[r.field].View()
		case rowCapacity:
			value = m.renderCapacity(i == m.focus)
		case rowOverload:
			value = m.renderOverload(i == m.focus)
		}

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(float64(m.snap.Percent) / 100))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(status.Line(m.snap)))
	b.WriteString("\n")

	if m.notice != "" {
		if m.noticeErr {
			b.WriteString(errorStyle.Render(m.notice))
		} else {
			b.WriteString(okStyle.Render(m.notice))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m Model) help() string {
	run := "ctrl+r: start test"
	if m.run != nil {
		run = "ctrl+x: stop test"
	}
	return strings.Join([]string{
		"tab/shift+tab: move",
		"←/→: choose",
		run,
		"ctrl+g: generate report",
		"esc: quit",
	}, " • ")
}

func (m Model) renderCapacity(focused bool) string {
	parts := make([]string, len(form.RatedCapacities))
	for i, c := range form.RatedCapacities {
		if i == m.form.CapacityIndex() {
			parts[i] = selectedChoiceStyle.Render(c)
		} else {
			parts[i] = choiceStyle.Render(c)
		}
	}
	out := strings.Join(parts, "")
	if focused {
		out = "◀ " + out + " ▶"
	}
	return out
}

func (m Model) renderOverload(focused bool) string {
	yes, no := "[ ] Yes", "[ ] No"
	switch m.form.Overload() {
	case form.Yes:
		yes = "[X] Yes"
	case form.No:
		no = "[X] No"
	}
	out := choiceStyle.Render(yes) + choiceStyle.Render(no)
	if focused {
		out = "◀ " + out + " ▶"
	}
	return out
}
