package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sleeptimer/internal/bedtime"
	"sleeptimer/internal/countdown"
)

const ringRadius = 7

func (m *Model) View() string {
	if n := m.tv.notice; n != nil {
		box := m.theme.notice.Render(
			m.theme.title.Render(n.title) + "\n\n" + n.message + "\n\n" + m.theme.muted.Render("press any key"),
		)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}

	var b strings.Builder
	b.WriteString(m.theme.title.Render("Sleep Timer"))
	b.WriteString("\n")
	b.WriteString(m.tabs())
	b.WriteString("\n\n")
	if m.tab == tabTimer {
		b.WriteString(m.renderTimer())
	} else {
		b.WriteString(m.renderBedtime())
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.muted.Render(m.help()))
	return b.String()
}

func (m *Model) tabs() string {
	names := []string{"Timer", "Bedtime"}
	out := make([]string, len(names))
	for i, n := range names {
		if tab(i) == m.tab {
			out[i] = m.theme.activeTab.Render(n)
		} else {
			out[i] = m.theme.tab.Render(n)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (m *Model) renderTimer() string {
	var b strings.Builder
	mode := m.mode
	if s := m.ctrl.State(); s.Running {
		mode = s.Mode
	}
	fmt.Fprintf(&b, "%s%s\n", m.theme.label.Render("Mode"), m.theme.accent.Render(mode.String()))
	fmt.Fprintf(&b, "%s%s\n\n", m.theme.label.Render("Minutes"), m.minutes.View())
	b.WriteString(m.theme.status.Render(m.tv.status))
	b.WriteString("\n")
	if m.tv.clock != "" {
		b.WriteString(m.theme.clock.Render(m.tv.clock))
		b.WriteString("\n")
	}
	b.WriteString(m.bar.ViewAs(m.tv.progress))
	if m.hint != "" && mode == countdown.ModeShutdown {
		b.WriteString("\n\n")
		b.WriteString(m.theme.muted.Render("Note: " + m.hint + " if scheduling fails."))
	}
	return b.String()
}

func (m *Model) renderBedtime() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", m.theme.label.Render("Wake up at"), m.wake.View())
	fmt.Fprintf(&b, "%s%s\n", m.theme.label.Render("Sleep"), m.choiceLine())
	if m.choices[m.choice] == bedtime.CustomChoice {
		fmt.Fprintf(&b, "%s%s\n", m.theme.label.Render("Custom hours"), m.custom.View())
	}
	b.WriteString("\n")

	if m.bedErr != "" {
		b.WriteString(m.theme.err.Render(m.bedErr))
		return b.String()
	}
	if m.result == nil {
		return b.String()
	}

	r := m.result
	lines := []string{
		fmt.Sprintf("Sleep if you go to bed now: %s (%d cycles)", bedtime.FormatHM(r.Until), r.Cycles()),
		fmt.Sprintf("Bedtime for %s: %s", bedtime.FormatHours(r.DesiredHours), m.theme.clock.Render(bedtime.FormatClock(r.Primary, r.Now))),
	}
	if r.Earlier != nil {
		lines = append(lines, "One hour less: "+bedtime.FormatClock(*r.Earlier, r.Now))
	}
	lines = append(lines, "One hour more: "+bedtime.FormatClock(r.Later, r.Now))
	lines = append(lines, m.theme.muted.Render("N = now, W = wake, + = 90 min cycle"))

	ring := bedtime.RenderASCII(r, ringRadius)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, ring, "    ", strings.Join(lines, "\n")))
	return b.String()
}

func (m *Model) choiceLine() string {
	parts := make([]string, len(m.choices))
	for i, c := range m.choices {
		label := c
		if c != bedtime.CustomChoice {
			label += "h"
		}
		if i == m.choice {
			parts[i] = m.theme.accent.Render("[" + label + "]")
		} else {
			parts[i] = " " + label + " "
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) help() string {
	common := "tab switch • ctrl+t theme • ctrl+c quit"
	if m.tab == tabTimer {
		return "enter start • esc abort • ctrl+r shutdown/reminder • " + common
	}
	return "enter calculate • ctrl+n/ctrl+p hours • up/down field • " + common
}
