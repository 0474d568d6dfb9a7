package tui

import (
	"fmt"
	"strings"

	"ai-adib/internal/app"

	"github.com/charmbracelet/lipgloss"
)

func (m *MainModel) View() string {
	if m.width == 0 {
		return "yuklanmoqda..."
	}
	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.theme.Pane.Render(m.helpView()))
	}

	var b strings.Builder
	b.WriteString(m.renderTopBar())
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderChatPane())
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *MainModel) renderTopBar() string {
	title := m.theme.TopBarTitle.Render("AI-ADIB")
	subtitle := m.theme.TopBar.Render(" · O'zbek adabiyoti mentori")

	starStyle := m.theme.StarBadge
	if m.starFlash {
		starStyle = m.theme.StarFlash
	}
	stars := starStyle.Render(fmt.Sprintf("★ %d", m.app.Store.Stars()))

	filter := ""
	if m.moodFilter != app.MoodFilterAll {
		filter = m.theme.MoodBadge.Render("  filtr: " + string(m.moodFilter))
	}

	left := title + subtitle + filter
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(stars) - 2
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + stars
}

func (m *MainModel) renderSidebar() string {
	pane := m.theme.Pane
	titleStyle := m.theme.PaneTitle
	if m.focus == focusSidebar || m.focus == focusSearch {
		pane = m.theme.PaneFocused
		titleStyle = m.theme.PaneTitleF
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Suhbatlar"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	visible := m.visibleSessions()
	if len(visible) == 0 {
		b.WriteString(m.theme.Footer.Render("Hali suhbat yo'q."))
	}
	activeID := m.app.Store.ActiveSessionID()
	maxItems := m.chat.Height - 3
	if maxItems < 3 {
		maxItems = 3
	}
	for i, sess := range visible {
		if i >= maxItems {
			b.WriteString(m.theme.Footer.Render(fmt.Sprintf("… yana %d ta", len(visible)-maxItems)))
			break
		}
		style := m.theme.SessionItem
		prefix := "  "
		if m.focus == focusSidebar && i == m.sidebarIndex {
			style = m.theme.SessionSel
			prefix = "> "
		} else if sess.ID == activeID {
			prefix = "• "
		}
		line := prefix + truncateLine(sess.Title, sidebarWidth-8)
		b.WriteString(style.Render(line))
		if sess.Mood != "" {
			b.WriteString(" " + m.theme.MoodBadge.Render(string(sess.Mood)))
		}
		b.WriteString("\n")
	}

	return pane.Width(sidebarWidth).Height(m.chat.Height + 2).Render(b.String())
}

func (m *MainModel) renderChatPane() string {
	pane := m.theme.Pane
	if m.focus == focusInput {
		pane = m.theme.PaneFocused
	}
	return pane.Width(m.chat.Width + 2).Height(m.chat.Height + 2).Render(m.chat.View())
}

func (m *MainModel) renderInput() string {
	box := m.theme.InputBox
	if m.focus == focusInput {
		box = m.theme.InputBoxF
	}

	var b strings.Builder
	if m.attachmentLabel != "" {
		b.WriteString(m.theme.MoodBadge.Render("[rasm: " + m.attachmentLabel + "]"))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	return box.Width(m.width - 4).Render(b.String())
}

func (m *MainModel) renderFooter() string {
	if m.confirmClear {
		return m.theme.Footer.Render("Barcha suhbatlar o'chirilsinmi? ") +
			m.theme.StarBadge.Render("y") + m.theme.Footer.Render("/n")
	}

	var parts []string
	if m.app.Store.Loading() {
		parts = append(parts, m.spin.View()+m.theme.Footer.Render("AI-ADIB yozmoqda..."))
	}
	if m.status != "" {
		parts = append(parts, m.theme.Footer.Render(m.status))
	}
	if wisdom := m.app.Store.WisdomOfTheDay(); wisdom != "" {
		parts = append(parts, m.theme.Wisdom.Render("Hikmat: "+wisdom))
	}
	if task := m.app.Store.CurrentTask(); task != "" {
		parts = append(parts, m.theme.Task.Render("Topshiriq: "+task))
	}
	if len(parts) == 0 {
		parts = append(parts, m.theme.Footer.Render("enter yuborish · tab panel · ctrl+g yordam"))
	}
	return strings.Join(parts, m.theme.Footer.Render("  |  "))
}

// refreshChat re-renders the conversation into the viewport.
func (m *MainModel) refreshChat(gotoBottom bool) {
	sess := m.app.Store.ActiveSession()
	if sess == nil || len(sess.Messages) == 0 {
		m.chat.SetContent(m.renderWelcome())
		return
	}

	var b strings.Builder
	for _, msg := range sess.Messages {
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n\n")
	}
	m.chat.SetContent(b.String())
	if gotoBottom {
		m.chat.GotoBottom()
	}
}

func (m *MainModel) renderMessage(msg app.Message) string {
	stamp := msg.Timestamp.Format("15:04")

	var b strings.Builder
	switch msg.Role {
	case app.RoleUser:
		b.WriteString(m.theme.RoleYou.Render("Siz"))
	default:
		b.WriteString(m.theme.RoleAI.Render("AI-ADIB"))
	}
	b.WriteString(m.theme.Footer.Render(" · " + stamp))
	b.WriteString("\n")

	if msg.Role == app.RoleAssistant {
		b.WriteString(m.markdown.Render(msg.Content, m.chat.Width))
	} else {
		b.WriteString(msg.Content)
	}

	if msg.ImageURL != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.MoodBadge.Render("[tasvir biriktirilgan]"))
	}
	if len(msg.GroundingSources) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.RoleSys.Render("Manbalar:"))
		for _, src := range msg.GroundingSources {
			b.WriteString("\n  ")
			title := src.Title
			if title == "" {
				title = src.URI
			}
			b.WriteString(m.theme.Source.Render(title))
			if src.URI != "" && title != src.URI {
				b.WriteString(m.theme.Footer.Render(" " + src.URI))
			}
		}
	}
	return b.String()
}

func (m *MainModel) renderWelcome() string {
	var b strings.Builder
	b.WriteString(m.theme.TopBarTitle.Render("Assalomu alaykum!"))
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("O'zbek adabiyoti bo'yicha intellektual hamrohingiz."))
	b.WriteString("\n\n")

	b.WriteString(m.theme.PaneTitleF.Render("Tezkor amallar"))
	b.WriteString("\n")
	for i, qa := range quickActions {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.theme.StarBadge.Render(fmt.Sprintf("alt+%d", i+1)),
			qa.Label))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.PaneTitleF.Render("Kayfiyat bo'yicha boshlash"))
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("  /kayfiyat " + moodList()))
	b.WriteString("\n")
	return b.String()
}

func truncateLine(s string, max int) string {
	runes := []rune(s)
	if max < 4 || len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
