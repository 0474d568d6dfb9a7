package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit        key.Binding
	Send        key.Binding
	NewChat     key.Binding
	FocusNext   key.Binding
	Delete      key.Binding
	ClearAll    key.Binding
	ToggleTheme key.Binding
	MoodFilter  key.Binding
	Help        key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "chiqish"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "yuborish"),
		),
		NewChat: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "yangi muloqot"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "panel almashtirish"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "suhbatni o'chirish"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "hammasini tozalash"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "mavzu"),
		),
		MoodFilter: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "kayfiyat filtri"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "yordam"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "yuqoriga"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "pastga"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "tarixni varaqlash"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "tarixni varaqlash"),
		),
	}
}

func (m *MainModel) helpView() string {
	var b strings.Builder

	b.WriteString(m.theme.PaneTitleF.Render("AI-ADIB yordam"))
	b.WriteString("\n\n")

	b.WriteString(m.theme.PaneTitle.Render("klavishlar"))
	b.WriteString("\n")
	for _, bind := range []key.Binding{
		m.keys.Send, m.keys.NewChat, m.keys.FocusNext, m.keys.Delete,
		m.keys.ClearAll, m.keys.ToggleTheme, m.keys.MoodFilter, m.keys.Quit,
	} {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			m.theme.StarBadge.Render(bind.Help().Key),
			m.theme.Footer.Render(bind.Help().Desc)))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.PaneTitle.Render("buyruqlar"))
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("  /yangi             yangi muloqot boshlash"))
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("  /kayfiyat <nomi>   kayfiyat bo'yicha boshlash"))
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("  /attach <yo'l>     rasm biriktirish"))
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("  /mavzu             yorug'/tungi mavzu"))
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("  /tozalash          barcha suhbatlarni o'chirish"))
	b.WriteString("\n\n")

	b.WriteString(m.theme.PaneTitle.Render("tezkor amallar (bo'sh suhbatda)"))
	b.WriteString("\n")
	for i, qa := range quickActions {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			m.theme.StarBadge.Render(fmt.Sprintf("alt+%d", i+1)),
			m.theme.Footer.Render(qa.Label)))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("ctrl+g bilan yopiladi"))
	return b.String()
}
