package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-adib/internal/app"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusSidebar
	focusSearch
)

const sidebarWidth = 34

type quickAction struct {
	Label  string
	Prompt string
}

var quickActions = []quickAction{
	{Label: "Bilimdonlar Dueli", Prompt: "Duel boshla! Men tayyorman."},
	{Label: "Adabiy Parallellar", Prompt: "O'zbek va jahon adabiyoti o'rtasidagi kutilmagan parallellar haqida biror misol keltiring."},
	{Label: "Atamalar (Sodda tilda)", Prompt: "Sinekdoxa va Metonimiya nimaligini eng oddiy xalqona tilda tushuntirib ber."},
	{Label: "Adabiy yangiliklar", Prompt: "Bugungi adabiyot yangiliklari haqida ma'lumot bering (Google Search)."},
	{Label: "Kutubxonalar", Prompt: "Menga yaqin kutubxonalarni ko'rsat (Google Maps)."},
	{Label: "G'azal vizuali", Prompt: "Menga biror g'azalning vizual tasvirini chizib bering."},
}

// MainModel is the root bubbletea model: a session sidebar on the left,
// the conversation viewport on the right and a multiline input below.
type MainModel struct {
	app      *app.Application
	theme    Theme
	markdown *MarkdownRenderer
	keys     keyMap

	chat   viewport.Model
	input  textarea.Model
	search textinput.Model
	spin   spinner.Model

	focus        focusArea
	sidebarIndex int
	moodFilter   app.Mood

	attachment      *app.Attachment
	attachmentLabel string

	lastStars    int
	starFlash    bool
	confirmClear bool
	showHelp     bool
	status       string

	width  int
	height int
}

func New(application *app.Application) *MainModel {
	theme := NewTheme(application.Theme())

	ta := textarea.New()
	ta.Placeholder = "Suhbatni boshlang..."
	ta.CharLimit = 8000
	ta.SetWidth(80)
	ta.SetHeight(3)
	ta.Prompt = "▍ "
	ta.ShowLineNumbers = false
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "Suhbatlarni qidirish..."
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	vp := viewport.New(80, 20)

	return &MainModel{
		app:        application,
		theme:      theme,
		markdown:   NewMarkdownRenderer(theme),
		keys:       defaultKeyMap(),
		chat:       vp,
		input:      ta,
		search:     ti,
		spin:       sp,
		moodFilter: app.MoodFilterAll,
		lastStars:  application.Store.Stars(),
	}
}

// Run starts the interactive program and blocks until it exits.
func Run(application *app.Application) error {
	p := tea.NewProgram(New(application), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spin.Tick)
}

// replyMsg signals a finished generation round trip.
type replyMsg struct {
	ok bool
}

// starFlashDoneMsg ends the reward highlight.
type starFlashDoneMsg struct{}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refreshChat(true)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		if m.app.Store.Loading() {
			// The user turn is appended before generation starts; picking it
			// up on the tick makes it visible while the reply is pending.
			m.refreshChat(true)
		}
		return m, cmd

	case replyMsg:
		if !msg.ok {
			m.status = "Xabar yuborilmadi."
		}
		m.attachment = nil
		m.attachmentLabel = ""
		m.refreshChat(true)
		if stars := m.app.Store.Stars(); stars > m.lastStars {
			m.lastStars = stars
			m.starFlash = true
			return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return starFlashDoneMsg{} })
		}
		m.lastStars = m.app.Store.Stars()
		return m, nil

	case starFlashDoneMsg:
		m.starFlash = false
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *MainModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmClear {
		switch msg.String() {
		case "y", "Y", "enter":
			m.confirmClear = false
			m.app.Store.ClearAllSessions()
			m.sidebarIndex = 0
			m.status = "Barcha suhbatlar o'chirildi."
			m.refreshChat(true)
		default:
			m.confirmClear = false
			m.status = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.NewChat):
		m.app.Store.StartNewSession()
		m.sidebarIndex = 0
		m.status = ""
		m.refreshChat(true)
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, m.keys.ClearAll):
		if len(m.app.Store.Sessions()) > 0 {
			m.confirmClear = true
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.MoodFilter):
		m.cycleMoodFilter()
		return m, nil
	}

	if m.showHelp {
		// Any other key closes the overlay.
		m.showHelp = false
		return m, nil
	}

	// Quick actions are live while the conversation is empty.
	if m.activeMessageCount() == 0 && strings.HasPrefix(msg.String(), "alt+") {
		if idx := int(msg.String()[4] - '1'); idx >= 0 && idx < len(quickActions) {
			return m, m.send(quickActions[idx].Prompt, "")
		}
	}

	switch m.focus {
	case focusSidebar:
		return m.updateSidebarKey(msg)
	case focusSearch:
		if key.Matches(msg, m.keys.Send) {
			m.focus = focusSidebar
			m.search.Blur()
			m.sidebarIndex = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.sidebarIndex = 0
		return m, cmd
	default:
		if key.Matches(msg, m.keys.Send) {
			return m, m.submitInput()
		}
		if key.Matches(msg, m.keys.PageUp) || key.Matches(msg, m.keys.PageDown) {
			var cmd tea.Cmd
			m.chat, cmd = m.chat.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *MainModel) updateSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleSessions()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.sidebarIndex > 0 {
			m.sidebarIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.sidebarIndex < len(visible)-1 {
			m.sidebarIndex++
		}
	case key.Matches(msg, m.keys.Send):
		if m.sidebarIndex < len(visible) {
			m.app.Store.SelectSession(visible[m.sidebarIndex].ID)
			m.focus = focusInput
			m.input.Focus()
			m.refreshChat(true)
		}
	case key.Matches(msg, m.keys.Delete):
		if m.sidebarIndex < len(visible) {
			m.app.Store.DeleteSession(visible[m.sidebarIndex].ID)
			if m.sidebarIndex > 0 {
				m.sidebarIndex--
			}
			m.refreshChat(true)
		}
	}
	return m, nil
}

func (m *MainModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (m *MainModel) cycleFocus() {
	switch m.focus {
	case focusInput:
		m.focus = focusSidebar
		m.input.Blur()
		m.search.Blur()
	case focusSidebar:
		m.focus = focusSearch
		m.search.Focus()
	default:
		m.focus = focusInput
		m.search.Blur()
		m.input.Focus()
	}
}

func (m *MainModel) cycleMoodFilter() {
	moods := app.Moods()
	if m.moodFilter == app.MoodFilterAll {
		m.moodFilter = moods[0]
	} else {
		next := app.MoodFilterAll
		for i, mood := range moods {
			if mood == m.moodFilter && i+1 < len(moods) {
				next = moods[i+1]
				break
			}
		}
		m.moodFilter = next
	}
	m.sidebarIndex = 0
}

func (m *MainModel) toggleTheme() {
	next := ThemeLight
	if m.theme.Name == ThemeLight {
		next = ThemeDark
	}
	m.theme = NewTheme(string(next))
	m.markdown = NewMarkdownRenderer(m.theme)
	m.spin.Style = m.theme.Spinner
	m.app.SetTheme(string(next))
	m.refreshChat(false)
}

// submitInput interprets slash commands, everything else is a chat turn.
func (m *MainModel) submitInput() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	if value == "" && m.attachment == nil {
		return nil
	}

	if strings.HasPrefix(value, "/") {
		m.input.Reset()
		return m.runCommand(value)
	}

	m.input.Reset()
	return m.send(value, "")
}

func (m *MainModel) runCommand(line string) tea.Cmd {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "/yangi":
		m.app.Store.StartNewSession()
		m.sidebarIndex = 0
		m.refreshChat(true)
	case "/kayfiyat":
		mood, ok := app.ParseMood(rest)
		if !ok {
			m.status = fmt.Sprintf("Noma'lum kayfiyat: %q. Variantlar: %s", rest, moodList())
			return nil
		}
		prompt := fmt.Sprintf("Hozir menda %s holati. Ushbu kayfiyatga mos keladigan qanday adabiy durdona yoki maslahat bera olasiz?", strings.ToLower(string(mood)))
		return m.send(prompt, mood)
	case "/attach":
		att, err := LoadImageAttachment(rest)
		if err != nil {
			m.status = err.Error()
			return nil
		}
		m.attachment = att
		m.attachmentLabel = rest
		m.status = "Rasm biriktirildi: " + rest
	case "/mavzu":
		m.toggleTheme()
	case "/tozalash":
		if len(m.app.Store.Sessions()) > 0 {
			m.confirmClear = true
		}
	case "/yordam":
		m.showHelp = true
	default:
		m.status = "Noma'lum buyruq: " + cmd
	}
	return nil
}

func (m *MainModel) send(content string, mood app.Mood) tea.Cmd {
	if m.app.Store.Loading() {
		m.status = "Javob kutilmoqda..."
		return nil
	}
	m.status = ""
	att := m.attachment

	store := m.app.Store
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		_, ok := store.SendMessage(context.Background(), content, att, mood)
		return replyMsg{ok: ok}
	})
}

func (m *MainModel) activeMessageCount() int {
	if sess := m.app.Store.ActiveSession(); sess != nil {
		return len(sess.Messages)
	}
	return 0
}

func (m *MainModel) visibleSessions() []*app.ChatSession {
	return m.app.Store.FilterSessions(m.search.Value(), m.moodFilter)
}

func moodList() string {
	moods := app.Moods()
	parts := make([]string, len(moods))
	for i, mood := range moods {
		parts[i] = string(mood)
	}
	return strings.Join(parts, ", ")
}

func (m *MainModel) resize() {
	chatWidth := m.width - sidebarWidth - 6
	if chatWidth < 30 {
		chatWidth = 30
	}
	chatHeight := m.height - 12
	if chatHeight < 5 {
		chatHeight = 5
	}
	m.chat.Width = chatWidth
	m.chat.Height = chatHeight
	m.input.SetWidth(m.width - 6)
	m.search.Width = sidebarWidth - 6
}
