// Package tui is the terminal rendering adapter: a Bubble Tea program that
// shows one view at a time with its cards, progress and notifications.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/study-tracker/internal/cards"
	"github.com/ziadkadry99/study-tracker/internal/nav"
	"github.com/ziadkadry99/study-tracker/internal/notifications"
	"github.com/ziadkadry99/study-tracker/internal/progress"
	"github.com/ziadkadry99/study-tracker/internal/tracker"
)

const (
	headerHeight = 3
	footerHeight = 2
	barWidth     = 20
)

// keyActions binds one key per card action; actionKeys is the reverse for help.
var (
	keyActions = map[string]cards.Action{
		"enter": cards.ActionExpand,
		" ":     cards.ActionExpand,
		"b":     cards.ActionBookmark,
		"c":     cards.ActionComplete,
	}
	actionKeys = map[cards.Action]string{
		cards.ActionExpand:   "enter",
		cards.ActionBookmark: "b",
		cards.ActionComplete: "c",
	}
)

type notificationMsg notifications.Event

type shownNotification struct {
	notifications.Notification
	fading bool
}

// Model is the Bubble Tea model. Expanded answers are UI state and never
// reach the tracker.
type Model struct {
	tracker *tracker.Tracker
	screen  *Screen

	tabs     []nav.View
	labels   map[nav.View]string
	cursor   map[nav.View]int
	expanded map[string]bool

	search    textinput.Model
	searching bool

	notes  []shownNotification
	status string

	viewport viewport.Model
	ready    bool
	width    int
}

// New creates a Model over tr, which must render into screen.
func New(tr *tracker.Tracker, screen *Screen) *Model {
	input := textinput.New()
	input.Placeholder = "search questions"
	input.Prompt = "/ "
	input.CharLimit = 120

	m := &Model{
		tracker:  tr,
		screen:   screen,
		labels:   make(map[nav.View]string),
		cursor:   make(map[nav.View]int),
		expanded: make(map[string]bool),
		search:   input,
		width:    80,
	}
	for _, v := range tr.Views() {
		switch v {
		case nav.SearchResults:
			m.labels[v] = "Search"
			continue
		case nav.Bookmarks:
			m.labels[v] = "Bookmarks"
		default:
			c, _ := tr.Catalog().Category(string(v))
			m.labels[v] = c.Title
		}
		m.tabs = append(m.tabs, v)
	}
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - headerHeight - footerHeight
		if height < 3 {
			height = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}

	case notificationMsg:
		m.applyNotification(notifications.Event(msg))

	case tea.KeyMsg:
		if m.searching {
			cmd = m.updateSearch(msg)
		} else {
			var quit bool
			cmd, quit = m.handleKey(msg)
			if quit {
				return m, tea.Quit
			}
		}
	}

	m.refresh()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return nil, true
	case "tab", "right", "l":
		m.switchTab(1)
	case "shift+tab", "left", "h":
		m.switchTab(-1)
	case "up", "k":
		m.cursor[m.screen.active]--
	case "down", "j":
		m.cursor[m.screen.active]++
	case "pgup":
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height/2)
	case "pgdown":
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height/2)
	case "/":
		m.searching = true
		return m.search.Focus(), false
	default:
		if a, ok := keyActions[key]; ok {
			m.act(a)
		} else if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.tabs) {
				m.navigate(m.tabs[i])
			}
		}
	}
	return nil, false
}

// updateSearch feeds keys to the search input and searches on every edit.
func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.tracker.Search("")
		return nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return nil
	case "ctrl+c":
		return tea.Quit
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.tracker.Search(m.search.Value())
		m.cursor[nav.SearchResults] = 0
	}
	return cmd
}

func (m *Model) switchTab(delta int) {
	idx := -1
	for i, v := range m.tabs {
		if v == m.screen.active {
			idx = i
		}
	}
	if idx < 0 && delta < 0 {
		idx = 0
	}
	n := len(m.tabs)
	m.navigate(m.tabs[((idx+delta)%n+n)%n])
}

func (m *Model) navigate(v nav.View) {
	if err := m.tracker.NavigateTo(string(v)); err != nil {
		m.status = err.Error()
	}
}

// act dispatches one card action on the card under the cursor.
func (m *Model) act(a cards.Action) {
	card, ok := m.current()
	if !ok {
		return
	}
	m.status = ""

	var err error
	switch a {
	case cards.ActionExpand:
		m.expanded[card.ID] = !m.expanded[card.ID]
	case cards.ActionBookmark:
		_, err = m.tracker.ToggleBookmark(context.Background(), card.ID)
	case cards.ActionComplete:
		_, err = m.tracker.ToggleCompleted(context.Background(), card.ID)
	}
	if err != nil {
		m.status = err.Error()
	}
}

func (m *Model) current() (cards.CardView, bool) {
	l := m.screen.list(m.screen.active)
	i := m.cursor[m.screen.active]
	if i < 0 || i >= len(l.Cards) {
		return cards.CardView{}, false
	}
	return l.Cards[i], true
}

func (m *Model) applyNotification(ev notifications.Event) {
	switch ev.Phase {
	case notifications.PhaseVisible:
		m.notes = append(m.notes, shownNotification{Notification: ev.Notification})
	case notifications.PhaseHiding:
		for i := range m.notes {
			if m.notes[i].ID == ev.Notification.ID {
				m.notes[i].fading = true
			}
		}
	case notifications.PhaseRemoved:
		for i := range m.notes {
			if m.notes[i].ID == ev.Notification.ID {
				m.notes = append(m.notes[:i], m.notes[i+1:]...)
				break
			}
		}
	}
}

// refresh clamps the cursor and redraws the viewport content around it.
func (m *Model) refresh() {
	v := m.screen.active
	n := len(m.screen.list(v).Cards)
	if m.cursor[v] >= n {
		m.cursor[v] = n - 1
	}
	if m.cursor[v] < 0 {
		m.cursor[v] = 0
	}
	if !m.ready {
		return
	}

	body, cursorLine := m.renderBody()
	m.viewport.SetContent(body)
	if m.screen.takeScrollReset() {
		m.viewport.GotoTop()
	}
	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
}

func (m *Model) View() string {
	body, _ := m.renderBody()
	if m.ready {
		body = m.viewport.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Study Tracker"),
		m.renderTabs(),
		m.renderSubheader(),
		body,
		m.renderNotifications(),
		m.renderHelp(),
	)
}

func (m *Model) renderTabs() string {
	var parts []string
	for _, v := range m.tabs {
		label := m.labels[v]
		switch {
		case v == nav.Bookmarks:
			label = fmt.Sprintf("%s (%d)", label, m.screen.bookmarkCount)
		default:
			if p, ok := m.screen.progress[string(v)]; ok && p.Total > 0 {
				label = fmt.Sprintf("%s %d%%", label, p.Percent)
			}
		}
		style := tabStyle
		if v == m.screen.active {
			style = activeTabStyle
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderSubheader() string {
	v := m.screen.active
	switch {
	case m.searching || v == nav.SearchResults:
		line := m.search.View()
		if v == nav.SearchResults && m.screen.query != "" {
			line += mutedStyle.Render(fmt.Sprintf("  %d results for %q", m.screen.resultCount, m.screen.query))
		}
		return line
	case v == nav.Bookmarks:
		return mutedStyle.Render(fmt.Sprintf("%d bookmarked", m.screen.bookmarkCount))
	default:
		return renderBar(m.screen.progress[string(v)])
	}
}

// renderBar draws a category progress bar like "█████░░░░░ 5/10 (50%)".
// Stale completed ids can push the ratio past 100%; the bar then stays full.
func renderBar(p progress.Progress) string {
	if p.Total == 0 {
		return mutedStyle.Render("no questions yet")
	}
	full := min(max(p.Percent*barWidth/100, 0), barWidth)
	return barFullStyle.Render(strings.Repeat("█", full)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-full)) +
		fmt.Sprintf(" %d/%d (%d%%)", p.Completed, p.Total, p.Percent)
}

// renderBody draws the active view and returns the line the cursor card starts on.
func (m *Model) renderBody() (string, int) {
	v := m.screen.active
	l := m.screen.list(v)

	if len(l.Cards) == 0 {
		switch {
		case l.Empty != "":
			return mutedStyle.Render(l.Empty), 0
		case v == nav.SearchResults && m.screen.query != "":
			return mutedStyle.Render("0 results"), 0
		}
		return "", 0
	}

	var b strings.Builder
	line, cursorLine := 0, 0
	for i, c := range l.Cards {
		selected := i == m.cursor[v]
		if selected {
			cursorLine = line
		}
		text := m.renderCard(c, selected)
		b.WriteString(text)
		b.WriteString("\n")
		line += strings.Count(text, "\n") + 1
	}
	return strings.TrimRight(b.String(), "\n"), cursorLine
}

func (m *Model) renderCard(c cards.CardView, selected bool) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("> ")
	}
	done := "[ ]"
	if c.Completed {
		done = completedStyle.Render("[✓]")
	}
	star := " "
	if c.Bookmarked {
		star = bookmarkStyle.Render("★")
	}

	title := c.Title
	if p := c.Project; p != nil && p.Icon != "" {
		title = p.Icon + " " + title
	}
	head := fmt.Sprintf("%s%s %s %s %s", marker, done, star, numberStyle.Render(fmt.Sprintf("%2d.", c.NumberLabel)), title)
	for _, tag := range c.Tags {
		head += " " + tagStyle.Render("#"+tag)
	}
	if !m.expanded[c.ID] {
		return head
	}

	var body []string
	if p := c.Project; p != nil {
		if p.Description != "" {
			body = append(body, p.Description)
		}
		if p.Difficulty != "" {
			body = append(body, "Difficulty: "+p.Difficulty)
		}
		if len(p.Tech) > 0 {
			body = append(body, "Tech: "+strings.Join(p.Tech, ", "))
		}
		for _, f := range p.Features {
			body = append(body, "• "+f)
		}
	}
	if text := cards.PlainText(c.AnswerHTML); text != "" {
		body = append(body, text)
	}

	width := m.width - 2
	if width < 20 {
		width = 20
	}
	return head + "\n" + answerStyle.Width(width).Render(strings.Join(body, "\n"))
}

func (m *Model) renderNotifications() string {
	var parts []string
	for _, n := range m.notes {
		style := notificationStyle
		if n.fading {
			style = fadingStyle
		}
		parts = append(parts, style.Render(n.Message))
	}
	if m.status != "" {
		parts = append(parts, errorStyle.Render(m.status))
	}
	return strings.Join(parts, " ")
}

// renderHelp lists the keys for the card under the cursor, one per target.
func (m *Model) renderHelp() string {
	if m.searching {
		return mutedStyle.Render("type to search · enter done · esc clear")
	}
	hints := []string{"tab views", "/ search", "q quit"}
	if card, ok := m.current(); ok {
		var actions []string
		for _, t := range cards.Targets(card) {
			actions = append(actions, fmt.Sprintf("%s %s", actionKeys[t.Action], t.Action))
		}
		hints = append(actions, hints...)
	}
	return mutedStyle.Render(strings.Join(hints, " · "))
}

// Run starts the terminal UI and blocks until the user quits. Notifications
// from emitter are delivered to the program as messages.
func Run(tr *tracker.Tracker, screen *Screen, emitter *notifications.Emitter) error {
	p := tea.NewProgram(New(tr, screen), tea.WithAltScreen())
	if emitter != nil {
		emitter.Subscribe(notifications.SinkFunc(func(ev notifications.Event) {
			// Events may fire inside Update; sending must not block the loop.
			go p.Send(notificationMsg(ev))
		}))
	}
	_, err := p.Run()
	return err
}
