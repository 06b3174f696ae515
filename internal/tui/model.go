package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/glabrego/ilm-cli/internal/content"
	"github.com/glabrego/ilm-cli/internal/feed"
	"github.com/glabrego/ilm-cli/internal/logging"
	"github.com/glabrego/ilm-cli/internal/tui/actions"
	"github.com/glabrego/ilm-cli/internal/tui/platform"
	tuistate "github.com/glabrego/ilm-cli/internal/tui/state"
	tuitheme "github.com/glabrego/ilm-cli/internal/tui/theme"
	"github.com/glabrego/ilm-cli/internal/tui/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	statusTTL     = 4 * time.Second
)

type Service = actions.Service

type clearStatusMsg struct {
	id int
}

type Model struct {
	service Service
	feed    feed.State
	theme   tuitheme.Theme
	keys    keyMap
	help    help.Model

	width  int
	height int

	// Spring-animated scroll position in rows. target is the page the
	// spring is heading to.
	spring         harmonica.Spring
	scrollPos      float64
	scrollVelocity float64
	scrollTarget   float64
	target         int
	animating      bool

	inDetail bool
	detailID string
	detail   viewport.Model

	showHelp bool
	loading  bool
	status   string
	statusID int
	err      error
	copyFn   func(string) error
}

func NewModel(service Service, initial feed.State) Model {
	m := Model{
		service: service,
		feed:    initial,
		theme:   tuitheme.Default(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		spring:  harmonica.NewSpring(harmonica.FPS(60), 7.0, 0.9),
		detail:  viewport.New(defaultWidth, defaultHeight),
		copyFn:  platform.CopyTextToClipboard,
		loading: service != nil,
	}
	m.target = max(initial.Focus, 0)
	m.snapScroll()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	return actions.RegenerateCmd(m.service, "init")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeDetail()
		m.snapScroll()
		return m, nil
	case actions.RegenerateSuccessMsg:
		return m.applyRegenerate(msg)
	case actions.RegenerateErrorMsg:
		m.loading = false
		m.err = msg.Err
		logging.Error("regenerate failed", "source", msg.Source, "err", msg.Err, "duration", msg.Duration)
		return m, nil
	case actions.FrameMsg:
		return m.stepScroll()
	case actions.CopySuccessMsg:
		return m.setStatus(msg.Status)
	case actions.CopyErrorMsg:
		m.err = msg.Err
		return m, nil
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.inDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Back) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.inDetail {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.closeDetail()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			item, err := m.feed.Expand(m.detailID)
			if err != nil {
				return m.detailGone(err)
			}
			return m, actions.CopyTextCmd(view.CopyText(item), m.copyFn)
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m.scrollTo(m.target + 1)
	case key.Matches(msg, m.keys.Prev):
		return m.scrollTo(m.target - 1)
	case key.Matches(msg, m.keys.First):
		return m.scrollTo(0)
	case key.Matches(msg, m.keys.Last):
		return m.scrollTo(m.feed.Len() - 1)
	case key.Matches(msg, m.keys.Regenerate):
		if m.service == nil || m.loading {
			return m, nil
		}
		m.loading = true
		m.err = nil
		return m, actions.RegenerateCmd(m.service, "manual")
	case key.Matches(msg, m.keys.Expand):
		return m.openDetail()
	case key.Matches(msg, m.keys.Copy):
		entry, ok := m.feed.Focused()
		if !ok {
			return m, nil
		}
		return m, actions.CopyTextCmd(view.CopyText(entry.Item), m.copyFn)
	}
	return m, nil
}

func (m Model) applyRegenerate(msg actions.RegenerateSuccessMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.err = nil
	m.feed = msg.State
	m.target = max(m.feed.Focus, 0)
	m.scrollVelocity = 0
	m.animating = false
	m.snapScroll()
	logging.Info("feed regenerated", "source", msg.Source, "entries", m.feed.Len(), "duration", msg.Duration)

	if m.inDetail {
		item, err := m.feed.Expand(m.detailID)
		if err != nil {
			return m.detailGone(err)
		}
		m.setDetailContent(item)
	}
	if msg.Source == "manual" {
		return m.setStatus(fmt.Sprintf("New feed with %d entries", m.feed.Len()))
	}
	return m, nil
}

func (m Model) scrollTo(index int) (tea.Model, tea.Cmd) {
	n := m.feed.Len()
	if n == 0 {
		return m, nil
	}
	index = tuistate.ClampCursor(index, n)
	if index == m.target {
		return m, nil
	}
	m.target = index
	m.scrollTarget = tuistate.ScrollTarget(index, m.pageHeight())
	if m.animating {
		return m, nil
	}
	m.animating = true
	return m, actions.FrameTickCmd()
}

func (m Model) stepScroll() (tea.Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}
	m.scrollPos, m.scrollVelocity = m.spring.Update(m.scrollPos, m.scrollVelocity, m.scrollTarget)
	if tuistate.Settled(m.scrollPos, m.scrollVelocity, m.scrollTarget) {
		m.scrollPos = m.scrollTarget
		m.scrollVelocity = 0
		m.animating = false
	}
	m.syncFocus()
	if m.animating {
		return m, actions.FrameTickCmd()
	}
	return m, nil
}

// syncFocus recomputes the focused entry from the on-screen page centers.
func (m *Model) syncFocus() {
	ph := m.pageHeight()
	offsets := tuistate.VisibleOffsets(m.scrollPos, ph, ph, m.feed.Len())
	next := feed.UpdateFocus(offsets, tuistate.ViewportCenter(ph), m.feed.Focus)
	updated, changed := m.feed.WithFocus(next)
	if !changed {
		return
	}
	m.feed = updated
	if entry, ok := m.feed.Focused(); ok {
		logging.Debug("focus changed", "index", next, "id", entry.ID, "title", content.DisplayOf(entry.Item).Title)
	}
}

func (m Model) openDetail() (tea.Model, tea.Cmd) {
	entry, ok := m.feed.Focused()
	if !ok {
		return m, nil
	}
	if !entry.Long {
		return m.setStatus("Already showing the full text")
	}
	item, err := m.feed.Expand(entry.ID)
	if err != nil {
		return m.detailGone(err)
	}
	m.inDetail = true
	m.detailID = entry.ID
	m.resizeDetail()
	m.setDetailContent(item)
	logging.Debug("detail opened", "id", entry.ID)
	return m, nil
}

func (m *Model) closeDetail() {
	m.inDetail = false
	m.detailID = ""
	m.detail.SetContent("")
}

// detailGone closes the sheet when its entry no longer exists.
func (m Model) detailGone(err error) (tea.Model, tea.Cmd) {
	var nf *feed.NotFoundError
	if !errors.As(err, &nf) {
		m.err = err
		return m, nil
	}
	logging.Debug("detail entry gone", "id", nf.ID)
	m.closeDetail()
	return m.setStatus("That entry is no longer in the feed")
}

func (m *Model) setDetailContent(item content.Item) {
	lines := view.DetailLines(item, m.detail.Width, m.theme)
	m.detail.SetContent(strings.Join(lines, "\n"))
	m.detail.GotoTop()
}

func (m *Model) resizeDetail() {
	// Sheet border and padding take two columns on each side and one row
	// top and bottom.
	m.detail.Width = max(m.contentWidth()-4, 10)
	m.detail.Height = max(m.pageHeight()-2, 1)
	if m.inDetail {
		if item, err := m.feed.Expand(m.detailID); err == nil {
			m.setDetailContent(item)
		}
	}
}

func (m Model) setStatus(status string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = status
	return m, clearStatusCmd(m.statusID, statusTTL)
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m *Model) snapScroll() {
	m.scrollTarget = tuistate.ScrollTarget(m.target, m.pageHeight())
	m.scrollPos = m.scrollTarget
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) pageHeight() int {
	if m.height <= 0 {
		return tuistate.PageHeight(defaultHeight)
	}
	return tuistate.PageHeight(m.height)
}

func (m Model) View() string {
	width := m.contentWidth()
	ph := m.pageHeight()

	var b strings.Builder
	b.WriteString(view.HeaderBar("Feed", m.feed.Focus, m.feed.Len(), width, m.theme))
	b.WriteString("\n")
	warning := ""
	if m.err != nil {
		warning = m.err.Error()
	}
	b.WriteString(view.Message(m.loading, m.err != nil, m.status, warning, m.theme))
	b.WriteString("\n")
	if m.inDetail {
		b.WriteString(m.help.ShortHelpView(newDetailKeys(m.keys).ShortHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	b.WriteString("\n")

	var body []string
	switch {
	case m.showHelp:
		full := m.help
		full.ShowAll = true
		body = view.FitLines(strings.Split("\n"+full.View(m.keys), "\n"), width, ph)
	case m.inDetail:
		body = view.FitLines(strings.Split(m.theme.Sheet.Width(width-2).Render(m.detail.View()), "\n"), width, ph)
	case m.feed.Len() == 0 && m.loading:
		body = view.FitLines([]string{"", "  Loading feed..."}, width, ph)
	case m.feed.Len() == 0:
		body = view.EmptyFeed(width, ph, m.theme)
	default:
		body = m.pagesWindow(width, ph)
	}
	b.WriteString(strings.Join(body, "\n"))
	return b.String()
}

// pagesWindow draws the rows of the stacked pages currently under the
// viewport. Rows outside the feed stay blank.
func (m Model) pagesWindow(width, ph int) []string {
	start := tuistate.WindowStart(m.scrollPos)
	rendered := make(map[int][]string, 2)
	out := make([]string, ph)
	for i := range out {
		row := start + i
		if row < 0 {
			continue
		}
		page := row / ph
		if page >= m.feed.Len() {
			continue
		}
		lines, ok := rendered[page]
		if !ok {
			lines = view.RenderPage(view.PageParams{
				Entry:  m.feed.Entries[page],
				Width:  width,
				Height: ph,
			}, m.theme)
			rendered[page] = lines
		}
		out[i] = lines[row%ph]
	}
	return out
}
