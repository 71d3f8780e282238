package tui

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/papapumpkin/almanac/internal/assets"
	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/probe"
	"github.com/papapumpkin/almanac/internal/telemetry"
	"github.com/papapumpkin/almanac/internal/watch"
)

// Deps are the collaborators the model reads assets through and reports to.
// Only Source is required.
type Deps struct {
	Source    assets.Source
	Root      string // shown in the status bar
	Letters   string
	Preview   bool
	Log       *zap.Logger
	Telemetry *telemetry.Emitter
	Watcher   *watch.Watcher
	Now       func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// nextRenderGen issues render generations. Day probe results carrying an
// older generation are dropped.
var nextRenderGen atomic.Uint64

// AppModel is the root BubbleTea model for the calendar.
type AppModel struct {
	Month  calendar.ViewMonth
	Grid   calendar.Grid
	Cursor int // selected day of Month, 1-based
	Popup  *Popup
	Keys   KeyMap
	Width  int
	Height int

	deps         Deps
	renderGen    uint64
	renderCancel context.CancelFunc
	drag         dragState
	spinner      spinner.Model
	initCmd      tea.Cmd
}

// NewAppModel creates a model showing view. The first render's probes are
// started by Init.
func NewAppModel(view calendar.ViewMonth, deps Deps) AppModel {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	m := AppModel{
		Keys:    DefaultKeyMap(),
		deps:    deps,
		spinner: s,
	}
	m.initCmd = m.render(view)
	return m
}

// Init starts the first render's probes and, when watching, waits for
// asset changes.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.initCmd, waitForAssets(m.deps.Watcher))
}

// Update handles all incoming messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.Popup != nil {
			m.Popup.moveBy(0, 0, m.Width, m.Height)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case MsgDayProbed:
		if msg.Gen != m.renderGen || !msg.Found {
			return m, nil
		}
		if cell := m.Grid.Cell(msg.Day); cell != nil {
			cell.MarkImage()
		}
		return m, nil

	case MsgPopupProbe:
		return m.handlePopupProbe(msg)

	case MsgPreviewLoaded:
		if m.Popup == nil || msg.Handle != m.Popup.Handle {
			return m, nil
		}
		if msg.Err != nil {
			m.deps.Log.Debug("preview failed", zap.String("path", msg.Path), zap.Error(msg.Err))
			return m, nil
		}
		m.Popup.previews[msg.Path] = msg.Preview
		return m, nil

	case MsgAssetsChanged:
		m.deps.Log.Debug("assets changed", zap.String("dir", msg.Dir))
		cmds := []tea.Cmd{m.render(m.Month), waitForAssets(m.deps.Watcher)}
		if p := m.Popup; p != nil {
			cmds = append(cmds, p.probeAll(m.deps.Source, m.deps.Log), m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if m.Popup == nil || !m.Popup.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.closePopup()
		if m.renderCancel != nil {
			m.renderCancel()
		}
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Close):
		m.closePopup()
	case key.Matches(msg, m.Keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.Keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.Keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.Keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.Keys.PrevMonth):
		return m, m.render(m.Month.Previous())
	case key.Matches(msg, m.Keys.NextMonth):
		return m, m.render(m.Month.Next())
	case key.Matches(msg, m.Keys.Today):
		return m, m.render(calendar.Today(m.deps.now()))
	case key.Matches(msg, m.Keys.Open):
		return m, m.openPopup(m.Month.Year, m.Month.Month, m.Cursor)
	}
	return m, nil
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if p := m.Popup; p != nil {
			switch p.hit(msg.X, msg.Y, lipgloss.Height(m.popupView())) {
			case hitClose:
				m.closePopup()
				return m, nil
			case hitHeader:
				m.drag.start(msg.X, msg.Y)
				return m, nil
			case hitBody:
				return m, nil
			}
		}
		switch arrowAt(msg.X, msg.Y) {
		case -1:
			return m, m.render(m.Month.Previous())
		case 1:
			return m, m.render(m.Month.Next())
		}
		if day := m.dayAt(msg.X, msg.Y); day > 0 {
			m.Cursor = day
			return m, m.openPopup(m.Month.Year, m.Month.Month, day)
		}

	case tea.MouseActionMotion:
		if m.drag.active && m.Popup != nil {
			dx, dy := m.drag.move(msg.X, msg.Y)
			m.Popup.moveBy(dx, dy, m.Width, m.Height)
		}

	case tea.MouseActionRelease:
		m.drag.stop()
	}
	return m, nil
}

// render switches to view, rebuilds the grid and starts one existence
// check per day. Checks from any earlier render are cancelled and their
// results ignored.
func (m *AppModel) render(view calendar.ViewMonth) tea.Cmd {
	if m.renderCancel != nil {
		m.renderCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.renderCancel = cancel
	m.renderGen = nextRenderGen.Add(1)

	now := m.deps.now()
	m.Month = view
	m.Grid = calendar.Build(view, now)
	switch {
	case view == calendar.Today(now):
		m.Cursor = now.Day()
	case m.Cursor < 1:
		m.Cursor = 1
	case m.Cursor > len(m.Grid.Days):
		m.Cursor = len(m.Grid.Days)
	}

	if w := m.deps.Watcher; w != nil {
		if err := w.Follow(assets.DayDir(view.Year, view.Month)); err != nil {
			m.deps.Log.Debug("watch follow failed", zap.Error(err))
		}
	}
	_ = m.deps.Telemetry.Emit(telemetry.Event{Kind: telemetry.KindRender, Month: view.String()})

	cmds := make([]tea.Cmd, 0, len(m.Grid.Days))
	for _, cell := range m.Grid.Days {
		cmds = append(cmds, probeDayCmd(ctx, m.deps, m.renderGen, view, cell.Day))
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) moveCursor(delta int) {
	m.Cursor = min(max(1, m.Cursor+delta), len(m.Grid.Days))
}

// openPopup disposes of any open popup and opens one for the given day.
func (m *AppModel) openPopup(year, month, day int) tea.Cmd {
	if day < 1 {
		return nil
	}
	m.closePopup()

	p := newPopup(year, month, day, m.deps.Letters)
	p.X, p.Y = m.popupOrigin()
	m.Popup = p
	_ = m.deps.Telemetry.Emit(telemetry.Event{
		Kind:  telemetry.KindPopupOpen,
		Month: calendar.ViewMonth{Year: year, Month: month}.String(),
		Day:   day,
	})
	return tea.Batch(p.probeAll(m.deps.Source, m.deps.Log), m.spinner.Tick)
}

// closePopup removes the open popup, if any. Its in-flight probes are
// cancelled and any that still resolve no longer match a live handle.
func (m *AppModel) closePopup() {
	p := m.Popup
	if p == nil {
		return
	}
	p.close()
	m.Popup = nil
	m.drag.stop()
	_ = m.deps.Telemetry.Emit(telemetry.Event{
		Kind:  telemetry.KindPopupClose,
		Month: calendar.ViewMonth{Year: p.Year, Month: p.Month}.String(),
		Day:   p.Day,
		Data:  map[string]int{"images": p.Images.Len()},
	})
}

func (m AppModel) handlePopupProbe(msg MsgPopupProbe) (tea.Model, tea.Cmd) {
	p := m.Popup
	if p == nil || msg.Handle != p.Handle {
		return m, nil
	}
	if !p.apply(msg.Wave, msg.Result) {
		return m, nil
	}
	_ = m.deps.Telemetry.Emit(telemetry.Event{
		Kind:  telemetry.KindProbeHit,
		Month: calendar.ViewMonth{Year: p.Year, Month: p.Month}.String(),
		Day:   p.Day,
		Data:  map[string]string{"path": msg.Result.Candidate.Path},
	})
	if !m.deps.Preview {
		return m, nil
	}
	return m, loadPreviewCmd(p.ctx, m.deps.Source, p.Handle, msg.Result.Candidate.Path)
}

// popupOrigin places a new popup beside the grid when the terminal is wide
// enough, otherwise over it.
func (m AppModel) popupOrigin() (x, y int) {
	beside := gridLeft + gridWidth + 2
	if m.Width >= beside+popupWidth {
		return beside, headerRow
	}
	return 2, weekdayRow
}

func (m AppModel) popupView() string {
	if m.Popup == nil {
		return ""
	}
	return m.Popup.View(m.spinner.View(), m.drag.active)
}

// View renders the calendar with the popup composited at its position.
func (m AppModel) View() string {
	status := StatusBar{
		Root:     m.deps.Root,
		Marked:   m.markedDays(),
		Days:     len(m.Grid.Days),
		Watching: m.deps.Watcher != nil,
		Width:    m.Width,
	}.View()

	bindings := CalendarFooterBindings(m.Keys)
	if m.Popup != nil {
		bindings = PopupFooterBindings(m.Keys)
	}
	footer := Footer{Width: m.Width, Bindings: bindings}.View()

	body := m.calendarView()
	if m.Height > 0 {
		body = padLines(body, m.Height-lipgloss.Height(status)-lipgloss.Height(footer))
	}
	frame := lipgloss.JoinVertical(lipgloss.Left, body, status, footer)

	if m.Popup != nil {
		frame = compositeAt(frame, m.popupView(), m.Popup.X, m.Popup.Y)
	}
	return frame
}

func (m AppModel) markedDays() int {
	n := 0
	for _, d := range m.Grid.Days {
		if d.HasImage {
			n++
		}
	}
	return n
}

func probeDayCmd(ctx context.Context, deps Deps, gen uint64, view calendar.ViewMonth, day int) tea.Cmd {
	return func() tea.Msg {
		cands := assets.Candidates(view.Year, view.Month, day, deps.Letters)
		return MsgDayProbed{Gen: gen, Day: day, Found: probe.AnyExists(ctx, deps.Source, cands, deps.Log)}
	}
}

// waitForAssets blocks on the watcher's next change. It yields nil once
// the watcher is stopped.
func waitForAssets(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-w.Changes
		if !ok {
			return nil
		}
		return MsgAssetsChanged{Dir: c.Dir}
	}
}
