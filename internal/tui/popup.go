package tui

import (
	"context"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/papapumpkin/almanac/internal/assets"
	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/probe"
)

// noEvents is shown until the first image for the day is found.
const noEvents = "No events posted."

// nextPopupHandle issues popup handles. A handle is never reused, so a
// probe result can be matched against the live popup by value.
var nextPopupHandle atomic.Uint64

// Popup is the single day-detail panel. It is owned by AppModel; closing
// cancels its context and the model drops the pointer.
type Popup struct {
	Handle           uint64
	Year, Month, Day int
	X, Y             int
	Images           probe.ResultSet

	ctx      context.Context
	cancel   context.CancelFunc
	cands    []assets.Candidate
	wave     int
	settled  map[int]bool
	previews map[string]string
}

func newPopup(year, month, day int, letters string) *Popup {
	ctx, cancel := context.WithCancel(context.Background())
	return &Popup{
		Handle:   nextPopupHandle.Add(1),
		Year:     year,
		Month:    month,
		Day:      day,
		ctx:      ctx,
		cancel:   cancel,
		cands:    assets.Candidates(year, month, day, letters),
		settled:  make(map[int]bool),
		previews: make(map[string]string),
	}
}

// Title returns the header text, with the month 1-based.
func (p *Popup) Title() string {
	return calendar.ViewMonth{Year: p.Year, Month: p.Month}.EventsTitle(p.Day)
}

// Pending reports whether any candidate probe has not resolved yet.
func (p *Popup) Pending() bool {
	return len(p.settled) < len(p.cands)
}

// probeAll starts a new wave with one command per candidate. Earlier
// results are kept; the image set only grows.
func (p *Popup) probeAll(src assets.Source, log *zap.Logger) tea.Cmd {
	p.wave++
	clear(p.settled)
	cmds := make([]tea.Cmd, 0, len(p.cands))
	for _, c := range p.cands {
		cmds = append(cmds, probePopupCmd(p.ctx, src, log, p.Handle, p.wave, c))
	}
	return tea.Batch(cmds...)
}

// apply records a probe result from the given wave. A hit from an older
// wave still adds its image but settles nothing. It reports whether it
// added a new image.
func (p *Popup) apply(wave int, r probe.Result) bool {
	if wave == p.wave {
		p.settled[r.Candidate.Index] = true
	}
	return r.Found && p.Images.Add(r.Candidate)
}

func (p *Popup) close() {
	p.cancel()
}

// moveBy translates the popup, keeping its header on a screen of the given
// size. A zero size means the terminal size is not known yet.
func (p *Popup) moveBy(dx, dy, width, height int) {
	p.X += dx
	p.Y += dy
	if width > 0 {
		p.X = min(p.X, max(0, width-popupWidth))
	}
	if height > 0 {
		p.Y = min(p.Y, max(0, height-3))
	}
	p.X = max(0, p.X)
	p.Y = max(0, p.Y)
}

type popupHit int

const (
	hitNone popupHit = iota
	hitBody
	hitHeader
	hitClose
)

// hit classifies a screen position against a popup rendered with the
// given height.
func (p *Popup) hit(x, y, height int) popupHit {
	if x < p.X || x >= p.X+popupWidth || y < p.Y || y >= p.Y+height {
		return hitNone
	}
	if y != p.Y+1 {
		return hitBody
	}
	// The close control sits in the last content column.
	closeX := p.X + popupWidth - 3
	if x >= closeX-1 && x <= closeX+1 {
		return hitClose
	}
	return hitHeader
}

// View renders the popup box. spin is drawn in the header while probes
// are pending.
func (p *Popup) View(spin string, dragging bool) string {
	right := stylePopupClose.Render(iconClose)
	if p.Pending() {
		right = spin + " " + right
	}
	title := stylePopupTitle.Render(TruncateWithEllipsis(p.Title(), popupContentWidth-lipgloss.Width(right)-1))
	gap := max(1, popupContentWidth-lipgloss.Width(title)-lipgloss.Width(right))
	header := title + strings.Repeat(" ", gap) + right

	var body strings.Builder
	if p.Images.Len() == 0 {
		body.WriteString(stylePopupEmpty.Render(noEvents))
	}
	for i, path := range p.Images.Paths() {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(stylePopupPath.Render(TruncateWithEllipsis(path, popupContentWidth)))
		if prev, ok := p.previews[path]; ok && prev != "" {
			body.WriteString("\n")
			body.WriteString(prev)
		}
	}

	border := stylePopupBorder
	if dragging {
		border = stylePopupBorderDragging
	}
	content := header + "\n" + styleDetailDim.Render(strings.Repeat("─", popupContentWidth)) + "\n" + body.String()
	return border.Width(popupWidth - 2).Render(content)
}

func probePopupCmd(ctx context.Context, src assets.Source, log *zap.Logger, handle uint64, wave int, c assets.Candidate) tea.Cmd {
	return func() tea.Msg {
		return MsgPopupProbe{Handle: handle, Wave: wave, Result: probe.One(ctx, src, c, log)}
	}
}

func loadPreviewCmd(ctx context.Context, src assets.Source, handle uint64, path string) tea.Cmd {
	return func() tea.Msg {
		img, err := assets.Load(ctx, src, path)
		if err != nil {
			return MsgPreviewLoaded{Handle: handle, Path: path, Err: err}
		}
		return MsgPreviewLoaded{Handle: handle, Path: path, Preview: RenderPreview(img, previewCols, previewRows)}
	}
}
