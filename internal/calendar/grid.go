package calendar

import "time"

// Class is the temporal classification of a day cell.
type Class int

const (
	// ClassFuture is used for every day outside the real current month.
	ClassFuture Class = iota
	// ClassPast marks days before today in the current month.
	ClassPast
	// ClassToday marks the real current date.
	ClassToday
)

// String returns the lowercase name of c.
func (c Class) String() string {
	switch c {
	case ClassPast:
		return "past"
	case ClassToday:
		return "today"
	default:
		return "future"
	}
}

// DayCell is one day in a rendered grid. HasImage is set asynchronously
// after the grid is built.
type DayCell struct {
	Day      int
	Class    Class
	HasImage bool
}

// MarkImage sets the has-image indicator. It reports whether the cell
// changed, so a second mark for the same day is a no-op.
func (c *DayCell) MarkImage() bool {
	if c.HasImage {
		return false
	}
	c.HasImage = true
	return true
}

// Grid is the full layout for one ViewMonth.
type Grid struct {
	View    ViewMonth
	Leading int // blank cells before day 1
	Days    []DayCell
}

// Build computes the grid for v, classifying days against now.
func Build(v ViewMonth, now time.Time) Grid {
	n := v.DaysIn()
	g := Grid{
		View:    v,
		Leading: v.FirstWeekday(),
		Days:    make([]DayCell, n),
	}

	isCurrent := v == Today(now)
	for i := range g.Days {
		d := i + 1
		cell := DayCell{Day: d, Class: ClassFuture}
		if isCurrent {
			switch {
			case d < now.Day():
				cell.Class = ClassPast
			case d == now.Day():
				cell.Class = ClassToday
			}
		}
		g.Days[i] = cell
	}
	return g
}

// Cell returns a pointer to the cell for day, or nil if out of range.
func (g *Grid) Cell(day int) *DayCell {
	if day < 1 || day > len(g.Days) {
		return nil
	}
	return &g.Days[day-1]
}

// Rows returns the number of week rows the grid occupies.
func (g Grid) Rows() int {
	total := g.Leading + len(g.Days)
	return (total + 6) / 7
}

// Position returns the zero-based (column, row) of day within the grid.
func (g Grid) Position(day int) (col, row int) {
	idx := g.Leading + day - 1
	return idx % 7, idx / 7
}

// DayAt returns the day number at (col, row), or 0 for a blank slot.
func (g Grid) DayAt(col, row int) int {
	if col < 0 || col > 6 || row < 0 {
		return 0
	}
	d := row*7 + col - g.Leading + 1
	if d < 1 || d > len(g.Days) {
		return 0
	}
	return d
}
