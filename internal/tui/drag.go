package tui

// dragState tracks a pointer drag of the popup header. Only the single open
// popup can be dragged, so one state lives on the model.
type dragState struct {
	active       bool
	lastX, lastY int
}

// start records the pointer position at press.
func (d *dragState) start(x, y int) {
	d.active = true
	d.lastX, d.lastY = x, y
}

// move returns the delta since the last reference point and advances it.
func (d *dragState) move(x, y int) (dx, dy int) {
	dx, dy = x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	return dx, dy
}

func (d *dragState) stop() {
	d.active = false
}
