package jumper

// HoldInput turns discrete key presses into a held horizontal direction.
//
// Terminals report key presses and auto-repeat but never releases, so a
// press latches its direction for holdTicks ticks. Auto-repeat renews the
// latch while the key stays down; pressing the other way switches at once.
type HoldInput struct {
	holdTicks int
	dir       int
	remaining int
}

// NewHoldInput creates an input collector. holdTicks below 1 means a press
// lasts exactly one tick.
func NewHoldInput(holdTicks int) *HoldInput {
	return &HoldInput{holdTicks: max(1, holdTicks)}
}

// Press latches dir (-1 left, +1 right). Zero releases.
func (h *HoldInput) Press(dir int) {
	switch {
	case dir < 0:
		h.dir = -1
	case dir > 0:
		h.dir = 1
	default:
		h.Release()
		return
	}
	h.remaining = h.holdTicks
}

// Release drops any held direction.
func (h *HoldInput) Release() {
	h.dir = 0
	h.remaining = 0
}

// Tick returns the direction for the current tick and ages the latch.
func (h *HoldInput) Tick() int {
	if h.remaining == 0 {
		return 0
	}
	dir := h.dir
	h.remaining--
	if h.remaining == 0 {
		h.dir = 0
	}
	return dir
}

// Intent converts the direction for this tick into a signed speed.
func (h *HoldInput) Intent(speed float64) float64 {
	return float64(h.Tick()) * speed
}
