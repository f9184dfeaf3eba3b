package input

import (
	"github.com/obbycraft/obby/config"
	"github.com/obbycraft/obby/mathutil"
)

// Look accumulates camera yaw/pitch from raw per-frame look deltas. Deltas
// are exponentially smoothed before scaling, so a single large mouse event
// bleeds over a few frames instead of snapping the view.
type Look struct {
	cfg config.Look

	smoothDX float64
	smoothDY float64

	yaw   float64
	pitch float64
}

func NewLook(cfg config.Look) *Look {
	return &Look{cfg: cfg}
}

// Apply feeds one frame of raw look deltas into the mapper.
func (l *Look) Apply(dx, dy float64) {
	l.smoothDX = mathutil.Lerp(l.smoothDX, dx, 1-l.cfg.Smoothing)
	l.smoothDY = mathutil.Lerp(l.smoothDY, dy, 1-l.cfg.Smoothing)

	xsign := 1.0
	if l.cfg.InvertX {
		xsign = -1.0
	}
	l.yaw += xsign * l.smoothDX * l.cfg.Sensitivity

	ysign := -1.0
	if l.cfg.InvertY {
		ysign = 1.0
	}
	pitch := l.pitch + ysign*l.smoothDY*l.cfg.Sensitivity
	l.pitch = mathutil.ClampFloat(pitch, -l.cfg.PitchLimit, l.cfg.PitchLimit)
}

func (l *Look) Yaw() float64   { return l.yaw }
func (l *Look) Pitch() float64 { return l.pitch }

// SetOrientation overrides the current orientation, used on respawn.
func (l *Look) SetOrientation(yaw, pitch float64) {
	l.yaw = yaw
	l.pitch = mathutil.ClampFloat(pitch, -l.cfg.PitchLimit, l.cfg.PitchLimit)
}

// SetConfig swaps the look settings; smoothing state carries over.
func (l *Look) SetConfig(cfg config.Look) {
	l.cfg = cfg
}
