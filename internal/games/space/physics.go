package space

import (
	"math"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
)

// UpdateSpeed returns the next speed on one axis.
//
// The current speed first fades toward zero. A held direction then adds an
// acceleration that shrinks as the speed approaches the limit, and the result
// is clamped to [-limit, limit]. Speeds under the stop threshold snap to zero,
// so a released control coasts to a full stop without overshooting.
func UpdateSpeed(speed, limit float64, direction int, cfg config.ShipConfig) float64 {
	limit = math.Abs(limit)
	speed *= cfg.Fading

	if direction != 0 && limit > 0 {
		delta := math.Cos(speed/limit) * cfg.Acceleration
		if direction > 0 {
			speed += delta
		} else {
			speed -= delta
		}
		speed = core.ClampF(speed, -limit, limit)
	}

	if math.Abs(speed) < cfg.StopThreshold {
		speed = 0
	}
	return speed
}

// ClampPosition keeps a frame of the given extent inside the playfield with
// indent cells to spare on both sides. If the frame does not fit, the lower
// bound wins.
func ClampPosition(pos float64, extent, frame, indent int) float64 {
	return core.ClampF(pos, float64(indent), float64(extent-frame-indent))
}
