package presenter

import "system-indicators/models"

// HoldTicks is how many ticks a label stays up after its condition was last true
const HoldTicks = 10

// Hold keeps a label visible for a while after activity
type Hold struct {
	remaining int
}

// Observe records this tick's condition and reports whether to show text
func (h *Hold) Observe(visible bool) bool {
	if visible {
		h.remaining = HoldTicks
	} else if h.remaining > 0 {
		h.remaining--
	}
	return h.remaining > 0
}

// Remaining returns the current countdown
func (h *Hold) Remaining() int {
	return h.remaining
}

// Clamp01 maps value into [0, 1] relative to [low, high]
func Clamp01(low, high, value float64) float64 {
	if value < low {
		return 0
	}
	if value > high {
		return 1
	}
	return (value - low) / (high - low)
}

// Urgency is 0 without a band
func Urgency(band *models.Band, value float64) float64 {
	if band == nil {
		return 0
	}
	return Clamp01(band.Low, band.High, value)
}

// Color tints black towards red as urgency goes from 0 to 1
func Color(urgency float64) models.RGB {
	return models.RGB{R: uint8(urgency * 255)}
}
