package ui

import (
	"time"

	"system-indicators/models"
)

// Messages

type tickMsg time.Time

type sweepMsg struct {
	labels []models.Label
}
