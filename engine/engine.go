package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"system-indicators/collector"
	"system-indicators/models"
)

// Interval is the tick period
const Interval = time.Second

// Engine runs one sweep over all indicators per tick
type Engine struct {
	indicators []*Indicator
	failing    []bool
	sources    collector.Sources
	interval   time.Duration
	logger     *slog.Logger
}

// New builds the indicators in configured order
func New(specs []models.IndicatorSpec, sources collector.Sources, interval time.Duration, logger *slog.Logger) (*Engine, error) {
	if len(specs) == 0 {
		return nil, errors.New("no indicators")
	}
	if interval <= 0 {
		interval = Interval
	}
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		failing:  make([]bool, len(specs)),
		sources:  sources,
		interval: interval,
		logger:   logger,
	}
	for _, spec := range specs {
		if err := checkSource(spec, sources); err != nil {
			return nil, err
		}
		e.indicators = append(e.indicators, NewIndicator(spec))
	}
	return e, nil
}

func checkSource(spec models.IndicatorSpec, s collector.Sources) error {
	var missing bool
	switch spec.Kind {
	case models.KindNetworkThroughput, models.KindDiskThroughput:
		missing = s.Counters(spec.Source) == nil
	case models.KindContainers:
		missing = s.Containers == nil
	case models.KindPing:
		missing = s.Pinger == nil
	default:
		missing = s.System == nil
	}
	if missing {
		return fmt.Errorf("%s: no metric source configured", spec.Name())
	}
	return nil
}

// Indicators returns the indicators in display order
func (e *Engine) Indicators() []*Indicator {
	return e.indicators
}

// Interval returns the tick period rates are computed over
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// Sweep updates every indicator once and returns their labels in order.
// A failing indicator keeps its previous label and is marked stale; the
// rest of the sweep carries on.
func (e *Engine) Sweep(ctx context.Context) []models.Label {
	ctx, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	labels := make([]models.Label, len(e.indicators))
	for i, ind := range e.indicators {
		label, err := ind.Update(ctx, e.sources, e.interval)
		if err != nil {
			label.Stale = true
			e.reportFailure(i, ind, err)
		} else if e.failing[i] {
			e.failing[i] = false
			e.logger.Info("Indicator recovered", "indicator", ind.spec.Name())
		}
		labels[i] = label
	}
	return labels
}

func (e *Engine) reportFailure(i int, ind *Indicator, err error) {
	if e.failing[i] {
		e.logger.Debug("Indicator still failing", "indicator", ind.spec.Name(), "err", err)
		return
	}
	e.failing[i] = true

	var re *collector.ReadError
	if errors.As(err, &re) {
		e.logger.Warn("Indicator read failed", "indicator", ind.spec.Name(), "source", re.Source, "err", re.Err)
		return
	}
	e.logger.Warn("Indicator update failed", "indicator", ind.spec.Name(), "err", err)
}

// NextDelay returns the time until the next wall-clock second
func NextDelay(now time.Time) time.Duration {
	ms := time.Duration(now.Nanosecond()) / time.Millisecond
	return time.Second - ms*time.Millisecond
}
