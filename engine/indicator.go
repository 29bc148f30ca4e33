package engine

import (
	"context"
	"fmt"
	"time"

	"system-indicators/collector"
	"system-indicators/models"
	"system-indicators/presenter"
)

// Visibility thresholds for the activity-driven kinds
const (
	loadVisibleAbove    = 1.0
	cpuVisibleAbove     = 10.0
	networkVisibleAbove = 100 * 1024
	diskVisibleAbove    = 1024 * 1024
)

// Indicator is one configured label plus the state it carries between ticks
type Indicator struct {
	spec models.IndicatorSpec

	in, out collector.Counter
	hold    presenter.Hold
	label   models.Label
}

// NewIndicator starts with a blank, black label
func NewIndicator(spec models.IndicatorSpec) *Indicator {
	return &Indicator{
		spec:  spec,
		label: models.Label{Name: spec.Name()},
	}
}

// Spec returns the configuration the indicator was built from
func (ind *Indicator) Spec() models.IndicatorSpec {
	return ind.spec
}

// Label returns the label from the last successful update
func (ind *Indicator) Label() models.Label {
	return ind.label
}

// Update samples and presents one tick. On error the label and the
// visibility countdown are left exactly as they were.
func (ind *Indicator) Update(ctx context.Context, src collector.Sources, interval time.Duration) (models.Label, error) {
	r, err := ind.sample(ctx, src, interval)
	if err != nil {
		return ind.label, err
	}
	ind.label = ind.present(r)
	return ind.label, nil
}

func (ind *Indicator) sample(ctx context.Context, src collector.Sources, interval time.Duration) (models.Reading, error) {
	var (
		v   float64
		err error
	)

	switch ind.spec.Kind {
	case models.KindLoad:
		v, err = src.System.LoadAvg(ctx)
	case models.KindCPUUsage:
		v, err = src.System.CPUPercent(ctx)
	case models.KindMemoryUsage:
		v, err = src.System.MemoryPercent(ctx)
	case models.KindSwapUsage:
		v, err = src.System.SwapPercent(ctx)
	case models.KindDiskUsage:
		v, err = src.System.DiskPercent(ctx, ind.spec.Path)
	case models.KindCPUTemperature:
		var temps []collector.Temperature
		temps, err = src.System.Temperatures(ctx)
		if err == nil {
			v, err = collector.MaxTemperature(temps, ind.spec.Sensor)
		}
	case models.KindNetworkThroughput:
		pair, err := src.Counters(ind.spec.Source).Interface(ctx, ind.spec.Interface)
		return ind.sampleRate(pair, err, interval)
	case models.KindDiskThroughput:
		pair, err := src.Counters(ind.spec.Source).BlockDevice(ctx, ind.spec.Device)
		return ind.sampleRate(pair, err, interval)
	case models.KindContainers:
		var n int
		n, err = src.Containers.Running(ctx)
		return models.Reading{Value: float64(n), Count: n}, err
	case models.KindPing:
		var rtt time.Duration
		rtt, err = src.Pinger.RTT(ctx, ind.spec.Host)
		v = float64(rtt) / float64(time.Millisecond)
	default:
		err = fmt.Errorf("unsupported kind %q", ind.spec.Kind)
	}

	if err != nil {
		return models.Reading{}, err
	}
	return models.Reading{Value: v}, nil
}

// sampleRate updates both counters from one successful read and converts the
// deltas to bytes per interval
func (ind *Indicator) sampleRate(pair collector.IOPair, err error, interval time.Duration) (models.Reading, error) {
	if err != nil {
		return models.Reading{}, err
	}

	unit := pair.Unit
	if unit == 0 {
		unit = 1
	}
	seconds := interval.Seconds()
	if seconds <= 0 {
		seconds = 1
	}

	in := float64(ind.in.Delta(pair.In)*unit) / seconds
	out := float64(ind.out.Delta(pair.Out)*unit) / seconds

	r := models.Reading{Primary: in, Secondary: out, Value: in}
	if out > in {
		r.Value = out
	}
	return r, nil
}

func (ind *Indicator) present(r models.Reading) models.Label {
	label := models.Label{
		Name:       ind.spec.Name(),
		Background: presenter.Color(presenter.Urgency(ind.spec.Band, r.Value)),
	}
	if ind.hold.Observe(ind.visible(r)) {
		label.Text = ind.text(r)
	}
	return label
}

func (ind *Indicator) visible(r models.Reading) bool {
	switch ind.spec.Kind {
	case models.KindLoad:
		return r.Value > loadVisibleAbove
	case models.KindCPUUsage:
		return r.Value > cpuVisibleAbove
	case models.KindNetworkThroughput:
		return r.Primary > networkVisibleAbove || r.Secondary > networkVisibleAbove
	case models.KindDiskThroughput:
		return r.Primary > diskVisibleAbove || r.Secondary > diskVisibleAbove
	case models.KindContainers:
		return r.Count > 0
	default:
		return true
	}
}

func (ind *Indicator) text(r models.Reading) string {
	switch ind.spec.Kind {
	case models.KindLoad:
		return fmt.Sprintf("L%.2f", r.Value)
	case models.KindCPUUsage:
		return fmt.Sprintf("C%.0f%%", r.Value)
	case models.KindCPUTemperature:
		return fmt.Sprintf("%.0f°C", r.Value)
	case models.KindMemoryUsage:
		return fmt.Sprintf("M%.0f%%", r.Value)
	case models.KindSwapUsage:
		return fmt.Sprintf("S%.0f%%", r.Value)
	case models.KindDiskUsage:
		return fmt.Sprintf("%s%.0f%%", ind.spec.Label, r.Value)
	case models.KindNetworkThroughput:
		return fmt.Sprintf("N %s/%s", presenter.SizeOf(r.Primary), presenter.SizeOf(r.Secondary))
	case models.KindDiskThroughput:
		return fmt.Sprintf("%s %s/%s", ind.spec.Label, presenter.SizeOf(r.Primary), presenter.SizeOf(r.Secondary))
	case models.KindContainers:
		return fmt.Sprintf("D%d", r.Count)
	case models.KindPing:
		return fmt.Sprintf("P%.0fms", r.Value)
	default:
		return ""
	}
}
