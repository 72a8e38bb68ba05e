package status

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/event"
)

const namespace = "gravsim"

// tickSmoothing is the moving-average weight for the HUD tick time
const tickSmoothing = 0.1

// Metrics collects per-tick simulation telemetry into a private registry
type Metrics struct {
	registry *prometheus.Registry

	tickDuration *prometheus.HistogramVec
	ticks        *prometheus.CounterVec
	commands     prometheus.Counter
	rejected     prometheus.Counter
	notices      *prometheus.CounterVec
	bodies       prometheus.Gauge
	orbits       prometheus.Gauge
	simTime      prometheus.Gauge
	energy       *prometheus.GaugeVec

	tickMillis AtomicFloat
}

// NewMetrics registers all collectors; dropped reports command queue overflow and may be nil
func NewMetrics(dropped func() uint64) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		tickDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tick_duration_seconds",
				Help:      "Wall time spent in one world tick",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
			},
			[]string{"state"},
		),
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ticks_total",
				Help:      "Ticks executed, by running or paused",
			},
			[]string{"state"},
		),
		commands: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_applied_total",
			Help:      "Commands drained from the queue at tick boundaries",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_rejected_total",
			Help:      "Commands that failed validation",
		}),
		notices: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notices_total",
				Help:      "Body outcomes reported by ticks",
			},
			[]string{"type"},
		),
		bodies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bodies",
			Help:      "Live bodies after the last tick",
		}),
		orbits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orbits",
			Help:      "Orbit specs still attached to a live body",
		}),
		simTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "simulated_time_seconds",
			Help:      "Simulated time elapsed since the session started",
		}),
		energy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "energy",
				Help:      "Mechanical energy of live bodies",
			},
			[]string{"kind"},
		),
	}

	m.registry.MustRegister(
		m.tickDuration, m.ticks, m.commands, m.rejected,
		m.notices, m.bodies, m.orbits, m.simTime, m.energy,
	)
	if dropped != nil {
		m.registry.MustRegister(prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_dropped_total",
				Help:      "Commands lost to command queue overflow",
			},
			func() float64 { return float64(dropped()) },
		))
	}
	return m
}

// Registry exposes the private registry for handlers and tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// TickMillis returns the smoothed tick wall time in milliseconds
func (m *Metrics) TickMillis() float64 {
	return m.tickMillis.Get()
}

// OnTick implements engine.TickObserver
func (m *Metrics) OnTick(report engine.TickReport, snap *engine.Snapshot) {
	state := "running"
	if !report.Simulated {
		state = "paused"
	}
	m.tickDuration.WithLabelValues(state).Observe(report.Elapsed.Seconds())
	m.ticks.WithLabelValues(state).Inc()
	m.tickMillis.Smooth(float64(report.Elapsed.Microseconds())/1000, tickSmoothing)

	m.commands.Add(float64(report.Commands))
	m.rejected.Add(float64(report.Rejected))
	for _, n := range report.Notices {
		if n.Type == event.NoticeRejected {
			continue
		}
		m.notices.WithLabelValues(n.Type.String()).Inc()
	}
	m.bodies.Set(float64(report.Bodies))

	if snap == nil {
		return
	}
	m.orbits.Set(float64(len(snap.Orbits)))
	m.simTime.Set(snap.Time)
	m.energy.WithLabelValues("kinetic").Set(snap.Energy.Kinetic)
	m.energy.WithLabelValues("potential").Set(snap.Energy.Potential)
	m.energy.WithLabelValues("total").Set(snap.Energy.Total())
}
