package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks pipeline stage latency and verdict counts. A nil *Metrics is
// a no-op, so components can run without instrumentation.
type Metrics struct {
	StageDuration   *prometheus.HistogramVec
	Verdicts        *prometheus.CounterVec
	PipelineErrors  *prometheus.CounterVec
	RejectedUploads *prometheus.CounterVec
	RunsInFlight    prometheus.Gauge
}

// New registers the KYC metrics on registerer.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		StageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kyc_stage_duration_seconds",
			Help:    "Duration of each verification pipeline stage",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"stage"}),
		Verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kyc_verdicts_total",
			Help: "Completed verification runs by final status and reason",
		}, []string{"final_status", "reason"}),
		PipelineErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kyc_pipeline_errors_total",
			Help: "Runs aborted by a dependency failure, by stage",
		}, []string{"stage"}),
		RejectedUploads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kyc_rejected_uploads_total",
			Help: "Uploads refused before the pipeline ran",
		}, []string{"reason"}),
		RunsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "kyc_runs_in_flight",
			Help: "Verification runs currently holding a worker slot",
		}),
	}
}

// ObserveStage records a stage duration. Call with time.Now() at the start of the stage.
func (m *Metrics) ObserveStage(stage string, start time.Time) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

func (m *Metrics) RecordVerdict(finalStatus string, reason string) {
	if m == nil {
		return
	}
	m.Verdicts.WithLabelValues(finalStatus, reason).Inc()
}

func (m *Metrics) IncrementPipelineErrors(stage string) {
	if m == nil {
		return
	}
	m.PipelineErrors.WithLabelValues(stage).Inc()
}

func (m *Metrics) IncrementRejectedUploads(reason string) {
	if m == nil {
		return
	}
	m.RejectedUploads.WithLabelValues(reason).Inc()
}

func (m *Metrics) RunStarted() {
	if m == nil {
		return
	}
	m.RunsInFlight.Inc()
}

func (m *Metrics) RunFinished() {
	if m == nil {
		return
	}
	m.RunsInFlight.Dec()
}
