package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultWarning ResultLabel = "warning"
	ResultFatal   ResultLabel = "fatal"
)

// VariantLabel classifies what happened to one responsive image variant.
type VariantLabel string

const (
	VariantEncoded VariantLabel = "encoded"
	VariantSkipped VariantLabel = "skipped" // output already existed
	VariantFailed  VariantLabel = "failed"
)

// Recorder defines observability hooks for a site build. All methods must be
// safe for concurrent use by the worker pools.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncBuildOutcome(outcome string) // outcome: success|warning|failed
	AddImageVariants(result VariantLabel, n int)
	IncPagesRendered()
	ObserveCloneDuration(d time.Duration, success bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncBuildOutcome(string)                     {}
func (NoopRecorder) AddImageVariants(VariantLabel, int)         {}
func (NoopRecorder) IncPagesRendered()                          {}
func (NoopRecorder) ObserveCloneDuration(time.Duration, bool)   {}
