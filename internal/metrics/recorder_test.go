package metrics

import (
	"sync"
	"time"
)

// testRecorder counts calls; shared by tests of this package.
type testRecorder struct {
	mu             sync.Mutex
	stageDurations map[string]int
	stageResults   map[string]map[ResultLabel]int
	buildDurations int
	buildOutcomes  map[string]int
	variants       map[VariantLabel]int
	pages          int
	clones         int
}

var _ Recorder = (*testRecorder)(nil)

func newTestRecorder() *testRecorder {
	return &testRecorder{
		stageDurations: map[string]int{},
		stageResults:   map[string]map[ResultLabel]int{},
		buildOutcomes:  map[string]int{},
		variants:       map[VariantLabel]int{},
	}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stageDurations[stage]++
}

func (t *testRecorder) ObserveBuildDuration(_ time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buildDurations++
}

func (t *testRecorder) IncStageResult(stage string, result ResultLabel) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.stageResults[stage]
	if !ok {
		m = map[ResultLabel]int{}
		t.stageResults[stage] = m
	}
	m[result]++
}

func (t *testRecorder) IncBuildOutcome(outcome string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buildOutcomes[outcome]++
}

func (t *testRecorder) AddImageVariants(result VariantLabel, n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.variants[result] += n
}

func (t *testRecorder) IncPagesRendered() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pages++
}

func (t *testRecorder) ObserveCloneDuration(time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clones++
}
