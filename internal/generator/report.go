package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/images"
	"git.home.luguber.info/inful/vados/internal/metrics"
)

// BuildOutcome is the final state of a build.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeWarning  BuildOutcome = "warning"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// ReportIssueCode enumerates machine-parseable issue identifiers.
// Codes are only ever appended.
type ReportIssueCode string

const (
	IssueConfig            ReportIssueCode = "CONFIG"
	IssueCloneFailure      ReportIssueCode = "CLONE_FAILURE"
	IssueImageFailure      ReportIssueCode = "IMAGE_FAILURE"
	IssueContentFailure    ReportIssueCode = "CONTENT_FAILURE"
	IssuePageFailure       ReportIssueCode = "PAGE_FAILURE"
	IssueCanceled          ReportIssueCode = "BUILD_CANCELED"
	IssueGenericStageError ReportIssueCode = "GENERIC_STAGE_ERROR"
)

// IssueSeverity is the normalized severity of a report issue.
type IssueSeverity string

const (
	IssueError   IssueSeverity = "error"
	IssueWarning IssueSeverity = "warning"
)

// ReportIssue is one problem met during a build.
type ReportIssue struct {
	Code     ReportIssueCode `json:"code"`
	Stage    StageName       `json:"stage"`
	Severity IssueSeverity   `json:"severity"`
	Message  string          `json:"message"`
	Path     string          `json:"path,omitempty"`
}

// StageCount aggregates the results recorded for a stage.
type StageCount struct {
	Success int `json:"success"`
	Warning int `json:"warning"`
	Fatal   int `json:"fatal"`
}

// ImageCounts summarizes the image stage.
type ImageCounts struct {
	Directories     int `json:"directories"`
	Processed       int `json:"processed"`
	Failed          int `json:"failed"`
	VariantsEncoded int `json:"variants_encoded"`
	VariantsSkipped int `json:"variants_skipped"`
}

// BuildReport captures what a build did. It is safe for concurrent use by
// stage workers.
type BuildReport struct {
	mu sync.Mutex

	SchemaVersion int
	BuildID       string
	Start         time.Time
	End           time.Time
	Outcome       BuildOutcome
	// Commit is the cloned source revision, empty for local sources.
	Commit string

	StageDurations map[StageName]time.Duration
	StageCounts    map[StageName]StageCount
	Issues         []ReportIssue

	ContentDirectories int
	RenderedPages      int
	Images             ImageCounts
	// Fingerprints maps each written page path to the mdfp fingerprint of
	// its content source.
	Fingerprints map[string]string
}

func newBuildReport() *BuildReport {
	return &BuildReport{
		SchemaVersion:  1,
		BuildID:        uuid.NewString(),
		Start:          time.Now(),
		StageDurations: make(map[StageName]time.Duration),
		StageCounts:    make(map[StageName]StageCount),
		Fingerprints:   make(map[string]string),
	}
}

// AddIssue records a stage-wide issue.
func (r *BuildReport) AddIssue(code ReportIssueCode, stage StageName, severity IssueSeverity, msg string) {
	r.addIssue(ReportIssue{Code: code, Stage: stage, Severity: severity, Message: msg})
}

// AddPathIssue records a warning tied to one page or directory.
func (r *BuildReport) AddPathIssue(code ReportIssueCode, stage StageName, path string, err error) {
	r.addIssue(ReportIssue{Code: code, Stage: stage, Severity: IssueWarning, Message: err.Error(), Path: path})
}

func (r *BuildReport) addIssue(issue ReportIssue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Issues = append(r.Issues, issue)
}

func (r *BuildReport) stageWarnings(stage StageName) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, i := range r.Issues {
		if i.Stage == stage && i.Severity == IssueWarning {
			n++
		}
	}
	return n
}

func (r *BuildReport) setStageDuration(stage StageName, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.StageDurations[stage] = d
}

// recordStageResult increments the stage counter and mirrors it to the recorder.
func (r *BuildReport) recordStageResult(stage StageName, res metrics.ResultLabel, recorder metrics.Recorder) {
	r.mu.Lock()
	sc := r.StageCounts[stage]
	switch res {
	case metrics.ResultSuccess:
		sc.Success++
	case metrics.ResultWarning:
		sc.Warning++
	case metrics.ResultFatal:
		sc.Fatal++
	}
	r.StageCounts[stage] = sc
	r.mu.Unlock()
	if recorder != nil {
		recorder.IncStageResult(string(stage), res)
	}
}

func (r *BuildReport) addImageStats(s images.Stats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Images.Directories++
	r.Images.Processed += s.Processed
	r.Images.Failed += s.Failed
	r.Images.VariantsEncoded += s.Encoded
	r.Images.VariantsSkipped += s.Skipped
}

func (r *BuildReport) addPage(path, fingerprint string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.RenderedPages++
	r.Fingerprints[path] = fingerprint
}

func (r *BuildReport) addContentDirectory() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ContentDirectories++
}

// finish stamps the end time and derives the outcome from err and the
// recorded issues.
func (r *BuildReport) finish(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.End = time.Now()
	switch {
	case err != nil && ferrors.HasCategory(err, ferrors.CategoryInternal) && isCanceled(r.Issues):
		r.Outcome = OutcomeCanceled
	case err != nil:
		r.Outcome = OutcomeFailed
	case len(r.Issues) > 0:
		r.Outcome = OutcomeWarning
	default:
		r.Outcome = OutcomeSuccess
	}
}

func isCanceled(issues []ReportIssue) bool {
	for _, i := range issues {
		if i.Code == IssueCanceled {
			return true
		}
	}
	return false
}

// Summary returns a human-readable single-line summary.
func (r *BuildReport) Summary() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fmt.Sprintf("build=%s pages=%d images=%d failed_images=%d variants=%d/%d issues=%d duration=%s outcome=%s",
		r.BuildID, r.RenderedPages, r.Images.Processed, r.Images.Failed,
		r.Images.VariantsEncoded, r.Images.VariantsEncoded+r.Images.VariantsSkipped,
		len(r.Issues), r.End.Sub(r.Start).Truncate(time.Millisecond), r.Outcome)
}

// reportJSON mirrors BuildReport with JSON friendly durations.
type reportJSON struct {
	SchemaVersion      int                   `json:"schema_version"`
	BuildID            string                `json:"build_id"`
	Start              time.Time             `json:"start"`
	End                time.Time             `json:"end"`
	Outcome            BuildOutcome          `json:"outcome"`
	Commit             string                `json:"commit,omitempty"`
	StageDurationsMS   map[string]float64    `json:"stage_durations_ms"`
	StageCounts        map[string]StageCount `json:"stage_counts"`
	Issues             []ReportIssue         `json:"issues"`
	ContentDirectories int                   `json:"content_directories"`
	RenderedPages      int                   `json:"rendered_pages"`
	Images             ImageCounts           `json:"images"`
	Fingerprints       map[string]string     `json:"fingerprints"`
}

func (r *BuildReport) serializable() reportJSON {
	r.mu.Lock()
	defer r.mu.Unlock()
	durations := make(map[string]float64, len(r.StageDurations))
	for k, v := range r.StageDurations {
		durations[string(k)] = float64(v.Microseconds()) / 1000
	}
	counts := make(map[string]StageCount, len(r.StageCounts))
	for k, v := range r.StageCounts {
		counts[string(k)] = v
	}
	issues := r.Issues
	if issues == nil {
		issues = []ReportIssue{}
	}
	return reportJSON{
		SchemaVersion:      r.SchemaVersion,
		BuildID:            r.BuildID,
		Start:              r.Start,
		End:                r.End,
		Outcome:            r.Outcome,
		Commit:             r.Commit,
		StageDurationsMS:   durations,
		StageCounts:        counts,
		Issues:             issues,
		ContentDirectories: r.ContentDirectories,
		RenderedPages:      r.RenderedPages,
		Images:             r.Images,
		Fingerprints:       r.Fingerprints,
	}
}

// Persist writes the report as JSON to path atomically.
func (r *BuildReport) Persist(path string) error {
	data, err := json.MarshalIndent(r.serializable(), "", "  ")
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "marshal build report").Build()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create report directory").
			WithContext("path", path).
			Build()
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write build report").
			WithContext("path", tmp).
			Build()
	}
	if err := os.Rename(tmp, path); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "rename build report").
			WithContext("path", path).
			Build()
	}
	return nil
}
