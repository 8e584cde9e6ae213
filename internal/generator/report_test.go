package generator

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/images"
	"git.home.luguber.info/inful/vados/internal/metrics"
)

func TestReportOutcome(t *testing.T) {
	tests := []struct {
		name  string
		issue bool
		err   error
		want  BuildOutcome
	}{
		{"clean", false, nil, OutcomeSuccess},
		{"warnings", true, nil, OutcomeWarning},
		{"failed", false, ferrors.ConfigError("bad").Build(), OutcomeFailed},
		{"unclassified", false, errors.New("boom"), OutcomeFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newBuildReport()
			if tt.issue {
				r.AddPathIssue(IssueImageFailure, StageImages, "/a", errors.New("x"))
			}
			r.finish(tt.err)
			assert.Equal(t, tt.want, r.Outcome)
			assert.False(t, r.End.Before(r.Start))
		})
	}
}

func TestReportCounters(t *testing.T) {
	r := newBuildReport()
	r.addImageStats(images.Stats{Result: images.Result{Encoded: 3, Skipped: 1}, Processed: 2, Failed: 1})
	r.addImageStats(images.Stats{Result: images.Result{Skipped: 4}, Processed: 1})
	r.addPage("/", "fp")
	r.recordStageResult(StageImages, metrics.ResultWarning, nil)
	r.recordStageResult(StageImages, metrics.ResultSuccess, metrics.NoopRecorder{})

	assert.Equal(t, ImageCounts{Directories: 2, Processed: 3, Failed: 1, VariantsEncoded: 3, VariantsSkipped: 5}, r.Images)
	assert.Equal(t, 1, r.RenderedPages)
	assert.Equal(t, StageCount{Success: 1, Warning: 1}, r.StageCounts[StageImages])
}

func TestReportPersist(t *testing.T) {
	r := newBuildReport()
	r.setStageDuration(StagePages, 1500*time.Microsecond)
	r.addPage("/docs", "abc")
	r.finish(nil)

	path := filepath.Join(t.TempDir(), "nested", "report.json")
	require.NoError(t, r.Persist(path))
	assert.NoFileExists(t, path+".tmp")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got reportJSON
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r.BuildID, got.BuildID)
	assert.Equal(t, OutcomeSuccess, got.Outcome)
	assert.InDelta(t, 1.5, got.StageDurationsMS["pages"], 0.001)
	assert.Equal(t, "abc", got.Fingerprints["/docs"])
	assert.NotNil(t, got.Issues)
}

func TestReportSummary(t *testing.T) {
	r := newBuildReport()
	r.addPage("/", "")
	r.finish(nil)
	s := r.Summary()
	assert.Contains(t, s, "pages=1")
	assert.Contains(t, s, "outcome=success")
	assert.Contains(t, s, r.BuildID)
}

func TestIssueCodeFor(t *testing.T) {
	assert.Equal(t, IssueConfig, issueCodeFor(ferrors.ConfigError("x").Build()))
	assert.Equal(t, IssueCloneFailure, issueCodeFor(ferrors.GitError("x").Build()))
	assert.Equal(t, IssuePageFailure, issueCodeFor(ferrors.RenderError("x").Build()))
	assert.Equal(t, IssueGenericStageError, issueCodeFor(errors.New("x")))
}
