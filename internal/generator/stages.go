package generator

import (
	"context"
	"log/slog"
	"time"

	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/logfields"
	"git.home.luguber.info/inful/vados/internal/metrics"
)

// StageName identifies a build stage.
type StageName string

const (
	StageClone   StageName = "clone"
	StagePrepare StageName = "prepare"
	StageImages  StageName = "images"
	StageContent StageName = "content"
	StagePages   StageName = "pages"
	StageAssets  StageName = "assets"
)

type stageDef struct {
	Name StageName
	Fn   func(context.Context, *buildState) error
}

// runStages executes stages in order, recording timing and stopping on the
// first error a stage returns. Warnings recorded by a stage mark it as
// warning instead of success.
func (g *Generator) runStages(ctx context.Context, bs *buildState, stages []stageDef) error {
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			ce := ferrors.WrapError(err, ferrors.CategoryInternal, "build canceled").
				Fatal().
				WithContext("stage", string(st.Name)).
				Build()
			bs.report.AddIssue(IssueCanceled, st.Name, IssueError, ce.Error())
			bs.report.recordStageResult(st.Name, metrics.ResultFatal, g.recorder)
			return ce
		}

		t0 := time.Now()
		warningsBefore := bs.report.stageWarnings(st.Name)
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)

		bs.report.setStageDuration(st.Name, dur)
		g.recorder.ObserveStageDuration(string(st.Name), dur)

		if err != nil {
			bs.report.AddIssue(issueCodeFor(err), st.Name, IssueError, err.Error())
			bs.report.recordStageResult(st.Name, metrics.ResultFatal, g.recorder)
			slog.Error("Stage failed", logfields.Stage(string(st.Name)), logfields.Error(err))
			return err
		}

		result := metrics.ResultSuccess
		if bs.report.stageWarnings(st.Name) > warningsBefore {
			result = metrics.ResultWarning
		}
		bs.report.recordStageResult(st.Name, result, g.recorder)
		slog.Debug("Stage complete",
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}

// issueCodeFor maps a stage error to its report code by category.
func issueCodeFor(err error) ReportIssueCode {
	switch ferrors.GetCategory(err) {
	case ferrors.CategoryConfig, ferrors.CategoryValidation, ferrors.CategoryNotFound:
		return IssueConfig
	case ferrors.CategoryGit:
		return IssueCloneFailure
	case ferrors.CategoryImage:
		return IssueImageFailure
	case ferrors.CategoryContent:
		return IssueContentFailure
	case ferrors.CategoryRender, ferrors.CategoryFileSystem:
		return IssuePageFailure
	default:
		return IssueGenericStageError
	}
}
