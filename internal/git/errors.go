package git

import (
	"strings"

	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
)

// ClassifyGitError translates go-git errors into ClassifiedErrors. Missing
// repositories or branches become not_found, rejected credentials and
// unsupported URLs become config, everything else stays git.
func ClassifyGitError(err error, op, url string) error {
	if err == nil {
		return nil
	}
	if _, ok := ferrors.AsClassified(err); ok {
		return err
	}

	l := strings.ToLower(err.Error())
	category := ferrors.CategoryGit
	switch {
	case strings.Contains(l, "authentication required") || strings.Contains(l, "authorization failed") ||
		strings.Contains(l, "not authorized") || strings.Contains(l, "invalid credentials"):
		category = ferrors.CategoryConfig
	case strings.Contains(l, "repository not found") || strings.Contains(l, "couldn't find remote ref") ||
		strings.Contains(l, "reference not found") || strings.Contains(l, "does not exist"):
		category = ferrors.CategoryNotFound
	case strings.Contains(l, "unsupported scheme") || strings.Contains(l, "protocol not supported"):
		category = ferrors.CategoryConfig
	}

	return ferrors.WrapError(err, category, "git "+op+" failed").
		Fatal().
		WithContext("op", op).
		WithContext("url", url).
		Build()
}
