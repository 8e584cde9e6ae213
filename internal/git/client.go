package git

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"git.home.luguber.info/inful/vados/internal/config"
	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/logfields"
)

// Client clones content repositories into a workspace directory.
type Client struct {
	workspaceDir string
}

// NewClient creates a Client cloning below workspaceDir.
func NewClient(workspaceDir string) *Client {
	return &Client{workspaceDir: workspaceDir}
}

// CloneResult describes a finished clone.
type CloneResult struct {
	Path     string
	Commit   string
	Duration time.Duration
}

// Clone fetches repo into <workspace>/<name>. An existing directory at that
// path is removed first so every build starts from a pristine checkout.
func (c *Client) Clone(ctx context.Context, repo config.RepositoryConfig, name string) (CloneResult, error) {
	start := time.Now()
	if c.workspaceDir == "" {
		return CloneResult{}, ferrors.InternalError("clone without workspace").Build()
	}
	dest := filepath.Join(c.workspaceDir, name)
	if err := os.RemoveAll(dest); err != nil {
		return CloneResult{}, ferrors.WrapError(err, ferrors.CategoryFileSystem, "remove stale clone").
			WithContext("path", dest).
			Build()
	}

	opts := &git.CloneOptions{
		URL:   repo.URL,
		Depth: repo.Depth,
	}
	if repo.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(repo.Branch)
		opts.SingleBranch = true
	}
	if auth := authFor(repo); auth != nil {
		opts.Auth = auth
	}

	slog.Info("Cloning content repository",
		logfields.URL(repo.URL),
		slog.String("branch", repo.Branch),
		logfields.Path(dest))

	repository, err := git.PlainCloneContext(ctx, dest, false, opts)
	if err != nil {
		return CloneResult{}, ClassifyGitError(err, "clone", repo.URL)
	}

	res := CloneResult{Path: dest, Duration: time.Since(start)}
	if ref, herr := repository.Head(); herr == nil {
		res.Commit = ref.Hash().String()
	}
	slog.Info("Cloned content repository",
		logfields.URL(repo.URL),
		slog.String("commit", res.Commit),
		logfields.DurationMS(float64(res.Duration.Milliseconds())))
	return res, nil
}

// authFor returns token auth for HTTP(S) remotes, nil otherwise.
func authFor(repo config.RepositoryConfig) transport.AuthMethod {
	if repo.Token == "" {
		return nil
	}
	if !strings.HasPrefix(repo.URL, "https://") && !strings.HasPrefix(repo.URL, "http://") {
		slog.Warn("Ignoring token for non-HTTP repository URL", logfields.URL(repo.URL))
		return nil
	}
	// Forges accept any non-empty user name alongside a token.
	return &githttp.BasicAuth{Username: "vados", Password: repo.Token}
}
