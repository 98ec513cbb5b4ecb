package grelly

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// Tracer receives the diagnostic lines emitted while deriving a version.
type Tracer func(format string, args ...any)

func nopTrace(string, ...any) {}

// Repo couples an open git repository with the tracing capability. All
// derivation state is rebuilt on every call; a Repo holds nothing between
// calls besides the repository handle itself.
type Repo struct {
	repo  *git.Repository
	trace Tracer
}

// Option configures a Repo.
type Option func(*Repo)

// WithTracer routes diagnostic trace lines to t.
func WithTracer(t Tracer) Option {
	return func(r *Repo) {
		if t != nil {
			r.trace = t
		}
	}
}

// Open opens the git repository at path.
func Open(path string, opts ...Option) (*Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening repository %s: %w", path, err)
	}
	return Wrap(repo, opts...), nil
}

// Wrap builds a Repo around an already-open repository, for callers that
// construct repositories themselves (e.g. with in-memory storage).
func Wrap(repo *git.Repository, opts ...Option) *Repo {
	r := &Repo{repo: repo, trace: nopTrace}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Version derives the semantic version of the current checkout by
// classifying the branch name, locating the nearest release point in the
// first-parent history, and merging the two results.
func (r *Repo) Version() (SemanticVersion, error) {
	branch, err := branchVersion(r.repo)
	if err != nil {
		return SemanticVersion{}, err
	}
	r.trace("branch: %+v", branch)

	head, err := headVersion(r.repo, r.trace)
	if err != nil {
		return SemanticVersion{}, err
	}
	r.trace("head: %+v", head)

	return mergeVersion(branch, head)
}

// Release derives the current version and cuts the next release from it:
// minor bumped, patch reset, changelog stub committed and tagged. It
// returns the new version.
func (r *Repo) Release() (SemanticVersion, error) {
	current, err := r.Version()
	if err != nil {
		return SemanticVersion{}, err
	}
	return cutRelease(r.repo, current, r.trace)
}
