package grelly

import (
	"errors"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// maxWalkDepth caps the history walk. Exceeding it is a distinct,
// user-visible failure, not a silent truncation.
const maxWalkDepth = 4096

// ErrHistoryTooDeep is returned when the walk visits more than maxWalkDepth
// commits without finding a release point.
var ErrHistoryTooDeep = errors.New("history too deep: no release point within 4096 commits")

// shortLen is the abbreviated hash length, git's default floor.
const shortLen = 7

func shortHash(h plumbing.Hash) string {
	return h.String()[:shortLen]
}

// PatchVersion locates the current commit relative to the nearest release
// point in its first-parent ancestry. Distance counts the commits strictly
// after the release point, so 0 means HEAD itself is the release point.
// Found is false when no release point exists within the walked ancestry,
// which is a valid state for a repository that never cut a release.
type PatchVersion struct {
	Release  SemanticVersion
	Found    bool
	Distance int
	Short    string
}

// Head renders the version derived purely from history: the release point
// version with the walked distance added to its patch component, stamped
// with the abbreviated id of the current commit.
func (p PatchVersion) Head() SemanticVersion {
	v := SemanticVersion{Patch: p.Distance, Commit: p.Short}
	if p.Found {
		v.Major = p.Release.Major
		v.Minor = p.Release.Minor
		v.Patch = p.Release.Patch + p.Distance
	}
	return v
}

// tagIndex maps every tag in the repository to the object it points at.
// Annotated tags are peeled to their target; tags that fail to resolve are
// skipped rather than aborting the caller's walk.
func tagIndex(repo *git.Repository) (map[plumbing.Hash]string, error) {
	tags, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	index := make(map[plumbing.Hash]string)
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if tag, tagErr := repo.TagObject(target); tagErr == nil {
			target = tag.Target
		} else if _, objErr := repo.Object(plumbing.AnyObject, target); objErr != nil {
			// Dangling ref, nothing to point the index at.
			return nil
		}
		index[target] = ref.Name().Short()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolving tags: %w", err)
	}
	return index, nil
}

// headVersion walks the commit ancestry from HEAD, newest first and first
// parent only, until it finds a release point: a commit whose message
// starts with "release:" followed by a version, or a commit carrying a tag
// whose name parses as a version. Following only first parents keeps a
// merged-in feature branch from inflating the release distance of the
// target branch.
func headVersion(repo *git.Repository, trace Tracer) (PatchVersion, error) {
	index, err := tagIndex(repo)
	if err != nil {
		return PatchVersion{}, err
	}

	head, err := repo.Head()
	if err != nil {
		return PatchVersion{}, fmt.Errorf("resolving HEAD: %w", err)
	}
	short := shortHash(head.Hash())

	count := 0
	hash := head.Hash()
	for {
		commit, err := repo.CommitObject(hash)
		if err != nil {
			return PatchVersion{}, fmt.Errorf("reading commit %s: %w", hash, err)
		}

		if strings.HasPrefix(strings.ToLower(commit.Message), "release:") {
			if v, ok := parseVersion(commit.Message); ok {
				v.Commit = shortHash(commit.Hash)
				trace("release commit %s: %q -> %s", v.Commit, summary(commit), v)
				return PatchVersion{Release: v, Found: true, Distance: count, Short: short}, nil
			}
		}

		if name, ok := index[commit.Hash]; ok {
			if v, parsed := parseVersion(name); parsed {
				v.Commit = shortHash(commit.Hash)
				trace("release tag %q at %s -> %s", name, v.Commit, v)
				return PatchVersion{Release: v, Found: true, Distance: count, Short: short}, nil
			}
		}

		trace("%s %s", shortHash(commit.Hash), summary(commit))

		count++
		if count > maxWalkDepth {
			return PatchVersion{}, ErrHistoryTooDeep
		}
		if commit.NumParents() == 0 {
			break
		}
		hash = commit.ParentHashes[0]
	}

	// Ancestry exhausted without a release point: a repository with no
	// prior releases, not an error.
	return PatchVersion{Distance: count, Short: short}, nil
}

func summary(c *object.Commit) string {
	s, _, _ := strings.Cut(c.Message, "\n")
	return s
}
