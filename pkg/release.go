package grelly

import (
	"errors"
	"fmt"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"golang.org/x/mod/semver"
)

// ErrNothingToRelease is returned when the current version has patch 0,
// meaning HEAD already sits exactly on a release point.
var ErrNothingToRelease = errors.New("nothing to release: already on a release commit")

// releaseSignature is the fixed identity release commits and tags are
// written with.
func releaseSignature() object.Signature {
	return object.Signature{
		Name:  "Peter Panoo",
		Email: "peter@panoo.com",
		When:  time.Now(),
	}
}

// releaseTagName renders the product tag for a release version, e.g.
// "P1-5", with the identifier appended when one is set.
func releaseTagName(v SemanticVersion) string {
	name := fmt.Sprintf("P%d-%d", v.Major, v.Minor)
	if v.Ident != "" {
		name += "-" + v.Ident
	}
	return name
}

// nextRelease computes the version the next release will carry: minor
// bumped, patch reset, no identifier. The result must order strictly after
// the current version under semver precedence; a current version that the
// bump cannot advance is refused before any write happens.
func nextRelease(current SemanticVersion) (SemanticVersion, error) {
	next := SemanticVersion{Major: current.Major, Minor: current.Minor + 1}
	if semver.Compare("v"+next.String(), "v"+current.String()) <= 0 {
		return SemanticVersion{}, fmt.Errorf("next version %s does not advance current version %s", next, current)
	}
	return next, nil
}

// cutRelease bumps the minor version, writes a changelog stub, commits it
// on top of HEAD, and tags the new commit. current must carry a non-zero
// patch distance.
//
// The commit-then-tag sequence is not transactional: if tagging fails the
// release commit stays behind, and the returned error names its hash so it
// can be re-tagged or discarded by hand.
func cutRelease(repo *git.Repository, current SemanticVersion, trace Tracer) (SemanticVersion, error) {
	if current.Patch == 0 {
		return SemanticVersion{}, fmt.Errorf("%w: current version is %s", ErrNothingToRelease, current)
	}

	next, err := nextRelease(current)
	if err != nil {
		return SemanticVersion{}, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("opening worktree: %w", err)
	}

	filename := "changes." + next.String()
	f, err := wt.Filesystem.Create(filename)
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("creating %s: %w", filename, err)
	}
	if _, err := fmt.Fprintf(f, "Changes for version %s\n", next); err != nil {
		f.Close()
		return SemanticVersion{}, fmt.Errorf("writing %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return SemanticVersion{}, fmt.Errorf("closing %s: %w", filename, err)
	}

	if _, err := wt.Add(filename); err != nil {
		return SemanticVersion{}, fmt.Errorf("staging %s: %w", filename, err)
	}

	sig := releaseSignature()
	message := "release: " + next.String()
	commit, err := wt.Commit(message, &git.CommitOptions{Author: &sig, Committer: &sig})
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("committing %s: %w", filename, err)
	}
	trace("release commit %s: %q", shortHash(commit), message)

	tagName := releaseTagName(next)
	if err := tagRelease(repo, tagName, commit, sig); err != nil {
		return SemanticVersion{}, fmt.Errorf("tagging %s (release commit %s is left untagged): %w", tagName, shortHash(commit), err)
	}
	trace("release tag %s on %s", tagName, shortHash(commit))

	return next, nil
}

// tagRelease creates the annotated release tag, replacing an existing tag
// of the same name.
func tagRelease(repo *git.Repository, name string, target plumbing.Hash, sig object.Signature) error {
	opts := &git.CreateTagOptions{Tagger: &sig, Message: "Release " + name}
	_, err := repo.CreateTag(name, target, opts)
	if errors.Is(err, git.ErrTagExists) {
		if err := repo.DeleteTag(name); err != nil {
			return err
		}
		_, err = repo.CreateTag(name, target, opts)
	}
	return err
}
