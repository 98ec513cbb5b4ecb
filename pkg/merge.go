package grelly

import (
	"errors"
	"fmt"
)

// ErrVersionMismatch is returned when branch name and history disagree on a
// major or minor component.
var ErrVersionMismatch = errors.New("major/minor version mismatch between branch and history")

// nmerge reconciles one numeric component between the branch-derived and
// head-derived versions. Zero means "unconstrained" on either side; equal
// values agree; anything else is a conflict that must not be silently
// resolved.
func nmerge(branch, head int) (int, error) {
	switch {
	case branch == 0 || head == 0:
		return branch + head, nil
	case branch == head:
		return branch, nil
	default:
		return 0, fmt.Errorf("%w: branch says %d, history says %d", ErrVersionMismatch, branch, head)
	}
}

// mergeVersion combines what the branch name and the commit history each
// say about the current version.
//
// Master-like branches trust history alone. Explicit-release branches must
// agree with history on major and minor; the patch always comes from
// history. Feature, fix and other branches take the history version and
// mark it with an identifier.
func mergeVersion(branch BranchVersion, head PatchVersion) (SemanticVersion, error) {
	headv := head.Head()

	switch branch.Kind {
	case BranchMaster:
		return headv, nil
	case BranchRelease:
		major, err := nmerge(branch.Version.Major, headv.Major)
		if err != nil {
			return SemanticVersion{}, err
		}
		minor, err := nmerge(branch.Version.Minor, headv.Minor)
		if err != nil {
			return SemanticVersion{}, err
		}
		return SemanticVersion{Major: major, Minor: minor, Patch: headv.Patch, Commit: headv.Commit}, nil
	case BranchFeature, BranchFix:
		headv.Ident = branch.Name
		return headv, nil
	default:
		headv.Ident = "other"
		return headv, nil
	}
}
