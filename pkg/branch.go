package grelly

import (
	"errors"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// ErrNoBranch is returned when the repository has no resolvable current
// branch, e.g. a detached HEAD.
var ErrNoBranch = errors.New("no current branch")

// BranchKind categorizes what a branch name tells us about the version.
type BranchKind int

const (
	// BranchMaster covers the well-known names master, main and release.
	BranchMaster BranchKind = iota
	// BranchRelease is a branch whose name parses as a version, e.g. "2.0".
	BranchRelease
	// BranchFeature is a "feature/..." branch.
	BranchFeature
	// BranchFix is a "fix/..." branch.
	BranchFix
	// BranchOther is any branch that matches none of the above.
	BranchOther
)

// BranchVersion is the classification of the current branch name.
// Version is set for BranchRelease; Name is set for BranchFeature,
// BranchFix and BranchOther.
type BranchVersion struct {
	Kind    BranchKind
	Version SemanticVersion
	Name    string
}

// classifyName categorizes a branch short name. First match wins: a
// parsable version beats the well-known names, which beat the feature/
// and fix/ prefixes.
func classifyName(name string) BranchVersion {
	branch := strings.ToLower(name)
	if v, ok := parseVersion(branch); ok {
		return BranchVersion{Kind: BranchRelease, Version: v}
	}
	switch {
	case branch == "master" || branch == "main" || branch == "release":
		return BranchVersion{Kind: BranchMaster}
	case strings.HasPrefix(branch, "feature/"):
		return BranchVersion{Kind: BranchFeature, Name: strings.TrimPrefix(branch, "feature/")}
	case strings.HasPrefix(branch, "fix/"):
		return BranchVersion{Kind: BranchFix, Name: strings.TrimPrefix(branch, "fix/")}
	default:
		return BranchVersion{Kind: BranchOther, Name: branch}
	}
}

// branchVersion reads the current branch of the repository and classifies
// its name.
func branchVersion(repo *git.Repository) (BranchVersion, error) {
	head, err := repo.Head()
	if err != nil {
		return BranchVersion{}, fmt.Errorf("resolving HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return BranchVersion{}, ErrNoBranch
	}
	return classifyName(head.Name().Short()), nil
}
