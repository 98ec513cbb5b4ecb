// Package grelly derives a deterministic semantic version for the current
// checkout of a git repository.
//
// Two independent signals feed the derivation:
//   - The current branch name, classified into master-like, explicit-release,
//     feature, fix, or other.
//   - The commit history, walked first-parent from HEAD until the nearest
//     release point: a commit whose message starts with "release:" or a
//     commit carrying a tag whose name parses as a version.
//
// The two are reconciled by a merge policy: master-like branches take the
// history-derived version as-is, explicit-release branches must agree with
// history on major/minor, and feature/fix/other branches attach their name
// as a version identifier.
//
// A release is cut by bumping the minor version, committing a changelog
// stub with the message "release: <version>", and tagging the commit.
//
// Usage Example:
//
//	repo, err := grelly.Open(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, err := repo.Version()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v) // e.g. "1.4.3" or "1.4.3-login"
//
// Every derivation recomputes from scratch; nothing is cached between runs.
package grelly
