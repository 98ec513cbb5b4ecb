// Package main implements the grelly CLI tool.
//
// The grelly tool derives a deterministic semantic version for the current
// checkout of a git repository. Two independent signals feed the result: the
// current branch name (classified as master-like, explicit-release, feature,
// fix, or other) and the commit history since the nearest release point
// (a commit whose message starts with "release:" or a commit carrying a
// version tag, reached by a first-parent walk). The number of commits since
// the release point becomes the patch component; feature/fix/other branches
// attach their name as a version identifier.
//
// Command Usage:
//
//	grelly [flags]
//
// Flags:
//
//	-g, --git:     Path to the git repository. (Defaults to ".")
//	-r, --release: Cut a release: bump the minor version, commit a changelog
//	               stub with the message "release: <version>", and tag the
//	               commit "P<major>-<minor>".
//	-v, --verbose: Print diagnostic trace lines (branch classification and
//	               the history walk) to stderr.
//	    --version: Display the version of the grelly CLI tool and exit.
//
// Examples:
//
//	# On main, three commits after the "1.4.0" tag
//	grelly
//	1.4.3
//
//	# Same history, on branch feature/login
//	grelly
//	1.4.3-login
//
//	# Cut the next release: commits "release: 1.5.0" and tags it "P1-5"
//	grelly -r
//
//	# Derive the version of another checkout
//	grelly -g ~/src/other-project
//
// A successful derivation prints exactly the version string and exits 0.
// Any failure (no current branch, history deeper than 4096 commits without
// a release point, branch/history major or minor mismatch, nothing to
// release) prints a one-line error to stderr and exits 1.
//
// For the API, see the documentation of the "pkg" package or visit
// [PkgGoDev](https://pkg.go.dev/github.com/maotv/grelly).
package main
