package grelly

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// versionPattern is deliberately permissive: an optional leading letter,
// then up to three numeric groups separated by "." or "-". It accepts
// "v1.2.3", "release-1-2-3" and "r1.2" alike.
var versionPattern = regexp.MustCompile(`[a-z]?(\d+)(?:[.\-](\d+))?(?:[.\-](\d+))?`)

// SemanticVersion is a major.minor.patch triple. Ident marks a non-release
// build and carries the feature/fix/other branch name; Commit is the
// abbreviated id of the commit the version was derived from. A derived
// version is always a new value, never a mutation of an existing one.
type SemanticVersion struct {
	Major  int
	Minor  int
	Patch  int
	Ident  string
	Commit string
}

// String renders the version as "major.minor.patch", with the identifier
// appended as "-identifier" when one is set.
func (v SemanticVersion) String() string {
	if v.Ident != "" {
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, v.Ident)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// parseVersion extracts a version from free text: a branch name, a commit
// message, or a tag name. The text is lower-cased before matching and
// missing numeric groups default to 0. A miss is not an error; callers
// treat absence as a valid outcome.
func parseVersion(text string) (SemanticVersion, bool) {
	m := versionPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return SemanticVersion{}, false
	}
	return SemanticVersion{
		Major: toNumber(m[1]),
		Minor: toNumber(m[2]),
		Patch: toNumber(m[3]),
	}, true
}

// toNumber converts a (possibly empty) captured group to an integer.
func toNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
