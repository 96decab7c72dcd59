// SPDX-License-Identifier: MPL-2.0

package tags

import (
	"strconv"
	"strings"
)

// VersionInfo is an interpreter version as ordered non-negative integer
// components, most significant first: {3, 8} or {3, 6, 5}.
type VersionInfo []int

// Nodot renders the first two components without separators: {3, 8} ->
// "38", {3, 10} -> "310".
func (v VersionInfo) Nodot() string {
	var b strings.Builder
	for i, n := range v {
		if i >= 2 {
			break
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// ParseVersion reads a compact version string: "38" -> {3, 8}, "310" ->
// {3, 10}, "3" -> {3}. The major version is always a single digit; the
// rest of the string is the minor version. Returns nil for anything that
// is not all digits.
func ParseVersion(s string) VersionInfo {
	if s == "" {
		return nil
	}
	if len(s) == 1 {
		major, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return VersionInfo{major}
	}
	major, err := strconv.Atoi(s[:1])
	if err != nil {
		return nil
	}
	minor, err := strconv.Atoi(s[1:])
	if err != nil || minor < 0 {
		return nil
	}
	return VersionInfo{major, minor}
}

// MinorVersionsDescending lists every supported minor version as a compact
// string, current minor down to zero: {3, 8} -> ["38", "37", ..., "30"].
// All leading components are held fixed; only the last one decrements.
// Installers use the full list for candidate matching; tag generation
// itself only consumes the first entry.
func (v VersionInfo) MinorVersionsDescending() []string {
	if len(v) == 0 {
		return nil
	}
	var prefix strings.Builder
	for _, n := range v[:len(v)-1] {
		prefix.WriteString(strconv.Itoa(n))
	}
	versions := make([]string, 0, v[len(v)-1]+1)
	for minor := v[len(v)-1]; minor >= 0; minor-- {
		versions = append(versions, prefix.String()+strconv.Itoa(minor))
	}
	return versions
}

// atLeast reports whether v is at or above major.minor.
func (v VersionInfo) atLeast(major, minor int) bool {
	if len(v) == 0 {
		return false
	}
	if v[0] != major {
		return v[0] > major
	}
	if len(v) < 2 {
		return minor <= 0
	}
	return v[1] >= minor
}

// lessThan reports whether v is strictly below major.minor.
func (v VersionInfo) lessThan(major, minor int) bool {
	return !v.atLeast(major, minor)
}
