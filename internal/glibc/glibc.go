// SPDX-License-Identifier: MPL-2.0

// Package glibc queries the version of the host's GNU C library and
// checks it against the minimum each portable-Linux tier assumes. The
// version is read from the system rather than linked in, so the package
// degrades cleanly on musl and non-Linux hosts: no readable version
// means not compatible, never an error.
package glibc

import (
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

var versionPat = regexp.MustCompile(`^(\d+)\.(\d+)`)

// VersionString returns the raw glibc version string, e.g. "2.31".
// It asks getconf first and falls back to parsing `ldd --version`, which
// prints the glibc version on glibc-based systems. Returns "" when
// neither source answers.
func VersionString() string {
	if out, err := exec.Command("getconf", "GNU_LIBC_VERSION").Output(); err == nil {
		// Output is "glibc 2.31".
		fields := strings.Fields(string(out))
		if len(fields) == 2 && fields[0] == "glibc" {
			return fields[1]
		}
	}
	out, err := exec.Command("ldd", "--version").Output()
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(out), "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	version := fields[len(fields)-1]
	if !versionPat.MatchString(version) {
		return ""
	}
	return version
}

// CheckVersion reports whether a glibc version string satisfies the
// given floor. The parse is lenient about trailing junk ("2.20-2014.11"
// counts as 2.20) but warns and fails closed on strings without a
// leading major.minor pair.
func CheckVersion(version string, requiredMajor, minimumMinor int) bool {
	m := versionPat.FindStringSubmatch(version)
	if m == nil {
		log.Warnf("expected glibc version with 2 components major.minor, got: %s", version)
		return false
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	return major == requiredMajor && minor >= minimumMinor
}

// Compatible reports whether the host glibc satisfies the given version
// floor. A host without a readable glibc version is never compatible.
func Compatible(requiredMajor, minimumMinor int) bool {
	version := VersionString()
	if version == "" {
		return false
	}
	return CheckVersion(version, requiredMajor, minimumMinor)
}
