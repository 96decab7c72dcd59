// SPDX-License-Identifier: MPL-2.0

package tags

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// macOSVersion is a (major, minor) minimum deployment target.
type macOSVersion struct {
	major int
	minor int
}

func (v macOSVersion) less(o macOSVersion) bool {
	if v.major != o.major {
		return v.major < o.major
	}
	return v.minor < o.minor
}

// macPlatformPat splits "macosx_10_9_x86_64" into prefix, major, minor
// and architecture. The prefix is kept verbatim so caller-supplied
// spellings like "macosxcustom_" survive expansion.
var macPlatformPat = regexp.MustCompile(`^(.+)_(\d+)_(\d+)_(.+)$`)

// MacPlatforms enumerates every macOS platform string a binary built for
// the given minimum version and architecture satisfies, most specific
// first: each baseline minor from version.minor down to zero, and for
// each baseline the plain architecture followed by the fat/universal
// binary formats that cover it.
func MacPlatforms(version macOSVersion, arch string) []string {
	var platforms []string
	for minor := version.minor; minor >= 0; minor-- {
		compat := macOSVersion{version.major, minor}
		for _, format := range macBinaryFormats(compat, arch) {
			platforms = append(platforms, fmt.Sprintf("macosx_%d_%d_%s", compat.major, compat.minor, format))
		}
	}
	return platforms
}

// macBinaryFormats lists the binary formats that can contain the given
// architecture on the given baseline, the plain architecture first.
// Baselines outside an architecture's supported range get nothing.
func macBinaryFormats(version macOSVersion, cpuArch string) []string {
	formats := []string{cpuArch}
	switch cpuArch {
	case "x86_64":
		if version.less(macOSVersion{10, 4}) {
			return nil
		}
		formats = append(formats, "intel", "fat64", "fat32")
	case "i386":
		if version.less(macOSVersion{10, 4}) {
			return nil
		}
		formats = append(formats, "intel", "fat32", "fat")
	case "ppc64":
		if (macOSVersion{10, 5}).less(version) {
			return nil
		}
		formats = append(formats, "fat64")
	case "ppc":
		if (macOSVersion{10, 6}).less(version) {
			return nil
		}
		formats = append(formats, "fat32", "fat")
	}
	formats = append(formats, "universal")
	return formats
}

// macCompatPlatforms expands a macOS platform override. On parse failure
// the input is treated as opaque and returned as a singleton.
func macCompatPlatforms(arch string) []string {
	m := macPlatformPat.FindStringSubmatch(arch)
	if m == nil {
		return []string{arch}
	}
	name := m[1]
	major, _ := strconv.Atoi(m[2])
	minor, _ := strconv.Atoi(m[3])

	expanded := MacPlatforms(macOSVersion{major, minor}, m[4])
	platforms := make([]string, 0, len(expanded))
	for _, p := range expanded {
		platforms = append(platforms, name+strings.TrimPrefix(p, "macosx"))
	}
	return platforms
}
