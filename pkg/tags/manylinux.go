// SPDX-License-Identifier: MPL-2.0

package tags

import "strings"

// Portable-Linux (manylinux) tier names, newest first. Each tier pins a
// glibc floor and an architecture allow-list a conforming binary may
// assume.
const (
	Manylinux2014 = "manylinux2014"
	Manylinux2010 = "manylinux2010"
	Manylinux1    = "manylinux1"
)

var (
	manylinuxLegacyArches = map[string]bool{
		"linux_x86_64": true,
		"linux_i686":   true,
	}
	manylinux2014Arches = map[string]bool{
		"linux_x86_64":  true,
		"linux_i686":    true,
		"linux_aarch64": true,
		"linux_armv7l":  true,
		"linux_ppc64":   true,
		"linux_ppc64le": true,
		"linux_s390x":   true,
	}
)

// IsManylinux1Compatible reports whether the environment can run
// manylinux1 (glibc >= 2.5) binaries.
func (e *Environment) IsManylinux1Compatible() bool {
	if !manylinuxLegacyArches[e.Platform()] {
		return false
	}
	return e.manylinuxCompatible(Manylinux1, 2, 5)
}

// IsManylinux2010Compatible reports whether the environment can run
// manylinux2010 (glibc >= 2.12) binaries.
func (e *Environment) IsManylinux2010Compatible() bool {
	if !manylinuxLegacyArches[e.Platform()] {
		return false
	}
	return e.manylinuxCompatible(Manylinux2010, 2, 12)
}

// IsManylinux2014Compatible reports whether the environment can run
// manylinux2014 (glibc >= 2.17) binaries. On 32-bit ARM the tier
// additionally requires a hard-float userspace, which only the ELF
// header of the running binary reveals.
func (e *Environment) IsManylinux2014Compatible() bool {
	platform := e.Platform()
	if !manylinux2014Arches[platform] {
		return false
	}
	if platform == "linux_armv7l" && !e.IsLinuxARMHF() {
		return false
	}
	return e.manylinuxCompatible(Manylinux2014, 2, 17)
}

// manylinuxCompatible applies the two-stage tier check: an installed
// marker policy is authoritative when it declares the tier; otherwise
// the glibc version floor decides.
func (e *Environment) manylinuxCompatible(tier string, glibcMajor, glibcMinor int) bool {
	if e.Manylinux != nil {
		if compatible, declared := e.Manylinux.Compatible(tier); declared {
			e.debugf("%s compatibility declared by marker policy: %v", tier, compatible)
			return compatible
		}
	}
	if e.GlibcCompatible == nil {
		return false
	}
	return e.GlibcCompatible(glibcMajor, glibcMinor)
}

// manylinuxCompatPlatforms expands an explicit manylinux platform into
// the older tiers its standard guarantees backward compatibility with.
// Expansion only ever goes downward: manylinux2014 implies 2010 and 1
// (for the architectures the older tiers support), manylinux2010 implies
// 1.
func manylinuxCompatPlatforms(arch string) []string {
	platforms := []string{arch}
	prefix, suffix, found := strings.Cut(arch, "_")
	sep := ""
	if found {
		sep = "_"
	}
	switch prefix {
	case Manylinux2014:
		if suffix == "i686" || suffix == "x86_64" {
			platforms = append(platforms,
				Manylinux2010+sep+suffix,
				Manylinux1+sep+suffix)
		}
	case Manylinux2010:
		platforms = append(platforms, Manylinux1+sep+suffix)
	}
	return platforms
}

// customPlatforms resolves one platform string into the ordered set of
// platform strings it is compatible with, most specific first. The input
// is always represented in the result. In explicit mode (a caller
// override) only static family rules apply; otherwise the local
// environment is probed for manylinux tiers, newest first, with the raw
// platform last as the least specific fallback.
func (e *Environment) customPlatforms(arch string, explicit bool) []string {
	prefix, _, _ := strings.Cut(arch, "_")
	switch {
	case strings.HasPrefix(arch, "macosx"):
		return macCompatPlatforms(arch)
	case prefix == Manylinux2014 || prefix == Manylinux2010:
		return manylinuxCompatPlatforms(arch)
	case !explicit:
		_, suffix, found := strings.Cut(arch, "_")
		sep := ""
		if found {
			sep = "_"
		}
		var platforms []string
		if e.IsManylinux2014Compatible() {
			platforms = append(platforms, Manylinux2014+sep+suffix)
		}
		if e.IsManylinux2010Compatible() {
			platforms = append(platforms, Manylinux2010+sep+suffix)
		}
		if e.IsManylinux1Compatible() {
			platforms = append(platforms, Manylinux1+sep+suffix)
		}
		return append(platforms, arch)
	default:
		return []string{arch}
	}
}
