// SPDX-License-Identifier: MPL-2.0

package tags

import "slices"

// abi3Applies reports whether the stable-ABI tag exists for a version:
// CPython 3.2 introduced it.
func abi3Applies(version VersionInfo) bool {
	return len(version) > 1 && version.atLeast(3, 2)
}

// CPythonTags generates the interpreter-specific tag sequence for
// CPython, best match first: exact-ABI tags, then "abi3" stable-ABI
// tags, then "none"-ABI tags, then stable-ABI tags of every older minor
// version down to 3.2. A nil version falls back to the environment; a nil
// abis slice resolves the build's own ABIs.
func CPythonTags(e *Environment, version VersionInfo, abis, platforms []string) []Tag {
	if len(version) == 0 {
		version = e.VersionInfo
	}
	if len(version) > 2 {
		version = version[:2]
	}
	interpreter := "cp" + version.Nodot()

	if abis == nil {
		if len(version) > 1 {
			abis = e.cpythonABIs(version)
		} else {
			abis = []string{}
		}
	}
	abis = slices.Clone(abis)
	// abi3 and none are emitted in their own ranked blocks below.
	abis = slices.DeleteFunc(abis, func(abi string) bool {
		return abi == "abi3" || abi == "none"
	})

	var supported []Tag
	for _, abi := range abis {
		for _, platform := range platforms {
			supported = append(supported, NewTag(interpreter, abi, platform))
		}
	}
	if abi3Applies(version) {
		for _, platform := range platforms {
			supported = append(supported, NewTag(interpreter, "abi3", platform))
		}
	}
	for _, platform := range platforms {
		supported = append(supported, NewTag(interpreter, "none", platform))
	}
	if abi3Applies(version) {
		for minor := version[1] - 1; minor >= 2; minor-- {
			older := "cp" + VersionInfo{version[0], minor}.Nodot()
			for _, platform := range platforms {
				supported = append(supported, NewTag(older, "abi3", platform))
			}
		}
	}
	return supported
}

// GenericTags generates the fallback tag sequence for alternate
// interpreter families: each ABI in priority order crossed with each
// platform, most specific platform first. A nil abis slice resolves the
// environment ABI tag; "none" is always included last.
func GenericTags(e *Environment, interpreter string, abis, platforms []string) []Tag {
	if interpreter == "" {
		interpreter = e.InterpreterName() + e.InterpreterVersion()
	}
	if abis == nil {
		if abi := e.ABITag(); abi != "" {
			abis = []string{abi}
		}
	}
	abis = slices.Clone(abis)
	if !slices.Contains(abis, "none") {
		abis = append(abis, "none")
	}

	var supported []Tag
	for _, abi := range abis {
		for _, platform := range platforms {
			supported = append(supported, NewTag(interpreter, abi, platform))
		}
	}
	return supported
}

// CompatibleTags generates the interpreter-version-agnostic trailer every
// sequence ends with: pure-Python "py" tags against each platform, the
// interpreter's own "-none-any" tag, then the "py" ladder against "any".
func CompatibleTags(e *Environment, version VersionInfo, interpreter string, platforms []string) []Tag {
	if len(version) == 0 {
		version = e.VersionInfo
	}
	var supported []Tag
	for _, py := range pyInterpreterRange(version) {
		for _, platform := range platforms {
			supported = append(supported, NewTag(py, "none", platform))
		}
	}
	if interpreter != "" {
		supported = append(supported, NewTag(interpreter, "none", "any"))
	}
	for _, py := range pyInterpreterRange(version) {
		supported = append(supported, NewTag(py, "none", "any"))
	}
	return supported
}

// pyInterpreterRange lists the generic interpreter tags a version
// satisfies, in rank order: the exact "py38", the major-only "py3", then
// every older minor version descending.
func pyInterpreterRange(version VersionInfo) []string {
	if len(version) == 0 {
		return nil
	}
	out := []string{"py" + version.Nodot()}
	if len(version) > 1 {
		out = append(out, "py"+VersionInfo{version[0]}.Nodot())
		for minor := version[1] - 1; minor >= 0; minor-- {
			out = append(out, "py"+VersionInfo{version[0], minor}.Nodot())
		}
	}
	return out
}
