// SPDX-License-Identifier: MPL-2.0

package tags

import "strings"

// flag evaluates a boolean build-configuration variable. An absent
// variable degrades to the fallback value, with a warning when warn is
// set, since a wrong guess here yields a wrong ABI tag.
func (e *Environment) flag(name string, fallback bool, expected string, warn bool) bool {
	val, ok := e.configVar(name)
	if !ok {
		if warn {
			e.warnf("config variable %q is unset, Python ABI tag may be incorrect", name)
		}
		return fallback
	}
	return val == expected
}

// ABITag resolves the environment's ABI tag. A build-time SOABI value is
// preferred: the CPython form ("cpython-38-x86_64-linux-gnu") re-encodes
// to the short "cp38", anything else is normalized verbatim. CPython and
// PyPy builds without SOABI synthesize family+version plus the debug,
// pymalloc and wide-unicode markers from configuration variables. An
// empty result means no computable ABI; callers represent that as
// "none".
func (e *Environment) ABITag() string {
	soabi, _ := e.configVar("SOABI")
	impl := e.InterpreterName()
	isCPython := impl == ImplCPython

	switch {
	case soabi == "" && (isCPython || impl == ImplPyPy):
		var d, m, u string
		if e.flag("Py_DEBUG", false, "1", isCPython) {
			d = "d"
		}
		// Python 3.8 dropped the pymalloc marker, 3.3 the unicode-width
		// marker.
		if e.VersionInfo.lessThan(3, 8) && e.flag("WITH_PYMALLOC", isCPython, "1", isCPython) {
			m = "m"
		}
		if e.VersionInfo.lessThan(3, 3) && e.flag("Py_UNICODE_SIZE", false, "4", isCPython) {
			u = "u"
		}
		return impl + e.InterpreterVersion() + d + m + u
	case strings.HasPrefix(soabi, "cpython-"):
		return "cp" + strings.Split(soabi, "-")[1]
	case soabi != "":
		return normalizeString(soabi)
	}
	return ""
}

// cpythonABIs builds the default ABI list for the CPython tag generator:
// the exact build ABI first, plus the plain "cp<ver>" ABI for 3.8+ debug
// builds, which can also load release extension modules.
func (e *Environment) cpythonABIs(version VersionInfo) []string {
	nodot := version.Nodot()
	var abis []string
	var debug, pymalloc, ucs4 string
	if e.flag("Py_DEBUG", false, "1", true) {
		debug = "d"
	}
	if version.lessThan(3, 8) {
		if e.flag("WITH_PYMALLOC", true, "1", true) {
			pymalloc = "m"
		}
		if version.lessThan(3, 3) && e.flag("Py_UNICODE_SIZE", false, "4", true) {
			ucs4 = "u"
		}
	} else if debug != "" {
		abis = append(abis, "cp"+nodot)
	}
	return append([]string{"cp" + nodot + debug + pymalloc + ucs4}, abis...)
}
