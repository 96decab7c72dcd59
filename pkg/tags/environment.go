// SPDX-License-Identifier: MPL-2.0

package tags

import (
	"github.com/charmbracelet/log"

	"wheeltag/internal/glibc"
	"wheeltag/internal/sysprobe"
)

// Interpreter implementation short codes, as they appear in tags.
const (
	ImplCPython    = "cp"
	ImplPyPy       = "pp"
	ImplIronPython = "ip"
	ImplJython     = "jy"
)

// Defaults used by Host when no interpreter is configured.
var defaultVersionInfo = VersionInfo{3, 8}

// ManylinuxPolicy mirrors the optional marker module an environment may
// install to declare manylinux compatibility outright. Compatible returns
// (compatible, declared): when declared is false the tier was not
// mentioned by the policy and the caller falls back to the glibc floor
// check. Absence of a policy entirely is the normal state, not an error.
type ManylinuxPolicy interface {
	Compatible(tier string) (compatible, declared bool)
}

// Environment is the read-only introspection surface every entry point
// consumes. It captures process-wide facts (interpreter identity, OS,
// CPU, build configuration) as plain data plus a few query functions, so
// tests can substitute synthetic environments and callers can override
// any fact per call.
//
// The zero value is usable: lookups report absence and every computation
// degrades to its documented fallback.
type Environment struct {
	// Impl is the interpreter implementation short code ("cp", "pp", ...).
	Impl string
	// VersionInfo is the interpreter version, e.g. {3, 8}.
	VersionInfo VersionInfo
	// OS is the operating system family in runtime.GOOS vocabulary.
	OS string
	// OSRelease is the OS version string: the product version on darwin
	// ("10.15.7"), the kernel release elsewhere.
	OSRelease string
	// Machine is the CPU architecture as the OS reports it ("x86_64").
	Machine string
	// PointerWidth is the address-space width of the running process in
	// bits. 32-bit interpreters on 64-bit kernels must only be offered
	// 32-bit binaries.
	PointerWidth int
	// Executable is the path of the running interpreter binary, probed
	// for its ELF header during hard-float ARM detection.
	Executable string

	// ConfigVar looks up a build-time configuration variable by name.
	// The second result is false when the variable is unset.
	ConfigVar func(name string) (string, bool)
	// GlibcCompatible reports whether the runtime C library satisfies the
	// given version floor.
	GlibcCompatible func(major, minor int) bool
	// Manylinux is the optional marker policy; nil means not installed.
	Manylinux ManylinuxPolicy

	// Logger receives degradation warnings and probe traces. Nil is
	// silent.
	Logger *log.Logger
}

// Host builds an Environment from live host introspection. Interpreter
// facts cannot be read from a foreign interpreter, so they start from the
// package defaults (CPython 3.8); callers layer configuration on top.
func Host() *Environment {
	info := sysprobe.Probe()
	return &Environment{
		Impl:            ImplCPython,
		VersionInfo:     append(VersionInfo(nil), defaultVersionInfo...),
		OS:              info.OS,
		OSRelease:       info.Release,
		Machine:         info.Machine,
		PointerWidth:    info.PointerWidth,
		Executable:      info.Executable,
		GlibcCompatible: glibc.Compatible,
	}
}

// InterpreterName returns the implementation short code, defaulting to
// CPython when unset.
func (e *Environment) InterpreterName() string {
	if e.Impl == "" {
		return ImplCPython
	}
	return e.Impl
}

// InterpreterVersion returns the compact interpreter version string. A
// build-configured "py_version_nodot" wins over the version components.
func (e *Environment) InterpreterVersion() string {
	if v, ok := e.configVar("py_version_nodot"); ok && v != "" {
		return v
	}
	return e.VersionInfo.Nodot()
}

func (e *Environment) configVar(name string) (string, bool) {
	if e.ConfigVar == nil {
		return "", false
	}
	return e.ConfigVar(name)
}

func (e *Environment) is32Bit() bool {
	return e.PointerWidth == 32
}

func (e *Environment) warnf(format string, args ...any) {
	if e.Logger != nil {
		e.Logger.Warnf(format, args...)
	}
}

func (e *Environment) debugf(format string, args ...any) {
	if e.Logger != nil {
		e.Logger.Debugf(format, args...)
	}
}
