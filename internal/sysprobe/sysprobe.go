// SPDX-License-Identifier: MPL-2.0

// Package sysprobe reports read-only facts about the host: OS family,
// OS/kernel release, CPU architecture, process address width and the
// running executable path. Probing is best effort; anything the host
// refuses to answer is left empty rather than failing.
package sysprobe

import (
	"math/bits"
	"os"
	"runtime"
)

// Info is a snapshot of host facts, taken fresh on every Probe call.
type Info struct {
	// OS is runtime.GOOS.
	OS string
	// Release is the macOS product version on darwin, the kernel release
	// elsewhere. Empty when the host cannot be queried.
	Release string
	// Machine is the CPU architecture as the OS names it ("x86_64",
	// "armv7l"). Falls back to a uname-style spelling of runtime.GOARCH.
	Machine string
	// PointerWidth is the address width of this process in bits.
	PointerWidth int
	// Executable is the path of the running binary, or empty.
	Executable string
}

// Probe collects host facts.
func Probe() Info {
	release, machine := unameProbe()
	if machine == "" {
		machine = goarchMachine(runtime.GOARCH)
	}
	exe, err := os.Executable()
	if err != nil {
		exe = ""
	}
	return Info{
		OS:           runtime.GOOS,
		Release:      release,
		Machine:      machine,
		PointerWidth: bits.UintSize,
		Executable:   exe,
	}
}

// goarchMachine translates a GOARCH value into the spelling uname would
// use for it.
func goarchMachine(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i686"
	case "arm":
		return "armv7l"
	case "arm64":
		return "arm64"
	case "ppc64le":
		return "ppc64le"
	case "ppc64":
		return "ppc64"
	case "s390x":
		return "s390x"
	default:
		return goarch
	}
}
