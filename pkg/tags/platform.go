// SPDX-License-Identifier: MPL-2.0

package tags

import (
	"fmt"
	"strings"
)

// Platform derives the canonical platform string for the environment:
// "macosx_10_15_x86_64", "linux_x86_64", "win_amd64". It never fails;
// unknown OS families get the generic normalized "<os>_<machine>" form.
func (e *Environment) Platform() string {
	switch e.OS {
	case "darwin":
		return e.macPlatform()
	case "windows":
		return e.winPlatform()
	default:
		result := normalizeString(strings.ToLower(e.OS + "_" + e.Machine))
		if result == "linux_x86_64" && e.is32Bit() {
			// A 32-bit interpreter on a 64-bit kernel can only load
			// 32-bit extensions.
			result = "linux_i686"
		}
		return result
	}
}

// CompatiblePlatforms expands the detected platform into every platform
// string the environment can consume, most specific first, probing the
// local system for manylinux tiers.
func (e *Environment) CompatiblePlatforms() []string {
	return e.customPlatforms(e.Platform(), false)
}

func (e *Environment) macPlatform() string {
	// The OS product version, not the kernel release: binaries target
	// macOS versions.
	major, minor := "0", "0"
	if parts := strings.Split(e.OSRelease, "."); len(parts) >= 2 {
		major, minor = parts[0], parts[1]
	} else if len(parts) == 1 && parts[0] != "" {
		major = parts[0]
	}

	machine := e.Machine
	if machine == "x86_64" && e.is32Bit() {
		machine = "i386"
	} else if machine == "ppc64" && e.is32Bit() {
		machine = "ppc"
	}

	return fmt.Sprintf("macosx_%s_%s_%s", major, minor, machine)
}

func (e *Environment) winPlatform() string {
	switch e.Machine {
	case "x86_64", "amd64", "AMD64":
		return "win_amd64"
	case "arm64", "ARM64", "aarch64":
		return "win_arm64"
	default:
		return "win32"
	}
}
