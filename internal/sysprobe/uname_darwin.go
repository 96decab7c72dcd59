// SPDX-License-Identifier: MPL-2.0

//go:build darwin

package sysprobe

import "golang.org/x/sys/unix"

// unameProbe returns the macOS product version ("10.15.7"), not the
// Darwin kernel release: wheel platforms target macOS versions. The
// machine name still comes from uname(2).
func unameProbe() (release, machine string) {
	release, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		release = ""
	}
	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		machine = unix.ByteSliceToString(uts.Machine[:])
	}
	return release, machine
}
