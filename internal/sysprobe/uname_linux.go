// SPDX-License-Identifier: MPL-2.0

//go:build linux

package sysprobe

import "golang.org/x/sys/unix"

// unameProbe reads the kernel release and machine name via uname(2).
func unameProbe() (release, machine string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", ""
	}
	return unix.ByteSliceToString(uts.Release[:]), unix.ByteSliceToString(uts.Machine[:])
}
