// SPDX-License-Identifier: MPL-2.0

//go:build !linux && !darwin

package sysprobe

// unameProbe has no uname(2) on this platform; Probe falls back to the
// GOARCH-derived machine name and an empty release.
func unameProbe() (release, machine string) {
	return "", ""
}
