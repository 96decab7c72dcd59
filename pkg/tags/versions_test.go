// SPDX-License-Identifier: MPL-2.0

package tags

import (
	"slices"
	"testing"
)

func TestVersionInfo_Nodot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version VersionInfo
		want    string
	}{
		{"major only", VersionInfo{2}, "2"},
		{"major minor", VersionInfo{2, 8}, "28"},
		{"three components uses first two", VersionInfo{3, 6, 5}, "36"},
		{"two digit minor", VersionInfo{3, 10}, "310"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.version.Nodot(); got != tt.want {
				t.Errorf("Nodot(%v) = %q, want %q", tt.version, got, tt.want)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want VersionInfo
	}{
		{"38", VersionInfo{3, 8}},
		{"310", VersionInfo{3, 10}},
		{"3", VersionInfo{3}},
		{"27", VersionInfo{2, 7}},
		{"10", VersionInfo{1, 0}},
		{"", nil},
		{"x", nil},
		{"3x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := ParseVersion(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersionInfo_MinorVersionsDescending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version VersionInfo
		want    []string
	}{
		{"three eight", VersionInfo{3, 8}, []string{"38", "37", "36", "35", "34", "33", "32", "31", "30"}},
		{"three zero", VersionInfo{3, 0}, []string{"30"}},
		{"triple decrements last", VersionInfo{3, 6, 2}, []string{"362", "361", "360"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.version.MinorVersionsDescending()
			if !slices.Equal(got, tt.want) {
				t.Errorf("MinorVersionsDescending(%v) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}
