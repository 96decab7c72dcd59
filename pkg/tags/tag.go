// SPDX-License-Identifier: MPL-2.0

package tags

import "strings"

// Tag is an immutable (interpreter, abi, platform) compatibility triple.
// Each component is a lowercase token safe for use as a wheel filename
// segment. Tags compare by value, so they can key maps and sets directly.
type Tag struct {
	interpreter string
	abi         string
	platform    string
}

// NewTag builds a Tag, lowercasing each component.
func NewTag(interpreter, abi, platform string) Tag {
	return Tag{
		interpreter: strings.ToLower(interpreter),
		abi:         strings.ToLower(abi),
		platform:    strings.ToLower(platform),
	}
}

// Interpreter returns the interpreter component, e.g. "cp38".
func (t Tag) Interpreter() string { return t.interpreter }

// ABI returns the abi component, e.g. "cp38" or "none".
func (t Tag) ABI() string { return t.abi }

// Platform returns the platform component, e.g. "manylinux2014_x86_64".
func (t Tag) Platform() string { return t.platform }

// String renders the tag in wheel filename form: "cp38-cp38-linux_x86_64".
func (t Tag) String() string {
	return t.interpreter + "-" + t.abi + "-" + t.platform
}

// uniqueTags removes duplicates, keeping the first occurrence of each tag
// and preserving order otherwise. Order is the primary contract of this
// package: installers stop at the first index hit.
func uniqueTags(in []Tag) []Tag {
	seen := make(map[Tag]struct{}, len(in))
	out := make([]Tag, 0, len(in))
	for _, t := range in {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// normalizeString rewrites raw platform or ABI values into tag-safe
// tokens: dots and dashes become underscores.
func normalizeString(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, ".", "_"), "-", "_")
}
