// SPDX-License-Identifier: MPL-2.0

package tags

import (
	"slices"
	"testing"
)

func tagStrings(in []Tag) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		out = append(out, t.String())
	}
	return out
}

func TestCPythonTags_Order(t *testing.T) {
	t.Parallel()

	env := Environment{Impl: ImplCPython, VersionInfo: VersionInfo{3, 8}}
	got := tagStrings(CPythonTags(&env, VersionInfo{3, 8}, []string{"cp38"}, []string{"manylinux1_x86_64", "linux_x86_64"}))
	want := []string{
		"cp38-cp38-manylinux1_x86_64",
		"cp38-cp38-linux_x86_64",
		"cp38-abi3-manylinux1_x86_64",
		"cp38-abi3-linux_x86_64",
		"cp38-none-manylinux1_x86_64",
		"cp38-none-linux_x86_64",
		"cp37-abi3-manylinux1_x86_64",
		"cp37-abi3-linux_x86_64",
		"cp36-abi3-manylinux1_x86_64",
		"cp36-abi3-linux_x86_64",
		"cp35-abi3-manylinux1_x86_64",
		"cp35-abi3-linux_x86_64",
		"cp34-abi3-manylinux1_x86_64",
		"cp34-abi3-linux_x86_64",
		"cp33-abi3-manylinux1_x86_64",
		"cp33-abi3-linux_x86_64",
		"cp32-abi3-manylinux1_x86_64",
		"cp32-abi3-linux_x86_64",
	}
	if !slices.Equal(got, want) {
		t.Errorf("CPythonTags order mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestCPythonTags_NoStableABIBefore32(t *testing.T) {
	t.Parallel()

	env := Environment{Impl: ImplCPython, VersionInfo: VersionInfo{2, 7}}
	got := tagStrings(CPythonTags(&env, VersionInfo{2, 7}, []string{"cp27mu"}, []string{"linux_x86_64"}))
	want := []string{
		"cp27-cp27mu-linux_x86_64",
		"cp27-none-linux_x86_64",
	}
	if !slices.Equal(got, want) {
		t.Errorf("CPythonTags = %v, want %v", got, want)
	}
}

func TestCPythonTags_ExplicitABIsDropSpecials(t *testing.T) {
	t.Parallel()

	env := Environment{Impl: ImplCPython, VersionInfo: VersionInfo{3, 8}}
	got := CPythonTags(&env, VersionInfo{3, 8}, []string{"cp38", "abi3", "none"}, []string{"any"})
	// abi3 and none must not be duplicated ahead of their ranked blocks.
	want := []string{
		"cp38-cp38-any",
		"cp38-abi3-any",
		"cp38-none-any",
		"cp37-abi3-any",
		"cp36-abi3-any",
		"cp35-abi3-any",
		"cp34-abi3-any",
		"cp33-abi3-any",
		"cp32-abi3-any",
	}
	if !slices.Equal(tagStrings(got), want) {
		t.Errorf("CPythonTags = %v, want %v", tagStrings(got), want)
	}
}

func TestGenericTags(t *testing.T) {
	t.Parallel()

	t.Run("unknown family with no abi", func(t *testing.T) {
		t.Parallel()
		env := Environment{Impl: "zz", VersionInfo: VersionInfo{1, 0}}
		got := tagStrings(GenericTags(&env, "zz10", nil, []string{"plat_a", "plat_b"}))
		want := []string{
			"zz10-none-plat_a",
			"zz10-none-plat_b",
		}
		if !slices.Equal(got, want) {
			t.Errorf("GenericTags = %v, want %v", got, want)
		}
	})

	t.Run("resolved abi precedes none", func(t *testing.T) {
		t.Parallel()
		env := Environment{
			Impl:        ImplPyPy,
			VersionInfo: VersionInfo{3, 6},
			ConfigVar:   configVars(map[string]string{"SOABI": "pypy36-pp73-x86_64-linux-gnu"}),
		}
		got := tagStrings(GenericTags(&env, "pp36", nil, []string{"linux_x86_64"}))
		want := []string{
			"pp36-pypy36_pp73_x86_64_linux_gnu-linux_x86_64",
			"pp36-none-linux_x86_64",
		}
		if !slices.Equal(got, want) {
			t.Errorf("GenericTags = %v, want %v", got, want)
		}
	})

	t.Run("empty interpreter uses environment", func(t *testing.T) {
		t.Parallel()
		env := Environment{Impl: ImplPyPy, VersionInfo: VersionInfo{3, 6}}
		got := GenericTags(&env, "", []string{"none"}, []string{"any"})
		if got[0].Interpreter() != "pp36" {
			t.Errorf("interpreter = %q, want pp36", got[0].Interpreter())
		}
	})
}

func TestCompatibleTags_Ladder(t *testing.T) {
	t.Parallel()

	env := Environment{Impl: ImplCPython, VersionInfo: VersionInfo{3, 3}}
	got := tagStrings(CompatibleTags(&env, VersionInfo{3, 3}, "cp33", []string{"plat"}))
	want := []string{
		"py33-none-plat",
		"py3-none-plat",
		"py32-none-plat",
		"py31-none-plat",
		"py30-none-plat",
		"cp33-none-any",
		"py33-none-any",
		"py3-none-any",
		"py32-none-any",
		"py31-none-any",
		"py30-none-any",
	}
	if !slices.Equal(got, want) {
		t.Errorf("CompatibleTags = %v, want %v", got, want)
	}
}
