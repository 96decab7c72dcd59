// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"wheeltag/pkg/tags"
)

func captureCommand() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	c := &cobra.Command{}
	c.SetOut(buf)
	c.SetErr(buf)
	return c, buf
}

func sampleTags() []tags.Tag {
	return []tags.Tag{
		tags.NewTag("cp38", "cp38", "manylinux1_x86_64"),
		tags.NewTag("cp38", "none", "any"),
	}
}

func TestRenderTags_Plain(t *testing.T) {
	c, buf := captureCommand()
	tagsJSON, tagsCount = false, false

	if err := renderTags(c, sampleTags()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "cp38-cp38-manylinux1_x86_64") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestRenderTags_JSON(t *testing.T) {
	c, buf := captureCommand()
	tagsJSON, tagsCount = true, false
	defer func() { tagsJSON = false }()

	if err := renderTags(c, sampleTags()); err != nil {
		t.Fatal(err)
	}
	var decoded []tagJSON
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(decoded))
	}
	if decoded[0].Tag != "cp38-cp38-manylinux1_x86_64" || decoded[0].ABI != "cp38" {
		t.Errorf("unexpected first entry: %+v", decoded[0])
	}
}

func TestRenderTags_Count(t *testing.T) {
	c, buf := captureCommand()
	tagsJSON, tagsCount = false, true
	defer func() { tagsCount = false }()

	if err := renderTags(c, sampleTags()); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "2" {
		t.Errorf("count output = %q, want 2", got)
	}
}
