package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/millworks/millwright/pkg/header"
)

const testSpeedsYAML = `Aluminum:
  End Mill:
    sfm: 600
    rpm:
      "0.125": 8000
      "0.25": 6000
      "0.5": 4000
`

const testInventoryYAML = `End Mill:
  1/4" 2-Flute:
    diameter: 6.35
    material: HSS
    flutes: 2
Drill:
  "#7":
    diameter: 5.1054
`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestSpeedsCommand(t *testing.T) {
	dir := t.TempDir()
	speedsPath := writeTestFile(t, dir, "speeds.yaml", testSpeedsYAML)
	outPath := filepath.Join(dir, "out.json")

	err := New().Run(t.Context(), []string{
		"millwright", "speeds",
		"--speeds", speedsPath,
		"--material", "Aluminum",
		"--tool", "End Mill",
		"--diameter", "0.1875",
		"--format", "json",
		"--output", outPath,
	})
	if err != nil {
		t.Fatalf("speeds command failed: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var result speedResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if result.Kind != header.KindSpeedResult {
		t.Errorf("kind = %q, want %q", result.Kind, header.KindSpeedResult)
	}
	if result.RPM != 7000 {
		t.Errorf("RPM = %v, want 7000", result.RPM)
	}
	if !result.Interpolated {
		t.Error("expected interpolated result")
	}
}

func TestSpeedsCommandUnknownMaterial(t *testing.T) {
	dir := t.TempDir()
	speedsPath := writeTestFile(t, dir, "speeds.yaml", testSpeedsYAML)

	err := New().Run(t.Context(), []string{
		"millwright", "speeds",
		"--speeds", speedsPath,
		"--material", "Unobtanium",
		"--tool", "End Mill",
		"--diameter", "0.25",
	})
	if err == nil {
		t.Fatal("expected error for unknown material")
	}
	if !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Errorf("error = %v, want NOT_FOUND code", err)
	}
}

func TestToolsCommand(t *testing.T) {
	dir := t.TempDir()
	toolsPath := writeTestFile(t, dir, "tools.yaml", testInventoryYAML)
	outPath := filepath.Join(dir, "out.json")

	err := New().Run(t.Context(), []string{
		"millwright", "tools",
		"--tools", toolsPath,
		"--format", "json",
		"--output", outPath,
	})
	if err != nil {
		t.Fatalf("tools command failed: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var result inventoryResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if result.Kind != header.KindInventory {
		t.Errorf("kind = %q, want %q", result.Kind, header.KindInventory)
	}
	if len(result.Tools) != 2 {
		t.Fatalf("got %d tools, want 2", len(result.Tools))
	}
	if result.Tools[0].ID != 0 || result.Tools[0].Type != "End Mill" {
		t.Errorf("first tool = %+v, want id 0, type End Mill", result.Tools[0])
	}
	if result.Tools[1].Type != "Drill" {
		t.Errorf("second tool type = %q, want Drill", result.Tools[1].Type)
	}
}

func TestToolsCommandTypeFilter(t *testing.T) {
	dir := t.TempDir()
	toolsPath := writeTestFile(t, dir, "tools.yaml", testInventoryYAML)
	outPath := filepath.Join(dir, "out.json")

	err := New().Run(t.Context(), []string{
		"millwright", "tools",
		"--tools", toolsPath,
		"--type", "Drill",
		"--format", "json",
		"--output", outPath,
	})
	if err != nil {
		t.Fatalf("tools command failed: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var result inventoryResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if len(result.Tools) != 1 || result.Tools[0].Type != "Drill" {
		t.Errorf("filtered tools = %+v, want single Drill", result.Tools)
	}
}

func TestSpeedsCommandBadFormat(t *testing.T) {
	err := New().Run(t.Context(), []string{
		"millwright", "speeds",
		"--speeds", "ignored.yaml",
		"--material", "Aluminum",
		"--tool", "End Mill",
		"--diameter", "0.25",
		"--format", "xml",
	})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}
