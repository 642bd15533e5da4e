package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/FloorFit/internal/engine"
	"github.com/piwi3910/FloorFit/internal/model"
)

func sampleResult() engine.Result {
	settings := model.DefaultPlaceSettings()
	settings.TargetCount = 8
	plan := model.FloorPlan{
		Bounds: model.Bounds{MaxX: 30, MaxY: 20},
		Entrances: []model.Entrance{
			{ID: "entrance-0", Position: model.Point2D{X: 0, Y: 10}},
		},
	}
	return engine.Run(plan, settings)
}

func TestSaveAndLoadProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	result := sampleResult()

	if err := Save(path, "warehouse-a", result); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if file.Version != FileVersion {
		t.Errorf("expected version %s, got %s", FileVersion, file.Version)
	}
	if file.Name != "warehouse-a" {
		t.Errorf("expected name warehouse-a, got %s", file.Name)
	}
	if len(file.Result.Units) != len(result.Units) {
		t.Errorf("expected %d units, got %d", len(result.Units), len(file.Result.Units))
	}
	if file.Result.Stats.TotalUnits != result.Stats.TotalUnits {
		t.Errorf("stats mismatch after round trip")
	}
	for i := range result.Units {
		if file.Result.Units[i] != result.Units[i] {
			t.Errorf("unit %d changed across the round trip", i)
		}
	}
}

func TestSaveProjectCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "layout.json")

	if err := Save(path, "", sampleResult()); err != nil {
		t.Fatalf("Save should create parent dirs: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("project file was not created")
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadProjectInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, []byte("not json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadProjectMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, []byte(`{"name":"x"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing version field")
	}
}
