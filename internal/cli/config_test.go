package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/protviz/pkg/annotation"
	"github.com/matzehuels/protviz/pkg/errors"
)

const sampleConfig = `
tracks = ["pdb", "ted"]
collapse = ["ted"]
view = "20:80"
width = 800

[[custom]]
label = "My Features"

  [[custom.annotation]]
  start = 10
  end = 40
  label = "helix"
  color = "tomato"

  [[custom.annotation]]
  position = 50
  label = "phospho-site"

  [[custom.annotation]]
  label = "broken"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "figure.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Tracks) != 2 || cfg.Tracks[0] != "pdb" {
		t.Errorf("unexpected tracks: %v", cfg.Tracks)
	}
	if cfg.View != "20:80" {
		t.Errorf("unexpected view: %s", cfg.View)
	}
	if cfg.Width != 800 {
		t.Errorf("unexpected width: %v", cfg.Width)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "tracks = ["))
	if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestFigureConfig_CustomTracks(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	tracks, warnings := cfg.customTracks()
	if len(tracks) != 1 {
		t.Fatalf("expected 1 custom track, got %d", len(tracks))
	}
	if tracks[0].Label != "My Features" {
		t.Errorf("unexpected label: %s", tracks[0].Label)
	}

	// The malformed annotation is skipped, the valid two survive.
	if len(tracks[0].Entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(tracks[0].Entries))
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(warnings))
	}

	// The position annotation becomes a point marker.
	point := tracks[0].Entries[1]
	if point.Display != annotation.DisplayMarker {
		t.Errorf("point should default to marker, got %s", point.Display)
	}
	if point.Spans[0].Start != 50 || point.Spans[0].End != 50 {
		t.Errorf("unexpected point span: %+v", point.Spans[0])
	}
}
