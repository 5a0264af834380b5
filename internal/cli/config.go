package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/protviz/pkg/annotation"
	"github.com/matzehuels/protviz/pkg/errors"
	"github.com/matzehuels/protviz/pkg/track"
)

// figureConfig is the TOML figure description accepted by --config. It can
// preselect tracks and modes and define custom annotation tracks; explicit
// command-line flags override its values.
//
// Example:
//
//	tracks = ["pdb", "ligand", "pfam", "ted"]
//	collapse = ["ted"]
//	view = "20:80"
//	width = 960
//
//	[[custom]]
//	label = "My Features"
//
//	  [[custom.annotation]]
//	  start = 10
//	  end = 40
//	  label = "helix"
//	  color = "tomato"
//
//	  [[custom.annotation]]
//	  position = 50
//	  label = "phospho-site"
type figureConfig struct {
	Tracks   []string            `toml:"tracks"`
	Collapse []string            `toml:"collapse"`
	View     string              `toml:"view"`
	Width    float64             `toml:"width"`
	Custom   []customTrackConfig `toml:"custom"`
}

type customTrackConfig struct {
	Label       string             `toml:"label"`
	Annotations []annotationConfig `toml:"annotation"`
}

type annotationConfig struct {
	Start    *int   `toml:"start"`
	End      *int   `toml:"end"`
	Position *int   `toml:"position"`
	Label    string `toml:"label"`
	Color    string `toml:"color"`
	Display  string `toml:"display"`
}

// loadConfig reads and parses a figure config file.
func loadConfig(path string) (*figureConfig, error) {
	var cfg figureConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing config %s", path)
	}
	return &cfg, nil
}

// customTracks converts the config's custom blocks into tracks. Malformed
// annotations are skipped; their errors are returned for the caller to log
// as warnings.
func (c *figureConfig) customTracks() ([]*track.Track, []error) {
	var tracks []*track.Track
	var warnings []error

	for _, ct := range c.Custom {
		records := make([]annotation.Record, len(ct.Annotations))
		for i, a := range ct.Annotations {
			records[i] = annotation.Record{
				Start:    a.Start,
				End:      a.End,
				Position: a.Position,
				Label:    a.Label,
				Color:    a.Color,
				Display:  a.Display,
			}
		}
		anns, errs := annotation.Normalize(records)
		warnings = append(warnings, errs...)
		tracks = append(tracks, track.NewCustomTrack(ct.Label, anns))
	}
	return tracks, warnings
}
