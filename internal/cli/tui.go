package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/protviz/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// trackOption is one selectable annotation track in the picker.
type trackOption struct {
	name        string
	description string
	enabled     bool
	collapsed   bool
}

var trackDescriptions = map[string]string{
	"pdb":        "experimental structure coverage (PDBe)",
	"ligand":     "ligand binding sites (PDBe)",
	"pfam":       "Pfam domains (InterPro)",
	"cathgene3d": "CATH-Gene3D domains (InterPro)",
	"ted":        "predicted domains (TED)",
}

// TrackSelectModel is the bubbletea model for interactive track selection.
type TrackSelectModel struct {
	Options   []trackOption
	Cursor    int
	Confirmed bool
	Aborted   bool
}

// NewTrackSelectModel creates a selection model with the given tracks
// pre-enabled (nil means the default selection) and pre-collapsed.
func NewTrackSelectModel(enabled, collapsed []string) TrackSelectModel {
	if len(enabled) == 0 {
		enabled = defaultTracks
	}
	on := make(map[string]bool, len(enabled))
	for _, n := range enabled {
		on[strings.ToLower(strings.TrimSpace(n))] = true
	}
	fold := make(map[string]bool, len(collapsed))
	for _, n := range collapsed {
		fold[strings.ToLower(strings.TrimSpace(n))] = true
	}

	options := make([]trackOption, len(trackNames))
	for i, name := range trackNames {
		options[i] = trackOption{
			name:        name,
			description: trackDescriptions[name],
			enabled:     on[name],
			collapsed:   fold[name] || name == "ted", // TED defaults to collapsed
		}
	}
	return TrackSelectModel{Options: options}
}

func (m TrackSelectModel) Init() tea.Cmd {
	return nil
}

func (m TrackSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Aborted = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Options)-1 {
				m.Cursor++
			}
		case " ":
			m.Options[m.Cursor].enabled = !m.Options[m.Cursor].enabled
		case "c":
			m.Options[m.Cursor].collapsed = !m.Options[m.Cursor].collapsed
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m TrackSelectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Tracks"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  c collapse  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		check := "[ ]"
		if opt.enabled {
			check = "[x]"
		}

		mode := ""
		if opt.enabled && opt.collapsed {
			mode = listDimStyle.Render("  (collapsed)")
		}

		line := fmt.Sprintf("%s%s %-11s %s%s", cursor, check, opt.name,
			listDimStyle.Render(opt.description), mode)

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if opt.enabled {
			b.WriteString(listNormalStyle.Render(line))
		} else {
			b.WriteString(listDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Selection returns the enabled track names and the subset to collapse, in
// display order.
func (m TrackSelectModel) Selection() (tracks, collapse []string) {
	for _, opt := range m.Options {
		if !opt.enabled {
			continue
		}
		tracks = append(tracks, opt.name)
		if opt.collapsed {
			collapse = append(collapse, opt.name)
		}
	}
	return tracks, collapse
}

// runTrackSelection shows the interactive track picker and returns the
// chosen tracks. Quitting without confirming aborts the command.
func runTrackSelection(enabled, collapsed []string) ([]string, []string, error) {
	model := NewTrackSelectModel(enabled, collapsed)
	result, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "running track selection")
	}

	final, ok := result.(TrackSelectModel)
	if !ok || !final.Confirmed {
		return nil, nil, errors.New(errors.ErrCodeInvalidTrack, "track selection aborted")
	}
	tracks, collapse := final.Selection()
	if len(tracks) == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidTrack, "no tracks selected")
	}
	return tracks, collapse, nil
}
