package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/matzehuels/protviz/pkg/annotation"
	"github.com/matzehuels/protviz/pkg/cache"
	"github.com/matzehuels/protviz/pkg/errors"
	"github.com/matzehuels/protviz/pkg/fetch"
	"github.com/matzehuels/protviz/pkg/fetch/interpro"
	"github.com/matzehuels/protviz/pkg/fetch/pdbe"
	"github.com/matzehuels/protviz/pkg/fetch/ted"
	"github.com/matzehuels/protviz/pkg/fetch/uniprot"
	"github.com/matzehuels/protviz/pkg/layout"
	"github.com/matzehuels/protviz/pkg/track"
)

// cacheOptions selects the cache backend shared by all data sources.
type cacheOptions struct {
	noCache   bool
	cacheDir  string // file backend directory; empty means the default
	redisAddr string // non-empty selects the Redis backend
}

// newBackend creates the cache backend for the given options.
func newBackend(ctx context.Context, opts cacheOptions) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redisAddr != "":
		c, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connecting to redis at %s", opts.redisAddr)
		}
		return c, nil
	default:
		c, err := cache.NewFileCache(opts.cacheDir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "opening file cache")
		}
		return c, nil
	}
}

// sources bundles the annotation data-source clients over one cache backend.
type sources struct {
	backend  cache.Cache
	uniprot  *uniprot.Client
	pdbe     *pdbe.Client
	interpro *interpro.Client
	ted      *ted.Client
}

func newSources(backend cache.Cache) *sources {
	return &sources{
		backend:  backend,
		uniprot:  uniprot.NewClient(backend, fetch.DefaultTTL),
		pdbe:     pdbe.NewClient(backend, fetch.DefaultTTL),
		interpro: interpro.NewClient(backend, fetch.DefaultTTL),
		ted:      ted.NewClient(backend, fetch.DefaultTTL),
	}
}

func (s *sources) Close() error { return s.backend.Close() }

// Track names accepted by --tracks and the serve endpoint.
var trackNames = []string{"pdb", "ligand", "pfam", "cathgene3d", "ted"}

var defaultTracks = []string{"pdb", "ligand", "pfam", "ted"}

// trackSpec is one requested annotation track with its display mode.
type trackSpec struct {
	name string
	mode layout.Mode
}

// parseTrackSpecs resolves the requested track names and the set of tracks
// to collapse into ordered specs. Empty names means the default selection.
func parseTrackSpecs(names, collapse []string) ([]trackSpec, error) {
	if len(names) == 0 {
		names = defaultTracks
	}

	collapsed := make(map[string]bool, len(collapse))
	for _, c := range collapse {
		collapsed[strings.ToLower(strings.TrimSpace(c))] = true
	}

	specs := make([]trackSpec, 0, len(names))
	seen := make(map[string]bool)
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if !validTrackName(name) {
			return nil, errors.New(errors.ErrCodeInvalidTrack,
				"unknown track %q (available: %s)", raw, strings.Join(trackNames, ", "))
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		mode := layout.ModeFull
		if name == "ted" {
			mode = layout.ModeCollapse
		}
		if collapsed[name] {
			mode = layout.ModeCollapse
		}
		specs = append(specs, trackSpec{name: name, mode: mode})
	}
	if len(specs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTrack, "no tracks selected")
	}
	return specs, nil
}

func validTrackName(name string) bool {
	for _, n := range trackNames {
		if n == name {
			return true
		}
	}
	return false
}

// parseView parses a view window flag of the form "start:end" or
// "start-end". An empty string means the full sequence (nil).
func parseView(s string) (*annotation.ViewWindow, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	sep := ":"
	if !strings.Contains(s, sep) {
		sep = "-"
	}
	lo, hi, ok := strings.Cut(s, sep)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidWindow,
			"view must be start:end, got %q", s)
	}

	var start, end int
	if _, err := fmt.Sscanf(strings.TrimSpace(lo), "%d", &start); err != nil {
		return nil, errors.New(errors.ErrCodeInvalidWindow, "invalid view start %q", lo)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(hi), "%d", &end); err != nil {
		return nil, errors.New(errors.ErrCodeInvalidWindow, "invalid view end %q", hi)
	}
	return &annotation.ViewWindow{Start: start, End: end}, nil
}

// buildStack fetches the protein and the selected annotation data and
// assembles a stack, axis on top, custom tracks at the bottom.
func buildStack(ctx context.Context, ds *sources, accession string, specs []trackSpec, custom []*track.Track, refresh bool) (*track.Stack, error) {
	logger := loggerFromContext(ctx)

	protein, err := ds.uniprot.FetchProtein(ctx, accession, refresh)
	if err != nil {
		if stderrors.Is(err, fetch.ErrNotFound) {
			return nil, errors.Wrap(errors.ErrCodeProteinNotFound, err,
				"protein %s not found in UniProt", accession)
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetching protein %s", accession)
	}
	logger.Debug("resolved protein", "accession", accession, "length", protein.SequenceLength)

	tracks := []*track.Track{track.NewAxisTrack()}
	for _, spec := range specs {
		t, err := fetchTrack(ctx, ds, accession, spec, refresh)
		if err != nil {
			// A failing data source degrades to an empty track showing its
			// placeholder message rather than killing the whole figure.
			logger.Warn("no data for track", "track", spec.name, "err", errors.UserMessage(err))
			t = emptyTrack(spec)
		}
		logger.Debug("built track", "track", spec.name, "entries", len(t.Entries))
		tracks = append(tracks, t)
	}
	tracks = append(tracks, custom...)

	return &track.Stack{
		Protein:        protein.Accession,
		SequenceLength: protein.SequenceLength,
		Tracks:         tracks,
	}, nil
}

// emptyTrack builds a track of the requested kind with no entries, so the
// figure still shows the row with its "no data" placeholder.
func emptyTrack(spec trackSpec) *track.Track {
	switch spec.name {
	case "pdb":
		return track.NewPDBTrack(nil, spec.mode)
	case "ligand":
		return track.NewLigandTrack(nil, spec.mode)
	case "pfam":
		return track.NewDomainTrack(nil, "Pfam", spec.mode)
	case "cathgene3d":
		return track.NewDomainTrack(nil, "CATH-Gene3D", spec.mode)
	default:
		return track.NewTEDTrack(nil, spec.mode)
	}
}

func fetchTrack(ctx context.Context, ds *sources, accession string, spec trackSpec, refresh bool) (*track.Track, error) {
	wrap := func(err error) error {
		return errors.Wrap(errors.ErrCodeNetwork, err, "fetching %s data for %s", spec.name, accession)
	}

	switch spec.name {
	case "pdb":
		coverage, err := ds.pdbe.FetchCoverage(ctx, accession, refresh)
		if err != nil {
			return nil, wrap(err)
		}
		return track.NewPDBTrack(coverage, spec.mode), nil
	case "ligand":
		ligands, err := ds.pdbe.FetchLigandSites(ctx, accession, refresh)
		if err != nil {
			return nil, wrap(err)
		}
		return track.NewLigandTrack(ligands, spec.mode), nil
	case "pfam":
		entries, err := ds.interpro.FetchAnnotations(ctx, accession, interpro.MemberPfam, refresh)
		if err != nil {
			return nil, wrap(err)
		}
		return track.NewDomainTrack(entries, "Pfam", spec.mode), nil
	case "cathgene3d":
		entries, err := ds.interpro.FetchAnnotations(ctx, accession, interpro.MemberCATHGene3D, refresh)
		if err != nil {
			return nil, wrap(err)
		}
		return track.NewDomainTrack(entries, "CATH-Gene3D", spec.mode), nil
	case "ted":
		domains, err := ds.ted.FetchDomains(ctx, accession, refresh)
		if err != nil {
			return nil, wrap(err)
		}
		return track.NewTEDTrack(domains, spec.mode), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidTrack, "unknown track %q", spec.name)
	}
}
