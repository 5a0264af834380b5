// Package pdbe provides a client for the PDBe Graph API, used for structure
// coverage and ligand binding-site annotations.
package pdbe

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/matzehuels/protviz/pkg/cache"
	"github.com/matzehuels/protviz/pkg/fetch"
)

// Coverage describes the region of a UniProt sequence covered by one
// experimental PDB structure.
type Coverage struct {
	PDBID string        `json:"pdb_id"` // Four-character PDB identifier (e.g., "1a3n")
	Span  fetch.Segment `json:"span"`   // Covered residue range on the UniProt sequence
}

// LigandInteraction groups the binding-site residues a ligand contacts
// across all structures of a protein.
type LigandInteraction struct {
	LigandID string          `json:"ligand_id"` // Chemical component identifier (e.g., "HEM")
	Sites    []fetch.Segment `json:"sites"`     // Interacting residue ranges, may overlap
}

// Client provides access to the PDBe Graph API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*fetch.Client
	baseURL string
}

// NewClient creates a PDBe client with the given cache backend.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  fetch.NewClient(backend, "pdbe", cacheTTL, nil),
		baseURL: "https://www.ebi.ac.uk/pdbe/graph-api",
	}
}

// FetchCoverage retrieves the best structural coverage for a UniProt
// accession, sorted by start position (then end, then PDB id).
//
// Returns an empty slice if the protein has no solved structures; the Graph
// API reports that case as 404, which is not an error here.
func (c *Client) FetchCoverage(ctx context.Context, accession string, refresh bool) ([]Coverage, error) {
	var coverage []Coverage
	err := c.Cached(ctx, "coverage:"+accession, refresh, &coverage, func() error {
		return c.fetchCoverage(ctx, accession, &coverage)
	})
	if err != nil {
		return nil, err
	}
	return coverage, nil
}

func (c *Client) fetchCoverage(ctx context.Context, accession string, out *[]Coverage) error {
	var data map[string][]struct {
		PDBID    string `json:"pdb_id"`
		UnpStart int    `json:"unp_start"`
		UnpEnd   int    `json:"unp_end"`
	}
	url := fmt.Sprintf("%s/mappings/best_structures/%s", c.baseURL, accession)
	if err := c.GetJSON(ctx, url, &data); err != nil {
		if errors.Is(err, fetch.ErrNotFound) {
			*out = []Coverage{}
			return nil
		}
		return err
	}

	coverage := make([]Coverage, 0)
	for _, entries := range data {
		for _, e := range entries {
			coverage = append(coverage, Coverage{
				PDBID: e.PDBID,
				Span:  fetch.Segment{Start: e.UnpStart, End: e.UnpEnd},
			})
		}
	}
	sort.Slice(coverage, func(i, j int) bool {
		a, b := coverage[i], coverage[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End < b.Span.End
		}
		return a.PDBID < b.PDBID
	})
	*out = coverage
	return nil
}

// FetchLigandSites retrieves ligand binding sites for a UniProt accession,
// one interaction per ligand, sorted by ligand id.
//
// Proteins without annotated ligand sites yield an empty slice.
func (c *Client) FetchLigandSites(ctx context.Context, accession string, refresh bool) ([]LigandInteraction, error) {
	var ligands []LigandInteraction
	err := c.Cached(ctx, "ligands:"+accession, refresh, &ligands, func() error {
		return c.fetchLigandSites(ctx, accession, &ligands)
	})
	if err != nil {
		return nil, err
	}
	return ligands, nil
}

func (c *Client) fetchLigandSites(ctx context.Context, accession string, out *[]LigandInteraction) error {
	var data map[string]struct {
		DataType string `json:"dataType"`
		Data     []struct {
			Accession string `json:"accession"`
			Residues  []struct {
				StartIndex int `json:"startIndex"`
				EndIndex   int `json:"endIndex"`
			} `json:"residues"`
		} `json:"data"`
	}
	url := fmt.Sprintf("%s/uniprot/ligand_sites/%s", c.baseURL, accession)
	if err := c.GetJSON(ctx, url, &data); err != nil {
		if errors.Is(err, fetch.ErrNotFound) {
			*out = []LigandInteraction{}
			return nil
		}
		return err
	}

	ligands := make([]LigandInteraction, 0)
	for _, entry := range data {
		if entry.DataType != "LIGAND BINDING SITES" {
			continue
		}
		for _, lig := range entry.Data {
			sites := make([]fetch.Segment, 0, len(lig.Residues))
			for _, r := range lig.Residues {
				sites = append(sites, fetch.Segment{Start: r.StartIndex, End: r.EndIndex})
			}
			ligands = append(ligands, LigandInteraction{LigandID: lig.Accession, Sites: sites})
		}
	}
	sort.Slice(ligands, func(i, j int) bool {
		return ligands[i].LigandID < ligands[j].LigandID
	})
	*out = ligands
	return nil
}
