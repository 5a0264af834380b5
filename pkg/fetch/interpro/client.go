// Package interpro provides a client for the InterPro API, used for domain
// annotations projected from member databases such as Pfam and CATH-Gene3D.
package interpro

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/matzehuels/protviz/pkg/cache"
	"github.com/matzehuels/protviz/pkg/fetch"
)

// Member database keys recognised by the InterPro API.
const (
	MemberPfam       = "pfam"
	MemberCATHGene3D = "cathgene3d"
)

// Entry is one member-database signature projected onto a protein. The
// locations come from the parent InterPro entry, so several signatures of
// the same entry share identical locations.
type Entry struct {
	Accession         string          `json:"accession"`          // Member db id (e.g., "PF00042")
	Name              string          `json:"name"`               // Parent InterPro entry name
	Description       string          `json:"description"`        // Signature description from the member db
	Type              string          `json:"type"`               // Entry type (e.g., "domain", "family")
	InterProAccession string          `json:"interpro_accession"` // Parent InterPro entry (e.g., "IPR000971")
	Locations         []fetch.Segment `json:"locations"`          // Fragments on the UniProt sequence
}

// TypeChar returns the one-letter code used to label an entry type in track
// rows, or "U" for types without a code.
func TypeChar(entryType string) string {
	switch strings.ToLower(entryType) {
	case "domain":
		return "D"
	case "family":
		return "F"
	case "homologous_superfamily":
		return "H"
	case "repeat":
		return "R"
	case "site":
		return "S"
	case "ptm":
		return "P"
	default:
		return "U"
	}
}

// Client provides access to the InterPro API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*fetch.Client
	baseURL string
}

// NewClient creates an InterPro client with the given cache backend.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  fetch.NewClient(backend, "interpro", cacheTTL, nil),
		baseURL: "https://www.ebi.ac.uk/interpro/api/entry/interpro",
	}
}

// FetchAnnotations retrieves the signatures of memberDB (see the Member*
// constants) for a UniProt accession, sorted by signature accession.
//
// Proteins unknown to InterPro yield an empty slice.
func (c *Client) FetchAnnotations(ctx context.Context, accession, memberDB string, refresh bool) ([]Entry, error) {
	var entries []Entry
	key := memberDB + ":" + accession
	err := c.Cached(ctx, key, refresh, &entries, func() error {
		return c.fetch(ctx, accession, memberDB, &entries)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) fetch(ctx context.Context, accession, memberDB string, out *[]Entry) error {
	var data apiResponse
	url := fmt.Sprintf("%s/protein/uniprot/%s", c.baseURL, accession)
	if err := c.GetJSON(ctx, url, &data); err != nil {
		if errors.Is(err, fetch.ErrNotFound) {
			*out = []Entry{}
			return nil
		}
		return err
	}

	entries := make([]Entry, 0)
	for _, result := range data.Results {
		signatures, ok := result.Metadata.MemberDatabases[memberDB]
		if !ok {
			continue
		}

		var locations []fetch.Segment
		for _, protein := range result.Proteins {
			if !strings.EqualFold(protein.Accession, accession) {
				continue
			}
			for _, loc := range protein.EntryProteinLocations {
				for _, frag := range loc.Fragments {
					locations = append(locations, fetch.Segment{Start: frag.Start, End: frag.End})
				}
			}
		}

		for id, description := range signatures {
			entries = append(entries, Entry{
				Accession:         id,
				Name:              result.Metadata.Name,
				Description:       description,
				Type:              result.Metadata.Type,
				InterProAccession: result.Metadata.Accession,
				Locations:         locations,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Accession < entries[j].Accession
	})
	*out = entries
	return nil
}

type apiResponse struct {
	Results []struct {
		Metadata struct {
			Accession       string                       `json:"accession"`
			Name            string                       `json:"name"`
			Type            string                       `json:"type"`
			MemberDatabases map[string]map[string]string `json:"member_databases"`
		} `json:"metadata"`
		Proteins []struct {
			Accession             string `json:"accession"`
			EntryProteinLocations []struct {
				Fragments []struct {
					Start int `json:"start"`
					End   int `json:"end"`
				} `json:"fragments"`
			} `json:"entry_protein_locations"`
		} `json:"proteins"`
	} `json:"results"`
}
