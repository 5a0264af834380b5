// Package uniprot provides a client for the UniProtKB REST API, used to
// resolve a protein accession to its sequence length.
package uniprot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/protviz/pkg/cache"
	"github.com/matzehuels/protviz/pkg/fetch"
)

// Protein holds the subset of UniProtKB entry data needed for layout:
// the accession and the sequence length that defines the coordinate system
// every track is drawn against.
type Protein struct {
	Accession      string // UniProt accession (e.g., "P69905")
	Name           string // Recommended protein name (may be empty)
	SequenceLength int    // Number of residues, always > 0 in a valid entry
}

// Client provides access to the UniProtKB REST API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*fetch.Client
	baseURL string
}

// NewClient creates a UniProt client with the given cache backend.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  fetch.NewClient(backend, "uniprot", cacheTTL, nil),
		baseURL: "https://rest.uniprot.org/uniprotkb",
	}
}

// FetchProtein retrieves the entry for a UniProt accession.
//
// If refresh is true, the cache is bypassed and a fresh API call is made.
// Returns [fetch.ErrNotFound] if the accession does not exist.
func (c *Client) FetchProtein(ctx context.Context, accession string, refresh bool) (*Protein, error) {
	var p Protein
	err := c.Cached(ctx, accession, refresh, &p, func() error {
		return c.fetch(ctx, accession, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) fetch(ctx context.Context, accession string, p *Protein) error {
	var data apiResponse
	url := fmt.Sprintf("%s/%s", c.baseURL, accession)
	if err := c.GetJSON(ctx, url, &data); err != nil {
		if errors.Is(err, fetch.ErrNotFound) {
			return fmt.Errorf("%w: uniprot entry %s", err, accession)
		}
		return err
	}
	if data.Sequence.Length <= 0 {
		return fmt.Errorf("uniprot entry %s: missing sequence length", accession)
	}

	*p = Protein{
		Accession:      accession,
		Name:           data.ProteinDescription.RecommendedName.FullName.Value,
		SequenceLength: data.Sequence.Length,
	}
	return nil
}

type apiResponse struct {
	Sequence struct {
		Length int `json:"length"`
	} `json:"sequence"`
	ProteinDescription struct {
		RecommendedName struct {
			FullName struct {
				Value string `json:"value"`
			} `json:"fullName"`
		} `json:"recommendedName"`
	} `json:"proteinDescription"`
}
