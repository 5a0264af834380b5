// Package ted provides a client for the TED (The Encyclopedia of Domains)
// API, which annotates predicted structural domains on UniProt sequences.
package ted

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/protviz/pkg/cache"
	"github.com/matzehuels/protviz/pkg/fetch"
)

// Domain is one predicted structural domain on a UniProt sequence. TED
// domains can be discontinuous; Segments holds the parsed chopping.
type Domain struct {
	CATHLabel      string          `json:"cath_label"`      // CATH superfamily label, or "-" if unassigned
	ConsensusLevel string          `json:"consensus_level"` // Prediction confidence ("high", "medium", ...)
	Chopping       string          `json:"chopping"`        // Raw boundary string (e.g., "10-50_60-100")
	NumSegments    int             `json:"num_segments"`    // Segment count as reported by TED
	ResidueCount   int             `json:"nres_domain"`     // Total residues in the domain
	Segments       []fetch.Segment `json:"segments"`        // Parsed chopping, in upstream order
}

// ParseChopping parses a TED chopping string into segments. Choppings list
// residue ranges separated by underscores, e.g. "10-50_60-100".
func ParseChopping(chopping string) ([]fetch.Segment, error) {
	if strings.TrimSpace(chopping) == "" {
		return nil, nil
	}
	parts := strings.Split(chopping, "_")
	segments := make([]fetch.Segment, 0, len(parts))
	for _, part := range parts {
		lo, hi, ok := strings.Cut(part, "-")
		if !ok {
			return nil, fmt.Errorf("invalid chopping segment %q", part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid chopping segment %q", part)
		}
		end, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("invalid chopping segment %q", part)
		}
		segments = append(segments, fetch.Segment{Start: start, End: end})
	}
	return segments, nil
}

// Client provides access to the TED API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*fetch.Client
	baseURL string
}

// NewClient creates a TED client with the given cache backend.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  fetch.NewClient(backend, "ted", cacheTTL, nil),
		baseURL: "https://ted.cathdb.info/api/v1/uniprot",
	}
}

// FetchDomains retrieves the predicted domains for a UniProt accession, in
// the order TED reports them. Domains with unparseable choppings are
// skipped.
//
// Proteins unknown to TED yield an empty slice.
func (c *Client) FetchDomains(ctx context.Context, accession string, refresh bool) ([]Domain, error) {
	var domains []Domain
	err := c.Cached(ctx, accession, refresh, &domains, func() error {
		return c.fetch(ctx, accession, &domains)
	})
	if err != nil {
		return nil, err
	}
	return domains, nil
}

func (c *Client) fetch(ctx context.Context, accession string, out *[]Domain) error {
	var data struct {
		Data []struct {
			Chopping       string `json:"chopping"`
			CATHLabel      string `json:"cath_label"`
			ConsensusLevel string `json:"consensus_level"`
			NumSegments    int    `json:"num_segments"`
			NresDomain     int    `json:"nres_domain"`
		} `json:"data"`
	}
	url := fmt.Sprintf("%s/summary/%s", c.baseURL, accession)
	if err := c.GetJSON(ctx, url, &data); err != nil {
		if errors.Is(err, fetch.ErrNotFound) {
			*out = []Domain{}
			return nil
		}
		return err
	}

	domains := make([]Domain, 0, len(data.Data))
	for _, item := range data.Data {
		segments, err := ParseChopping(item.Chopping)
		if err != nil || len(segments) == 0 {
			continue
		}
		domains = append(domains, Domain{
			CATHLabel:      item.CATHLabel,
			ConsensusLevel: item.ConsensusLevel,
			Chopping:       item.Chopping,
			NumSegments:    item.NumSegments,
			ResidueCount:   item.NresDomain,
			Segments:       segments,
		})
	}
	*out = domains
	return nil
}
