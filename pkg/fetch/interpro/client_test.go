package interpro

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/protviz/pkg/cache"
	"github.com/matzehuels/protviz/pkg/fetch"
)

const summaryJSON = `{
	"results": [
		{
			"metadata": {
				"accession": "IPR000971",
				"name": "Globin",
				"type": "domain",
				"member_databases": {
					"pfam": {"PF00042": "Globin"},
					"cathgene3d": {"G3DSA:1.10.490.10": "Globin-like"}
				}
			},
			"proteins": [
				{
					"accession": "p69905",
					"entry_protein_locations": [
						{"fragments": [{"start": 27, "end": 137}]}
					]
				}
			]
		},
		{
			"metadata": {
				"accession": "IPR009050",
				"name": "Globin-like superfamily",
				"type": "homologous_superfamily",
				"member_databases": {}
			},
			"proteins": []
		}
	]
}`

func TestClient_FetchAnnotations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/protein/uniprot/P69905" {
			w.Write([]byte(summaryJSON))
		} else {
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(server.URL)

	entries, err := c.FetchAnnotations(context.Background(), "P69905", MemberPfam, true)
	if err != nil {
		t.Fatalf("FetchAnnotations failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 pfam entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Accession != "PF00042" {
		t.Errorf("unexpected accession: %s", e.Accession)
	}
	if e.InterProAccession != "IPR000971" {
		t.Errorf("unexpected parent entry: %s", e.InterProAccession)
	}
	if e.Type != "domain" {
		t.Errorf("unexpected type: %s", e.Type)
	}
	if len(e.Locations) != 1 || e.Locations[0] != (fetch.Segment{Start: 27, End: 137}) {
		t.Errorf("unexpected locations: %+v", e.Locations)
	}
}

func TestClient_FetchAnnotations_OtherMemberDB(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(summaryJSON))
	}))
	defer server.Close()

	c := testClient(server.URL)

	entries, err := c.FetchAnnotations(context.Background(), "P69905", MemberCATHGene3D, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Accession != "G3DSA:1.10.490.10" {
		t.Errorf("unexpected cathgene3d entries: %+v", entries)
	}
}

func TestClient_FetchAnnotations_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := testClient(server.URL)

	entries, err := c.FetchAnnotations(context.Background(), "A0A000AAAA", MemberPfam, true)
	if err != nil {
		t.Fatalf("expected empty result for 404, got error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestTypeChar(t *testing.T) {
	tests := []struct {
		entryType string
		want      string
	}{
		{"domain", "D"},
		{"family", "F"},
		{"homologous_superfamily", "H"},
		{"repeat", "R"},
		{"site", "S"},
		{"ptm", "P"},
		{"Domain", "D"},
		{"something_new", "U"},
		{"", "U"},
	}
	for _, tt := range tests {
		if got := TypeChar(tt.entryType); got != tt.want {
			t.Errorf("TypeChar(%q) = %q, want %q", tt.entryType, got, tt.want)
		}
	}
}

func testClient(serverURL string) *Client {
	return &Client{
		Client:  fetch.NewClient(cache.NewNullCache(), "interpro", time.Hour, nil),
		baseURL: serverURL,
	}
}
