package errors

import "testing"

func TestValidateAccession(t *testing.T) {
	valid := []string{"P69905", "Q9Y6K9", "O15552", "A0A024R161", "p69905"}
	for _, acc := range valid {
		if err := ValidateAccession(acc); err != nil {
			t.Errorf("ValidateAccession(%q) unexpected error: %v", acc, err)
		}
	}

	invalid := []string{
		"",
		"P69905X9999",  // too long
		"1ABC",         // bad leading char
		"P699",         // too short
		"P69905/../..", // traversal junk
		"hello world",
	}
	for _, acc := range invalid {
		err := ValidateAccession(acc)
		if err == nil {
			t.Errorf("ValidateAccession(%q) expected error", acc)
			continue
		}
		if !Is(err, ErrCodeInvalidAccession) {
			t.Errorf("ValidateAccession(%q) expected INVALID_ACCESSION, got %v", acc, err)
		}
	}
}

func TestValidateOutputPath(t *testing.T) {
	if err := ValidateOutputPath("out/figure.svg"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateOutputPath(""); err == nil {
		t.Error("empty path should be rejected")
	}
	if err := ValidateOutputPath("../../etc/passwd"); err == nil {
		t.Error("path traversal should be rejected")
	}
	if err := ValidateOutputPath("out\x00.svg"); err == nil {
		t.Error("null byte should be rejected")
	}
}

func TestValidateURL(t *testing.T) {
	if err := ValidateURL("https://www.ebi.ac.uk/pdbe/graph-api"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateURL("ftp://example.com"); err == nil {
		t.Error("non-http scheme should be rejected")
	}
	if err := ValidateURL(""); err == nil {
		t.Error("empty URL should be rejected")
	}
}
