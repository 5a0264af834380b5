package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// uniprotAccessionRegex matches valid UniProtKB accession numbers
// (e.g. P69905, Q9Y6K9, A0A024R161) per the UniProt accession format.
var uniprotAccessionRegex = regexp.MustCompile(
	`^([OPQ][0-9][A-Z0-9]{3}[0-9]|[A-NR-Z][0-9]([A-Z][A-Z0-9]{2}[0-9]){1,2})$`)

// ValidateAccession validates a UniProt accession for safety and correctness.
// Accessions are embedded in API URLs and cache keys, so malformed input is
// rejected before any request is made.
func ValidateAccession(acc string) error {
	if acc == "" {
		return New(ErrCodeInvalidAccession, "accession cannot be empty")
	}

	if len(acc) > 10 {
		return New(ErrCodeInvalidAccession, "accession too long (max 10 characters)")
	}

	for _, r := range acc {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidAccession, "accession contains control characters")
		}
	}

	if !uniprotAccessionRegex.MatchString(strings.ToUpper(acc)) {
		return New(ErrCodeInvalidAccession, "invalid UniProt accession: %q", acc)
	}

	return nil
}

// ValidateOutputPath validates a file path used for figure output.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "output path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidConfig, "URL must use http or https scheme")
	}

	return nil
}
