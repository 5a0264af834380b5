// Package fetch provides the shared HTTP client used by the annotation
// data-source clients (UniProt, PDBe, InterPro, TED).
//
// Each data source lives in its own subpackage and embeds [Client], which
// handles caching, retries with exponential backoff, and JSON decoding.
// Responses are cached under a per-source key prefix so repeated renders of
// the same protein do not hit the remote APIs.
package fetch
