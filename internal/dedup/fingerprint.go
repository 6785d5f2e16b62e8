// Package dedup implements the duplicate detection pipeline: fingerprinting
// cell values, tallying occurrences per column, building a positional report,
// and producing a deduplicated table that keeps the last occurrence.
package dedup

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/colefleming/dupless/internal/types"
)

// Sum is a fixed-size digest of a cell's canonical string form, used as an
// equality proxy: two cells share a Sum iff their string forms are
// byte-identical (modulo md5 collisions, which we accept).
type Sum [md5.Size]byte

// Hex returns the digest as a lowercase hex string.
func (s Sum) Hex() string { return hex.EncodeToString(s[:]) }

// Fingerprint hashes the UTF-8 bytes of the cell's canonical string form.
// Pure and deterministic across runs; no normalization is applied, so "1"
// and "1.0" fingerprint differently.
func Fingerprint(c types.Cell) Sum {
	return md5.Sum([]byte(c.String()))
}
