package gl

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const digestDateFormat = "2006-01-02"

// Digest computes the content-addressed digest of a transaction's immutable
// facts. Two transactions with the same date, amount, description and
// owning account code share a digest.
func Digest(date time.Time, amount decimal.Decimal, description, accountCode string) string {
	canonical := date.Format(digestDateFormat) + "|" + amount.StringFixed(2) + "|" + description + "|" + accountCode
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// Batch tracks per-digest occurrence counts for one ingestion batch so that
// textually identical transactions still receive distinct identities.
type Batch struct {
	seen map[string]int
}

// NewBatch creates an empty Batch.
func NewBatch() *Batch {
	return &Batch{seen: make(map[string]int)}
}

// NextIdentity returns "<digest>_<n>" where n is the 1-based occurrence of
// the digest within this batch, in encounter order. Identities are stable
// across re-runs only when the batch is re-processed in the same row order;
// a reordered or partially overlapping file can reassign ordinals.
func (b *Batch) NextIdentity(digest string) string {
	b.seen[digest]++
	return fmt.Sprintf("%s_%d", digest, b.seen[digest])
}
