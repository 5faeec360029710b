// pkg/split/estimate.go
package split

import (
	"fmt"

	"github.com/Juniorduc44/chunks/pkg/chunks"
)

// Estimate previews the chunk count for a source of totalSize bytes without
// performing any split. It uses the same arithmetic as Policy.Plan, so the
// estimate matches the real chunk count — except for paged sources under a
// size-based policy, whose page heuristic is inherently approximate.
func Estimate(totalSize int64, pol Policy) (int, string) {
	plan := pol.Plan(totalSize)
	if !pol.SizeBased() {
		return plan.ChunkCount, fmt.Sprintf("%d parts (requested)", pol.Parts())
	}
	return plan.ChunkCount, fmt.Sprintf("~%s each", chunks.FormatSize(uint64(pol.ChunkBytes())))
}
