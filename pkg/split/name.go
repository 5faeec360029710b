// pkg/split/name.go
package split

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ChunkName derives the output file name for chunk index of totalDeclared
// from the original file name: {stem}_part_{NN}-of-{MM}{ext}, with NN and MM
// zero-padded to two digits (values >= 100 render unpadded).
//
// A totalDeclared of 0 means the total was not predetermined when the chunk
// was named (paged sources under a size-based policy); the total field then
// renders as the literal placeholder "??".
//
// Names are distinct across indices within one run. Repeated runs into the
// same directory reuse the same names and silently overwrite; known
// limitation, not an error.
func ChunkName(original string, index, totalDeclared int) string {
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	total := "??"
	if totalDeclared > 0 {
		total = fmt.Sprintf("%02d", totalDeclared)
	}
	return fmt.Sprintf("%s_part_%02d-of-%s%s", stem, index, total, ext)
}
