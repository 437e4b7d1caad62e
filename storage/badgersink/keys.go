package badgersink

import (
	"fmt"

	"github.com/tutoris/corpora/core"
)

// Key prefix for chunk units.
const chunkPrefix = "chunk"

// makeChunkKey generates the key for one chunk unit.
// Format: chunk:<source_id>-<index>
func makeChunkKey(chunk *core.Chunk) []byte {
	return []byte(fmt.Sprintf("%s:%s", chunkPrefix, chunk.Key()))
}

// makeSourcePrefix generates the key prefix shared by every chunk of a
// source digest.
func makeSourcePrefix(source core.Digest) []byte {
	return []byte(fmt.Sprintf("%s:%s-", chunkPrefix, source))
}

// makeScanPrefix generates the prefix covering all chunk units.
func makeScanPrefix() []byte {
	return []byte(chunkPrefix + ":")
}
