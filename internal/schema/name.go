package schema

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// outputExt is the extension of every output artifact
const outputExt = ".csv"

// OutputName derives the output file name for a group from its merged header
// and member count: "single_" for one-file groups, "combined_" otherwise,
// followed by a 16-character hex hash of the ordered header and the output
// extension. The name is a pure function of the header value, so a rerun that
// produces a byte-identical merged header overwrites the earlier artifact.
func OutputName(header Header, memberCount int) string {
	prefix := "single_"
	if memberCount > 1 {
		prefix = "combined_"
	}
	return fmt.Sprintf("%s%016x%s", prefix, hashHeader(header), outputExt)
}

// hashHeader computes an order-sensitive 64-bit hash of the header. Each name
// is length-prefixed so that column boundaries contribute to the hash:
// ["ab","c"] and ["a","bc"] hash differently.
func hashHeader(header Header) uint64 {
	digest := xxhash.New()
	var buf [binary.MaxVarintLen64]byte

	for _, name := range header {
		n := binary.PutUvarint(buf[:], uint64(len(name)))
		digest.Write(buf[:n])
		digest.WriteString(name)
	}

	return digest.Sum64()
}
