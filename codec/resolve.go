package codec

import (
	"strings"

	"github.com/haukened/dnswire/domain"
)

// maxPointerDepth bounds how many compression pointers ResolveName will
// chase for a single name. Legitimate messages rarely chain more than a
// handful; anything deeper is treated as hostile.
const maxPointerDepth = 16

// ResolveName decodes the name at off and follows its compression
// pointers until a root terminator, returning the dot-separated label
// string. Each hop re-enters DecodeName at the pointer's absolute offset.
//
// A depth budget and a visited-offset set guard against pointer cycles;
// both failure modes return ErrPointerLoop. Reserved elements have no
// textual form and fail with ErrInvalidDomainName.
func ResolveName(buf []byte, off int) (string, error) {
	var labels []string
	visited := make(map[int]struct{})

	for depth := 0; ; depth++ {
		if depth >= maxPointerDepth {
			return "", ErrPointerLoop
		}
		if _, seen := visited[off]; seen {
			return "", ErrPointerLoop
		}
		visited[off] = struct{}{}

		name, _, err := DecodeName(buf, off)
		if err != nil {
			return "", err
		}

		next := -1
		for _, e := range name {
			switch e.Kind {
			case domain.KindLabel:
				labels = append(labels, string(e.Data))
			case domain.KindPointer:
				next = int(e.Pointer)
			case domain.KindReserved:
				return "", ErrInvalidDomainName
			}
		}

		if next < 0 {
			return strings.Join(labels, "."), nil
		}
		off = next
	}
}
