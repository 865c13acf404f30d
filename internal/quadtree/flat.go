package quadtree

import (
	"encoding/binary"
	"fmt"
)

const (
	// FieldsPerRecord is the number of integers emitted per visible node:
	// x, y, width, height, r, g, b.
	FieldsPerRecord = 7

	// RecordSize is the encoded size of one record in bytes.
	RecordSize = FieldsPerRecord * 4
)

// Flat returns the visible nodes at depth as a flat sequence of
// FieldsPerRecord integers per node, in traversal order.
func (t *Tree) Flat(depth int) ([]int, error) {
	var out []int
	err := t.Visit(depth, func(n *Node) {
		c := n.Stats.Color
		out = append(out,
			n.Box.X, n.Box.Y, n.Box.W, n.Box.H,
			int(c.R), int(c.G), int(c.B),
		)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarshalFlat encodes Flat(depth) with every field as a little-endian int32.
func (t *Tree) MarshalFlat(depth int) ([]byte, error) {
	flat, err := t.Flat(depth)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, len(flat)*4)
	for _, v := range flat {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(v)))
	}
	return buf, nil
}

// UnmarshalFlat decodes the output of MarshalFlat.
func UnmarshalFlat(b []byte) ([]int, error) {
	if len(b)%RecordSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrBadRecord, len(b))
	}

	out := make([]int, 0, len(b)/4)
	for i := 0; i < len(b); i += 4 {
		out = append(out, int(int32(binary.LittleEndian.Uint32(b[i:]))))
	}
	return out, nil
}
