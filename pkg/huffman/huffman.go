// Package huffman implements static Huffman coding over bytes.
//
// Encoding counts symbol frequencies, builds a tree with a min-heap, derives
// a prefix-free code per symbol and packs the codes MSB-first into bytes.
// The code table and the padding count of the final byte are persisted
// separately. Decoding never needs the original tree: it rebuilds one from
// the code table.
package huffman

import (
	"fmt"
	"io"
	"strings"
)

// Encoded holds everything produced by one Encode call.
type Encoded struct {
	Freq    FrequencyTable
	Codes   CodeMap
	Packed  []byte
	Padding int
}

// Encode runs the full pipeline over data.
func Encode(data []byte) (*Encoded, error) {
	ft := CountFrequencies(data)
	root, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}
	codes := GenerateCodes(root)
	packed, padding, err := Pack(data, codes)
	if err != nil {
		return nil, err
	}
	return &Encoded{Freq: ft, Codes: codes, Packed: packed, Padding: padding}, nil
}

// Decode rebuilds a tree from codes and unpacks packed with it.
func Decode(codes CodeMap, packed []byte, padding int) ([]byte, error) {
	root, err := RebuildTree(codes)
	if err != nil {
		return nil, err
	}
	return Unpack(packed, padding, root)
}

// PrintTree writes an indented view of the tree, left branch first.
func PrintTree(w io.Writer, root *Node) error {
	if root == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	type item struct {
		n     *Node
		depth int
		edge  string
	}
	stack := []item{{n: root, edge: "*"}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		indent := strings.Repeat("    ", it.depth)
		var err error
		if it.n.IsLeaf() {
			_, err = fmt.Fprintf(w, "%s%s-- %q (%d)\n", indent, it.edge, it.n.Symbol, it.n.Symbol)
		} else {
			_, err = fmt.Fprintf(w, "%s%s--<\n", indent, it.edge)
		}
		if err != nil {
			return err
		}
		if it.n.Right != nil {
			stack = append(stack, item{n: it.n.Right, depth: it.depth + 1, edge: "1"})
		}
		if it.n.Left != nil {
			stack = append(stack, item{n: it.n.Left, depth: it.depth + 1, edge: "0"})
		}
	}
	return nil
}
