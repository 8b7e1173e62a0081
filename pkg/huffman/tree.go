package huffman

import "sort"

// FrequencyTable maps every symbol seen in the input to its count (>= 1).
type FrequencyTable map[byte]uint64

// CountFrequencies counts each byte value in data.
// Zero-length input yields an empty table.
func CountFrequencies(data []byte) FrequencyTable {
	var counts [256]uint64
	for _, b := range data {
		counts[b]++
	}
	ft := make(FrequencyTable)
	for sym, c := range counts {
		if c > 0 {
			ft[byte(sym)] = c
		}
	}
	return ft
}

// Symbols returns the table's symbols in ascending order.
func (ft FrequencyTable) Symbols() []byte {
	syms := make([]byte, 0, len(ft))
	for sym, c := range ft {
		if c > 0 {
			syms = append(syms, sym)
		}
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

/*** ---------- 트리 구성 ---------- ***/

// BuildTree builds a Huffman tree by repeatedly merging the two lightest
// nodes. An empty table yields (nil, ErrEmptyInput).
//
// With a single distinct symbol the root is an internal node whose left
// child is the sole leaf and whose right child is nil, so the symbol still
// gets the one-bit code "0".
func BuildTree(ft FrequencyTable) (*Node, error) {
	syms := ft.Symbols()
	if len(syms) == 0 {
		return nil, ErrEmptyInput
	}

	nodes := make([]*Node, len(syms))
	for i, sym := range syms { // 심볼 오름차순으로 leaf 생성
		nodes[i] = newLeaf(sym, ft[sym], i)
	}
	seq := len(nodes)

	if len(nodes) == 1 {
		return newInternal(nodes[0], nil, seq), nil
	}

	h := BuildHeap(nodes)
	for h.Len() > 1 {
		a := h.ExtractMin()
		b := h.ExtractMin()
		h.Insert(newInternal(a, b, seq)) // a=left, b=right
		seq++
	}
	return h.ExtractMin(), nil
}
