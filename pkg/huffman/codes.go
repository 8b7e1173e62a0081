package huffman

import "sort"

// CodeMap maps a symbol to its code, a string of '0' and '1'.
type CodeMap map[byte]string

// Symbols returns the mapped symbols in ascending order.
func (cm CodeMap) Symbols() []byte {
	syms := make([]byte, 0, len(cm))
	for sym := range cm {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

type walkItem struct {
	n      *Node
	prefix []byte
}

// GenerateCodes walks the tree from root and records, for every leaf, the
// path taken to reach it ('0' = left, '1' = right).
// The walk uses an explicit stack, so skewed trees cannot overflow the
// goroutine stack.
func GenerateCodes(root *Node) CodeMap {
	codes := make(CodeMap)
	if root == nil {
		return codes
	}
	stack := []walkItem{{n: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.n.IsLeaf() {
			if len(it.prefix) == 0 {
				// root 가 곧 leaf 인 경우
				codes[it.n.Symbol] = "0"
			} else {
				codes[it.n.Symbol] = string(it.prefix)
			}
			continue
		}
		if it.n.Right != nil {
			stack = append(stack, walkItem{n: it.n.Right, prefix: extend(it.prefix, '1')})
		}
		if it.n.Left != nil {
			stack = append(stack, walkItem{n: it.n.Left, prefix: extend(it.prefix, '0')})
		}
	}
	return codes
}

// extend copies prefix so siblings never share a backing array.
func extend(prefix []byte, bit byte) []byte {
	out := make([]byte, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = bit
	return out
}

// AverageLength returns the frequency-weighted mean code length in bits.
func (cm CodeMap) AverageLength(ft FrequencyTable) float64 {
	var bits, total uint64
	for sym, c := range ft {
		bits += c * uint64(len(cm[sym]))
		total += c
	}
	if total == 0 {
		return 0
	}
	return float64(bits) / float64(total)
}
