package huffman

const defaultHeapCap = 16

/*** ---------- MinHeap (무게 기준, 동률은 생성 순서) ---------- ***/

// MinHeap orders nodes by weight. Nodes of equal weight come out in the
// order they were created, which keeps code assignment deterministic.
type MinHeap struct {
	arr  []*Node
	size int
}

// NewMinHeap returns an empty heap with room for capacity nodes.
// The backing array doubles when it fills up.
func NewMinHeap(capacity int) *MinHeap {
	if capacity < 1 {
		capacity = defaultHeapCap
	}
	return &MinHeap{arr: make([]*Node, capacity)}
}

// BuildHeap heapifies nodes in O(n), from the last parent down to the root.
// The slice is used as backing storage.
func BuildHeap(nodes []*Node) *MinHeap {
	h := &MinHeap{arr: nodes, size: len(nodes)}
	for i := h.size/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h
}

// Len returns the number of queued nodes.
func (h *MinHeap) Len() int { return h.size }

func less(a, b *Node) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.seq < b.seq
}

// Insert adds n, growing the backing array when it is full.
func (h *MinHeap) Insert(n *Node) {
	if h.size == len(h.arr) {
		newCap := len(h.arr) * 2
		if newCap == 0 {
			newCap = defaultHeapCap
		}
		grown := make([]*Node, newCap)
		copy(grown, h.arr[:h.size])
		h.arr = grown
	}
	h.arr[h.size] = n
	h.up(h.size)
	h.size++
}

// ExtractMin removes and returns the lightest node, or nil when empty.
func (h *MinHeap) ExtractMin() *Node {
	if h.size == 0 {
		return nil
	}
	out := h.arr[0]
	h.size--
	h.arr[0] = h.arr[h.size]
	h.arr[h.size] = nil
	if h.size > 0 {
		h.down(0)
	}
	return out
}

func (h *MinHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !less(h.arr[i], h.arr[parent]) {
			return
		}
		h.arr[parent], h.arr[i] = h.arr[i], h.arr[parent]
		i = parent
	}
}

func (h *MinHeap) down(i int) {
	for {
		smallest := i
		l, r := 2*i+1, 2*i+2
		if l < h.size && less(h.arr[l], h.arr[smallest]) {
			smallest = l
		}
		if r < h.size && less(h.arr[r], h.arr[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.arr[i], h.arr[smallest] = h.arr[smallest], h.arr[i]
		i = smallest
	}
}
