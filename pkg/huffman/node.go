package huffman

// Node 는 허프만 트리의 노드예요.
// 리프는 Symbol 을 갖고 자식이 없고, 내부 노드는 Left/Right 를 가져요.
type Node struct {
	Symbol      byte
	Weight      uint64
	Left, Right *Node

	seq int // heap 동률 정렬용 생성 순서
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

func newLeaf(sym byte, weight uint64, seq int) *Node {
	return &Node{Symbol: sym, Weight: weight, seq: seq}
}

func newInternal(left, right *Node, seq int) *Node {
	w := left.Weight
	if right != nil {
		w += right.Weight
	}
	return &Node{Weight: w, Left: left, Right: right, seq: seq}
}
