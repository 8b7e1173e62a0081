package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

/*** ---------- MSB-first 비트 패킹 ---------- ***/

type chunk struct {
	bits uint64
	n    uint8
}

// compile turns each '0'/'1' code into chunks of at most 64 bits, ready
// for bitio.Writer.WriteBits.
func compile(cm CodeMap) ([256][]chunk, [256]bool) {
	var table [256][]chunk
	var known [256]bool
	for sym, code := range cm {
		var cs []chunk
		var c chunk
		for i := 0; i < len(code); i++ {
			c.bits <<= 1
			if code[i] == '1' {
				c.bits |= 1
			}
			c.n++
			if c.n == 64 {
				cs = append(cs, c)
				c = chunk{}
			}
		}
		if c.n > 0 {
			cs = append(cs, c)
		}
		table[sym] = cs
		known[sym] = true
	}
	return table, known
}

// PackTo writes the codes of data to w, most significant bit first, and
// zero-fills the final byte. It returns how many bits of the final byte
// carry data: 1..7, or 8 when the bit count is a multiple of 8.
// Full bytes reach w as soon as 8 bits have accumulated.
func PackTo(w io.Writer, data []byte, cm CodeMap) (int, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	table, known := compile(cm)
	bw := bitio.NewWriter(w)
	var nbits uint64
	for i, b := range data {
		if !known[b] {
			return 0, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrUnknownSymbol, b, i)
		}
		for _, c := range table[b] {
			if err := bw.WriteBits(c.bits, c.n); err != nil {
				return 0, fmt.Errorf("pack: %w", err)
			}
			nbits += uint64(c.n)
		}
	}
	if err := bw.Close(); err != nil { // 마지막 바이트 0 패딩
		return 0, fmt.Errorf("pack: %w", err)
	}
	padding := int(nbits % 8)
	if padding == 0 {
		padding = 8
	}
	return padding, nil
}

// Pack is PackTo into memory.
func Pack(data []byte, cm CodeMap) ([]byte, int, error) {
	var buf bytes.Buffer
	buf.Grow(len(data) / 2)
	padding, err := PackTo(&buf, data, cm)
	if err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), padding, nil
}

/*** ---------- 디코딩 ---------- ***/

// Unpack walks root bit by bit over packed, emitting a symbol at every leaf
// and restarting from the root. All 8 bits of every byte are consumed
// except in the last byte, where only the first padding bits are.
//
// A bit that leads to a missing child, or bits that end in the middle of a
// code, yield ErrCorruptStream. Bits past padding are ignored; see
// CheckPadding.
func Unpack(packed []byte, padding int, root *Node) ([]byte, error) {
	if err := ValidPadding(padding); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no tree", ErrCorruptStream)
	}
	out := make([]byte, 0, len(packed)*2)
	if len(packed) == 0 {
		return out, nil
	}

	total := uint64(len(packed)-1)*8 + uint64(padding)
	br := bitio.NewReader(bytes.NewReader(packed))
	cur := root
	for pos := uint64(0); pos < total; pos++ {
		bit, err := br.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("unpack bit %d: %w", pos, err)
		}
		if bit {
			cur = cur.Right
		} else {
			cur = cur.Left
		}
		if cur == nil {
			return nil, fmt.Errorf("%w: dead end at bit %d (unpacked=%d bytes)", ErrCorruptStream, pos, len(out))
		}
		if cur.IsLeaf() {
			out = append(out, cur.Symbol)
			cur = root
		}
	}
	if cur != root {
		return nil, fmt.Errorf("%w: stream ends inside a code (unpacked=%d bytes)", ErrCorruptStream, len(out))
	}
	return out, nil
}

// CheckPadding reports ErrCorruptStream when the bits of the last byte
// beyond padding are not zero. Unpack never reads them, so callers may
// choose to only warn.
func CheckPadding(packed []byte, padding int) error {
	if err := ValidPadding(padding); err != nil {
		return err
	}
	if len(packed) == 0 || padding == 8 {
		return nil
	}
	last := packed[len(packed)-1]
	if mask := byte(0xFF) >> uint(padding); last&mask != 0 {
		return fmt.Errorf("%w: nonzero trailing bits 0x%02x in last byte", ErrCorruptStream, last&mask)
	}
	return nil
}
