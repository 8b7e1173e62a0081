package huffman

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

/*** ---------- 코드 테이블: "<symbol>\t<bits>\n" ---------- ***/

// WriteCodeTable writes one "<symbol>\t<bits>" line per symbol, in
// ascending symbol order.
func WriteCodeTable(w io.Writer, cm CodeMap) error {
	bw := bufio.NewWriter(w)
	for _, sym := range cm.Symbols() {
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", sym, cm[sym]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatCodeTable returns the WriteCodeTable form of cm as a string.
func FormatCodeTable(cm CodeMap) string {
	var buf bytes.Buffer
	_ = WriteCodeTable(&buf, cm) // bytes.Buffer 는 실패하지 않아요
	return buf.String()
}

// ReadCodeTable parses the WriteCodeTable form. Blank lines are skipped;
// any other record that is not a valid symbol/bitstring pair yields
// ErrMalformedCodeTable.
func ReadCodeTable(r io.Reader) (CodeMap, error) {
	cm := make(CodeMap)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 64*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		symStr, code, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing tab", ErrMalformedCodeTable, lineNo)
		}
		v, err := strconv.Atoi(symStr)
		if err != nil || v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: line %d: bad symbol %q", ErrMalformedCodeTable, lineNo, symStr)
		}
		if err := validCode(code); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedCodeTable, lineNo, err)
		}
		if _, dup := cm[byte(v)]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate symbol %d", ErrMalformedCodeTable, lineNo, v)
		}
		cm[byte(v)] = code
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read code table: %w", err)
	}
	return cm, nil
}

// ParseCodeTable is ReadCodeTable over a string.
func ParseCodeTable(s string) (CodeMap, error) {
	return ReadCodeTable(strings.NewReader(s))
}

func validCode(code string) error {
	if code == "" {
		return errors.New("empty code")
	}
	for i := 0; i < len(code); i++ {
		if code[i] != '0' && code[i] != '1' {
			return fmt.Errorf("bad bit %q in code %q", code[i], code)
		}
	}
	return nil
}

/*** ---------- 코드 테이블로부터 트리 재구성 ---------- ***/

// RebuildTree builds a decoding tree purely from a code table. Each code
// is walked from a placeholder root, creating internal nodes as needed,
// and the symbol is set on the node reached at its end.
//
// The result is not necessarily shaped like the tree the codes came from,
// but every symbol's root-to-leaf path equals its code. Codes that collide
// or are prefixes of one another yield ErrMalformedCodeTable.
func RebuildTree(cm CodeMap) (*Node, error) {
	if len(cm) == 0 {
		return nil, fmt.Errorf("%w: no codes", ErrMalformedCodeTable)
	}
	root := &Node{}
	leaves := make(map[*Node]bool, len(cm))
	for _, sym := range cm.Symbols() {
		code := cm[sym]
		if err := validCode(code); err != nil {
			return nil, fmt.Errorf("%w: symbol %d: %v", ErrMalformedCodeTable, sym, err)
		}
		cur := root
		for i := 0; i < len(code); i++ {
			if leaves[cur] {
				return nil, fmt.Errorf("%w: code %q of symbol %d extends the code of symbol %d",
					ErrMalformedCodeTable, code, sym, cur.Symbol)
			}
			if code[i] == '0' {
				if cur.Left == nil {
					cur.Left = &Node{}
				}
				cur = cur.Left
			} else {
				if cur.Right == nil {
					cur.Right = &Node{}
				}
				cur = cur.Right
			}
		}
		if leaves[cur] {
			return nil, fmt.Errorf("%w: symbols %d and %d share code %q",
				ErrMalformedCodeTable, cur.Symbol, sym, code)
		}
		if !cur.IsLeaf() {
			return nil, fmt.Errorf("%w: code %q of symbol %d is a prefix of another code",
				ErrMalformedCodeTable, code, sym)
		}
		cur.Symbol = sym
		leaves[cur] = true
	}
	return root, nil
}

/*** ---------- padding 메타 ---------- ***/

// WritePadding writes the padding count as decimal text and a newline.
func WritePadding(w io.Writer, padding int) error {
	if err := ValidPadding(padding); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d\n", padding)
	return err
}

// ReadPadding reads a WritePadding value.
func ReadPadding(r io.Reader) (int, error) {
	b, err := io.ReadAll(io.LimitReader(r, 64))
	if err != nil {
		return 0, fmt.Errorf("read padding: %w", err)
	}
	p, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPadding, strings.TrimSpace(string(b)))
	}
	if err := ValidPadding(p); err != nil {
		return 0, err
	}
	return p, nil
}

// ValidPadding checks that padding is in [1,8].
func ValidPadding(padding int) error {
	if padding < 1 || padding > 8 {
		return fmt.Errorf("%w: %d not in [1,8]", ErrInvalidPadding, padding)
	}
	return nil
}
