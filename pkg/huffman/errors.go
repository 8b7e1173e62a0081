package huffman

import "errors"

var (
	// ErrEmptyInput is returned when there is nothing to encode.
	ErrEmptyInput = errors.New("huffman: empty input")
	// ErrMalformedCodeTable is returned when a code table record cannot be
	// parsed or the codes do not form a prefix-free set.
	ErrMalformedCodeTable = errors.New("huffman: malformed code table")
	// ErrCorruptStream is returned when the packed bits do not walk the tree
	// to a leaf.
	ErrCorruptStream = errors.New("huffman: corrupt stream")
	// ErrInvalidPadding is returned for a padding count outside [1,8].
	ErrInvalidPadding = errors.New("huffman: invalid padding")
	// ErrUnknownSymbol is returned when Pack meets a byte with no code.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")
)
