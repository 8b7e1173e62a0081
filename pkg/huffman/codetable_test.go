package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeTableRoundTrip(t *testing.T) {
	root, err := BuildTree(CountFrequencies([]byte("the quick brown fox jumps over the lazy dog\n\x00\xff")))
	require.NoError(t, err)
	codes := GenerateCodes(root)

	var buf bytes.Buffer
	require.NoError(t, WriteCodeTable(&buf, codes))
	got, err := ReadCodeTable(&buf)
	require.NoError(t, err)
	require.Equal(t, codes, got)
}

func TestWriteCodeTableLayout(t *testing.T) {
	require.Equal(t, "10\t11\n97\t0\n98\t10\n", FormatCodeTable(CodeMap{'b': "10", 'a': "0", '\n': "11"}))
}

func TestReadCodeTableTolerance(t *testing.T) {
	got, err := ParseCodeTable("97\t0\r\n\n98\t1\n")
	require.NoError(t, err)
	require.Equal(t, CodeMap{'a': "0", 'b': "1"}, got)
}

func TestReadCodeTableMalformed(t *testing.T) {
	cases := map[string]string{
		"no tab":        "97 0\n",
		"symbol text":   "a\t0\n",
		"symbol range":  "256\t0\n",
		"negative":      "-1\t0\n",
		"empty code":    "97\t\n",
		"bad bit":       "97\t012\n",
		"duplicate sym": "97\t0\n97\t1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCodeTable(in)
			require.ErrorIs(t, err, ErrMalformedCodeTable)
		})
	}
}

func TestRebuildTreePaths(t *testing.T) {
	codes := CodeMap{'a': "0", 'b': "10", 'c': "110", 'd': "111"}
	root, err := RebuildTree(codes)
	require.NoError(t, err)

	for sym, code := range codes {
		n := root
		for i := 0; i < len(code); i++ {
			require.False(t, n.IsLeaf())
			if code[i] == '0' {
				n = n.Left
			} else {
				n = n.Right
			}
			require.NotNil(t, n)
		}
		require.True(t, n.IsLeaf())
		require.Equal(t, sym, n.Symbol)
	}
	require.Equal(t, codes, GenerateCodes(root))
}

func TestRebuildTreeSingleSymbol(t *testing.T) {
	root, err := RebuildTree(CodeMap{'z': "0"})
	require.NoError(t, err)
	require.Nil(t, root.Right)
	require.True(t, root.Left.IsLeaf())
	require.Equal(t, byte('z'), root.Left.Symbol)
}

func TestRebuildTreeRejectsConflicts(t *testing.T) {
	cases := map[string]CodeMap{
		"empty":           {},
		"same code":       {1: "0", 2: "0"},
		"prefix first":    {1: "0", 2: "01"},
		"prefix second":   {1: "01", 2: "0"},
		"invalid bit":     {1: "0x"},
		"empty bitstring": {1: ""},
	}
	for name, cm := range cases {
		t.Run(name, func(t *testing.T) {
			root, err := RebuildTree(cm)
			require.ErrorIs(t, err, ErrMalformedCodeTable)
			require.Nil(t, root)
		})
	}
}

func TestPaddingMeta(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePadding(&buf, 4))
	require.Equal(t, "4\n", buf.String())
	p, err := ReadPadding(&buf)
	require.NoError(t, err)
	require.Equal(t, 4, p)

	require.ErrorIs(t, WritePadding(&buf, 0), ErrInvalidPadding)
	for _, in := range []string{"0", "9", "-3", "x", ""} {
		_, err := ReadPadding(strings.NewReader(in))
		require.ErrorIs(t, err, ErrInvalidPadding, "input %q", in)
	}
}
