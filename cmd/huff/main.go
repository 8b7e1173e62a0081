package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"huffman_go/internal/config"
	"huffman_go/internal/repo"
	"huffman_go/internal/service"
	"huffman_go/pkg/huffman"
	"huffman_go/pkg/logger"
)

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  %s encode <inputFile> <outputCompressed> <codesFile>\n", prog)
	fmt.Fprintf(w, "  %s decode <compressedFile> <metaFile> <codesFile> <outputFile>\n", prog)
	fmt.Fprintf(w, "  %s stats <inputFile>\n", prog)
	fmt.Fprintf(w, "  %s tree <codesFile>\n", prog)
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	prog := "huff"
	if len(args) > 0 {
		prog = args[0]
	}
	if len(args) < 2 {
		usage(stderr, prog)
		return 1
	}

	var err error
	switch cmd, rest := args[1], args[2:]; {
	case cmd == "encode" && len(rest) == 3:
		err = encodeFile(stdout, rest[0], rest[1], rest[2])
	case cmd == "decode" && len(rest) == 4:
		err = decodeFile(stdout, logger.NewWriter(stderr), rest[0], rest[1], rest[2], rest[3])
	case cmd == "stats" && len(rest) == 1:
		err = printStats(stdout, rest[0])
	case cmd == "tree" && len(rest) == 1:
		err = printTree(stdout, rest[0])
	default:
		usage(stderr, prog)
		return 1
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func encodeFile(stdout io.Writer, input, outComp, codesFile string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input %q: %w", input, err)
	}
	root, err := huffman.BuildTree(huffman.CountFrequencies(data))
	if errors.Is(err, huffman.ErrEmptyInput) {
		return errors.New("no data to encode")
	}
	if err != nil {
		return err
	}
	codes := huffman.GenerateCodes(root)

	if err := writeFile(codesFile, func(w io.Writer) error { return huffman.WriteCodeTable(w, codes) }); err != nil {
		return fmt.Errorf("write codes %q: %w", codesFile, err)
	}
	var padding int
	if err := writeFile(outComp, func(w io.Writer) error {
		var err error
		padding, err = huffman.PackTo(w, data, codes)
		return err
	}); err != nil {
		return fmt.Errorf("encode %q: %w", outComp, err)
	}
	meta := outComp + ".meta"
	if err := writeFile(meta, func(w io.Writer) error { return huffman.WritePadding(w, padding) }); err != nil {
		return fmt.Errorf("write meta %q: %w", meta, err)
	}

	fmt.Fprintf(stdout, "Encoding done: compressed='%s', codes='%s', meta='%s'\n", outComp, codesFile, meta)
	return nil
}

func decodeFile(stdout io.Writer, logg logger.Logger, comp, metaFile, codesFile, output string) error {
	root, err := readTree(codesFile)
	if err != nil {
		return err
	}
	mf, err := os.Open(metaFile)
	if err != nil {
		return err
	}
	padding, err := huffman.ReadPadding(mf)
	mf.Close()
	if err != nil {
		return fmt.Errorf("meta %q: %w", metaFile, err)
	}
	packed, err := os.ReadFile(comp)
	if err != nil {
		return err
	}
	if err := huffman.CheckPadding(packed, padding); err != nil {
		logg.Warnf("%s: %v", comp, err)
	}
	out, err := huffman.Unpack(packed, padding, root)
	if err != nil {
		return fmt.Errorf("decode %q: %w", comp, err)
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Decoded to '%s'\n", output)
	return nil
}

func readTree(codesFile string) (*huffman.Node, error) {
	f, err := os.Open(codesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	codes, err := huffman.ReadCodeTable(f)
	if err != nil {
		return nil, fmt.Errorf("codes %q: %w", codesFile, err)
	}
	root, err := huffman.RebuildTree(codes)
	if err != nil {
		return nil, fmt.Errorf("codes %q: %w", codesFile, err)
	}
	return root, nil
}

func printStats(stdout io.Writer, input string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	cfg := config.Load()
	svc, err := service.NewCompressionService(repo.NewArtifactRepoInMemory(), logger.New(), cfg.MaxInputBytes)
	if err != nil {
		return err
	}
	st, err := svc.Stats(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "input:      %d bytes\n", st.InputBytes)
	fmt.Fprintf(stdout, "packed:     %d bytes (padding %d)\n", st.PackedBytes, st.Padding)
	fmt.Fprintf(stdout, "code table: %d bytes, %d symbols\n", st.CodeTableBytes, st.Symbols)
	fmt.Fprintf(stdout, "avg code:   %.3f bits\n", st.AvgCodeLen)
	fmt.Fprintf(stdout, "zstd:       %d bytes\n", st.ZstdBytes)
	return nil
}

func printTree(stdout io.Writer, codesFile string) error {
	root, err := readTree(codesFile)
	if err != nil {
		return err
	}
	return huffman.PrintTree(stdout, root)
}

func writeFile(name string, fill func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := fill(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
