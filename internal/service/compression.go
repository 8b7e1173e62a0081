package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"huffman_go/internal/model"
	"huffman_go/internal/repo"
	"huffman_go/pkg/huffman"
	"huffman_go/pkg/logger"
)

var ErrTooLarge = errors.New("input exceeds size limit")

// Stats describes how well an input compresses.
type Stats struct {
	InputBytes     int64   `json:"inputBytes"`
	PackedBytes    int64   `json:"packedBytes"`
	CodeTableBytes int64   `json:"codeTableBytes"`
	Symbols        int     `json:"symbols"`
	AvgCodeLen     float64 `json:"avgCodeLen"`
	Padding        int     `json:"padding"`

	// 참고용 zstd 결과 크기
	ZstdBytes int64 `json:"zstdBytes"`
}

type CompressionService struct {
	repo     repo.ArtifactRepo
	logger   logger.Logger
	maxInput int64
	zenc     *zstd.Encoder
	now      func() time.Time
}

func NewCompressionService(r repo.ArtifactRepo, l logger.Logger, maxInput int64) (*CompressionService, error) {
	zenc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	return &CompressionService{repo: r, logger: l, maxInput: maxInput, zenc: zenc, now: time.Now}, nil
}

func (s *CompressionService) checkSize(n int) error {
	if s.maxInput > 0 && int64(n) > s.maxInput {
		return fmt.Errorf("%w: %d > %d bytes", ErrTooLarge, n, s.maxInput)
	}
	return nil
}

func (s *CompressionService) zstdSize(data []byte) int64 {
	return int64(len(s.zenc.EncodeAll(data, nil)))
}

// Encode compresses data and stores the result.
func (s *CompressionService) Encode(ctx context.Context, data []byte) (*model.Artifact, error) {
	if err := s.checkSize(len(data)); err != nil {
		return nil, err
	}
	enc, err := huffman.Encode(data)
	if err != nil {
		return nil, err
	}
	a := &model.Artifact{
		ID:         uuid.NewString(),
		CodeTable:  huffman.FormatCodeTable(enc.Codes),
		Padding:    enc.Padding,
		Payload:    enc.Packed,
		InputBytes: int64(len(data)),
		ZstdBytes:  s.zstdSize(data),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Infof("artifact %s: %d -> %d bytes (%d symbols, padding %d)",
		a.ID, a.InputBytes, len(a.Payload), len(enc.Codes), a.Padding)
	return a, nil
}

func (s *CompressionService) Get(ctx context.Context, id string) (*model.Artifact, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CompressionService) List(ctx context.Context) ([]*model.Artifact, error) {
	return s.repo.List(ctx)
}

// Decode restores a stored artifact from its code table alone.
func (s *CompressionService) Decode(ctx context.Context, id string) ([]byte, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.DecodeRaw(a.CodeTable, a.Payload, a.Padding)
	if err != nil {
		s.logger.Errorf("artifact %s: %v", id, err)
		return nil, err
	}
	return out, nil
}

// DecodeRaw decodes a payload given its persisted code table and padding.
func (s *CompressionService) DecodeRaw(codeTable string, payload []byte, padding int) ([]byte, error) {
	codes, err := huffman.ParseCodeTable(codeTable)
	if err != nil {
		return nil, err
	}
	root, err := huffman.RebuildTree(codes)
	if err != nil {
		return nil, err
	}
	if err := huffman.CheckPadding(payload, padding); err != nil {
		if errors.Is(err, huffman.ErrInvalidPadding) {
			return nil, err
		}
		s.logger.Warnf("ignoring padding bits: %v", err)
	}
	return huffman.Unpack(payload, padding, root)
}

// Stats encodes data without storing it.
func (s *CompressionService) Stats(data []byte) (*Stats, error) {
	if err := s.checkSize(len(data)); err != nil {
		return nil, err
	}
	enc, err := huffman.Encode(data)
	if err != nil {
		return nil, err
	}
	return &Stats{
		InputBytes:     int64(len(data)),
		PackedBytes:    int64(len(enc.Packed)),
		CodeTableBytes: int64(len(huffman.FormatCodeTable(enc.Codes))),
		Symbols:        len(enc.Codes),
		AvgCodeLen:     enc.Codes.AverageLength(enc.Freq),
		Padding:        enc.Padding,
		ZstdBytes:      s.zstdSize(data),
	}, nil
}
