package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"huffman_go/internal/repo"
	"huffman_go/internal/service"
	"huffman_go/pkg/huffman"
)

type ArtifactHandler struct {
	svc      *service.CompressionService
	maxInput int64
}

func NewArtifactHandler(s *service.CompressionService, maxInput int64) *ArtifactHandler {
	return &ArtifactHandler{svc: s, maxInput: maxInput}
}

type decodeReq struct {
	Codes   string `json:"codes"   binding:"required"`
	Payload []byte `json:"payload"`
	Padding int    `json:"padding" binding:"required,min=1,max=8"`
}

// status 는 에러 종류를 HTTP 코드로 바꿔요.
func status(err error) int {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, huffman.ErrEmptyInput),
		errors.Is(err, huffman.ErrInvalidPadding),
		errors.Is(err, huffman.ErrMalformedCodeTable):
		return http.StatusBadRequest
	case errors.Is(err, huffman.ErrCorruptStream):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(status(err), gin.H{"error": err.Error()})
}

func (h *ArtifactHandler) readBody(c *gin.Context) ([]byte, bool) {
	body := io.Reader(c.Request.Body)
	if h.maxInput > 0 {
		body = io.LimitReader(body, h.maxInput+1) // 초과분 1바이트로 상한 초과 감지
	}
	data, err := io.ReadAll(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return data, true
}

func (h *ArtifactHandler) Create(c *gin.Context) {
	data, ok := h.readBody(c)
	if !ok {
		return
	}
	a, err := h.svc.Encode(c.Request.Context(), data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *ArtifactHandler) GetByID(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ArtifactHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ArtifactHandler) Codes(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.String(http.StatusOK, a.CodeTable)
}

func (h *ArtifactHandler) Content(c *gin.Context) {
	out, err := h.svc.Decode(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func (h *ArtifactHandler) Decode(c *gin.Context) {
	var req decodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.svc.DecodeRaw(req.Codes, req.Payload, req.Padding)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func (h *ArtifactHandler) Stats(c *gin.Context) {
	data, ok := h.readBody(c)
	if !ok {
		return
	}
	st, err := h.svc.Stats(data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
