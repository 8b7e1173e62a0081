package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"huffman_go/internal/handler"
	"huffman_go/internal/model"
	"huffman_go/internal/repo"
	"huffman_go/internal/service"
	"huffman_go/pkg/logger"
)

func newEngine(t *testing.T, maxInput int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, err := service.NewCompressionService(repo.NewArtifactRepoInMemory(), logger.NewWriter(io.Discard), maxInput)
	require.NoError(t, err)
	r := gin.New()
	Register(r, Dependencies{ArtifactHandler: handler.NewArtifactHandler(svc, maxInput)})
	return r
}

func do(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(newEngine(t, 0), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestArtifactLifecycle(t *testing.T) {
	r := newEngine(t, 0)
	data := []byte("hello huffman, hello gin")

	w := do(r, http.MethodPost, "/api/v1/artifacts", data)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var a model.Artifact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
	require.NotEmpty(t, a.ID)

	w = do(r, http.MethodGet, "/api/v1/artifacts/"+a.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/artifacts/"+a.ID+"/codes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, a.CodeTable, w.Body.String())

	w = do(r, http.MethodGet, "/api/v1/artifacts/"+a.ID+"/content", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, data, w.Body.Bytes())

	w = do(r, http.MethodGet, "/api/v1/artifacts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []model.Artifact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = do(r, http.MethodGet, "/api/v1/artifacts/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateErrors(t *testing.T) {
	r := newEngine(t, 4)

	w := do(r, http.MethodPost, "/api/v1/artifacts", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/artifacts", []byte("12345"))
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestDecodeEndpoint(t *testing.T) {
	r := newEngine(t, 0)

	body, err := json.Marshal(map[string]any{"codes": "97\t1\n98\t0\n", "payload": []byte{0xE0}, "padding": 4})
	require.NoError(t, err)
	w := do(r, http.MethodPost, "/api/v1/decode", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "aaab", w.Body.String())

	body, err = json.Marshal(map[string]any{"codes": "97\t1\n98\t0\n", "payload": []byte{0xE0}, "padding": 12})
	require.NoError(t, err)
	w = do(r, http.MethodPost, "/api/v1/decode", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body, err = json.Marshal(map[string]any{"codes": "97\t00\n98\t01\n", "payload": []byte{0xFF}, "padding": 8})
	require.NoError(t, err)
	w = do(r, http.MethodPost, "/api/v1/decode", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body, err = json.Marshal(map[string]any{"codes": "x", "payload": []byte{0xFF}, "padding": 8})
	require.NoError(t, err)
	w = do(r, http.MethodPost, "/api/v1/decode", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	r := newEngine(t, 0)
	w := do(r, http.MethodPost, "/api/v1/stats", []byte("aaab"))
	require.Equal(t, http.StatusOK, w.Code)

	var st service.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	require.Equal(t, int64(1), st.PackedBytes)
	require.Equal(t, 4, st.Padding)
}
