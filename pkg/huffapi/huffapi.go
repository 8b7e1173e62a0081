// Package huffapi is a client for the compression server's HTTP API.
package huffapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"huffman_go/internal/model"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// 요청 시 Payload 구조체
type DecodePayload struct {
	Codes   string `json:"codes"`
	Payload []byte `json:"payload"`
	Padding int    `json:"padding"`
}

type apiError struct {
	Error string `json:"error"`
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("huffapi: status %d: %s", e.Code, e.Message)
}

func (c *Client) doRequest(method, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		var ae apiError
		if json.Unmarshal(data, &ae) != nil || ae.Error == "" {
			ae.Error = string(data)
		}
		return nil, &StatusError{Code: resp.StatusCode, Message: ae.Error}
	}
	return data, nil
}

func doJSON[T any](c *Client, method, path, contentType string, body io.Reader) (*T, error) {
	data, err := c.doRequest(method, path, contentType, body)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal: [%s %s]: %w", method, path, err)
	}
	return &out, nil
}

// Encode uploads data and returns the stored artifact.
func (c *Client) Encode(data []byte) (*model.Artifact, error) {
	return doJSON[model.Artifact](c, http.MethodPost, "/api/v1/artifacts", "application/octet-stream", bytes.NewReader(data))
}

func (c *Client) Get(id string) (*model.Artifact, error) {
	return doJSON[model.Artifact](c, http.MethodGet, "/api/v1/artifacts/"+id, "", nil)
}

// Content returns the decoded bytes of a stored artifact.
func (c *Client) Content(id string) ([]byte, error) {
	return c.doRequest(http.MethodGet, "/api/v1/artifacts/"+id+"/content", "", nil)
}

// Decode has the server decode a payload it never stored.
func (c *Client) Decode(p DecodePayload) ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return c.doRequest(http.MethodPost, "/api/v1/decode", "application/json", bytes.NewReader(b))
}
