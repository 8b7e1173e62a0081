package model

import "time"

// Artifact is one stored encode result: the persisted code table, the
// padding count and the packed payload.
type Artifact struct {
	ID         string    `json:"id"`
	CodeTable  string    `json:"codeTable"`
	Padding    int       `json:"padding"`
	Payload    []byte    `json:"payload"`
	InputBytes int64     `json:"inputBytes"`
	ZstdBytes  int64     `json:"zstdBytes"`
	CreatedAt  time.Time `json:"createdAt"`
}
