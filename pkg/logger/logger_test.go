package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)
	l.Infof("encoded %d bytes", 4)
	l.Warnf("trailing bits")
	l.Errorf("boom: %s", "x")

	out := buf.String()
	require.Contains(t, out, "[INFO] encoded 4 bytes")
	require.Contains(t, out, "[WARN] trailing bits")
	require.Contains(t, out, "[ERROR] boom: x")
}
