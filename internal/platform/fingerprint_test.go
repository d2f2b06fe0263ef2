package platform

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-core/internal/utils"
)

func TestDeviceFingerprinter(t *testing.T) {
	utils.InitHasherPool("test-hash-key")
	fp := NewDeviceFingerprinter()

	first := fp.Fingerprint()
	require.NotEmpty(t, first)

	// hex-encoded HMAC-SHA256
	raw, err := hex.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	// stable on the same device within a process
	assert.Equal(t, first, fp.Fingerprint())
}
