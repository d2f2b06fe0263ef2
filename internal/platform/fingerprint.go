package platform

import (
	"encoding/hex"
	"os"
	"runtime"
	"strings"

	"github.com/MKhiriev/go-vault-core/internal/utils"
	"github.com/MKhiriev/go-vault-core/internal/vault"
)

// deviceFingerprinter characterizes the current device as an HMAC over
// hostname, OS and architecture. The HMAC key comes from the configured
// hash key, so fingerprints from different installations never collide
// by accident.
type deviceFingerprinter struct{}

// NewDeviceFingerprinter constructs a [vault.Fingerprinter] for the
// current device. utils.InitHasherPool must have been called before the
// first Fingerprint call.
func NewDeviceFingerprinter() vault.Fingerprinter {
	return &deviceFingerprinter{}
}

// Fingerprint recomputes the device value on every call so a hostname
// change is noticed on the next cache validity check.
func (d *deviceFingerprinter) Fingerprint() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}

	device := strings.Join([]string{hostname, runtime.GOOS, runtime.GOARCH}, "|")
	return hex.EncodeToString(utils.Hash([]byte(device)))
}
