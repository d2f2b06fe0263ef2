// SPDX-License-Identifier: Apache-2.0

// Package platform implements the capability layer: the pieces of the
// client that differ per platform but are consumed through small
// interfaces by the core. It provides the device fingerprinter used for
// cache invalidation and the clipboard used to hand secrets to other
// applications.
package platform

import "time"

// Clipboard copies secret values to the system clipboard. Values placed
// on the clipboard leave the process boundary; callers should prefer
// CopyExpiring for passwords so the secret does not linger.
type Clipboard interface {
	// Copy places text on the system clipboard.
	Copy(text string) error

	// CopyExpiring places text on the clipboard and clears it after
	// clearAfter, unless the clipboard has been overwritten by someone
	// else in the meantime.
	CopyExpiring(text string, clearAfter time.Duration) error
}
