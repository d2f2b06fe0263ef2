// SPDX-License-Identifier: Apache-2.0

package client

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client runtime and blocks until the context given at
	// construction time is cancelled.
	Run() error
}
