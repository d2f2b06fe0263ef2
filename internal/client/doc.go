// SPDX-License-Identifier: Apache-2.0

// Package client implements the client application runtime.
//
// It wires the transport adapters, local storage, key management, vault
// cache, and session manager into a single composition, and exposes the
// login, restore, and logout flows that an interactive shell builds on.
package client
