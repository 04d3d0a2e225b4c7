// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package manager holds the console state for the client list and the account
// sub-view, and keeps it in sync with the remote API.
//
// [ClientManager] and [AccountManager] are plain state structs owned by the
// bubbletea event loop. Operations that talk to the server do not block:
// they return a [tea.Cmd] that performs the call on a bubbletea goroutine and
// reports back with a result message. The message is applied by Update on the
// UI goroutine, so state is only ever mutated there.
//
// Every successful mutation is followed by a full re-fetch of the owning list;
// nothing is patched locally. Responses are applied in arrival order and the
// last one wins.
package manager
