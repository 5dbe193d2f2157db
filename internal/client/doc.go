// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the client services, and the local session
// cache into a single process lifecycle.
package client
