// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the console application runtime.
//
// It ties the terminal UI to the process lifecycle: signals end the session
// and a deliberate quit is reported as a clean exit.
package client
