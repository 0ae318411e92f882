// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

// Package client implements the interactive portal runtime.
//
// It wires the backend gateway, geolocation, portal state, verification
// engine, background refresh and the terminal UI into a single process
// lifecycle.
package client
