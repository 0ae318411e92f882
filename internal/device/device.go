// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

// Package device fingerprints the running session for console access
// control. The fingerprint id is derived deterministically from the public
// IP so that repeated logins from one address collapse into a single
// registry row.
package device

import (
	"fmt"
	"hash/fnv"
	"os"
	"runtime"
	"strings"
)

// Fingerprint is the classified identity of the current session.
type Fingerprint struct {
	ID      string
	Device  string
	Browser string
	OS      string
}

// ID derives the deterministic device identifier for an IP address.
// The same address always yields the same id.
func ID(ip string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.TrimSpace(ip)))
	return fmt.Sprintf("DEV-%08x", h.Sum32())
}

// Classify builds the fingerprint for ip from the described environment.
// ua is the client descriptor string; when empty the local runtime is
// described instead.
func Classify(ip, ua string) Fingerprint {
	if strings.TrimSpace(ua) == "" {
		ua = localDescriptor()
	}

	return Fingerprint{
		ID:      ID(ip),
		Device:  classifyDevice(ua),
		Browser: classifyAgent(ua),
		OS:      classifyOS(ua),
	}
}

// localDescriptor describes the process environment in a user-agent-like
// string, used when no client descriptor is available.
func localDescriptor() string {
	term := os.Getenv("TERM")
	if term == "" {
		term = "terminal"
	}
	return fmt.Sprintf("govportal/%s (%s; %s)", term, runtime.GOOS, runtime.GOARCH)
}

func classifyDevice(ua string) string {
	lower := strings.ToLower(ua)
	switch {
	case strings.Contains(lower, "ipad") || strings.Contains(lower, "tablet"):
		return "Tablet"
	case strings.Contains(lower, "mobile") || strings.Contains(lower, "iphone") ||
		strings.Contains(lower, "android"):
		return "Mobile"
	default:
		return "Desktop"
	}
}

func classifyAgent(ua string) string {
	lower := strings.ToLower(ua)
	switch {
	case strings.Contains(lower, "govportal"):
		return "Portal Terminal"
	case strings.Contains(lower, "edg"):
		return "Edge"
	case strings.Contains(lower, "opr") || strings.Contains(lower, "opera"):
		return "Opera"
	case strings.Contains(lower, "chrome"):
		return "Chrome"
	case strings.Contains(lower, "firefox"):
		return "Firefox"
	case strings.Contains(lower, "safari"):
		return "Safari"
	default:
		return "Other"
	}
}

func classifyOS(ua string) string {
	lower := strings.ToLower(ua)
	switch {
	case strings.Contains(lower, "windows"):
		return "Windows"
	case strings.Contains(lower, "android"):
		return "Android"
	case strings.Contains(lower, "iphone") || strings.Contains(lower, "ipad") ||
		strings.Contains(lower, "ios"):
		return "iOS"
	case strings.Contains(lower, "mac os") || strings.Contains(lower, "macos") ||
		strings.Contains(lower, "darwin"):
		return "macOS"
	case strings.Contains(lower, "linux"):
		return "Linux"
	default:
		return "Other"
	}
}
