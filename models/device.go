package models

import "time"

// DeviceStatus gates console access for a fingerprinted device.
type DeviceStatus string

const (
	DeviceActive  DeviceStatus = "Active"
	DeviceBlocked DeviceStatus = "Blocked"
)

// DeviceInfo is a fingerprint of a session used for console access control.
// The ID is derived deterministically from the resolved IP, so repeated
// logins from the same address upsert into one row.
type DeviceInfo struct {
	// ID is the deterministic identifier derived from IP.
	ID string `json:"id"`

	// IP is the public address the session resolved to, or "Unknown".
	IP string `json:"ip"`

	// Device, Browser and OS are coarse classifications parsed from the
	// user agent string.
	Device  string `json:"device"`
	Browser string `json:"browser"`
	OS      string `json:"os"`

	// Country, City and Region come from the geolocation lookup, or
	// "Unknown" when the lookup fails.
	Country string `json:"country"`
	City    string `json:"city"`
	Region  string `json:"region"`

	// Status is Active or Blocked. A blocked device is refused at login.
	Status DeviceStatus `json:"status"`

	// LoginTime is the first time this device was seen. Preserved across
	// upserts.
	LoginTime time.Time `json:"login_time"`

	// LastActive is bumped on every registration.
	LastActive time.Time `json:"last_active"`
}

// TableName returns the backend table holding device fingerprints.
func (DeviceInfo) TableName() string {
	return "devices"
}
