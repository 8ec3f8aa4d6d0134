// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is a client installation bound to an account through its Firebase Cloud
// Messaging token. The token doubles as the device-binding key for registration.
type Device struct {
	ID         uuid.UUID  // The Global Unique Identifier (GUID) for the device.
	FCMID      string     // Firebase Cloud Messaging registration token, unique per device.
	OwnerID    *uuid.UUID // The account bound to this device, nil until registration completes.
	IsActive   bool       // Inactive devices are skipped when sending push notifications.
	FailsCount int        // Consecutive rejected push deliveries.
	CreatedAt  time.Time  // Timestamp of when this device was first seen.
	UpdatedAt  time.Time  // Timestamp of the last modification.
}

// Reactivate marks the device usable again and clears its delivery failures.
func (d *Device) Reactivate() {
	d.IsActive = true
	d.FailsCount = 0
}

// RecordFailure counts a rejected push delivery and deactivates the device once
// maxFailures is reached.
func (d *Device) RecordFailure(maxFailures int) {
	d.FailsCount++
	if maxFailures > 0 && d.FailsCount >= maxFailures {
		d.IsActive = false
	}
}
