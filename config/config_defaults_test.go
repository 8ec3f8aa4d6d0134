package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, 30*24*time.Hour, cfg.Listing.Lifetime)
	assert.Equal(t, 20, cfg.Listing.PageSize)
	assert.Equal(t, 100, cfg.Listing.MaxPageSize)
	assert.Equal(t, 5, cfg.Notification.MaxDeviceFailures)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Listing: &ListingConfig{
			Lifetime:    time.Hour,
			PageSize:    150,
			MaxPageSize: 10,
		},
		Notification: &NotificationConfig{MaxDeviceFailures: 2},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Listing.Lifetime)
	assert.Equal(t, 150, cfg.Listing.PageSize)
	assert.Equal(t, 150, cfg.Listing.MaxPageSize, "max page size never drops below the default page size")
	assert.Equal(t, 2, cfg.Notification.MaxDeviceFailures)
}
