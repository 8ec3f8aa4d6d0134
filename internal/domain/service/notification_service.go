package service

import "context"

// PushNotification is one message fanned out to a recipient's devices.
type PushNotification struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport summarises a fan-out. InvalidTokens lists the registrations the
// transport rejected as invalid or unregistered.
type PushReport struct {
	Delivered     int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers push notifications to device registration tokens.
type NotificationService interface {
	// Push sends the notification to every token. An error means the transport
	// failed as a whole; per-token rejections are reported in PushReport.
	Push(ctx context.Context, tokens []string, notification *PushNotification) (*PushReport, error)
}
