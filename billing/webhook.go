package billing

// WebhookEvent is the provider's push notification for out-of-band
// entitlement changes (renewals, cancellations, cross-device restores).
// Receipt of any event triggers a customer-info refresh; the event type is
// informational.
type WebhookEvent struct {
	Type      string `json:"type"`
	AppUserID string `json:"app_user_id"`
	ProductID string `json:"product_id"`
}

// WebhookPayload is the envelope posted by the provider.
type WebhookPayload struct {
	APIVersion string       `json:"api_version"`
	Event      WebhookEvent `json:"event"`
}
