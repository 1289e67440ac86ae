package models

// Auth event types published to Kafka for out-of-band consumers
// (mailer, audit log).
const (
	EventVerificationRequested = "verification.requested"
	EventResetRequested        = "reset.requested"
	EventUserSignedUp          = "user.signed_up"
	EventUserSignedIn          = "user.signed_in"
)

// AuthEvent is the message published for every account lifecycle action.
type AuthEvent struct {
	EventID     string `json:"event_id"`               // Unique event identifier
	Type        string `json:"type"`                   // One of the Event* constants
	Email       string `json:"email"`                  // Affected account email
	RedirectURL string `json:"redirect_url,omitempty"` // Link target for email events
	Timestamp   int64  `json:"timestamp"`              // Unix seconds
}
