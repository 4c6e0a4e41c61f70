package types

import "time"

type ChatState string

const (
	StateStart ChatState = "start"
	// StateAwaitingReceipt marks a user who pressed "I paid" and is
	// expected to send a payment screenshot next.
	StateAwaitingReceipt ChatState = "awaiting_receipt"
)

// Session is the ephemeral per-user chat state kept in Redis. It
// carries no entitlement data; the durable record sets own that.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	ChatID    int64     `json:"chat_id"`
	State     ChatState `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionStore interface {
	CreateSession(session *Session) error
	GetSession(sessionID string) (*Session, error)
	GetUserSession(userID int64) (*Session, error)
	UpdateSession(session *Session) error
	DeleteSession(sessionID string) error
}
