package entity

import (
	"strings"
	"time"
)

type MessageStatus string

const (
	MessageStatusUnread MessageStatus = "unread"
	MessageStatusRead   MessageStatus = "read"
)

func (s MessageStatus) IsValid() bool {
	return s == MessageStatusUnread || s == MessageStatusRead
}

// ContactMessage is a message sent through the public contact form.
type ContactMessage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

func NewContactMessage(name, email, subject, message string) (*ContactMessage, error) {
	m := &ContactMessage{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Subject:   strings.TrimSpace(subject),
		Message:   strings.TrimSpace(message),
		Status:    MessageStatusUnread,
		CreatedAt: time.Now().UTC(),
	}
	switch {
	case m.Name == "":
		return nil, NewValidationError("name is required")
	case !IsValidEmail(m.Email):
		return nil, NewValidationError("a valid email address is required")
	case m.Message == "":
		return nil, NewValidationError("message is required")
	}
	return m, nil
}
