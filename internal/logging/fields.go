package logging

import "log/slog"

// Common field names for consistent logging across the repo.
const (
	FieldService        = "service"
	FieldEventID        = "event_id"
	FieldConversationID = "conversation_id"
	FieldMerchantID     = "merchant_id"
	FieldEndpoint       = "endpoint"
	FieldStatus         = "status"
	FieldDuration       = "duration_ms"
	FieldError          = "error"
	FieldCount          = "count"
	FieldSubject        = "subject"
)

// Service returns a slog attribute for the service name.
func Service(name string) slog.Attr {
	return slog.String(FieldService, name)
}

// EventID returns a slog attribute for the event ID.
func EventID(id string) slog.Attr {
	return slog.String(FieldEventID, id)
}

// ConversationID returns a slog attribute for the conversation ID.
func ConversationID(id string) slog.Attr {
	return slog.String(FieldConversationID, id)
}

// MerchantID returns a slog attribute for the merchant ID.
func MerchantID(id string) slog.Attr {
	return slog.String(FieldMerchantID, id)
}

// Endpoint returns a slog attribute for a remote endpoint URL.
func Endpoint(url string) slog.Attr {
	return slog.String(FieldEndpoint, url)
}

// Status returns a slog attribute for the HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int(FieldStatus, code)
}

// Duration returns a slog attribute for duration in milliseconds.
func Duration(ms int64) slog.Attr {
	return slog.Int64(FieldDuration, ms)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}

// Count returns a slog attribute for a count of items.
func Count(n int) slog.Attr {
	return slog.Int(FieldCount, n)
}

// Subject returns a slog attribute for a messaging subject.
func Subject(subject string) slog.Attr {
	return slog.String(FieldSubject, subject)
}
