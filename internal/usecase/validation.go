package usecase

import (
	"net/mail"
	"strings"

	"github.com/orderdesk/backoffice/internal/domain/model"
)

// ValidStatus reports whether s is one of the four order statuses.
func ValidStatus(s model.OrderStatus) bool {
	switch s {
	case model.OrderStatusPending, model.OrderStatusInProgress, model.OrderStatusDone, model.OrderStatusCancelled:
		return true
	}
	return false
}

// ValidEmail checks the address syntactically: a bare RFC 5322 address
// with a dotted domain, no display name.
func ValidEmail(address string) bool {
	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return false
	}
	at := strings.LastIndex(address, "@")
	return at > 0 && strings.Contains(address[at+1:], ".")
}

// StatusLabel converts a status value into the human label used in
// client-facing notifications.
func StatusLabel(s model.OrderStatus) string {
	switch s {
	case model.OrderStatusPending:
		return "pending"
	case model.OrderStatusInProgress:
		return "in progress"
	case model.OrderStatusDone:
		return "completed"
	case model.OrderStatusCancelled:
		return "cancelled"
	}
	return string(s)
}
