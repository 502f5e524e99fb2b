package model

import "time"

// Client represents a customer of the shop. FlashcodeID is the opaque
// public token embedded in the client's QR code; it is minted once at
// creation and never changes afterwards.
type Client struct {
	ID          int64
	Name        string
	FirstName   string
	Email       string
	Phone       string
	Address     string
	PostalCode  string
	City        string
	Country     string
	FlashcodeID string
	CreatedAt   time.Time
}
