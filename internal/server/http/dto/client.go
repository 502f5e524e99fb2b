package dto

import "time"

// ClientRequest describes the staff-editable client fields.
type ClientRequest struct {
	Name       string `json:"name" binding:"required"`
	FirstName  string `json:"first_name"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// ClientResponse describes a client record.
type ClientResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FirstName   string    `json:"first_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	PostalCode  string    `json:"postal_code,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	FlashcodeID string    `json:"flashcode_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// FlashcodeResponse carries the public artifacts for a client's code.
type FlashcodeResponse struct {
	FlashcodeID string `json:"flashcode_id"`
	ScanURL     string `json:"scan_url"`
	QRImageURL  string `json:"qr_image_url"`
}
