package model

import "time"

// Staff represents a back-office user.
type Staff struct {
	ID           int64
	Name         string
	FirstName    string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
