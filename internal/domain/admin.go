package domain

import "time"

// Admin is a console user allowed to manage content and drive the
// contact lifecycle.
type Admin struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
