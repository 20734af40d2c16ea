package domain

import "time"

// Faq is one entry of the fixed corpus the chat assistant answers from.
type Faq struct {
	ID        int64
	Question  string
	Answer    string
	SortOrder int
	CreatedAt time.Time
}
