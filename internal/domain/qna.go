package domain

import (
	"fmt"
	"strings"
	"time"
)

// Qna is a curated question and answer shown on the public site.
type Qna struct {
	ID        int64
	Category  string
	Question  string
	Answer    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Qna) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: question is required", ErrValidation)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fmt.Errorf("%w: answer is required", ErrValidation)
	}
	return nil
}
