package domain

import (
	"fmt"
	"strings"
	"time"
)

// Guide is an editorial resource shown on the public site.
type Guide struct {
	ID        int64
	Title     string
	Category  string
	Summary   string
	Content   string
	ImageURL  *string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *Guide) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(g.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	return nil
}
