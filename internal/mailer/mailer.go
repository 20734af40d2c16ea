package mailer

import "context"

// Mailer is the outbound transactional email port.
type Mailer interface {
	Send(ctx context.Context, msg Message) (*SendResult, error)
}

// Message is one email to hand to the delivery provider. Multi-recipient
// sends pass the whole list in a single provider call; per-recipient
// failure semantics are provider-defined.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// SendResult stores provider call metadata.
type SendResult struct {
	MessageID  string
	StatusCode int
}
