package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultSendTimeout = 10 * time.Second

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// HTTPMailer sends emails through a Resend-style transactional email API.
type HTTPMailer struct {
	client   *resty.Client
	endpoint string
	apiKey   string
}

func NewHTTPMailer(baseURL string, apiKey string) (*HTTPMailer, error) {
	client := resty.New()
	client.SetTimeout(defaultSendTimeout)
	client.SetRetryCount(0)

	return NewHTTPMailerWithClient(baseURL, apiKey, client)
}

func NewHTTPMailerWithClient(baseURL string, apiKey string, client *resty.Client) (*HTTPMailer, error) {
	trimmedBase := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmedBase == "" {
		return nil, fmt.Errorf("mail api url is required")
	}
	if _, err := url.ParseRequestURI(trimmedBase); err != nil {
		return nil, fmt.Errorf("invalid mail api url: %w", err)
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("mail api key is required")
	}
	if client == nil {
		return nil, fmt.Errorf("resty client is required")
	}

	if client.GetClient().Timeout == 0 {
		client.SetTimeout(defaultSendTimeout)
	}
	client.SetRetryCount(0)

	return &HTTPMailer{
		client:   client,
		endpoint: trimmedBase + "/emails",
		apiKey:   apiKey,
	}, nil
}

// Send calls the provider exactly once. No retry, no deduplication;
// repeated calls with identical input send duplicate emails.
func (m *HTTPMailer) Send(ctx context.Context, msg Message) (*SendResult, error) {
	if m == nil || m.client == nil {
		return nil, fmt.Errorf("mailer is not initialized")
	}
	if err := validateMessage(msg); err != nil {
		return nil, err
	}

	reqBody := sendRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}

	var parsed sendResponse
	response, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+m.apiKey).
		SetBody(reqBody).
		SetResult(&parsed).
		Post(m.endpoint)
	if err != nil {
		return nil, &SendError{
			Message:   "mail provider request failed",
			Transient: !errors.Is(err, context.Canceled),
			Cause:     err,
		}
	}
	if response == nil {
		return nil, &SendError{
			Message:   "mail provider returned empty response",
			Transient: true,
		}
	}

	statusCode := response.StatusCode()
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return &SendResult{
			MessageID:  parsed.ID,
			StatusCode: statusCode,
		}, nil
	}

	return nil, &SendError{
		StatusCode: statusCode,
		Message:    sendErrorMessage(statusCode, strings.TrimSpace(response.String())),
		Transient:  isTransientHTTPStatus(statusCode),
	}
}

func validateMessage(msg Message) error {
	if strings.TrimSpace(msg.From) == "" {
		return fmt.Errorf("message sender is required")
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("message recipient is required")
	}
	for _, to := range msg.To {
		if strings.TrimSpace(to) == "" {
			return fmt.Errorf("message recipient must not be blank")
		}
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return fmt.Errorf("message subject is required")
	}
	if strings.TrimSpace(msg.HTML) == "" {
		return fmt.Errorf("message body is required")
	}
	return nil
}

func isTransientHTTPStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || (statusCode >= http.StatusInternalServerError && statusCode <= 599)
}

func sendErrorMessage(statusCode int, body string) string {
	base := fmt.Sprintf("mail provider returned status %d", statusCode)
	if body == "" {
		return base
	}
	return fmt.Sprintf("%s: %s", base, body)
}
