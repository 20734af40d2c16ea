package assistant

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

const defaultChatTimeout = 30 * time.Second

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	client   *resty.Client
	endpoint string
	apiKey   string
	model    string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewClient(baseURL string, apiKey string, model string) (*Client, error) {
	restyClient := resty.New()
	restyClient.SetTimeout(defaultChatTimeout)
	restyClient.SetRetryCount(0)

	return NewClientWithResty(baseURL, apiKey, model, restyClient)
}

func NewClientWithResty(baseURL string, apiKey string, model string, restyClient *resty.Client) (*Client, error) {
	trimmedBase := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmedBase == "" {
		return nil, fmt.Errorf("llm api url is required")
	}
	if _, err := url.ParseRequestURI(trimmedBase); err != nil {
		return nil, fmt.Errorf("invalid llm api url: %w", err)
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("llm api key is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("llm model is required")
	}
	if restyClient == nil {
		return nil, fmt.Errorf("resty client is required")
	}

	if restyClient.GetClient().Timeout == 0 {
		restyClient.SetTimeout(defaultChatTimeout)
	}
	restyClient.SetRetryCount(0)

	return &Client{
		client:   restyClient,
		endpoint: trimmedBase + "/chat/completions",
		apiKey:   apiKey,
		model:    model,
	}, nil
}

// Complete performs a single completion call with the given system prompt
// and user question. One call per invocation, no retry.
func (c *Client) Complete(ctx context.Context, systemPrompt string, question string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("assistant client is not initialized")
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: question},
		},
		Temperature: 0.2,
	}

	var parsed chatResponse
	response, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetBody(reqBody).
		SetResult(&parsed).
		Post(c.endpoint)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		return "", fmt.Errorf("llm returned status %d: %s", response.StatusCode(), strings.TrimSpace(response.String()))
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}

	answer := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("llm returned an empty answer")
	}

	return answer, nil
}
