package config

import (
	"fmt"
	"strings"

	"github.com/Netflix/go-env"
)

type Config struct {
	DatabaseDSN string `env:"DATABASE_DSN,required=true"`
	RedisURL    string `env:"REDIS_URL,required=true"`

	MailAPIURL        string `env:"MAIL_API_URL,required=true"`
	MailAPIKey        string `env:"MAIL_API_KEY,required=true"`
	MailFrom          string `env:"MAIL_FROM,default=Lighthouse <noreply@lighthouse-program.org>"`
	MailFallbackReply string `env:"MAIL_FALLBACK_REPLY_TO,default=contact@lighthouse-program.org"`
	AdminNotifyEmails string `env:"ADMIN_NOTIFY_EMAILS,required=true"`

	LLMAPIURL string `env:"LLM_API_URL,required=true"`
	LLMAPIKey string `env:"LLM_API_KEY,required=true"`
	LLMModel  string `env:"LLM_MODEL,default=gpt-4o-mini"`

	S3Bucket     string `env:"S3_BUCKET,required=true"`
	S3Region     string `env:"S3_REGION,default=ap-northeast-2"`
	AssetBaseURL string `env:"ASSET_BASE_URL"`

	AdminEmail    string `env:"ADMIN_EMAIL,required=true"`
	AdminPassword string `env:"ADMIN_PASSWORD,required=true"`
	AdminName     string `env:"ADMIN_NAME,default=Lighthouse Admin"`
	SessionTTLMin int    `env:"SESSION_TTL_MIN,default=720"`

	RateLimitPerMin int `env:"RATE_LIMIT_PER_MIN,default=30"`

	APIPort  int    `env:"API_PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=info"`
}

func Load() (*Config, error) {
	var cfg Config
	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// AdminRecipients splits ADMIN_NOTIFY_EMAILS into a clean address list.
func (c *Config) AdminRecipients() []string {
	parts := strings.Split(c.AdminNotifyEmails, ",")
	recipients := make([]string, 0, len(parts))
	for _, part := range parts {
		if addr := strings.TrimSpace(part); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}
