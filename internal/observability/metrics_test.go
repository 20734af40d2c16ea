package observability

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestMetricsHandlerExposesCounters(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.IncEmailSent("acceptance")
	m.IncEmailFailed("rejection")
	m.IncChatRequest("ok")
	m.ObserveEmailSendDuration("acceptance", 120*time.Millisecond)
	m.ObserveChatDuration(300 * time.Millisecond)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	for _, want := range []string{
		`lighthouse_emails_sent_total{kind="acceptance"} 1`,
		`lighthouse_emails_failed_total{kind="rejection"} 1`,
		`lighthouse_chat_requests_total{outcome="ok"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q", want)
		}
	}
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.IncEmailSent("acceptance")
	m.IncEmailFailed("rejection")
	m.IncChatRequest("error")
	m.ObserveEmailSendDuration("reschedule", time.Second)
	m.ObserveChatDuration(time.Second)
}

func TestHTTPMiddlewareRecordsRequests(t *testing.T) {
	t.Parallel()

	m := NewMetrics()

	app := fiber.New()
	app.Use(m.HTTPMiddleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), `lighthouse_http_requests_total{method="GET",path="/ping",status="200"} 1`) {
		t.Fatal("http request counter was not recorded")
	}
}
