package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/member-api/member_api/internal/logging"
)

func setupIdempotencyApp(t *testing.T) (*fiber.App, *atomic.Int64, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := fiber.New()
	app.Use(Idempotency(cache, time.Minute, logging.Discard()))

	var hits atomic.Int64
	app.Post("/resource", func(c *fiber.Ctx) error {
		hits.Add(1)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
	})

	cleanup := func() {
		cache.Close()
		mr.Close()
	}
	return app, &hits, cleanup
}

func postResource(t *testing.T, app *fiber.App, key string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/resource", strings.NewReader("{}"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if key != "" {
		req.Header.Set(idempotencyKeyHeader, key)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode, string(body)
}

func TestIdempotencyOptionalWithoutHeader(t *testing.T) {
	app, hits, cleanup := setupIdempotencyApp(t)
	defer cleanup()

	for i := 0; i < 2; i++ {
		if status, _ := postResource(t, app, ""); status != fiber.StatusCreated {
			t.Fatalf("request %d: expected %d got %d", i, fiber.StatusCreated, status)
		}
	}
	// Without a key every request reaches the handler.
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected 2 handler invocations, got %d", got)
	}
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	app, hits, cleanup := setupIdempotencyApp(t)
	defer cleanup()

	status, body := postResource(t, app, "abc123")
	if status != fiber.StatusCreated {
		t.Fatalf("first request: expected %d got %d", fiber.StatusCreated, status)
	}

	status2, body2 := postResource(t, app, "abc123")
	if status2 != fiber.StatusCreated {
		t.Fatalf("replay: expected %d got %d", fiber.StatusCreated, status2)
	}
	if body2 != body {
		t.Fatalf("replay body mismatch: %q vs %q", body2, body)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected 1 handler invocation, got %d", got)
	}
}

func TestIdempotencyConcurrentDuplicate(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	app := fiber.New()
	app.Use(Idempotency(cache, time.Minute, logging.Discard()))

	var hits atomic.Int64
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	app.Post("/resource", func(c *fiber.Ctx) error {
		hits.Add(1)
		entered <- struct{}{}
		<-release
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
	})

	firstStatus := make(chan int, 1)
	go func() {
		req := httptest.NewRequest(fiber.MethodPost, "/resource", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(idempotencyKeyHeader, "race-key")
		resp, err := app.Test(req, -1)
		if err != nil {
			firstStatus <- 0
			return
		}
		resp.Body.Close()
		firstStatus <- resp.StatusCode
	}()

	// The first request holds the reservation while blocked in the handler;
	// a duplicate arriving now must be turned away, not processed twice.
	<-entered
	status, _ := postResource(t, app, "race-key")
	if status != fiber.StatusConflict {
		t.Fatalf("duplicate in flight: expected %d got %d", fiber.StatusConflict, status)
	}

	close(release)
	if status := <-firstStatus; status != fiber.StatusCreated {
		t.Fatalf("first request: expected %d got %d", fiber.StatusCreated, status)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected 1 handler invocation, got %d", got)
	}
}

func TestIdempotencyDistinctKeys(t *testing.T) {
	app, hits, cleanup := setupIdempotencyApp(t)
	defer cleanup()

	postResource(t, app, "key-1")
	postResource(t, app, "key-2")

	if got := hits.Load(); got != 2 {
		t.Fatalf("expected 2 handler invocations, got %d", got)
	}
}
