package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"clinicadmin_go/services/websocket"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	SetupRoutes(app, websocket.NewHub())
	return app
}

// The WebSocket endpoint authenticates via query token inside the handler,
// so the x-access-token header middleware must never intercept /ws.
func TestWebSocketRouteNotBehindHeaderAuth(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/ws?token=some-jwt", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode == fiber.StatusUnauthorized {
		t.Fatalf("/ws answered 401; header auth is blocking the upgrade path")
	}
	// Without upgrade headers the gate must ask for an upgrade, proving the
	// request reached it
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("/ws status = %d, want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}
}

// Unknown paths must fall through to the not-found handling instead of being
// swallowed by auth middleware.
func TestUnknownRouteFallsThroughToNotFound(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/no-such-route", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("unknown route status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}
}

// REST endpoints keep the header auth in front of them.
func TestProtectedRouteRequiresToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/booking/doctor", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("/booking/doctor without token status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
