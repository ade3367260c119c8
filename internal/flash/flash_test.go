package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetAndTake(t *testing.T) {
	rec := httptest.NewRecorder()
	Set(rec, "Store was created successfully")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()

	msg := Take(rec2, req)
	if msg != "Store was created successfully" {
		t.Errorf("message = %q, want %q", msg, "Store was created successfully")
	}

	// Take must clear the cookie
	var cleared bool
	for _, c := range rec2.Result().Cookies() {
		if c.Name == cookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected flash cookie to be cleared")
	}
}

func TestTakeWithoutFlash(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	if msg := Take(rec, req); msg != "" {
		t.Errorf("message = %q, want empty", msg)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no cookies written")
	}
}

func TestSetEscapesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Set(rec, "Item added; see list")

	cookie := rec.Result().Cookies()[0]
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})

	msg := Take(httptest.NewRecorder(), req)
	if msg != "Item added; see list" {
		t.Errorf("message = %q, want round-tripped original", msg)
	}
}
