package auth

import (
	"context"
	"testing"
)

func TestWithAuthRoundTrip(t *testing.T) {
	ac := AuthContext{UserID: 7, Username: "alice", SessionID: 3}
	ctx := WithAuth(context.Background(), ac)

	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected AuthContext in context")
	}
	if got != ac {
		t.Errorf("got %+v, want %+v", got, ac)
	}
}

func TestFromContextEmpty(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("expected no AuthContext in empty context")
	}
}

func TestAccessorsAnonymous(t *testing.T) {
	ctx := context.Background()
	if id := UserID(ctx); id != 0 {
		t.Errorf("UserID = %d, want 0", id)
	}
	if name := Username(ctx); name != "" {
		t.Errorf("Username = %q, want empty", name)
	}
}

func TestAccessorsAuthenticated(t *testing.T) {
	ctx := WithAuth(context.Background(), AuthContext{UserID: 42, Username: "bob"})
	if id := UserID(ctx); id != 42 {
		t.Errorf("UserID = %d, want 42", id)
	}
	if name := Username(ctx); name != "bob" {
		t.Errorf("Username = %q, want %q", name, "bob")
	}
}
