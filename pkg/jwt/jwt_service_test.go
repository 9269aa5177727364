package jwt

import (
	"strings"
	"testing"
)

func TestGenerateTokenUser_RoundTrip(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret")

	token := svc.GenerateTokenUser("user-123", "donor")
	if token == "" {
		t.Fatalf("expected a token, got empty string")
	}

	id, role, err := svc.GetUserIDByToken(token)
	if err != nil {
		t.Fatalf("GetUserIDByToken returned error: %v", err)
	}
	if id != "user-123" {
		t.Fatalf("unexpected user id: %s", id)
	}
	if role != "donor" {
		t.Fatalf("unexpected role: %s", role)
	}
}

func TestGetUserIDByToken_WrongSecret(t *testing.T) {
	issuer := NewJWTServiceWithSecret("secret-a")
	verifier := NewJWTServiceWithSecret("secret-b")

	token := issuer.GenerateTokenUser("user-123", "recipient")

	if _, _, err := verifier.GetUserIDByToken(token); err == nil {
		t.Fatalf("expected validation to fail with a different secret")
	}
}

func TestGetUserIDByToken_TamperedToken(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret")

	token := svc.GenerateTokenUser("user-123", "recipient")
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token format")
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA"

	if _, _, err := svc.GetUserIDByToken(tampered); err == nil {
		t.Fatalf("expected validation to fail for tampered token")
	}
}
