package utils

import (
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want user-123", claims.UserID)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")

	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	InitJWT("secret-a")
	token, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	InitJWT("secret-b")
	if _, err := ParseToken(token); err == nil {
		t.Error("expected an error for a token signed with another key")
	}
}
