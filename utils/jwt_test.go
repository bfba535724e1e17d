package utils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "ada@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ClaimsFromToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Email != "ada@example.com" {
		t.Errorf("Email = %q, want ada@example.com", claims.Email)
	}
	if claims.Role != "user" {
		t.Errorf("Role = %q, want user", claims.Role)
	}
}

func TestClaimsFromTokenRejectsGarbage(t *testing.T) {
	if _, err := ClaimsFromToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestClaimsFromTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken("user-1", "ada@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	tampered := token[:len(token)-4] + "AAAA"
	if _, err := ClaimsFromToken(tampered); err == nil {
		t.Fatal("expected error for tampered signature")
	}
}
