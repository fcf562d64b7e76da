package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "pw1" || hash == "" {
		t.Fatalf("HashPassword() returned plaintext or empty: %q", hash)
	}
	if !VerifyPassword("pw1", hash) {
		t.Error("VerifyPassword() = false for correct password")
	}
	if VerifyPassword("pw2", hash) {
		t.Error("VerifyPassword() = true for wrong password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical; salting is broken")
	}
}
