package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !VerifyPassword(hash, "secret1") {
		t.Error("expected stored hash to verify its own plaintext")
	}
	if VerifyPassword(hash, "secret2") {
		t.Error("expected a different plaintext to fail verification")
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	second, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same input must differ")
	}
	if !VerifyPassword(first, "secret1") || !VerifyPassword(second, "secret1") {
		t.Error("both hashes must still verify the plaintext")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if VerifyPassword("not-a-bcrypt-hash", "secret1") {
		t.Error("malformed stored hash must not verify")
	}
	if VerifyPassword("", "secret1") {
		t.Error("empty stored hash must not verify")
	}
}
