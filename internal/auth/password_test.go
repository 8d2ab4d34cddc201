package auth

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "hunter2" {
		t.Errorf("hash must differ from the plaintext")
	}
	if err := ComparePassword(hash, "hunter2"); err != nil {
		t.Errorf("correct password must verify: %v", err)
	}
	if err := ComparePassword(hash, "hunter3"); err == nil {
		t.Errorf("wrong password must not verify")
	}
}
