package passwordhasher

import (
	"fmt"
	"just2kleen/internal/core/domain/account"
	"testing"
)

func TestSha256IsDeterministic(t *testing.T) {
	h := NewSha256()
	cases := []struct {
		password string
		expected string
	}{
		// SHA-256 digests of the raw passwords, matching what the
		// original registration flow stores.
		{
			password: "password",
			expected: "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		},
		{
			password: "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			password: "correct horse battery staple",
			expected: "c4bbcb1fbec99d65bf59d85c8cb62ee2db963f0fe106f483d9afa73bd4e39a8a",
		},
	}
	for _, c := range cases {
		t.Run(c.password, func(t *testing.T) {
			hash, err := h.HashPassword(account.RawPassword(c.password))
			if err != nil {
				t.Fatalf("could not hash password: %v", err)
			}
			if string(hash) != c.expected {
				t.Fatalf("unexpected hash: got %v, want %v", hash, c.expected)
			}
			if !h.ValidatePassword(account.RawPassword(c.password), hash) {
				t.Fatalf("password check failed: %v", c.password)
			}
			if h.ValidatePassword(account.RawPassword(c.password+" "), hash) {
				t.Fatalf("password check passed for a different password: %v", c.password)
			}
		})
	}
}

func TestBcryptPasswordValid(t *testing.T) {
	type testcase struct {
		ix       int
		secret   string
		cost     int
		password string
	}
	cases := []testcase{
		{ix: 1, secret: "test", cost: 5, password: "test"},
		{ix: 2, secret: "", cost: 5, password: ""},
		{ix: 3, secret: "a", cost: 7, password: "password password"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprint(c.ix), func(t *testing.T) {
			h := NewBcrypt(c.secret, c.cost)
			hash, err := h.HashPassword(account.RawPassword(c.password))
			if err != nil {
				t.Fatalf("could not hash password: %v, %v", c.password, err)
			}
			if hash == account.PasswordHash("") {
				t.Fatal("hash must not be empty")
			}
			if !h.ValidatePassword(account.RawPassword(c.password), hash) {
				t.Fatalf("password check failed: %v", c.password)
			}
		})
	}
}

func TestBcryptPasswordInvalid(t *testing.T) {
	type testcase struct {
		ix              int
		secretToHash    string
		secretToCheck   string
		passwordToHash  string
		passwordToCheck string
	}
	cases := []testcase{
		{ix: 1, secretToHash: "test", secretToCheck: "test", passwordToHash: "test", passwordToCheck: "test "},
		{ix: 2, secretToHash: "test", secretToCheck: "test ", passwordToHash: "test", passwordToCheck: "test"},
		{ix: 3, secretToHash: "", secretToCheck: "", passwordToHash: "", passwordToCheck: " "},
	}
	for _, c := range cases {
		t.Run(fmt.Sprint(c.ix), func(t *testing.T) {
			h := NewBcrypt(c.secretToHash, 5)
			hash, err := h.HashPassword(account.RawPassword(c.passwordToHash))
			if err != nil {
				t.Fatalf("could not hash password: %v, %v", c.passwordToHash, err)
			}

			h = NewBcrypt(c.secretToCheck, 5)
			if h.ValidatePassword(account.RawPassword(c.passwordToCheck), hash) {
				t.Fatalf("password check passed: %v, %v", c.passwordToHash, c.passwordToCheck)
			}
		})
	}
}
