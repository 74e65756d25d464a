package models

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordMatches(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := User{PasswordHash: string(hash)}

	ok, err := user.PasswordMatches("pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("correct password did not match")
	}

	ok, err = user.PasswordMatches("wrong")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("wrong password matched")
	}
}

func TestRegistrationStatusString(t *testing.T) {
	tests := []struct {
		status RegistrationStatus
		want   string
	}{
		{UserAlreadyExisted, "user already existed"},
		{UserCreatedSuccessfully, "user created successfully"},
		{UserCreatedFailed, "user creation failed"},
		{RegistrationStatus(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("status %d String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
