package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeRole(t *testing.T) {
	for _, known := range []string{RoleAdministrator, RoleOrganization, RoleEventManager, RoleIndividual} {
		if got := NormalizeRole(known); got != known {
			t.Fatalf("known role %s must pass through, got %s", known, got)
		}
	}
	for _, bad := range []string{"", "root", "ADMIN", "administrator "} {
		if got := NormalizeRole(bad); got != RoleIndividual {
			t.Fatalf("role %q should default to %s, got %s", bad, RoleIndividual, got)
		}
	}
}

func TestUser_PasswordHashNotSerialized(t *testing.T) {
	u := User{ID: "1", Username: "alice", PasswordHash: "$2a$10$something"}
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "2a$10") || strings.Contains(string(b), "password_hash") {
		t.Fatalf("password hash leaked into JSON: %s", b)
	}
}
