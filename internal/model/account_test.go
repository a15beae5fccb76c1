package model

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAccount_JSONOmitsPassword(t *testing.T) {
	t.Parallel()

	account := Account{
		ID:       primitive.NewObjectID(),
		Name:     "Nguyen Van A",
		Email:    "a@example.com",
		Password: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
	}

	data, err := json.Marshal(account)
	if err != nil {
		t.Fatalf("marshal account: %v", err)
	}

	body := string(data)
	if strings.Contains(body, "password") || strings.Contains(body, "argon2id") {
		t.Errorf("serialized account leaks password material: %s", body)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal account: %v", err)
	}
	if _, ok := decoded["name"]; !ok {
		t.Error("expected name field in serialized account")
	}
	if _, ok := decoded["email"]; !ok {
		t.Error("expected email field in serialized account")
	}
}
