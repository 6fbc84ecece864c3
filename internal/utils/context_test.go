// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-sudoku-backend/models"
)

func TestContextKeyString(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
	if PrincipalCtxKey.String() != "principal" {
		t.Errorf("expected 'principal', got '%s'", PrincipalCtxKey.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != 42 {
		t.Errorf("expected userID=42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetPrincipalFromContext_DefaultsToAnonymous(t *testing.T) {
	principal := GetPrincipalFromContext(context.Background())
	if principal != models.Anonymous {
		t.Errorf("expected anonymous principal, got %+v", principal)
	}
	if principal.Authenticated {
		t.Error("anonymous principal must not be authenticated")
	}
}

func TestWithPrincipal_RoundTrip(t *testing.T) {
	ctx := WithPrincipal(context.Background(), models.NewPrincipal(7))

	principal := GetPrincipalFromContext(ctx)
	if !principal.Authenticated || principal.UserID != 7 {
		t.Errorf("expected authenticated principal 7, got %+v", principal)
	}
}
