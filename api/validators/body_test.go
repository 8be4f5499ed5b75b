package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/freshkart/freshkart-backend/pkg/errors"
)

type samplePayload struct {
	Email    string `json:"email" validate:"required,email"`
	Quantity int    `json:"quantity" validate:"min=0,max=99"`
}

func TestDecodeJSONBody_Valid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com","quantity":2}`))
	var dest samplePayload
	if err := DecodeJSONBody(r, &dest); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dest.Email != "a@b.com" || dest.Quantity != 2 {
		t.Fatalf("unexpected payload %+v", dest)
	}
}

func TestDecodeJSONBody_UnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com","bogus":true}`))
	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBody_FieldMessagesUseJSONNames(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"nope","quantity":3}`))
	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("details = %#v", typed.Details())
	}
	if _, ok := details["email"]; !ok {
		t.Fatalf("expected json field name in details, got %v", details)
	}
}

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=30", nil)
	got, err := ParseQueryInt(r, "limit", 25, 1, 100)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 30 {
		t.Fatalf("limit = %d, want 30", got)
	}

	r = httptest.NewRequest("GET", "/", nil)
	got, err = ParseQueryInt(r, "limit", 25, 1, 100)
	if err != nil || got != 25 {
		t.Fatalf("default: got %d, %v", got, err)
	}

	r = httptest.NewRequest("GET", "/?limit=500", nil)
	if _, err := ParseQueryInt(r, "limit", 25, 1, 100); err == nil {
		t.Fatal("expected range error")
	}

	r = httptest.NewRequest("GET", "/?limit=abc", nil)
	if _, err := ParseQueryInt(r, "limit", 25, 1, 100); err == nil {
		t.Fatal("expected numeric error")
	}
}

func TestParseQueryUUID(t *testing.T) {
	r := httptest.NewRequest("GET", "/?category_id=6a5b9f2e-8d3c-4f1a-9e7b-2c4d6e8f0a1b", nil)
	id, err := ParseQueryUUID(r, "category_id")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id == nil {
		t.Fatal("expected id")
	}

	r = httptest.NewRequest("GET", "/", nil)
	id, err = ParseQueryUUID(r, "category_id")
	if err != nil || id != nil {
		t.Fatalf("absent param: got %v, %v", id, err)
	}

	r = httptest.NewRequest("GET", "/?category_id=nope", nil)
	if _, err := ParseQueryUUID(r, "category_id"); err == nil {
		t.Fatal("expected uuid error")
	}
}
