package validation

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	AppID int    `json:"appid" validate:"required,gt=0"`
	Mood  string `json:"mood" validate:"omitempty,oneof=Focused Chill"`
	Notes string `json:"notes" validate:"max=5"`
}

func TestStructPasses(t *testing.T) {
	if err := Struct(sample{AppID: 1, Mood: "Chill", Notes: "ok"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{Mood: "Angry", Notes: "too long"})

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %+v", verr.Fields)
	}
	msg := verr.Error()
	for _, want := range []string{"appid is required", "mood must be one of: Focused Chill", "notes must be at most 5 characters"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestValidatorIsShared(t *testing.T) {
	if Validator() != Validator() {
		t.Fatal("expected a single validator instance")
	}
}
