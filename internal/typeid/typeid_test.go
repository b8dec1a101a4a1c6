package typeid

import (
	"strings"
	"testing"
)

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == b {
		t.Error("expected unique ids")
	}
	if !strings.HasPrefix(a, PrefixSession+"_") {
		t.Errorf("expected %s prefix, got %s", PrefixSession, a)
	}
	if err := Validate(a, PrefixSession); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(NewSnapshotID(), PrefixSession); err == nil {
		t.Error("expected prefix mismatch")
	}
	if err := Validate("not an id", PrefixSession); err == nil {
		t.Error("expected parse error")
	}
}
