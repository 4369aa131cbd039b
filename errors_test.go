package envfile

import (
	"errors"
	"testing"
)

func TestMalformedLineError_Message(t *testing.T) {
	err := &MalformedLineError{Line: 3, Text: "A=B=C"}
	expected := `envfile: malformed key-value pair on line 3: "A=B=C"`
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestEmptyPairError_Message(t *testing.T) {
	err := &EmptyPairError{Key: "k", Value: ""}
	expected := `envfile: empty key-value pair (key="k", value="")`
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestErrors_MatchThroughWrapping(t *testing.T) {
	_, err := Load("testdata/does-not-exist.env", Options{})
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}

	_, err = ParseEnvironment("broken\n", Options{})
	var lineErr *MalformedLineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("expected MalformedLineError, got %T", err)
	}
}
