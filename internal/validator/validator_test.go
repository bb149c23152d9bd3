package validator

import "testing"

func TestValidator(t *testing.T) {
	var v Validator

	v.Check(NotBlank("ok"), "must not fail")
	v.CheckField(NotBlank("x"), "name", "cannot be blank")
	if v.HasErrors() {
		t.Fatalf("unexpected errors: %s", v)
	}

	v.Check(NotBlank("  "), "value cannot be blank")
	v.CheckField(MaxRunes("こんにちは", 3), "name", "too long")
	v.CheckField(NotBlank(""), "name", "cannot be blank")
	v.CheckField(MaxRunes("abcd", 3), "count", "not allowed")

	if !v.HasErrors() {
		t.Fatalf("expected errors")
	}
	if got := v.FieldErrors["name"]; got != "too long" {
		t.Fatalf("first field error must win, got %q", got)
	}
	if got, want := v.String(), "value cannot be blank; count not allowed; name too long"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
