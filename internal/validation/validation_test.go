package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestLenient_Valid(t *testing.T) {
	n, err := Lenient.Validate(Input{
		Name:    "  Al ",
		Email:   " a@b.co ",
		Message: " Hello there ",
	})
	if err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
	if n.Name != "Al" || n.Email != "a@b.co" || n.Message != "Hello there" {
		t.Errorf("expected trimmed fields, got %+v", n)
	}
}

func TestLenient_AccumulatesAllErrors(t *testing.T) {
	_, err := Lenient.Validate(Input{})
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected Errors, got %v", err)
	}
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors (name, email, message), got %d: %v", len(errs), errs)
	}
	for _, want := range []string{"Name is required", "Email is required", "Message is required"} {
		found := false
		for _, e := range errs {
			if e == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing error %q in %v", want, errs)
		}
	}
}

func TestLenient_NameTooShort(t *testing.T) {
	_, err := Lenient.Validate(Input{Name: "A", Email: "a@b.co", Message: "Hello there"})
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected Errors, got %v", err)
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "Name must be at least 2 characters") {
		t.Errorf("expected name-length error, got %v", errs)
	}
}

func TestLenient_MessageTooShort(t *testing.T) {
	_, err := Lenient.Validate(Input{Name: "Al", Email: "a@b.co", Message: "Hi"})
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected Errors, got %v", err)
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "at least 5 characters") {
		t.Errorf("expected message-length error, got %v", errs)
	}
}

func TestLenient_InvalidEmail(t *testing.T) {
	invalid := []string{
		"not-an-email",
		"missing-domain@",
		"@missing-local.com",
		"no-dot@domain",
		"short-tld@domain.a",
		"spaces in@local.com",
	}
	for _, addr := range invalid {
		_, err := Lenient.Validate(Input{Name: "Al", Email: addr, Message: "Hello there"})
		var errs Errors
		if !errors.As(err, &errs) {
			t.Errorf("%q: expected Errors, got %v", addr, err)
			continue
		}
		found := false
		for _, e := range errs {
			if e == "Invalid email format" {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: expected email-format error, got %v", addr, errs)
		}
	}
}

func TestValidEmail_Accepts(t *testing.T) {
	valid := []string{
		"a@b.co",
		"first.last@example.com",
		"user+tag@sub.domain.org",
		"UPPER_case%x@host.io",
	}
	for _, addr := range valid {
		if !ValidEmail(addr) {
			t.Errorf("expected %q to be valid", addr)
		}
	}
}

func TestLenient_TitleOptional(t *testing.T) {
	if _, err := Lenient.Validate(Input{Name: "Al", Email: "a@b.co", Message: "Hello there"}); err != nil {
		t.Errorf("title should be optional under lenient policy, got %v", err)
	}
}

func TestStrict_MissingFieldShortCircuits(t *testing.T) {
	_, err := Strict.Validate(Input{Name: "Al", Email: "a@b.co", Message: "long enough message"})
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected Errors, got %v", err)
	}
	if len(errs) != 1 || errs[0] != "All fields are required" {
		t.Errorf("expected single generic error, got %v", errs)
	}
}

func TestStrict_MessageMinimumTen(t *testing.T) {
	_, err := Strict.Validate(Input{Name: "Al", Email: "a@b.co", Title: "Hi", Message: "too short"})
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected Errors, got %v", err)
	}
	if len(errs) != 1 || errs[0] != "Message must be at least 10 characters" {
		t.Errorf("expected strict message-length error, got %v", errs)
	}
}

func TestStrict_Valid(t *testing.T) {
	n, err := Strict.Validate(Input{
		Name:    "Al",
		Email:   "a@b.co",
		Title:   "Project inquiry",
		Message: "Hello there, I have a question.",
	})
	if err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
	if n.Title != "Project inquiry" {
		t.Errorf("expected title preserved, got %q", n.Title)
	}
}

func TestValidate_BlankAfterTrimming(t *testing.T) {
	_, err := Lenient.Validate(Input{Name: "   ", Email: "a@b.co", Message: "Hello there"})
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected Errors, got %v", err)
	}
	if len(errs) != 1 || errs[0] != "Name is required" {
		t.Errorf("whitespace-only name should count as missing, got %v", errs)
	}
}
