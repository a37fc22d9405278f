package validation

import (
	"regexp"
	"strings"
)

// Input carries the raw contact-form fields exactly as submitted.
type Input struct {
	Name    string
	Email   string
	Title   string
	Message string
}

// Normalized is a submission after trimming, ready for persistence.
type Normalized struct {
	Name    string
	Email   string
	Title   string
	Message string
}

// Errors is the list of human-readable validation failures for one
// submission. It implements error so callers can distinguish rejected
// input from operational failures with errors.As.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

// Policy selects which historical validation rules a deployment enforces.
// The two rule sets diverged in the original deployments and are kept
// separate on purpose; a deployment picks exactly one.
type Policy struct {
	// RequireTitle makes title a required field.
	RequireTitle bool
	// MinMessageLen is the minimum trimmed message length.
	MinMessageLen int
	// MinNameLen is the minimum trimmed name length; 0 disables the rule.
	MinNameLen int
	// FailFast aborts on the first blank required field with a single
	// generic error instead of accumulating per-field errors.
	FailFast bool
}

// Lenient accumulates every failure: name, email and message required,
// message at least 5 characters, name at least 2. Title is optional.
var Lenient = Policy{MinMessageLen: 5, MinNameLen: 2}

// Strict additionally requires title, raises the message minimum to 10 and
// short-circuits on the first missing field.
var Strict = Policy{RequireTitle: true, MinMessageLen: 10, FailFast: true}

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidEmail reports whether addr matches the local@domain.tld pattern
// with a TLD of at least two letters.
func ValidEmail(addr string) bool {
	return emailRe.MatchString(addr)
}

// Validate checks in against the policy. On success it returns the trimmed
// fields; on failure it returns a non-empty Errors. Pure and deterministic,
// no I/O.
func (p Policy) Validate(in Input) (Normalized, error) {
	n := Normalized{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Title:   strings.TrimSpace(in.Title),
		Message: strings.TrimSpace(in.Message),
	}

	if p.FailFast {
		if err := p.validateStrict(n); err != nil {
			return Normalized{}, err
		}
		return n, nil
	}
	if err := p.validateAccumulate(n); err != nil {
		return Normalized{}, err
	}
	return n, nil
}

// validateStrict mirrors the all-or-nothing deployment: any blank required
// field yields the single generic error, then email format and message
// length are checked in order.
func (p Policy) validateStrict(n Normalized) error {
	required := []string{n.Name, n.Email, n.Message}
	if p.RequireTitle {
		required = append(required, n.Title)
	}
	for _, v := range required {
		if v == "" {
			return Errors{"All fields are required"}
		}
	}
	if !ValidEmail(n.Email) {
		return Errors{"Invalid email format"}
	}
	if len([]rune(n.Message)) < p.MinMessageLen {
		return Errors{"Message must be at least " + itoa(p.MinMessageLen) + " characters"}
	}
	return nil
}

// validateAccumulate collects every failure before returning.
func (p Policy) validateAccumulate(n Normalized) error {
	var errs Errors

	fields := []struct {
		label string
		value string
	}{
		{"Name", n.Name},
		{"Email", n.Email},
		{"Message", n.Message},
	}
	if p.RequireTitle {
		fields = append(fields, struct {
			label string
			value string
		}{"Title", n.Title})
	}
	for _, f := range fields {
		if f.value == "" {
			errs = append(errs, f.label+" is required")
		}
	}

	if n.Email != "" && !ValidEmail(n.Email) {
		errs = append(errs, "Invalid email format")
	}
	if n.Message != "" && len([]rune(n.Message)) < p.MinMessageLen {
		errs = append(errs, "Message must be at least "+itoa(p.MinMessageLen)+" characters long")
	}
	if p.MinNameLen > 0 && n.Name != "" && len([]rune(n.Name)) < p.MinNameLen {
		errs = append(errs, "Name must be at least "+itoa(p.MinNameLen)+" characters long")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// itoa covers the single- and double-digit minimums used by the policies.
func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
