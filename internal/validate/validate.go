// Package validate holds the pure field validators used by the register,
// login, and profile forms. Each validator returns "" when the value is
// acceptable and a human-readable message otherwise; they never panic and
// never touch the network.
package validate

import "regexp"

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// Email checks for a plausible local@domain.tld shape.
func Email(v string) string {
	if v == "" {
		return "Please fill in this field."
	}
	if !emailRe.MatchString(v) {
		return "Please enter a valid email address!"
	}
	return ""
}

// Password requires a minimum length of five characters.
func Password(v string) string {
	if v == "" {
		return "Please fill in this field."
	}
	if len(v) < 5 {
		return "Password must be at least 5 characters long."
	}
	return ""
}

// Name requires a non-empty value.
func Name(v string) string {
	if v == "" {
		return "Please fill in this field."
	}
	return ""
}

// Phone accepts 10 to 15 digits and nothing else.
func Phone(v string) string {
	if v == "" {
		return "Please fill in this field."
	}
	if !phoneRe.MatchString(v) {
		return "Please enter a valid phone number!"
	}
	return ""
}
