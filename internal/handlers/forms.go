package handlers

import (
	"net/mail"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	msgRequired     = "This field is required."
	msgInvalidEmail = "Invalid email address."
	msgInvalidPhone = "Enter a valid contact number."
	msgPasswordLong = "Password must be at most 72 bytes long."
	msgMismatch     = "Passwords must match."
	maxPasswordLen  = 72 // bcrypt input limit
)

// ValidationError maps form field names to the first problem found with them.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

type fieldChecks map[string]string

func (f fieldChecks) fail(field, msg string) {
	if _, seen := f[field]; !seen {
		f[field] = msg
	}
}

func (f fieldChecks) required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		f.fail(field, msgRequired)
		return false
	}
	return true
}

func (f fieldChecks) length(field, value string, min, max int) {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if n < min || n > max {
		f.fail(field, "Field must be between "+strconv.Itoa(min)+" and "+strconv.Itoa(max)+" characters long.")
	}
}

func (f fieldChecks) email(field, value string) {
	if !f.required(field, value) {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != strings.TrimSpace(value) || !strings.Contains(addr.Address, ".") {
		f.fail(field, msgInvalidEmail)
	}
}

func (f fieldChecks) phone(field, value string) {
	if !f.required(field, value) {
		return
	}
	digits := strings.TrimPrefix(strings.TrimSpace(value), "+")
	if len(digits) < 3 || len(digits) > 15 {
		f.fail(field, msgInvalidPhone)
		return
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			f.fail(field, msgInvalidPhone)
			return
		}
	}
}

func (f fieldChecks) password(field, confirmField, password, confirm string) {
	if f.required(field, password) && len(password) > maxPasswordLen {
		f.fail(field, msgPasswordLong)
	}
	if f.required(confirmField, confirm) && confirm != password {
		f.fail(confirmField, msgMismatch)
	}
}

func (f fieldChecks) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

type registerForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Contact         string `form:"contact"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (f *registerForm) Validate() error {
	c := fieldChecks{}
	if c.required("name", f.Name) {
		c.length("name", f.Name, 1, 100)
	}
	c.email("email", f.Email)
	c.phone("contact", f.Contact)
	c.password("password", "confirm_password", f.Password, f.ConfirmPassword)
	return c.err()
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f *loginForm) Validate() error {
	c := fieldChecks{}
	c.email("email", f.Email)
	c.required("password", f.Password)
	return c.err()
}

type forgotPasswordForm struct {
	Email string `form:"email"`
}

func (f *forgotPasswordForm) Validate() error {
	c := fieldChecks{}
	c.email("email", f.Email)
	return c.err()
}

type enterOTPForm struct {
	OTP string `form:"otp"`
}

func (f *enterOTPForm) Validate() error {
	c := fieldChecks{}
	c.required("otp", f.OTP)
	return c.err()
}

type resetPasswordForm struct {
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (f *resetPasswordForm) Validate() error {
	c := fieldChecks{}
	c.password("password", "confirm_password", f.Password, f.ConfirmPassword)
	return c.err()
}

type enquiryForm struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Contact   string `form:"contact"`
	Email     string `form:"email"`
}

func (f *enquiryForm) Validate() error {
	c := fieldChecks{}
	if c.required("first_name", f.FirstName) {
		c.length("first_name", f.FirstName, 1, 50)
	}
	if c.required("last_name", f.LastName) {
		c.length("last_name", f.LastName, 1, 50)
	}
	c.phone("contact", f.Contact)
	c.email("email", f.Email)
	return c.err()
}
