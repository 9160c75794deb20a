package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	fields := formErrors(err)
	require.NotNil(t, fields)
	return fields
}

func TestRegisterForm_Valid(t *testing.T) {
	f := registerForm{Name: "Asha", Email: "a@x.com", Contact: "123", Password: "pw1234", ConfirmPassword: "pw1234"}
	assert.NoError(t, f.Validate())
}

func TestRegisterForm_ShortValuesAccepted(t *testing.T) {
	f := registerForm{Name: "A", Email: "a@x.com", Contact: "123", Password: "pw1", ConfirmPassword: "pw1"}
	assert.NoError(t, f.Validate())
}

func TestRegisterForm_Invalid(t *testing.T) {
	f := registerForm{Name: strings.Repeat("n", 101), Email: "not-an-email", Contact: "12ab", Password: "pw", ConfirmPassword: "px"}
	fields := fieldsOf(t, f.Validate())

	assert.Contains(t, fields["name"], "between 1 and 100")
	assert.Equal(t, msgInvalidEmail, fields["email"])
	assert.Equal(t, msgInvalidPhone, fields["contact"])
	assert.Equal(t, msgMismatch, fields["confirm_password"])
	assert.NotContains(t, fields, "password")
}

func TestPasswordCheck_BcryptLimit(t *testing.T) {
	atLimit := strings.Repeat("p", maxPasswordLen)
	assert.NoError(t, (&resetPasswordForm{Password: atLimit, ConfirmPassword: atLimit}).Validate())

	tooLong := strings.Repeat("p", maxPasswordLen+8)
	fields := fieldsOf(t, (&registerForm{Name: "A", Email: "a@x.com", Contact: "123", Password: tooLong, ConfirmPassword: tooLong}).Validate())
	assert.Equal(t, msgPasswordLong, fields["password"])

	fields = fieldsOf(t, (&resetPasswordForm{Password: tooLong, ConfirmPassword: tooLong}).Validate())
	assert.Equal(t, msgPasswordLong, fields["password"])
}

func TestRegisterForm_RequiredFields(t *testing.T) {
	fields := fieldsOf(t, (&registerForm{}).Validate())
	for _, name := range []string{"name", "email", "contact", "password", "confirm_password"} {
		assert.Equal(t, msgRequired, fields[name], name)
	}
}

func TestLoginForm(t *testing.T) {
	assert.NoError(t, (&loginForm{Email: "a@x.com", Password: "x"}).Validate())

	fields := fieldsOf(t, (&loginForm{Email: "a@x.com"}).Validate())
	assert.Equal(t, msgRequired, fields["password"])
}

func TestEmailCheck_RejectsDisplayNames(t *testing.T) {
	fields := fieldsOf(t, (&forgotPasswordForm{Email: "Asha <a@x.com>"}).Validate())
	assert.Equal(t, msgInvalidEmail, fields["email"])
}

func TestEnterOTPForm(t *testing.T) {
	assert.NoError(t, (&enterOTPForm{OTP: "123456"}).Validate())
	fields := fieldsOf(t, (&enterOTPForm{OTP: "  "}).Validate())
	assert.Equal(t, msgRequired, fields["otp"])
}

func TestResetPasswordForm(t *testing.T) {
	assert.NoError(t, (&resetPasswordForm{Password: "secret1", ConfirmPassword: "secret1"}).Validate())

	fields := fieldsOf(t, (&resetPasswordForm{Password: "secret1", ConfirmPassword: "secret2"}).Validate())
	assert.Equal(t, msgMismatch, fields["confirm_password"])
}

func TestEnquiryForm(t *testing.T) {
	ok := enquiryForm{FirstName: "Asha", LastName: "Rao", Contact: "+919876543210", Email: "asha@x.com"}
	assert.NoError(t, ok.Validate())

	bad := enquiryForm{FirstName: "Asha", Contact: "98765 43210", Email: "asha@x.com"}
	fields := fieldsOf(t, bad.Validate())
	assert.Equal(t, msgRequired, fields["last_name"])
	assert.Equal(t, msgInvalidPhone, fields["contact"])
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "two", "a": "one"}}
	assert.Equal(t, "invalid form: a: one; b: two", err.Error())
}
