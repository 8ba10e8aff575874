package validation

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth_backend/internal/feature/auth/transport/http/dto"
)

// bindRegister runs a JSON body through gin's binding layer and returns the
// binding error, exercising the same path the handlers use.
func bindRegister(t *testing.T, body string) error {
	t.Helper()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/register", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req dto.RegisterReq
	return c.ShouldBindJSON(&req)
}

func TestConvert_AllFieldsMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	err := bindRegister(t, `{}`)
	require.Error(t, err)

	errs := Convert(err)

	assert.Equal(t, Errors{
		"name":         {"Please enter your name."},
		"email":        {"Please enter your email address."},
		"password":     {"Please enter your password."},
		"phone_number": {"Please enter your phone number."},
	}, errs)
}

func TestConvert_AllRulesViolated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	err := bindRegister(t, `{"name":"abc","email":"not-an-email","password":"abc","phone_number":"12ab"}`)
	require.Error(t, err)

	errs := Convert(err)

	assert.Equal(t, []string{"Name must be at least 5 characters long."}, errs["name"])
	assert.Equal(t, []string{"Please enter a valid email address."}, errs["email"])
	assert.Equal(t, []string{"Password must be at least 5 characters long."}, errs["password"])
	assert.Equal(t, []string{"Phone number must be exactly 10 digits long."}, errs["phone_number"])
}

func TestConvert_UpperBounds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	longName := make([]byte, 151)
	longPassword := make([]byte, 26)
	for i := range longName {
		longName[i] = 'a'
	}
	for i := range longPassword {
		longPassword[i] = 'a'
	}

	err := bindRegister(t, `{"name":"`+string(longName)+`","email":"a@example.com","password":"`+string(longPassword)+`","phone_number":"1234567890"}`)
	require.Error(t, err)

	errs := Convert(err)

	assert.Equal(t, []string{"Name must not exceed 150 characters."}, errs["name"])
	assert.Equal(t, []string{"Password must not exceed 25 characters."}, errs["password"])
	assert.NotContains(t, errs, "email")
	assert.NotContains(t, errs, "phone_number")
}

func TestConvert_NonDigitPhoneNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	err := bindRegister(t, `{"name":"Alice Smith","email":"a@example.com","password":"secret","phone_number":"12345abcde"}`)
	require.Error(t, err)

	errs := Convert(err)

	assert.Equal(t, []string{"Phone number must be exactly 10 digits long."}, errs["phone_number"])
}

func TestConvert_MalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	err := bindRegister(t, `{not json`)
	require.Error(t, err)

	errs := Convert(err)

	assert.Equal(t, Errors{"body": {MsgMalformedBody}}, errs)
}

func TestConvert_NonBindingError(t *testing.T) {
	errs := Convert(errors.New("something else"))

	assert.Equal(t, Errors{"body": {MsgMalformedBody}}, errs)
}

func TestErrors_First(t *testing.T) {
	errs := Errors{
		"password": {"Please enter your password."},
		"name":     {"Please enter your name."},
	}

	// Field declaration order wins over map order
	assert.Equal(t, "Please enter your name.", errs.First())

	assert.Equal(t, "", Errors{}.First())
	assert.Equal(t, "custom", Errors{"body": {"custom"}}.First())
}

func TestEmailTaken(t *testing.T) {
	errs := EmailTaken()

	assert.Equal(t, Errors{"email": {MsgEmailTaken}}, errs)
	assert.Contains(t, errs.First(), "already taken")
}
