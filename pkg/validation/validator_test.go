package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testForm struct {
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required"`
	Repassword string `validate:"required,eqfield=Password"`
}

var testMessages = map[string]string{
	"Name":                "name is missing",
	"Email":               "email is invalid",
	"Password":            "password is missing",
	"Repassword.required": "confirmation is missing",
	"Repassword.eqfield":  "passwords differ",
}

func TestStruct_CollectsAllViolationsInOrder(t *testing.T) {
	msgs := Struct(testForm{}, testMessages)

	var got []string
	for _, m := range msgs {
		got = append(got, m.Msg)
	}
	assert.Equal(t, []string{
		"name is missing",
		"email is invalid",
		"password is missing",
		"confirmation is missing",
	}, got)
}

func TestStruct_TagSpecificMessageWins(t *testing.T) {
	msgs := Struct(testForm{Name: "Ana", Email: "ana@example.com", Password: "secret1", Repassword: "other"}, testMessages)

	assert.Equal(t, []Message{{Msg: "passwords differ"}}, msgs)
}

func TestStruct_ValidFormHasNoMessages(t *testing.T) {
	msgs := Struct(testForm{Name: "Ana", Email: "ana@example.com", Password: "secret1", Repassword: "secret1"}, testMessages)

	assert.Empty(t, msgs)
}

func TestStruct_FallbackMessage(t *testing.T) {
	msgs := Struct(testForm{Name: "Ana", Email: "nope", Password: "secret1", Repassword: "secret1"}, map[string]string{})

	assert.Equal(t, []Message{{Msg: "The Email field is not valid."}}, msgs)
}
