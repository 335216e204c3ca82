package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleReq struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidateOK(t *testing.T) {
	errs := Validate(sampleReq{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	assert.Nil(t, errs)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	errs := Validate(sampleReq{Name: "Ana", Email: "nope", Password: "secret1"})
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "Email inválido", errs[0].Message)
}

func TestValidateMessages(t *testing.T) {
	errs := Validate(sampleReq{})
	require.Len(t, errs, 3)
	for _, fe := range errs {
		assert.Equal(t, "Campo obrigatório", fe.Message)
	}

	errs = Validate(sampleReq{Name: "A", Email: "a@b.com", Password: "short"})
	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "Deve ter pelo menos 2 caracteres", errs[0].Message)
	assert.Equal(t, "password", errs[1].Field)
	assert.Equal(t, "Deve ter pelo menos 6 caracteres", errs[1].Message)
}
