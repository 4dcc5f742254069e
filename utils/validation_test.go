package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"010-1234-5678",
		"01012345678",
		"+821012345678",
		"(02) 1234-5678",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"not-a-phone",
		"1",
		"+",
		"010-1234-56789012345",
		"010 1234 567a",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}
