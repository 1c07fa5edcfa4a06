package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalletAddrRegex(t *testing.T) {
	valid := []string{
		"0x1111111111111111111111111111111111111111",
		"0xAbCdEf1234567890aBcDeF1234567890abcdef12",
		"T9yD14Nj9j7xAB4dbGeiX9h8unkKHxuWwb",
	}
	for _, addr := range valid {
		assert.True(t, walletAddrRe.MatchString(addr), "expected %q to be valid", addr)
	}

	invalid := []string{
		"",
		"0x123",
		"1111111111111111111111111111111111111111",
		"0xZZ11111111111111111111111111111111111111",
		"T0yD14Nj9j7xAB4dbGeiX9h8unkKHxuWwb", // 0 not in base58
		"Tshort",
	}
	for _, addr := range invalid {
		assert.False(t, walletAddrRe.MatchString(addr), "expected %q to be invalid", addr)
	}
}

func TestSanitizeStruct(t *testing.T) {
	extra := "  <i>info</i> "
	in := struct {
		Name  string
		Extra *string
		Num   int
	}{
		Name:  "  <b>bold</b>  ",
		Extra: &extra,
		Num:   5,
	}

	SanitizeStruct(&in)

	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", in.Name)
	assert.Equal(t, "&lt;i&gt;info&lt;/i&gt;", *in.Extra)
	assert.Equal(t, 5, in.Num)
}

func TestSanitizeStruct_NonPointer(t *testing.T) {
	in := struct{ Name string }{Name: " x "}
	SanitizeStruct(in) // no-op, must not panic
	assert.Equal(t, " x ", in.Name)
}
