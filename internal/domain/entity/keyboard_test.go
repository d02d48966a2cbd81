package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardEventKind_String(t *testing.T) {
	assert.Equal(t, "show", KeyboardWillShow.String())
	assert.Equal(t, "hide", KeyboardWillHide.String())
	assert.Equal(t, "unknown", KeyboardEventKind(42).String())
}

func TestTint_String(t *testing.T) {
	assert.Equal(t, "baseline", TintBaseline.String())
	assert.Equal(t, "obscured", TintObscured.String())
}

func TestAddress(t *testing.T) {
	assert.True(t, Address("").IsEmpty())
	assert.False(t, Address("https:example.com").IsEmpty())
	assert.Equal(t, "https:example.com", Address("https:example.com").String())
}
