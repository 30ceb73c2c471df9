package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testGate() *Gate {
	return NewGate(GateConfig{
		AdminPassword: "admin-secret",
		ClassPasswords: map[string]string{
			"9":  "triangles",
			"10": "trigonometry",
			"11": "parabola",
			"12": "integration",
		},
	})
}

func TestGate_ValidateAdminPassword(t *testing.T) {
	gate := testGate()

	assert.True(t, gate.ValidateAdminPassword("admin-secret"))
	assert.False(t, gate.ValidateAdminPassword("wrong"))
	assert.False(t, gate.ValidateAdminPassword(""))

	// an empty configured password never matches
	empty := NewGate(GateConfig{})
	assert.False(t, empty.ValidateAdminPassword(""))
}

func TestGate_ValidateClassPassword(t *testing.T) {
	gate := testGate()

	tests := []struct {
		name     string
		class    string
		password string
		want     bool
	}{
		{"class 9 correct", "9", "triangles", true},
		{"class 12 correct", "12", "integration", true},
		{"wrong password", "10", "triangles", false},
		{"unknown class", "8", "triangles", false},
		{"empty password", "11", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.ValidateClassPassword(tt.class, tt.password))
		})
	}
}

func TestGate_PasswordHint(t *testing.T) {
	gate := testGate()

	assert.Equal(t, "Format: class[number]math[year]", gate.PasswordHint("9"))
	assert.Equal(t, "Format: class[number]math[year]", gate.PasswordHint("12"))
	assert.Equal(t, "Contact your teacher for the password", gate.PasswordHint("8"))
	assert.Equal(t, "Contact your teacher for the password", gate.PasswordHint(""))
}

func TestGate_KnownClass(t *testing.T) {
	gate := testGate()

	assert.True(t, gate.KnownClass("9"))
	assert.False(t, gate.KnownClass("13"))
}
