package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{
			name:     "known digest",
			password: "password",
			want:     "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		},
		{
			name:     "empty string",
			password: "",
			want:     "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "cyrillic input",
			password: "пароль",
			want:     "2dbc574daca52689a24fb60e835f8c19a36400830df7350859dd32d1abaaec5d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashPassword(tt.password))
		})
	}
}

func TestHashPasswordDeterministic(t *testing.T) {
	// Same input must always produce the same digest; login depends on
	// an exact match in one query.
	assert.Equal(t, HashPassword("secret123"), HashPassword("secret123"))
	assert.NotEqual(t, HashPassword("secret123"), HashPassword("secret124"))
	assert.Len(t, HashPassword("anything"), 64)
}
