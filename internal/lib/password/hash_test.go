package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash(t *testing.T) {
	hash, err := GetHash("secretpassword")
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secretpassword", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
}

func TestGetHash_DifferentSalts(t *testing.T) {
	hash1, err := GetHash("secretpassword")
	require.NoError(t, err)
	hash2, err := GetHash("secretpassword")
	require.NoError(t, err)

	// bcrypt использует случайную соль, хэши не должны совпадать
	assert.NotEqual(t, hash1, hash2)
}

func TestCompareHash(t *testing.T) {
	hash, err := GetHash("secretpassword")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "correct password",
			password: "secretpassword",
			wantErr:  false,
		},
		{
			name:     "wrong password",
			password: "wrongpassword",
			wantErr:  true,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(hash, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
