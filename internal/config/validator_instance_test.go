package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValidator(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	assert.Same(t, v1, v2, "GetValidator should return the same instance")
}

func TestThemeRefValidation(t *testing.T) {
	type holder struct {
		Ref string `validate:"theme_ref"`
	}
	v := GetValidator()

	tests := []struct {
		name     string
		ref      string
		expected bool
	}{
		{"empty string", "", true},
		{"space", " ", false},
		{"builtin id", "neon", true},
		{"unknown id", "vaporwave", false},
		{"json file", "./themes/paper.json", true},
		{"yaml file", "/etc/brutalist/paper.YML", true},
		{"toml file", "paper.toml", true},
		{"unsupported file", "paper.css", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(holder{Ref: tt.ref})
			assert.Equal(t, tt.expected, err == nil)
		})
	}
}

func TestListenAddrValidation(t *testing.T) {
	type holder struct {
		Addr string `validate:"listen_addr"`
	}
	v := GetValidator()

	assert.NoError(t, v.Struct(holder{Addr: "127.0.0.1:7878"}))
	assert.NoError(t, v.Struct(holder{Addr: ":8080"}))
	assert.NoError(t, v.Struct(holder{Addr: "localhost:0"}))
	assert.Error(t, v.Struct(holder{Addr: "localhost"}))
	assert.Error(t, v.Struct(holder{Addr: "localhost:"}))
}
