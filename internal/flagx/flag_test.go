package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-s", "secret", "-x", "1"},
			allowed: []string{"-s"},
			want:    []string{"-s", "secret"},
		},
		{
			name:    "equals form",
			args:    []string{"-d=postgres://db", "-x=1"},
			allowed: []string{"-d"},
			want:    []string{"-d=postgres://db"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-c", "-a", ":9000"},
			allowed: []string{"-c", "-a"},
			want:    []string{"-c", "-a", ":9000"},
		},
		{
			name:    "order preserved",
			args:    []string{"-a", ":1", "-l", "debug", "-s", "k"},
			allowed: []string{"-s", "-a"},
			want:    []string{"-a", ":1", "-s", "k"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed...))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "conf.json", ConfigFile([]string{"-a", ":1", "-c", "conf.json"}))
	assert.Equal(t, "alt.json", ConfigFile([]string{"-config=alt.json"}))
	assert.Equal(t, "", ConfigFile([]string{"-a", ":1"}))
}
