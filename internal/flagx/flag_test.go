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
			"separate value",
			[]string{"-e", "https://s3.example.com", "-x", "noise"},
			[]string{"-e"},
			[]string{"-e", "https://s3.example.com"},
		},
		{
			"equals form",
			[]string{"--config=prefs.json", "-b=media"},
			[]string{"--config", "-b"},
			[]string{"--config=prefs.json", "-b=media"},
		},
		{
			"flag without value followed by another flag",
			[]string{"-e", "-b", "media"},
			[]string{"-e", "-b"},
			[]string{"-e", "-b", "media"},
		},
		{
			"nothing allowed",
			[]string{"-x", "1", "-y=2"},
			[]string{"-e"},
			[]string{},
		},
		{
			"empty args",
			nil,
			[]string{"-e"},
			[]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}
