package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScaleCommand(t *testing.T) {
	out, err := run(t, "scale", "1 1/2", "2")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = run(t, "scale", "200g", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "100\n", out)
}

func TestScaleCommandRejectsBadFactor(t *testing.T) {
	_, err := run(t, "scale", "2", "zero")
	assert.Error(t, err)

	_, err = run(t, "scale", "2", "-1")
	assert.Error(t, err)
}

func TestFixturesValidateDefault(t *testing.T) {
	out, err := run(t, "fixtures", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "recipes    3")
	assert.Contains(t, out, "ok")
}

func TestFixturesValidateRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tasks:
  - id: 1
    title: One
    category: Home
  - id: 1
    title: Two
    category: Home
`), 0o600))

	_, err := run(t, "fixtures", "validate", path)
	assert.Error(t, err)
}

func TestTagsCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "typing suggests from fixture vocabulary",
			args: []string{"--tags", "Quick", "Heal"},
			want: "tags        Quick\ninput       Heal\nsuggestions Healthy\n",
		},
		{
			name: "enter adds and clears input",
			args: []string{"--tags", "Quick", "Vegan", "Enter"},
			want: "tags        Quick, Vegan\ninput       \nsuggestions \n",
		},
		{
			name: "backspace on empty input removes last tag",
			args: []string{"--tags", "Quick", "Vegan", ",", "Backspace"},
			want: "tags        Quick\ninput       \nsuggestions \n",
		},
		{
			name: "full set keeps the input",
			args: []string{"--max", "1", "--tags", "Quick", "Vegan", "Enter"},
			want: "tags        Quick\ninput       Vegan\nsuggestions \n",
		},
		{
			name: "pick applies a suggestion",
			args: []string{"ve", "pick:Vegetarian"},
			want: "tags        Vegetarian\ninput       \nsuggestions \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"tags"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTagsCommandRequiresEvents(t *testing.T) {
	_, err := run(t, "tags")
	assert.Error(t, err)
}
