package config

import (
	"os"
	"path/filepath"
	"testing"

	"distlist/internal/entry"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr bool
	}{
		{
			name:    "empty file",
			content: "",
			want:    Default(),
		},
		{
			name:    "root only",
			content: `root = "build"`,
			want:    Config{Root: "build", Strip: "dist/"},
		},
		{
			name:    "both keys",
			content: "root = \"out\"\nstrip = \"out/\"\n",
			want:    Config{Root: "out", Strip: "out/"},
		},
		{
			name:    "unknown keys ignored",
			content: "color = true\nstrip = \"\"\n",
			want:    Config{Root: "dist", Strip: ""},
		},
		{
			name:    "wrong type",
			content: "root = 3",
			wantErr: true,
		},
		{
			name:    "malformed",
			content: "root = ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, DefaultFile, []byte(tt.content), 0644))

			got, err := Load(fs, DefaultFile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "dist", cfg.Root)
	assert.Equal(t, entry.DefaultStrip, cfg.Strip)
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(afero.NewMemMapFs(), DefaultFile)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadFromDisk(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "distlist-config-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(`strip = "js/"`), 0644))

	got, err := Load(afero.NewOsFs(), path)
	require.NoError(t, err)
	assert.Equal(t, Config{Root: "dist", Strip: "js/"}, got)
}
