package config

import (
	"fmt"

	"distlist/internal/entry"

	"github.com/pelletier/go-toml"
	"github.com/spf13/afero"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = ".distlist.toml"

// Keys: root, strip
type Config struct {
	Root  string
	Strip string
}

func Default() Config {
	return Config{
		Root:  "dist",
		Strip: entry.DefaultStrip,
	}
}

func loadToml(fs afero.Fs, path string) (*toml.Tree, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		tree, err := toml.TreeFromMap(map[string]interface{}{})
		if err != nil {
			return nil, fmt.Errorf("failed to create empty config: %w", err)
		}
		return tree, nil
	}
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return toml.LoadBytes(b)
}

// Load overlays the keys found in path on top of Default(). A missing file is
// not an error.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	tree, err := loadToml(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := setString(tree, "root", &cfg.Root); err != nil {
		return cfg, err
	}
	if err := setString(tree, "strip", &cfg.Strip); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setString(tree *toml.Tree, key string, dst *string) error {
	v := tree.Get(key)
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("config key %q must be a string, got %T", key, v)
	}
	*dst = s
	return nil
}
