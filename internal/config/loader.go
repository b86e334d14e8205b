package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configFileNames lists config file names in discovery priority order.
var configFileNames = []string{
	"swiftfmt.yml",
	"swiftfmt.yaml",
	".swiftfmt.yml",
	".swiftfmt.yaml",
	".swiftfmt.toml",
}

// Discover returns the path of the first config file found in dir or, failing
// that, in the nearest ancestor of dir that has one. Within a directory the
// standard search order applies. It returns an empty string if no config file
// is found.
func Discover(dir string) string {
	for {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load reads and parses a swiftfmt config file. If configPath is non-empty,
// that file is loaded directly. Otherwise, Load searches the current working
// directory and its ancestors using Discover. If no config file is found,
// DefaultConfig is returned.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		configPath = Discover(wd)
	}

	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}
	return Parse(configPath, data)
}

// Parse decodes data over the defaults and validates the result. The format
// follows name's extension: .toml is TOML, anything else YAML. Keys that do
// not map to a setting are rejected.
func Parse(name string, data []byte) (*Config, error) {
	cfg := DefaultConfig()

	var err error
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		err = decodeTOML(data, cfg)
	} else {
		err = decodeYAML(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

// LoadFile reads and parses a config from the given path. Unlike Load, it
// does not perform discovery; the path must be provided.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}
	return Load(path)
}
