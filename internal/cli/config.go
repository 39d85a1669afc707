package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tachyfont/tachypack/pkg/errors"
)

// envBaseDir is the environment variable overriding the configured base directory.
const envBaseDir = "TACHYPACK_BASE_DIR"

// Config is the on-disk configuration file format.
type Config struct {
	// BaseDir is the directory holding the fonts/ tree.
	BaseDir string `toml:"base_dir"`
}

// configDir returns the configuration directory using the XDG standard
// (~/.config/tachypack/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// configPath returns the path of the configuration file.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the configuration file if it exists.
// A missing file is not an error and yields a zero Config.
func loadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "locate config file")
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return &cfg, nil
}

// writeConfig writes cfg to the configuration file, creating the
// directory if needed. It returns the file path written.
func writeConfig(cfg *Config) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "locate config file")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create config dir")
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
	}
	return path, nil
}

// executableDir returns the directory of the running binary. It is the
// default base directory when neither flag, env, nor config set one,
// mirroring the convention that font bundles ship next to the server
// artifact.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// baseDir returns the effective base directory.
// Precedence: --base-dir flag, then TACHYPACK_BASE_DIR, then the config
// file, then the directory of the running executable.
func (c *CLI) baseDir() (string, error) {
	if c.baseDirFlag != "" {
		return c.baseDirFlag, nil
	}
	if dir := os.Getenv(envBaseDir); dir != "" {
		return dir, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	if cfg.BaseDir != "" {
		if err := errors.ValidateBaseDir(cfg.BaseDir); err != nil {
			return "", err
		}
		return cfg.BaseDir, nil
	}

	dir, err := executableDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "locate executable")
	}
	return dir, nil
}

// baseDirSource reports where the effective base directory came from,
// for display in "config show".
func (c *CLI) baseDirSource() string {
	if c.baseDirFlag != "" {
		return "flag"
	}
	if os.Getenv(envBaseDir) != "" {
		return "env"
	}
	if cfg, err := loadConfig(); err == nil && cfg.BaseDir != "" {
		return "config"
	}
	return "executable"
}
