package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "VLLM"

// FileSystem abstracts file operations so tests can inject fixtures.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem with actual file operations.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds loader dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// Option customizes a Load call.
type Option func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) Option {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path, skipping the search.
func WithConfigFile(path string) Option {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path, skipping the search.
func WithEnvFile(path string) Option {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load populates cfg from a YAML config file, a .env file, and process
// environment variables, in that precedence order. Files that cannot be
// found are skipped silently; files that exist but fail to parse are an
// error.
func Load(cfg any, opts ...Option) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = RealFileSystem{}
	}

	if lc.ConfigFile == "" {
		lc.ConfigFile = findFirst(lc.FileSystem, "./config.yml", "./config.yaml", "./config/config.yml", "./config/config.yaml")
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findFirst(lc.FileSystem, "./.env", "./config/.env")
	}

	v := viper.New()

	if lc.ConfigFile != "" && lc.FileSystem.Exists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", lc.ConfigFile, err)
		}
	}

	// .env values become process env vars, then bind below.
	if lc.EnvFile != "" && lc.FileSystem.Exists(lc.EnvFile) {
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			return fmt.Errorf("config: load %s: %w", lc.EnvFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	return nil
}

// findFirst returns the first existing path, or empty.
func findFirst(fs FileSystem, paths ...string) string {
	for _, path := range paths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// bindEnvKeys registers every VLLM_-prefixed environment variable with
// viper. AutomaticEnv alone only resolves keys viper already knows about,
// which misses env-only settings with no file counterpart.
func bindEnvKeys(v *viper.Viper) {
	prefix := envPrefix + "_"
	for _, env := range os.Environ() {
		key, _, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, prefix))
		// Both flat (base_url) and nested (params.temperature) spellings.
		_ = v.BindEnv(name)
		if i := strings.Index(name, "_"); i > 0 {
			_ = v.BindEnv(strings.Replace(name, "_", ".", 1))
		}
	}
}
