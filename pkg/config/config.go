package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read as config keys.
// CONFNAME_STAND_IN_NAME sets stand_in_name.
const EnvPrefix = "CONFNAME_"

var log = logging.GetLogger("config")

// Config is the resolved confname configuration
type Config struct {
	Namespace      string `koanf:"namespace" toml:"namespace" json:"namespace"`
	Group          string `koanf:"group" toml:"group" json:"group"`
	Anchor         string `koanf:"anchor" toml:"anchor" json:"anchor"`
	NonInteractive bool   `koanf:"non_interactive" toml:"non_interactive" json:"non_interactive"`
	StandInName    string `koanf:"stand_in_name" toml:"stand_in_name" json:"stand_in_name"`
	ProfilesFile   string `koanf:"profiles_file" toml:"profiles_file" json:"profiles_file"`
	User           string `koanf:"user" toml:"user" json:"user"`
}

// Sources lists where Load reads from. Empty file paths are skipped, as
// are files that do not exist.
type Sources struct {
	UserFile    string
	ProjectFile string

	// Overrides are applied last, typically from command line flags.
	Overrides map[string]interface{}
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// DefaultContent returns the embedded defaults file
func DefaultContent() string {
	return string(defaultConfig)
}

// Default returns the configuration built from the embedded defaults only
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

// Load builds the configuration from every layer in src
func Load(src Sources) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User and project files
	for _, path := range []string{src.UserFile, src.ProjectFile} {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Overrides
	if len(src.Overrides) > 0 {
		if err := k.Load(confmap.Provider(src.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return unmarshal(k)
}

func loadFile(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			log.Trace().Str("path", path).Msg("config file not present")
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
	}
	log.Debug().Str("path", path).Msg("loaded config file")
	return nil
}

// envKey maps CONFNAME_NON_INTERACTIVE to non_interactive. Empty
// variables are skipped.
func envKey(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	cfg.normalize()
	return &cfg, nil
}

// normalize trims values and restores defaults for blank required keys
func (c *Config) normalize() {
	c.Namespace = strings.TrimSpace(c.Namespace)
	c.Group = strings.TrimSpace(c.Group)
	c.Anchor = strings.TrimSpace(c.Anchor)
	c.StandInName = strings.TrimSpace(c.StandInName)
	c.ProfilesFile = strings.TrimSpace(c.ProfilesFile)
	c.User = strings.TrimSpace(c.User)

	if c.Namespace == "" {
		c.Namespace = "ConfigurableFileName"
	}
	if c.Group == "" {
		c.Group = "NewGroup"
	}
	if c.Anchor == "" {
		c.Anchor = "NewFile"
	}
	if c.StandInName == "" {
		c.StandInName = "test"
	}
}
