package config

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Property keys read from the properties file.
const (
	KeyNBABaseURL               = "nba.baseurl"
	KeyPURLBaseURL              = "purl.baseurl"
	KeyBioportalSpecimenURL     = "bioportal.specimen.url"
	KeyXenoCantoObservationURL  = "xenocanto.observation.url"
	KeyWaarnemingObservationURL = "waarneming.observation.url"
)

// RequiredKeys must be present and non-empty for the resolver to start.
var RequiredKeys = []string{
	KeyNBABaseURL,
	KeyPURLBaseURL,
	KeyBioportalSpecimenURL,
	KeyXenoCantoObservationURL,
	KeyWaarnemingObservationURL,
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	ConfigPath      string
	NBATimeout      time.Duration
	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("PURL_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	level := os.Getenv("PURL_LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	path := os.Getenv("PURL_CONFIG")
	if path == "" {
		path = "purl.yaml"
	}

	return Server{
		Addr:            addr,
		LogLevel:        level,
		ConfigPath:      path,
		NBATimeout:      durationEnv("PURL_NBA_TIMEOUT", 10*time.Second),
		ShutdownTimeout: durationEnv("PURL_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Config is the process-wide configuration. It is built once at start-up and only read
// afterwards.
type Config struct {
	Server     Server
	properties map[string]string
}

// Load reads the properties file named by server.ConfigPath and validates it.
func Load(server Server) (*Config, error) {
	data, err := os.ReadFile(server.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("read properties file: %w", err)
	}
	return Parse(server, data)
}

// Parse builds a Config from YAML properties. Keys may be written flat
// ("nba.baseurl: ...") or nested ("nba: {baseurl: ...}"); both flatten to dotted keys.
func Parse(server Server, data []byte) (*Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse properties: %w", err)
	}
	props := make(map[string]string)
	flatten("", raw, props)

	cfg := &Config{Server: server, properties: props}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case nil:
			out[key] = ""
		default:
			out[key] = strings.TrimSpace(fmt.Sprint(val))
		}
	}
}

func (c *Config) validate() error {
	var missing []string
	for _, key := range RequiredKeys {
		if c.properties[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required properties: %s", strings.Join(missing, ", "))
	}
	for _, key := range []string{KeyNBABaseURL, KeyPURLBaseURL} {
		u, err := url.Parse(c.properties[key])
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid value for %s: %q is not an absolute URL", key, c.properties[key])
		}
	}
	return nil
}

// Property returns the value for key, and whether it was set.
func (c *Config) Property(key string) (string, bool) {
	v, ok := c.properties[key]
	return v, ok
}

// Required returns the value for key, failing when it is absent or empty.
func (c *Config) Required(key string) (string, error) {
	v := c.properties[key]
	if v == "" {
		return "", fmt.Errorf("missing required property %q", key)
	}
	return v, nil
}

// NBABaseURL is the base URL of the record lookup service.
func (c *Config) NBABaseURL() string { return c.properties[KeyNBABaseURL] }

// PURLBaseURL is the base URL under which PURLs are minted.
func (c *Config) PURLBaseURL() string { return c.properties[KeyPURLBaseURL] }
