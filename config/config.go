package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Backend is the dispatch server's REST API, the source of truth for
	// assignment state.
	Backend BackendConfig `json:"backend" yaml:"backend"`

	// Channel is the persistent websocket to the dispatch server.
	Channel ChannelConfig `json:"channel" yaml:"channel"`

	// Tracking drives the location sampling loop.
	Tracking TrackingConfig `json:"tracking" yaml:"tracking"`

	// Auth optionally seeds the credential store; normally the caller layer
	// installs the token at runtime.
	Auth AuthConfig `json:"auth" yaml:"auth"`

	// Firebase enables the realtime database location sink when present.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig points at the dispatch REST API.
type BackendConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// ChannelConfig tunes the websocket channel and its reconnection budget.
type ChannelConfig struct {
	URL                  string        `json:"url" yaml:"url"`
	AckTimeout           time.Duration `json:"ackTimeout" yaml:"ackTimeout"`
	ReconnectInterval    time.Duration `json:"reconnectInterval" yaml:"reconnectInterval"`
	MaxReconnectAttempts int           `json:"maxReconnectAttempts" yaml:"maxReconnectAttempts"`
	PingInterval         time.Duration `json:"pingInterval" yaml:"pingInterval"`
}

// TrackingConfig tunes the sampling loop and the device bridge.
type TrackingConfig struct {
	ActiveInterval   time.Duration `json:"activeInterval" yaml:"activeInterval"`
	IdleInterval     time.Duration `json:"idleInterval" yaml:"idleInterval"`
	AccuracyCeilingM float64       `json:"accuracyCeilingM" yaml:"accuracyCeilingM"`
	SampleTimeout    time.Duration `json:"sampleTimeout" yaml:"sampleTimeout"`
	MaxFixAge        time.Duration `json:"maxFixAge" yaml:"maxFixAge"`

	// BridgeEndpoint is the local positioning bridge serving device fixes.
	BridgeEndpoint string `json:"bridgeEndpoint" yaml:"bridgeEndpoint"`
}

// AuthConfig seeds the credential store at boot.
type AuthConfig struct {
	Token string `json:"token" yaml:"token"`
}

// FirebaseConfig defines the realtime database sink.
type FirebaseConfig struct {
	DatabaseURL     string `json:"databaseUrl" yaml:"databaseUrl"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: BACKEND_BASEURL -> backend.baseUrl (not backend.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	return LoadWithEnv[Config]("config", "config", "../config", "../../config")
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
