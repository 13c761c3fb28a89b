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

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "6MB"

	// Placeholders used when no backend is configured. They are kept as real
	// values so the first network call fails instead of startup.
	PlaceholderBackendURL     = "your-supabase-url-here"
	PlaceholderPublishableKey = "your-supabase-publishable-key-here"

	defaultImagesBucket   = "todos-images"
	defaultMaxUploadBytes = 5 << 20
)

// Environment variables recognised for the backend endpoint, in priority
// order after BACKEND_URL / BACKEND_PUBLISHABLEKEY.
var (
	backendURLEnvFallbacks = []string{"SUPABASE_URL", "VITE_SUPABASE_URL"}
	backendKeyEnvFallbacks = []string{"SUPABASE_PUBLISHABLE_KEY", "VITE_SUPABASE_PUBLISHABLE_KEY"}
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Backend is the hosted backend-as-a-service endpoint.
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Storage selects where todo images are kept.
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Realtime configures the change-notification socket.
	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// Session configures local session persistence and refresh.
	Session *SessionConfig `json:"session" yaml:"session"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig holds the endpoint and publishable key of the hosted backend
type BackendConfig struct {
	URL            string        `json:"url" yaml:"url"`
	PublishableKey string        `json:"publishableKey" yaml:"publishableKey"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Client-side request pacing. RateLimit <= 0 disables it.
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	RateBurst int     `json:"rateBurst" yaml:"rateBurst"`
}

// StorageConfig defines image storage configuration
type StorageConfig struct {
	// Driver: "backend" for the hosted storage API or "blob" for a gocloud.dev bucket
	Driver string `json:"driver" yaml:"driver"`

	// Bucket name on the hosted storage API
	Bucket string `json:"bucket" yaml:"bucket"`

	// gocloud.dev bucket URL (for blob driver), e.g. file:///var/todo/images or s3://bucket?region=eu-west-1
	BlobURL string `json:"blobUrl" yaml:"blobUrl"`

	// Base URL that serves blob objects publicly (for blob driver)
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxUploadBytes int64 `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

// RealtimeConfig defines the change-notification socket configuration
type RealtimeConfig struct {
	Enabled              bool          `json:"enabled" yaml:"enabled"`
	HeartbeatInterval    time.Duration `json:"heartbeatInterval" yaml:"heartbeatInterval"`
	ReconnectMaxAttempts uint64        `json:"reconnectMaxAttempts" yaml:"reconnectMaxAttempts"`
	ReconnectBaseDelay   time.Duration `json:"reconnectBaseDelay" yaml:"reconnectBaseDelay"`
}

// SessionConfig defines local session handling
type SessionConfig struct {
	// Path of the sqlite file holding the persisted session. ":memory:" keeps it in process.
	DBPath string `json:"dbPath" yaml:"dbPath"`

	// Refresh the access token before it expires
	AutoRefresh   bool          `json:"autoRefresh" yaml:"autoRefresh"`
	RefreshMargin time.Duration `json:"refreshMargin" yaml:"refreshMargin"`

	// Where the password recovery email links to
	ResetRedirectURL string `json:"resetRedirectUrl" yaml:"resetRedirectUrl"`
}

// MetricsConfig toggles the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// BACKEND_PUBLISHABLEKEY -> backend.publishableKey
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults(os.Getenv)

	return cfg, nil
}

func (cfg *Config) applyDefaults(getenv func(string) string) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Backend == nil {
		cfg.Backend = &BackendConfig{}
	}
	cfg.Backend.URL = firstNonEmpty(cfg.Backend.URL, lookupAny(getenv, backendURLEnvFallbacks), PlaceholderBackendURL)
	cfg.Backend.PublishableKey = firstNonEmpty(cfg.Backend.PublishableKey, lookupAny(getenv, backendKeyEnvFallbacks), PlaceholderPublishableKey)
	cfg.Backend.URL = strings.TrimRight(cfg.Backend.URL, "/")
	if cfg.Backend.RequestTimeout <= 0 {
		cfg.Backend.RequestTimeout = 15 * time.Second
	}
	if cfg.Backend.RateBurst <= 0 {
		cfg.Backend.RateBurst = 1
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "backend"
	}
	if cfg.Storage.Bucket == "" {
		cfg.Storage.Bucket = defaultImagesBucket
	}
	if cfg.Storage.MaxUploadBytes <= 0 {
		cfg.Storage.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.Realtime == nil {
		cfg.Realtime = &RealtimeConfig{Enabled: true}
	}
	if cfg.Realtime.HeartbeatInterval <= 0 {
		cfg.Realtime.HeartbeatInterval = 25 * time.Second
	}
	if cfg.Realtime.ReconnectBaseDelay <= 0 {
		cfg.Realtime.ReconnectBaseDelay = time.Second
	}
	if cfg.Realtime.ReconnectMaxAttempts == 0 {
		cfg.Realtime.ReconnectMaxAttempts = 10
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{AutoRefresh: true}
	}
	if cfg.Session.DBPath == "" {
		cfg.Session.DBPath = ":memory:"
	}
	if cfg.Session.RefreshMargin <= 0 {
		cfg.Session.RefreshMargin = time.Minute
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
}

// HasPlaceholderBackend reports whether the backend endpoint was never configured.
func (cfg *Config) HasPlaceholderBackend() bool {
	return cfg.Backend == nil ||
		cfg.Backend.URL == PlaceholderBackendURL ||
		cfg.Backend.PublishableKey == PlaceholderPublishableKey
}

func lookupAny(getenv func(string) string, keys []string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(getenv(key)); value != "" {
			return value
		}
	}

	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
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
