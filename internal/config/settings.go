package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Settings struct {
	AppName    string
	AppVersion string
	Port       string
	Env        string

	CORSOrigins []string

	ModelProvider   string
	GeminiAPIKey    string
	GeminiModelName string
	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIBaseURL   string
	ModelTimeout    time.Duration

	MaxFrameSize int
	FrameQuality int

	MediaFetchTimeout time.Duration
	LifeprintBaseURL  string
	HandSpeakBaseURL  string

	RateLimitRPS             float64
	RateLimitBurst           int
	MaxInflightModelCalls    int64
	MaxStreamSessions        int64
	StreamIdleTimeout        time.Duration
	StreamReportDecodeErrors bool
}

// RequestTimeout bounds one model-backed HTTP request.
func (s Settings) RequestTimeout() time.Duration {
	return s.ModelTimeout + 5*time.Second
}

// LoadSettings reads the environment. Invalid values fall back to their
// defaults with a warning.
func LoadSettings(log *logrus.Logger) Settings {
	env := envReader{log: log}

	s := Settings{
		AppName:    env.str("APP_NAME", "SignBridge API"),
		AppVersion: env.str("APP_VERSION", "1.0.0"),
		Port:       env.str("APP_PORT", "3000"),
		Env:        env.str("APP_ENV", "development"),

		CORSOrigins: env.list("CORS_ORIGINS", []string{"http://localhost:3000"}),

		ModelProvider:   strings.ToLower(env.str("MODEL_PROVIDER", ProviderGemini)),
		GeminiAPIKey:    env.str("GEMINI_API_KEY", ""),
		GeminiModelName: env.str("GEMINI_MODEL_NAME", "gemini-3-flash-preview"),
		OpenAIAPIKey:    env.str("OPENAI_API_KEY", ""),
		OpenAIModel:     env.str("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:   env.str("OPENAI_BASE_URL", ""),
		ModelTimeout:    env.duration("MODEL_TIMEOUT", 30*time.Second),

		MaxFrameSize: env.integer("MAX_FRAME_SIZE", 1280),
		FrameQuality: env.integer("FRAME_QUALITY", 85),

		MediaFetchTimeout: env.duration("MEDIA_FETCH_TIMEOUT", 10*time.Second),
		LifeprintBaseURL:  env.str("LIFEPRINT_BASE_URL", ""),
		HandSpeakBaseURL:  env.str("HANDSPEAK_BASE_URL", ""),

		RateLimitRPS:             env.float("RATE_LIMIT_RPS", 10),
		RateLimitBurst:           env.integer("RATE_LIMIT_BURST", 20),
		MaxInflightModelCalls:    int64(env.integer("MAX_INFLIGHT_MODEL_CALLS", 32)),
		MaxStreamSessions:        int64(env.integer("MAX_STREAM_SESSIONS", 64)),
		StreamIdleTimeout:        env.duration("STREAM_IDLE_TIMEOUT", 60*time.Second),
		StreamReportDecodeErrors: env.boolean("STREAM_REPORT_DECODE_ERRORS", false),
	}

	if s.ModelProvider != ProviderGemini && s.ModelProvider != ProviderOpenAI {
		log.Warnf("unknown MODEL_PROVIDER %q, using %s", s.ModelProvider, ProviderGemini)
		s.ModelProvider = ProviderGemini
	}
	if s.FrameQuality < 1 || s.FrameQuality > 100 {
		log.Warnf("FRAME_QUALITY %d out of range, using 85", s.FrameQuality)
		s.FrameQuality = 85
	}

	return s
}

type envReader struct {
	log *logrus.Logger
}

func (e envReader) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (e envReader) list(key string, def []string) []string {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func (e envReader) integer(key string, def int) int {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		e.log.Warnf("invalid %s %q, using %d", key, v, def)
		return def
	}
	return n
}

func (e envReader) float(key string, def float64) float64 {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		e.log.Warnf("invalid %s %q, using %g", key, v, def)
		return def
	}
	return f
}

// duration accepts Go duration strings or a plain number of seconds.
func (e envReader) duration(key string, def time.Duration) time.Duration {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	e.log.Warnf("invalid %s %q, using %s", key, v, def)
	return def
}

func (e envReader) boolean(key string, def bool) bool {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.log.Warnf("invalid %s %q, using %t", key, v, def)
		return def
	}
	return b
}
