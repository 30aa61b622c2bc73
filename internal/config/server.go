package config

import (
	signHandler "SignBridge/internal/api/sign/handler"
	signService "SignBridge/internal/api/sign/service"
	translateHandler "SignBridge/internal/api/translate/handler"
	translateService "SignBridge/internal/api/translate/service"
	"SignBridge/internal/middleware"
	"SignBridge/pkg/frame"
	"SignBridge/pkg/gemini"
	"SignBridge/pkg/metrics"
	"SignBridge/pkg/model"
	"SignBridge/pkg/openai"
	"SignBridge/pkg/signmedia"
	"SignBridge/pkg/utils"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	settings   Settings
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	gateway    model.Gateway
	media      signService.MediaLookup
	normalizer *frame.Normalizer
	metrics    bool
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.gateway == nil {
		server.gateway = model.Unconfigured{Name: server.settings.ModelProvider}
	}
	if server.normalizer == nil {
		server.normalizer = frame.NewNormalizer(server.settings.MaxFrameSize, server.settings.FrameQuality)
	}
	if server.media == nil {
		server.media = newMediaResolver(server.settings, server.log)
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithSettings(settings Settings) ServerOption {
	return func(s *Server) error {
		s.settings = settings
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, middleware.Options{
			RequestsPerSecond: s.settings.RateLimitRPS,
			Burst:             s.settings.RateLimitBurst,
			MaxInflight:       s.settings.MaxInflightModelCalls,
		})
		return nil
	}
}

// WithModelGateway builds the gateway selected by MODEL_PROVIDER. A missing
// credential leaves the gateway unconfigured instead of failing startup.
func WithModelGateway(ctx context.Context) ServerOption {
	return func(s *Server) error {
		var (
			gateway model.Gateway
			err     error
		)

		switch s.settings.ModelProvider {
		case ProviderOpenAI:
			gateway = openai.New(openai.Config{
				APIKey:  s.settings.OpenAIAPIKey,
				Model:   s.settings.OpenAIModel,
				BaseURL: s.settings.OpenAIBaseURL,
				Timeout: s.settings.ModelTimeout,
			})
		default:
			gateway, err = gemini.New(ctx, gemini.Config{
				APIKey:    s.settings.GeminiAPIKey,
				ModelName: s.settings.GeminiModelName,
				Timeout:   s.settings.ModelTimeout,
			})
		}
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create %s client: %v", s.settings.ModelProvider, err)
			}
			return fmt.Errorf("failed to create model gateway: %w", err)
		}

		if !gateway.Configured() && s.log != nil {
			s.log.Warnf("%s API key not set, model-backed endpoints will return 503", gateway.Provider())
		}

		s.gateway = gateway
		return nil
	}
}

// WithGateway injects a ready gateway.
func WithGateway(gateway model.Gateway) ServerOption {
	return func(s *Server) error {
		s.gateway = gateway
		return nil
	}
}

func WithMediaResolver(media signService.MediaLookup) ServerOption {
	return func(s *Server) error {
		s.media = media
		return nil
	}
}

func WithMetrics() ServerOption {
	return func(s *Server) error {
		s.metrics = true
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func newMediaResolver(settings Settings, log *logrus.Logger) *signmedia.MediaResolver {
	fetcher := signmedia.NewFetcher(settings.MediaFetchTimeout)
	return signmedia.NewMediaResolver(
		signmedia.NewLifeprint(settings.LifeprintBaseURL, fetcher, log),
		signmedia.NewHandSpeak(settings.HandSpeakBaseURL, fetcher, log),
	)
}

func (s *Server) RegisterHandler() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(s.settings.CORSOrigins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))
	if s.metrics {
		s.engine.Use(metrics.HTTPMetrics())
		s.engine.Get("/metrics", metrics.Handler())
	}

	// Translate
	translateServices := translateService.NewTranslateService(s.log, s.gateway, s.normalizer)
	translateHandlers := translateHandler.New(s.log, s.validator, s.middleware, translateServices, s.utils, translateHandler.Options{
		MaxSessions: s.settings.MaxStreamSessions,
		Session: translateService.SessionOptions{
			ReadTimeout:        s.settings.StreamIdleTimeout,
			ReportDecodeErrors: s.settings.StreamReportDecodeErrors,
		},
		RequestTimeout: s.settings.RequestTimeout(),
	})

	// Signs
	signServices := signService.NewSignService(s.log, s.gateway, s.media)
	signHandlers := signHandler.New(s.log, s.validator, s.middleware, signServices, s.settings.RequestTimeout())

	s.setupHealthCheck()
	s.handlers = append(s.handlers, translateHandlers, signHandlers)

	router := s.engine.Group("/api")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	port := s.settings.Port
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops accepting connections, waits for in-flight requests up to
// timeout and releases the model client.
func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.engine.ShutdownWithTimeout(timeout)

	if closer, ok := s.gateway.(io.Closer); ok {
		if cerr := closer.Close(); cerr != nil {
			s.log.Errorf("Failed to close model client: %v", cerr)
		}
	}

	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"name":    s.settings.AppName,
			"version": s.settings.AppVersion,
			"status":  "running",
		})
	})

	s.engine.Get("/api/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":           "healthy",
			"model_configured": s.gateway.Configured(),
			"provider":         s.gateway.Provider(),
		})
	})
}
