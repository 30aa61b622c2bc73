package translateHandler

import (
	"time"

	translateService "SignBridge/internal/api/translate/service"
	"SignBridge/internal/middleware"
	"SignBridge/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

type TranslateHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	translateService translateService.ITranslateService
	utils            utils.IUtils
	sessions         *semaphore.Weighted
	sessionOpts      translateService.SessionOptions
	requestTimeout   time.Duration
}

type Options struct {
	MaxSessions    int64
	Session        translateService.SessionOptions
	RequestTimeout time.Duration
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ts translateService.ITranslateService,
	utils utils.IUtils,
	opts Options,
) *TranslateHandler {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = 64
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 35 * time.Second
	}
	return &TranslateHandler{
		log:              log,
		validator:        validator,
		middleware:       middleware,
		translateService: ts,
		utils:            utils,
		sessions:         semaphore.NewWeighted(opts.MaxSessions),
		sessionOpts:      opts.Session,
		requestTimeout:   opts.RequestTimeout,
	}
}

func (h *TranslateHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	translate := srv.Group("/translate")
	translate.Post("/frame", h.middleware.NewRateLimiter, h.middleware.NewInflightLimiter, h.TranslateFrame)
	translate.Post("/video", h.TranslateVideo)

	translate.Use("/stream", wsMiddleware)
	translate.Get("/stream", websocket.New(h.handleStream))
}
