package signHandler

import (
	"time"

	signService "SignBridge/internal/api/sign/service"
	"SignBridge/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SignHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	signService    signService.ISignService
	requestTimeout time.Duration
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ss signService.ISignService,
	requestTimeout time.Duration,
) *SignHandler {
	if requestTimeout <= 0 {
		requestTimeout = 35 * time.Second
	}
	return &SignHandler{
		log:            log,
		validator:      validator,
		middleware:     middleware,
		signService:    ss,
		requestTimeout: requestTimeout,
	}
}

func (h *SignHandler) Start(srv fiber.Router) {
	signs := srv.Group("/signs")

	signs.Post("/guidance", h.middleware.NewRateLimiter, h.middleware.NewInflightLimiter, h.GetGuidance)
	signs.Post("/visual-guidance", h.middleware.NewRateLimiter, h.middleware.NewInflightLimiter, h.GetVisualGuidance)
	signs.Post("/hand-pose", h.middleware.NewRateLimiter, h.middleware.NewInflightLimiter, h.GetHandPose)
	signs.Get("/alphabet/:letter", h.middleware.NewRateLimiter, h.middleware.NewInflightLimiter, h.GetAlphabet)
	signs.Get("/common", h.GetCommonSigns)
	signs.Post("/gif", h.middleware.NewRateLimiter, h.GetSignMedia)
}
