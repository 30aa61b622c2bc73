package translateService

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"SignBridge/internal/api/translate"
	contextPkg "SignBridge/pkg/context"
	"SignBridge/pkg/frame"
	"SignBridge/pkg/log"
	"SignBridge/pkg/metrics"
	"SignBridge/pkg/model"
	"SignBridge/pkg/response"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// WebSocket opcodes (RFC 6455).
const (
	TextMessage   = 1
	BinaryMessage = 2
)

const (
	DefaultReadTimeout  = 60 * time.Second
	DefaultWriteTimeout = 10 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errSessionFault = errors.New("session fault")

// Conn is the part of a WebSocket connection a session needs.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

type State int

const (
	StateOpen State = iota
	StateIdle
	StateProcessing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type SessionOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// ReportDecodeErrors replies with an error for frames whose image cannot
	// be decoded. Such frames are otherwise dropped without a reply.
	ReportDecodeErrors bool
}

// Session serves one translation stream. Frames are handled one at a time in
// arrival order on the goroutine that calls Run.
type Session struct {
	id      string
	conn    Conn
	service ITranslateService
	log     *logrus.Entry
	opts    SessionOptions
	state   State
}

func NewSession(id string, conn Conn, service ITranslateService, logger *logrus.Logger, opts SessionOptions) *Session {
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = DefaultReadTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultWriteTimeout
	}
	return &Session{
		id:      id,
		conn:    conn,
		service: service,
		log:     logger.WithField(log.SessionIDKey, id),
		opts:    opts,
		state:   StateOpen,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State { return s.state }

// Run reads until the peer disconnects, a transport error occurs or a frame
// cycle faults. It always leaves the session closed.
func (s *Session) Run(ctx context.Context) {
	ctx = contextPkg.WithSessionID(ctx, s.id)

	metrics.StreamSessionsActive.Inc()
	s.log.Info("Translation stream connected")
	defer func() {
		s.state = StateClosed
		metrics.StreamSessionsActive.Dec()
		s.log.Info("Translation stream closed")
	}()

	s.state = StateIdle
	for {
		if err := s.conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout)); err != nil {
			s.log.Errorf("Error setting read deadline: %v", err)
			return
		}

		messageType, message, err := s.conn.ReadMessage()
		if err != nil {
			s.log.WithError(err).Debug("Stream read ended")
			return
		}
		if ctx.Err() != nil {
			return
		}

		if err := s.handle(ctx, messageType, message); err != nil {
			if !errors.Is(err, errSessionFault) {
				s.log.WithError(err).Info("Stream write failed")
			}
			return
		}
	}
}

// handle processes one inbound message. A non-nil error closes the session.
func (s *Session) handle(ctx context.Context, messageType int, message []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(log.Fields{
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			}).Error("Unexpected failure while processing stream message")
			err = errSessionFault
		}
	}()

	switch messageType {
	case BinaryMessage:
		return s.processFrame(ctx, nil, message, translate.DefaultLanguage)
	case TextMessage:
	default:
		s.log.Warnf("Received unexpected message type: %d", messageType)
		return nil
	}

	var msg translate.StreamMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		metrics.StreamMessagesTotal.WithLabelValues("invalid", "error").Inc()
		return s.replyError(translate.ErrInvalidMessage.Error())
	}

	switch msg.Type {
	case translate.MessagePing:
		metrics.StreamMessagesTotal.WithLabelValues(string(msg.Type), "ok").Inc()
		return s.reply(translate.StreamReply{Type: translate.MessagePong})
	case translate.MessageFrame:
		if msg.Data == nil || strings.TrimSpace(msg.Data.Image) == "" {
			metrics.StreamMessagesTotal.WithLabelValues(string(msg.Type), "missing_image").Inc()
			return s.replyError(translate.ErrNoImageData.Error())
		}
		return s.processFrame(ctx, &msg.Data.Image, nil, msg.Data.Language)
	default:
		metrics.StreamMessagesTotal.WithLabelValues("unknown", "ignored").Inc()
		s.log.WithField("type", msg.Type).Debug("Ignoring unknown stream message type")
		return nil
	}
}

// processFrame runs one Idle -> Processing -> Idle cycle. Exactly one of
// encoded and raw is set.
func (s *Session) processFrame(ctx context.Context, encoded *string, raw []byte, language string) error {
	s.state = StateProcessing
	defer func() {
		if s.state == StateProcessing {
			s.state = StateIdle
		}
	}()

	var img *frame.Image
	var err error
	if encoded != nil {
		img, err = s.service.Normalize(*encoded)
	} else {
		img, err = s.service.NormalizeBytes(raw)
	}
	if err != nil {
		metrics.StreamMessagesTotal.WithLabelValues(string(translate.MessageFrame), "decode_error").Inc()
		s.log.WithError(err).Warn("Dropping frame that could not be decoded")
		if s.opts.ReportDecodeErrors {
			return s.replyError(translate.ErrInvalidImage.Error())
		}
		return nil
	}

	result, err := s.service.TranslateImage(ctx, img, language)
	if err != nil {
		metrics.StreamMessagesTotal.WithLabelValues(string(translate.MessageFrame), "error").Inc()
		s.log.WithError(err).Warn("Frame translation failed")
		return s.replyError(replyMessage(err))
	}

	metrics.StreamMessagesTotal.WithLabelValues(string(translate.MessageFrame), "ok").Inc()
	return s.reply(translate.StreamReply{
		Type: translate.MessageTranslation,
		Data: &translate.StreamTranslation{
			Text:       result.Text,
			Confidence: result.Confidence,
		},
	})
}

func (s *Session) replyError(message string) error {
	return s.reply(translate.StreamReply{Type: translate.MessageError, Error: message})
}

func (s *Session) reply(r translate.StreamReply) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.opts.WriteTimeout)); err != nil {
		return err
	}
	if err := s.conn.WriteJSON(r); err != nil {
		return err
	}
	return s.conn.SetWriteDeadline(time.Time{})
}

// replyMessage is the client-facing text for a failed frame. Upstream model
// failures carry the provider's message.
func replyMessage(err error) string {
	var modelErr *model.Error
	if errors.As(err, &modelErr) {
		return modelErr.Error()
	}
	var respErr *response.Error
	if errors.As(err, &respErr) {
		return respErr.Error()
	}
	return err.Error()
}
