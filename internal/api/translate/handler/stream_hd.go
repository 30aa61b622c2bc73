package translateHandler

import (
	"context"
	"time"

	translateService "SignBridge/internal/api/translate/service"
	"SignBridge/internal/middleware"
	contextPkg "SignBridge/pkg/context"
	"SignBridge/pkg/log"

	"github.com/gofiber/websocket/v2"
)

func (h *TranslateHandler) handleStream(c *websocket.Conn) {
	requestID, _ := c.Locals(middleware.RequestIDKey).(string)

	if !h.sessions.TryAcquire(1) {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
		}).Warn("Rejecting translation stream, session limit reached")
		msg := websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too many sessions")
		if err := c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
			h.log.Errorf("Error sending close message: %v", err)
		}
		return
	}
	defer h.sessions.Release(1)

	sessionID, err := h.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		sessionID = requestID
	}

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	ctx := contextPkg.WithRequestID(context.Background(), requestID)
	session := translateService.NewSession(sessionID, c, h.translateService, h.log, h.sessionOpts)
	session.Run(ctx)
}
