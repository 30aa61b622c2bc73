package translateHandler

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"SignBridge/internal/api/translate"
	translateService "SignBridge/internal/api/translate/service"
	"SignBridge/internal/middleware"
	"SignBridge/pkg/frame"
	"SignBridge/pkg/log"
	"SignBridge/pkg/model"
	"SignBridge/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type stubGateway struct {
	response string
	err      error
}

func (g stubGateway) Complete(context.Context, model.Prompt) (string, error) {
	return g.response, g.err
}

func (g stubGateway) Configured() bool { return true }
func (g stubGateway) Provider() string { return "stub" }

func newApp(gw model.Gateway) *fiber.App {
	logger := log.NewTestLogger()
	app := fiber.New()
	mw := middleware.New(logger, middleware.Options{RequestsPerSecond: 1000, Burst: 1000})
	app.Use(mw.NewRequestIDMiddleware())

	svc := translateService.NewTranslateService(logger, gw, frame.NewNormalizer(0, 0))
	New(logger, validator.New(), mw, svc, utils.New(), Options{}).Start(app.Group("/api"))
	return app
}

func pngImage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 10))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return body
}

func TestTranslateFrameJSON(t *testing.T) {
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngImage(t))

	tests := []struct {
		name       string
		gateway    model.Gateway
		body       string
		wantStatus int
		check      func(t *testing.T, body map[string]interface{})
	}{
		{
			name:       "translated",
			gateway:    stubGateway{response: `{"detected": true, "text": "hello", "confidence": 0.9}`},
			body:       `{"image": "` + encoded + `"}`,
			wantStatus: fiber.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				if body["text"] != "hello" || body["confidence"] != 0.9 || body["language"] != "ASL" {
					t.Errorf("body = %v", body)
				}
			},
		},
		{
			name:       "no sign",
			gateway:    stubGateway{response: "NO_SIGN_DETECTED"},
			body:       `{"image": "` + encoded + `", "language": "BSL"}`,
			wantStatus: fiber.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				if body["text"] != "" || body["confidence"] != 0.0 || body["language"] != "BSL" {
					t.Errorf("body = %v", body)
				}
			},
		},
		{
			name:       "invalid image",
			gateway:    stubGateway{},
			body:       `{"image": "data:image/png;base64,aGVsbG8="}`,
			wantStatus: fiber.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				if body["error"] != translate.ErrInvalidImage.Error() {
					t.Errorf("body = %v", body)
				}
			},
		},
		{
			name:       "missing image",
			gateway:    stubGateway{},
			body:       `{"language": "ASL"}`,
			wantStatus: fiber.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				if body["code"] != "VALIDATION_ERROR" {
					t.Errorf("body = %v", body)
				}
			},
		},
		{
			name:       "not configured",
			gateway:    model.Unconfigured{Name: "gemini"},
			body:       `{"image": "` + encoded + `"}`,
			wantStatus: fiber.StatusServiceUnavailable,
			check: func(t *testing.T, body map[string]interface{}) {
				if body["code"] != "MODEL_NOT_CONFIGURED" {
					t.Errorf("body = %v", body)
				}
			},
		},
		{
			name:       "model failure",
			gateway:    stubGateway{err: model.NewError("stub", errors.New("boom"))},
			body:       `{"image": "` + encoded + `"}`,
			wantStatus: fiber.StatusBadGateway,
			check: func(t *testing.T, body map[string]interface{}) {
				if body["code"] != "MODEL_ERROR" || body["details"] != "stub API error: boom" {
					t.Errorf("body = %v", body)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/translate/frame", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := newApp(tt.gateway).Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if resp.Header.Get(middleware.RequestIDKey) == "" {
				t.Error("missing request id header")
			}
			tt.check(t, decodeBody(t, resp))
		})
	}
}

func TestTranslateFrameMultipart(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="frame.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(pngImage(t)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.WriteField("language", "BSL"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/translate/frame", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	app := newApp(stubGateway{response: `{"detected": true, "text": "yes", "confidence": 0.6}`})
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["text"] != "yes" || body["language"] != "BSL" {
		t.Errorf("body = %v", body)
	}
}

func TestTranslateVideoNotImplemented(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/translate/video", nil)
	resp, err := newApp(stubGateway{}).Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotImplemented {
		t.Fatalf("status = %d, want 501", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["message"] != translate.ErrVideoNotImplemented.Error() {
		t.Errorf("body = %v", body)
	}
}

func TestStreamRequiresUpgrade(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/translate/stream", nil)
	resp, err := newApp(stubGateway{}).Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("status = %d, want 426", resp.StatusCode)
	}
}
