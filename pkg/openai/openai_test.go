package openai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"SignBridge/pkg/model"
)

func TestNewWithoutKeyIsUnconfigured(t *testing.T) {
	gw := New(Config{APIKey: "  "})
	if gw.Configured() {
		t.Fatal("gateway without key reports configured")
	}
	if _, err := gw.Complete(context.Background(), model.TextPrompt("hi")); !model.IsNotConfigured(err) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
	if gw.Provider() != ProviderName {
		t.Errorf("provider = %q", gw.Provider())
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		prompt    model.Prompt
		want      string
		wantErr   bool
		wantInReq string
	}{
		{
			name:      "text",
			status:    http.StatusOK,
			body:      `{"id":"1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"{\"steps\":[]}"},"finish_reason":"stop"}]}`,
			prompt:    model.TextPrompt("describe hello"),
			want:      `{"steps":[]}`,
			wantInReq: "describe hello",
		},
		{
			name:      "image sent as data url",
			status:    http.StatusOK,
			body:      `{"id":"2","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`,
			prompt:    model.ImagePrompt("what sign", []byte{0xff, 0xd8}),
			want:      "ok",
			wantInReq: "data:image/jpeg;base64,/9g=",
		},
		{
			name:    "empty choices",
			status:  http.StatusOK,
			body:    `{"id":"3","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[]}`,
			prompt:  model.TextPrompt("x"),
			wantErr: true,
		},
		{
			name:    "api error",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"message":"quota exceeded","type":"rate_limit"}}`,
			prompt:  model.TextPrompt("x"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				raw, _ := io.ReadAll(r.Body)
				gotBody = string(raw)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			gw := New(Config{APIKey: "test", BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second})
			got, err := gw.Complete(context.Background(), tt.prompt)

			if tt.wantErr {
				var me *model.Error
				if !errors.As(err, &me) || me.Provider != ProviderName {
					t.Fatalf("err = %v, want *model.Error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Complete: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if !strings.Contains(gotBody, tt.wantInReq) {
				t.Errorf("request %s does not contain %q", gotBody, tt.wantInReq)
			}
		})
	}
}
