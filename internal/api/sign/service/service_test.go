package signService

import (
	"context"
	"errors"
	"strings"
	"testing"

	"SignBridge/internal/api/sign"
	"SignBridge/internal/entity"
	"SignBridge/pkg/log"
	"SignBridge/pkg/model"
)

type stubGateway struct {
	response string
	err      error
	prompts  []string
}

func (g *stubGateway) Complete(_ context.Context, prompt model.Prompt) (string, error) {
	g.prompts = append(g.prompts, prompt.Text)
	return g.response, g.err
}

func (g *stubGateway) Configured() bool { return true }
func (g *stubGateway) Provider() string { return "stub" }

type stubMedia struct {
	result entity.MediaResult
	words  []string
}

func (m *stubMedia) Resolve(_ context.Context, word string) entity.MediaResult {
	m.words = append(m.words, word)
	return m.result
}

func newService(gw model.Gateway) ISignService {
	return NewSignService(log.NewTestLogger(), gw, &stubMedia{})
}

func TestGuidance(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantSteps []entity.GuidanceStep
		wantNotes string
	}{
		{
			name: "structured keeps step order",
			response: "```json\n" + `{"steps": [
				{"step": 2, "description": "second", "hand_position": "flat", "movement": null},
				{"step": 1, "description": "first", "hand_position": "fist", "movement": "tap"}
			], "notes": "practice"}` + "\n```",
			wantSteps: []entity.GuidanceStep{
				{Step: 2, Description: "second", HandPosition: "flat"},
				{Step: 1, Description: "first", HandPosition: "fist", Movement: strPtr("tap")},
			},
			wantNotes: "practice",
		},
		{
			name:      "missing steps",
			response:  `{"notes": "nothing to sign"}`,
			wantSteps: []entity.GuidanceStep{},
			wantNotes: "nothing to sign",
		},
		{
			name:     "prose fallback",
			response: "Wave your open hand from the forehead.",
			wantSteps: []entity.GuidanceStep{
				{Step: 1, Description: "Wave your open hand from the forehead.", HandPosition: "See description"},
			},
			wantNotes: "Could not parse structured response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{response: tt.response}
			got, err := newService(gw).Guidance(context.Background(), "hello", "")
			if err != nil {
				t.Fatalf("Guidance: %v", err)
			}

			if len(got.Steps) != len(tt.wantSteps) {
				t.Fatalf("steps = %+v, want %+v", got.Steps, tt.wantSteps)
			}
			for i := range tt.wantSteps {
				if !stepEqual(got.Steps[i], tt.wantSteps[i]) {
					t.Errorf("step %d = %+v, want %+v", i, got.Steps[i], tt.wantSteps[i])
				}
			}
			if got.Notes == nil || *got.Notes != tt.wantNotes {
				t.Errorf("notes = %v, want %q", got.Notes, tt.wantNotes)
			}
			if !strings.Contains(gw.prompts[0], "ASL") || !strings.Contains(gw.prompts[0], `"hello"`) {
				t.Errorf("prompt does not carry language and text")
			}
		})
	}
}

func TestVisualGuidanceFallback(t *testing.T) {
	gw := &stubGateway{response: "Sorry, here is some prose."}
	got, err := newService(gw).VisualGuidance(context.Background(), "thank you", "BSL")
	if err != nil {
		t.Fatalf("VisualGuidance: %v", err)
	}

	if len(got.Steps) != 1 {
		t.Fatalf("steps = %+v, want one", got.Steps)
	}
	step := got.Steps[0]
	if step.Word != "thank you" || step.Description != "Sorry, here is some prose." {
		t.Errorf("step = %+v", step)
	}
	if step.HandShape != "See description" || step.PalmOrientation != "See description" || step.Location != "See description" {
		t.Errorf("step placeholders = %+v", step)
	}
	if step.VideoSearchQuery != "BSL sign for thank you" {
		t.Errorf("video search query = %q", step.VideoSearchQuery)
	}
	if len(got.VideoResources) != 1 || got.VideoResources[0].URL != "https://www.handspeak.com/word/search/index.php?id=thank+you" {
		t.Errorf("video resources = %+v", got.VideoResources)
	}
	if got.Tips == nil || *got.Tips != "Could not parse structured response" {
		t.Errorf("tips = %v", got.Tips)
	}
}

func TestVisualGuidanceStructured(t *testing.T) {
	gw := &stubGateway{response: `{
		"steps": [{"step": 1, "word": "hello", "description": "salute", "hand_shape": "flat hand",
			"palm_orientation": "out", "location": "forehead", "movement": "away", "facial_expression": null,
			"video_search_query": "ASL sign for hello"}],
		"tips": "smile"
	}`}
	got, err := newService(gw).VisualGuidance(context.Background(), "hello", "ASL")
	if err != nil {
		t.Fatalf("VisualGuidance: %v", err)
	}
	if len(got.Steps) != 1 || got.Steps[0].HandShape != "flat hand" || got.Steps[0].FacialExpression != nil {
		t.Errorf("steps = %+v", got.Steps)
	}
	if got.VideoResources == nil || len(got.VideoResources) != 0 {
		t.Errorf("video resources = %#v, want empty list", got.VideoResources)
	}
	if got.CommonMistakes != nil {
		t.Errorf("common mistakes = %v, want nil", *got.CommonMistakes)
	}
}

func TestHandPose(t *testing.T) {
	tests := []struct {
		name     string
		response string
		check    func(t *testing.T, got *entity.SignPose)
	}{
		{
			name: "structured and clamped",
			response: `{"pose": {
				"thumb": {"curl": 1.5, "spread": -3},
				"index": {"curl": 0, "spread": 0},
				"middle": {"curl": 0.9, "spread": 0.1},
				"ring": {"curl": "0.9", "spread": 0},
				"pinky": {"curl": 0.9},
				"wrist_rotation": {"x": 0.5, "y": -0.25, "z": 0},
				"palm_direction": "left"
			}, "description": "V shape"}`,
			check: func(t *testing.T, got *entity.SignPose) {
				if got.Pose.Thumb != (entity.FingerPose{Curl: 1, Spread: -1}) {
					t.Errorf("thumb = %+v, want clamped", got.Pose.Thumb)
				}
				if got.Pose.Ring.Curl != 0.9 {
					t.Errorf("ring curl = %v", got.Pose.Ring.Curl)
				}
				if got.Pose.Pinky != (entity.FingerPose{Curl: 0.9, Spread: 0}) {
					t.Errorf("pinky = %+v", got.Pose.Pinky)
				}
				if got.Pose.WristRotation != (entity.Rotation{X: 0.5, Y: -0.25}) {
					t.Errorf("wrist = %+v", got.Pose.WristRotation)
				}
				if got.Pose.PalmDirection != "left" || got.Description != "V shape" {
					t.Errorf("pose = %+v", got)
				}
			},
		},
		{
			name:     "missing pose",
			response: `{"description": "unknown"}`,
			check: func(t *testing.T, got *entity.SignPose) {
				if got.Pose != entity.RelaxedHandPose() {
					t.Errorf("pose = %+v, want relaxed", got.Pose)
				}
				if got.Description != "unknown" {
					t.Errorf("description = %q", got.Description)
				}
			},
		},
		{
			name:     "prose fallback",
			response: "I can't model that sign.",
			check: func(t *testing.T, got *entity.SignPose) {
				if got.Pose != entity.RelaxedHandPose() {
					t.Errorf("pose = %+v, want relaxed", got.Pose)
				}
				if got.Description != "Default relaxed hand position. Could not parse specific pose." {
					t.Errorf("description = %q", got.Description)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newService(&stubGateway{response: tt.response}).HandPose(context.Background(), "V", "")
			if err != nil {
				t.Fatalf("HandPose: %v", err)
			}
			if got.Sign != "V" {
				t.Errorf("sign = %q, want V", got.Sign)
			}
			tt.check(t, got)
		})
	}
}

func TestAlphabet(t *testing.T) {
	gw := &stubGateway{response: `{"steps": [{"step": 1, "description": "closed fist, thumb alongside", "hand_position": "fist"}]}`}
	svc := newService(gw)

	letter, step, err := svc.Alphabet(context.Background(), "a")
	if err != nil {
		t.Fatalf("Alphabet: %v", err)
	}
	if letter != "A" {
		t.Errorf("letter = %q, want A", letter)
	}
	if step == nil || step.HandPosition != "fist" {
		t.Errorf("step = %+v", step)
	}
	if !strings.Contains(gw.prompts[0], `"A"`) {
		t.Errorf("prompt does not ask for the upper-case letter")
	}

	for _, bad := range []string{"", "ab", "1", "?", " "} {
		if _, _, err := svc.Alphabet(context.Background(), bad); !errors.Is(err, sign.ErrInvalidLetter) {
			t.Errorf("Alphabet(%q) err = %v, want ErrInvalidLetter", bad, err)
		}
	}
}

func TestAlphabetWithoutSteps(t *testing.T) {
	_, step, err := newService(&stubGateway{response: `{"steps": []}`}).Alphabet(context.Background(), "z")
	if err != nil {
		t.Fatalf("Alphabet: %v", err)
	}
	if step != nil {
		t.Errorf("step = %+v, want nil", step)
	}
}

func TestModelErrors(t *testing.T) {
	svc := newService(model.Unconfigured{Name: "gemini"})
	if _, err := svc.Guidance(context.Background(), "hi", ""); !errors.Is(err, sign.ErrModelNotConfigured) || !errors.Is(err, model.ErrNotConfigured) {
		t.Errorf("err = %v, want not configured", err)
	}

	svc = newService(&stubGateway{err: model.NewError("stub", errors.New("timeout"))})
	_, err := svc.HandPose(context.Background(), "B", "")
	if !errors.Is(err, sign.ErrModelFailed) {
		t.Errorf("err = %v, want model failed", err)
	}
	var modelErr *model.Error
	if !errors.As(err, &modelErr) || modelErr.Provider != "stub" {
		t.Errorf("model error not preserved: %v", err)
	}
}

func TestCommonSigns(t *testing.T) {
	svc := newService(&stubGateway{})
	signs := svc.CommonSigns()
	if len(signs) != 8 {
		t.Fatalf("got %d signs, want 8", len(signs))
	}
	if signs[0].Sign != "Hello" || signs[7].Sign != "I love you" {
		t.Errorf("signs = %+v", signs)
	}

	signs[0].Sign = "changed"
	if svc.CommonSigns()[0].Sign != "Hello" {
		t.Error("CommonSigns exposes shared state")
	}
}

func TestMedia(t *testing.T) {
	url := "https://example.com/hello.mp4"
	media := &stubMedia{result: entity.MediaResult{Word: "hello", MediaURL: &url, Found: true, MediaKind: entity.MediaVideo}}
	svc := NewSignService(log.NewTestLogger(), &stubGateway{}, media)

	got := svc.Media(context.Background(), "hello")
	if !got.Found || *got.MediaURL != url {
		t.Errorf("result = %+v", got)
	}
	if len(media.words) != 1 || media.words[0] != "hello" {
		t.Errorf("resolver calls = %v", media.words)
	}
}

func strPtr(s string) *string { return &s }

func stepEqual(a, b entity.GuidanceStep) bool {
	if a.Step != b.Step || a.Description != b.Description || a.HandPosition != b.HandPosition {
		return false
	}
	if (a.Movement == nil) != (b.Movement == nil) {
		return false
	}
	return a.Movement == nil || *a.Movement == *b.Movement
}
