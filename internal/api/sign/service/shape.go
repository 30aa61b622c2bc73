package signService

import (
	"fmt"
	"net/url"

	"SignBridge/internal/entity"
	"SignBridge/pkg/llmjson"
)

const (
	guidanceShapeID       = llmjson.ShapeID("guidance")
	visualGuidanceShapeID = llmjson.ShapeID("visual_guidance")
	handPoseShapeID       = llmjson.ShapeID("hand_pose")

	seeDescription      = "See description"
	unparsedNote        = "Could not parse structured response"
	relaxedDescription  = "Default relaxed hand position. Could not parse specific pose."
	handSpeakSearchBase = "https://www.handspeak.com/word/search/index.php?id="
)

var guidanceShape = llmjson.Shape[entity.Guidance, entity.Guidance]{
	ID: guidanceShapeID,
	Convert: func(g entity.Guidance, _ llmjson.Input) entity.Guidance {
		if g.Steps == nil {
			g.Steps = []entity.GuidanceStep{}
		}
		return g
	},
	Fallback: func(in llmjson.Input) entity.Guidance {
		notes := unparsedNote
		return entity.Guidance{
			Steps: []entity.GuidanceStep{{
				Step:         1,
				Description:  in.Selected,
				HandPosition: seeDescription,
			}},
			Notes: &notes,
		}
	},
}

// visualGuidanceShape needs the request text and language for its fallback.
func visualGuidanceShape(text, language string) llmjson.Shape[entity.VisualGuidance, entity.VisualGuidance] {
	return llmjson.Shape[entity.VisualGuidance, entity.VisualGuidance]{
		ID: visualGuidanceShapeID,
		Convert: func(v entity.VisualGuidance, _ llmjson.Input) entity.VisualGuidance {
			if v.Steps == nil {
				v.Steps = []entity.VisualGuidanceStep{}
			}
			if v.VideoResources == nil {
				v.VideoResources = []entity.VideoResource{}
			}
			return v
		},
		Fallback: func(in llmjson.Input) entity.VisualGuidance {
			tips := unparsedNote
			return entity.VisualGuidance{
				Steps: []entity.VisualGuidanceStep{{
					Step:             1,
					Word:             text,
					Description:      in.Selected,
					HandShape:        seeDescription,
					PalmOrientation:  seeDescription,
					Location:         seeDescription,
					VideoSearchQuery: fmt.Sprintf("%s sign for %s", language, text),
				}},
				VideoResources: []entity.VideoResource{{
					Title:  fmt.Sprintf("Search for '%s' on HandSpeak", text),
					URL:    handSpeakSearchBase + url.QueryEscape(text),
					Source: "HandSpeak",
				}},
				Tips: &tips,
			}
		},
	}
}

type fingerPayload struct {
	Curl   *llmjson.Float `json:"curl"`
	Spread *llmjson.Float `json:"spread"`
}

type rotationPayload struct {
	X llmjson.Float `json:"x"`
	Y llmjson.Float `json:"y"`
	Z llmjson.Float `json:"z"`
}

type posePayload struct {
	Thumb         *fingerPayload   `json:"thumb"`
	Index         *fingerPayload   `json:"index"`
	Middle        *fingerPayload   `json:"middle"`
	Ring          *fingerPayload   `json:"ring"`
	Pinky         *fingerPayload   `json:"pinky"`
	WristRotation *rotationPayload `json:"wrist_rotation"`
	PalmDirection string           `json:"palm_direction"`
}

type handPosePayload struct {
	Pose        *posePayload `json:"pose"`
	Description string       `json:"description"`
}

type poseResult struct {
	Pose        entity.HandPose
	Description string
}

var handPoseShape = llmjson.Shape[handPosePayload, poseResult]{
	ID: handPoseShapeID,
	Convert: func(p handPosePayload, _ llmjson.Input) poseResult {
		pose := entity.RelaxedHandPose()
		if p.Pose != nil {
			pose.Thumb = p.Pose.Thumb.finger(pose.Thumb)
			pose.Index = p.Pose.Index.finger(pose.Index)
			pose.Middle = p.Pose.Middle.finger(pose.Middle)
			pose.Ring = p.Pose.Ring.finger(pose.Ring)
			pose.Pinky = p.Pose.Pinky.finger(pose.Pinky)
			if r := p.Pose.WristRotation; r != nil {
				pose.WristRotation = entity.Rotation{X: float64(r.X), Y: float64(r.Y), Z: float64(r.Z)}
			}
			if p.Pose.PalmDirection != "" {
				pose.PalmDirection = p.Pose.PalmDirection
			}
		}
		return poseResult{Pose: pose, Description: p.Description}
	},
	Fallback: func(llmjson.Input) poseResult {
		return poseResult{Pose: entity.RelaxedHandPose(), Description: relaxedDescription}
	},
}

// finger overlays the decoded values on def, clamped to their ranges.
func (f *fingerPayload) finger(def entity.FingerPose) entity.FingerPose {
	if f == nil {
		return def
	}
	if f.Curl != nil {
		def.Curl = llmjson.Clamp(float64(*f.Curl), 0, 1)
	}
	if f.Spread != nil {
		def.Spread = llmjson.Clamp(float64(*f.Spread), -1, 1)
	}
	return def
}
