package sign

import "SignBridge/internal/entity"

const DefaultLanguage = "ASL"

type GuidanceRequest struct {
	Text     string `json:"text" validate:"required,min=1,max=500"`
	Language string `json:"language" validate:"omitempty,max=16"`
}

type GuidanceResponse struct {
	Text     string                `json:"text"`
	Language string                `json:"language"`
	Steps    []entity.GuidanceStep `json:"steps"`
	Notes    *string               `json:"notes"`
}

type VisualGuidanceRequest struct {
	Text     string `json:"text" validate:"required,min=1,max=200"`
	Language string `json:"language" validate:"omitempty,max=16"`
}

type VisualGuidanceResponse struct {
	Text           string                      `json:"text"`
	Language       string                      `json:"language"`
	Steps          []entity.VisualGuidanceStep `json:"steps"`
	VideoResources []entity.VideoResource      `json:"video_resources"`
	Tips           *string                     `json:"tips"`
	CommonMistakes *string                     `json:"common_mistakes"`
}

type HandPoseRequest struct {
	Sign     string `json:"sign" validate:"required,min=1,max=50"`
	Language string `json:"language" validate:"omitempty,max=16"`
}

type AlphabetResponse struct {
	Letter   string               `json:"letter"`
	Guidance *entity.GuidanceStep `json:"guidance"`
}

type CommonSignsResponse struct {
	Signs []entity.CommonSign `json:"signs"`
}

type MediaRequest struct {
	Word string `json:"word" validate:"required,min=1,max=100"`
}

func LanguageOrDefault(language string) string {
	if language == "" {
		return DefaultLanguage
	}
	return language
}
