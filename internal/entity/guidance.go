package entity

type GuidanceStep struct {
	Step         int     `json:"step"`
	Description  string  `json:"description"`
	HandPosition string  `json:"hand_position"`
	Movement     *string `json:"movement"`
}

type Guidance struct {
	Steps []GuidanceStep `json:"steps"`
	Notes *string        `json:"notes"`
}

type VisualGuidanceStep struct {
	Step             int     `json:"step"`
	Word             string  `json:"word"`
	Description      string  `json:"description"`
	HandShape        string  `json:"hand_shape"`
	PalmOrientation  string  `json:"palm_orientation"`
	Location         string  `json:"location"`
	Movement         *string `json:"movement"`
	FacialExpression *string `json:"facial_expression"`
	VideoSearchQuery string  `json:"video_search_query"`
}

type VideoResource struct {
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Source    string  `json:"source"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

type VisualGuidance struct {
	Steps          []VisualGuidanceStep `json:"steps"`
	VideoResources []VideoResource      `json:"video_resources"`
	Tips           *string              `json:"tips"`
	CommonMistakes *string              `json:"common_mistakes"`
}
