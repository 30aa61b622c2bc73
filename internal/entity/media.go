package entity

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

type SourceKind string

const (
	SourceSearch      SourceKind = "search"
	SourceVideoSearch SourceKind = "video_search"
)

type AlternateSource struct {
	Name string     `json:"name"`
	URL  string     `json:"url"`
	Kind SourceKind `json:"type"`
}

// MediaResult describes demonstration media for a word. Found is true
// exactly when MediaURL is set.
type MediaResult struct {
	Word             string            `json:"word"`
	MediaURL         *string           `json:"gif_url"`
	PageURL          string            `json:"page_url"`
	SourceName       string            `json:"source"`
	Found            bool              `json:"found"`
	MediaKind        MediaKind         `json:"media_type"`
	AlternateSources []AlternateSource `json:"alt_sources"`
}

func (m *MediaResult) SetMedia(url string, kind MediaKind) {
	m.MediaURL = &url
	m.MediaKind = kind
	m.Found = true
}
