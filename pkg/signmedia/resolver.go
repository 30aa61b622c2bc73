package signmedia

import (
	"context"

	"SignBridge/internal/entity"
)

// AlternateSources are search links shown next to every media result.
func AlternateSources(word string) []entity.AlternateSource {
	q := quote(word)
	return []entity.AlternateSource{
		{
			Name: "HandSpeak",
			URL:  HandSpeakBaseURL + "/word/search/index.php?id=" + q,
			Kind: entity.SourceSearch,
		},
		{
			Name: "SigningSavvy",
			URL:  "https://www.signingsavvy.com/search/" + q,
			Kind: entity.SourceSearch,
		},
		{
			Name: "YouTube",
			URL:  "https://www.youtube.com/results?search_query=ASL+sign+for+" + q,
			Kind: entity.SourceVideoSearch,
		},
	}
}

type MediaResolver struct {
	providers []MediaProvider
}

// NewMediaResolver queries providers in the order given. The primary
// provider's result is returned when none of them finds media.
func NewMediaResolver(primary MediaProvider, fallbacks ...MediaProvider) *MediaResolver {
	return &MediaResolver{providers: append([]MediaProvider{primary}, fallbacks...)}
}

func (r *MediaResolver) Resolve(ctx context.Context, word string) entity.MediaResult {
	var primary entity.MediaResult
	for i, p := range r.providers {
		result := p.Fetch(ctx, word)
		if i == 0 {
			primary = result
		}
		if result.Found && result.MediaURL != nil {
			return withAlternates(result, word)
		}
	}
	return withAlternates(primary, word)
}

func withAlternates(result entity.MediaResult, word string) entity.MediaResult {
	result.AlternateSources = AlternateSources(word)
	if result.MediaURL == nil {
		result.Found = false
	}
	return result
}
