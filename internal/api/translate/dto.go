package translate

const DefaultLanguage = "ASL"

type FrameRequest struct {
	Image    string `json:"image" validate:"required"`
	Language string `json:"language" validate:"omitempty,max=16"`
}

type FrameResponse struct {
	Text        string  `json:"text"`
	Confidence  float64 `json:"confidence"`
	Language    string  `json:"language"`
	RawResponse *string `json:"raw_response,omitempty"`
}

type MessageType string

const (
	MessageFrame       MessageType = "frame"
	MessagePing        MessageType = "ping"
	MessagePong        MessageType = "pong"
	MessageTranslation MessageType = "translation"
	MessageError       MessageType = "error"
)

// StreamMessage is an inbound stream message.
type StreamMessage struct {
	Type MessageType      `json:"type"`
	Data *StreamFrameData `json:"data,omitempty"`
}

type StreamFrameData struct {
	Image    string `json:"image"`
	Language string `json:"language,omitempty"`
}

// StreamReply is an outbound stream message.
type StreamReply struct {
	Type  MessageType        `json:"type"`
	Data  *StreamTranslation `json:"data,omitempty"`
	Error string             `json:"error,omitempty"`
}

type StreamTranslation struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

func LanguageOrDefault(language string) string {
	if language == "" {
		return DefaultLanguage
	}
	return language
}
