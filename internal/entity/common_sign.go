package entity

type CommonSign struct {
	Sign        string `json:"sign"`
	Description string `json:"description"`
}
