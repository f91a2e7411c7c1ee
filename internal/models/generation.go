package models

// GenerationRequest is the payload for one model invocation. ImageData, when
// present, is sent as an inline multimodal part ahead of the prompt.
type GenerationRequest struct {
	Prompt        string
	ImageData     []byte
	ImageMIMEType string
}

// GenerationResponse carries the model's raw text plus any grounding
// citations it attached. Citations are as-received: not yet deduplicated.
type GenerationResponse struct {
	Text      string
	Citations []Source
}
