package domain

import "encoding/json"

// ChatCompletionsResponse is the model's answer to a chat completion.
type ChatCompletionsResponse struct {
	ID                string       `json:"id"`
	Object            string       `json:"object"`
	Created           int64        `json:"created"`
	Model             string       `json:"model"`
	Choices           []ChatChoice `json:"choices"`
	Usage             *UsageInfo   `json:"usage,omitempty"`
	SystemFingerprint string       `json:"system_fingerprint,omitempty"`
	ServiceTier       string       `json:"service_tier,omitempty" validate:"omitempty,oneof=scale default"`
}

// FirstContent returns the content of the first choice, or "" when the
// response is empty (including the null response).
func (r ChatCompletionsResponse) FirstContent() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// EmbeddingsResponse carries the requested embedding vectors.
type EmbeddingsResponse struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  *UsageInfo  `json:"usage,omitempty"`
}

// SpeechResponse acknowledges a speech synthesis request. The synthesized
// audio itself travels as the raw response body, not as JSON fields.
type SpeechResponse struct{}

// TranscriptionResponse is the text extracted from submitted audio.
type TranscriptionResponse struct {
	Text     string                 `json:"text"`
	Language string                 `json:"language,omitempty"`
	Duration string                 `json:"duration,omitempty"`
	Words    []TranscriptionWord    `json:"words,omitempty"`
	Segments []TranscriptionSegment `json:"segments,omitempty"`
	Model    string                 `json:"model,omitempty"`
}

// TranslationResponse is the English translation of submitted audio.
type TranslationResponse struct {
	Text     string                 `json:"text"`
	Duration string                 `json:"duration,omitempty"`
	Model    string                 `json:"model,omitempty"`
	Language string                 `json:"language,omitempty"`
	Segments []TranscriptionSegment `json:"segments,omitempty"`
}

// ImagesResponse carries generated, edited, or varied images.
type ImagesResponse struct {
	Created int64   `json:"created"`
	Data    []Image `json:"data"`
}

// StorageFileResponse is a single file's metadata record.
type StorageFileResponse struct {
	StorageFile
}

// StorageListResponse is a page of file metadata records.
type StorageListResponse struct {
	Data []StorageFile `json:"data"`
}

// StorageContentResponse is a downloaded file's content.
type StorageContentResponse struct {
	Content []byte `json:"content"`
}

// StorageDeleteResponse acknowledges a file deletion.
type StorageDeleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// TeamKeyResponse is a single team API key record, returned by create,
// update and regenerate.
type TeamKeyResponse struct {
	TeamKey
}

// TeamKeyListResponse is the team's key roster. The API returns a bare JSON
// array, so (un)marshaling maps it onto the Keys field.
type TeamKeyListResponse struct {
	Keys []TeamKey `json:"-"`
}

// UnmarshalJSON decodes the top-level array form.
func (r *TeamKeyListResponse) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &r.Keys)
}

// MarshalJSON re-encodes the top-level array form.
func (r TeamKeyListResponse) MarshalJSON() ([]byte, error) {
	if r.Keys == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Keys)
}

// TeamKeyDeleteResponse acknowledges a key revocation.
type TeamKeyDeleteResponse struct{}

// ModelsResponse is the model catalog.
type ModelsResponse struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
	Total  int     `json:"total"`
}
