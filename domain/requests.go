package domain

// ChatCompletionsRequest creates a model response for a conversation.
type ChatCompletionsRequest struct {
	Model               string             `json:"model" validate:"required"`
	Messages            []ChatMessage      `json:"messages" validate:"required,min=1,dive"`
	Store               *bool              `json:"store,omitempty"`
	Metadata            map[string]string  `json:"metadata,omitempty"`
	FrequencyPenalty    *float64           `json:"frequency_penalty,omitempty" validate:"omitempty,gte=-2,lte=2"`
	LogitBias           map[string]float64 `json:"logit_bias,omitempty"`
	Logprobs            *bool              `json:"logprobs,omitempty"`
	TopLogprobs         *int               `json:"top_logprobs,omitempty" validate:"omitempty,gte=0,lte=20"`
	MaxTokens           *int               `json:"max_tokens,omitempty" validate:"omitempty,gte=1"`
	MaxCompletionTokens *int               `json:"max_completion_tokens,omitempty" validate:"omitempty,gte=1"`
	N                   *int               `json:"n,omitempty" validate:"omitempty,gte=1,lte=128"`
	Modalities          []string           `json:"modalities,omitempty" validate:"omitempty,dive,oneof=text audio"`
	PresencePenalty     *float64           `json:"presence_penalty,omitempty" validate:"omitempty,gte=-2,lte=2"`
	ResponseFormat      map[string]any     `json:"response_format,omitempty"`
	Seed                *int64             `json:"seed,omitempty"`
	ServiceTier         string             `json:"service_tier,omitempty" validate:"omitempty,oneof=auto default"`
	Stop                []string           `json:"stop,omitempty"`
	Stream              *bool              `json:"stream,omitempty"`
	StreamOptions       map[string]any     `json:"stream_options,omitempty"`
	Temperature         *float64           `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
	TopP                *float64           `json:"top_p,omitempty" validate:"omitempty,gte=0,lte=1"`
	Tools               []map[string]any   `json:"tools,omitempty"`
	ToolChoice          any                `json:"tool_choice,omitempty"`
	ParallelToolCalls   *bool              `json:"parallel_tool_calls,omitempty"`
	FunctionCall        any                `json:"function_call,omitempty"`
	Functions           []map[string]any   `json:"functions,omitempty"`
	Thinking            map[string]any     `json:"thinking,omitempty"`
}

// EmbeddingsRequest produces embedding vectors for the given input.
type EmbeddingsRequest struct {
	Model          string `json:"model" validate:"required"`
	Input          any    `json:"input" validate:"required"`
	EncodingFormat string `json:"encoding_format,omitempty" validate:"omitempty,oneof=float base64"`
	Dimensions     *int   `json:"dimensions,omitempty" validate:"omitempty,gte=1"`
}

// AudioSpeechRequest synthesizes speech from text.
type AudioSpeechRequest struct {
	Model          string   `json:"model" validate:"required"`
	Input          string   `json:"input" validate:"required,max=4096"`
	Voice          string   `json:"voice" validate:"required,oneof=alloy echo fable onyx nova shimmer"`
	ResponseFormat string   `json:"response_format,omitempty" validate:"omitempty,oneof=mp3 opus aac flac wav pcm"`
	Speed          *float64 `json:"speed,omitempty" validate:"omitempty,gte=0.25,lte=4"`
}

// AudioTranscriptionRequest transcribes audio into the input language.
type AudioTranscriptionRequest struct {
	Model                  string   `json:"model" validate:"required"`
	Language               string   `json:"language,omitempty"`
	Prompt                 string   `json:"prompt,omitempty"`
	ResponseFormat         string   `json:"response_format,omitempty" validate:"omitempty,oneof=json text srt verbose_json vtt"`
	Temperature            *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=1"`
	TimestampGranularities []string `json:"timestamp_granularities,omitempty" validate:"omitempty,dive,oneof=word segment"`
}

// AudioTranslationRequest translates audio into English.
type AudioTranslationRequest struct {
	Model          string   `json:"model" validate:"required"`
	Prompt         string   `json:"prompt,omitempty"`
	ResponseFormat string   `json:"response_format,omitempty" validate:"omitempty,oneof=json text srt verbose_json vtt"`
	Temperature    *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// ImageGenerationRequest creates images from a text prompt.
type ImageGenerationRequest struct {
	Prompt         string `json:"prompt" validate:"required"`
	Model          string `json:"model" validate:"required"`
	N              *int   `json:"n,omitempty" validate:"omitempty,gte=1,lte=10"`
	Quality        string `json:"quality,omitempty" validate:"omitempty,oneof=standard hd"`
	ResponseFormat string `json:"response_format,omitempty" validate:"omitempty,oneof=url b64_json"`
	Size           string `json:"size,omitempty" validate:"omitempty,oneof=256x256 512x512 1024x1024 1792x1024 1024x1792"`
	Style          string `json:"style,omitempty" validate:"omitempty,oneof=vivid natural"`
}

// ImageEditRequest edits an uploaded image according to a prompt.
type ImageEditRequest struct {
	Prompt         string `json:"prompt" validate:"required,max=1000"`
	Model          string `json:"model" validate:"required"`
	N              *int   `json:"n,omitempty" validate:"omitempty,gte=1,lte=10"`
	ResponseFormat string `json:"response_format,omitempty" validate:"omitempty,oneof=url b64_json"`
	Size           string `json:"size,omitempty" validate:"omitempty,oneof=256x256 512x512 1024x1024"`
}

// ImageVariationRequest produces variations of an uploaded image.
type ImageVariationRequest struct {
	Model          string `json:"model" validate:"required"`
	N              *int   `json:"n,omitempty" validate:"omitempty,gte=1,lte=10"`
	ResponseFormat string `json:"response_format,omitempty" validate:"omitempty,oneof=url b64_json"`
	Size           string `json:"size,omitempty" validate:"omitempty,oneof=256x256 512x512 1024x1024"`
}

// StorageUploadRequest uploads a file for later use by other endpoints.
type StorageUploadRequest struct {
	File    string `json:"file" validate:"required"`
	Purpose string `json:"purpose" validate:"required,oneof=assistants batch fine-tune vision user_data evals"`
}

// StorageListRequest pages through uploaded files. Sent as query parameters.
type StorageListRequest struct {
	After   string `json:"after,omitempty"`
	Limit   *int   `json:"limit,omitempty" validate:"omitempty,gte=1,lte=10000"`
	Order   string `json:"order,omitempty" validate:"omitempty,oneof=asc desc"`
	Purpose string `json:"purpose,omitempty" validate:"omitempty,oneof=assistants batch fine-tune vision user_data evals"`
}

// StorageGetRequest fetches a file's metadata. The file is addressed by the
// endpoint path, so the request body is empty.
type StorageGetRequest struct{}

// StorageDownloadRequest fetches a file's content. Addressed by path.
type StorageDownloadRequest struct{}

// StorageDeleteRequest removes a file. Addressed by path.
type StorageDeleteRequest struct{}

// TeamKeyCreateRequest provisions a new team API key.
type TeamKeyCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

// TeamKeyUpdateRequest renames an existing team API key.
type TeamKeyUpdateRequest struct {
	Name string `json:"name" validate:"required"`
}

// TeamKeyDeleteRequest revokes a team API key. Addressed by path.
type TeamKeyDeleteRequest struct{}

// TeamKeyRegenerateRequest rotates a team API key's secret. Addressed by
// path; no parameters.
type TeamKeyRegenerateRequest struct{}

// TeamKeyListRequest lists the team's API keys.
type TeamKeyListRequest struct{}

// ModelsListRequest lists the models available to the caller.
type ModelsListRequest struct{}
