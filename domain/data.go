package domain

// Audio is a voice response attached to a chat message.
type Audio struct {
	ID         string `json:"id"`
	ExpiresAt  int64  `json:"expires_at"`
	Data       string `json:"data"`
	Transcript string `json:"transcript"`
}

// ChatMessage is one turn of a conversation, in either direction.
type ChatMessage struct {
	Role         string        `json:"role" validate:"omitempty,oneof=system user assistant tool function developer"`
	Content      string        `json:"content"`
	Refusal      string        `json:"refusal,omitempty"`
	ToolCalls    []ToolCall    `json:"tool_calls,omitempty"`
	FunctionCall *FunctionCall `json:"function_call,omitempty"`
	Audio        *Audio        `json:"audio,omitempty"`
	Annotations  []Annotation  `json:"annotations,omitempty"`
}

// ChatChoice is one completion alternative returned by the model.
type ChatChoice struct {
	Index        int           `json:"index"`
	Message      ChatMessage   `json:"message"`
	FinishReason string        `json:"finish_reason"`
	Logprobs     *LogProbsInfo `json:"logprobs,omitempty"`
}

// TranscriptionWord is a single word with timing from a transcription.
type TranscriptionWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// TranscriptionSegment is a contiguous span of transcribed audio.
type TranscriptionSegment struct {
	ID               int     `json:"id"`
	Seek             int     `json:"seek"`
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Text             string  `json:"text"`
	Tokens           []int   `json:"tokens"`
	Temperature      float64 `json:"temperature"`
	AvgLogprob       float64 `json:"avg_logprob"`
	CompressionRatio float64 `json:"compression_ratio"`
	NoSpeechProb     float64 `json:"no_speech_prob"`
}

// StorageFile is the metadata record of an uploaded file.
type StorageFile struct {
	ID        string `json:"id"`
	Size      int64  `json:"size"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt *int64 `json:"expires_at,omitempty"`
	Filename  string `json:"filename"`
	Purpose   string `json:"purpose" validate:"omitempty,oneof=assistants assistants_output batch batch_output fine-tune fine-tune-results vision user_data evals"`
}

// Image is one generated or edited image, delivered by URL or inline.
type Image struct {
	URL           string `json:"url,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
	B64JSON       string `json:"b64_json,omitempty"`
}

// Embedding is one embedding vector with its position in the input batch.
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

// TeamKey is an API key managed at the team level.
type TeamKey struct {
	ID        string `json:"id"`
	APIKey    string `json:"api_key"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
