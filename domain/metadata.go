package domain

// Model describes one entry in the model catalog.
type Model struct {
	ID              string `json:"id"`
	Object          string `json:"object"`
	Created         int64  `json:"created"`
	OwnedBy         string `json:"owned_by"`
	Name            string `json:"name"`
	TimeoutMS       *int   `json:"timeout_ms,omitempty" validate:"omitempty,gte=1"`
	StreamTimeoutMS *int   `json:"stream_timeout_ms,omitempty" validate:"omitempty,gte=1"`
}

// FunctionCall is a legacy-style function invocation requested by the model.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// URLCitation locates a cited source inside generated content.
type URLCitation struct {
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
	Title      string `json:"title"`
	URL        string `json:"url"`
}

// Annotation attaches provenance metadata to generated content.
type Annotation struct {
	Type        string      `json:"type"`
	URLCitation URLCitation `json:"url_citation"`
}

// LogProb is the log probability of a single token.
type LogProb struct {
	Token   string  `json:"token"`
	Logprob float64 `json:"logprob"`
	Bytes   []int   `json:"bytes"`
}

// LogProbs augments a token's log probability with the most likely
// alternatives at its position.
type LogProbs struct {
	LogProb
	TopLogprobs []LogProb `json:"top_logprobs"`
}

// LogProbsInfo carries log probability data for a choice.
type LogProbsInfo struct {
	Content []LogProbs `json:"content,omitempty"`
	Refusal []LogProbs `json:"refusal,omitempty"`
}

// CompletionTokenDetails breaks down completion-side token usage.
type CompletionTokenDetails struct {
	AcceptedPredictionTokens int `json:"accepted_prediction_tokens"`
	RejectedPredictionTokens int `json:"rejected_prediction_tokens"`
	AudioTokens              int `json:"audio_tokens"`
	ReasoningTokens          int `json:"reasoning_tokens"`
}

// PromptTokenDetails breaks down prompt-side token usage.
type PromptTokenDetails struct {
	AudioTokens  int `json:"audio_tokens"`
	CachedTokens int `json:"cached_tokens"`
}

// UsageInfo reports token consumption for a request.
type UsageInfo struct {
	TotalTokens            int                     `json:"total_tokens"`
	PromptTokens           int                     `json:"prompt_tokens,omitempty"`
	CompletionTokens       int                     `json:"completion_tokens,omitempty"`
	CompletionTokenDetails *CompletionTokenDetails `json:"completion_token_details,omitempty"`
	PromptTokenDetails     *PromptTokenDetails     `json:"prompt_token_details,omitempty"`
}
