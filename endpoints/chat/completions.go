// Package chat binds the chat completion endpoints of the Nexos AI API.
package chat

import (
	"errors"

	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/domain"
)

// Operation names accepted by the completions request manager.
const (
	OpWithModel       = "with_model"
	OpWithTemperature = "with_temperature"
	OpWithTopP        = "with_top_p"
	OpWithMaxTokens   = "with_max_tokens"
	OpAddMessage      = "add_message"
	OpWithTools       = "with_tools"
	OpWithoutSampling = "without_sampling"
)

// Completions is the controller for "POST: /chat/completions".
type Completions struct {
	*core.Controller[domain.ChatCompletionsRequest, domain.ChatCompletionsResponse]
}

// NewCompletions builds the completions controller on the given transport.
func NewCompletions(transport *core.Transport) *Completions {
	return &Completions{core.MustController[domain.ChatCompletionsRequest, domain.ChatCompletionsResponse](
		"chat.completions", "POST: /chat/completions", transport,
		core.WithOperations[domain.ChatCompletionsRequest, domain.ChatCompletionsResponse](Operations()),
	)}
}

// Operations builds the completions registry. Derived controllers extend the
// returned copy rather than mutating a shared one.
func Operations() *core.Operations[domain.ChatCompletionsRequest] {
	return core.NewOperations[domain.ChatCompletionsRequest]().
		MustRegister(OpWithModel, withModel).
		MustRegister(OpWithTemperature, withTemperature).
		MustRegister(OpWithTopP, withTopP).
		MustRegister(OpWithMaxTokens, withMaxTokens).
		MustRegister(OpAddMessage, addMessage).
		MustRegister(OpWithTools, withTools).
		MustRegister(OpWithoutSampling, withoutSampling)
}

func withModel(pending *domain.ChatCompletionsRequest, args core.Args) error {
	model, ok := args.String("model")
	if !ok {
		return errors.New(`requires a string argument "model"`)
	}
	pending.Model = model
	return nil
}

func withTemperature(pending *domain.ChatCompletionsRequest, args core.Args) error {
	temperature, ok := args.Float("temperature")
	if !ok {
		return errors.New(`requires a numeric argument "temperature"`)
	}
	pending.Temperature = &temperature
	return nil
}

func withTopP(pending *domain.ChatCompletionsRequest, args core.Args) error {
	topP, ok := args.Float("top_p")
	if !ok {
		return errors.New(`requires a numeric argument "top_p"`)
	}
	pending.TopP = &topP
	return nil
}

func withMaxTokens(pending *domain.ChatCompletionsRequest, args core.Args) error {
	maxTokens, ok := args.Int("max_tokens")
	if !ok {
		return errors.New(`requires an integer argument "max_tokens"`)
	}
	pending.MaxTokens = &maxTokens
	return nil
}

func addMessage(pending *domain.ChatCompletionsRequest, args core.Args) error {
	role, ok := args.String("role")
	if !ok {
		return errors.New(`requires a string argument "role"`)
	}
	content, ok := args.String("content")
	if !ok {
		return errors.New(`requires a string argument "content"`)
	}
	pending.Messages = append(pending.Messages, domain.ChatMessage{Role: role, Content: content})
	return nil
}

func withTools(pending *domain.ChatCompletionsRequest, args core.Args) error {
	tools, ok := args["tools"].([]map[string]any)
	if !ok {
		return errors.New(`requires a "tools" argument of type []map[string]any`)
	}
	pending.Tools = tools
	return nil
}

// withoutSampling strips the sampling knobs so the service applies its own
// defaults.
func withoutSampling(pending *domain.ChatCompletionsRequest, _ core.Args) error {
	pending.Temperature = nil
	pending.TopP = nil
	pending.Seed = nil
	return nil
}
