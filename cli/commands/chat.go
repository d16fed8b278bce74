package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/domain"
	"github.com/nexos-labs/nexos-go/endpoints/chat"
)

var (
	chatModel       string
	chatPrompt      string
	chatSystem      string
	chatTemperature float64
	chatMaxTokens   int
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Send a chat completion request",
	Long: `Send a chat completion request to the Nexos AI API.

Examples:
  nexos chat --model gpt-4o --prompt "Hello"
  nexos chat --model gpt-4o --prompt "Hello" --temperature 0.2 --json`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVar(&chatModel, "model", "", "Model ID (required)")
	chatCmd.Flags().StringVar(&chatPrompt, "prompt", "", "User message (required)")
	chatCmd.Flags().StringVar(&chatSystem, "system", "", "System message")
	chatCmd.Flags().Float64Var(&chatTemperature, "temperature", 0, "Temperature (0 = use default)")
	chatCmd.Flags().IntVar(&chatMaxTokens, "max-tokens", 0, "Max tokens (0 = use default)")

	_ = chatCmd.MarkFlagRequired("model")
	_ = chatCmd.MarkFlagRequired("prompt")
}

func runChat(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	messages := make([]domain.ChatMessage, 0, 2)
	if chatSystem != "" {
		messages = append(messages, domain.ChatMessage{Role: "system", Content: chatSystem})
	}
	messages = append(messages, domain.ChatMessage{Role: "user", Content: chatPrompt})

	manager := client.Chat.Request().Prepare(domain.ChatCompletionsRequest{
		Model:    chatModel,
		Messages: messages,
	})
	if chatTemperature > 0 {
		manager = manager.Apply(chat.OpWithTemperature, core.Args{"temperature": chatTemperature})
	}
	if chatMaxTokens > 0 {
		manager = manager.Apply(chat.OpWithMaxTokens, core.Args{"max_tokens": chatMaxTokens})
	}

	resp, err := manager.Send(cmd.Context())
	if err != nil {
		return err
	}
	if resp.ID == "" && manager.LastError() != nil {
		return manager.LastError()
	}

	if jsonOutput {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.FirstContent())
	if resp.Usage != nil && verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "tokens: %d prompt, %d completion\n",
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	}
	return nil
}
