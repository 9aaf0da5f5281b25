package chatgpt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kettari/driver-status/internal/transport"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemMessage = `You are the radio dispatcher of a trucking company.
Write one short, friendly sentence announcing a driver status change to the fleet.
Do not add quotes, emojis or explanations.`

type ChatGPT struct {
	openAIApiKey  string
	languageModel string
	options       []option.RequestOption
}

func NewChatGPT(openaiApiKey, langModel string, opts ...option.RequestOption) *ChatGPT {
	return &ChatGPT{openAIApiKey: openaiApiKey, languageModel: langModel, options: opts}
}

// ComposeAnnouncement asks the language model to phrase the status change
func (c *ChatGPT) ComposeAnnouncement(ctx context.Context, driverName, from, to string) (string, error) {
	opts := []option.RequestOption{option.WithAPIKey(c.openAIApiKey), option.WithHTTPClient(transport.NewHTTPClient())}
	client := openai.NewClient(append(opts, c.options...)...)

	question := fmt.Sprintf("Driver %s changed status from %s to %s.", driverName, from, to)

	slog.Debug("sending a message to ChatGPT", "question", question)

	// Prepare prompt
	prompt := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemMessage),
		openai.UserMessage(question),
	}
	params := openai.ChatCompletionNewParams{
		Messages: prompt,
		Model:    c.languageModel,
	}

	// Ask OpenAI
	completion, err := client.Chat.Completions.New(ctx, params)

	// Check for errors
	if err != nil {
		var e *openai.Error
		if errors.As(err, &e) {
			switch e.StatusCode {
			case http.StatusTooManyRequests:
				return "", errors.New("OpenAI API error: 429 Too many requests")
			case http.StatusForbidden:
				return "", errors.New("OpenAI API error: 403 Forbidden")
			case http.StatusUnauthorized:
				return "", errors.New("OpenAI API error: 401 Unauthorized")
			default:
				return "", fmt.Errorf("OpenAI API error: %d", e.StatusCode)
			}
		}
		slog.Error("failed to create completion", "question", question, "error", err)
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	if len(completion.Choices) > 0 {
		return strings.TrimSpace(completion.Choices[0].Message.Content), nil
	}

	return "", errors.New("got empty choices from the OpenAI API")
}
