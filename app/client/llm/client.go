// Package llm wraps an OpenAI-compatible chat completion API. The model may
// answer with plain text or invoke one of the declared capability functions;
// both shapes collapse into a single Result so callers branch exhaustively
// instead of probing attributes.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"leadagent/app/config"

	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
)

const (
	requestTimeout      = 30 * time.Second
	defaultTemperature  = 0.7
	maxCompletionTokens = 1000
)

type ResultKind int

const (
	KindText ResultKind = iota
	KindFunctionCall
)

// FunctionCall is a structured capability invocation issued by the model.
// Arguments is the raw JSON object supplied by the model, possibly empty.
type FunctionCall struct {
	Name      string
	Arguments string
}

// Result is the tagged union of the two response shapes. An empty-text
// KindText result means the model returned nothing usable; that is the
// caller's problem to phrase around, not an error.
type Result struct {
	Kind ResultKind
	Text string
	Call *FunctionCall
}

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	clientConfig := openai.DefaultConfig(cfg.OpenAI.Token)
	clientConfig.BaseURL = cfg.OpenAI.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: requestTimeout,
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.OpenAI.Model,
	}, nil
}

// Complete sends the conversation with the two declared capabilities and
// normalizes the response. A function call in the first choice wins over
// any accompanying text.
func (c *Client) Complete(ctx context.Context, messages []openai.ChatCompletionMessage) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	aiResponse, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:               c.model,
			Messages:            messages,
			Tools:               capabilityTools,
			Temperature:         defaultTemperature,
			MaxCompletionTokens: maxCompletionTokens,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return &Result{Kind: KindText}, nil
	}

	message := aiResponse.Choices[0].Message

	if len(message.ToolCalls) > 0 {
		call := message.ToolCalls[0]

		return &Result{
			Kind: KindFunctionCall,
			Call: &FunctionCall{
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			},
		}, nil
	}

	return &Result{
		Kind: KindText,
		Text: strings.TrimSpace(message.Content),
	}, nil
}
