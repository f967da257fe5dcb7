package conversation

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"leadagent/app/client/llm"

	"github.com/tmc/langchaingo/tools"
)

// callMeta travels down the context into capability calls: the model's
// arguments alone don't identify the session or carry the raw message.
type callMeta struct {
	sessionID   string
	userMessage string
}

type metaKey struct{}

func withCallMeta(ctx context.Context, meta callMeta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

func callMetaFrom(ctx context.Context) callMeta {
	meta, _ := ctx.Value(metaKey{}).(callMeta)
	return meta
}

type agentTool struct {
	name        string
	description string
	call        func(ctx context.Context, input string) (string, error)
}

func (m *agentTool) Name() string {
	return m.name
}

func (m *agentTool) Description() string {
	return m.description
}

func (m *agentTool) Call(ctx context.Context, input string) (string, error) {
	return m.call(ctx, input)
}

func (s *Service) createCapabilityTools() []tools.Tool {
	return []tools.Tool{
		&agentTool{
			name:        llm.ToolRecordCustomerInterest,
			description: "Record a customer lead. Input is a JSON object with optional name, email and message fields; missing fields are resolved from the session's pending lead.",
			call: func(ctx context.Context, input string) (string, error) {
				meta := callMetaFrom(ctx)

				var args struct {
					Name    string `json:"name"`
					Email   string `json:"email"`
					Message string `json:"message"`
				}

				if strings.TrimSpace(input) != "" {
					if err := json.Unmarshal([]byte(input), &args); err != nil {
						// tolerated: fields stay absent and resolve from the pending store
						slog.Warn("Malformed record_customer_interest arguments", "input", input)
					}
				}

				return s.recordSvc.RecordLead(args.Name, args.Email, args.Message, meta.sessionID)
			},
		},
		&agentTool{
			name:        llm.ToolRecordFeedback,
			description: "Record an unanswered question or feedback. Input is a JSON object with a question (or feedback) field; defaults to the raw user message.",
			call: func(ctx context.Context, input string) (string, error) {
				meta := callMetaFrom(ctx)

				var args struct {
					Question string `json:"question"`
					Feedback string `json:"feedback"`
				}

				if strings.TrimSpace(input) != "" {
					if err := json.Unmarshal([]byte(input), &args); err != nil {
						slog.Warn("Malformed record_feedback arguments", "input", input)
					}
				}

				question := args.Question
				if question == "" {
					question = args.Feedback
				}
				if question == "" {
					question = meta.userMessage
				}

				return s.recordSvc.RecordFeedback(question)
			},
		},
	}
}
