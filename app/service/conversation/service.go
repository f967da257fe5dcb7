// Package conversation orchestrates a single chat turn: mine the message for
// contact signals, assemble the model payload, branch on the response shape
// and dispatch capability calls to the recorder.
package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"leadagent/app/client/llm"
	"leadagent/app/service/business"
	"leadagent/app/service/extract"
	"leadagent/app/service/pending"
	"leadagent/app/service/record"

	_ "embed"

	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
	"github.com/tmc/langchaingo/tools"
)

//go:embed system_prompt.txt
var systemPromptTemplate string

const (
	// prior turns kept in the payload, newest last
	historyWindow = 8

	// raw messages shorter than this are never stored as interest
	minInterestLength = 10

	apologyReply  = "I apologize for the technical difficulty. Please try again."
	fallbackReply = "I'm sorry, I didn't quite catch that. Could you tell me a bit more about what you're looking for?"
)

// messages already talking about recording contact info don't need the
// pending-lead nudge on top
var captureKeywords = []string{"record", "capture", "sign up", "signed up", "contact"}

// plain-text model replies are overridden by a forced capture when the user
// clearly handed over contact details
var contactIntentKeywords = []string{"contact", "reach", "email me", "get back", "get in touch"}

type modelClient interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage) (*llm.Result, error)
}

type Service struct {
	businessSvc  *business.Service
	pendingStore *pending.Store
	recordSvc    *record.Service

	model modelClient
	tools []tools.Tool
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		businessSvc:  do.MustInvoke[*business.Service](di),
		pendingStore: do.MustInvoke[*pending.Store](di),
		recordSvc:    do.MustInvoke[*record.Service](di),
		model:        do.MustInvoke[*llm.Client](di),
	}

	s.tools = s.createCapabilityTools()

	return s, nil
}

// Reply handles one user message and always returns something presentable.
// Processing errors are logged and collapse into a fixed apology.
func (s *Service) Reply(ctx context.Context, sessionID, message string, history []Turn) string {
	reply, err := s.processMessage(ctx, sessionID, message, history)
	if err != nil {
		slog.Error("Failed to process message",
			"session_id", sessionID,
			"text", message,
			"error", err,
		)

		return apologyReply
	}

	return reply
}

func (s *Service) processMessage(ctx context.Context, sessionID, message string, history []Turn) (string, error) {
	s.collectSignals(sessionID, message)

	payload := s.buildConversation(sessionID, message, history)

	result, err := s.model.Complete(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("model.Complete: %w", err)
	}

	switch result.Kind {
	case llm.KindFunctionCall:
		return s.dispatch(ctx, sessionID, message, result.Call)

	case llm.KindText:
		if forced, ok, err := s.forceCapture(sessionID, message); err != nil {
			return "", fmt.Errorf("forced capture: %w", err)
		} else if ok {
			return forced, nil
		}

		if result.Text == "" {
			return fallbackReply, nil
		}

		return result.Text, nil

	default:
		return fallbackReply, nil
	}
}

// collectSignals runs extraction over the message and merges anything found
// into the pending store. The raw message doubles as the interest field when
// it carries an interest keyword and is more than a bare email.
func (s *Service) collectSignals(sessionID, message string) {
	name := extract.Name(message)
	email := extract.Email(message)

	var interest string
	if extract.InterestSignal(message) &&
		len(message) > minInterestLength &&
		!extract.JustEmail(message) {
		interest = message
	}

	if name == "" && email == "" && interest == "" {
		return
	}

	s.pendingStore.Update(sessionID, name, email, interest)

	slog.Debug("Pending lead updated",
		"session_id", sessionID,
		"name", name,
		"email", email,
		"has_interest", interest != "",
	)
}

func (s *Service) buildConversation(sessionID, message string, history []Turn) []openai.ChatCompletionMessage {
	templateValues := map[string]any{
		"business_name":    s.businessSvc.Name(),
		"business_context": s.businessSvc.Summary(),
	}

	prompt := systemPromptTemplate
	for key, value := range templateValues {
		prompt = strings.ReplaceAll(prompt, "{"+key+"}", fmt.Sprint(value))
	}

	payload := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompt},
		{
			Role: openai.ChatMessageRoleAssistant,
			Content: fmt.Sprintf("Understood. I'm ready to assist as the %s business assistant.",
				s.businessSvc.Name()),
		},
	}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}

		payload = append(payload, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}

	payload = append(payload, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	if hint := s.pendingHint(sessionID, message); hint != "" {
		payload = append(payload, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: hint,
		})
	}

	return payload
}

// pendingHint surfaces a complete pending lead to the model so it invokes
// record_customer_interest, unless the message already talks about that.
func (s *Service) pendingHint(sessionID, message string) string {
	lead := s.pendingStore.Get(sessionID)
	if !lead.Complete() {
		return ""
	}

	if containsAny(message, captureKeywords) {
		return ""
	}

	var parts []string
	if lead.Name != "" {
		parts = append(parts, "name: "+lead.Name)
	}
	if lead.Email != "" {
		parts = append(parts, "email: "+lead.Email)
	}
	if lead.Interest != "" {
		parts = append(parts, "interest: "+lead.Interest)
	}

	return "The visitor has already shared contact details (" + strings.Join(parts, ", ") +
		"). Call record_customer_interest with these details if the conversation warrants it."
}

// dispatch routes a model-issued function call to the matching capability
// tool. An undeclared name is tolerated with the fallback reply.
func (s *Service) dispatch(ctx context.Context, sessionID, message string, call *llm.FunctionCall) (string, error) {
	if call == nil {
		return fallbackReply, nil
	}

	ctx = withCallMeta(ctx, callMeta{
		sessionID:   sessionID,
		userMessage: message,
	})

	for _, tool := range s.tools {
		if tool.Name() == call.Name {
			slog.Info("Function call",
				"session_id", sessionID,
				"name", call.Name,
			)

			return tool.Call(ctx, call.Arguments)
		}
	}

	slog.Warn("Model invoked undeclared function", "name", call.Name)

	return fallbackReply, nil
}

// forceCapture compensates for the model skipping the capture function: a
// message that hands over an email together with contact intent is finalized
// directly from extracted and pending fields.
func (s *Service) forceCapture(sessionID, message string) (string, bool, error) {
	email := extract.Email(message)
	if email == "" || !containsAny(message, contactIntentKeywords) {
		return "", false, nil
	}

	reply, err := s.recordSvc.RecordLead(extract.Name(message), email, s.pendingStore.Get(sessionID).Interest, sessionID)
	if err != nil {
		return "", false, err
	}

	return reply, true, nil
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)

	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return false
}
