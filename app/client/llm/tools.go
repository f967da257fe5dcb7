package llm

import (
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	ToolRecordCustomerInterest = "record_customer_interest"
	ToolRecordFeedback         = "record_feedback"
)

// capabilityTools are the two functions declared to the model on every call.
var capabilityTools = []openai.Tool{
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        ToolRecordCustomerInterest,
			Description: "Record a customer lead when someone shows interest in the business services.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"name": {
						Type:        jsonschema.String,
						Description: "The customer's name",
					},
					"email": {
						Type:        jsonschema.String,
						Description: "The customer's email address",
					},
					"message": {
						Type:        jsonschema.String,
						Description: "The customer's message or specific interest",
					},
				},
				Required: []string{"email"},
			},
		},
	},
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        ToolRecordFeedback,
			Description: "Record unanswered questions or feedback for follow-up by the team.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"question": {
						Type:        jsonschema.String,
						Description: "The unanswered question or feedback",
					},
				},
				Required: []string{"question"},
			},
		},
	},
}
