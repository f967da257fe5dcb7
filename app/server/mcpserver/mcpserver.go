// Package mcpserver exposes the recorder over the Model Context Protocol so
// external agent hosts can file leads and feedback directly. Started with
// the -mcp flag instead of the HTTP widget.
package mcpserver

import (
	"context"
	"encoding/json"

	"leadagent/app/service/record"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/do"
)

const mcpSessionID = "mcp"

type Server struct {
	recordSvc *record.Service

	mcp *server.MCPServer
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		recordSvc: do.MustInvoke[*record.Service](di),
	}

	srv := server.NewMCPServer("leadagent", "1.0.0")

	srv.AddTool(mcp.NewTool("record_customer_interest",
		mcp.WithDescription("Record a customer lead."),
		mcp.WithString("email", mcp.Required(), mcp.Description("The customer's email address")),
		mcp.WithString("name", mcp.Description("The customer's name")),
		mcp.WithString("message", mcp.Description("The customer's message or specific interest")),
	), s.handleRecordLead)

	srv.AddTool(mcp.NewTool("record_feedback",
		mcp.WithDescription("Record an unanswered question or feedback for follow-up."),
		mcp.WithString("question", mcp.Required(), mcp.Description("The unanswered question or feedback")),
	), s.handleRecordFeedback)

	srv.AddTool(mcp.NewTool("get_stats",
		mcp.WithDescription("Get lead and feedback totals."),
	), s.handleStats)

	s.mcp = srv

	return s, nil
}

// Run serves MCP over stdio until the host disconnects.
func (s *Server) Run(_ context.Context) error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) handleRecordLead(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := request.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	reply, err := s.recordSvc.RecordLead(
		request.GetString("name", ""),
		email,
		request.GetString("message", ""),
		mcpSessionID,
	)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(reply), nil
}

func (s *Server) handleRecordFeedback(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	reply, err := s.recordSvc.RecordFeedback(question)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(reply), nil
}

func (s *Server) handleStats(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(s.recordSvc.Stats())
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(string(data)), nil
}
