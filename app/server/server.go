// Package server exposes the chat widget and its JSON API over HTTP.
package server

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"leadagent/app/config"
	"leadagent/app/service/conversation"
	"leadagent/app/service/queue"
	"leadagent/app/service/record"

	_ "embed"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

//go:embed widget.html
var widgetHTML []byte

const (
	replyTimeout = 2 * time.Minute

	busyReply = "We're receiving a lot of messages right now. Please try again in a moment."
)

type ChatRequest struct {
	SessionID string          `json:"session_id"`
	Message   string          `json:"message"`
	History   json.RawMessage `json:"history"`
}

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

type Server struct {
	cfg       *config.Config
	queueSvc  *queue.Service
	recordSvc *record.Service

	app *fiber.App
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		cfg:       do.MustInvoke[*config.Config](di),
		queueSvc:  do.MustInvoke[*queue.Service](di),
		recordSvc: do.MustInvoke[*record.Service](di),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/", s.handleWidget)
	app.Get("/healthz", s.handleHealth)
	app.Get("/api/stats", s.handleStats)
	app.Post("/api/chat", s.handleChat)

	s.app = app

	return s, nil
}

func (s *Server) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return s.app.Listen(s.cfg.Server.Listen)
	})

	group.Go(func() error {
		<-ctx.Done()

		return s.app.Shutdown()
	})

	return group.Wait()
}

func (s *Server) handleWidget(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	return c.Send(widgetHTML)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func (s *Server) handleStats(c *fiber.Ctx) error {
	return c.JSON(s.recordSvc.Stats())
}

func (s *Server) handleChat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	job := queue.Job{
		SessionID: sessionID,
		Text:      req.Message,
		History:   conversation.NormalizeHistory(req.History),
		Reply:     make(chan string, 1),
	}

	if !s.queueSvc.Add(job) {
		return c.JSON(ChatResponse{
			SessionID: sessionID,
			Reply:     busyReply,
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), replyTimeout)
	defer cancel()

	select {
	case reply := <-job.Reply:
		return c.JSON(ChatResponse{
			SessionID: sessionID,
			Reply:     reply,
		})
	case <-ctx.Done():
		return fiber.NewError(fiber.StatusGatewayTimeout, "reply timed out")
	}
}
