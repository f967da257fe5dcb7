// Package business loads the static description of the business that seeds
// the model's system instruction.
package business

import (
	"log/slog"
	"os"
	"strings"

	"leadagent/app/config"

	"github.com/samber/do"
)

const fallbackSummary = "EcoTech Innovations - Sustainable AI Solutions Provider"

type Service struct {
	name    string
	summary string
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return NewService(cfg.Business.Name, cfg.Business.SummaryPath), nil
}

func NewService(name, summaryPath string) *Service {
	summary := fallbackSummary

	data, err := os.ReadFile(summaryPath)
	if err != nil {
		slog.Warn("Business summary not found, using fallback", "path", summaryPath)
	} else if text := strings.TrimSpace(string(data)); text != "" {
		summary = text
	}

	return &Service{
		name:    name,
		summary: summary,
	}
}

func (s *Service) Name() string {
	return s.name
}

func (s *Service) Summary() string {
	return s.summary
}
