package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      Log      `yaml:"log"`
	Server   Server   `yaml:"server"`
	OpenAI   OpenAI   `yaml:"openai"`
	Business Business `yaml:"business"`
	Storage  Storage  `yaml:"storage"`
}

type OpenAI struct {
	// OpenAI-compatible base url
	BaseURL string `yaml:"base_url" example:"https://openrouter.ai/api/v1"`
	// API token, overridable via OPENAI_API_KEY
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX" validate:"required"`
	// Model name
	Model string `yaml:"model" example:"google/gemini-2.0-flash-001" validate:"required"`
}

type Server struct {
	// Listen address of the chat widget server
	Listen string `yaml:"listen" example:":7860"`
}

type Business struct {
	// Display name of the business the assistant represents
	Name string `yaml:"name" example:"EcoTech Innovations"`
	// Path to the free-text business summary
	SummaryPath string `yaml:"summary_path" example:"me/business_summary.txt"`
}

type Storage struct {
	// Path to the leads file
	LeadsPath string `yaml:"leads_path" example:"leads.json"`
	// Path to the feedback file
	FeedbackPath string `yaml:"feedback_path" example:"feedback.json"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if token := os.Getenv("OPENAI_API_KEY"); token != "" {
		result.OpenAI.Token = token
	}

	if result.OpenAI.BaseURL == "" {
		result.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if result.Server.Listen == "" {
		result.Server.Listen = ":7860"
	}
	if result.Business.Name == "" {
		result.Business.Name = "EcoTech Innovations"
	}
	if result.Business.SummaryPath == "" {
		result.Business.SummaryPath = "me/business_summary.txt"
	}
	if result.Storage.LeadsPath == "" {
		result.Storage.LeadsPath = "leads.json"
	}
	if result.Storage.FeedbackPath == "" {
		result.Storage.FeedbackPath = "feedback.json"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
