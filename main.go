package main

import (
	"context"
	"flag"
	"leadagent/app/client/llm"
	"leadagent/app/config"
	"leadagent/app/server"
	"leadagent/app/server/mcpserver"
	"leadagent/app/service/business"
	"leadagent/app/service/conversation"
	"leadagent/app/service/engine"
	"leadagent/app/service/pending"
	"leadagent/app/service/queue"
	"leadagent/app/service/record"
	"leadagent/app/util/mylog"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	mcpMode := flag.Bool("mcp", false, "serve the recorder over MCP stdio instead of the HTTP widget")
	flag.Parse()

	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, llm.NewClient)
	do.Provide(di, pending.New)
	do.Provide(di, record.New)
	do.Provide(di, business.New)
	do.Provide(di, conversation.New)
	do.Provide(di, queue.New)
	do.Provide(di, engine.New)
	do.Provide(di, server.New)
	do.Provide(di, mcpserver.New)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	if *mcpMode {
		if err := do.MustInvoke[*mcpserver.Server](di).Run(appCtx); err != nil {
			log.Fatalf("mcp server failed: %v", err)
		}

		return
	}

	slog.Info("Service started", "listen", cfg.Server.Listen)

	go do.MustInvoke[*engine.Service](di).Run(appCtx)

	go func() {
		if err := do.MustInvoke[*server.Server](di).Run(appCtx); err != nil {
			slog.Error("Server stopped", "error", err)
		}

		cancel()
	}()

	<-appCtx.Done()
}
