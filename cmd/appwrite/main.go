package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/andyle182810/gappwrite/cmd/appwrite/app"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := app.NewAppwriteCommand().ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
