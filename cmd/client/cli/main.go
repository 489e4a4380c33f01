package main

import (
	"context"
	"log"

	"github.com/ewasteportal/ewastecli/internal/client/cli"
	"github.com/ewasteportal/ewastecli/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
