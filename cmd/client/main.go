package main

import (
	"context"
	"log"

	"github.com/poleforge/poleforge/internal/client/cli"
	"github.com/poleforge/poleforge/internal/client/config"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
