package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/orgchart/internal/client/cli"
	"github.com/dmitrijs2005/orgchart/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}

}
