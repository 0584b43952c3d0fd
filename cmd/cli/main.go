package main

import (
	"context"
	"log"
	"os"

	"github.com/unicaronas/unicaronas/internal/buildinfo"
	"github.com/unicaronas/unicaronas/internal/cli"
	"github.com/unicaronas/unicaronas/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
