package main

import (
	"context"
	"log"
	"os"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/buildinfo"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/client/cli"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/client/config"
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
