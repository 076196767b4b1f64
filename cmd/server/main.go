package main

import (
	"context"
	"log"
	"os"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/buildinfo"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
