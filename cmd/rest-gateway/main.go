package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/noah-isme/uav-academic-soa/internal/server"
)

// @title UAV Academic REST Gateway
// @version 1.0.0
// @description Students, courses and grades over JSON
// @BasePath /
// @schemes http

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: rest-gateway [DATABASE_URL]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx := context.Background()
	deps, cleanup, err := server.Bootstrap(ctx, "rest-gateway", flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to start rest gateway: %v", err)
	}
	defer cleanup()

	addr := fmt.Sprintf(":%d", deps.Config.RESTPort)
	if err := server.Run(ctx, addr, server.NewRESTRouter(deps), deps.Logger); err != nil {
		deps.Logger.Error("rest gateway failed", zap.Error(err))
	}
}
