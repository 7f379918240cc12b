package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/noah-isme/uav-academic-soa/internal/server"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: soap-gateway [DATABASE_URL]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx := context.Background()
	deps, cleanup, err := server.Bootstrap(ctx, "soap-gateway", flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to start soap gateway: %v", err)
	}
	defer cleanup()

	addr := fmt.Sprintf(":%d", deps.Config.SOAPPort)
	if err := server.Run(ctx, addr, server.NewSOAPRouter(deps), deps.Logger); err != nil {
		deps.Logger.Error("soap gateway failed", zap.Error(err))
	}
}
