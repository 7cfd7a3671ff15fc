package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fotolab/foto/internal/imgproc"
	"github.com/fotolab/foto/internal/logging"
)

func main() {
	addr := flag.String("a", "localhost:3001", "address and port to listen on")
	flag.Parse()

	logger := logging.NewDefault()

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	svc := imgproc.NewService(*addr, logger)
	if err := svc.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
