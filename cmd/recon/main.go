package main

import (
	"context"
	"errors"
	"os"

	"github.com/thanhnd-dev/casso-recon/internal/logger"

	"github.com/thanhnd-dev/casso-recon/internal/app"
	"github.com/thanhnd-dev/casso-recon/internal/config"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
