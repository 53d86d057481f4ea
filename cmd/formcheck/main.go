package main

import (
	"errors"
	"os"

	"orgdesk/pkg/config"
)

const ServiceName = "formcheck"

func main() {
	cfg := config.MustLoad(ServiceName)

	if err := newRootCmd(cfg).Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			cfg.Log.Error("Command failed", "error", err)
		}
		os.Exit(1)
	}
}
