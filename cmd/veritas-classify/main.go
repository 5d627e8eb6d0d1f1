package main

import (
	"fmt"
	"os"

	"veritas/cmd/veritas-classify/cmd"
	"veritas/internal/platform/config/raw"
	"veritas/internal/platform/logger"
)

func main() {
	// stdout carries results, logs go to stderr and stay quiet by default
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	opt.Level = raw.New().Prefix("LOG_").Get("LEVEL", "warn")
	logger.Init(opt)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
