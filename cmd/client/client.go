package main

import (
	"fmt"
	"os"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"miniftp/internal/logging"
	"miniftp/internal/session"
)

const logFile = "client.log"

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERR] %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERR] %v\n", err)
		os.Exit(1)
	}
	log := logger.With("run", ksuid.New().String())

	host, err := checkHost(opts.Args.Host)
	if err != nil {
		fatal(log, err)
	}
	port, err := checkPort(opts.Args.Port)
	if err != nil {
		fatal(log, err)
	}
	cmd, err := checkCommand(opts.Args.Command, opts.Args.Rest)
	if err != nil {
		fatal(log, err)
	}
	dir, err := os.Getwd()
	if err != nil {
		fatal(log, err)
	}

	log.Infof("[OK!] Client startup initialised.")
	ctrl := session.NewController(host, port, log, dir, os.Stdout)
	if err := ctrl.Run(cmd); err != nil {
		fatal(log, err)
	}
	_ = log.Sync()
}

// fatal is the single exit point for command failures: log the error with
// its category tag and terminate nonzero.
func fatal(log *zap.SugaredLogger, err error) {
	log.Errorf("[ERR] %v", err)
	_ = log.Sync()
	os.Exit(1)
}
