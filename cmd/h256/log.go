package main

import (
	"os"
	"path/filepath"

	"github.com/kaspanet/h256/infrastructure/logger"
)

const (
	defaultLogFilename    = "h256.log"
	defaultErrLogFilename = "h256_err.log"
)

var (
	backendLog = logger.NewBackend()
	log        = backendLog.Logger("H256")
)

// initLog attaches stderr, and the log files when a log directory is
// configured, to the backend log and starts it.
func initLog(cfg *configFlags) error {
	log.SetLevel(cfg.LogLevel)

	err := backendLog.AddLogWriter(logger.NopCloser(os.Stderr), cfg.LogLevel)
	if err != nil {
		return err
	}

	if cfg.LogDir != "" {
		log.SetLevel(logger.LevelTrace)
		err = backendLog.AddLogFile(filepath.Join(cfg.LogDir, defaultLogFilename), logger.LevelTrace)
		if err != nil {
			return err
		}
		err = backendLog.AddLogFile(filepath.Join(cfg.LogDir, defaultErrLogFilename), logger.LevelWarn)
		if err != nil {
			return err
		}
	}

	return backendLog.Run()
}
