package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/FishingOverhaul_Go/internal/config"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

// SetupLogger installs the default logger from cfg. When cfg.LogDir is set the
// output is also written to a timestamped session file there, and older
// session files beyond the retention count are removed.
// Returns the log file handle (caller must close), or nil without a LogDir.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	logCfg := logger.ForEnvironment(cfg.Environment).WithOverrides(cfg.LogLevel, cfg.LogFormat)
	logCfg.ServiceName = cfg.ServiceName
	logCfg.Version = cfg.Version
	logCfg.ModID = cfg.ModID

	var logFile *os.File
	var w io.Writer = os.Stdout
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(logCfg, w)

	logger.Info(LogMsgLoggingInitialized, LogFieldLevel, logCfg.LogLevel())
	logger.Info(LogMsgStarting,
		LogFieldEnvironment, cfg.Environment,
		LogFieldVersion, cfg.Version,
		LogFieldStoreDriver, cfg.StoreDriver)
	logger.Debug(LogMsgConfigurationLoaded,
		LogFieldPort, cfg.Port,
		LogFieldDir, cfg.ContentDir,
		LogFieldFile, cfg.FishingConfigPath)

	return logFile, nil
}

// cleanupLogs keeps the newest keep session files in logDir
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	// Timestamped names sort chronologically
	slices.Sort(logFiles)

	for len(logFiles) > keep {
		if err := os.Remove(filepath.Join(logDir, logFiles[0])); err != nil {
			logger.Warn(LogMsgFailedDeleteOldLog, LogFieldFile, logFiles[0], LogFieldError, err)
		}
		logFiles = logFiles[1:]
	}
}
