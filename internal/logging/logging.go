package logging

import "go.uber.org/zap"

// New builds the client logger: console encoding on stderr plus an
// append-only file sink. The logger is handed to each component
// explicitly, nothing in this module keeps global state.
func New(logFile string) (*zap.SugaredLogger, error) {
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	logger, err := zap.Config{
		Level:            level,
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr", logFile},
		ErrorOutputPaths: []string{"stderr"},
	}.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
