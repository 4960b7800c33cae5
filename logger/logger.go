package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Output goes to stdout so the platform's log
// collector picks it up.
func New(namespace string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.InitialFields = map[string]interface{}{
		"namespace": namespace,
	}

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
