package transcript

import (
	"github.com/nguyentantai21042004/wisdom-flow/internal/logger"
	"github.com/nguyentantai21042004/wisdom-flow/pkg/executor"
)

type implFetcher struct {
	executor executor.Executor
	binary   string
	logger   logger.Logger
}

// New creates a Fetcher that runs `<binary> --transcript <url>`.
func New(exec executor.Executor, binary string, log logger.Logger) Fetcher {
	return &implFetcher{
		executor: exec,
		binary:   binary,
		logger:   log,
	}
}
