package scan

import (
	"context"

	"go.uber.org/zap"
)

// Service scans requested paths one after another.
type Service struct {
	walker RepositoryWalker
	logger *zap.Logger
}

// NewService constructs a Service around walker.
func NewService(walker RepositoryWalker, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{walker: walker, logger: logger}
}

// Run walks each path in order and stops at the first failure. Without paths the current
// directory is scanned.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{defaultScanPathConstant}
	}

	for _, path := range paths {
		service.logger.Debug(scanStartedMessageConstant, zap.String(logFieldPathConstant, path), zap.Stringer(logFieldChecksConstant, options.Checks))
		if walkError := service.walker.Walk(executionContext, path, options.Checks); walkError != nil {
			return walkError
		}
	}

	service.logger.Debug(scanFinishedMessageConstant, zap.Int(logFieldPathCountConstant, len(paths)))
	return nil
}
