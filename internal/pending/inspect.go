package pending

import (
	"context"
	"errors"
	"fmt"

	"github.com/temirov/pending/internal/vcs"
)

const probeFailureTemplateConstant = "%s check failed for %s: %w"

// ErrCheckerNotConfigured indicates Inspect was called without a checker.
var ErrCheckerNotConfigured = errors.New("repository checker not configured")

// FindingEmitter receives findings as soon as they are known.
type FindingEmitter func(Finding) error

type checkProbe func(checker vcs.RepositoryChecker, executionContext context.Context) (bool, error)

var checkProbes = map[Check]checkProbe{
	CheckUncommitted: vcs.RepositoryChecker.HasUncommitted,
	CheckUntracked:   vcs.RepositoryChecker.HasUntracked,
	CheckUnstaged:    vcs.RepositoryChecker.HasUnstaged,
	CheckUnpushed:    vcs.RepositoryChecker.HasUnpushed,
}

// Inspect runs exactly the checks in set against the repository at repositoryPath, in evaluation
// order, and emits a finding for each positive result before starting the next probe.
// The first probe or emitter error stops the inspection.
func Inspect(executionContext context.Context, checker vcs.RepositoryChecker, repositoryPath string, set CheckSet, emit FindingEmitter) error {
	if checker == nil {
		return ErrCheckerNotConfigured
	}

	for _, check := range set.Checks() {
		positive, probeError := checkProbes[check](checker, executionContext)
		if probeError != nil {
			return fmt.Errorf(probeFailureTemplateConstant, check, repositoryPath, probeError)
		}
		if !positive || emit == nil {
			continue
		}
		if emitError := emit(Finding{RepositoryPath: repositoryPath, Check: check}); emitError != nil {
			return emitError
		}
	}
	return nil
}
