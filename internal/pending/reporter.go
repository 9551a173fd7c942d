package pending

import (
	"fmt"
	"io"

	"github.com/temirov/pending/internal/utils"
)

const findingWriteErrorTemplateConstant = "failed to write finding: %w"

// FindingReporter prints one finding per line.
type FindingReporter struct {
	writer io.Writer
}

// NewFindingReporter wraps writer so each finding is flushed as soon as it is written.
func NewFindingReporter(writer io.Writer) *FindingReporter {
	if writer == nil {
		writer = io.Discard
	}
	return &FindingReporter{writer: utils.NewFlushingWriter(writer)}
}

// Report writes finding followed by a newline.
func (reporter *FindingReporter) Report(finding Finding) error {
	if _, writeError := fmt.Fprintln(reporter.writer, finding.String()); writeError != nil {
		return fmt.Errorf(findingWriteErrorTemplateConstant, writeError)
	}
	return nil
}
