package pending

import (
	"fmt"
	"strings"
)

const (
	uncommittedCheckNameConstant     = "uncommitted"
	untrackedCheckNameConstant       = "untracked"
	unstagedCheckNameConstant        = "unstaged"
	unpushedCheckNameConstant        = "unpushed"
	uncommittedReasonConstant        = "has uncommited changes"
	untrackedReasonConstant          = "has untracked changes"
	unstagedReasonConstant           = "has unstaged changes"
	unpushedReasonConstant           = "has unpushed changes"
	unknownCheckNameTemplateConstant = "check(%d)"
	checkSetNameSeparatorConstant    = ","
	emptyCheckSetDescriptionConstant = "none"
)

// Check identifies one pending-work probe.
type Check uint8

// Supported checks, declared in evaluation order.
const (
	CheckUncommitted Check = iota
	CheckUntracked
	CheckUnstaged
	CheckUnpushed
)

var orderedChecks = []Check{CheckUncommitted, CheckUntracked, CheckUnstaged, CheckUnpushed}

var checkNames = map[Check]string{
	CheckUncommitted: uncommittedCheckNameConstant,
	CheckUntracked:   untrackedCheckNameConstant,
	CheckUnstaged:    unstagedCheckNameConstant,
	CheckUnpushed:    unpushedCheckNameConstant,
}

// The uncommitted reason keeps its historical spelling; scripts grep for it.
var checkReasons = map[Check]string{
	CheckUncommitted: uncommittedReasonConstant,
	CheckUntracked:   untrackedReasonConstant,
	CheckUnstaged:    unstagedReasonConstant,
	CheckUnpushed:    unpushedReasonConstant,
}

// String returns the check's short name.
func (check Check) String() string {
	if name, exists := checkNames[check]; exists {
		return name
	}
	return fmt.Sprintf(unknownCheckNameTemplateConstant, uint8(check))
}

// Reason returns the text printed after a repository path when the check is positive.
func (check Check) Reason() string {
	return checkReasons[check]
}

// CheckSet is a bitmask of requested checks.
type CheckSet uint8

// AllChecks selects every supported check.
const AllChecks = CheckSet(1<<CheckUncommitted | 1<<CheckUntracked | 1<<CheckUnstaged | 1<<CheckUnpushed)

// NewCheckSet builds a set from individual checks.
func NewCheckSet(checks ...Check) CheckSet {
	var set CheckSet
	for _, check := range checks {
		set = set.With(check)
	}
	return set
}

// With returns a copy of the set that also selects check.
func (set CheckSet) With(check Check) CheckSet {
	return set | 1<<check
}

// Contains reports whether check is selected.
func (set CheckSet) Contains(check Check) bool {
	return set&(1<<check) != 0
}

// Empty reports whether no check is selected.
func (set CheckSet) Empty() bool {
	return set&AllChecks == 0
}

// Checks lists the selected checks in evaluation order.
func (set CheckSet) Checks() []Check {
	selected := make([]Check, 0, len(orderedChecks))
	for _, check := range orderedChecks {
		if set.Contains(check) {
			selected = append(selected, check)
		}
	}
	return selected
}

// String lists the selected check names, or "none".
func (set CheckSet) String() string {
	selected := set.Checks()
	if len(selected) == 0 {
		return emptyCheckSetDescriptionConstant
	}
	names := make([]string, 0, len(selected))
	for _, check := range selected {
		names = append(names, check.String())
	}
	return strings.Join(names, checkSetNameSeparatorConstant)
}
