package incremental

import "locstring-generator/internal/common"

// StepReason tells how a step value relates to the previous run.
type StepReason int

const (
	// StepNew - no previous value was known.
	StepNew StepReason = iota
	// StepCached - the value is structurally equal to the previous one.
	StepCached
	// StepModified - the value differs from the previous one.
	StepModified
	// StepRemoved - a keyed value present in the previous run is gone.
	StepRemoved
)

// String returns a human-readable step reason.
func (r StepReason) String() string {
	switch r {
	case StepNew:
		return "new"
	case StepCached:
		return "cached"
	case StepModified:
		return "modified"
	case StepRemoved:
		return "removed"
	default:
		return common.UnknownStr
	}
}
