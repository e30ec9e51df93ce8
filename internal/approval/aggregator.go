package approval

import (
	"time"

	approvalerrors "go-leave-approval/internal/approval/errors"
	"go-leave-approval/internal/orgrole"
)

// Status is the aggregate state of a leave request derived from its steps.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusRecorded Status = "recorded"
)

func (s Status) Final() bool {
	return s != StatusPending
}

type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionDelegate Action = "delegate"
	ActionSkip     Action = "skip"
)

func ParseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionApprove, ActionReject, ActionDelegate, ActionSkip:
		return a, true
	}
	return "", false
}

func (a Action) TargetStatus() StepStatus {
	switch a {
	case ActionApprove:
		return StepApproved
	case ActionReject:
		return StepRejected
	case ActionDelegate:
		return StepDelegated
	case ActionSkip:
		return StepSkipped
	}
	return ""
}

// ComputeStatus folds the step list into the request status. Rejection wins over
// everything; chief director leave ends as recorded once HR_DIRECTOR approves.
func ComputeStatus(steps []ApprovalStep, chiefDirectorLeave bool) Status {
	if len(steps) == 0 {
		return StatusPending
	}
	for _, st := range steps {
		if st.Status == StepRejected {
			return StatusRejected
		}
	}
	if chiefDirectorLeave {
		for _, st := range steps {
			if st.Role() == orgrole.RoleHRDirector && st.Status == StepApproved {
				return StatusRecorded
			}
		}
	}
	for _, st := range steps {
		if !st.Status.Resolved() {
			return StatusPending
		}
	}
	return StatusApproved
}

// NextApprovers returns the lowest level still awaiting action, or nothing when
// the request is closed.
func NextApprovers(steps []ApprovalStep) []ApprovalStep {
	var next *ApprovalStep
	for i := range steps {
		st := &steps[i]
		if st.Status == StepRejected {
			return nil
		}
		if st.Status.AwaitingAction() && (next == nil || st.Level < next.Level) {
			next = st
		}
	}
	if next == nil {
		return nil
	}
	return []ApprovalStep{*next}
}

// PreviousLevelsResolved reports whether every level below level is approved or skipped.
func PreviousLevelsResolved(steps []ApprovalStep, level int) bool {
	for _, st := range steps {
		if st.Level < level && !st.Status.Resolved() {
			return false
		}
	}
	return true
}

// FinalLevel is the highest level number in the list.
func FinalLevel(steps []ApprovalStep) int {
	final := 0
	for _, st := range steps {
		if st.Level > final {
			final = st.Level
		}
	}
	return final
}

func findStep(steps []ApprovalStep, level int) (int, bool) {
	for i, st := range steps {
		if st.Level == level {
			return i, true
		}
	}
	return -1, false
}

// TransitionInput describes one action on one level.
type TransitionInput struct {
	Level          int
	Action         Action
	ActorStaffID   string
	ActorName      string
	Comments       string
	DelegateTo     string
	DelegateToName string
	At             time.Time
}

// Transition applies an action and returns a new step list; steps is left untouched.
// It does not run the guards.
func Transition(steps []ApprovalStep, in TransitionInput) ([]ApprovalStep, error) {
	idx, ok := findStep(steps, in.Level)
	if !ok {
		return nil, approvalerrors.ErrStepNotFound
	}
	target := in.Action.TargetStatus()
	if target == "" {
		return nil, approvalerrors.ErrInvalidAction
	}

	out := make([]ApprovalStep, len(steps))
	copy(out, steps)

	st := out[idx]
	at := in.At
	actor := in.ActorStaffID
	st.Status = target
	st.ActedBy = &actor
	st.Version++
	st.ApproverName, st.ApprovalDate, st.Comments = nil, nil, nil
	st.DelegatedTo, st.DelegatedToName, st.DelegationDate = nil, nil, nil

	switch target {
	case StepApproved, StepRejected:
		name := in.ActorName
		st.ApproverName = &name
		st.ApprovalDate = &at
		if in.Comments != "" {
			comments := in.Comments
			st.Comments = &comments
		}
	case StepDelegated:
		to, toName := in.DelegateTo, in.DelegateToName
		st.DelegatedTo = &to
		st.DelegationDate = &at
		if toName != "" {
			st.DelegatedToName = &toName
		}
	}
	out[idx] = st

	if target.Resolved() {
		if next, ok := findStep(out, in.Level+1); ok {
			out[next].PreviousLevelCompleted = true
		}
	}
	return out, nil
}
