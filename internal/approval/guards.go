package approval

import (
	"strings"

	approvalerrors "go-leave-approval/internal/approval/errors"
	"go-leave-approval/internal/orgrole"
)

// GuardContext is everything the guards look at for one action.
type GuardContext struct {
	Steps                 []ApprovalStep
	Level                 int
	Action                Action
	Comments              string
	RequesterStaffID      string
	Requester             orgrole.Profile
	ActorStaffID          string
	ActorRoles            []orgrole.Role
	DelegateTo            string
	ActingOfficerAssigned bool
}

// CheckTransition runs every guard in a fixed order and returns the first violation.
func CheckTransition(g GuardContext) error {
	idx, ok := findStep(g.Steps, g.Level)
	if !ok {
		return approvalerrors.ErrStepNotFound
	}
	step := g.Steps[idx]

	if !PreviousLevelsResolved(g.Steps, g.Level) {
		return approvalerrors.ErrSequentialApproval
	}
	for _, st := range g.Steps {
		if st.Status == StepRejected {
			return approvalerrors.ErrWorkflowClosed
		}
	}
	if !step.Status.AwaitingAction() {
		return approvalerrors.ErrStepNotActionable
	}

	if g.ActorStaffID == "" {
		return approvalerrors.ErrRoleMismatch
	}
	if g.ActorStaffID == g.RequesterStaffID {
		return approvalerrors.ErrSelfApproval
	}
	if g.Action == ActionDelegate && g.DelegateTo == g.RequesterStaffID {
		return approvalerrors.ErrSelfApproval
	}

	if !mayAct(step, g.ActorStaffID, g.ActorRoles) {
		return approvalerrors.ErrRoleMismatch
	}

	switch g.Action {
	case ActionSkip:
		if !step.CanSkip {
			return approvalerrors.ErrSkipNotAllowed
		}
	case ActionDelegate:
		if !step.CanDelegate {
			return approvalerrors.ErrDelegationNotAllowed
		}
		if strings.TrimSpace(g.DelegateTo) == "" || g.DelegateTo == g.ActorStaffID {
			return approvalerrors.ErrDelegateRequired
		}
	case ActionReject:
		if strings.TrimSpace(g.Comments) == "" {
			return approvalerrors.ErrRejectionReasonRequired
		}
	case ActionApprove:
		if g.Level == FinalLevel(g.Steps) {
			return checkFinalApproval(g)
		}
	default:
		return approvalerrors.ErrInvalidAction
	}
	return nil
}

// mayAct accepts the current delegate or the resolved approver. The bare role
// check only applies to levels no concrete approver was resolved for.
func mayAct(step ApprovalStep, actor string, roles []orgrole.Role) bool {
	if step.Status == StepDelegated && step.DelegatedTo != nil && *step.DelegatedTo == actor {
		return true
	}
	if step.ApproverStaffID != nil && *step.ApproverStaffID != "" {
		return *step.ApproverStaffID == actor
	}
	return containsRole(roles, step.Role())
}

func checkFinalApproval(g GuardContext) error {
	for _, st := range g.Steps {
		if st.Level == g.Level {
			continue
		}
		if st.Role() == orgrole.RoleHROfficer && st.Status != StepApproved {
			return approvalerrors.ErrMissingMandatoryValidation
		}
	}
	p := g.Requester
	if orgrole.RequiresActingOfficer(p.Position, p.Grade, p.Unit) && !g.ActingOfficerAssigned {
		return approvalerrors.ErrMissingActingOfficer
	}
	return nil
}
