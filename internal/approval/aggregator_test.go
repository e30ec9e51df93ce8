package approval_test

import (
	"testing"
	"time"

	"go-leave-approval/internal/approval"
	approvalerrors "go-leave-approval/internal/approval/errors"
	"go-leave-approval/internal/orgrole"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	leaveID = uuid.New()
	actedAt = time.Date(2026, 10, 15, 11, 30, 0, 0, time.UTC)
)

// ladder builds pending steps for the given roles, level 1 first.
func ladder(roles ...orgrole.Role) []approval.ApprovalStep {
	steps := make([]approval.ApprovalStep, 0, len(roles))
	for i, r := range roles {
		steps = append(steps, approval.ApprovalStep{
			ID:                     uuid.New(),
			LeaveRequestID:         leaveID,
			Level:                  i + 1,
			ApproverRole:           r.String(),
			Status:                 approval.StepPending,
			PreviousLevelCompleted: i == 0,
			IsRequired:             true,
			CanDelegate:            true,
			Version:                1,
		})
	}
	return steps
}

func standardLadder() []approval.ApprovalStep {
	steps := ladder(
		orgrole.RoleSupervisor,
		orgrole.RoleUnitHead,
		orgrole.RoleHeadOfDepartment,
		orgrole.RoleHROfficer,
		orgrole.RoleChiefDirector,
	)
	steps[0].ApproverStaffID = strPtr("MFA-010")
	return steps
}

func withStatus(steps []approval.ApprovalStep, status approval.StepStatus, levels ...int) []approval.ApprovalStep {
	out := append([]approval.ApprovalStep(nil), steps...)
	for _, l := range levels {
		out[l-1].Status = status
	}
	return out
}

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name   string
		steps  []approval.ApprovalStep
		cd     bool
		expect approval.Status
	}{
		{"empty", nil, false, approval.StatusPending},
		{"all pending", standardLadder(), false, approval.StatusPending},
		{"partially approved", withStatus(standardLadder(), approval.StepApproved, 1, 2), false, approval.StatusPending},
		{"delegated still pending", withStatus(standardLadder(), approval.StepDelegated, 1), false, approval.StatusPending},
		{"all approved", withStatus(standardLadder(), approval.StepApproved, 1, 2, 3, 4, 5), false, approval.StatusApproved},
		{"approved with skip", withStatus(withStatus(standardLadder(), approval.StepApproved, 1, 3, 4, 5), approval.StepSkipped, 2), false, approval.StatusApproved},
		{"rejected at first level", withStatus(standardLadder(), approval.StepRejected, 1), false, approval.StatusRejected},
		{"rejected wins over approvals", withStatus(withStatus(standardLadder(), approval.StepApproved, 1, 2, 3, 4), approval.StepRejected, 5), false, approval.StatusRejected},
		{"chief director leave recorded", withStatus(ladder(orgrole.RoleHRDirector), approval.StepApproved, 1), true, approval.StatusRecorded},
		{"chief director leave pending", ladder(orgrole.RoleHRDirector), true, approval.StatusPending},
		{"chief director leave rejected", withStatus(ladder(orgrole.RoleHRDirector), approval.StepRejected, 1), true, approval.StatusRejected},
		{"unflagged hr director approval is approved", withStatus(ladder(orgrole.RoleHRDirector), approval.StepApproved, 1), false, approval.StatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, approval.ComputeStatus(tt.steps, tt.cd))
		})
	}
}

func TestNextApprovers(t *testing.T) {
	t.Run("lowest pending level", func(t *testing.T) {
		next := approval.NextApprovers(withStatus(standardLadder(), approval.StepApproved, 1))
		assert.Len(t, next, 1)
		assert.Equal(t, 2, next[0].Level)
	})

	t.Run("delegated level counts", func(t *testing.T) {
		steps := withStatus(withStatus(standardLadder(), approval.StepApproved, 1), approval.StepDelegated, 2)
		next := approval.NextApprovers(steps)
		assert.Len(t, next, 1)
		assert.Equal(t, 2, next[0].Level)
	})

	t.Run("nothing after rejection", func(t *testing.T) {
		assert.Empty(t, approval.NextApprovers(withStatus(standardLadder(), approval.StepRejected, 2)))
	})

	t.Run("nothing when complete", func(t *testing.T) {
		assert.Empty(t, approval.NextApprovers(withStatus(standardLadder(), approval.StepApproved, 1, 2, 3, 4, 5)))
	})
}

func TestTransition_Approve(t *testing.T) {
	steps := standardLadder()

	out, err := approval.Transition(steps, approval.TransitionInput{
		Level:        1,
		Action:       approval.ActionApprove,
		ActorStaffID: "MFA-010",
		ActorName:    "Kofi Boateng",
		Comments:     "ok",
		At:           actedAt,
	})

	assert.NoError(t, err)
	assert.Equal(t, approval.StepApproved, out[0].Status)
	assert.Equal(t, "Kofi Boateng", *out[0].ApproverName)
	assert.Equal(t, actedAt, *out[0].ApprovalDate)
	assert.Equal(t, "ok", *out[0].Comments)
	assert.Equal(t, "MFA-010", *out[0].ActedBy)
	assert.Equal(t, 2, out[0].Version)
	assert.True(t, out[1].PreviousLevelCompleted)
	assert.False(t, out[2].PreviousLevelCompleted)

	// input untouched
	assert.Equal(t, approval.StepPending, steps[0].Status)
	assert.False(t, steps[1].PreviousLevelCompleted)
}

func TestTransition_DelegateThenApprove(t *testing.T) {
	steps := standardLadder()

	delegated, err := approval.Transition(steps, approval.TransitionInput{
		Level:          1,
		Action:         approval.ActionDelegate,
		ActorStaffID:   "MFA-010",
		DelegateTo:     "MFA-011",
		DelegateToName: "Akua Owusu",
		At:             actedAt,
	})
	assert.NoError(t, err)
	assert.Equal(t, approval.StepDelegated, delegated[0].Status)
	assert.Equal(t, "MFA-011", *delegated[0].DelegatedTo)
	assert.Equal(t, "Akua Owusu", *delegated[0].DelegatedToName)
	assert.Nil(t, delegated[0].ApproverName)
	assert.False(t, delegated[1].PreviousLevelCompleted)
	assert.Equal(t, "MFA-011", delegated[0].AssignedTo())

	approved, err := approval.Transition(delegated, approval.TransitionInput{
		Level:        1,
		Action:       approval.ActionApprove,
		ActorStaffID: "MFA-011",
		ActorName:    "Akua Owusu",
		At:           actedAt.Add(time.Hour),
	})
	assert.NoError(t, err)
	assert.Equal(t, approval.StepApproved, approved[0].Status)
	assert.Nil(t, approved[0].DelegatedTo)
	assert.Nil(t, approved[0].DelegationDate)
	assert.Nil(t, approved[0].Comments)
	assert.Equal(t, 3, approved[0].Version)
	assert.True(t, approved[1].PreviousLevelCompleted)
}

func TestTransition_RejectLeavesLaterLevelsAlone(t *testing.T) {
	out, err := approval.Transition(standardLadder(), approval.TransitionInput{
		Level:        1,
		Action:       approval.ActionReject,
		ActorStaffID: "MFA-010",
		Comments:     "overlaps audit",
		At:           actedAt,
	})

	assert.NoError(t, err)
	assert.Equal(t, approval.StepRejected, out[0].Status)
	assert.False(t, out[1].PreviousLevelCompleted)
	for _, st := range out[1:] {
		assert.Equal(t, approval.StepPending, st.Status)
	}
}

func TestTransition_Errors(t *testing.T) {
	_, err := approval.Transition(standardLadder(), approval.TransitionInput{Level: 9, Action: approval.ActionApprove})
	assert.ErrorIs(t, err, approvalerrors.ErrStepNotFound)

	_, err = approval.Transition(standardLadder(), approval.TransitionInput{Level: 1, Action: "escalate"})
	assert.ErrorIs(t, err, approvalerrors.ErrInvalidAction)
}

func TestParseAction(t *testing.T) {
	a, ok := approval.ParseAction("delegate")
	assert.True(t, ok)
	assert.Equal(t, approval.ActionDelegate, a)

	_, ok = approval.ParseAction("approved")
	assert.False(t, ok)
}
