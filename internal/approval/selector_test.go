package approval_test

import (
	"context"
	"errors"
	"testing"

	"go-leave-approval/internal/approval"
	approvalerrors "go-leave-approval/internal/approval/errors"
	"go-leave-approval/internal/approver"
	"go-leave-approval/internal/orgrole"
	"go-leave-approval/internal/staff"
	"go-leave-approval/internal/workflow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func strPtr(s string) *string { return &s }

var orgID = uuid.New()

type fakeResolver struct {
	resolveFn func(ctx context.Context, role orgrole.Role, requestingStaffID, unit string) (*approver.Approver, error)
}

func (f *fakeResolver) Resolve(ctx context.Context, role orgrole.Role, requestingStaffID, unit string) (*approver.Approver, error) {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, role, requestingStaffID, unit)
	}
	return nil, nil
}

type fakeMatcher struct {
	findFn func(ctx context.Context, subject workflow.Subject, organizationID string) (*workflow.Match, error)
}

func (f *fakeMatcher) FindMatchingWorkflow(ctx context.Context, subject workflow.Subject, organizationID string) (*workflow.Match, error) {
	if f.findFn != nil {
		return f.findFn(ctx, subject, organizationID)
	}
	return nil, nil
}

func member(staffID, position, grade, unit, directorate, supervisor string) staff.StaffOrganizationalInfo {
	s := staff.StaffOrganizationalInfo{
		OrganizationID: orgID,
		StaffID:        staffID,
		Position:       position,
		Grade:          grade,
	}
	if unit != "" {
		s.Unit = strPtr(unit)
	}
	if directorate != "" {
		s.Directorate = strPtr(directorate)
	}
	if supervisor != "" {
		s.ImmediateSupervisorID = strPtr(supervisor)
	}
	return s
}

func budgetOfficer() staff.StaffOrganizationalInfo {
	return member("MFA-100", "Senior Officer", "B", "Budget Unit", "Finance & Administration", "MFA-010")
}

func fallbackOnly(r approver.Resolver) approval.Selector {
	return approval.NewSelector([]approval.Provider{approval.NewFallbackProvider(r)})
}

func roles(levels []approval.Level) []orgrole.Role {
	out := make([]orgrole.Role, 0, len(levels))
	for _, l := range levels {
		out = append(out, l.ApproverRole)
	}
	return out
}

func TestSelectApprovalLevels_StandardStaff(t *testing.T) {
	sel := fallbackOnly(&fakeResolver{})

	levels, err := approval.SelectApprovalLevels(context.Background(), sel, budgetOfficer(), "Annual", 5, orgID.String())

	assert.NoError(t, err)
	assert.Equal(t, []approval.Level{
		{Level: 1, ApproverRole: orgrole.RoleSupervisor, ApproverStaffID: "MFA-010", Status: approval.StepPending, PreviousLevelCompleted: true, IsRequired: true, CanDelegate: true},
		{Level: 2, ApproverRole: orgrole.RoleUnitHead, Status: approval.StepPending, IsRequired: true, CanDelegate: true},
		{Level: 3, ApproverRole: orgrole.RoleHeadOfDepartment, Status: approval.StepPending, IsRequired: true, CanDelegate: true},
		{Level: 4, ApproverRole: orgrole.RoleHROfficer, Status: approval.StepPending, IsRequired: true, CanDelegate: true},
		{Level: 5, ApproverRole: orgrole.RoleChiefDirector, Status: approval.StepPending, IsRequired: true, CanDelegate: true},
	}, levels)
}

func TestSelect_FallbackBranches(t *testing.T) {
	tests := []struct {
		name     string
		staff    staff.StaffOrganizationalInfo
		rule     string
		want     []orgrole.Role
		cdRecord bool
	}{
		{
			name:     "chief director",
			staff:    member("CD-1", "Chief Director", "CD", "", "Office of the Chief Director", ""),
			rule:     approval.RuleChiefDirector,
			want:     []orgrole.Role{orgrole.RoleHRDirector},
			cdRecord: true,
		},
		{
			name:  "director",
			staff: member("DIR-1", "Director", "DIR", "", "Finance & Administration", ""),
			rule:  approval.RuleDirector,
			want:  []orgrole.Role{orgrole.RoleHROfficer, orgrole.RoleChiefDirector},
		},
		{
			name:  "unit head under a directorate",
			staff: member("UH-1", "Head of Budget Unit", "C", "Budget Unit", "Finance & Administration", ""),
			rule:  approval.RuleUnitHead,
			want:  []orgrole.Role{orgrole.RoleHeadOfDepartment, orgrole.RoleHROfficer, orgrole.RoleChiefDirector},
		},
		{
			name:  "unit head reporting to chief director",
			staff: member("UH-2", "Head of Protocol", "C", "Protocol Unit", "", ""),
			rule:  approval.RuleUnitHead,
			want:  []orgrole.Role{orgrole.RoleChiefDirector, orgrole.RoleHROfficer, orgrole.RoleChiefDirector},
		},
		{
			name:  "hr director",
			staff: member("HRD-1", "Director", "DIR", "", "Human Resource Management & Development", ""),
			rule:  approval.RuleHRDirector,
			want:  []orgrole.Role{orgrole.RoleChiefDirector},
		},
		{
			name:  "hr officer",
			staff: member("HRO-1", "Human Resource Officer", "B", "Human Resource Unit", "HRMD", "HRM-2"),
			rule:  approval.RuleHROfficer,
			want:  []orgrole.Role{orgrole.RoleHRDirector, orgrole.RoleChiefDirector},
		},
		{
			name:  "other hrmd staff",
			staff: member("HRA-1", "Training Assistant", "D", "Training & Development Unit", "HRMD", "HRM-3"),
			rule:  approval.RuleHRMDStaff,
			want:  []orgrole.Role{orgrole.RoleSupervisor, orgrole.RoleUnitHead, orgrole.RoleHRDirector, orgrole.RoleChiefDirector},
		},
		{
			name:  "head of independent unit",
			staff: member("IU-1", "Head of Legal Unit", "C", "Legal Unit", "", ""),
			rule:  approval.RuleHeadOfIndependent,
			want:  []orgrole.Role{orgrole.RoleHROfficer, orgrole.RoleChiefDirector},
		},
		{
			name:  "independent unit staff",
			staff: member("IU-2", "Legal Officer", "B", "Legal Unit", "", "IU-9"),
			rule:  approval.RuleIndependentUnitStaff,
			want: []orgrole.Role{
				orgrole.RoleSupervisor, orgrole.RoleUnitHead, orgrole.RoleHeadOfIndependentUnit,
				orgrole.RoleHROfficer, orgrole.RoleChiefDirector,
			},
		},
		{
			name:  "standard staff without supervisor",
			staff: member("ST-1", "Statistician", "B", "Statistics Unit", "", ""),
			rule:  approval.RuleStandard,
			want:  []orgrole.Role{orgrole.RoleUnitHead, orgrole.RoleHeadOfDepartment, orgrole.RoleHROfficer, orgrole.RoleChiefDirector},
		},
		{
			name:  "standard staff in the chief director's office",
			staff: member("ST-2", "Protocol Officer", "B", "Protocol Unit", "", "PR-1"),
			rule:  approval.RuleStandard,
			want: []orgrole.Role{
				orgrole.RoleSupervisor, orgrole.RoleUnitHead, orgrole.RoleChiefDirector,
				orgrole.RoleHROfficer, orgrole.RoleChiefDirector,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fallbackOnly(&fakeResolver{}).Select(context.Background(), approval.Request{
				Staff:     tt.staff,
				LeaveType: "Annual",
				Days:      10,
			})

			assert.NoError(t, err)
			assert.Equal(t, approval.SourceFallback, got.Source)
			assert.Equal(t, tt.rule, got.RuleName)
			assert.Equal(t, tt.want, roles(got.Levels))
			assert.Equal(t, tt.cdRecord, got.ChiefDirectorLeave)

			own := orgrole.OwnRoles(tt.staff.Profile())
			for i, l := range got.Levels {
				assert.Equal(t, i+1, l.Level)
				assert.Equal(t, approval.StepPending, l.Status)
				assert.Equal(t, i == 0, l.PreviousLevelCompleted)
				assert.NotContains(t, own, l.ApproverRole)
			}
		})
	}
}

func TestSelect_HROfficerNeverValidatesOwnLeave(t *testing.T) {
	s := member("HRO-2", "Senior Human Resource Officer", "B", "HR Unit", "", "")

	got, err := fallbackOnly(&fakeResolver{}).Select(context.Background(), approval.Request{Staff: s, LeaveType: "Sick", Days: 2})

	assert.NoError(t, err)
	assert.NotContains(t, roles(got.Levels), orgrole.RoleHROfficer)
	assert.Equal(t, []orgrole.Role{orgrole.RoleHRDirector, orgrole.RoleChiefDirector}, roles(got.Levels))
}

func TestSelect_NoStaffData(t *testing.T) {
	got, err := fallbackOnly(&fakeResolver{}).Select(context.Background(), approval.Request{
		Staff:     staff.StaffOrganizationalInfo{StaffID: "X-1"},
		LeaveType: "Annual",
		Days:      1,
	})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, approvalerrors.ErrWorkflowNotConfigured)
}

func TestSelect_ResolvedApprovers(t *testing.T) {
	r := &fakeResolver{resolveFn: func(ctx context.Context, role orgrole.Role, requestingStaffID, unit string) (*approver.Approver, error) {
		assert.Equal(t, "MFA-100", requestingStaffID)
		assert.Equal(t, "Budget Unit", unit)
		switch role {
		case orgrole.RoleUnitHead:
			return &approver.Approver{StaffID: "MFA-020", Name: "Yaw Darko"}, nil
		case orgrole.RoleHeadOfDepartment:
			return &approver.Approver{StaffID: "MFA-031", Name: "Efua Asante", ActingFor: "MFA-030"}, nil
		}
		return nil, nil
	}}

	got, err := fallbackOnly(r).Select(context.Background(), approval.Request{Staff: budgetOfficer(), LeaveType: "Annual", Days: 5})

	assert.NoError(t, err)
	assert.Equal(t, "MFA-010", got.Levels[0].ApproverStaffID)
	assert.Empty(t, got.Levels[0].ApproverName)
	assert.Equal(t, "MFA-020", got.Levels[1].ApproverStaffID)
	assert.Equal(t, "Yaw Darko", got.Levels[1].ApproverName)
	assert.Equal(t, "MFA-031", got.Levels[2].ApproverStaffID)
	assert.Equal(t, "MFA-030", got.Levels[2].ActingFor)
}

func TestSelect_DropsLevelResolvedToRequester(t *testing.T) {
	r := &fakeResolver{resolveFn: func(ctx context.Context, role orgrole.Role, requestingStaffID, unit string) (*approver.Approver, error) {
		if role == orgrole.RoleUnitHead {
			return &approver.Approver{StaffID: requestingStaffID}, nil
		}
		return nil, nil
	}}

	got, err := fallbackOnly(r).Select(context.Background(), approval.Request{Staff: budgetOfficer(), LeaveType: "Annual", Days: 5})

	assert.NoError(t, err)
	assert.Equal(t, []orgrole.Role{
		orgrole.RoleSupervisor, orgrole.RoleHeadOfDepartment, orgrole.RoleHROfficer, orgrole.RoleChiefDirector,
	}, roles(got.Levels))
	assert.Equal(t, 4, got.Levels[3].Level)
}

func TestSelect_ResolverError(t *testing.T) {
	boom := errors.New("directory down")
	r := &fakeResolver{resolveFn: func(ctx context.Context, role orgrole.Role, requestingStaffID, unit string) (*approver.Approver, error) {
		return nil, boom
	}}

	_, err := fallbackOnly(r).Select(context.Background(), approval.Request{Staff: budgetOfficer(), LeaveType: "Annual", Days: 5})

	assert.ErrorIs(t, err, boom)
}

func catalogueMatch(steps ...workflow.Step) *workflow.Match {
	return &workflow.Match{
		Definition: workflow.Definition{ID: uuid.New(), Name: "Long annual leave", Version: 2},
		Steps:      steps,
	}
}

func step(order int, role orgrole.Role, canSkip bool) workflow.Step {
	return workflow.Step{
		StepOrder:    order,
		ApproverRole: role.String(),
		IsRequired:   !canSkip,
		CanSkip:      canSkip,
		CanDelegate:  true,
		Conditions:   datatypes.NewJSONType(workflow.Condition{}),
	}
}

func TestSelect_CataloguePrecedence(t *testing.T) {
	match := catalogueMatch(
		step(1, orgrole.RoleSupervisor, false),
		step(2, orgrole.RoleDirector, true),
		step(3, orgrole.RoleChiefDirector, false),
	)
	matcher := &fakeMatcher{findFn: func(ctx context.Context, subject workflow.Subject, organizationID string) (*workflow.Match, error) {
		assert.Equal(t, "Annual", subject.LeaveType)
		assert.Equal(t, float64(25), subject.Days)
		assert.Equal(t, "Budget Unit", subject.Profile.Unit)
		assert.Equal(t, orgID.String(), organizationID)
		return match, nil
	}}
	r := &fakeResolver{}
	sel := approval.NewSelector([]approval.Provider{
		approval.NewCatalogueProvider(matcher, r),
		approval.NewFallbackProvider(r),
	})

	got, err := sel.Select(context.Background(), approval.Request{
		Staff:          budgetOfficer(),
		LeaveType:      "Annual",
		Days:           25,
		OrganizationID: orgID.String(),
	})

	assert.NoError(t, err)
	assert.Equal(t, approval.SourceCatalogue, got.Source)
	assert.Equal(t, &match.Definition.ID, got.WorkflowID)
	assert.Equal(t, 2, got.WorkflowVersion)
	assert.Equal(t, []orgrole.Role{orgrole.RoleSupervisor, orgrole.RoleDirector, orgrole.RoleChiefDirector}, roles(got.Levels))
	assert.Equal(t, "MFA-010", got.Levels[0].ApproverStaffID)
	assert.True(t, got.Levels[1].CanSkip)
	assert.False(t, got.Levels[1].IsRequired)
}

func TestSelect_CatalogueFallsThroughWhenNothingMatches(t *testing.T) {
	r := &fakeResolver{}
	sel := approval.NewSelector([]approval.Provider{
		approval.NewCatalogueProvider(&fakeMatcher{}, r),
		approval.NewFallbackProvider(r),
	})

	got, err := sel.Select(context.Background(), approval.Request{Staff: budgetOfficer(), LeaveType: "Annual", Days: 5})

	assert.NoError(t, err)
	assert.Equal(t, approval.SourceFallback, got.Source)
	assert.Len(t, got.Levels, 5)
}

func TestSelect_CatalogueChainStillDropsOwnRole(t *testing.T) {
	matcher := &fakeMatcher{findFn: func(ctx context.Context, subject workflow.Subject, organizationID string) (*workflow.Match, error) {
		return catalogueMatch(step(1, orgrole.RoleDirector, false), step(2, orgrole.RoleChiefDirector, false)), nil
	}}
	r := &fakeResolver{}
	sel := approval.NewSelector([]approval.Provider{approval.NewCatalogueProvider(matcher, r)})

	director := member("DIR-2", "Director", "DIR", "", "Finance & Administration", "")
	got, err := sel.Select(context.Background(), approval.Request{Staff: director, LeaveType: "Annual", Days: 5})

	assert.NoError(t, err)
	assert.Equal(t, []orgrole.Role{orgrole.RoleChiefDirector}, roles(got.Levels))
	assert.Equal(t, 1, got.Levels[0].Level)
	assert.True(t, got.Levels[0].PreviousLevelCompleted)
}

func TestSelect_CatalogueChiefDirectorLeave(t *testing.T) {
	matcher := &fakeMatcher{findFn: func(ctx context.Context, subject workflow.Subject, organizationID string) (*workflow.Match, error) {
		return catalogueMatch(step(1, orgrole.RoleHRDirector, false)), nil
	}}
	sel := approval.NewSelector([]approval.Provider{approval.NewCatalogueProvider(matcher, &fakeResolver{})})

	cd := member("CD-1", "Chief Director", "CD", "", "", "")
	got, err := sel.Select(context.Background(), approval.Request{Staff: cd, LeaveType: "Annual", Days: 5})

	assert.NoError(t, err)
	assert.True(t, got.ChiefDirectorLeave)
}

func TestMatchRule_Order(t *testing.T) {
	rules := approval.FallbackRules()
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}

	assert.Equal(t, []string{
		approval.RuleChiefDirector,
		approval.RuleDirector,
		approval.RuleUnitHead,
		approval.RuleHRDirector,
		approval.RuleHROfficer,
		approval.RuleHRMDStaff,
		approval.RuleHeadOfIndependent,
		approval.RuleIndependentUnitStaff,
		approval.RuleStandard,
	}, names)
	assert.Nil(t, approval.MatchRule(rules, staff.StaffOrganizationalInfo{StaffID: "X"}))
}
