package approval

import (
	"context"

	"go-leave-approval/internal/approver"
	"go-leave-approval/internal/orgrole"
	"go-leave-approval/internal/staff"

	"go.uber.org/zap"
)

// FallbackRule is one row of the built-in routing table.
type FallbackRule struct {
	Name string
	Applies            func(s staff.StaffOrganizationalInfo) bool
	Chain              func(s staff.StaffOrganizationalInfo) []orgrole.Role
	ChiefDirectorLeave bool
}

const (
	RuleChiefDirector        = "chief_director"
	RuleDirector             = "director"
	RuleUnitHead             = "unit_head"
	RuleHRDirector           = "hr_director"
	RuleHROfficer            = "hr_officer"
	RuleHRMDStaff            = "hrmd_staff"
	RuleHeadOfIndependent    = "head_of_independent_unit"
	RuleIndependentUnitStaff = "independent_unit_staff"
	RuleStandard             = "standard"
)

func fixed(roles ...orgrole.Role) func(staff.StaffOrganizationalInfo) []orgrole.Role {
	return func(staff.StaffOrganizationalInfo) []orgrole.Role { return roles }
}

// lineManagement is the optional supervisor and unit head prefix shared by several chains.
func lineManagement(s staff.StaffOrganizationalInfo) []orgrole.Role {
	var roles []orgrole.Role
	if s.SupervisorID() != "" {
		roles = append(roles, orgrole.RoleSupervisor)
	}
	if s.UnitName() != "" {
		roles = append(roles, orgrole.RoleUnitHead)
	}
	return roles
}

// FallbackRules returns the table in evaluation order. The first rule that
// applies decides the chain.
func FallbackRules() []FallbackRule {
	return []FallbackRule{
		{
			Name: RuleChiefDirector,
			Applies: func(s staff.StaffOrganizationalInfo) bool {
				return orgrole.IsChiefDirector(s.Position, s.Grade)
			},
			Chain:              fixed(orgrole.RoleHRDirector),
			ChiefDirectorLeave: true,
		},
		{
			Name: RuleDirector,
			Applies: func(s staff.StaffOrganizationalInfo) bool {
				p := s.Profile()
				return orgrole.IsDirector(p.Position, p.Grade) &&
					!orgrole.IsHRDirector(p.Position, p.Grade, p.Unit, p.Directorate)
			},
			Chain: fixed(orgrole.RoleHROfficer, orgrole.RoleChiefDirector),
		},
		{
			Name: RuleUnitHead,
			Applies: func(s staff.StaffOrganizationalInfo) bool {
				p := s.Profile()
				return orgrole.IsUnitHead(p.Position) &&
					!orgrole.IsHeadOfDepartment(p.Position, p.Grade, p.Unit, p.Directorate)
			},
			Chain: func(s staff.StaffOrganizationalInfo) []orgrole.Role {
				routing := orgrole.RoleHeadOfDepartment
				if orgrole.IsIndependentUnit(s.UnitName()) ||
					orgrole.ReportsDirectlyToChiefDirector(s.UnitName(), s.DirectorateName()) {
					routing = orgrole.RoleChiefDirector
				}
				return []orgrole.Role{routing, orgrole.RoleHROfficer, orgrole.RoleChiefDirector}
			},
		},
		{
			Name: RuleHRDirector,
			Applies: func(s staff.StaffOrganizationalInfo) bool {
				p := s.Profile()
				return orgrole.IsHRDirector(p.Position, p.Grade, p.Unit, p.Directorate)
			},
			Chain: fixed(orgrole.RoleChiefDirector),
		},
		{
			Name: RuleHROfficer,
			Applies: func(s staff.StaffOrganizationalInfo) bool {
				p := s.Profile()
				return orgrole.IsHROfficer(p.Position, p.Grade, p.Unit, p.Directorate)
			},
			Chain: fixed(orgrole.RoleHRDirector, orgrole.RoleChiefDirector),
		},
		{
			Name: RuleHRMDStaff,
			Applies: func(s staff.StaffOrganizationalInfo) bool {
				return orgrole.IsHRMDStaff(s.UnitName(), s.DirectorateName())
			},
			Chain: func(s staff.StaffOrganizationalInfo) []orgrole.Role {
				return append(lineManagement(s), orgrole.RoleHRDirector, orgrole.RoleChiefDirector)
			},
		},
		{
			Name: RuleHeadOfIndependent,
			Applies: func(s staff.StaffOrganizationalInfo) bool {
				return orgrole.IsHeadOfIndependentUnit(s.Position, s.UnitName())
			},
			Chain: fixed(orgrole.RoleHROfficer, orgrole.RoleChiefDirector),
		},
		{
			Name: RuleIndependentUnitStaff,
			Applies: func(s staff.StaffOrganizationalInfo) bool {
				return orgrole.IsIndependentUnit(s.UnitName())
			},
			Chain: func(s staff.StaffOrganizationalInfo) []orgrole.Role {
				return append(lineManagement(s),
					orgrole.RoleHeadOfIndependentUnit,
					orgrole.RoleHROfficer,
					orgrole.RoleChiefDirector,
				)
			},
		},
		{
			Name: RuleStandard,
			Applies: func(s staff.StaffOrganizationalInfo) bool {
				return s.Position != "" || s.UnitName() != "" || s.DirectorateName() != ""
			},
			Chain: func(s staff.StaffOrganizationalInfo) []orgrole.Role {
				unit, dir := s.UnitName(), s.DirectorateName()
				routing := orgrole.RoleHeadOfDepartment
				switch {
				case orgrole.IsIndependentUnit(unit):
					routing = orgrole.RoleHeadOfIndependentUnit
				case orgrole.ReportsDirectlyToChiefDirector(unit, dir):
					routing = orgrole.RoleChiefDirector
				}
				return append(lineManagement(s), routing, orgrole.RoleHROfficer, orgrole.RoleChiefDirector)
			},
		},
	}
}

// MatchRule returns the first rule that applies, or nil.
func MatchRule(rules []FallbackRule, s staff.StaffOrganizationalInfo) *FallbackRule {
	for i := range rules {
		if rules[i].Applies(s) {
			return &rules[i]
		}
	}
	return nil
}

type fallbackProvider struct {
	rules    []FallbackRule
	resolver approver.Resolver
	logger   *zap.Logger
}

func NewFallbackProvider(resolver approver.Resolver, logger ...*zap.Logger) Provider {
	l := zap.L().Named("approval.fallback")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.fallback")
	}
	return &fallbackProvider{rules: FallbackRules(), resolver: resolver, logger: l}
}

func (p *fallbackProvider) Name() string {
	return SourceFallback
}

func (p *fallbackProvider) Provide(ctx context.Context, req Request) (*Selection, error) {
	rule := MatchRule(p.rules, req.Staff)
	if rule == nil {
		return nil, nil
	}

	roles := rule.Chain(req.Staff)
	levels := make([]Level, 0, len(roles))
	for _, role := range roles {
		lvl, err := resolveLevel(ctx, p.resolver, req, role)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}

	p.logger.Debug("fallback rule applied",
		zap.String("staff_id", req.Staff.StaffID),
		zap.String("rule", rule.Name),
	)
	return &Selection{
		Levels:             levels,
		Source:             SourceFallback,
		RuleName:           rule.Name,
		ChiefDirectorLeave: rule.ChiefDirectorLeave,
	}, nil
}
