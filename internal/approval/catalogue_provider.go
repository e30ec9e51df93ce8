package approval

import (
	"context"

	"go-leave-approval/internal/approver"
	"go-leave-approval/internal/orgrole"
	"go-leave-approval/internal/workflow"

	"go.uber.org/zap"
)

// WorkflowMatcher is the part of the workflow service the catalogue provider needs.
type WorkflowMatcher interface {
	FindMatchingWorkflow(ctx context.Context, subject workflow.Subject, organizationID string) (*workflow.Match, error)
}

type catalogueProvider struct {
	matcher  WorkflowMatcher
	resolver approver.Resolver
	logger   *zap.Logger
}

func NewCatalogueProvider(matcher WorkflowMatcher, resolver approver.Resolver, logger ...*zap.Logger) Provider {
	l := zap.L().Named("approval.catalogue")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.catalogue")
	}
	return &catalogueProvider{matcher: matcher, resolver: resolver, logger: l}
}

func (p *catalogueProvider) Name() string {
	return SourceCatalogue
}

func (p *catalogueProvider) Provide(ctx context.Context, req Request) (*Selection, error) {
	match, err := p.matcher.FindMatchingWorkflow(ctx, req.Subject(), req.OrganizationID)
	if err != nil {
		return nil, err
	}
	if match == nil || len(match.Steps) == 0 {
		return nil, nil
	}

	levels := make([]Level, 0, len(match.Steps))
	for _, st := range match.Steps {
		role, ok := orgrole.ParseRole(st.ApproverRole)
		if !ok {
			p.logger.Warn("skipping step with unknown role",
				zap.String("workflow_id", match.Definition.ID.String()),
				zap.String("role", st.ApproverRole),
			)
			continue
		}
		lvl, err := resolveLevel(ctx, p.resolver, req, role)
		if err != nil {
			return nil, err
		}
		lvl.IsRequired = st.IsRequired
		lvl.CanSkip = st.CanSkip
		lvl.CanDelegate = st.CanDelegate
		levels = append(levels, lvl)
	}

	id := match.Definition.ID
	profile := req.Staff.Profile()
	return &Selection{
		Levels:             levels,
		Source:             SourceCatalogue,
		RuleName:           match.Definition.Name,
		WorkflowID:         &id,
		WorkflowVersion:    match.Definition.Version,
		ChiefDirectorLeave: orgrole.IsChiefDirector(profile.Position, profile.Grade),
	}, nil
}
