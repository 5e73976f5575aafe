// Package catalog seeds and reads the properties and projects the
// coordinators operate on. Status and ledger fields are never set here
// beyond their initial values.
package catalog

import (
	"context"
	"strings"
	"time"

	"immofund-backend/internal/domain/errs"
	"immofund-backend/internal/domain/identity"
	"immofund-backend/internal/domain/project"
	"immofund-backend/internal/domain/property"
	"immofund-backend/internal/domain/uow"
	"immofund-backend/pkg/id"
	"immofund-backend/pkg/money"

	"github.com/rs/zerolog"
)

var (
	ErrUnauthenticated = errs.New(errs.ErrForbidden, "caller is not identified")
	ErrTitleRequired   = errs.New(errs.ErrValidation, "title is required")
	ErrInvalidPrice    = errs.New(errs.ErrValidation, "price must be a positive amount in cents")
	ErrInvalidCategory = errs.New(errs.ErrValidation, "category must be apartment, house or office")
	ErrInvalidKind     = errs.New(errs.ErrValidation, "kind must be construction or renovation")
	ErrInvalidTarget   = errs.New(errs.ErrValidation, "target amount must be a positive amount in cents")
	ErrInvalidTerms    = errs.New(errs.ErrValidation, "yield rate and duration must not be negative")
)

type Usecase struct {
	uow uow.UnitOfWork
	log zerolog.Logger
	now func() time.Time
}

func NewUsecase(u uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{uow: u, log: log.With().Str("component", "catalog").Logger(), now: time.Now}
}

// CreateProperty lists a property owned by the caller.
func (u *Usecase) CreateProperty(ctx context.Context, actor identity.Actor, in CreatePropertyInput) (*property.Property, error) {
	if actor.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !money.PositiveCents(in.Price) {
		return nil, ErrInvalidPrice
	}
	cat := property.Category(in.Category)
	if !cat.Valid() {
		return nil, ErrInvalidCategory
	}
	repos := u.uow.Direct()
	if in.ProjectID != "" {
		if _, err := repos.Projects.GetByID(ctx, in.ProjectID); err != nil {
			return nil, err
		}
	}

	now := u.now().UTC()
	p := &property.Property{
		PropertyID: id.NewID32(),
		OwnerID:    actor.UserID,
		Title:      strings.TrimSpace(in.Title),
		Price:      in.Price,
		Category:   cat,
		Status:     property.StatusAvailable,
		ProjectID:  in.ProjectID,
		ImageURL:   in.ImageURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := repos.Properties.Create(ctx, p); err != nil {
		return nil, err
	}
	u.log.Info().Str("property_id", p.PropertyID).Str("owner_id", p.OwnerID).Msg("property listed")
	return p, nil
}

func (u *Usecase) GetProperty(ctx context.Context, propertyID string) (*property.Property, error) {
	return u.uow.Direct().Properties.GetByID(ctx, propertyID)
}

// CreateProject opens a funding project promoted by the caller.
func (u *Usecase) CreateProject(ctx context.Context, actor identity.Actor, in CreateProjectInput) (*project.Project, error) {
	if actor.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	kind := project.Kind(in.Kind)
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	if !money.PositiveCents(in.TargetAmount) {
		return nil, ErrInvalidTarget
	}
	if in.YieldRate < 0 || in.DurationMonths < 0 {
		return nil, ErrInvalidTerms
	}

	now := u.now().UTC()
	p := &project.Project{
		ProjectID:       id.NewID32(),
		PromoterID:      actor.UserID,
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		Kind:            kind,
		Location:        in.Location,
		TargetAmount:    in.TargetAmount,
		CollectedAmount: 0,
		Status:          project.StatusOpen,
		YieldRate:       in.YieldRate,
		DurationMonths:  in.DurationMonths,
		ImageURL:        in.ImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.uow.Direct().Projects.Create(ctx, p); err != nil {
		return nil, err
	}
	u.log.Info().Str("project_id", p.ProjectID).Float64("target_amount", p.TargetAmount).Msg("project opened")
	return p, nil
}

func (u *Usecase) GetProject(ctx context.Context, projectID string) (*project.Project, error) {
	return u.uow.Direct().Projects.GetByID(ctx, projectID)
}

func (u *Usecase) ListProjects(ctx context.Context) ([]project.Project, error) {
	return u.uow.Direct().Projects.List(ctx)
}
