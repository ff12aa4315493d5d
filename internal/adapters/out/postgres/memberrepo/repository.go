package memberrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"
)

// GormMemberRepository implements ports.MemberRepository using GORM.
type GormMemberRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates touched
// within the current unit of work.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormMemberRepository creates a new GORM member repository.
func NewGormMemberRepository(db *gorm.DB, tracker aggregateTracker) *GormMemberRepository {
	return &GormMemberRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new member and assigns the generated identifier back to the
// aggregate.
func (r *GormMemberRepository) Add(ctx context.Context, aggregate *member.Member) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a member by identifier.
func (r *GormMemberRepository) Get(ctx context.Context, id int64) (*member.Member, error) {
	var dto MemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("member", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all registered members ordered by identifier.
func (r *GormMemberRepository) GetAll(ctx context.Context) ([]*member.Member, error) {
	var dtos []MemberDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	members := make([]*member.Member, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}
