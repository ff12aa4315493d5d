package itemrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shop/internal/core/domain/model/item"
	"shop/internal/pkg/errs"
)

// GormItemRepository implements ports.ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates touched
// within the current unit of work.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog item and assigns the generated identifier back to
// the aggregate.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
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

// Get retrieves a catalog item by identifier.
func (r *GormItemRepository) Get(ctx context.Context, id int64) (*item.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the catalog items with the given identifiers in one
// query. Missing identifiers are absent from the result, not an error.
func (r *GormItemRepository) GetByIDs(ctx context.Context, ids []int64) ([]*item.Item, error) {
	if len(ids) == 0 {
		return []*item.Item{}, nil
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves the whole catalog ordered by identifier.
func (r *GormItemRepository) GetAll(ctx context.Context) ([]*item.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []ItemDTO) ([]*item.Item, error) {
	items := make([]*item.Item, 0, len(dtos))
	for _, dto := range dtos {
		i, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, nil
}
