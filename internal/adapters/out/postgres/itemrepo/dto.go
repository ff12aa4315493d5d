// Package itemrepo provides data transfer objects and mapping functions for
// catalog item persistence. All item variants share one table; the Kind
// column discriminates them and the variant-specific columns stay empty for
// the other kinds.
package itemrepo

import (
	"shop/internal/core/domain/model/item"
)

// ItemDTO represents the database structure for persisting catalog items.
type ItemDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Kind          string `gorm:"index"`
	Name          string
	Price         int
	StockQuantity int

	// Variant-specific columns; opaque to the retrieval layer.
	Author   string
	ISBN     string `gorm:"column:isbn"`
	Artist   string
	Studio   string
	Director string
	Actor    string
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(aggregate *item.Item) ItemDTO {
	details := aggregate.Details()
	return ItemDTO{
		ID:            aggregate.ID(),
		Kind:          aggregate.Kind().String(),
		Name:          aggregate.Name(),
		Price:         aggregate.Price(),
		StockQuantity: aggregate.StockQuantity(),
		Author:        details.Author,
		ISBN:          details.ISBN,
		Artist:        details.Artist,
		Studio:        details.Studio,
		Director:      details.Director,
		Actor:         details.Actor,
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	kind, err := item.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(dto.ID, kind, dto.Name, dto.Price, dto.StockQuantity, item.Details{
		Author:   dto.Author,
		ISBN:     dto.ISBN,
		Artist:   dto.Artist,
		Studio:   dto.Studio,
		Director: dto.Director,
		Actor:    dto.Actor,
	})
}
