package commands

import (
	"errors"

	"shop/internal/core/domain/model/item"
	"shop/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("item name is required")
	ErrItemPriceIsInvalid = errors.New("item price must not be negative")
	ErrItemStockIsInvalid = errors.New("item stock quantity must not be negative")
)

// AddItemCommand represents a request to add a catalog item. The kind
// decides which detail fields are meaningful; the others stay blank.
//
// Example:
//
//	cmd, err := NewAddItemCommand(item.Book, "JPA in Action", 10000, 100,
//	    item.Details{Author: "kim", ISBN: "978-0000000000"})
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewAddItemCommandHandler(uowFactory)
//	itemID, err := handler.Handle(ctx, cmd)
type AddItemCommand struct { //nolint:recvcheck //using for validation
	kind          item.Kind
	name          string
	price         int
	stockQuantity int
	details       item.Details

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a catalog item.
// Validates the kind, a non-empty name, and non-negative price and stock.
func NewAddItemCommand(kind item.Kind, name string, price int, stockQuantity int, details item.Details) (AddItemCommand, error) {
	itemCommand := AddItemCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setKind(kind),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
		itemCommand.setStockQuantity(stockQuantity),
	); err != nil {
		return AddItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// Kind returns the item's catalog kind.
func (c AddItemCommand) Kind() item.Kind {
	return c.kind
}

// Name returns the item's display name.
func (c AddItemCommand) Name() string {
	return c.name
}

// Price returns the item's unit price.
func (c AddItemCommand) Price() int {
	return c.price
}

// StockQuantity returns the item's initial stock level.
func (c AddItemCommand) StockQuantity() int {
	return c.stockQuantity
}

// Details returns the kind-specific detail fields.
func (c AddItemCommand) Details() item.Details {
	return c.details
}

func (c *AddItemCommand) setKind(kind item.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AddItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddItemCommand) setPrice(price int) error {
	if price < 0 {
		return ErrItemPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *AddItemCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return ErrItemStockIsInvalid
	}

	c.stockQuantity = stockQuantity
	return nil
}
