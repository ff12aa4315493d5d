package commands

import (
	"context"
	"fmt"

	"shop/internal/core/domain/model/item"
)

// AddItemCommandHandler handles the business logic for adding catalog items.
//
// Example:
//
//	handler := NewAddItemCommandHandler(uowFactory)
//	cmd, _ := NewAddItemCommand(item.Book, "JPA in Action", 10000, 100,
//	    item.Details{Author: "kim", ISBN: "978-0000000000"})
//
//	itemID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewAddItemCommandHandler creates a handler for catalog item operations.
// Requires an ItemUoWFactory for transactional persistence.
func NewAddItemCommandHandler(uowFactory ItemUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add item command and returns the store assigned
// item id.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newItem, err := buildItem(cmd)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	if err = itemRepo.Add(ctx, newItem); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newItem.ID(), nil
}

func buildItem(cmd AddItemCommand) (*item.Item, error) {
	details := cmd.Details()

	switch cmd.Kind() {
	case item.Book:
		return item.NewBook(cmd.Name(), cmd.Price(), cmd.StockQuantity(), details.Author, details.ISBN)
	case item.Album:
		return item.NewAlbum(cmd.Name(), cmd.Price(), cmd.StockQuantity(), details.Artist, details.Studio)
	case item.Movie:
		return item.NewMovie(cmd.Name(), cmd.Price(), cmd.StockQuantity(), details.Director, details.Actor)
	default:
		return nil, fmt.Errorf("unhandled item kind: %s", cmd.Kind())
	}
}
