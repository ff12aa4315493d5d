// Package item provides the catalog item aggregate. Catalog items come in
// three variants (book, album, movie) persisted in one table and
// discriminated by an explicit kind. Orders snapshot an item's price at
// placement time; later catalog price changes never affect placed orders.
package item

import (
	"errors"

	"shop/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created
	// through one of the item constructors.
	ErrItemIsNotConstructed = errors.New("Item must be created via its constructor")

	// ErrItemIDAlreadyAssigned is returned when AssignID is called on an
	// item that already has a persistent identifier.
	ErrItemIDAlreadyAssigned = errors.New("item id is already assigned")
)

// Details carries the kind-specific attributes of a catalog item.
// Only the fields matching the item's kind are meaningful; the rest stay
// empty. The retrieval layer treats the whole struct as opaque payload.
type Details struct {
	// Book
	Author string
	ISBN   string

	// Album
	Artist string
	Studio string

	// Movie
	Director string
	Actor    string
}

// Item is a catalog entry: a tagged variant over the item kinds sharing a
// common name/price/stock projection.
type Item struct {
	id            int64
	kind          Kind
	name          string
	price         int
	stockQuantity int
	details       Details

	isConstructed bool
}

// NewBook creates a book catalog item pending persistence.
func NewBook(name string, price, stockQuantity int, author, isbn string) (*Item, error) {
	return newItem(Book, name, price, stockQuantity, Details{Author: author, ISBN: isbn})
}

// NewAlbum creates an album catalog item pending persistence.
func NewAlbum(name string, price, stockQuantity int, artist, studio string) (*Item, error) {
	return newItem(Album, name, price, stockQuantity, Details{Artist: artist, Studio: studio})
}

// NewMovie creates a movie catalog item pending persistence.
func NewMovie(name string, price, stockQuantity int, director, actor string) (*Item, error) {
	return newItem(Movie, name, price, stockQuantity, Details{Director: director, Actor: actor})
}

// RestoreItem reconstructs a persisted item from storage.
func RestoreItem(id int64, kind Kind, name string, price, stockQuantity int, details Details) (*Item, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id)
	}

	i, err := newItem(kind, name, price, stockQuantity, details)
	if err != nil {
		return nil, err
	}

	i.id = id
	return i, nil
}

func newItem(kind Kind, name string, price, stockQuantity int, details Details) (*Item, error) {
	i := &Item{
		details:       details,
		isConstructed: true,
	}

	if err := errors.Join(
		i.setKind(kind),
		i.setName(name),
		i.setPrice(price),
		i.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// AssignID sets the identifier generated by the store on first persistence.
func (i *Item) AssignID(id int64) error {
	if i.id != 0 {
		return ErrItemIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id)
	}

	i.id = id
	return nil
}

// ID returns the item's identifier, or 0 if not yet persisted.
func (i *Item) ID() int64 {
	return i.id
}

// Kind returns the variant discriminator.
func (i *Item) Kind() Kind {
	return i.kind
}

// Name returns the catalog name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current catalog price.
func (i *Item) Price() int {
	return i.price
}

// StockQuantity returns the units currently in stock.
func (i *Item) StockQuantity() int {
	return i.stockQuantity
}

// Details returns the kind-specific attributes.
func (i *Item) Details() Details {
	return i.details
}

func (i *Item) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	i.kind = kind
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("price", price)
	}
	i.price = price
	return nil
}

func (i *Item) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsOutOfRangeError("stockQuantity", stockQuantity)
	}
	i.stockQuantity = stockQuantity
	return nil
}
