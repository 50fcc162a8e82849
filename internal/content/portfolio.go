package content

import (
	"github.com/minsu-han/corpsite/internal/database"
	"github.com/minsu-han/corpsite/internal/model"
)

// Portfolio is the project catalog service.
type Portfolio struct {
	store database.Store
}

// List returns every portfolio item. Details and gallery come back decoded,
// with the lenient fallbacks applied by the store.
func (p *Portfolio) List() ([]model.PortfolioItem, error) {
	return p.store.GetPortfolioItems()
}

// Get returns one item by id.
func (p *Portfolio) Get(id string) (*model.PortfolioItem, error) {
	item, err := p.store.GetPortfolioItem(id)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

// Create persists a new item and returns its assigned id.
func (p *Portfolio) Create(item *model.PortfolioItem) (string, error) {
	if item == nil {
		return "", ErrInvalidInput
	}
	return p.store.CreatePortfolioItem(item)
}

// Update replaces all mutable fields of the item with the given id.
func (p *Portfolio) Update(id string, item *model.PortfolioItem) error {
	if id == "" || item == nil {
		return ErrInvalidInput
	}
	item.ID = id
	return notFound(p.store.UpdatePortfolioItem(item))
}

// Delete removes the item with the given id.
func (p *Portfolio) Delete(id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return notFound(p.store.DeletePortfolioItem(id))
}
