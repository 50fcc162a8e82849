package content

import (
	"github.com/minsu-han/corpsite/internal/database"
	"github.com/minsu-han/corpsite/internal/model"
)

// Notices is the notice board service.
type Notices struct {
	store database.Store
}

// List returns all notices, newest first. Listing never touches view counts.
func (n *Notices) List() ([]model.NoticeItem, error) {
	return n.store.GetNotices()
}

// Get returns one notice by id, incrementing its view counter by exactly one.
// The returned item carries the already-incremented count.
func (n *Notices) Get(id int64) (*model.NoticeItem, error) {
	if err := n.store.IncrementNoticeViews(id); err != nil {
		return nil, notFound(err)
	}
	item, err := n.store.GetNotice(id)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

// Create persists a new notice and returns its assigned id.
func (n *Notices) Create(item *model.NoticeItem) (int64, error) {
	if item == nil || item.Title == "" {
		return 0, ErrInvalidInput
	}
	return n.store.CreateNotice(item)
}

// Update replaces title, content and author of the notice with the given id.
func (n *Notices) Update(id int64, item *model.NoticeItem) error {
	if item == nil {
		return ErrInvalidInput
	}
	item.ID = id
	return notFound(n.store.UpdateNotice(item))
}

// Delete removes the notice with the given id.
func (n *Notices) Delete(id int64) error {
	return notFound(n.store.DeleteNotice(id))
}
