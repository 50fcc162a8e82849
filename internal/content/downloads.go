package content

import (
	"errors"
	"fmt"

	"github.com/minsu-han/corpsite/internal/database"
	"github.com/minsu-han/corpsite/internal/model"
)

// Downloads is the download catalog service. Creates and updates must name a
// category that exists in the registry; the store does not check this, so the
// guard lives here.
type Downloads struct {
	store database.Store
}

// List returns all downloads, newest first.
func (d *Downloads) List() ([]model.DownloadItem, error) {
	return d.store.GetDownloads()
}

// Get returns one download by id.
func (d *Downloads) Get(id string) (*model.DownloadItem, error) {
	item, err := d.store.GetDownload(id)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

// Create persists a new download after verifying its category exists.
func (d *Downloads) Create(item *model.DownloadItem) (string, error) {
	if item == nil || item.Title == "" || item.FileURL == "" {
		return "", fmt.Errorf("title and file_url are required: %w", ErrInvalidInput)
	}
	if err := d.checkCategory(item.Category); err != nil {
		return "", err
	}
	return d.store.CreateDownload(item)
}

// Update replaces the mutable fields of the download with the given id.
// The creation timestamp is immutable and never touched.
func (d *Downloads) Update(id string, item *model.DownloadItem) error {
	if id == "" || item == nil {
		return ErrInvalidInput
	}
	if err := d.checkCategory(item.Category); err != nil {
		return err
	}
	item.ID = id
	return notFound(d.store.UpdateDownload(item))
}

// Delete removes the download with the given id.
func (d *Downloads) Delete(id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return notFound(d.store.DeleteDownload(id))
}

func (d *Downloads) checkCategory(name string) error {
	if name == "" {
		return fmt.Errorf("category is required: %w", ErrInvalidInput)
	}
	if _, err := d.store.GetCategoryByName(name); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("unknown category %q: %w", name, ErrInvalidInput)
		}
		return err
	}
	return nil
}

// Categories is the download category registry.
type Categories struct {
	store database.Store
}

// List returns all categories.
func (c *Categories) List() ([]model.Category, error) {
	return c.store.GetCategories()
}

// Add creates a category. A case-sensitive name collision is ErrConflict.
func (c *Categories) Add(name string) (*model.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", ErrInvalidInput)
	}
	id, err := c.store.CreateCategory(name)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, fmt.Errorf("category %q already exists: %w", name, ErrConflict)
		}
		return nil, err
	}
	return &model.Category{ID: id, Name: name}, nil
}

// Rename changes a category name in place. Downloads keep referencing the old
// name; callers that want referential integrity update their downloads
// alongside.
func (c *Categories) Rename(oldName, newName string) error {
	if oldName == "" || newName == "" {
		return ErrInvalidInput
	}
	if oldName == newName {
		return nil
	}
	if _, err := c.store.GetCategoryByName(newName); err == nil {
		return fmt.Errorf("category %q already exists: %w", newName, ErrConflict)
	} else if !errors.Is(err, database.ErrNotFound) {
		return err
	}
	return notFound(c.store.RenameCategory(oldName, newName))
}

// Delete removes a category, refusing while any download still references it.
func (c *Categories) Delete(name string) error {
	if name == "" {
		return ErrInvalidInput
	}
	n, err := c.store.CountDownloadsByCategory(name)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("category %q is referenced by %d download(s): %w", name, n, ErrConflict)
	}
	return notFound(c.store.DeleteCategory(name))
}
