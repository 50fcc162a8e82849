// Package database provides storage backends for the site content.
package database

import (
	"errors"

	"github.com/minsu-han/corpsite/internal/model"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint would be violated.
var ErrDuplicate = errors.New("duplicate record")

// Store defines the interface for database operations.
// Both SQLite and PostgreSQL implementations satisfy this interface.
type Store interface {
	Close() error

	// DatabaseType returns the name of the database backend ("SQLite" or "PostgreSQL").
	DatabaseType() string

	// Page section operations
	GetPageSetting(page string) (*model.PageSection, error)
	GetPageSettings() ([]model.PageSection, error)
	UpsertPageSetting(s *model.PageSection) error

	// Portfolio operations
	GetPortfolioItems() ([]model.PortfolioItem, error)
	GetPortfolioItem(id string) (*model.PortfolioItem, error)
	CreatePortfolioItem(item *model.PortfolioItem) (string, error)
	UpdatePortfolioItem(item *model.PortfolioItem) error
	DeletePortfolioItem(id string) error

	// Download operations
	GetDownloads() ([]model.DownloadItem, error)
	GetDownload(id string) (*model.DownloadItem, error)
	CreateDownload(item *model.DownloadItem) (string, error)
	UpdateDownload(item *model.DownloadItem) error
	DeleteDownload(id string) error
	CountDownloadsByCategory(name string) (int, error)

	// Category operations
	GetCategories() ([]model.Category, error)
	GetCategoryByName(name string) (*model.Category, error)
	CreateCategory(name string) (int64, error)
	RenameCategory(oldName, newName string) error
	DeleteCategory(name string) error

	// Notice operations
	GetNotices() ([]model.NoticeItem, error)
	GetNotice(id int64) (*model.NoticeItem, error)
	CreateNotice(n *model.NoticeItem) (int64, error)
	UpdateNotice(n *model.NoticeItem) error
	DeleteNotice(id int64) error
	IncrementNoticeViews(id int64) error

	// Main card operations
	GetMainCards() ([]model.MainCard, error)
	ReplaceMainCards(cards []model.MainCard) error

	// Settings operations
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}
