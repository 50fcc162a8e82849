package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minsu-han/corpsite/internal/model"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
}

// Ensure DB implements Store interface.
var _ Store = (*DB)(nil)

// New opens or creates an SQLite database at the given path.
func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Enable WAL mode for better concurrency.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}
	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// DatabaseType returns the database backend name.
func (db *DB) DatabaseType() string {
	return "SQLite"
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS page_settings (
		page TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		subtitle TEXT NOT NULL DEFAULT '',
		background_image TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS portfolio (
		id TEXT PRIMARY KEY,
		title TEXT,
		period TEXT,
		role TEXT,
		overview TEXT,
		details TEXT,
		client TEXT,
		image TEXT,
		category TEXT
	);
	CREATE TABLE IF NOT EXISTS downloads (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT DEFAULT '',
		category TEXT NOT NULL,
		file_url TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);
	CREATE TABLE IF NOT EXISTS notices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT DEFAULT '',
		author TEXT DEFAULT '',
		date DATETIME NOT NULL,
		views INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS main_cards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT DEFAULT '',
		link TEXT DEFAULT '',
		icon TEXT DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return err
	}
	// Columns added after the portfolio table first shipped. Older database
	// files are upgraded in place.
	for _, col := range []struct{ table, name string }{
		{"portfolio", "gallery"},
		{"portfolio", "size"},
		{"portfolio", "youtube_link"},
	} {
		ok, err := db.hasColumn(col.table, col.name)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		_, err = db.conn.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT", col.table, col.name))
		// A concurrent migration may have added the column between the
		// check and the ALTER.
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return err
		}
	}
	return nil
}

func (db *DB) hasColumn(table, column string) (bool, error) {
	rows, err := db.conn.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			dfltValue  sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dfltValue, &primaryKey); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// --- Page Section Methods ---

// GetPageSetting returns the editable header for a page, or ErrNotFound.
func (db *DB) GetPageSetting(page string) (*model.PageSection, error) {
	var s model.PageSection
	err := db.conn.QueryRow(
		"SELECT page, title, subtitle, background_image FROM page_settings WHERE page = ?", page,
	).Scan(&s.Page, &s.Title, &s.Subtitle, &s.BackgroundImage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetPageSettings returns every stored page header.
func (db *DB) GetPageSettings() ([]model.PageSection, error) {
	rows, err := db.conn.Query("SELECT page, title, subtitle, background_image FROM page_settings ORDER BY page")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sections []model.PageSection
	for rows.Next() {
		var s model.PageSection
		if err := rows.Scan(&s.Page, &s.Title, &s.Subtitle, &s.BackgroundImage); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// UpsertPageSetting inserts or fully replaces the header for a page.
func (db *DB) UpsertPageSetting(s *model.PageSection) error {
	_, err := db.conn.Exec(`
		INSERT INTO page_settings (page, title, subtitle, background_image)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(page) DO UPDATE SET
			title = excluded.title,
			subtitle = excluded.subtitle,
			background_image = excluded.background_image`,
		s.Page, s.Title, s.Subtitle, s.BackgroundImage)
	return err
}

// --- Portfolio Methods ---

const portfolioColumns = "id, title, period, role, overview, details, client, image, category, gallery, size, youtube_link"

// GetPortfolioItems returns all portfolio items.
func (db *DB) GetPortfolioItems() ([]model.PortfolioItem, error) {
	rows, err := db.conn.Query("SELECT " + portfolioColumns + " FROM portfolio")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPortfolioItems(rows)
}

// GetPortfolioItem returns one portfolio item by id, or ErrNotFound.
func (db *DB) GetPortfolioItem(id string) (*model.PortfolioItem, error) {
	row := db.conn.QueryRow("SELECT "+portfolioColumns+" FROM portfolio WHERE id = ?", id)
	item, err := scanPortfolioItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CreatePortfolioItem persists a new item under a freshly assigned id.
func (db *DB) CreatePortfolioItem(item *model.PortfolioItem) (string, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(`
		INSERT INTO portfolio (`+portfolioColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, item.Title, item.Period, item.Role, item.Overview,
		item.Details.StoredText(), item.Client, item.Image, item.Category,
		item.Gallery.StoredText(), item.Size, item.YoutubeLink)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdatePortfolioItem replaces all mutable fields of the item with item.ID.
func (db *DB) UpdatePortfolioItem(item *model.PortfolioItem) error {
	res, err := db.conn.Exec(`
		UPDATE portfolio
		SET title=?, period=?, role=?, overview=?, details=?, client=?, image=?, category=?, gallery=?, size=?, youtube_link=?
		WHERE id=?`,
		item.Title, item.Period, item.Role, item.Overview,
		item.Details.StoredText(), item.Client, item.Image, item.Category,
		item.Gallery.StoredText(), item.Size, item.YoutubeLink, item.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// DeletePortfolioItem removes the item with the given id.
func (db *DB) DeletePortfolioItem(id string) error {
	res, err := db.conn.Exec("DELETE FROM portfolio WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func scanPortfolioItems(rows *sql.Rows) ([]model.PortfolioItem, error) {
	var items []model.PortfolioItem
	for rows.Next() {
		item, err := scanPortfolioItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPortfolioItem(row rowScanner) (*model.PortfolioItem, error) {
	var it model.PortfolioItem
	var title, period, role, overview, details, client, image, category, gallery, size, youtube sql.NullString
	if err := row.Scan(&it.ID, &title, &period, &role, &overview, &details,
		&client, &image, &category, &gallery, &size, &youtube); err != nil {
		return nil, err
	}
	it.Title = title.String
	it.Period = period.String
	it.Role = role.String
	it.Overview = overview.String
	it.Client = client.String
	it.Image = image.String
	it.Category = category.String
	it.Size = size.String
	it.YoutubeLink = youtube.String
	it.Details = model.DecodeDetails(details.String)
	it.Gallery = model.DecodeGallery(gallery.String)
	return &it, nil
}

// --- Download Methods ---

// GetDownloads returns all download items, newest first.
func (db *DB) GetDownloads() ([]model.DownloadItem, error) {
	rows, err := db.conn.Query(
		"SELECT id, title, description, category, file_url, created_at FROM downloads ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []model.DownloadItem
	for rows.Next() {
		var d model.DownloadItem
		var desc sql.NullString
		if err := rows.Scan(&d.ID, &d.Title, &desc, &d.Category, &d.FileURL, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Description = desc.String
		items = append(items, d)
	}
	return items, rows.Err()
}

// GetDownload returns one download item by id, or ErrNotFound.
func (db *DB) GetDownload(id string) (*model.DownloadItem, error) {
	var d model.DownloadItem
	var desc sql.NullString
	err := db.conn.QueryRow(
		"SELECT id, title, description, category, file_url, created_at FROM downloads WHERE id = ?", id,
	).Scan(&d.ID, &d.Title, &desc, &d.Category, &d.FileURL, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d.Description = desc.String
	return &d, nil
}

// CreateDownload persists a new download item. The creation timestamp is set
// once here and never changed by updates.
func (db *DB) CreateDownload(item *model.DownloadItem) (string, error) {
	id := uuid.NewString()
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := db.conn.Exec(`
		INSERT INTO downloads (id, title, description, category, file_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, item.Title, item.Description, item.Category, item.FileURL, createdAt)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateDownload replaces the mutable fields of the item with item.ID.
func (db *DB) UpdateDownload(item *model.DownloadItem) error {
	res, err := db.conn.Exec(
		"UPDATE downloads SET title=?, description=?, category=?, file_url=? WHERE id=?",
		item.Title, item.Description, item.Category, item.FileURL, item.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// DeleteDownload removes the item with the given id.
func (db *DB) DeleteDownload(id string) error {
	res, err := db.conn.Exec("DELETE FROM downloads WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// CountDownloadsByCategory returns how many downloads reference a category name.
func (db *DB) CountDownloadsByCategory(name string) (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM downloads WHERE category = ?", name).Scan(&n)
	return n, err
}

// --- Category Methods ---

// GetCategories returns all categories in insertion order.
func (db *DB) GetCategories() ([]model.Category, error) {
	rows, err := db.conn.Query("SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cats []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// GetCategoryByName returns the category with the given name, or ErrNotFound.
func (db *DB) GetCategoryByName(name string) (*model.Category, error) {
	var c model.Category
	err := db.conn.QueryRow("SELECT id, name FROM categories WHERE name = ?", name).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCategory adds a category. Names are unique; a case-sensitive
// collision returns ErrDuplicate.
func (db *DB) CreateCategory(name string) (int64, error) {
	if _, err := db.GetCategoryByName(name); err == nil {
		return 0, ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return 0, err
	}
	res, err := db.conn.Exec("INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RenameCategory renames a category in place with a single update.
func (db *DB) RenameCategory(oldName, newName string) error {
	res, err := db.conn.Exec("UPDATE categories SET name = ? WHERE name = ?", newName, oldName)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// DeleteCategory removes a category by name unconditionally. Whether the
// category is still referenced is the caller's concern.
func (db *DB) DeleteCategory(name string) error {
	res, err := db.conn.Exec("DELETE FROM categories WHERE name = ?", name)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// --- Notice Methods ---

// GetNotices returns all notices, newest first.
func (db *DB) GetNotices() ([]model.NoticeItem, error) {
	rows, err := db.conn.Query(
		"SELECT id, title, content, author, date, views FROM notices ORDER BY date DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []model.NoticeItem
	for rows.Next() {
		var n model.NoticeItem
		var content, author sql.NullString
		if err := rows.Scan(&n.ID, &n.Title, &content, &author, &n.Date, &n.Views); err != nil {
			return nil, err
		}
		n.Content = content.String
		n.Author = author.String
		items = append(items, n)
	}
	return items, rows.Err()
}

// GetNotice returns one notice by id, or ErrNotFound.
func (db *DB) GetNotice(id int64) (*model.NoticeItem, error) {
	var n model.NoticeItem
	var content, author sql.NullString
	err := db.conn.QueryRow(
		"SELECT id, title, content, author, date, views FROM notices WHERE id = ?", id,
	).Scan(&n.ID, &n.Title, &content, &author, &n.Date, &n.Views)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	n.Content = content.String
	n.Author = author.String
	return &n, nil
}

// CreateNotice persists a new notice. Returns the assigned id.
func (db *DB) CreateNotice(n *model.NoticeItem) (int64, error) {
	date := n.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	res, err := db.conn.Exec(
		"INSERT INTO notices (title, content, author, date, views) VALUES (?, ?, ?, ?, 0)",
		n.Title, n.Content, n.Author, date)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateNotice replaces title, content and author of the notice with n.ID.
func (db *DB) UpdateNotice(n *model.NoticeItem) error {
	res, err := db.conn.Exec(
		"UPDATE notices SET title=?, content=?, author=? WHERE id=?",
		n.Title, n.Content, n.Author, n.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// DeleteNotice removes the notice with the given id.
func (db *DB) DeleteNotice(id int64) error {
	res, err := db.conn.Exec("DELETE FROM notices WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// IncrementNoticeViews bumps the view counter of a notice by one.
func (db *DB) IncrementNoticeViews(id int64) error {
	res, err := db.conn.Exec("UPDATE notices SET views = views + 1 WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// --- Main Card Methods ---

// GetMainCards returns the landing page cards ordered by id.
func (db *DB) GetMainCards() ([]model.MainCard, error) {
	rows, err := db.conn.Query("SELECT id, title, description, link, icon FROM main_cards ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cards []model.MainCard
	for rows.Next() {
		var c model.MainCard
		var desc, link, icon sql.NullString
		if err := rows.Scan(&c.ID, &c.Title, &desc, &link, &icon); err != nil {
			return nil, err
		}
		c.Desc = desc.String
		c.Link = link.String
		c.Icon = icon.String
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// ReplaceMainCards swaps the whole card set in one transaction.
func (db *DB) ReplaceMainCards(cards []model.MainCard) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM main_cards"); err != nil {
		tx.Rollback()
		return err
	}
	for _, c := range cards {
		if c.ID > 0 {
			_, err = tx.Exec(
				"INSERT INTO main_cards (id, title, description, link, icon) VALUES (?, ?, ?, ?, ?)",
				c.ID, c.Title, c.Desc, c.Link, c.Icon)
		} else {
			_, err = tx.Exec(
				"INSERT INTO main_cards (title, description, link, icon) VALUES (?, ?, ?, ?)",
				c.Title, c.Desc, c.Link, c.Icon)
		}
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// --- Settings Methods ---

// GetSetting retrieves a setting value, or ErrNotFound.
func (db *DB) GetSetting(key string) (string, error) {
	var val string
	err := db.conn.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return val, err
}

// SetSetting saves a setting.
func (db *DB) SetSetting(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = ?",
		key, value, value)
	return err
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
