package content

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsu-han/corpsite/internal/database"
	"github.com/minsu-han/corpsite/internal/model"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	store, err := database.New(filepath.Join(t.TempDir(), "corpsite.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewServices(store)
}

func TestPagesGetUnsetIsNotFound(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Pages.Get("customer")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPagesSetThenGet(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Pages.Set(&model.PageSection{Page: "about", Title: "T1", Subtitle: "S1", BackgroundImage: "/x.jpg"})
	require.NoError(t, err)

	got, err := svc.Pages.Get("about")
	require.NoError(t, err)
	assert.Equal(t, "T1", got.Title)
	assert.Equal(t, "S1", got.Subtitle)
	assert.Equal(t, "/x.jpg", got.BackgroundImage)
}

func TestPagesSetWithoutKeyRejected(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Pages.Set(&model.PageSection{Title: "no page key"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDownloadCreateRequiresKnownCategory(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Downloads.Create(&model.DownloadItem{Title: "d", Category: "ghost", FileURL: "/f.pdf"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Categories.Add("docs")
	require.NoError(t, err)
	id, err := svc.Downloads.Create(&model.DownloadItem{Title: "d", Category: "docs", FileURL: "/f.pdf"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestDownloadUpdateRequiresKnownCategory(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Categories.Add("docs")
	require.NoError(t, err)
	id, err := svc.Downloads.Create(&model.DownloadItem{Title: "d", Category: "docs", FileURL: "/f.pdf"})
	require.NoError(t, err)

	err = svc.Downloads.Update(id, &model.DownloadItem{Title: "d2", Category: "ghost", FileURL: "/f.pdf"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCategoryAddDuplicateIsConflict(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Categories.Add("docs")
	require.NoError(t, err)

	_, err = svc.Categories.Add("docs")
	assert.ErrorIs(t, err, ErrConflict)

	cats, err := svc.Categories.List()
	require.NoError(t, err)
	assert.Len(t, cats, 1, "failed add must leave the set unchanged")
}

func TestCategoryDeleteRefusedWhileReferenced(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Categories.Add("docs")
	require.NoError(t, err)
	_, err = svc.Downloads.Create(&model.DownloadItem{Title: "d", Category: "docs", FileURL: "/f.pdf"})
	require.NoError(t, err)

	err = svc.Categories.Delete("docs")
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "referenced")

	cats, err := svc.Categories.List()
	require.NoError(t, err)
	assert.Len(t, cats, 1, "refused delete must remove nothing")
}

func TestCategoryDeleteAfterDownloadsGone(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Categories.Add("docs")
	require.NoError(t, err)
	id, err := svc.Downloads.Create(&model.DownloadItem{Title: "d", Category: "docs", FileURL: "/f.pdf"})
	require.NoError(t, err)

	require.NoError(t, svc.Downloads.Delete(id))
	require.NoError(t, svc.Categories.Delete("docs"))
}

func TestCategoryRenameConflicts(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Categories.Add("a")
	require.NoError(t, err)
	_, err = svc.Categories.Add("b")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Categories.Rename("a", "b"), ErrConflict)
	assert.ErrorIs(t, svc.Categories.Rename("missing", "c"), ErrNotFound)
	require.NoError(t, svc.Categories.Rename("a", "c"))
}

func TestNoticeGetIncrementsViews(t *testing.T) {
	svc := newTestServices(t)
	id, err := svc.Notices.Create(&model.NoticeItem{Title: "n", Content: "<p>x</p>", Author: "admin"})
	require.NoError(t, err)

	got, err := svc.Notices.Get(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Views)

	got, err = svc.Notices.Get(id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Views)

	// Listing never counts as a view.
	items, err := svc.Notices.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Views)
}

func TestNoticeGetMissing(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Notices.Get(12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardsReplaceAndReset(t *testing.T) {
	svc := newTestServices(t)
	assert.ErrorIs(t, svc.Cards.Replace(nil), ErrInvalidInput)

	require.NoError(t, svc.Cards.Replace([]model.MainCard{{Title: "one"}}))
	cards, err := svc.Cards.List()
	require.NoError(t, err)
	assert.Len(t, cards, 1)

	require.NoError(t, svc.Cards.Reset())
	cards, err = svc.Cards.List()
	require.NoError(t, err)
	assert.Len(t, cards, len(defaultMainCards))
}

func TestEditorAPIKeyDefaultsEmpty(t *testing.T) {
	svc := newTestServices(t)
	key, err := svc.Settings.EditorAPIKey()
	require.NoError(t, err)
	assert.Empty(t, key)

	require.NoError(t, svc.Settings.SetEditorAPIKey("abc123"))
	key, err = svc.Settings.EditorAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "abc123", key)
}

func TestPortfolioUpdateMissing(t *testing.T) {
	svc := newTestServices(t)
	err := svc.Portfolio.Update("missing", &model.PortfolioItem{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
