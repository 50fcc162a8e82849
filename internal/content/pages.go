package content

import (
	"github.com/minsu-han/corpsite/internal/database"
	"github.com/minsu-han/corpsite/internal/model"
)

// Pages is the page-section registry: get/set of the editable header block
// for a named page. It fabricates no defaults; a page that was never written
// is ErrNotFound and the presentation layer supplies its own fallback.
type Pages struct {
	store database.Store
}

// Get returns the stored header for a page.
func (p *Pages) Get(page string) (*model.PageSection, error) {
	if page == "" {
		return nil, ErrInvalidInput
	}
	s, err := p.store.GetPageSetting(page)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// List returns every stored page header.
func (p *Pages) List() ([]model.PageSection, error) {
	return p.store.GetPageSettings()
}

// Set upserts the header for a page. All fields are replaced; there is no
// partial merge, so callers resend everything they want kept.
func (p *Pages) Set(s *model.PageSection) (*model.PageSection, error) {
	if s == nil || s.Page == "" {
		return nil, ErrInvalidInput
	}
	if err := p.store.UpsertPageSetting(s); err != nil {
		return nil, err
	}
	return s, nil
}
