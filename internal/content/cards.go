package content

import (
	"github.com/minsu-han/corpsite/internal/database"
	"github.com/minsu-han/corpsite/internal/model"
)

// Cards manages the landing page feature cards. The card set is always
// written as a whole: a bulk replace or a reset to the built-in defaults.
type Cards struct {
	store database.Store
}

// defaultMainCards is the shipped card set restored by Reset.
var defaultMainCards = []model.MainCard{
	{Title: "제품안내", Desc: "최신 제품을 소개합니다.", Link: "/products", Icon: "🛒"},
	{Title: "FAQ", Desc: "고객님들이 가장 궁금해 하시는 질문들이 여기에 있습니다.", Link: "/faq", Icon: "❓"},
	{Title: "갤러리", Desc: "다양한 소식을 이미지로 만나보세요.", Link: "/gallery", Icon: "📷"},
	{Title: "채용안내", Desc: "창의적이고 도전적인 인재를 기다리고 있습니다.", Link: "/recruit", Icon: "💙"},
}

// List returns all cards ordered by id.
func (c *Cards) List() ([]model.MainCard, error) {
	return c.store.GetMainCards()
}

// Replace swaps the full card set for the given one.
func (c *Cards) Replace(cards []model.MainCard) error {
	if cards == nil {
		return ErrInvalidInput
	}
	return c.store.ReplaceMainCards(cards)
}

// Reset restores the default card set.
func (c *Cards) Reset() error {
	return c.store.ReplaceMainCards(defaultMainCards)
}
