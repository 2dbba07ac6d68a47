package reviews

import (
	"go.uber.org/zap"

	"podarunok-backend/internal/models"
	"podarunok-backend/internal/store"
)

// maxReviews caps the testimonials section.
const maxReviews = 6

type Loader struct {
	store  store.Store
	logger *zap.Logger
}

func NewLoader(st store.Store, logger *zap.Logger) *Loader {
	return &Loader{store: st, logger: logger}
}

// Approved returns the newest approved reviews, at most six. A query error
// is logged and the section renders empty.
func (l *Loader) Approved() []models.Review {
	var reviews []models.Review
	err := l.store.Select("reviews", store.Query{
		Filters:    []store.Filter{{Column: "is_approved", Value: "true"}},
		OrderBy:    "created_at",
		Descending: true,
		Limit:      maxReviews,
	}, &reviews)
	if err != nil {
		l.logger.Error("fetching reviews", zap.Error(err))
		return []models.Review{}
	}
	return reviews
}
