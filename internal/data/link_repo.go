package data

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"linkstats/internal/domain"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-kratos/kratos/v2/log"
)

// Compile-time interface check
var _ domain.LinkRepository = (*linkRepo)(nil)

const (
	linksTable      = "links"
	linkCachePrefix = "link:alias:"
	linkCacheTTL    = 10 * time.Minute
)

var linkColumns = []string{"id", "user_id", "alias", "original_url", "click_count", "created_at", "updated_at"}

// linkRepo reads links from the SQL store through a Redis read-through cache.
type linkRepo struct {
	data *Data
	log  *log.Helper
	now  func() time.Time
}

// NewLinkRepo creates a new link repository.
func NewLinkRepo(data *Data, logger log.Logger) domain.LinkRepository {
	return &linkRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/link")),
		now:  time.Now,
	}
}

// FindByAlias retrieves a link by its alias.
func (r *linkRepo) FindByAlias(ctx context.Context, alias string) (*domain.Link, error) {
	if cached := r.getCachedLink(ctx, alias); cached != nil {
		return cached, nil
	}

	link, err := r.findOne(ctx, entsql.EQ("alias", alias))
	if err != nil || link == nil {
		return nil, err
	}

	r.cacheLink(ctx, link)
	return link, nil
}

// FindByID retrieves a link by its id.
func (r *linkRepo) FindByID(ctx context.Context, id string) (*domain.Link, error) {
	return r.findOne(ctx, entsql.EQ("id", id))
}

// IncrementClickCount atomically increments the click count.
func (r *linkRepo) IncrementClickCount(ctx context.Context, id string) error {
	update := r.data.builder().Update(linksTable).
		Add("click_count", 1).
		Set("updated_at", r.now().UTC()).
		Where(entsql.EQ("id", id))
	if err := r.data.exec(ctx, update); err != nil {
		return fmt.Errorf("increment click count: %w", err)
	}
	return nil
}

func (r *linkRepo) findOne(ctx context.Context, p *entsql.Predicate) (*domain.Link, error) {
	selector := r.data.builder().Select(linkColumns...).
		From(entsql.Table(linksTable)).
		Where(p).
		Limit(1)

	rows, err := r.data.query(ctx, selector)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var l domain.Link
	if err := rows.Scan(&l.ID, &l.UserID, &l.Alias, &l.OriginalURL, &l.ClickCount, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.CreatedAt, l.UpdatedAt = l.CreatedAt.UTC(), l.UpdatedAt.UTC()
	return &l, nil
}

func (r *linkRepo) cacheKey(alias string) string {
	return fmt.Sprintf("%s%s", linkCachePrefix, alias)
}

// cachedLink holds the immutable part of a link. Counters are never cached
// so increments leave the entry valid.
type cachedLink struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Alias       string    `json:"alias"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *linkRepo) cacheLink(ctx context.Context, l *domain.Link) {
	if r.data.rdb == nil {
		return
	}

	data, err := json.Marshal(cachedLink{
		ID:          l.ID,
		UserID:      l.UserID,
		Alias:       l.Alias,
		OriginalURL: l.OriginalURL,
		CreatedAt:   l.CreatedAt,
	})
	if err != nil {
		r.log.WithContext(ctx).Warnf("Failed to marshal link for cache: %v", err)
		return
	}

	if err := r.data.rdb.Set(ctx, r.cacheKey(l.Alias), data, linkCacheTTL).Err(); err != nil {
		r.log.WithContext(ctx).Warnf("Failed to cache link: %v", err)
	}
}

func (r *linkRepo) getCachedLink(ctx context.Context, alias string) *domain.Link {
	if r.data.rdb == nil {
		return nil
	}

	data, err := r.data.rdb.Get(ctx, r.cacheKey(alias)).Bytes()
	if err != nil {
		return nil
	}

	var cached cachedLink
	if err := json.Unmarshal(data, &cached); err != nil {
		r.log.WithContext(ctx).Warnf("Failed to unmarshal cached link: %v", err)
		return nil
	}

	return &domain.Link{
		ID:          cached.ID,
		UserID:      cached.UserID,
		Alias:       cached.Alias,
		OriginalURL: cached.OriginalURL,
		CreatedAt:   cached.CreatedAt,
	}
}
