package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/devrajn/arinja/internal/config"
	"github.com/devrajn/arinja/internal/news"
)

// ErrNotFound is returned by id lookups for missing articles.
var ErrNotFound = errors.New("article not found")

// Article is the persisted form of a fetched headline. The composite unique
// index over (title, source, published_date) is the dedup key: the same
// headline from the same publisher on the same (IST) date is one row.
type Article struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:512;uniqueIndex:idx_articles_dedup" json:"title"`
	Source        string    `gorm:"size:128;uniqueIndex:idx_articles_dedup" json:"source"`
	PublishedAt   time.Time `gorm:"index" json:"publishedAt"`
	PublishedDate string    `gorm:"size:10;uniqueIndex:idx_articles_dedup" json:"publishedDate"`
	Content       string    `json:"content"`
	Category      string    `gorm:"size:32;index" json:"category"`
	URL           string    `gorm:"size:1024" json:"url"`
	// ExtraData keeps raw search-result metadata (publisher, raw link,
	// raw published string) for auditing date substitutions.
	ExtraData datatypes.JSONMap `gorm:"type:jsonb" json:"extraData"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Store struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewStore(dsn, redisAddr string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Article{}); err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}

	return &Store{DB: db, Redis: rdb}, nil
}

// publishedDate buckets a timestamp to its IST calendar date, the truncated
// half of the dedup key.
func publishedDate(t time.Time) string {
	return t.In(config.IST).Format("2006-01-02")
}

// toValidUTF8 normalizes a string to legal UTF-8; scraped pages occasionally
// carry broken encodings that postgres rejects.
func toValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// truncateRunesDB truncates by rune count so a value never exceeds its
// varchar column, regardless of what an upstream page returned.
func truncateRunesDB(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.TrimSpace(s)
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

// normalizeCategory guarantees the stored category is one of the known
// values; anything else collapses to "general".
func normalizeCategory(cat string) string {
	cat = strings.ToLower(strings.TrimSpace(cat))
	if !news.ValidCategory(cat) {
		return news.CategoryGeneral
	}
	return cat
}

// StoreArticles persists a batch inside one transaction. Existing rows
// (matched on the dedup key) keep their id and content untouched. Returned
// ids follow the input order; created counts the newly inserted rows.
func (s *Store) StoreArticles(items []news.Article) (ids []uint, created int, err error) {
	ids = make([]uint, 0, len(items))

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			title := truncateRunesDB(toValidUTF8(it.Title), 512)
			source := truncateRunesDB(toValidUTF8(it.Source), 128)
			content := toValidUTF8(it.Content)
			if strings.TrimSpace(content) == "" {
				content = "Content could not be retrieved for this article."
			}

			a := &Article{
				Title:         title,
				Source:        source,
				PublishedAt:   it.PublishedAt,
				PublishedDate: publishedDate(it.PublishedAt),
				Content:       content,
				Category:      normalizeCategory(it.Category),
				URL:           it.URL,
				ExtraData:     datatypes.JSONMap(it.RawData),
			}

			res := tx.Where("title = ? AND source = ? AND published_date = ?",
				a.Title, a.Source, a.PublishedDate).FirstOrCreate(a)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				created++
			}
			ids = append(ids, a.ID)
		}
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("store articles: %w", err)
	}

	// No cache invalidation here: list reads use a short TTL and expire on
	// their own, same trade-off as not scanning redis for matching keys.
	return ids, created, nil
}

// GetArticles returns stored articles, newest first, with optional category
// and inclusive published-at bounds. Results are cached in redis for a few
// minutes keyed by the full filter set.
func (s *Store) GetArticles(category string, from, to time.Time, limit int) ([]Article, error) {
	if limit <= 0 || limit > 1000 {
		limit = 20
	}

	ctx := context.Background()
	cacheKey := fmt.Sprintf("articles:list:%s:%d:%d:%d",
		category, from.Unix(), to.Unix(), limit)

	if s.Redis != nil {
		if bs, err := s.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached []Article
			if err := json.Unmarshal(bs, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var list []Article
	db := s.DB.Model(&Article{})
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if !from.IsZero() {
		db = db.Where("published_at >= ?", from)
	}
	if !to.IsZero() {
		db = db.Where("published_at <= ?", to)
	}
	if err := db.Order("published_at DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	const listCacheTTL = 5 * time.Minute
	if s.Redis != nil && len(list) > 0 {
		if bs, err := json.Marshal(list); err == nil {
			_ = s.Redis.Set(ctx, cacheKey, bs, listCacheTTL).Err()
		}
	}

	return list, nil
}

// GetArticleByID looks one article up by primary key.
func (s *Store) GetArticleByID(id uint) (*Article, error) {
	var a Article
	if err := s.DB.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return &a, nil
}
