// Package storage persists articles in Postgres with a Redis read-through
// cache in front of the list query.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"newsboard-api/models"
)

const articlesCacheKey = "articles"

type ArticleStorage struct {
	db       *sql.DB
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewArticleStorage(db *sql.DB, cache *redis.Client, cacheTTL time.Duration) *ArticleStorage {
	return &ArticleStorage{
		db:       db,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// ListArticles returns all articles ordered by date descending. The cached
// collection is served when present; a database read repopulates it.
func (s *ArticleStorage) ListArticles(ctx context.Context) ([]models.Article, error) {
	cachedData, err := s.cache.Get(ctx, articlesCacheKey).Result()
	if err == nil {
		var articles []models.Article
		if err := json.Unmarshal([]byte(cachedData), &articles); err != nil {
			return nil, fmt.Errorf("error unmarshalling cached articles data: %w", err)
		}
		return articles, nil
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("error fetching articles from Redis cache: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id, title, content, date FROM articles ORDER BY date DESC")
	if err != nil {
		return nil, fmt.Errorf("error querying database: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("error closing rows: %w", closeErr)
		}
	}()

	var articles []models.Article
	for rows.Next() {
		var article models.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.Content, &article.Date); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	jsonData, err := json.Marshal(articles)
	if err == nil {
		s.cache.Set(ctx, articlesCacheKey, jsonData, s.cacheTTL)
	}

	return articles, nil
}

// CreateArticle inserts the article and invalidates the cached collection.
func (s *ArticleStorage) CreateArticle(ctx context.Context, article models.Article) error {
	_, err := s.db.ExecContext(ctx, "INSERT INTO articles (id, title, content, date) VALUES ($1, $2, $3, $4)",
		article.ID, article.Title, article.Content, article.Date)
	if err != nil {
		return fmt.Errorf("error inserting article: %w", err)
	}

	s.cache.Del(ctx, articlesCacheKey)
	return nil
}
