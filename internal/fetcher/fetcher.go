package fetcher

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mmcdole/gofeed"
	"gorm.io/gorm"

	"care-companion/internal/models"
)

type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Article, error)
}

// RSSFetcher 通用 RSS/Atom 订阅源
type RSSFetcher struct {
	SourceName string
	FeedURL    string
}

func (f *RSSFetcher) Name() string { return f.SourceName }

func (f *RSSFetcher) Fetch(ctx context.Context) ([]models.Article, error) {
	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(f.FeedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", f.FeedURL, err)
	}

	articles := make([]models.Article, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry.Link == "" {
			continue
		}

		pubTime := time.Now()
		if entry.PublishedParsed != nil {
			pubTime = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			pubTime = *entry.UpdatedParsed
		}

		author := ""
		if len(entry.Authors) > 0 {
			author = entry.Authors[0].Name
		}

		articles = append(articles, models.Article{
			Source:      f.SourceName,
			Title:       entry.Title,
			URL:         entry.Link,
			Description: entry.Description,
			Author:      author,
			PublishedAt: pubTime,
		})
	}

	return articles, nil
}

// Job stores new articles from every fetcher.
type Job struct {
	db       *gorm.DB
	fetchers []Fetcher
}

func NewJob(db *gorm.DB, fetchers ...Fetcher) *Job {
	return &Job{db: db, fetchers: fetchers}
}

// Run fetches every source once and returns how many new articles were saved.
// A failing source is logged and skipped.
func (j *Job) Run(ctx context.Context) int {
	log.Println("Starting feed fetch job...")
	saved := 0

	for _, f := range j.fetchers {
		articles, err := f.Fetch(ctx)
		if err != nil {
			log.Printf("[ERROR] failed to fetch from %s: %v", f.Name(), err)
			continue
		}
		log.Printf("Got %d articles from %s", len(articles), f.Name())

		for _, a := range articles {
			var existing models.Article
			// 软删除的文章同样占用唯一索引，不再重新抓取
			if err := j.db.Unscoped().Where("url = ?", a.URL).First(&existing).Error; err == nil {
				continue // 已存在，跳过
			}
			if err := j.db.Create(&a).Error; err != nil {
				log.Printf("[ERROR] failed to save article %q: %v", a.Title, err)
				continue
			}
			saved++
		}
	}

	log.Printf("Feed fetch job completed, %d new articles", saved)
	return saved
}
