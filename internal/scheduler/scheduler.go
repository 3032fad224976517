package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/devrajn/arinja/internal/news"
	"github.com/devrajn/arinja/internal/storage"
)

// Scheduler runs the full-category fetch+store batch on a cron spec.
type Scheduler struct {
	cron    *cron.Cron
	search  *news.SearchClient
	scraper news.Scraper
	store   *storage.Store
}

func New(spec string, search *news.SearchClient, scraper news.Scraper, store *storage.Store) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		search:  search,
		scraper: scraper,
		store:   store,
	}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// First batch runs shortly after startup instead of waiting a full
	// cron period.
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.runOnce()
	})
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce exposes a single batch run for manual triggering.
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	log.Println("start fetch job...")

	// Fresh fetcher each run so the trailing date window tracks the run time.
	f := news.NewFetcher(s.search, s.scraper, time.Time{}, time.Time{})

	var batch []news.Article
	for _, category := range news.Categories() {
		log.Printf("fetch %s headlines...", category)
		articles, err := f.FetchHeadlines(category)
		if err != nil {
			// One category failing must not abort the others.
			log.Printf("fetch %s error: %v", category, err)
			continue
		}
		if len(articles) == 0 {
			log.Printf("fetch %s got 0 articles", category)
			continue
		}
		batch = append(batch, articles...)
	}

	if len(batch) == 0 {
		log.Println("fetch job done, nothing to store")
		return
	}

	ids, created, err := s.store.StoreArticles(batch)
	if err != nil {
		log.Printf("store batch error: %v", err)
		return
	}
	log.Printf("fetch job done, fetched=%d stored=%d new=%d", len(batch), len(ids), created)
}
