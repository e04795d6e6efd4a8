package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"care-companion/internal/api"
	"care-companion/internal/assessment"
	"care-companion/internal/assistant"
	"care-companion/internal/config"
	"care-companion/internal/fetcher"
	"care-companion/internal/middleware"
	"care-companion/internal/sessions"
	"care-companion/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	configPath := os.Getenv("CARE_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// 初始化数据库
	db, err := store.Open(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	// 评估引擎与会话
	engine := assessment.DefaultEngine()
	if err := engine.Bank().Validate(); err != nil {
		log.Fatal("Invalid question bank:", err)
	}
	if err := engine.Catalog().Validate(); err != nil {
		log.Fatal("Invalid resource catalog:", err)
	}
	sessionStore := sessions.NewStore(engine, cfg.Sessions.TTL)

	provider := assistant.NewGeminiProvider(cfg.Assistant.APIKey, cfg.Assistant.Model, cfg.Assistant.Endpoint, cfg.Assistant.Timeout)
	if cfg.Assistant.APIKey == "" {
		log.Println("[WARN] GEMINI_API_KEY not set, chat will use offline replies")
	}
	as := assistant.New(provider)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// 定时任务
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Sessions.SweepSchedule, func() {
		if n := sessionStore.Sweep(); n > 0 {
			log.Printf("Expired %d assessment sessions", n)
		}
		limiter.Cleanup(2 * time.Hour)
	}); err != nil {
		log.Fatal("Invalid session sweep schedule:", err)
	}
	if cfg.Feeds.Enabled && len(cfg.Feeds.Sources) > 0 {
		fetchers := make([]fetcher.Fetcher, 0, len(cfg.Feeds.Sources))
		for _, src := range cfg.Feeds.Sources {
			fetchers = append(fetchers, &fetcher.RSSFetcher{SourceName: src.Name, FeedURL: src.URL})
		}
		job := fetcher.NewJob(db, fetchers...)
		if _, err := scheduler.AddFunc(cfg.Feeds.Schedule, func() { job.Run(context.Background()) }); err != nil {
			log.Fatal("Invalid feed schedule:", err)
		}
		// 启动时先执行一次
		go job.Run(context.Background())
	}
	scheduler.Start()
	defer scheduler.Stop()

	// 启动HTTP服务
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "care-companion"})
	})

	handler := api.NewHandler(db, engine, sessionStore, as)
	handler.RegisterRoutes(r, limiter.Middleware())

	log.Printf("Server starting on %s", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
