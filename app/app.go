// Package app wires the record store, hook registry, caches and search
// into the services the HTTP server, CLI and cron share.
package app

import (
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cptui.GO/config"
	"cptui.GO/editor"
	"cptui.GO/hooks"
	"cptui.GO/model/repository/contenttype"
	"cptui.GO/service/registration"
	"cptui.GO/service/search"
)

type App struct {
	DB      *gorm.DB
	Records *contenttype.ContentTypeRepository
	Hooks   *hooks.Registry
	Editor  *editor.Service
	Search  *search.SearchService
}

// New connects to the configured database, Redis and Elasticsearch and
// locks the default hook registry.
func New() (*App, error) {
	config.LoadAppConfig()

	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, using in-process registration cache."
	if config.RedisClient != nil {
		if err := config.RedisClient.Ping(config.RedisCtx()).Err(); err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil
			redisStatus = "Redis configured but not reachable, using in-process registration cache."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	sqldb, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB instance: %w", err)
	}
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	log.Println("Database connection successful.")

	srch := search.GetSearchService()
	if !srch.Enabled() {
		log.Println("Elasticsearch not configured, searchContentTypes scans registrations.")
	}

	reg := hooks.Default()
	reg.Lock()
	return Assemble(db, reg, config.RedisClient, srch), nil
}

// Assemble builds an App from already opened resources. client and srch may be nil.
func Assemble(db *gorm.DB, reg *hooks.Registry, client *redis.Client, srch *search.SearchService) *App {
	repo := contenttype.NewContentTypeRepository(db)
	opts := []editor.Option{
		editor.WithCache(registration.NewCache(client, config.App().RegistrationCacheTTL)),
	}
	if srch.Enabled() {
		opts = append(opts, editor.WithIndexer(srch))
	}
	return &App{
		DB:      db,
		Records: repo,
		Hooks:   reg,
		Editor:  editor.NewService(repo, reg, opts...),
		Search:  srch,
	}
}

// Migrate creates the records schema: golang-migrate for MySQL, gorm
// AutoMigrate for sqlite.
func (a *App) Migrate() error {
	if config.DBDriver() == "mysql" {
		return config.RunMigrations()
	}
	return a.Records.AutoMigrate()
}
