package jobs

import (
	"context"
	"log"
	"time"

	"cptui.GO/app"
	"cptui.GO/config"
	"cptui.GO/cron"
	"cptui.GO/hooks"
)

func init() {
	cron.Register(config.JobRegistrationsWarm, config.CronSchedule(config.JobRegistrationsWarm), RegistrationsWarm)
}

// RegistrationsWarm rebuilds the registration cache and, when Elasticsearch
// is configured, reindexes every kind.
func RegistrationsWarm(a *app.App, args ...string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	start := time.Now()
	if err := a.Editor.Warm(ctx); err != nil {
		log.Printf("cron: registrations warm: %v", err)
		return
	}
	if !a.Search.Enabled() {
		log.Printf("cron: registrations warmed in %s", time.Since(start))
		return
	}
	for _, kind := range hooks.Kinds() {
		regs, err := a.Editor.Registrations(ctx, kind)
		if err != nil {
			log.Printf("cron: registrations %s: %v", kind, err)
			continue
		}
		if err := a.Search.Index(ctx, regs); err != nil {
			log.Printf("cron: index %s: %v", kind, err)
		}
	}
	log.Printf("cron: registrations warmed and indexed in %s", time.Since(start))
}
