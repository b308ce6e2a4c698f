package cron

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"cptui.GO/app"
)

// StartCron schedules every registered job against a and starts the scheduler.
func StartCron(a *app.App) (*cron.Cron, error) {
	c := cron.New()
	for name, j := range Jobs() {
		name, run := name, j.Run
		_, err := c.AddFunc(j.Schedule, func() {
			log.Printf("cron: running %s", name)
			run(a)
		})
		if err != nil {
			return nil, fmt.Errorf("cron: register job %s: %w", name, err)
		}
	}
	c.Start()
	return c, nil
}
