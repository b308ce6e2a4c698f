package config

// Schedules for built-in cron jobs. Override with CRON_<JOB> env vars.
const (
	JobRegistrationsWarm = "registrationswarm"
)

// CronSchedule returns the schedule for a built-in job.
func CronSchedule(job string) string {
	switch job {
	case JobRegistrationsWarm:
		return envOr("CRON_REGISTRATIONS_WARM", "@every 5m")
	}
	return ""
}
