//go:build cli
// +build cli

package main

import (
	_ "cptui.GO/cron/jobs"
	_ "cptui.GO/custom"

	"cptui.GO/cmd"
	"cptui.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
