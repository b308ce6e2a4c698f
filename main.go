//go:build !cli
// +build !cli

package main

import (
	"log"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cptui.GO/api"
	_ "cptui.GO/api/contenttype"
	graphqlApi "cptui.GO/api/graphql"
	"cptui.GO/app"
	"cptui.GO/config"
	"cptui.GO/core/auth"
	_ "cptui.GO/custom"
	"cptui.GO/html"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	a, err := app.New()
	if err != nil {
		log.Fatal(err)
	}
	if config.DBDriver() == "sqlite" {
		if err := a.Migrate(); err != nil {
			log.Fatalf("sqlite schema: %v", err)
		}
	}

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			if config.App().Debug {
				log.Printf("Request duration: %d ms", duration)
			}
			return err
		}
	})

	e.Renderer = html.NewTemplate()

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	api.ApplyModules(apiGroup, a)

	api.ApplyRoutes(e, a)
	graphqlApi.RegisterGraphQLRoutes(e, a)

	port := config.App().Port
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
