// Standalone GraphQL server. Run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	graphqlApi "cptui.GO/api/graphql"
	"cptui.GO/app"
	"cptui.GO/config"
	_ "cptui.GO/custom"
)

func main() {
	config.LoadEnv()

	a, err := app.New()
	if err != nil {
		log.Fatal("app:", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	graphqlApi.RegisterGraphQLRoutes(e, a)

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "univers", "doom", "larry3d", "puffy", "rectangles", "bigchief", "cosmic"}
	fig := figure.NewFigure("CPT UI GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := config.App().Port
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
