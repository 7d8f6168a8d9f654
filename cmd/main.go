package main

import (
	"os"

	"kcalplan/config"
	"kcalplan/routes"
)

func main() {
	config.InitDB()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
