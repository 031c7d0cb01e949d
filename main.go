package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/railpay/reconciliation-ingestion/controllers"
)

func main() {
	godotenv.Load()

	app := controllers.App{}
	app.Initialize(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PASSWORD"))

	app.RunServer()
}
