package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/joho/godotenv"
	"github.com/railpay/reconciliation-ingestion/handler"
	"github.com/railpay/reconciliation-ingestion/infra/db/model"
	"github.com/railpay/reconciliation-ingestion/infra/locker"
	"github.com/railpay/reconciliation-ingestion/middlewares"
	ingestionUsecase "github.com/railpay/reconciliation-ingestion/usecase/ingestion"
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		fmt.Printf("\n Cannot connect to database %s", DbName)
		log.Fatal("This is the error:", err)
	} else {
		fmt.Printf("We are connected to the database %s", DbName)
	}

	a.DB.Debug().AutoMigrate(
		&model.BookingRecord{},
		&model.RefundRecord{},
		&model.IngestionJob{},
	) //database migration

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func RegisterIngestionRoutes(router *mux.Router, h *handler.IngestionHandler) {
	router.HandleFunc("/submit_file", h.SubmitFile).Methods("POST")
	router.HandleFunc("/get_result", h.GetResult).Methods("GET")
	router.HandleFunc("/list_jobs", h.ListJobs).Methods("GET")
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)
	ingestionUc := ingestionUsecase.NewIngestionUsecase(a.DB, locker.New())
	handler := handler.NewIngestionHandler(ingestionUc)
	RegisterIngestionRoutes(a.Router, handler)
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	log.Printf("\nServer starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}

func main() {
	godotenv.Load()

	app := App{}
	app.Initialize(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PASSWORD"))

	app.RunServer()
}
