package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/joho/godotenv"
	"github.com/railpay/reconciliation-ingestion/consts"
	"github.com/railpay/reconciliation-ingestion/handler"
	"github.com/railpay/reconciliation-ingestion/infra/locker"
	ingestionUsecase "github.com/railpay/reconciliation-ingestion/usecase/ingestion"
)

type CronWorkerConfig struct {
	Interval time.Duration
	Workers  int
}

func (cfg CronWorkerConfig) startIngestionWorker(h *handler.IngestionHandler, workerID int) {
	for {
		ctx := context.Background()
		err := h.IngestionExecution(ctx)
		if err != nil {
			log.Printf("[Worker %d] error: %s", workerID, err.Error())
		} else {
			log.Printf("[Worker %d] success", workerID)
		}

		time.Sleep(cfg.Interval)
	}
}

type App struct {
	DB     *gorm.DB
	Locker *locker.Locker
}

func (a *App) startCronWorker(cfg CronWorkerConfig) {
	var wg sync.WaitGroup

	ingestionUc := ingestionUsecase.NewIngestionUsecase(a.DB, a.Locker)
	h := handler.NewIngestionHandler(ingestionUc)

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			log.Printf("spawn [Worker %d]", workerID)
			cfg.startIngestionWorker(h, workerID)
		}(i + 1)
	}
	wg.Wait()
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

	a.Locker = locker.New()
}

func (a *App) RunServer() {
	a.startCronWorker(CronWorkerConfig{
		Workers:  consts.DefaultWorkerNumber,
		Interval: consts.DefaultIntervalInSec * time.Second,
	})
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
