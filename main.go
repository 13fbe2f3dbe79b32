package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/RicTBest/paydaysite-sub000/config"
	"github.com/RicTBest/paydaysite-sub000/controller"
	"github.com/RicTBest/paydaysite-sub000/db"
	"github.com/RicTBest/paydaysite-sub000/platforms/espn"
	"github.com/RicTBest/paydaysite-sub000/platforms/kalshi"
	"github.com/RicTBest/paydaysite-sub000/web"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	cfg := config.Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			log.Fatalf("error loading config from %s: %v", path, err)
		}
	}

	creds := web.AdminCreds{
		User:     os.Getenv("ADMIN_USER"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	}
	if creds.User == "" || creds.Password == "" {
		log.Fatal("ADMIN_USER and ADMIN_PASSWORD must be set")
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	oddsClient, err := kalshi.NewWithURL(cfg.Odds.BaseURL)
	if err != nil {
		log.Fatalf("error creating odds client: %v", err)
	}

	scoresClient, err := espn.NewWithURL(cfg.Scores.BaseURL)
	if err != nil {
		log.Fatalf("error creating scores client: %v", err)
	}

	ctrl, err := controller.New(clock, db, oddsClient, scoresClient, cfg, log)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl, creds, log)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Error("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Keep the current week's scores fresh during game windows.
	wg.Add(1)
	go ctrl.RunPeriodicScoreUpdates(10*time.Minute, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Info("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
