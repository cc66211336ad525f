package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"time-tracker/internal/bot"
	"time-tracker/internal/config"
	"time-tracker/internal/repository"
	"time-tracker/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	bucketRepo := repository.NewBucketRepository(db)

	labelSvc := service.NewLabelService(labelRepo)
	eventSvc := service.NewEventService(db)
	statsSvc := service.NewStatsService(bucketRepo)
	reportSvc := service.NewReportService(labelRepo, statsSvc)

	trackerBot, err := bot.New(cfg.TelegramToken, userRepo, bucketRepo, labelSvc, eventSvc, statsSvc, reportSvc, &cfg)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	loc, err := time.LoadLocation(cfg.DefaultTimezone)
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}

	scheduler := service.NewSchedulerService(loc)
	reportJob := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := trackerBot.SendDailyReports(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("report: %v", err)
		}
	}
	if cfg.ReportInterval > 0 {
		_, err = scheduler.ScheduleInterval(cfg.ReportInterval, reportJob)
	} else {
		_, err = scheduler.ScheduleDaily(cfg.ReportTime, reportJob)
	}
	if err != nil {
		log.Fatalf("schedule reports: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Time tracker bot started.")
	if err := trackerBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
