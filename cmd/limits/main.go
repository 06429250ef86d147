package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"max.ks1230/daily-limits/internal/config"
	"max.ks1230/daily-limits/internal/logger"
	"max.ks1230/daily-limits/internal/model/journal"
	"max.ks1230/daily-limits/internal/model/status"
	"max.ks1230/daily-limits/internal/tracing"
)

func main() {
	logger.Info("Limits init - start")
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close tracer", zap.Error(err))
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	svc := status.NewService(conf.App(), nil)

	entries, err := journal.ReadFile(conf.App().Journal())
	if err != nil {
		logger.Fatal("failed to read journal:", zap.Error(err))
	}
	if _, err = journal.Load(ctx, entries, svc, svc.Location()); err != nil {
		logger.Fatal("failed to load journal:", zap.Error(err))
	}

	logger.Info("Limits init - end")

	report(ctx, svc, conf.App().Currencies())
}

func report(ctx context.Context, svc *status.Service, currencies []string) {
	caloriesStats := svc.CaloriesStats(ctx)
	fmt.Printf("calories: today %.2f, week %.2f\n", caloriesStats.Today, caloriesStats.Week)
	fmt.Println(svc.CaloriesRemained(ctx))

	cashStats := svc.CashStats(ctx)
	fmt.Printf("cash: today %.2f, week %.2f\n", cashStats.Today, cashStats.Week)
	for _, code := range currencies {
		msg, err := svc.CashRemained(ctx, code)
		if err != nil {
			logger.Error("skip currency", zap.String("currency", code), zap.Error(err))
			continue
		}
		fmt.Println(msg)
	}
}
