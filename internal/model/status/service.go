package status

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/daily-limits/internal/entity/record"
	"max.ks1230/daily-limits/internal/logger"
	"max.ks1230/daily-limits/internal/model/calculator"
	"max.ks1230/daily-limits/internal/model/calories"
	"max.ks1230/daily-limits/internal/model/cash"
)

const (
	KindCalories = "calories"
	KindCash     = "cash"
)

type config interface {
	CaloriesLimit() float64
	CashLimit() float64
	Location() *time.Location
}

type Clock func() time.Time

type Stats struct {
	Today   float64
	Week    float64
	Remains float64
}

// Service owns one calculator per kind and reads the clock once per call.
type Service struct {
	calories         *calculator.Calculator
	cash             *calculator.Calculator
	caloriesReporter *calories.Reporter
	cashReporter     *cash.Reporter
	clock            Clock
	loc              *time.Location
}

func NewService(cfg config, clock Clock) *Service {
	if clock == nil {
		clock = time.Now
	}
	caloriesCalc := calculator.New(cfg.CaloriesLimit())
	cashCalc := calculator.New(cfg.CashLimit())
	return &Service{
		calories:         caloriesCalc,
		cash:             cashCalc,
		caloriesReporter: calories.NewReporter(caloriesCalc),
		cashReporter:     cash.NewReporter(cashCalc),
		clock:            clock,
		loc:              cfg.Location(),
	}
}

func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) today() time.Time {
	return s.clock().In(s.loc)
}

func (s *Service) AddMeal(ctx context.Context, rec record.Record) {
	s.add(ctx, KindCalories, s.calories, rec)
}

func (s *Service) AddExpense(ctx context.Context, rec record.Record) {
	s.add(ctx, KindCash, s.cash, rec)
}

// Add routes the record by kind.
func (s *Service) Add(ctx context.Context, kind string, rec record.Record) error {
	calc, err := s.calculator(kind)
	if err != nil {
		return errors.Wrap(err, "add record")
	}
	s.add(ctx, kind, calc, rec)
	return nil
}

func (s *Service) add(ctx context.Context, kind string, calc *calculator.Calculator, rec record.Record) {
	span, _ := opentracing.StartSpanFromContext(ctx, "addRecord")
	defer span.Finish()
	span.SetTag("kind", kind)

	start := time.Now()
	calc.AddRecord(rec)
	observeResponse("add_"+kind, time.Since(start), false)
	recordsAdded.WithLabelValues(kind).Inc()

	logger.Debug("record added",
		zap.String("kind", kind),
		zap.Float64("amount", rec.Amount()),
		zap.String("comment", rec.Comment()),
		zap.Time("date", rec.Date()),
	)
}

func (s *Service) CaloriesStats(ctx context.Context) Stats {
	return s.stats(ctx, KindCalories, s.calories)
}

func (s *Service) CashStats(ctx context.Context) Stats {
	return s.stats(ctx, KindCash, s.cash)
}

func (s *Service) stats(ctx context.Context, kind string, calc *calculator.Calculator) Stats {
	span, _ := opentracing.StartSpanFromContext(ctx, "stats")
	defer span.Finish()
	span.SetTag("kind", kind)

	start := time.Now()
	asOf := s.today()
	res := Stats{
		Today:   calc.TodayStats(asOf),
		Week:    calc.WeekStats(asOf),
		Remains: calc.Remains(asOf),
	}
	observeResponse("stats_"+kind, time.Since(start), false)
	return res
}

func (s *Service) CaloriesRemained(ctx context.Context) string {
	span, _ := opentracing.StartSpanFromContext(ctx, "caloriesRemained")
	defer span.Finish()

	start := time.Now()
	res := s.caloriesReporter.Remained(s.today())
	observeResponse("calories_remained", time.Since(start), false)
	return res
}

func (s *Service) CashRemained(ctx context.Context, code string) (string, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "cashRemained")
	defer span.Finish()
	span.SetTag("currency", code)

	start := time.Now()
	res, err := s.cashReporter.Remained(s.today(), code)
	observeResponse("cash_remained", time.Since(start), err != nil)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cash remained", zap.String("currency", code), zap.Error(err))
		return "", err
	}
	return res, nil
}

func (s *Service) calculator(kind string) (*calculator.Calculator, error) {
	switch kind {
	case KindCalories:
		return s.calories, nil
	case KindCash:
		return s.cash, nil
	}
	return nil, errors.Errorf("unknown record kind %q", kind)
}
