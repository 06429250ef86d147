package journal

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"max.ks1230/daily-limits/internal/entity/record"
	"max.ks1230/daily-limits/internal/logger"
)

type Entry struct {
	Kind    string  `yaml:"kind"`
	Amount  float64 `yaml:"amount"`
	Comment string  `yaml:"comment"`
	// Date is dd.mm.yyyy; empty means the day of loading.
	Date string `yaml:"date"`
}

type document struct {
	Records []Entry `yaml:"records"`
}

type recorder interface {
	Add(ctx context.Context, kind string, rec record.Record) error
}

func Read(r io.Reader) ([]Entry, error) {
	var doc document
	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode journal")
	}
	return doc.Records, nil
}

func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open journal")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Error("error closing journal", zap.Error(closeErr))
		}
	}()
	return Read(f)
}

func (e Entry) Record(loc *time.Location) (record.Record, error) {
	if e.Date == "" {
		return record.Now(e.Amount, e.Comment, loc), nil
	}
	return record.Parse(e.Amount, e.Comment, e.Date, loc)
}

// Load feeds entries in order and stops at the first bad one. Entries before
// it stay loaded.
func Load(ctx context.Context, entries []Entry, rec recorder, loc *time.Location) (int, error) {
	logger.Info("Load journal - start", zap.Int("entries", len(entries)))

	for i, e := range entries {
		r, err := e.Record(loc)
		if err != nil {
			return i, errors.Wrapf(err, "journal entry %d", i)
		}
		if err = rec.Add(ctx, e.Kind, r); err != nil {
			return i, errors.Wrapf(err, "journal entry %d", i)
		}
	}

	logger.Info("Load journal - end", zap.Int("loaded", len(entries)))
	return len(entries), nil
}
