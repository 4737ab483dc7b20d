package ingest

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Dataset is the raw tabular payload produced by a source: ordered ticket
// rows plus optional interaction rows, both column-name keyed.
type Dataset struct {
	Tickets      []RawRow
	Interactions []RawRow
}

// Source provides raw helpdesk data. Load is called once at startup and
// again only on explicit reload.
type Source interface {
	Name() string
	Load(ctx context.Context) (*Dataset, error)
}

// ErrNoSourceAvailable signals that every source in the chain failed.
var ErrNoSourceAvailable = errors.New("no data source available")

// Loader tries sources in priority order and reports which one served.
type Loader struct {
	sources []Source
	logger  *zap.Logger
}

// NewLoader builds a loader over the given ordered sources.
func NewLoader(logger *zap.Logger, sources ...Source) *Loader {
	return &Loader{sources: sources, logger: logger}
}

// Load evaluates the fallback chain once, returning the first dataset
// obtained and the name of the source that produced it.
func (l *Loader) Load(ctx context.Context) (*Dataset, string, error) {
	for _, source := range l.sources {
		dataset, err := source.Load(ctx)
		if err != nil {
			l.logger.Warn("data source unavailable",
				zap.String("source", source.Name()),
				zap.Error(err))
			continue
		}
		l.logger.Info("data source selected",
			zap.String("source", source.Name()),
			zap.Int("ticket_rows", len(dataset.Tickets)),
			zap.Int("interaction_rows", len(dataset.Interactions)))
		return dataset, source.Name(), nil
	}
	return nil, "", ErrNoSourceAvailable
}
