package calendar

import (
	"context"
	"fmt"

	"github.com/username/bank-holidays/internal/holiday"
	"go.uber.org/zap"
)

// CompositeSource implements Source with fallback strategy
// Primary: GouvSource (API)
// Fallback: FileSource (local file)
type CompositeSource struct {
	primary  Source
	fallback Source
	logger   *zap.Logger
}

// NewCompositeSource creates a new CompositeSource
func NewCompositeSource(primary, fallback Source, logger *zap.Logger) *CompositeSource {
	return &CompositeSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Name combines the names of both sources
func (cs *CompositeSource) Name() string {
	return cs.primary.Name() + "+" + cs.fallback.Name()
}

// Holidays tries the primary source first, then the fallback
func (cs *CompositeSource) Holidays(ctx context.Context, year int) ([]holiday.Holiday, error) {
	holidays, err := cs.primary.Holidays(ctx, year)
	if err == nil {
		return holidays, nil
	}

	cs.logger.Warn("Primary source failed, falling back",
		zap.String("primary", cs.primary.Name()),
		zap.String("fallback", cs.fallback.Name()),
		zap.Int("year", year),
		zap.Error(err))

	holidays, fallbackErr := cs.fallback.Holidays(ctx, year)
	if fallbackErr != nil {
		return nil, fmt.Errorf("primary and fallback both failed: primary=%w, fallback=%v", err, fallbackErr)
	}

	return holidays, nil
}

// LoadFallback loads the fallback source (if FileSource)
func (cs *CompositeSource) LoadFallback() error {
	if fs, ok := cs.fallback.(*FileSource); ok {
		if err := fs.Load(); err != nil {
			return fmt.Errorf("failed to load fallback holidays: %w", err)
		}
		cs.logger.Info("Fallback holidays loaded successfully")
	}
	return nil
}
