// README: Startup seed loader — populates the flights table from the scraped
// price dataset.
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rupeetravel/internal/types"
)

// seedRecord mirrors one entry of the camelCase price dataset on disk.
type seedRecord struct {
	UUID               string `json:"uuid"`
	Date               string `json:"date"`
	Origin             string `json:"origin"`
	Destination        string `json:"destination"`
	Airline            string `json:"airline"`
	Duration           string `json:"duration"`
	FlightType         string `json:"flightType"`
	PriceINR           int64  `json:"priceInr"`
	OriginCountry      string `json:"originCountry"`
	DestinationCountry string `json:"destinationCountry"`
	Link               string `json:"link"`
	RainProbability    int    `json:"rainProbability"`
	FreeMeal           bool   `json:"freeMeal"`
}

// Loader seeds the store once at process start. The store is read-only for
// the rest of the process lifetime.
type Loader struct {
	store  *Store
	logger *zap.Logger
}

func NewLoader(store *Store, logger *zap.Logger) *Loader {
	return &Loader{store: store, logger: logger}
}

// PopulateFromFile loads the JSON dataset at path into the store. Seeding is
// skipped when the table already holds rows, so restarts are cheap and
// idempotent.
func (l *Loader) PopulateFromFile(ctx context.Context, path string) error {
	count, err := l.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count flights: %w", err)
	}
	if count > 0 {
		l.logger.Info("flight table already populated, skipping seed",
			zap.Int64("rows", count))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	records, err := ParseSeed(data)
	if err != nil {
		return err
	}

	for i := range records {
		if err := l.store.Insert(ctx, &records[i]); err != nil {
			return fmt.Errorf("insert seed flight %d: %w", i, err)
		}
	}

	l.logger.Info("flight table seeded",
		zap.String("file", path), zap.Int("rows", len(records)))
	return nil
}

// ParseSeed decodes the dataset and normalizes it into Flight values.
// Records without a usable date or route are dropped with the rest of the
// file still loading; a UUID is minted when the scraper did not provide one.
func ParseSeed(data []byte) ([]Flight, error) {
	var raw []seedRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	out := make([]Flight, 0, len(raw))
	for _, r := range raw {
		if r.Origin == "" || r.Destination == "" {
			continue
		}
		date, err := types.ParseDate(r.Date)
		if err != nil {
			continue
		}
		id := r.UUID
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, Flight{
			UUID:               id,
			Date:               date,
			Origin:             r.Origin,
			Destination:        r.Destination,
			Airline:            r.Airline,
			Duration:           r.Duration,
			FlightType:         r.FlightType,
			PriceINR:           r.PriceINR,
			OriginCountry:      r.OriginCountry,
			DestinationCountry: r.DestinationCountry,
			Link:               r.Link,
			RainProbability:    r.RainProbability,
			FreeMeal:           r.FreeMeal,
		})
	}
	return out, nil
}
