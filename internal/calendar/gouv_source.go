package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/username/bank-holidays/internal/holiday"
	"github.com/username/bank-holidays/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	DefaultGouvAPIURL  = "https://calendrier.api.gouv.fr/jours-feries"
	DefaultZone        = "metropole"
	defaultHTTPTimeout = 10 * time.Second
)

// Zones published by calendrier.api.gouv.fr
var Zones = []string{
	"alsace-moselle",
	"guadeloupe",
	"guyane",
	"la-reunion",
	"martinique",
	"mayotte",
	"metropole",
	"nouvelle-caledonie",
	"polynesie-francaise",
	"saint-barthelemy",
	"saint-martin",
	"saint-pierre-et-miquelon",
	"wallis-et-futuna",
}

// GouvSource implements Source using the official calendrier.api.gouv.fr API
type GouvSource struct {
	apiURL     string
	zone       string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGouvSource creates a new GouvSource instance
func NewGouvSource(apiURL, zone string, timeout time.Duration, logger *zap.Logger) *GouvSource {
	if apiURL == "" {
		apiURL = DefaultGouvAPIURL
	}
	if zone == "" {
		zone = DefaultZone
	}
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}

	return &GouvSource{
		apiURL: strings.TrimRight(apiURL, "/"),
		zone:   zone,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Name returns "gouv"
func (s *GouvSource) Name() string {
	return "gouv"
}

// Holidays fetches the official holidays of the year for the configured zone
func (s *GouvSource) Holidays(ctx context.Context, year int) ([]holiday.Holiday, error) {
	// Build URL: https://calendrier.api.gouv.fr/jours-feries/{zone}/{year}.json
	url := fmt.Sprintf("%s/%s/%d.json", s.apiURL, s.zone, year)

	s.logger.Debug("Fetching official holidays",
		zap.String("url", url),
		zap.Int("year", year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch holidays: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API returned status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	// Format: {"2017-01-01": "1er janvier", "2017-04-17": "Lundi de Pâques", ...}
	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse API response: %v", ErrSourceUnavailable, err)
	}

	holidays, err := holidaysFromMap(year, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	s.logger.Info("Official holidays fetched",
		zap.Int("year", year),
		zap.String("zone", s.zone),
		zap.Int("holidays", len(holidays)))

	return holidays, nil
}

// holidaysFromMap converts a "YYYY-MM-DD" → name mapping into the sorted
// holidays of one year. Entries of other years are ignored.
func holidaysFromMap(year int, entries map[string]string) ([]holiday.Holiday, error) {
	holidays := make([]holiday.Holiday, 0, len(entries))
	for key, name := range entries {
		date, err := time.Parse(dateutil.DateLayout, strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", key, err)
		}
		if date.Year() != year {
			continue
		}
		holidays = append(holidays, holiday.Holiday{Date: date, Name: name})
	}

	if len(holidays) == 0 {
		return nil, fmt.Errorf("no holidays for year %d", year)
	}

	sortByDate(holidays)
	return holidays, nil
}
