// Package warranty checks collected warranty records against an expiry
// window and raises log-only alerts for the ones closing soon.
package warranty

import (
	"log/slog"
	"time"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/entity"
)

// DefaultThresholdDays is the alert window applied when none is configured.
const DefaultThresholdDays = 7

// dateLayout matches the MM/DD/YYYY form the field extractor captures.
const dateLayout = "01/02/2006"

// Monitor evaluates warranty records against a day threshold.
type Monitor struct {
	logger        *slog.Logger
	thresholdDays int
}

// NewMonitor creates a Monitor. A non-positive threshold falls back to
// DefaultThresholdDays; a nil logger falls back to slog.Default().
func NewMonitor(thresholdDays int, logger *slog.Logger) *Monitor {
	if thresholdDays <= 0 {
		thresholdDays = DefaultThresholdDays
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		logger:        logger,
		thresholdDays: thresholdDays,
	}
}

// FindExpiringSoon returns, in input order, every record whose expiry date
// lies within the threshold of today, inclusive. Already-lapsed dates
// count too: the day delta just goes negative. Records whose date fails to
// parse are dropped with a warning and never fail the call. Only the date
// part of today matters; clock time is discarded.
func (m *Monitor) FindExpiringSoon(records []entity.WarrantyRecord, today time.Time) []entity.ExpiringWarranty {
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var expiring []entity.ExpiringWarranty
	for _, rec := range records {
		expiry, err := time.Parse(dateLayout, rec.ExpiryDate)
		if err != nil {
			m.logger.Warn("skipping warranty record with unparsable date",
				"identifier", rec.Identifier,
				"expiry_date", rec.ExpiryDate,
				"error", err)
			continue
		}

		daysLeft := int(expiry.Sub(ref).Hours() / 24)
		if daysLeft <= m.thresholdDays {
			expiring = append(expiring, entity.ExpiringWarranty{
				Record:    rec,
				ExpiresOn: expiry,
				DaysLeft:  daysLeft,
			})
		}
	}
	return expiring
}

// AlertExpiring runs FindExpiringSoon and emits one warning-level alert
// line per expiring record. Alerts are log-only; there is no external
// notification channel.
func (m *Monitor) AlertExpiring(records []entity.WarrantyRecord, today time.Time) []entity.ExpiringWarranty {
	expiring := m.FindExpiringSoon(records, today)
	for _, e := range expiring {
		m.logger.Warn("ALERT: warranty expiring soon",
			"identifier", e.Record.Identifier,
			"expiry_date", e.Record.ExpiryDate,
			"days_left", e.DaysLeft,
			"location", e.Record.Location)
	}
	return expiring
}
