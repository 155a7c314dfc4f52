// Package stats computes the summary cards shown above the history table.
package stats

import (
	"time"

	"github.com/Veraticus/paydece-ledger/internal/model"
)

// Window is how far back the volume and completed cards look.
const Window = 30 * 24 * time.Hour

// VolumeCurrency is the only crypto currency counted towards volume.
const VolumeCurrency = "USDC"

// Summary holds the three card values.
type Summary struct {
	MonthlyVolume float64
	Completed     int
	InProcess     int
}

// Summarize computes the cards over the full, unfiltered collection.
func Summarize(all []model.Transaction, now time.Time) Summary {
	since := now.Add(-Window)

	var s Summary
	for _, txn := range all {
		if txn.Status.InProcess() {
			s.InProcess++
		}
		if txn.Status != model.StatusCompleted || txn.Timestamp.Before(since) {
			continue
		}
		s.Completed++
		if txn.CryptoCurrency == VolumeCurrency {
			s.MonthlyVolume += txn.CryptoAmount
		}
	}
	return s
}
