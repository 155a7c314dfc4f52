// Package model holds the transaction record shown by every view.
package model

import (
	"strings"
	"time"
)

// Transaction represents a single P2P exchange between crypto and fiat.
type Transaction struct {
	Timestamp      time.Time
	Counterparty   Counterparty
	ID             string
	CryptoCurrency string
	FiatCurrency   string
	Status         Status
	Operation      Operation
	Reference      string
	CryptoAmount   float64
	FiatAmount     float64
	Fee            float64
	Net            float64
}

// Counterparty identifies the other side of a transaction.
type Counterparty struct {
	Wallet string
	Handle string // Telegram handle, including the leading @
}

// TelegramURL returns the messaging link for the counterparty handle.
func (c Counterparty) TelegramURL() string {
	return "https://t.me/" + strings.TrimPrefix(c.Handle, "@")
}

// ShortWallet abbreviates long wallet addresses for table cells.
func ShortWallet(wallet string) string {
	if len(wallet) <= 10 {
		return wallet
	}
	return wallet[:6] + "..." + wallet[len(wallet)-4:]
}

// Find returns the transaction with the given id.
func Find(transactions []Transaction, id string) (Transaction, bool) {
	for _, txn := range transactions {
		if txn.ID == id {
			return txn, true
		}
	}
	return Transaction{}, false
}
