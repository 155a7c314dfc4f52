package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"s\n", true},
		{"Sí\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"s", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(context.Background(), strings.NewReader(tt.input), &out, "¿Sobrescribir?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "¿Sobrescribir?")
		})
	}
}

func TestConfirm_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Confirm(ctx, pr, io.Discard, "¿Sobrescribir?")
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestInterruptHandler(t *testing.T) {
	var out bytes.Buffer
	handler := NewInterruptHandler(&out)

	ctx, stop := handler.HandleInterrupts(context.Background(), "Exportación")
	defer stop()

	assert.False(t, handler.WasInterrupted())
	handler.interrupt()
	handler.interrupt()

	<-ctx.Done()
	assert.True(t, handler.WasInterrupted())
	assert.Equal(t, 1, strings.Count(out.String(), "Exportación interrumpida"))
}

func TestInterruptHandler_StopWithoutSignal(t *testing.T) {
	handler := NewInterruptHandler(nil)
	ctx, stop := handler.HandleInterrupts(context.Background(), "Exportación")
	stop()

	<-ctx.Done()
	assert.False(t, handler.WasInterrupted())
}

func TestRenderTransaction(t *testing.T) {
	txn := model.Transaction{
		ID:             "TXN-001",
		Timestamp:      time.Date(2024, 12, 15, 14, 30, 0, 0, time.UTC),
		CryptoAmount:   1250,
		CryptoCurrency: "USDC",
		FiatAmount:     1312500,
		FiatCurrency:   "ARS",
		Status:         model.StatusCompleted,
		Operation:      model.OperationPurchase,
		Counterparty:   model.Counterparty{Wallet: "0xabc", Handle: "@maria_crypto"},
		Reference:      "REF-2024-001",
		Fee:            37.5,
		Net:            1212.5,
	}

	out := RenderTransaction(txn, locale.NewFormatter(time.UTC, locale.DefaultLanguage))
	for _, want := range []string{
		"Transacción TXN-001",
		"15/12/2024 14:30 UTC +0",
		"Compra",
		"Finalizado",
		"1.312.500,00 ARS",
		"37,50 USDC",
		"REF-2024-001",
		"https://t.me/maria_crypto",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(stats.Summary{MonthlyVolume: 12345, Completed: 7, InProcess: 3},
		locale.NewFormatter(time.UTC, locale.DefaultLanguage))

	assert.Contains(t, out, "12.345 USDC")
	assert.Contains(t, out, "Completadas")
	assert.Contains(t, out, "En proceso")
}

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, SuccessStyle.GetForeground(), StatusStyle(model.StatusCompleted).GetForeground())
	assert.Equal(t, ErrorStyle.GetForeground(), StatusStyle(model.StatusCancelled).GetForeground())
	assert.Equal(t, WarningStyle.GetForeground(), StatusStyle(model.StatusDisputed).GetForeground())
	assert.Equal(t, InfoStyle.GetForeground(), StatusStyle(model.StatusPaid).GetForeground())
	assert.Equal(t, SubtleStyle.GetForeground(), StatusStyle("bloqueado").GetForeground())
}
