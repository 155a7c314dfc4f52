package pager

import (
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTransactions(n int) []model.Transaction {
	txns := make([]model.Transaction, n)
	for i := range txns {
		txns[i] = model.Transaction{ID: fmt.Sprintf("TXN-%03d", i+1)}
	}
	return txns
}

// load runs one full request/complete cycle.
func load(s State, filtered []model.Transaction) State {
	next, ticket, ok := s.Request()
	if !ok {
		return next
	}
	return next.Complete(ticket, filtered)
}

func TestNew(t *testing.T) {
	s := New(10)
	assert.Equal(t, 10, s.PageSize)
	assert.Equal(t, 0, s.Page)
	assert.True(t, s.HasMore)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Displayed)

	assert.Equal(t, DefaultPageSize, New(0).PageSize)
}

func TestLoadMore_PagesOfTwentyFive(t *testing.T) {
	filtered := makeTransactions(25)
	s := New(10)

	s = load(s, filtered)
	require.Len(t, s.Displayed, 10)
	assert.Equal(t, "TXN-001", s.Displayed[0].ID)
	assert.True(t, s.HasMore)

	s = load(s, filtered)
	require.Len(t, s.Displayed, 20)
	assert.Equal(t, "TXN-011", s.Displayed[10].ID)
	assert.True(t, s.HasMore)

	s = load(s, filtered)
	require.Len(t, s.Displayed, 25)
	assert.Equal(t, "TXN-025", s.Displayed[24].ID)
	assert.Equal(t, 3, s.Page)

	before := s.Displayed
	s = load(s, filtered)
	assert.False(t, s.HasMore)
	assert.Equal(t, before, s.Displayed)
	assert.False(t, s.Loading)
}

func TestLoadMore_ExactMultipleFindsEndOnLastPage(t *testing.T) {
	filtered := makeTransactions(20)
	s := New(10)

	s = load(s, filtered)
	assert.True(t, s.HasMore)
	s = load(s, filtered)
	assert.False(t, s.HasMore)
	assert.Len(t, s.Displayed, 20)
}

func TestLoadMore_EmptyList(t *testing.T) {
	s := load(New(10), nil)

	assert.False(t, s.HasMore)
	assert.Empty(t, s.Displayed)
	assert.Equal(t, 0, s.Page)
	assert.False(t, s.Loading)
}

func TestRequest_NoopWhileLoading(t *testing.T) {
	s, first, ok := New(10).Request()
	require.True(t, ok)
	assert.True(t, s.Loading)
	assert.True(t, first.Initial)

	again, _, ok := s.Request()
	assert.False(t, ok)
	assert.Equal(t, s, again)
}

func TestRequest_NoopWhenExhausted(t *testing.T) {
	s := New(10)
	s.HasMore = false

	next, _, ok := s.Request()
	assert.False(t, ok)
	assert.False(t, next.Loading)
}

func TestComplete_StaleTicketIgnoredAfterReset(t *testing.T) {
	filtered := makeTransactions(25)

	s, ticket, ok := New(10).Request()
	require.True(t, ok)

	s = s.Reset()
	assert.Equal(t, uint64(1), s.Generation)

	after := s.Complete(ticket, filtered)
	assert.Equal(t, s, after)
	assert.Empty(t, after.Displayed)

	// A fresh request in the new generation still works.
	after = load(after, filtered)
	assert.Len(t, after.Displayed, 10)
}

func TestComplete_ForeignTicketIgnored(t *testing.T) {
	s, _, ok := New(10).Request()
	require.True(t, ok)

	after := s.Complete(Ticket{Generation: s.Generation, Page: 3}, makeTransactions(50))
	assert.True(t, after.Loading)
	assert.Empty(t, after.Displayed)
}

func TestReset(t *testing.T) {
	filtered := makeTransactions(25)
	s := load(load(New(10), filtered), filtered)

	s = s.Reset()
	assert.Empty(t, s.Displayed)
	assert.Equal(t, 0, s.Page)
	assert.True(t, s.HasMore)
	assert.False(t, s.Loading)
	assert.Nil(t, s.InFlight)
	assert.Equal(t, 10, s.PageSize)
}

func TestNearBottom(t *testing.T) {
	assert.True(t, NearBottom(900, 100, 1000, 100))
	assert.True(t, NearBottom(800, 100, 1000, 100))
	assert.False(t, NearBottom(799, 100, 1000, 100))
	assert.True(t, NearBottom(0, 50, 30, 3))
}

func TestShouldLoad(t *testing.T) {
	s := New(10)
	assert.True(t, s.ShouldLoad(8, 1, 10, 3))
	assert.False(t, s.ShouldLoad(2, 1, 10, 3))

	s.Loading = true
	assert.False(t, s.ShouldLoad(8, 1, 10, 3))

	s.Loading = false
	s.HasMore = false
	assert.False(t, s.ShouldLoad(8, 1, 10, 3))
}

func TestDelay(t *testing.T) {
	assert.Equal(t, time.Second, Delay(Ticket{Initial: true}, time.Second, time.Millisecond))
	assert.Equal(t, time.Millisecond, Delay(Ticket{Page: 2}, time.Second, time.Millisecond))
}
