package queries_test

import (
	"context"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/quote"
	"booking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCartSession struct{ mock.Mock }

func (m *MockCartSession) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartSession) End(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockCartSession) CartStore() ports.CartStore {
	args := m.Called()
	return args.Get(0).(ports.CartStore)
}

func (m *MockCartSession) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

func (m *MockCartSession) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

type MockCartSessionFactory struct{ mock.Mock }

func (m *MockCartSessionFactory) Create(id kernel.SessionID) ports.CartSession {
	args := m.Called(id)
	return args.Get(0).(ports.CartSession)
}

// snapshotStore is a read-only ports.CartStore over a fixed state.
type snapshotStore struct {
	state cart.State
}

func (s snapshotStore) AddLine(context.Context, cart.Candidate)                 {}
func (s snapshotStore) RemoveLine(context.Context, string)                      {}
func (s snapshotStore) SetQuantity(context.Context, string, int)                {}
func (s snapshotStore) UpdateLineDetails(context.Context, string, cart.Details) {}
func (s snapshotStore) Clear(context.Context)                                   {}
func (s snapshotStore) Snapshot() cart.State                                    { return s.state }

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) SaveLast(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepository) GetLast(ctx context.Context) (*booking.Booking, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) SaveLatest(ctx context.Context, q *quote.Quote) error {
	return m.Called(ctx, q).Error(0)
}

func (m *MockQuoteRepository) GetLatest(ctx context.Context) (*quote.Quote, error) {
	args := m.Called(ctx)
	q, _ := args.Get(0).(*quote.Quote)
	return q, args.Error(1)
}
