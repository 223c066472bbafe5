package commands_test

import (
	"context"
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/quote"
	"booking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) AddLine(ctx context.Context, c cart.Candidate) {
	m.Called(ctx, c)
}

func (m *MockCartStore) RemoveLine(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *MockCartStore) SetQuantity(ctx context.Context, id string, quantity int) {
	m.Called(ctx, id, quantity)
}

func (m *MockCartStore) UpdateLineDetails(ctx context.Context, id string, d cart.Details) {
	m.Called(ctx, id, d)
}

func (m *MockCartStore) Clear(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockCartStore) Snapshot() cart.State {
	args := m.Called()
	return args.Get(0).(cart.State)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) SaveLast(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetLast(ctx context.Context) (*booking.Booking, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) SaveLatest(ctx context.Context, q *quote.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuoteRepository) GetLatest(ctx context.Context) (*quote.Quote, error) {
	args := m.Called(ctx)
	q, _ := args.Get(0).(*quote.Quote)
	return q, args.Error(1)
}

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

type MockSweeper struct{ mock.Mock }

func (m *MockSweeper) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// sessionWithStore wires a factory returning a session over store.
func sessionWithStore(id kernel.SessionID, store *MockCartStore) (*MockCartSessionFactory, *MockCartSession) {
	session := new(MockCartSession)
	factory := new(MockCartSessionFactory)
	factory.On("Create", id).Return(session).Once()
	session.On("CartStore").Return(store)
	return factory, session
}

func validAddress() booking.Address {
	return booking.Address{
		FullName: "Priya",
		Phone:    "9876543210",
		Email:    "priya@example.com",
		Address:  "4 Anna Salai",
		City:     "Chennai",
		Pincode:  "600002",
	}
}

func validQuoteRequest() quote.Request {
	return quote.Request{
		Name:             "Karthik",
		Email:            "karthik@example.com",
		Phone:            "9123456780",
		ServiceType:      "cargo-transport",
		VehicleType:      "medium-truck",
		PickupLocation:   "Chennai",
		DeliveryLocation: "Trichy",
		PickupDate:       "2025-07-01",
		CargoType:        "Furniture",
		Weight:           "800 kg",
	}
}
