package refresh_next_available

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	cleanerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/cleaner"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeCleaners struct {
	cleaner   *domain.Cleaner
	getErr    error
	updateErr error
	saved     map[int64]domain.NextAvailability
	updates   int
}

func (f *fakeCleaners) GetByID(_ context.Context, id int64) (*domain.Cleaner, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.cleaner == nil || f.cleaner.ID != id {
		return nil, cleanerRepo.ErrCleanerNotFound
	}
	return f.cleaner, nil
}

func (f *fakeCleaners) UpdateNextAvailable(_ context.Context, id int64, values domain.NextAvailability) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.saved == nil {
		f.saved = make(map[int64]domain.NextAvailability)
	}
	f.saved[id] = values
	f.updates++
	return nil
}

type fakeBookings struct {
	bookings []domain.Booking
	window   domain.BookingWindow
	calls    int
}

func (f *fakeBookings) GetActiveByCleaner(_ context.Context, _ int64, window domain.BookingWindow) ([]domain.Booking, error) {
	f.calls++
	f.window = window
	return f.bookings, nil
}

type fakeRanking struct {
	err     error
	updates []domain.NextAvailability
}

func (f *fakeRanking) Update(_ context.Context, _ int64, values domain.NextAvailability) error {
	f.updates = append(f.updates, values)
	return f.err
}

type fakeTx struct{ calls int }

func (f *fakeTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct{ refresh map[string]int }

func (f *fakeMetrics) IncRefresh(source, result string) {
	if f.refresh == nil {
		f.refresh = make(map[string]int)
	}
	f.refresh[source+"/"+result]++
}

func (f *fakeMetrics) ObserveComputation(string, string, time.Time) {}

// Понедельник 2025-03-10, 08:30
var monday0830 = time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

func weekdayCleaner() *domain.Cleaner {
	return &domain.Cleaner{
		ID:   7,
		Name: "Anna",
		Schedule: domain.WeeklySchedule{
			domain.Monday:  {{Start: "09:00", End: "13:00"}},
			domain.Tuesday: {{Start: "08:00", End: "16:00"}},
		},
	}
}

type fixture struct {
	cleaners *fakeCleaners
	bookings *fakeBookings
	ranking  *fakeRanking
	tx       *fakeTx
	metrics  *fakeMetrics
	uc       *UseCase
}

func newFixture(cleaner *domain.Cleaner, bookings ...domain.Booking) *fixture {
	f := &fixture{
		cleaners: &fakeCleaners{cleaner: cleaner},
		bookings: &fakeBookings{bookings: bookings},
		ranking:  &fakeRanking{},
		tx:       &fakeTx{},
		metrics:  &fakeMetrics{},
	}
	f.uc = NewUseCase(f.cleaners, f.bookings, f.ranking, f.tx,
		availability.New(), f.metrics, logger.NewNop()).
		WithTimeProvider(fixedTime{now: monday0830})
	return f
}

func TestExecute_ComputesBothTiers(t *testing.T) {
	f := newFixture(weekdayCleaner(), domain.Booking{
		ID: 1, CleanerID: 7, Date: "2025-03-10", Start: "09:00", End: "10:00", Status: domain.StatusConfirmed,
	})

	resp, err := f.uc.Execute(context.Background(), &Request{CleanerID: 7, Source: SourceEvent})

	require.NoError(t, err)
	require.NotNil(t, resp.NextAvailability.Standard)
	require.NotNil(t, resp.NextAvailability.Deep)
	// Стандарт: 09:00 занят, 10:00-12:00 свободен
	assert.Equal(t, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC), *resp.NextAvailability.Standard)
	// Генеральная (6 часов) в понедельник не помещается, вторник с 08:00
	assert.Equal(t, time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC), *resp.NextAvailability.Deep)
	assert.Equal(t, monday0830, *resp.NextAvailability.UpdatedAt)

	assert.Equal(t, resp.NextAvailability, f.cleaners.saved[7])
	assert.Len(t, f.ranking.updates, 1)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.bookings.calls)
	assert.Equal(t, "2025-03-10", domain.FormatDate(f.bookings.window.From))
	assert.Equal(t, 1, f.metrics.refresh["event/ok"])
}

func TestExecute_NoAvailabilityStoresNulls(t *testing.T) {
	f := newFixture(&domain.Cleaner{ID: 7, Schedule: domain.WeeklySchedule{}})

	resp, err := f.uc.Execute(context.Background(), &Request{CleanerID: 7, Source: SourceScheduler})

	require.NoError(t, err)
	assert.Nil(t, resp.NextAvailability.Standard)
	assert.Nil(t, resp.NextAvailability.Deep)
	assert.NotNil(t, resp.NextAvailability.UpdatedAt)
	assert.Equal(t, 1, f.cleaners.updates)
}

func TestExecute_Idempotent(t *testing.T) {
	f := newFixture(weekdayCleaner())

	first, err := f.uc.Execute(context.Background(), &Request{CleanerID: 7})
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), &Request{CleanerID: 7})
	require.NoError(t, err)

	assert.Equal(t, first.NextAvailability, second.NextAvailability)
	assert.Equal(t, first.NextAvailability, f.cleaners.saved[7])
}

func TestExecute_RankingFailureDoesNotFailRefresh(t *testing.T) {
	f := newFixture(weekdayCleaner())
	f.ranking.err = errors.New("redis down")

	_, err := f.uc.Execute(context.Background(), &Request{CleanerID: 7, Source: SourceHTTP})

	require.NoError(t, err)
	assert.Equal(t, 1, f.cleaners.updates)
	assert.Equal(t, 1, f.metrics.refresh["http/ok"])
}

func TestExecute_WithoutRankingIndex(t *testing.T) {
	f := newFixture(weekdayCleaner())
	uc := NewUseCase(f.cleaners, f.bookings, nil, f.tx, availability.New(), nil, logger.NewNop()).
		WithTimeProvider(fixedTime{now: monday0830})

	_, err := uc.Execute(context.Background(), &Request{CleanerID: 7})

	require.NoError(t, err)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(weekdayCleaner())
		_, err := f.uc.Execute(context.Background(), &Request{CleanerID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(weekdayCleaner())
		_, err := f.uc.Execute(context.Background(), &Request{CleanerID: 99, Source: SourceCLI})
		assert.ErrorIs(t, err, ErrCleanerNotFound)
		assert.Zero(t, f.cleaners.updates)
		assert.Equal(t, 1, f.metrics.refresh["cli/not_found"])
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(weekdayCleaner())
		f.cleaners.getErr = errors.New("connection refused")
		_, err := f.uc.Execute(context.Background(), &Request{CleanerID: 7})
		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, f.ranking.updates)
	})

	t.Run("save failure", func(t *testing.T) {
		f := newFixture(weekdayCleaner())
		f.cleaners.updateErr = errors.New("deadlock")
		_, err := f.uc.Execute(context.Background(), &Request{CleanerID: 7})
		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, f.ranking.updates)
	})
}
