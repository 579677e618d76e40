package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sothea-dev/rielsum/internal/apperrors"
	"github.com/sothea-dev/rielsum/internal/core/domain"
	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
	"github.com/sothea-dev/rielsum/internal/core/services"
)

func TestResolveActiveShiftReturnsOpenShift(t *testing.T) {
	mockRepo := new(MockShiftRepository)
	svc := services.NewShiftService(mockRepo)

	open := &domain.Shift{ShiftID: 42, ChannelID: 100, SequenceNumber: 3}
	mockRepo.On("FindOpenShift", mock.Anything, int64(100)).Return(open, nil).Once()

	shiftID, err := svc.ResolveActiveShift(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, int64(42), shiftID)
	mockRepo.AssertNotCalled(t, "InsertShift", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveActiveShiftOpensNextSequence(t *testing.T) {
	mockRepo := new(MockShiftRepository)
	svc := services.NewShiftService(mockRepo)

	created := &domain.Shift{ShiftID: 43, ChannelID: 100, SequenceNumber: 4}
	mockRepo.On("FindOpenShift", mock.Anything, int64(100)).Return(nil, apperrors.ErrNotFound).Once()
	mockRepo.On("MaxSequenceNumber", mock.Anything, int64(100)).Return(3, nil).Once()
	mockRepo.On("InsertShift", mock.Anything, int64(100), 4, mock.AnythingOfType("time.Time")).Return(created, nil).Once()

	shiftID, err := svc.ResolveActiveShift(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, int64(43), shiftID)
	mockRepo.AssertExpectations(t)
}

func TestResolveActiveShiftAdoptsRaceWinner(t *testing.T) {
	mockRepo := new(MockShiftRepository)
	svc := services.NewShiftService(mockRepo)

	winner := &domain.Shift{ShiftID: 44, ChannelID: 100, SequenceNumber: 1}
	mockRepo.On("FindOpenShift", mock.Anything, int64(100)).Return(nil, apperrors.ErrNotFound).Once()
	mockRepo.On("MaxSequenceNumber", mock.Anything, int64(100)).Return(0, nil).Once()
	mockRepo.On("InsertShift", mock.Anything, int64(100), 1, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.NewAppError(409, "open shift exists", apperrors.ErrConflict)).Once()
	// Second pass re-reads the winner's row.
	mockRepo.On("FindOpenShift", mock.Anything, int64(100)).Return(winner, nil).Once()

	shiftID, err := svc.ResolveActiveShift(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, int64(44), shiftID)
	mockRepo.AssertExpectations(t)
}

func TestCloseShiftWithoutOpenShift(t *testing.T) {
	mockRepo := new(MockShiftRepository)
	svc := services.NewShiftService(mockRepo)

	mockRepo.On("FindOpenShift", mock.Anything, int64(100)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.CloseShift(context.Background(), 100)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "CloseShift", mock.Anything, mock.Anything, mock.Anything)
}

// memShiftRepo mimics the store's partial unique index on open shifts so the
// resolve loop can be exercised under real goroutine interleaving.
type memShiftRepo struct {
	mu     sync.Mutex
	nextID int64
	shifts []domain.Shift
}

var _ portsrepo.ShiftRepositoryFacade = (*memShiftRepo)(nil)

func (r *memShiftRepo) InsertShift(ctx context.Context, channelID int64, sequenceNumber int, openedAt time.Time) (*domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shifts {
		if s.ChannelID == channelID && !s.Closed {
			return nil, apperrors.NewAppError(409, "open shift exists", apperrors.ErrConflict)
		}
		if s.ChannelID == channelID && s.SequenceNumber == sequenceNumber {
			return nil, apperrors.NewAppError(409, "sequence taken", apperrors.ErrConflict)
		}
	}
	r.nextID++
	shift := domain.Shift{ShiftID: r.nextID, ChannelID: channelID, SequenceNumber: sequenceNumber, OpenedAt: openedAt}
	r.shifts = append(r.shifts, shift)
	return &shift, nil
}

func (r *memShiftRepo) FindOpenShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shifts {
		if r.shifts[i].ChannelID == channelID && !r.shifts[i].Closed {
			shift := r.shifts[i]
			return &shift, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memShiftRepo) FindLastShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var last *domain.Shift
	for i := range r.shifts {
		if r.shifts[i].ChannelID == channelID {
			shift := r.shifts[i]
			if last == nil || shift.SequenceNumber > last.SequenceNumber {
				last = &shift
			}
		}
	}
	if last == nil {
		return nil, apperrors.ErrNotFound
	}
	return last, nil
}

func (r *memShiftRepo) MaxSequenceNumber(ctx context.Context, channelID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	maxSeq := 0
	for _, s := range r.shifts {
		if s.ChannelID == channelID && s.SequenceNumber > maxSeq {
			maxSeq = s.SequenceNumber
		}
	}
	return maxSeq, nil
}

func (r *memShiftRepo) CloseShift(ctx context.Context, shiftID int64, closedAt time.Time) (*domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shifts {
		if r.shifts[i].ShiftID == shiftID && !r.shifts[i].Closed {
			r.shifts[i].Closed = true
			r.shifts[i].ClosedAt = &closedAt
			shift := r.shifts[i]
			return &shift, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func TestResolveActiveShiftConcurrentCallersShareOneShift(t *testing.T) {
	repo := &memShiftRepo{}
	svc := services.NewShiftService(repo)

	const callers = 20
	ids := make([]int64, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = svc.ResolveActiveShift(context.Background(), 100)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i], "all callers must observe the same shift")
	}

	count := 0
	for _, s := range repo.shifts {
		if s.ChannelID == 100 {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one shift created")
}
