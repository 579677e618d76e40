package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sothea-dev/rielsum/internal/core/domain"
	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/internal/dto"
)

// --- Mock ChannelRepository ---

type MockChannelRepository struct {
	mock.Mock
}

var _ portsrepo.ChannelRepositoryFacade = (*MockChannelRepository)(nil)

func (m *MockChannelRepository) SaveChannel(ctx context.Context, channel domain.Channel) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *MockChannelRepository) FindChannelByID(ctx context.Context, channelID int64) (*domain.Channel, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *MockChannelRepository) UpdateShiftTracking(ctx context.Context, channelID int64, enabled bool, updatedAt time.Time) error {
	args := m.Called(ctx, channelID, enabled, updatedAt)
	return args.Error(0)
}

func (m *MockChannelRepository) UpdateActive(ctx context.Context, channelID int64, active bool, updatedAt time.Time) error {
	args := m.Called(ctx, channelID, active, updatedAt)
	return args.Error(0)
}

func (m *MockChannelRepository) MigrateChannelID(ctx context.Context, fromChannelID, toChannelID int64) error {
	args := m.Called(ctx, fromChannelID, toChannelID)
	return args.Error(0)
}

func (m *MockChannelRepository) ListActiveChannelIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// --- Mock ShiftRepository ---

type MockShiftRepository struct {
	mock.Mock
}

var _ portsrepo.ShiftRepositoryFacade = (*MockShiftRepository)(nil)

func (m *MockShiftRepository) InsertShift(ctx context.Context, channelID int64, sequenceNumber int, openedAt time.Time) (*domain.Shift, error) {
	args := m.Called(ctx, channelID, sequenceNumber, openedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindOpenShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindLastShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) MaxSequenceNumber(ctx context.Context, channelID int64) (int, error) {
	args := m.Called(ctx, channelID)
	return args.Int(0), args.Error(1)
}

func (m *MockShiftRepository) CloseShift(ctx context.Context, shiftID int64, closedAt time.Time) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID, closedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) InsertLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) ExistsLedgerEntry(ctx context.Context, channelID int64, reference *string, messageID int64) (bool, error) {
	args := m.Called(ctx, channelID, reference, messageID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) FindEntriesByDateRange(ctx context.Context, channelID int64, from, to time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, channelID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntriesByShiftID(ctx context.Context, shiftID int64) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// --- Mock MessageArchive ---

type MockMessageArchive struct {
	mock.Mock
}

var _ portsrepo.MessageArchiveFacade = (*MockMessageArchive)(nil)

func (m *MockMessageArchive) SaveInboundMessage(ctx context.Context, event dto.InboundMessageEvent, receivedAt time.Time) error {
	args := m.Called(ctx, event, receivedAt)
	return args.Error(0)
}

func (m *MockMessageArchive) RecentMessages(ctx context.Context, channelID int64, since, until time.Time) ([]dto.InboundMessageEvent, error) {
	args := m.Called(ctx, channelID, since, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.InboundMessageEvent), args.Error(1)
}

// --- Mock ShiftService ---

type MockShiftService struct {
	mock.Mock
}

var _ portssvc.ShiftSvcFacade = (*MockShiftService)(nil)

func (m *MockShiftService) ResolveActiveShift(ctx context.Context, channelID int64) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShiftService) CurrentShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftService) LastShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftService) CloseShift(ctx context.Context, channelID int64) (*domain.Shift, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

// --- Mock ChannelService ---

type MockChannelService struct {
	mock.Mock
}

var _ portssvc.ChannelSvcFacade = (*MockChannelService)(nil)

func (m *MockChannelService) GetChannel(ctx context.Context, channelID int64) (*domain.Channel, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *MockChannelService) RegisterChannel(ctx context.Context, channelID int64, title string) (*domain.Channel, error) {
	args := m.Called(ctx, channelID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *MockChannelService) SetShiftTracking(ctx context.Context, channelID int64, enabled bool) error {
	args := m.Called(ctx, channelID, enabled)
	return args.Error(0)
}

func (m *MockChannelService) SetActive(ctx context.Context, channelID int64, active bool) error {
	args := m.Called(ctx, channelID, active)
	return args.Error(0)
}

func (m *MockChannelService) MigrateChannel(ctx context.Context, fromChannelID, toChannelID int64) error {
	args := m.Called(ctx, fromChannelID, toChannelID)
	return args.Error(0)
}

func (m *MockChannelService) ListActiveChannelIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// --- Mock DuplicateGuard ---

type MockDuplicateGuard struct {
	mock.Mock
}

var _ portssvc.DuplicateGuardSvc = (*MockDuplicateGuard)(nil)

func (m *MockDuplicateGuard) IsDuplicate(ctx context.Context, channelID int64, reference *string, messageID int64) (bool, error) {
	args := m.Called(ctx, channelID, reference, messageID)
	return args.Bool(0), args.Error(1)
}

// --- Mock RecorderService ---

type MockRecorderService struct {
	mock.Mock
}

var _ portssvc.RecorderSvcFacade = (*MockRecorderService)(nil)

func (m *MockRecorderService) Process(ctx context.Context, event dto.InboundMessageEvent) (domain.RecordResult, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(domain.RecordResult), args.Error(1)
}
