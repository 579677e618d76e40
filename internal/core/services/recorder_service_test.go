package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sothea-dev/rielsum/internal/apperrors"
	"github.com/sothea-dev/rielsum/internal/core/domain"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/internal/core/services"
	"github.com/sothea-dev/rielsum/internal/dto"
)

type RecorderServiceTestSuite struct {
	suite.Suite
	mockChannelSvc *MockChannelService
	mockGuard      *MockDuplicateGuard
	mockShiftSvc   *MockShiftService
	mockLedgerRepo *MockLedgerRepository
	mockArchive    *MockMessageArchive
	service        portssvc.RecorderSvcFacade

	channel    *domain.Channel
	registered time.Time
}

func (s *RecorderServiceTestSuite) SetupTest() {
	s.mockChannelSvc = new(MockChannelService)
	s.mockGuard = new(MockDuplicateGuard)
	s.mockShiftSvc = new(MockShiftService)
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.mockArchive = new(MockMessageArchive)
	s.service = services.NewRecorderService(
		s.mockChannelSvc,
		s.mockGuard,
		s.mockShiftSvc,
		s.mockLedgerRepo,
		s.mockArchive,
		time.Minute,
	)

	s.registered = time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)
	s.channel = &domain.Channel{
		ChannelID: 100,
		Title:     "ABA payments",
		IsActive:  true,
		CreatedAt: s.registered,
		UpdatedAt: s.registered,
	}

	// Every Process call archives the raw event first.
	s.mockArchive.On("SaveInboundMessage", mock.Anything, mock.AnythingOfType("dto.InboundMessageEvent"), mock.AnythingOfType("time.Time")).Return(nil)
}

func (s *RecorderServiceTestSuite) event(text string, sentAt time.Time) dto.InboundMessageEvent {
	return dto.InboundMessageEvent{
		ChannelID:   100,
		MessageID:   555,
		Text:        text,
		SenderLabel: "ABA Bank",
		SentAt:      sentAt,
	}
}

func (s *RecorderServiceTestSuite) TestProcessNoAmountIsRejected() {
	result, err := s.service.Process(context.Background(), s.event("សួស្តី! ហាងបើកម៉ោង ៧ ព្រឹក", s.registered.Add(time.Hour)))

	s.Require().NoError(err)
	s.Equal(domain.StatusRejectedNoMatch, result.Status)
	s.mockChannelSvc.AssertNotCalled(s.T(), "GetChannel", mock.Anything, mock.Anything)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "InsertLedgerEntry", mock.Anything, mock.Anything)
}

func (s *RecorderServiceTestSuite) TestProcessUnknownChannelIsRejected() {
	s.mockChannelSvc.On("GetChannel", mock.Anything, int64(100)).Return(nil, apperrors.ErrNotFound).Once()

	result, err := s.service.Process(context.Background(), s.event("11,500 រៀល ពី SOKHA Trx. ID: 123456", s.registered.Add(time.Hour)))

	s.Require().NoError(err)
	s.Equal(domain.StatusRejectedNoMatch, result.Status)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "InsertLedgerEntry", mock.Anything, mock.Anything)
}

func (s *RecorderServiceTestSuite) TestProcessDeactivatedChannelIsIgnored() {
	deactivated := *s.channel
	deactivated.IsActive = false
	s.mockChannelSvc.On("GetChannel", mock.Anything, int64(100)).Return(&deactivated, nil).Once()

	result, err := s.service.Process(context.Background(), s.event("11,500 រៀល Trx. ID: 123456", s.registered.Add(time.Hour)))

	s.Require().NoError(err)
	s.Equal(domain.StatusRejectedNoMatch, result.Status)
	s.mockGuard.AssertNotCalled(s.T(), "IsDuplicate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "InsertLedgerEntry", mock.Anything, mock.Anything)
}

func (s *RecorderServiceTestSuite) TestProcessMessageBeforeRegistrationIsStale() {
	s.mockChannelSvc.On("GetChannel", mock.Anything, int64(100)).Return(s.channel, nil).Once()

	// One second beyond the one-minute grace window.
	sentAt := s.registered.Add(-time.Minute - time.Second)
	result, err := s.service.Process(context.Background(), s.event("11,500 រៀល Trx. ID: 123456", sentAt))

	s.Require().NoError(err)
	s.Equal(domain.StatusRejectedStale, result.Status)
	s.mockGuard.AssertNotCalled(s.T(), "IsDuplicate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *RecorderServiceTestSuite) TestProcessGraceBoundaryIsAccepted() {
	s.mockChannelSvc.On("GetChannel", mock.Anything, int64(100)).Return(s.channel, nil).Once()
	s.mockGuard.On("IsDuplicate", mock.Anything, int64(100), mock.Anything, int64(555)).Return(false, nil).Once()
	s.mockLedgerRepo.On("InsertLedgerEntry", mock.Anything, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	// Exactly registration minus grace is still eligible.
	sentAt := s.registered.Add(-time.Minute)
	result, err := s.service.Process(context.Background(), s.event("11,500 រៀល Trx. ID: 123456", sentAt))

	s.Require().NoError(err)
	s.Equal(domain.StatusCommitted, result.Status)
}

func (s *RecorderServiceTestSuite) TestProcessDuplicateIsRejected() {
	s.mockChannelSvc.On("GetChannel", mock.Anything, int64(100)).Return(s.channel, nil).Once()
	s.mockGuard.On("IsDuplicate", mock.Anything, int64(100), mock.MatchedBy(func(ref *string) bool {
		return ref != nil && *ref == "123456"
	}), int64(555)).Return(true, nil).Once()

	result, err := s.service.Process(context.Background(), s.event("11,500 រៀល Trx. ID: 123456", s.registered.Add(time.Hour)))

	s.Require().NoError(err)
	s.Equal(domain.StatusRejectedDuplicate, result.Status)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "InsertLedgerEntry", mock.Anything, mock.Anything)
}

func (s *RecorderServiceTestSuite) TestProcessCommitsEntryWithShift() {
	shiftTracked := *s.channel
	shiftTracked.ShiftTrackingEnabled = true
	sentAt := s.registered.Add(2 * time.Hour)

	s.mockChannelSvc.On("GetChannel", mock.Anything, int64(100)).Return(&shiftTracked, nil).Once()
	s.mockGuard.On("IsDuplicate", mock.Anything, int64(100), mock.Anything, int64(555)).Return(false, nil).Once()
	s.mockShiftSvc.On("ResolveActiveShift", mock.Anything, int64(100)).Return(int64(7), nil).Once()
	s.mockLedgerRepo.On("InsertLedgerEntry", mock.Anything, mock.MatchedBy(func(entry domain.LedgerEntry) bool {
		return entry.ChannelID == 100 &&
			entry.CurrencyCode == "KHR" &&
			entry.Amount.Equal(decimal.NewFromInt(11500)) &&
			entry.MessageID == 555 &&
			entry.Reference != nil && *entry.Reference == "123456" &&
			entry.ShiftID != nil && *entry.ShiftID == 7 &&
			entry.OccurredAt.Equal(sentAt)
	})).Return(nil).Once()

	result, err := s.service.Process(context.Background(), s.event("ទទួលបាន 11,500 រៀល ពី SOKHA Trx. ID: 123456", sentAt))

	s.Require().NoError(err)
	s.Equal(domain.StatusCommitted, result.Status)
	s.NotEmpty(result.EntryID)
	s.Require().NotNil(result.ShiftID)
	s.Equal(int64(7), *result.ShiftID)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *RecorderServiceTestSuite) TestProcessWithoutShiftTrackingLeavesShiftNil() {
	s.mockChannelSvc.On("GetChannel", mock.Anything, int64(100)).Return(s.channel, nil).Once()
	s.mockGuard.On("IsDuplicate", mock.Anything, int64(100), mock.Anything, int64(555)).Return(false, nil).Once()
	s.mockLedgerRepo.On("InsertLedgerEntry", mock.Anything, mock.MatchedBy(func(entry domain.LedgerEntry) bool {
		return entry.ShiftID == nil && entry.CurrencyCode == "USD" && entry.Amount.Equal(decimal.RequireFromString("23.25"))
	})).Return(nil).Once()

	result, err := s.service.Process(context.Background(), s.event("$23.25 paid by SOKHA Trx. ID: 999", s.registered.Add(time.Hour)))

	s.Require().NoError(err)
	s.Equal(domain.StatusCommitted, result.Status)
	s.Nil(result.ShiftID)
	s.mockShiftSvc.AssertNotCalled(s.T(), "ResolveActiveShift", mock.Anything, mock.Anything)
}

func (s *RecorderServiceTestSuite) TestProcessConcurrentCommitReportsDuplicate() {
	s.mockChannelSvc.On("GetChannel", mock.Anything, int64(100)).Return(s.channel, nil).Once()
	s.mockGuard.On("IsDuplicate", mock.Anything, int64(100), mock.Anything, int64(555)).Return(false, nil).Once()
	s.mockLedgerRepo.On("InsertLedgerEntry", mock.Anything, mock.AnythingOfType("domain.LedgerEntry")).
		Return(apperrors.NewConflictError("already recorded")).Once()

	result, err := s.service.Process(context.Background(), s.event("11,500 រៀល Trx. ID: 123456", s.registered.Add(time.Hour)))

	s.Require().NoError(err)
	s.Equal(domain.StatusRejectedDuplicate, result.Status)
}

func (s *RecorderServiceTestSuite) TestProcessStoreFailureIsError() {
	storeErr := errors.New("connection refused")
	s.mockChannelSvc.On("GetChannel", mock.Anything, int64(100)).Return(s.channel, nil).Once()
	s.mockGuard.On("IsDuplicate", mock.Anything, int64(100), mock.Anything, int64(555)).Return(false, nil).Once()
	s.mockLedgerRepo.On("InsertLedgerEntry", mock.Anything, mock.AnythingOfType("domain.LedgerEntry")).Return(storeErr).Once()

	result, err := s.service.Process(context.Background(), s.event("11,500 រៀល Trx. ID: 123456", s.registered.Add(time.Hour)))

	s.Require().Error(err)
	s.Equal(domain.StatusError, result.Status)
}

func (s *RecorderServiceTestSuite) TestProcessArchiveFailureDoesNotBlockCommit() {
	s.mockArchive.ExpectedCalls = nil
	s.mockArchive.On("SaveInboundMessage", mock.Anything, mock.AnythingOfType("dto.InboundMessageEvent"), mock.AnythingOfType("time.Time")).
		Return(errors.New("archive unavailable")).Once()
	s.mockChannelSvc.On("GetChannel", mock.Anything, int64(100)).Return(s.channel, nil).Once()
	s.mockGuard.On("IsDuplicate", mock.Anything, int64(100), mock.Anything, int64(555)).Return(false, nil).Once()
	s.mockLedgerRepo.On("InsertLedgerEntry", mock.Anything, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	result, err := s.service.Process(context.Background(), s.event("11,500 រៀល Trx. ID: 123456", s.registered.Add(time.Hour)))

	s.Require().NoError(err)
	s.Equal(domain.StatusCommitted, result.Status)
}

func TestRecorderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecorderServiceTestSuite))
}
