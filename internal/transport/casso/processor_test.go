package casso

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/service"
	"github.com/thanhnd-dev/casso-recon/internal/transport/casso/mocks"
)

type ProcessorTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClient *mocks.MockClient
	mockRecon  *mocks.MockReconciler
	processor  *Processor
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func (s *ProcessorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = mocks.NewMockClient(s.mockCtrl)
	s.mockRecon = mocks.NewMockReconciler(s.mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)

	s.processor = New(s.mockRecon, s.mockClient, l)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ProcessorTestSuite) transactions(n int) []domain.ExternalTransaction {
	txs := make([]domain.ExternalTransaction, n)
	for i := 0; i < n; i++ {
		txs[i] = domain.ExternalTransaction{
			ID:          fmt.Sprintf("tx-%d", i),
			Amount:      100000,
			Description: "CK TBL-20250810-000123",
			When:        time.Now(),
		}
	}
	return txs
}

func (s *ProcessorTestSuite) TestProcessIngestsEveryTransaction() {
	txs := s.transactions(7)

	s.mockClient.EXPECT().
		ListTransactions(gomock.Any(), uint(1), gomock.Any()).
		Return(txs, false, nil)

	// каждая транзакция попадает в координатор ровно один раз,
	// независимо от распределения по воркерам.
	for _, tx := range txs {
		s.mockRecon.EXPECT().
			Ingest(gomock.Any(), tx).
			Return(&service.ReconResult{Outcome: domain.OutcomeMatched}, nil)
	}

	s.Require().NoError(s.processor.process(context.Background()))
}

func (s *ProcessorTestSuite) TestProcessPaginates() {
	firstPage := s.transactions(2)
	secondPage := []domain.ExternalTransaction{
		{ID: "tx-next", Amount: 1, Description: "x", When: time.Now()},
	}

	s.mockClient.EXPECT().
		ListTransactions(gomock.Any(), uint(1), gomock.Any()).
		Return(firstPage, true, nil)
	s.mockClient.EXPECT().
		ListTransactions(gomock.Any(), uint(2), gomock.Any()).
		Return(secondPage, false, nil)

	s.mockRecon.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(&service.ReconResult{Outcome: domain.OutcomeNoReference}, nil).
		Times(3)

	s.Require().NoError(s.processor.process(context.Background()))
}

func (s *ProcessorTestSuite) TestProcessEmptyIteration() {
	s.mockClient.EXPECT().
		ListTransactions(gomock.Any(), uint(1), gomock.Any()).
		Return(nil, false, nil)

	err := s.processor.process(context.Background())
	s.ErrorIs(err, ErrNoTransactions)
}

func (s *ProcessorTestSuite) TestProcessRetriesAfterRateLimit() {
	s.mockClient.EXPECT().
		ListTransactions(gomock.Any(), uint(1), gomock.Any()).
		Return(nil, false, &TooManyRequestError{RetryAfter: 10 * time.Millisecond})
	s.mockClient.EXPECT().
		ListTransactions(gomock.Any(), uint(1), gomock.Any()).
		Return(s.transactions(1), false, nil)

	s.mockRecon.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(&service.ReconResult{Outcome: domain.OutcomeMatched}, nil)

	s.Require().NoError(s.processor.process(context.Background()))
}

func (s *ProcessorTestSuite) TestProcessFetchError() {
	s.mockClient.EXPECT().
		ListTransactions(gomock.Any(), uint(1), gomock.Any()).
		Return(nil, false, errors.New("gateway down"))

	err := s.processor.process(context.Background())
	s.Require().Error(err)
	s.Contains(err.Error(), "gateway down")
}

func (s *ProcessorTestSuite) TestProcessIngestErrorDoesNotStopOthers() {
	txs := s.transactions(3)

	s.mockClient.EXPECT().
		ListTransactions(gomock.Any(), uint(1), gomock.Any()).
		Return(txs, false, nil)

	s.mockRecon.EXPECT().
		Ingest(gomock.Any(), txs[0]).
		Return(nil, errors.New("db unavailable"))
	s.mockRecon.EXPECT().
		Ingest(gomock.Any(), txs[1]).
		Return(&service.ReconResult{Outcome: domain.OutcomeMatched}, nil)
	s.mockRecon.EXPECT().
		Ingest(gomock.Any(), txs[2]).
		Return(&service.ReconResult{Outcome: domain.OutcomeMatched, Replayed: true}, nil)

	s.Require().NoError(s.processor.process(context.Background()))
}

func (s *ProcessorTestSuite) TestRunStopsOnContextCancel() {
	ctx, cancel := context.WithCancel(context.Background())

	s.mockClient.EXPECT().
		ListTransactions(gomock.Any(), uint(1), gomock.Any()).
		DoAndReturn(func(context.Context, uint, time.Time) ([]domain.ExternalTransaction, bool, error) {
			cancel()
			return nil, false, nil
		}).
		AnyTimes()

	done := make(chan struct{})
	go func() {
		s.processor.SetPollInterval(time.Millisecond).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("processor did not stop on context cancel")
	}
}
