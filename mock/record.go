package mock

import (
	"context"

	"github.com/fwojciec/pagesafe"
)

var _ pagesafe.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of pagesafe.RecordService.
type RecordService struct {
	CreateRecordFn     func(ctx context.Context, record *pagesafe.Record, passphrase string) error
	FindRecordByIDFn   func(ctx context.Context, id string) (*pagesafe.Record, error)
	FindRecordsFn      func(ctx context.Context, filter pagesafe.RecordFilter) ([]*pagesafe.Record, error)
	VerifyPassphraseFn func(ctx context.Context, id, passphrase string) (bool, error)
	DeleteRecordFn     func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, record *pagesafe.Record, passphrase string) error {
	return s.CreateRecordFn(ctx, record, passphrase)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*pagesafe.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter pagesafe.RecordFilter) ([]*pagesafe.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) VerifyPassphrase(ctx context.Context, id, passphrase string) (bool, error) {
	return s.VerifyPassphraseFn(ctx, id, passphrase)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
