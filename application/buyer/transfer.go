package buyer

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
	"github.com/muhammadheryan/buyer-leads/utils/errors"
	"github.com/muhammadheryan/buyer-leads/utils/logger"
	"github.com/muhammadheryan/buyer-leads/utils/sheet"
	validatorx "github.com/muhammadheryan/buyer-leads/utils/validator"
	"go.uber.org/zap"
)

// Import validates every row before writing anything. One invalid row rejects
// the whole file; the result lists each row's outcome.
func (s *buyerAppImpl) Import(ctx context.Context, actor model.Actor, file io.Reader, format sheet.Format) (*model.ImportResult, error) {
	rows, err := sheet.Decode(file, format, s.config.Buyer.ImportMaxRows)
	if err != nil {
		if stderrors.Is(err, sheet.ErrTooManyRows) {
			return nil, errors.SetCustomError(constant.ErrImportTooLarge)
		}
		if stderrors.Is(err, sheet.ErrUnsupportedFormat) {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		logger.Info("[ImportBuyers] rejected file", zap.String("error", err.Error()))
		return &model.ImportResult{Success: false, Errors: []string{err.Error()}, Results: []model.ImportRowResult{}}, nil
	}

	result := &model.ImportResult{
		TotalRows: len(rows),
		Results:   make([]model.ImportRowResult, 0, len(rows)),
	}
	now := s.now()
	buyers := make([]model.Buyer, 0, len(rows))

	for _, row := range rows {
		req := row.Request
		req.OwnerID = actor.ID
		req.Status = nil

		msgs := append([]string(nil), row.Errors...)
		fields, err := validatorx.ValidateBuyer(&req, validatorx.ModeAPI)
		if err != nil {
			var verr errors.ValidationError
			if !stderrors.As(err, &verr) {
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			for _, f := range verr.Fields {
				msgs = append(msgs, f.Message)
			}
		}

		if len(msgs) > 0 {
			msg := strings.Join(msgs, ", ")
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", row.Row, msg))
			result.Results = append(result.Results, model.ImportRowResult{Row: row.Row, Error: msg})
			s.metrics.ObserveImportRow(false)
			continue
		}

		result.Results = append(result.Results, model.ImportRowResult{Row: row.Row, Valid: true})
		buyers = append(buyers, model.Buyer{ID: uuid.NewString(), BuyerFields: *fields, UpdatedAt: now})
		s.metrics.ObserveImportRow(true)
	}

	result.ValidRows = len(buyers)
	if len(result.Errors) > 0 {
		return result, nil
	}

	entries := make([]model.BuyerHistory, 0, len(buyers))
	ids := make([]string, 0, len(buyers))
	for _, b := range buyers {
		ids = append(ids, b.ID)
		entries = append(entries, model.BuyerHistory{
			ID:        uuid.NewString(),
			BuyerID:   b.ID,
			ChangedBy: actor.ID,
			ChangedAt: now,
			Diff:      model.ImportedDiff(),
		})
	}

	tx, err := s.txRepo.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("[ImportBuyers] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.buyerRepo.InsertBatchTx(ctx, tx, buyers); err != nil {
		logger.Error("[ImportBuyers] err buyerRepo.InsertBatchTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.historyRepo.InsertBatchTx(ctx, tx, entries); err != nil {
		logger.Error("[ImportBuyers] err historyRepo.InsertBatchTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ImportBuyers] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.metrics.ObserveMutation(constant.BuyerEventImported, "success")
	s.metrics.ObserveAudit(constant.BuyerEventImported, len(entries))
	s.invalidateTags(ctx)
	s.publish(ctx, constant.BuyerEventImported, actor, ids, nil)

	result.Success = true
	result.Message = fmt.Sprintf("Successfully imported %d buyers", len(buyers))
	return result, nil
}

// Export writes at most the configured number of buyers matching filter,
// newest first.
func (s *buyerAppImpl) Export(ctx context.Context, filter *model.BuyerFilter, w io.Writer, format sheet.Format) error {
	if filter == nil {
		filter = &model.BuyerFilter{}
	}
	if err := validatorx.ValidateStruct(filter); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	items, err := s.buyerRepo.ListForExport(ctx, filter, s.config.Buyer.ExportMaxRows)
	if err != nil {
		logger.Error("[ExportBuyers] err buyerRepo.ListForExport", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := sheet.Encode(w, format, items); err != nil {
		if stderrors.Is(err, sheet.ErrUnsupportedFormat) {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		logger.Error("[ExportBuyers] err sheet.Encode", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
