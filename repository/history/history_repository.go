package history

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/buyer-leads/model"
)

type SQL struct {
	conn *sqlx.DB
}

// HistoryRepository stores the append-only buyer audit trail. Entries are
// removed only by the buyers foreign key cascade.
type HistoryRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, entry *model.BuyerHistory) error
	InsertBatchTx(ctx context.Context, tx *sqlx.Tx, entries []model.BuyerHistory) error
	ListByBuyer(ctx context.Context, buyerID string, limit int) ([]model.BuyerHistory, error)
}

func NewHistoryRepository(conn *sqlx.DB) HistoryRepository {
	return &SQL{conn: conn}
}

const (
	insertHistoryQuery = `INSERT INTO buyer_history (id, buyer_id, changed_by, changed_at, diff) VALUES (:id, :buyer_id, :changed_by, :changed_at, :diff)`
	listHistoryQuery   = `SELECT id, buyer_id, changed_by, changed_at, diff FROM buyer_history WHERE buyer_id = ? ORDER BY changed_at DESC, id DESC LIMIT ?`
)

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, entry *model.BuyerHistory) error {
	_, err := tx.NamedExecContext(ctx, insertHistoryQuery, entry)
	return err
}

func (s *SQL) InsertBatchTx(ctx context.Context, tx *sqlx.Tx, entries []model.BuyerHistory) error {
	if len(entries) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, insertHistoryQuery, entries)
	return err
}

func (s *SQL) ListByBuyer(ctx context.Context, buyerID string, limit int) ([]model.BuyerHistory, error) {
	items := make([]model.BuyerHistory, 0)
	if err := s.conn.SelectContext(ctx, &items, listHistoryQuery, buyerID, limit); err != nil {
		return nil, err
	}
	return items, nil
}
