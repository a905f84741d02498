package buyer

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/buyer-leads/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BuyerRepository interface {
	List(ctx context.Context, filter *model.BuyerFilter, page, perPage int) ([]model.Buyer, int64, error)
	ListForExport(ctx context.Context, filter *model.BuyerFilter, limit int) ([]model.Buyer, error)
	GetByID(ctx context.Context, id string) (*model.Buyer, error)
	GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Buyer, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, buyer *model.Buyer) error
	InsertBatchTx(ctx context.Context, tx *sqlx.Tx, buyers []model.Buyer) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, buyer *model.Buyer) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error
	ListTags(ctx context.Context) ([]string, error)
}

func NewBuyerRepository(conn *sqlx.DB) BuyerRepository {
	return &SQL{conn: conn}
}

const (
	buyerColumns = `id, full_name, email, phone, city, property_type, bhk, purpose, budget_min, budget_max, timeline, source, notes, tags, owner_id, status, updated_at`

	selectBuyerBase = `SELECT ` + buyerColumns + ` FROM buyers`
	countBuyerBase  = `SELECT COUNT(*) FROM buyers`

	insertBuyerQuery = `INSERT INTO buyers (` + buyerColumns + `) VALUES (:id, :full_name, :email, :phone, :city, :property_type, :bhk, :purpose, :budget_min, :budget_max, :timeline, :source, :notes, :tags, :owner_id, :status, :updated_at)`

	updateBuyerQuery = `UPDATE buyers SET full_name = :full_name, email = :email, phone = :phone, city = :city, property_type = :property_type, bhk = :bhk, purpose = :purpose, budget_min = :budget_min, budget_max = :budget_max, timeline = :timeline, source = :source, notes = :notes, tags = :tags, status = :status, updated_at = :updated_at WHERE id = :id`

	deleteBuyerQuery = `DELETE FROM buyers WHERE id = ?`
	listTagsQuery    = `SELECT tags FROM buyers WHERE tags IS NOT NULL`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildFilter returns the WHERE clause for filter and its positional args.
// Budget filters compare each bound against its own column.
func buildFilter(filter *model.BuyerFilter) (string, []interface{}) {
	if filter == nil {
		return "", nil
	}
	conditions := make([]string, 0, 10)
	args := make([]interface{}, 0, 12)

	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + likeEscaper.Replace(s) + "%"
		conditions = append(conditions, "(full_name LIKE ? OR email LIKE ? OR phone LIKE ?)")
		args = append(args, like, like, like)
	}
	for _, eq := range []struct {
		column string
		value  string
	}{
		{"city", filter.City},
		{"property_type", filter.PropertyType},
		{"bhk", filter.BHK},
		{"purpose", filter.Purpose},
		{"timeline", filter.Timeline},
		{"source", filter.Source},
		{"status", filter.Status},
	} {
		if eq.value == "" {
			continue
		}
		conditions = append(conditions, eq.column+" = ?")
		args = append(args, eq.value)
	}
	if filter.BudgetMin != nil {
		conditions = append(conditions, "budget_min >= ?")
		args = append(args, *filter.BudgetMin)
	}
	if filter.BudgetMax != nil {
		conditions = append(conditions, "budget_max <= ?")
		args = append(args, *filter.BudgetMax)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (s *SQL) List(ctx context.Context, filter *model.BuyerFilter, page, perPage int) ([]model.Buyer, int64, error) {
	where, args := buildFilter(filter)

	var total int64
	if err := s.conn.GetContext(ctx, &total, countBuyerBase+where, args...); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	query := selectBuyerBase + where + " ORDER BY updated_at DESC LIMIT ? OFFSET ?"
	items, err := s.selectBuyers(ctx, query, append(args, perPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) ListForExport(ctx context.Context, filter *model.BuyerFilter, limit int) ([]model.Buyer, error) {
	where, args := buildFilter(filter)
	query := selectBuyerBase + where + " ORDER BY updated_at DESC LIMIT ?"
	return s.selectBuyers(ctx, query, append(args, limit)...)
}

func (s *SQL) selectBuyers(ctx context.Context, query string, args ...interface{}) ([]model.Buyer, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Buyer, 0)
	for rows.Next() {
		var it model.Buyer
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetByID returns nil, nil when the buyer does not exist.
func (s *SQL) GetByID(ctx context.Context, id string) (*model.Buyer, error) {
	var b model.Buyer
	if err := s.conn.QueryRowxContext(ctx, selectBuyerBase+" WHERE id = ?", id).StructScan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// GetByIDForUpdateTx locks the row until tx ends. Returns nil, nil when missing.
func (s *SQL) GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Buyer, error) {
	var b model.Buyer
	if err := tx.QueryRowxContext(ctx, selectBuyerBase+" WHERE id = ? FOR UPDATE", id).StructScan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, buyer *model.Buyer) error {
	_, err := tx.NamedExecContext(ctx, insertBuyerQuery, buyer)
	return err
}

// InsertBatchTx writes all rows with a single multi-value INSERT.
func (s *SQL) InsertBatchTx(ctx context.Context, tx *sqlx.Tx, buyers []model.Buyer) error {
	if len(buyers) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, insertBuyerQuery, buyers)
	return err
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, buyer *model.Buyer) error {
	_, err := tx.NamedExecContext(ctx, updateBuyerQuery, buyer)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	_, err := tx.ExecContext(ctx, deleteBuyerQuery, id)
	return err
}

// ListTags returns every stored tag, possibly repeated across buyers.
func (s *SQL) ListTags(ctx context.Context) ([]string, error) {
	rows, err := s.conn.QueryxContext(ctx, listTagsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var tags model.Tags
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		out = append(out, tags...)
	}
	return out, rows.Err()
}
