package buyer

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"id", "full_name", "email", "phone", "city", "property_type", "bhk", "purpose", "budget_min",
	"budget_max", "timeline", "source", "notes", "tags", "owner_id", "status", "updated_at",
}

var updatedAt = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*SQL, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "mysql")
	return &SQL{conn: conn}, conn, mock
}

func johnRow() []driver.Value {
	return []driver.Value{
		"b-1", "John Doe", nil, "9876543210", "Chandigarh", "Apartment", "2", "Buy", int64(5000000),
		int64(8000000), "0-3m", "Website", nil, `["hot","nri"]`, "agent-1", "New", updatedAt,
	}
}

func intPtr(n int64) *int64 { return &n }

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name      string
		filter    *model.BuyerFilter
		wantWhere string
		wantArgs  []interface{}
	}{
		{name: "nil filter"},
		{name: "empty filter", filter: &model.BuyerFilter{}, wantArgs: []interface{}{}},
		{
			name:      "search escapes wildcards",
			filter:    &model.BuyerFilter{Search: " 50%_off "},
			wantWhere: " WHERE (full_name LIKE ? OR email LIKE ? OR phone LIKE ?)",
			wantArgs:  []interface{}{`%50\%\_off%`, `%50\%\_off%`, `%50\%\_off%`},
		},
		{
			name: "enum and budget filters",
			filter: &model.BuyerFilter{
				City:      "Mohali",
				BHK:       "3",
				Status:    "Qualified",
				BudgetMin: intPtr(0),
				BudgetMax: intPtr(9000000),
			},
			wantWhere: " WHERE city = ? AND bhk = ? AND status = ? AND budget_min >= ? AND budget_max <= ?",
			wantArgs:  []interface{}{"Mohali", "3", "Qualified", int64(0), int64(9000000)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildFilter(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSQL_List(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM buyers WHERE city = ?")).
		WithArgs("Chandigarh").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta(selectBuyerBase + " WHERE city = ? ORDER BY updated_at DESC LIMIT ? OFFSET ?")).
		WithArgs("Chandigarh", 10, 10).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(johnRow()...))

	items, total, err := repo.List(context.Background(), &model.BuyerFilter{City: "Chandigarh"}, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, constant.CityChandigarh, got.City)
	require.NotNil(t, got.BHK)
	assert.Equal(t, constant.BHK2, *got.BHK)
	assert.Nil(t, got.Email)
	assert.Nil(t, got.Notes)
	assert.Equal(t, intPtr(8000000), got.BudgetMax)
	assert.Equal(t, model.Tags{"hot", "nri"}, got.Tags)
	assert.Equal(t, updatedAt, got.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_List_CountError(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM buyers")).WillReturnError(errors.New("db down"))

	_, _, err := repo.List(context.Background(), nil, 1, 10)
	assert.EqualError(t, err, "db down")
}

func TestSQL_ListForExport(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectBuyerBase + " ORDER BY updated_at DESC LIMIT ?")).
		WithArgs(1000).
		WillReturnRows(sqlmock.NewRows(columns))

	items, err := repo.ListForExport(context.Background(), &model.BuyerFilter{}, 1000)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantNil bool
	}{
		{name: "found", rows: sqlmock.NewRows(columns).AddRow(johnRow()...)},
		{name: "not found", rows: sqlmock.NewRows(columns), wantNil: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta(selectBuyerBase + " WHERE id = ?")).
				WithArgs("b-1").
				WillReturnRows(tt.rows)

			got, err := repo.GetByID(context.Background(), "b-1")
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, "John Doe", got.FullName)
		})
	}
}

func TestSQL_TxOperations(t *testing.T) {
	repo, conn, mock := newRepo(t)
	ctx := context.Background()

	b := &model.Buyer{
		ID: "b-1",
		BuyerFields: model.BuyerFields{
			FullName:     "John Doe",
			Phone:        "9876543210",
			City:         constant.CityChandigarh,
			PropertyType: constant.PropertyPlot,
			Purpose:      constant.PurposeBuy,
			Timeline:     constant.Timeline0To3Months,
			Source:       constant.SourceWebsite,
			Tags:         model.Tags{"hot"},
			OwnerID:      "agent-1",
			Status:       constant.BuyerStatusNew,
		},
		UpdatedAt: updatedAt,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectBuyerBase + " WHERE id = ? FOR UPDATE")).
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(johnRow()...))
	mock.ExpectExec("INSERT INTO buyers").
		WithArgs("b-1", "John Doe", nil, "9876543210", "Chandigarh", "Plot", nil, "Buy", nil, nil, "0-3m", "Website", nil, `["hot"]`, "agent-1", "New", updatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO buyers \(.+\) VALUES \(.+\),\s*\(.+\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE buyers SET full_name = ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteBuyerQuery)).
		WithArgs("b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)

	locked, err := repo.GetByIDForUpdateTx(ctx, tx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "agent-1", locked.OwnerID)

	require.NoError(t, repo.InsertTx(ctx, tx, b))
	second := *b
	second.ID = "b-2"
	require.NoError(t, repo.InsertBatchTx(ctx, tx, []model.Buyer{*b, second}))
	require.NoError(t, repo.InsertBatchTx(ctx, tx, nil))
	require.NoError(t, repo.UpdateTx(ctx, tx, b))
	require.NoError(t, repo.DeleteTx(ctx, tx, "b-1"))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_ListTags(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(listTagsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"tags"}).
			AddRow(`["hot","nri"]`).
			AddRow(`["hot"]`).
			AddRow(`[]`))

	tags, err := repo.ListTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"hot", "nri", "hot"}, tags)
}
