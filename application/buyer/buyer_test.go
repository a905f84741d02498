package buyer_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	buyerapp "github.com/muhammadheryan/buyer-leads/application/buyer"
	"github.com/muhammadheryan/buyer-leads/cmd/config"
	"github.com/muhammadheryan/buyer-leads/constant"
	appmocks "github.com/muhammadheryan/buyer-leads/mocks/application/buyer"
	buyermocks "github.com/muhammadheryan/buyer-leads/mocks/repository/buyer"
	historymocks "github.com/muhammadheryan/buyer-leads/mocks/repository/history"
	redismocks "github.com/muhammadheryan/buyer-leads/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/buyer-leads/mocks/repository/tx"
	"github.com/muhammadheryan/buyer-leads/model"
	cerr "github.com/muhammadheryan/buyer-leads/utils/errors"
	"github.com/muhammadheryan/buyer-leads/utils/logger"
	"github.com/muhammadheryan/buyer-leads/utils/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

type fields struct {
	config      *config.Config
	txRepo      *txmocks.TxRepository
	buyerRepo   *buyermocks.BuyerRepository
	historyRepo *historymocks.HistoryRepository
	redisRepo   *redismocks.RedisRepository
	publisher   *appmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{
			Buyer: config.BuyerConfig{
				DefaultPerPage: 10,
				MaxPerPage:     100,
				HistoryLimit:   10,
				ImportMaxRows:  200,
				ExportMaxRows:  1000,
				TagCacheTTL:    time.Minute,
			},
		},
		txRepo:      txmocks.NewTxRepository(t),
		buyerRepo:   buyermocks.NewBuyerRepository(t),
		historyRepo: historymocks.NewHistoryRepository(t),
		redisRepo:   redismocks.NewRedisRepository(t),
		publisher:   appmocks.NewEventPublisher(t),
	}
}

func (f fields) app() buyerapp.BuyerApp {
	return buyerapp.NewBuyerApp(f.config, f.txRepo, f.buyerRepo, f.historyRepo, f.redisRepo, f.publisher, nil)
}

// expectTx registers a transaction that may be committed or rolled back.
func expectTx(f fields, commit bool) *sqlx.Tx {
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything, mock.Anything).Return(tx, nil).Once()
	if commit {
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
	}
	f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
	return tx
}

var (
	agent      = model.Actor{ID: "agent-1", Role: constant.RoleAgent}
	otherAgent = model.Actor{ID: "agent-2", Role: constant.RoleAgent}
	admin      = model.Actor{ID: "admin-1", Role: constant.RoleAdmin}
	lastSaved  = time.Date(2025, 9, 1, 10, 0, 0, 123000000, time.UTC)
)

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64 { return &n }

func johnDoe() *model.Buyer {
	bhk := constant.BHK2
	return &model.Buyer{
		ID: "b-1",
		BuyerFields: model.BuyerFields{
			FullName:     "John Doe",
			Phone:        "9876543210",
			City:         constant.CityChandigarh,
			PropertyType: constant.PropertyApartment,
			BHK:          &bhk,
			Purpose:      constant.PurposeBuy,
			BudgetMin:    intPtr(5000000),
			BudgetMax:    intPtr(8000000),
			Timeline:     constant.Timeline0To3Months,
			Source:       constant.SourceWebsite,
			OwnerID:      "agent-1",
			Status:       constant.BuyerStatusNew,
		},
		UpdatedAt: lastSaved,
	}
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestBuyerApp_Update(t *testing.T) {
	type args struct {
		actor model.Actor
		id    string
		req   func() *model.UpdateBuyerRequest
	}
	qualifiedWithTag := func() *model.UpdateBuyerRequest {
		req := johnDoe().ToRequest()
		req.Status = strPtr("Qualified")
		req.Tags = []string{"hot-lead"}
		last := lastSaved
		return &model.UpdateBuyerRequest{BuyerRequest: req, LastUpdated: &last}
	}

	tests := []struct {
		name      string
		args      args
		mockCall  func(f fields)
		want      *model.BuyerFields
		wantErr   bool
		errCode   constant.ErrorType
		wantValid []string
	}{
		{
			name: "success: status and tags change writes one audit entry",
			args: args{actor: agent, id: "b-1", req: qualifiedWithTag},
			mockCall: func(f fields) {
				tx := expectTx(f, true)
				f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "b-1").Return(johnDoe(), nil).Once()
				f.buyerRepo.On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(b *model.Buyer) bool {
					return b.ID == "b-1" && b.Status == constant.BuyerStatusQualified && b.UpdatedAt.After(lastSaved)
				})).Return(nil).Once()
				wantDiff := model.Diff{
					"status": {Old: constant.BuyerStatusNew, New: constant.BuyerStatusQualified},
					"tags":   {Old: []string{}, New: []string{"hot-lead"}},
				}
				f.historyRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(e *model.BuyerHistory) bool {
					return e.BuyerID == "b-1" && e.ChangedBy == "agent-1" && e.ID != "" && reflect.DeepEqual(e.Diff, wantDiff)
				})).Return(nil).Once()
				f.redisRepo.On("DeleteTags", mock.Anything).Return(nil).Once()
				f.publisher.On("PublishBuyerEvent", mock.Anything, mock.MatchedBy(func(m model.BuyerEventMessage) bool {
					return m.Action == constant.BuyerEventUpdated && reflect.DeepEqual(m.Changed, []string{"status", "tags"})
				})).Return(nil).Once()
			},
			want: func() *model.BuyerFields {
				b := johnDoe().BuyerFields
				b.Status = constant.BuyerStatusQualified
				b.Tags = model.Tags{"hot-lead"}
				return &b
			}(),
		},
		{
			name: "success: no-op update persists without audit entry",
			args: args{actor: agent, id: "b-1", req: func() *model.UpdateBuyerRequest {
				return &model.UpdateBuyerRequest{BuyerRequest: johnDoe().ToRequest()}
			}},
			mockCall: func(f fields) {
				tx := expectTx(f, true)
				f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "b-1").Return(johnDoe(), nil).Once()
				f.buyerRepo.On("UpdateTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
			},
			want: func() *model.BuyerFields {
				b := johnDoe().BuyerFields
				return &b
			}(),
		},
		{
			name: "success: admin edits another agent's buyer and owner stays",
			args: args{actor: admin, id: "b-1", req: func() *model.UpdateBuyerRequest {
				req := johnDoe().ToRequest()
				req.OwnerID = "agent-9"
				req.Status = nil
				req.Notes = strPtr("  call after 6pm ")
				return &model.UpdateBuyerRequest{BuyerRequest: req}
			}},
			mockCall: func(f fields) {
				tx := expectTx(f, true)
				f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "b-1").Return(johnDoe(), nil).Once()
				f.buyerRepo.On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(b *model.Buyer) bool {
					return b.OwnerID == "agent-1" && b.Status == constant.BuyerStatusNew
				})).Return(nil).Once()
				f.historyRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(e *model.BuyerHistory) bool {
					_, ok := e.Diff["notes"]
					return ok && len(e.Diff) == 1 && e.ChangedBy == "admin-1"
				})).Return(nil).Once()
				f.publisher.On("PublishBuyerEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			want: func() *model.BuyerFields {
				b := johnDoe().BuyerFields
				b.Notes = strPtr("call after 6pm")
				return &b
			}(),
		},
		{
			name: "error: buyer not found",
			args: args{actor: agent, id: "missing", req: qualifiedWithTag},
			mockCall: func(f fields) {
				tx := expectTx(f, false)
				f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "missing").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: stale lastUpdated is a conflict",
			args: args{actor: agent, id: "b-1", req: func() *model.UpdateBuyerRequest {
				req := qualifiedWithTag()
				stale := lastSaved.Add(-time.Minute)
				req.LastUpdated = &stale
				return req
			}},
			mockCall: func(f fields) {
				tx := expectTx(f, false)
				f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "b-1").Return(johnDoe(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: agent cannot edit another agent's buyer",
			args: args{actor: otherAgent, id: "b-1", req: qualifiedWithTag},
			mockCall: func(f fields) {
				tx := expectTx(f, false)
				f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "b-1").Return(johnDoe(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: budget ordering rejects the whole update",
			args: args{actor: agent, id: "b-1", req: func() *model.UpdateBuyerRequest {
				req := johnDoe().ToRequest()
				req.BudgetMin = intPtr(8000000)
				req.BudgetMax = intPtr(5000000)
				req.Phone = "12"
				return &model.UpdateBuyerRequest{BuyerRequest: req}
			}},
			mockCall: func(f fields) {
				tx := expectTx(f, false)
				f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "b-1").Return(johnDoe(), nil).Once()
			},
			wantErr:   true,
			errCode:   constant.ErrValidation,
			wantValid: []string{"phone", "budgetMax"},
		},
		{
			name: "error: repository failure is internal",
			args: args{actor: agent, id: "b-1", req: qualifiedWithTag},
			mockCall: func(f fields) {
				tx := expectTx(f, false)
				f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "b-1").Return(johnDoe(), nil).Once()
				f.buyerRepo.On("UpdateTx", mock.Anything, tx, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Update(context.Background(), tt.args.actor, tt.args.id, tt.args.req())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				if tt.errCode == constant.ErrValidation {
					var verr cerr.ValidationError
					require.True(t, errors.As(err, &verr))
					paths := make([]string, 0, len(verr.Fields))
					for _, fe := range verr.Fields {
						paths = append(paths, strings.Join(fe.Path, "."))
					}
					assert.Equal(t, tt.wantValid, paths)
					assert.Equal(t, constant.ErrorTypeCode[tt.errCode], verr.ErrorCode())
					return
				}
				assertErrCode(t, err, tt.errCode)
				return
			}

			assert.Equal(t, *tt.want, got.BuyerFields)
			assert.Equal(t, tt.args.id, got.ID)
			assert.False(t, got.UpdatedAt.IsZero())
		})
	}
}

func TestBuyerApp_UpdateStatus(t *testing.T) {
	t.Run("success: only status is diffed", func(t *testing.T) {
		f := newFields(t)
		tx := expectTx(f, true)
		f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "b-1").Return(johnDoe(), nil).Once()
		f.buyerRepo.On("UpdateTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
		f.historyRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(e *model.BuyerHistory) bool {
			return reflect.DeepEqual(e.Diff, model.Diff{
				"status": {Old: constant.BuyerStatusNew, New: constant.BuyerStatusContacted},
			})
		})).Return(nil).Once()
		f.publisher.On("PublishBuyerEvent", mock.Anything, mock.Anything).Return(nil).Once()

		last := lastSaved
		got, err := f.app().UpdateStatus(context.Background(), agent, "b-1", &model.UpdateStatusRequest{Status: "Contacted", LastUpdated: &last})
		require.NoError(t, err)
		assert.Equal(t, constant.BuyerStatusContacted, got.Status)
	})

	t.Run("error: unknown status", func(t *testing.T) {
		f := newFields(t)
		tx := expectTx(f, false)
		f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "b-1").Return(johnDoe(), nil).Once()

		_, err := f.app().UpdateStatus(context.Background(), agent, "b-1", &model.UpdateStatusRequest{Status: "Won"})
		var verr cerr.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Has("status"))
	})
}

func TestBuyerApp_Create(t *testing.T) {
	t.Run("success: owner and default status come from the actor", func(t *testing.T) {
		f := newFields(t)
		tx := expectTx(f, true)

		req := johnDoe().ToRequest()
		req.OwnerID = "someone-else"
		req.Status = nil
		req.Tags = []string{"nri"}

		var inserted *model.Buyer
		f.buyerRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(b *model.Buyer) bool {
			inserted = b
			return b.OwnerID == "agent-1" && b.Status == constant.BuyerStatusNew && b.ID != ""
		})).Return(nil).Once()
		f.historyRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(e *model.BuyerHistory) bool {
			return reflect.DeepEqual(e.Diff, model.CreatedDiff()) && e.ChangedBy == "agent-1"
		})).Return(nil).Once()
		f.redisRepo.On("DeleteTags", mock.Anything).Return(nil).Once()
		f.publisher.On("PublishBuyerEvent", mock.Anything, mock.MatchedBy(func(m model.BuyerEventMessage) bool {
			return m.Action == constant.BuyerEventCreated && len(m.BuyerIDs) == 1
		})).Return(nil).Once()

		got, err := f.app().Create(context.Background(), agent, &req)
		require.NoError(t, err)
		assert.Same(t, inserted, got)
		assert.Equal(t, model.Tags{"nri"}, got.Tags)
	})

	t.Run("error: plot accepted without bhk but bad phone rejected before any write", func(t *testing.T) {
		f := newFields(t)
		req := johnDoe().ToRequest()
		req.PropertyType = "Plot"
		req.BHK = nil
		req.Phone = "98765-43210"

		_, err := f.app().Create(context.Background(), agent, &req)
		var verr cerr.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Has("phone"))
		assert.False(t, verr.Has("bhk"))
	})
}

func TestBuyerApp_Delete(t *testing.T) {
	tests := []struct {
		name     string
		actor    model.Actor
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: owner deletes",
			actor: agent,
			mockCall: func(f fields) {
				tx := expectTx(f, true)
				f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "b-1").Return(johnDoe(), nil).Once()
				f.buyerRepo.On("DeleteTx", mock.Anything, tx, "b-1").Return(nil).Once()
				f.publisher.On("PublishBuyerEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "error: other agent forbidden",
			actor: otherAgent,
			mockCall: func(f fields) {
				tx := expectTx(f, false)
				f.buyerRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "b-1").Return(johnDoe(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			err := f.app().Delete(context.Background(), tt.actor, "b-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Delete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestBuyerApp_List(t *testing.T) {
	tests := []struct {
		name        string
		filter      *model.BuyerFilter
		page        int
		perPage     int
		mockCall    func(f fields)
		wantPage    int
		wantPerPage int
		wantTotal   int
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name: "success: defaults applied",
			mockCall: func(f fields) {
				f.buyerRepo.On("List", mock.Anything, &model.BuyerFilter{}, 1, 10).Return([]model.Buyer{*johnDoe()}, int64(21), nil).Once()
			},
			wantPage:    1,
			wantPerPage: 10,
			wantTotal:   3,
		},
		{
			name:    "success: per page capped",
			filter:  &model.BuyerFilter{City: "Mohali"},
			page:    2,
			perPage: 500,
			mockCall: func(f fields) {
				f.buyerRepo.On("List", mock.Anything, &model.BuyerFilter{City: "Mohali"}, 2, 100).Return([]model.Buyer{}, int64(0), nil).Once()
			},
			wantPage:    2,
			wantPerPage: 100,
			wantTotal:   0,
		},
		{
			name:    "error: unknown city filter",
			filter:  &model.BuyerFilter{City: "Delhi"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: repository failure",
			mockCall: func(f fields) {
				f.buyerRepo.On("List", mock.Anything, mock.Anything, 1, 10).Return(nil, int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().List(context.Background(), tt.filter, tt.page, tt.perPage)
			if (err != nil) != tt.wantErr {
				t.Fatalf("List() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPerPage, got.PerPage)
			assert.Equal(t, tt.wantTotal, got.TotalPages)
		})
	}
}

func TestBuyerApp_History(t *testing.T) {
	f := newFields(t)
	entries := []model.BuyerHistory{{ID: "h-1", BuyerID: "b-1", Diff: model.CreatedDiff()}}
	f.buyerRepo.On("GetByID", mock.Anything, "b-1").Return(johnDoe(), nil).Once()
	f.historyRepo.On("ListByBuyer", mock.Anything, "b-1", 10).Return(entries, nil).Once()
	f.buyerRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil).Once()

	got, err := f.app().History(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	_, err = f.app().History(context.Background(), "missing")
	assertErrCode(t, err, constant.ErrNotFound)
}

func TestBuyerApp_ListTags(t *testing.T) {
	t.Run("success: cache hit", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("GetTags", mock.Anything).Return([]string{"hot"}, true, nil).Once()

		got, err := f.app().ListTags(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"hot"}, got)
	})

	t.Run("success: cache miss rebuilds sorted unique tags", func(t *testing.T) {
		f := newFields(t)
		want := []string{"family", "Hot", "hot", "NRI"}
		f.redisRepo.On("GetTags", mock.Anything).Return(nil, false, errors.New("redis down")).Once()
		f.buyerRepo.On("ListTags", mock.Anything).Return([]string{"NRI", "hot", "family", "Hot", "hot"}, nil).Once()
		f.redisRepo.On("SetTags", mock.Anything, want, time.Minute).Return(nil).Once()

		got, err := f.app().ListTags(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

const importHeader = "fullName,email,phone,city,propertyType,bhk,purpose,budgetMin,budgetMax,timeline,source,notes,tags\n"

func TestBuyerApp_Import(t *testing.T) {
	t.Run("success: all rows inserted with imported audit entries", func(t *testing.T) {
		f := newFields(t)
		tx := expectTx(f, true)
		csv := importHeader +
			"John Doe,john@example.com,9876543210,Chandigarh,Apartment,2,Buy,5000000,8000000,0-3m,Website,,hot\n" +
			"Jane Roe,,9876543211,Mohali,Plot,,Rent,,,Exploring,Call,,\n"

		f.buyerRepo.On("InsertBatchTx", mock.Anything, tx, mock.MatchedBy(func(bs []model.Buyer) bool {
			return len(bs) == 2 && bs[0].OwnerID == "agent-1" && bs[1].Status == constant.BuyerStatusNew && bs[1].BHK == nil
		})).Return(nil).Once()
		f.historyRepo.On("InsertBatchTx", mock.Anything, tx, mock.MatchedBy(func(es []model.BuyerHistory) bool {
			return len(es) == 2 && reflect.DeepEqual(es[0].Diff, model.ImportedDiff())
		})).Return(nil).Once()
		f.redisRepo.On("DeleteTags", mock.Anything).Return(nil).Once()
		f.publisher.On("PublishBuyerEvent", mock.Anything, mock.MatchedBy(func(m model.BuyerEventMessage) bool {
			return m.Action == constant.BuyerEventImported && len(m.BuyerIDs) == 2
		})).Return(nil).Once()

		got, err := f.app().Import(context.Background(), agent, strings.NewReader(csv), sheet.FormatCSV)
		require.NoError(t, err)
		assert.True(t, got.Success)
		assert.Equal(t, 2, got.ValidRows)
		assert.Equal(t, 2, got.TotalRows)
		assert.Equal(t, "Successfully imported 2 buyers", got.Message)
	})

	t.Run("error: one invalid row rejects the file", func(t *testing.T) {
		f := newFields(t)
		csv := importHeader +
			"John Doe,,9876543210,Chandigarh,Apartment,2,Buy,,,0-3m,Website,,\n" +
			"Jane Roe,,9876543211,Mohali,Villa,,Rent,8000000,5000000,Exploring,Call,,\n"

		got, err := f.app().Import(context.Background(), agent, strings.NewReader(csv), sheet.FormatCSV)
		require.NoError(t, err)
		assert.False(t, got.Success)
		assert.Equal(t, 1, got.ValidRows)
		assert.Equal(t, []string{
			"Row 2: BHK is required for Apartment and Villa properties., Maximum budget must be greater than or equal to minimum budget.",
		}, got.Errors)
		assert.Equal(t, []model.ImportRowResult{
			{Row: 1, Valid: true},
			{Row: 2, Error: "BHK is required for Apartment and Villa properties., Maximum budget must be greater than or equal to minimum budget."},
		}, got.Results)
	})

	t.Run("error: too many rows", func(t *testing.T) {
		f := newFields(t)
		f.config.Buyer.ImportMaxRows = 1
		csv := importHeader +
			"John Doe,,9876543210,Chandigarh,Plot,,Buy,,,0-3m,Website,,\n" +
			"Jane Roe,,9876543211,Mohali,Plot,,Rent,,,Exploring,Call,,\n"

		_, err := f.app().Import(context.Background(), agent, strings.NewReader(csv), sheet.FormatCSV)
		assertErrCode(t, err, constant.ErrImportTooLarge)
	})

	t.Run("error: missing headers reported in result", func(t *testing.T) {
		f := newFields(t)
		got, err := f.app().Import(context.Background(), agent, strings.NewReader("name,email\nJohn,\n"), sheet.FormatCSV)
		require.NoError(t, err)
		assert.False(t, got.Success)
		require.Len(t, got.Errors, 1)
		assert.Contains(t, got.Errors[0], "Missing required headers")
	})
}

func TestBuyerApp_Export(t *testing.T) {
	f := newFields(t)
	f.buyerRepo.On("ListForExport", mock.Anything, &model.BuyerFilter{Status: "New"}, 1000).Return([]model.Buyer{*johnDoe()}, nil).Once()

	var buf bytes.Buffer
	err := f.app().Export(context.Background(), &model.BuyerFilter{Status: "New"}, &buf, sheet.FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "John Doe,,9876543210,Chandigarh,Apartment,2,Buy,5000000,8000000,0-3m,Website,,,New", lines[1])
}
