package buyer

import (
	"context"
	stderrors "errors"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/buyer-leads/cmd/config"
	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
	buyerrepo "github.com/muhammadheryan/buyer-leads/repository/buyer"
	historyrepo "github.com/muhammadheryan/buyer-leads/repository/history"
	redisrepo "github.com/muhammadheryan/buyer-leads/repository/redis"
	txrepo "github.com/muhammadheryan/buyer-leads/repository/tx"
	"github.com/muhammadheryan/buyer-leads/utils/diff"
	"github.com/muhammadheryan/buyer-leads/utils/errors"
	"github.com/muhammadheryan/buyer-leads/utils/logger"
	"github.com/muhammadheryan/buyer-leads/utils/metrics"
	"github.com/muhammadheryan/buyer-leads/utils/sheet"
	validatorx "github.com/muhammadheryan/buyer-leads/utils/validator"
	"go.uber.org/zap"
)

type BuyerApp interface {
	List(ctx context.Context, filter *model.BuyerFilter, page, perPage int) (*model.BuyerListResponse, error)
	Get(ctx context.Context, id string) (*model.Buyer, error)
	Create(ctx context.Context, actor model.Actor, req *model.BuyerRequest) (*model.Buyer, error)
	Update(ctx context.Context, actor model.Actor, id string, req *model.UpdateBuyerRequest) (*model.Buyer, error)
	UpdateStatus(ctx context.Context, actor model.Actor, id string, req *model.UpdateStatusRequest) (*model.Buyer, error)
	Delete(ctx context.Context, actor model.Actor, id string) error
	History(ctx context.Context, id string) ([]model.BuyerHistory, error)
	ListTags(ctx context.Context) ([]string, error)
	RefreshTags(ctx context.Context) ([]string, error)
	Import(ctx context.Context, actor model.Actor, file io.Reader, format sheet.Format) (*model.ImportResult, error)
	Export(ctx context.Context, filter *model.BuyerFilter, w io.Writer, format sheet.Format) error
}

// EventPublisher announces committed buyer mutations.
type EventPublisher interface {
	PublishBuyerEvent(ctx context.Context, msg model.BuyerEventMessage) error
}

type buyerAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	buyerRepo   buyerrepo.BuyerRepository
	historyRepo historyrepo.HistoryRepository
	redisRepo   redisrepo.Repository
	publisher   EventPublisher
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewBuyerApp wires the buyer use cases. publisher and m may be nil.
func NewBuyerApp(config *config.Config, txRepo txrepo.TxRepository, buyerRepo buyerrepo.BuyerRepository, historyRepo historyrepo.HistoryRepository, redisRepo redisrepo.Repository, publisher EventPublisher, m *metrics.Metrics) BuyerApp {
	return &buyerAppImpl{
		config:      config,
		txRepo:      txRepo,
		buyerRepo:   buyerRepo,
		historyRepo: historyRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
		metrics:     m,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
	}
}

func (s *buyerAppImpl) List(ctx context.Context, filter *model.BuyerFilter, page, perPage int) (*model.BuyerListResponse, error) {
	if filter == nil {
		filter = &model.BuyerFilter{}
	}
	if err := validatorx.ValidateStruct(filter); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = s.config.Buyer.DefaultPerPage
	}
	if perPage > s.config.Buyer.MaxPerPage {
		perPage = s.config.Buyer.MaxPerPage
	}

	items, total, err := s.buyerRepo.List(ctx, filter, page, perPage)
	if err != nil {
		logger.Error("[ListBuyers] err buyerRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.BuyerListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: int(math.Ceil(float64(total) / float64(perPage))),
	}, nil
}

func (s *buyerAppImpl) Get(ctx context.Context, id string) (*model.Buyer, error) {
	b, err := s.buyerRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetBuyer] err buyerRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if b == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return b, nil
}

func (s *buyerAppImpl) Create(ctx context.Context, actor model.Actor, req *model.BuyerRequest) (*model.Buyer, error) {
	in := *req
	in.OwnerID = actor.ID

	fields, err := s.validate(&in)
	if err != nil {
		s.metrics.ObserveMutation(constant.BuyerEventCreated, "invalid")
		return nil, err
	}

	now := s.now()
	b := &model.Buyer{ID: uuid.NewString(), BuyerFields: *fields, UpdatedAt: now}

	tx, err := s.txRepo.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("[CreateBuyer] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.buyerRepo.InsertTx(ctx, tx, b); err != nil {
		logger.Error("[CreateBuyer] err buyerRepo.InsertTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entry := &model.BuyerHistory{
		ID:        uuid.NewString(),
		BuyerID:   b.ID,
		ChangedBy: actor.ID,
		ChangedAt: now,
		Diff:      model.CreatedDiff(),
	}
	if err := s.historyRepo.InsertTx(ctx, tx, entry); err != nil {
		logger.Error("[CreateBuyer] err historyRepo.InsertTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateBuyer] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.metrics.ObserveMutation(constant.BuyerEventCreated, "success")
	s.metrics.ObserveAudit(constant.BuyerEventCreated, 1)
	if len(b.Tags) > 0 {
		s.invalidateTags(ctx)
	}
	s.publish(ctx, constant.BuyerEventCreated, actor, []string{b.ID}, nil)

	return b, nil
}

func (s *buyerAppImpl) Update(ctx context.Context, actor model.Actor, id string, req *model.UpdateBuyerRequest) (*model.Buyer, error) {
	return s.update(ctx, "UpdateBuyer", actor, id, req.LastUpdated, func(old *model.Buyer) model.BuyerRequest {
		in := req.BuyerRequest
		if in.Status == nil {
			status := string(old.Status)
			in.Status = &status
		}
		return in
	})
}

func (s *buyerAppImpl) UpdateStatus(ctx context.Context, actor model.Actor, id string, req *model.UpdateStatusRequest) (*model.Buyer, error) {
	return s.update(ctx, "UpdateBuyerStatus", actor, id, req.LastUpdated, func(old *model.Buyer) model.BuyerRequest {
		in := old.ToRequest()
		status := req.Status
		in.Status = &status
		return in
	})
}

// update is the single write path for existing buyers. Preconditions run on
// the locked row before the payload is validated and diffed.
func (s *buyerAppImpl) update(ctx context.Context, op string, actor model.Actor, id string, lastUpdated *time.Time, build func(old *model.Buyer) model.BuyerRequest) (*model.Buyer, error) {
	tx, err := s.txRepo.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	old, err := s.buyerRepo.GetByIDForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("["+op+"] err buyerRepo.GetByIDForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if old == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if lastUpdated != nil && !sameInstant(*lastUpdated, old.UpdatedAt) {
		logger.Info("["+op+"] stale update rejected", zap.String("buyer_id", id), zap.Time("last_updated", *lastUpdated), zap.Time("updated_at", old.UpdatedAt))
		return nil, errors.SetCustomError(constant.ErrConflict)
	}
	if !actor.CanModify(old.OwnerID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	in := build(old)
	in.OwnerID = old.OwnerID
	fields, err := s.validate(&in)
	if err != nil {
		s.metrics.ObserveMutation(constant.BuyerEventUpdated, "invalid")
		return nil, err
	}

	changes := diff.Buyers(&old.BuyerFields, fields)
	now := s.now()
	updated := &model.Buyer{ID: old.ID, BuyerFields: *fields, UpdatedAt: now}

	if err := s.buyerRepo.UpdateTx(ctx, tx, updated); err != nil {
		logger.Error("["+op+"] err buyerRepo.UpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if len(changes) > 0 {
		entry := &model.BuyerHistory{
			ID:        uuid.NewString(),
			BuyerID:   old.ID,
			ChangedBy: actor.ID,
			ChangedAt: now,
			Diff:      changes,
		}
		if err := s.historyRepo.InsertTx(ctx, tx, entry); err != nil {
			logger.Error("["+op+"] err historyRepo.InsertTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.metrics.ObserveMutation(constant.BuyerEventUpdated, "success")
	if len(changes) > 0 {
		s.metrics.ObserveAudit(constant.BuyerEventUpdated, 1)
		if _, ok := changes["tags"]; ok {
			s.invalidateTags(ctx)
		}
		s.publish(ctx, constant.BuyerEventUpdated, actor, []string{old.ID}, diff.ChangedFields(changes))
	}

	return updated, nil
}

func (s *buyerAppImpl) Delete(ctx context.Context, actor model.Actor, id string) error {
	tx, err := s.txRepo.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("[DeleteBuyer] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	old, err := s.buyerRepo.GetByIDForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteBuyer] err buyerRepo.GetByIDForUpdateTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if old == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !actor.CanModify(old.OwnerID) {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if err := s.buyerRepo.DeleteTx(ctx, tx, id); err != nil {
		logger.Error("[DeleteBuyer] err buyerRepo.DeleteTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteBuyer] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.metrics.ObserveMutation(constant.BuyerEventDeleted, "success")
	if len(old.Tags) > 0 {
		s.invalidateTags(ctx)
	}
	s.publish(ctx, constant.BuyerEventDeleted, actor, []string{id}, nil)
	return nil
}

func (s *buyerAppImpl) History(ctx context.Context, id string) ([]model.BuyerHistory, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	items, err := s.historyRepo.ListByBuyer(ctx, id, s.config.Buyer.HistoryLimit)
	if err != nil {
		logger.Error("[BuyerHistory] err historyRepo.ListByBuyer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// ListTags serves tag suggestions from cache, rebuilding it on a miss.
func (s *buyerAppImpl) ListTags(ctx context.Context) ([]string, error) {
	tags, ok, err := s.redisRepo.GetTags(ctx)
	if err != nil {
		logger.Warn("[ListTags] err redisRepo.GetTags", zap.String("error", err.Error()))
	}
	if ok {
		return tags, nil
	}
	return s.RefreshTags(ctx)
}

func (s *buyerAppImpl) RefreshTags(ctx context.Context) ([]string, error) {
	raw, err := s.buyerRepo.ListTags(ctx)
	if err != nil {
		logger.Error("[RefreshTags] err buyerRepo.ListTags", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tags := uniqueSorted(raw)
	if err := s.redisRepo.SetTags(ctx, tags, s.config.Buyer.TagCacheTTL); err != nil {
		logger.Warn("[RefreshTags] err redisRepo.SetTags", zap.String("error", err.Error()))
	}
	return tags, nil
}

// validate runs the buyer rules in API mode and records failures per field.
func (s *buyerAppImpl) validate(req *model.BuyerRequest) (*model.BuyerFields, error) {
	fields, err := validatorx.ValidateBuyer(req, validatorx.ModeAPI)
	if err != nil {
		var verr errors.ValidationError
		if stderrors.As(err, &verr) {
			for _, f := range verr.Fields {
				if len(f.Path) > 0 {
					s.metrics.ObserveValidationError(f.Path[0])
				}
			}
		}
		return nil, err
	}
	return fields, nil
}

func (s *buyerAppImpl) invalidateTags(ctx context.Context) {
	if err := s.redisRepo.DeleteTags(ctx); err != nil {
		logger.Warn("[InvalidateTags] err redisRepo.DeleteTags", zap.String("error", err.Error()))
	}
}

// publish is best-effort: the mutation is already committed.
func (s *buyerAppImpl) publish(ctx context.Context, action string, actor model.Actor, ids []string, changed []string) {
	if s.publisher == nil {
		return
	}
	msg := model.BuyerEventMessage{
		BuyerIDs:  ids,
		Action:    action,
		ChangedBy: actor.ID,
		Changed:   changed,
		At:        s.now().Unix(),
	}
	if err := s.publisher.PublishBuyerEvent(ctx, msg); err != nil {
		logger.Warn("[PublishBuyerEvent] err publisher.PublishBuyerEvent", zap.String("action", action), zap.String("error", err.Error()))
	}
}

// sameInstant compares at millisecond precision, the precision updatedAt is stored with.
func sameInstant(a, b time.Time) bool {
	return a.Truncate(time.Millisecond).Equal(b.Truncate(time.Millisecond))
}

func uniqueSorted(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i]), strings.ToLower(out[j])
		if li != lj {
			return li < lj
		}
		return out[i] < out[j]
	})
	return out
}
