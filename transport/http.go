package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	buyerapp "github.com/muhammadheryan/buyer-leads/application/buyer"
	userapp "github.com/muhammadheryan/buyer-leads/application/user"
	"github.com/muhammadheryan/buyer-leads/cmd/config"
	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
	redisrepo "github.com/muhammadheryan/buyer-leads/repository/redis"
	utilsContext "github.com/muhammadheryan/buyer-leads/utils/context"
	"github.com/muhammadheryan/buyer-leads/utils/errors"
	"github.com/muhammadheryan/buyer-leads/utils/metrics"
	validatorx "github.com/muhammadheryan/buyer-leads/utils/validator"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

const authCookie = "auth-token"

type RestHandler struct {
	Config   *config.Config
	UserApp  userapp.UserApp
	BuyerApp buyerapp.BuyerApp
}

// Dependencies groups what the HTTP layer needs besides the applications.
type Dependencies struct {
	RedisRepo redisrepo.Repository
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
}

func NewTransport(cfg *config.Config, UserApp userapp.UserApp, BuyerApp buyerapp.BuyerApp, deps Dependencies) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		Config:   cfg,
		UserApp:  UserApp,
		BuyerApp: BuyerApp,
	}
	limit := RateLimitMiddleware(deps.RedisRepo, cfg.RateLimit, deps.Metrics)

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", metrics.Handler(deps.Gatherer)).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/tags/refresh", rh.RefreshTags).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/buyers", rh.ListBuyers).Methods(http.MethodGet)
	mux.HandleFunc("/buyers", rh.CreateBuyer).Methods(http.MethodPost)
	mux.HandleFunc("/buyers/tags", rh.ListTags).Methods(http.MethodGet)
	mux.HandleFunc("/buyers/import", rh.ImportBuyers).Methods(http.MethodPost)
	mux.HandleFunc("/buyers/export", rh.ExportBuyers).Methods(http.MethodGet)
	mux.HandleFunc("/buyers/{id}", rh.GetBuyer).Methods(http.MethodGet)
	mux.Handle("/buyers/{id}", limit(http.HandlerFunc(rh.UpdateBuyer))).Methods(http.MethodPut)
	mux.HandleFunc("/buyers/{id}", rh.DeleteBuyer).Methods(http.MethodDelete)
	mux.Handle("/buyers/{id}/status", limit(http.HandlerFunc(rh.UpdateBuyerStatus))).Methods(http.MethodPatch)
	mux.HandleFunc("/buyers/{id}/history", rh.BuyerHistory).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware(deps.Metrics))
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Login handler
// @Summary Login user
// @Description Demo login with email and password. The JWT is returned and also set as the auth-token cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errorResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookie,
		Value:    res.Token,
		Path:     "/",
		MaxAge:   int(s.Config.Auth.SessionExpTime.Seconds()),
		HttpOnly: true,
		Secure:   s.Config.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Drops the session behind the current token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} successResponse
// @Failure 401 {object} errorResponse
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jti, ok := utilsContext.GetTokenID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.Logout(ctx, jti); err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeSuccess(w, nil)
}

// RefreshTags handler
// @Summary Rebuild the tag suggestion cache
// @Description Internal endpoint called by the buyer event consumer
// @Tags Internal
// @Produce json
// @Success 200 {object} model.TagListResponse
// @Failure 403 {string} string
// @Router /internal/v1/tags/refresh [post]
func (s *RestHandler) RefreshTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.BuyerApp.RefreshTags(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.TagListResponse{Tags: tags})
}
