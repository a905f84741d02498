package main

import (
	"context"
	"flag"
	"math/rand"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	buyerapp "github.com/muhammadheryan/buyer-leads/application/buyer"
	"github.com/muhammadheryan/buyer-leads/cmd/config"
	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
	buyerRepo "github.com/muhammadheryan/buyer-leads/repository/buyer"
	historyRepo "github.com/muhammadheryan/buyer-leads/repository/history"
	redisRepo "github.com/muhammadheryan/buyer-leads/repository/redis"
	txRepo "github.com/muhammadheryan/buyer-leads/repository/tx"
	userRepo "github.com/muhammadheryan/buyer-leads/repository/user"
	"github.com/muhammadheryan/buyer-leads/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// demoUsers are the two accounts the demo login accepts.
var demoUsers = []model.UserEntity{
	{ID: "admin-1", Name: "Demo Admin", Email: "admin@example.com", Role: constant.RoleAdmin},
	{ID: "agent-1", Name: "Demo Agent", Email: "agent@example.com", Role: constant.RoleAgent},
}

func main() {
	count := flag.Int("buyers", 50, "number of sample buyers to create")
	password := flag.String("password", "password123", "password for the demo users")
	seed := flag.Int64("seed", 1, "random seed for sample data")
	flag.Parse()

	cfg := config.Load()
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	ctx := context.Background()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("err hash password", zap.Error(err))
	}

	users := userRepo.NewUserRepository(db)
	for i := range demoUsers {
		u := demoUsers[i]
		u.PasswordHash = string(hash)
		if err := users.Upsert(ctx, &u); err != nil {
			logger.Fatal("err upsert user", zap.String("id", u.ID), zap.Error(err))
		}
		logger.Info("demo user ready", zap.String("id", u.ID), zap.String("email", u.Email))
	}

	// no cache or broker: sample buyers go through the same validated pipeline
	app := buyerapp.NewBuyerApp(cfg, txRepo.NewTxRepository(db), buyerRepo.NewBuyerRepository(db), historyRepo.NewHistoryRepository(db), redisRepo.NewRepository(nil), nil, nil)

	r := rand.New(rand.NewSource(*seed))
	created := 0
	for i := 0; i < *count; i++ {
		owner := demoUsers[r.Intn(len(demoUsers))]
		req := sampleBuyer(r)
		if _, err := app.Create(ctx, model.Actor{ID: owner.ID, Role: owner.Role}, &req); err != nil {
			logger.Error("err create sample buyer", zap.String("name", req.FullName), zap.Error(err))
			continue
		}
		created++
	}
	logger.Info("seed complete", zap.Int("buyers", created))
}
