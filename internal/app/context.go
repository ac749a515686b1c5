package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/oggyb/golf-buddy/internal/cache"
	"github.com/oggyb/golf-buddy/internal/config"
	svcErr "github.com/oggyb/golf-buddy/internal/errors"
	"github.com/oggyb/golf-buddy/internal/logger"
	"github.com/oggyb/golf-buddy/internal/repository"
)

// AppContext holds shared dependencies (DB, Redis, Logger, etc.)
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	Store      *repository.Store
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Validator  *validator.Validate
}

// New creates a new AppContext
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger) *AppContext {
	return &AppContext{
		Config:     cfg,
		DB:         db,
		Store:      repository.NewStore(db),
		RedisCache: rdb,
		Logger:     logger,
		Validator:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct-tag validation and reports failures as InvalidArgument.
func (a *AppContext) Validate(v any) error {
	err := a.Validator.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return svcErr.Wrap(svcErr.InvalidArgument("invalid request"), err)
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
		}
	}
	return svcErr.InvalidArgument(strings.Join(parts, "; "))
}

// Fail logs a failed RPC with the request-scoped logger and converts err to
// a gRPC status. Expected domain outcomes log at Warn, everything else at Error.
func (a *AppContext) Fail(ctx context.Context, op string, err error) error {
	log := logger.FromContext(ctx, a.Logger)
	if svcErr.IsBusiness(err) {
		log.Warn(op+" rejected", "kind", svcErr.KindOf(err).String(), "err", err)
	} else {
		log.Error(op+" failed", "err", err)
	}
	return svcErr.Map(err)
}
