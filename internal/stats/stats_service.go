package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stock-m/internal/company"
	"stock-m/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	statsKeyPrefix = "stats:"
	statsCacheTTL  = 5 * time.Minute
)

func StatsCacheKey(companyID, role, userID string) string {
	return fmt.Sprintf("%s%s:%s:%s", statsKeyPrefix, companyID, role, userID)
}

//go:generate mockgen -source=stats_service.go -destination=mock/stats_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, companyID, userID, role string) (StatsResponse, error)
}

type service struct {
	repo      Repository
	companies company.Repository
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(repo Repository, companies company.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("stats.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		repo:      repo,
		companies: companies,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Get(ctx context.Context, companyID, userID, role string) (StatsResponse, error) {
	cacheKey := StatsCacheKey(companyID, role, userID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp StatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.compute(ctx, companyID, userID, role)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, statsCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return StatsResponse{}, err
	}

	return v.(StatsResponse), nil
}

func (s *service) compute(ctx context.Context, companyID, userID, role string) (StatsResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return StatsResponse{}, err
	}

	comp, err := s.companies.GetByID(ctx, companyUUID)
	if err != nil {
		return StatsResponse{}, err
	}

	now := time.Now()
	var resp StatsResponse

	if resp.TotalProd, err = s.repo.CountProducts(ctx, companyID); err != nil {
		s.logger.Error("count products failed", zap.Error(err))
		return StatsResponse{}, err
	}
	if resp.LowStock, err = s.repo.CountLowStock(ctx, companyID, comp.LowStockLevel); err != nil {
		s.logger.Error("count low stock failed", zap.Error(err))
		return StatsResponse{}, err
	}
	if resp.TotalExpired, err = s.repo.CountExpired(ctx, companyID, now); err != nil {
		s.logger.Error("count expired failed", zap.Error(err))
		return StatsResponse{}, err
	}

	monthAgo := now.AddDate(0, -1, 0)
	resp.TotalRevenue, resp.TotalSales, err = s.repo.RevenueSince(ctx, companyID, userID, role == user.RoleAdmin, monthAgo)
	if err != nil {
		s.logger.Error("revenue query failed", zap.Error(err))
		return StatsResponse{}, err
	}

	return resp, nil
}
