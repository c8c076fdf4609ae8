package services

import (
	"context"

	"github.com/cellarhub/winestore/internal/models"
	"github.com/cellarhub/winestore/internal/store"
)

type BottleService struct {
	gateway *store.Gateway
}

func NewBottleService(g *store.Gateway) *BottleService {
	return &BottleService{gateway: g}
}

type BottleListParams struct {
	Term    string
	Region  string
	MinYear int
	MaxYear int // 0 means no upper limit
	Order   store.Order
}

func (s *BottleService) List(ctx context.Context, params BottleListParams) ([]models.BottleRow, error) {
	return s.gateway.List(ctx, s.buildListOptions(params)...)
}

func (s *BottleService) buildListOptions(params BottleListParams) []store.ListOption {
	var opts []store.ListOption

	if params.Term != "" {
		opts = append(opts, store.WithTerm(params.Term))
	}
	if params.Region != "" {
		opts = append(opts, store.ByRegion(params.Region))
	}
	if params.MinYear > 0 || params.MaxYear > 0 {
		opts = append(opts, store.ByVintageRange(params.MinYear, params.MaxYear))
	}
	opts = append(opts, store.WithOrder(params.Order))

	return opts
}

func (s *BottleService) Insert(ctx context.Context, fields models.BottleFields) (int64, error) {
	return s.gateway.Insert(ctx, fields)
}

func (s *BottleService) Update(ctx context.Context, id int64, fields models.BottleFields) error {
	return s.gateway.Update(ctx, id, fields)
}

func (s *BottleService) Delete(ctx context.Context, id int64) error {
	return s.gateway.Delete(ctx, id)
}
