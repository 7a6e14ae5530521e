package service

import (
	"context"

	"collabservice/cmd/collab-service/internal/biz"
	"collabservice/cmd/collab-service/internal/domain"
)

// CollabService 联名目录服务实现
// HTTP 层通过它访问两种资源的用例
type CollabService struct {
	cosmeticUc  *biz.CosmeticUsecase
	videogameUc *biz.VideogameUsecase
}

// NewCollabService 创建联名目录服务
func NewCollabService(cosmeticUc *biz.CosmeticUsecase, videogameUc *biz.VideogameUsecase) *CollabService {
	return &CollabService{
		cosmeticUc:  cosmeticUc,
		videogameUc: videogameUc,
	}
}

// ListCosmetics 返回所有化妆品联名
func (s *CollabService) ListCosmetics(ctx context.Context) ([]*domain.CosmeticCollab, error) {
	return s.cosmeticUc.ListCollabs(ctx)
}

// GetCosmetic 按 ID 获取化妆品联名
func (s *CollabService) GetCosmetic(ctx context.Context, id int64) (*domain.CosmeticCollab, error) {
	return s.cosmeticUc.GetCollab(ctx, id)
}

// CreateCosmetic 创建化妆品联名
func (s *CollabService) CreateCosmetic(ctx context.Context, payload *domain.CosmeticCollabCreate) (*domain.CosmeticCollab, error) {
	return s.cosmeticUc.CreateCollab(ctx, payload)
}

// UpdateCosmetic 部分更新化妆品联名
func (s *CollabService) UpdateCosmetic(ctx context.Context, id int64, payload *domain.CosmeticCollabUpdate) (*domain.CosmeticCollab, error) {
	return s.cosmeticUc.UpdateCollab(ctx, id, payload)
}

// DeleteCosmetic 删除化妆品联名并返回其数据
func (s *CollabService) DeleteCosmetic(ctx context.Context, id int64) (*domain.CosmeticCollab, error) {
	return s.cosmeticUc.DeleteCollab(ctx, id)
}

// SearchCosmeticsByBrand 按化妆品品牌搜索
func (s *CollabService) SearchCosmeticsByBrand(ctx context.Context, brand string) ([]*domain.CosmeticCollab, error) {
	return s.cosmeticUc.SearchByBrand(ctx, brand)
}

// ListCosmeticsByRecentDate 化妆品联名按日期降序
func (s *CollabService) ListCosmeticsByRecentDate(ctx context.Context) ([]*domain.CosmeticCollab, error) {
	return s.cosmeticUc.ListByRecentDate(ctx)
}

// ListVideogames 返回所有游戏联名
func (s *CollabService) ListVideogames(ctx context.Context) ([]*domain.VideogameCollab, error) {
	return s.videogameUc.ListCollabs(ctx)
}

// GetVideogame 按 ID 获取游戏联名
func (s *CollabService) GetVideogame(ctx context.Context, id int64) (*domain.VideogameCollab, error) {
	return s.videogameUc.GetCollab(ctx, id)
}

// CreateVideogame 创建游戏联名
func (s *CollabService) CreateVideogame(ctx context.Context, payload *domain.VideogameCollabCreate) (*domain.VideogameCollab, error) {
	return s.videogameUc.CreateCollab(ctx, payload)
}

// UpdateVideogame 部分更新游戏联名
func (s *CollabService) UpdateVideogame(ctx context.Context, id int64, payload *domain.VideogameCollabUpdate) (*domain.VideogameCollab, error) {
	return s.videogameUc.UpdateCollab(ctx, id, payload)
}

// DeleteVideogame 删除游戏联名并返回其数据
func (s *CollabService) DeleteVideogame(ctx context.Context, id int64) (*domain.VideogameCollab, error) {
	return s.videogameUc.DeleteCollab(ctx, id)
}

// SearchVideogamesByName 按游戏名称搜索
func (s *CollabService) SearchVideogamesByName(ctx context.Context, name string) ([]*domain.VideogameCollab, error) {
	return s.videogameUc.SearchByName(ctx, name)
}

// ListVideogamesByRecentDate 游戏联名按日期降序
func (s *CollabService) ListVideogamesByRecentDate(ctx context.Context) ([]*domain.VideogameCollab, error) {
	return s.videogameUc.ListByRecentDate(ctx)
}
