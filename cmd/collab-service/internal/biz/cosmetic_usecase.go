package biz

import (
	"context"

	"collabservice/cmd/collab-service/internal/domain"

	"go.uber.org/zap"
)

// CosmeticUsecase 化妆品联名用例
// 负责载荷校验，仓储永远接触不到非法载荷
type CosmeticUsecase struct {
	repo   domain.CosmeticCollabRepository
	logger *zap.Logger
}

// NewCosmeticUsecase 创建化妆品联名用例
func NewCosmeticUsecase(repo domain.CosmeticCollabRepository, logger *zap.Logger) *CosmeticUsecase {
	return &CosmeticUsecase{
		repo:   repo,
		logger: logger,
	}
}

// ListCollabs 返回所有联名记录
func (uc *CosmeticUsecase) ListCollabs(ctx context.Context) ([]*domain.CosmeticCollab, error) {
	return uc.repo.ListAll(ctx)
}

// GetCollab 按 ID 获取联名记录
func (uc *CosmeticUsecase) GetCollab(ctx context.Context, id int64) (*domain.CosmeticCollab, error) {
	return uc.repo.GetByID(ctx, id)
}

// CreateCollab 校验载荷并创建联名记录
func (uc *CosmeticUsecase) CreateCollab(ctx context.Context, payload *domain.CosmeticCollabCreate) (*domain.CosmeticCollab, error) {
	collab, err := payload.Validate()
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.Create(ctx, collab)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("cosmetic collaboration created",
		zap.Int64("id", created.ID),
		zap.String("makeup_brand", created.MakeupBrand),
	)
	return created, nil
}

// UpdateCollab 校验部分更新载荷并应用
// 载荷中空白的字段保持原值
func (uc *CosmeticUsecase) UpdateCollab(ctx context.Context, id int64, payload *domain.CosmeticCollabUpdate) (*domain.CosmeticCollab, error) {
	patch, err := payload.Validate()
	if err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, patch)
}

// DeleteCollab 删除联名记录并返回其数据
func (uc *CosmeticUsecase) DeleteCollab(ctx context.Context, id int64) (*domain.CosmeticCollab, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("cosmetic collaboration deleted", zap.Int64("id", id))
	return deleted, nil
}

// SearchByBrand 按化妆品品牌搜索
func (uc *CosmeticUsecase) SearchByBrand(ctx context.Context, brand string) ([]*domain.CosmeticCollab, error) {
	return uc.repo.SearchByBrand(ctx, brand)
}

// ListByRecentDate 按联名日期降序返回
func (uc *CosmeticUsecase) ListByRecentDate(ctx context.Context) ([]*domain.CosmeticCollab, error) {
	return uc.repo.ListByDateDesc(ctx)
}
