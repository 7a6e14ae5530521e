package biz

import (
	"context"

	"collabservice/cmd/collab-service/internal/domain"

	"go.uber.org/zap"
)

// VideogameUsecase 游戏联名用例
type VideogameUsecase struct {
	repo   domain.VideogameCollabRepository
	logger *zap.Logger
}

// NewVideogameUsecase 创建游戏联名用例
func NewVideogameUsecase(repo domain.VideogameCollabRepository, logger *zap.Logger) *VideogameUsecase {
	return &VideogameUsecase{
		repo:   repo,
		logger: logger,
	}
}

// ListCollabs 返回所有联名记录
func (uc *VideogameUsecase) ListCollabs(ctx context.Context) ([]*domain.VideogameCollab, error) {
	return uc.repo.ListAll(ctx)
}

// GetCollab 按 ID 获取联名记录
func (uc *VideogameUsecase) GetCollab(ctx context.Context, id int64) (*domain.VideogameCollab, error) {
	return uc.repo.GetByID(ctx, id)
}

// CreateCollab 校验载荷并创建联名记录
func (uc *VideogameUsecase) CreateCollab(ctx context.Context, payload *domain.VideogameCollabCreate) (*domain.VideogameCollab, error) {
	collab, err := payload.Validate()
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.Create(ctx, collab)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("videogame collaboration created",
		zap.Int64("id", created.ID),
		zap.String("videogame", created.Videogame),
	)
	return created, nil
}

// UpdateCollab 校验部分更新载荷并应用
func (uc *VideogameUsecase) UpdateCollab(ctx context.Context, id int64, payload *domain.VideogameCollabUpdate) (*domain.VideogameCollab, error) {
	patch, err := payload.Validate()
	if err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, patch)
}

// DeleteCollab 删除联名记录并返回其数据
func (uc *VideogameUsecase) DeleteCollab(ctx context.Context, id int64) (*domain.VideogameCollab, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("videogame collaboration deleted", zap.Int64("id", id))
	return deleted, nil
}

// SearchByName 按游戏名称搜索
func (uc *VideogameUsecase) SearchByName(ctx context.Context, name string) ([]*domain.VideogameCollab, error) {
	return uc.repo.SearchByName(ctx, name)
}

// ListByRecentDate 按联名日期降序返回
func (uc *VideogameUsecase) ListByRecentDate(ctx context.Context) ([]*domain.VideogameCollab, error) {
	return uc.repo.ListByDateDesc(ctx)
}
