package data

import (
	"context"
	"errors"
	"fmt"

	"collabservice/cmd/collab-service/internal/domain"

	"gorm.io/gorm"
)

// CosmeticCollabDO 化妆品联名数据对象
type CosmeticCollabDO struct {
	ID            int64       `gorm:"primaryKey;autoIncrement"`
	MakeupBrand   string      `gorm:"column:makeup_brand;size:50;not null"`
	Videogame     string      `gorm:"column:videogame;size:50;not null"`
	CollabDate    domain.Date `gorm:"column:collaboration_date;type:date;not null"`
	CollabType    string      `gorm:"column:collaboration_type;size:100;not null"`
	SalesIncrease string      `gorm:"column:makeup_sales_increase;size:10;not null"`
}

// TableName 指定表名
func (CosmeticCollabDO) TableName() string {
	return "cosmetic_collabs"
}

// CosmeticCollabRepository 化妆品联名仓储的 PostgreSQL 实现
// ID 由数据库自增分配，删除后不复用；搜索为不区分大小写的子串匹配
type CosmeticCollabRepository struct {
	db *gorm.DB
}

// NewCosmeticCollabRepository 创建化妆品联名仓储
func NewCosmeticCollabRepository(db *gorm.DB) domain.CosmeticCollabRepository {
	return &CosmeticCollabRepository{db: db}
}

// ListAll 返回所有记录
func (r *CosmeticCollabRepository) ListAll(ctx context.Context) ([]*domain.CosmeticCollab, error) {
	var dos []CosmeticCollabDO
	if err := r.db.WithContext(ctx).Find(&dos).Error; err != nil {
		return nil, storeErr(err)
	}
	return cosmeticsToDomain(dos), nil
}

// GetByID 按 ID 查找
func (r *CosmeticCollabRepository) GetByID(ctx context.Context, id int64) (*domain.CosmeticCollab, error) {
	var do CosmeticCollabDO
	if err := r.db.WithContext(ctx).First(&do, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCosmeticCollabNotFound
		}
		return nil, storeErr(err)
	}
	return do.toDomain(), nil
}

// Create 插入记录，ID 由数据库分配
func (r *CosmeticCollabRepository) Create(ctx context.Context, collab *domain.CosmeticCollab) (*domain.CosmeticCollab, error) {
	do := toCosmeticDO(collab)
	if err := r.db.WithContext(ctx).Create(do).Error; err != nil {
		return nil, storeErr(err)
	}
	return do.toDomain(), nil
}

// Update 读取记录、应用补丁后保存
func (r *CosmeticCollabRepository) Update(ctx context.Context, id int64, patch *domain.CosmeticCollabPatch) (*domain.CosmeticCollab, error) {
	var do CosmeticCollabDO
	if err := r.db.WithContext(ctx).First(&do, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCosmeticCollabNotFound
		}
		return nil, storeErr(err)
	}

	collab := do.toDomain()
	collab.Apply(patch)

	if err := r.db.WithContext(ctx).Save(toCosmeticDO(collab)).Error; err != nil {
		return nil, storeErr(err)
	}
	return collab, nil
}

// Delete 删除记录并返回其数据
func (r *CosmeticCollabRepository) Delete(ctx context.Context, id int64) (*domain.CosmeticCollab, error) {
	var do CosmeticCollabDO
	if err := r.db.WithContext(ctx).First(&do, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCosmeticCollabNotFound
		}
		return nil, storeErr(err)
	}

	if err := r.db.WithContext(ctx).Delete(&CosmeticCollabDO{}, id).Error; err != nil {
		return nil, storeErr(err)
	}
	return do.toDomain(), nil
}

// SearchByBrand 按品牌子串搜索，不区分大小写
func (r *CosmeticCollabRepository) SearchByBrand(ctx context.Context, brand string) ([]*domain.CosmeticCollab, error) {
	var dos []CosmeticCollabDO
	if err := r.db.WithContext(ctx).
		Where("makeup_brand ILIKE ?", "%"+brand+"%").
		Find(&dos).Error; err != nil {
		return nil, storeErr(err)
	}
	return cosmeticsToDomain(dos), nil
}

// ListByDateDesc 按联名日期降序返回，日期相同按插入顺序
func (r *CosmeticCollabRepository) ListByDateDesc(ctx context.Context) ([]*domain.CosmeticCollab, error) {
	var dos []CosmeticCollabDO
	if err := r.db.WithContext(ctx).
		Order("collaboration_date DESC, id ASC").
		Find(&dos).Error; err != nil {
		return nil, storeErr(err)
	}
	return cosmeticsToDomain(dos), nil
}

func (do *CosmeticCollabDO) toDomain() *domain.CosmeticCollab {
	return &domain.CosmeticCollab{
		ID:            do.ID,
		MakeupBrand:   do.MakeupBrand,
		Videogame:     do.Videogame,
		CollabDate:    do.CollabDate,
		CollabType:    do.CollabType,
		SalesIncrease: do.SalesIncrease,
	}
}

func toCosmeticDO(c *domain.CosmeticCollab) *CosmeticCollabDO {
	return &CosmeticCollabDO{
		ID:            c.ID,
		MakeupBrand:   c.MakeupBrand,
		Videogame:     c.Videogame,
		CollabDate:    c.CollabDate,
		CollabType:    c.CollabType,
		SalesIncrease: c.SalesIncrease,
	}
}

func cosmeticsToDomain(dos []CosmeticCollabDO) []*domain.CosmeticCollab {
	collabs := make([]*domain.CosmeticCollab, len(dos))
	for i := range dos {
		collabs[i] = dos[i].toDomain()
	}
	return collabs
}

// storeErr 将后端访问失败标记为存储不可用
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
