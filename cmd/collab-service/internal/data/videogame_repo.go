package data

import (
	"context"
	"errors"

	"collabservice/cmd/collab-service/internal/domain"

	"gorm.io/gorm"
)

// VideogameCollabDO 游戏联名数据对象
type VideogameCollabDO struct {
	ID            int64       `gorm:"primaryKey;autoIncrement"`
	Videogame     string      `gorm:"column:videogame;size:50;not null"`
	MakeupBrand   string      `gorm:"column:makeup_brand;size:50;not null"`
	CollabDate    domain.Date `gorm:"column:collaboration_date;type:date;not null"`
	SalesIncrease string      `gorm:"column:videogame_sales_increase;size:10;not null"`
}

// TableName 指定表名
func (VideogameCollabDO) TableName() string {
	return "videogame_collabs"
}

// VideogameCollabRepository 游戏联名仓储的 PostgreSQL 实现
type VideogameCollabRepository struct {
	db *gorm.DB
}

// NewVideogameCollabRepository 创建游戏联名仓储
func NewVideogameCollabRepository(db *gorm.DB) domain.VideogameCollabRepository {
	return &VideogameCollabRepository{db: db}
}

// ListAll 返回所有记录
func (r *VideogameCollabRepository) ListAll(ctx context.Context) ([]*domain.VideogameCollab, error) {
	var dos []VideogameCollabDO
	if err := r.db.WithContext(ctx).Find(&dos).Error; err != nil {
		return nil, storeErr(err)
	}
	return videogamesToDomain(dos), nil
}

// GetByID 按 ID 查找
func (r *VideogameCollabRepository) GetByID(ctx context.Context, id int64) (*domain.VideogameCollab, error) {
	var do VideogameCollabDO
	if err := r.db.WithContext(ctx).First(&do, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVideogameCollabNotFound
		}
		return nil, storeErr(err)
	}
	return do.toDomain(), nil
}

// Create 插入记录，ID 由数据库分配
func (r *VideogameCollabRepository) Create(ctx context.Context, collab *domain.VideogameCollab) (*domain.VideogameCollab, error) {
	do := toVideogameDO(collab)
	if err := r.db.WithContext(ctx).Create(do).Error; err != nil {
		return nil, storeErr(err)
	}
	return do.toDomain(), nil
}

// Update 读取记录、应用补丁后保存
func (r *VideogameCollabRepository) Update(ctx context.Context, id int64, patch *domain.VideogameCollabPatch) (*domain.VideogameCollab, error) {
	var do VideogameCollabDO
	if err := r.db.WithContext(ctx).First(&do, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVideogameCollabNotFound
		}
		return nil, storeErr(err)
	}

	collab := do.toDomain()
	collab.Apply(patch)

	if err := r.db.WithContext(ctx).Save(toVideogameDO(collab)).Error; err != nil {
		return nil, storeErr(err)
	}
	return collab, nil
}

// Delete 删除记录并返回其数据
func (r *VideogameCollabRepository) Delete(ctx context.Context, id int64) (*domain.VideogameCollab, error) {
	var do VideogameCollabDO
	if err := r.db.WithContext(ctx).First(&do, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVideogameCollabNotFound
		}
		return nil, storeErr(err)
	}

	if err := r.db.WithContext(ctx).Delete(&VideogameCollabDO{}, id).Error; err != nil {
		return nil, storeErr(err)
	}
	return do.toDomain(), nil
}

// SearchByName 按游戏名子串搜索，不区分大小写
func (r *VideogameCollabRepository) SearchByName(ctx context.Context, name string) ([]*domain.VideogameCollab, error) {
	var dos []VideogameCollabDO
	if err := r.db.WithContext(ctx).
		Where("videogame ILIKE ?", "%"+name+"%").
		Find(&dos).Error; err != nil {
		return nil, storeErr(err)
	}
	return videogamesToDomain(dos), nil
}

// ListByDateDesc 按联名日期降序返回，日期相同按插入顺序
func (r *VideogameCollabRepository) ListByDateDesc(ctx context.Context) ([]*domain.VideogameCollab, error) {
	var dos []VideogameCollabDO
	if err := r.db.WithContext(ctx).
		Order("collaboration_date DESC, id ASC").
		Find(&dos).Error; err != nil {
		return nil, storeErr(err)
	}
	return videogamesToDomain(dos), nil
}

func (do *VideogameCollabDO) toDomain() *domain.VideogameCollab {
	return &domain.VideogameCollab{
		ID:            do.ID,
		Videogame:     do.Videogame,
		MakeupBrand:   do.MakeupBrand,
		CollabDate:    do.CollabDate,
		SalesIncrease: do.SalesIncrease,
	}
}

func toVideogameDO(v *domain.VideogameCollab) *VideogameCollabDO {
	return &VideogameCollabDO{
		ID:            v.ID,
		Videogame:     v.Videogame,
		MakeupBrand:   v.MakeupBrand,
		CollabDate:    v.CollabDate,
		SalesIncrease: v.SalesIncrease,
	}
}

func videogamesToDomain(dos []VideogameCollabDO) []*domain.VideogameCollab {
	collabs := make([]*domain.VideogameCollab, len(dos))
	for i := range dos {
		collabs[i] = dos[i].toDomain()
	}
	return collabs
}
