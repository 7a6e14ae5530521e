package domain

import "context"

// CosmeticCollabRepository 化妆品联名仓储接口
// 两个后端实现（PostgreSQL 与 CSV 文件）遵循同一契约，
// 已记录的差异：搜索语义（子串包含 vs 精确匹配）与 ID 分配策略
type CosmeticCollabRepository interface {
	// ListAll 返回所有记录，不保证顺序
	ListAll(ctx context.Context) ([]*CosmeticCollab, error)

	// GetByID 按 ID 精确查找，未找到返回 ErrCosmeticCollabNotFound
	GetByID(ctx context.Context, id int64) (*CosmeticCollab, error)

	// Create 分配新 ID 并持久化，返回带 ID 的记录
	Create(ctx context.Context, collab *CosmeticCollab) (*CosmeticCollab, error)

	// Update 按补丁逐字段覆盖已有记录，不存在时返回 ErrCosmeticCollabNotFound，
	// 绝不因更新而创建记录
	Update(ctx context.Context, id int64, patch *CosmeticCollabPatch) (*CosmeticCollab, error)

	// Delete 删除记录并返回其数据，未找到返回 ErrCosmeticCollabNotFound
	Delete(ctx context.Context, id int64) (*CosmeticCollab, error)

	// SearchByBrand 按化妆品品牌搜索（不区分大小写）
	SearchByBrand(ctx context.Context, brand string) ([]*CosmeticCollab, error)

	// ListByDateDesc 按联名日期降序返回所有记录，日期相同保持原相对顺序
	ListByDateDesc(ctx context.Context) ([]*CosmeticCollab, error)
}

// VideogameCollabRepository 游戏联名仓储接口
type VideogameCollabRepository interface {
	ListAll(ctx context.Context) ([]*VideogameCollab, error)
	GetByID(ctx context.Context, id int64) (*VideogameCollab, error)
	Create(ctx context.Context, collab *VideogameCollab) (*VideogameCollab, error)
	Update(ctx context.Context, id int64, patch *VideogameCollabPatch) (*VideogameCollab, error)
	Delete(ctx context.Context, id int64) (*VideogameCollab, error)

	// SearchByName 按游戏名称搜索（不区分大小写）
	SearchByName(ctx context.Context, name string) ([]*VideogameCollab, error)

	ListByDateDesc(ctx context.Context) ([]*VideogameCollab, error)
}
