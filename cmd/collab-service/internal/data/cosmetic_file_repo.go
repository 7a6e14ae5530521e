package data

import (
	"context"
	"encoding/csv"
	"os"
	"sort"
	"strconv"
	"strings"

	"collabservice/cmd/collab-service/internal/domain"
)

// cosmeticCSVHeader CSV 文件首行，列顺序固定
var cosmeticCSVHeader = []string{
	"id", "makeup_brand", "videogame",
	"collaboration_date", "collaboration_type", "makeup_sales_increase",
}

// CosmeticCollabFileRepository 化妆品联名仓储的 CSV 文件实现
//
// 整个记录集保存在一个 UTF-8 逗号分隔文件中，每行一条记录。
// 每次读取都重新解析整个文件；创建追加一行，更新和删除从内存重写整个文件。
// 没有任何并发控制：读-改-写过程中两个并发写入者会互相覆盖，
// 因此只能在单进程、单写入者的部署下使用。
//
// 与数据库后端的已记录差异：
//   - 搜索为不区分大小写的精确匹配，而非子串匹配
//   - 新 ID 取 max(现有 ID)+1，删除最大 ID 的记录后该 ID 会被下次创建复用
type CosmeticCollabFileRepository struct {
	path string
}

// NewCosmeticCollabFileRepository 创建 CSV 文件仓储
func NewCosmeticCollabFileRepository(path string) domain.CosmeticCollabRepository {
	return &CosmeticCollabFileRepository{path: path}
}

// ListAll 解析整个文件并返回所有记录
func (r *CosmeticCollabFileRepository) ListAll(ctx context.Context) ([]*domain.CosmeticCollab, error) {
	return r.readAll()
}

// GetByID 按 ID 精确查找
func (r *CosmeticCollabFileRepository) GetByID(ctx context.Context, id int64) (*domain.CosmeticCollab, error) {
	collabs, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for _, c := range collabs {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrCosmeticCollabNotFound
}

// Create 分配 max(现有ID)+1 并追加一行
// 文件缺失或不可读时从 1 开始编号
func (r *CosmeticCollabFileRepository) Create(ctx context.Context, collab *domain.CosmeticCollab) (*domain.CosmeticCollab, error) {
	existing, err := r.readAll()
	if err != nil {
		existing = nil
	}

	var maxID int64
	for _, c := range existing {
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	created := *collab
	created.ID = maxID + 1

	if err := r.appendRow(&created); err != nil {
		return nil, storeErr(err)
	}
	return &created, nil
}

// Update 读入全部记录、应用补丁后重写整个文件
func (r *CosmeticCollabFileRepository) Update(ctx context.Context, id int64, patch *domain.CosmeticCollabPatch) (*domain.CosmeticCollab, error) {
	collabs, err := r.readAll()
	if err != nil {
		return nil, err
	}

	for _, c := range collabs {
		if c.ID == id {
			c.Apply(patch)
			if err := r.writeAll(collabs); err != nil {
				return nil, storeErr(err)
			}
			return c, nil
		}
	}
	return nil, domain.ErrCosmeticCollabNotFound
}

// Delete 读入全部记录、移除目标后重写整个文件
func (r *CosmeticCollabFileRepository) Delete(ctx context.Context, id int64) (*domain.CosmeticCollab, error) {
	collabs, err := r.readAll()
	if err != nil {
		return nil, err
	}

	for i, c := range collabs {
		if c.ID == id {
			remaining := append(collabs[:i:i], collabs[i+1:]...)
			if err := r.writeAll(remaining); err != nil {
				return nil, storeErr(err)
			}
			return c, nil
		}
	}
	return nil, domain.ErrCosmeticCollabNotFound
}

// SearchByBrand 按品牌精确匹配，不区分大小写
func (r *CosmeticCollabFileRepository) SearchByBrand(ctx context.Context, brand string) ([]*domain.CosmeticCollab, error) {
	collabs, err := r.readAll()
	if err != nil {
		return nil, err
	}

	var matches []*domain.CosmeticCollab
	for _, c := range collabs {
		if strings.EqualFold(c.MakeupBrand, brand) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// ListByDateDesc 内存中稳定排序，日期降序
func (r *CosmeticCollabFileRepository) ListByDateDesc(ctx context.Context) ([]*domain.CosmeticCollab, error) {
	collabs, err := r.readAll()
	if err != nil {
		return nil, err
	}

	sorted := make([]*domain.CosmeticCollab, len(collabs))
	copy(sorted, collabs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CollabDate.After(sorted[j].CollabDate)
	})
	return sorted, nil
}

// readAll 从头解析整个文件，文件缺失视为空存储
func (r *CosmeticCollabFileRepository) readAll() ([]*domain.CosmeticCollab, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, storeErr(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// 首行为表头
	collabs := make([]*domain.CosmeticCollab, 0, len(rows)-1)
	for _, row := range rows[1:] {
		c, err := parseCosmeticRow(row)
		if err != nil {
			return nil, storeErr(err)
		}
		collabs = append(collabs, c)
	}
	return collabs, nil
}

// appendRow 追加一行，文件为空或不存在时先写表头
func (r *CosmeticCollabFileRepository) appendRow(c *domain.CosmeticCollab) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(cosmeticCSVHeader); err != nil {
			return err
		}
	}
	if err := w.Write(cosmeticRow(c)); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// writeAll 用内存中的记录集重写整个文件（含表头）
func (r *CosmeticCollabFileRepository) writeAll(collabs []*domain.CosmeticCollab) error {
	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cosmeticCSVHeader); err != nil {
		return err
	}
	for _, c := range collabs {
		if err := w.Write(cosmeticRow(c)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func cosmeticRow(c *domain.CosmeticCollab) []string {
	return []string{
		strconv.FormatInt(c.ID, 10),
		c.MakeupBrand,
		c.Videogame,
		c.CollabDate.String(),
		c.CollabType,
		c.SalesIncrease,
	}
}

func parseCosmeticRow(row []string) (*domain.CosmeticCollab, error) {
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(row[3])
	if err != nil {
		return nil, err
	}
	return &domain.CosmeticCollab{
		ID:            id,
		MakeupBrand:   row[1],
		Videogame:     row[2],
		CollabDate:    date,
		CollabType:    row[4],
		SalesIncrease: row[5],
	}, nil
}
