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

// videogameCSVHeader CSV 文件首行，列顺序固定
var videogameCSVHeader = []string{
	"id", "videogame", "makeup_brand",
	"collaboration_date", "videogame_sales_increase",
}

// VideogameCollabFileRepository 游戏联名仓储的 CSV 文件实现
// 语义与 CosmeticCollabFileRepository 相同：全文件读取、变更时整体重写、
// 无并发控制（仅限单写入者部署）、精确匹配搜索、ID 复用
type VideogameCollabFileRepository struct {
	path string
}

// NewVideogameCollabFileRepository 创建 CSV 文件仓储
func NewVideogameCollabFileRepository(path string) domain.VideogameCollabRepository {
	return &VideogameCollabFileRepository{path: path}
}

// ListAll 解析整个文件并返回所有记录
func (r *VideogameCollabFileRepository) ListAll(ctx context.Context) ([]*domain.VideogameCollab, error) {
	return r.readAll()
}

// GetByID 按 ID 精确查找
func (r *VideogameCollabFileRepository) GetByID(ctx context.Context, id int64) (*domain.VideogameCollab, error) {
	collabs, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for _, c := range collabs {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrVideogameCollabNotFound
}

// Create 分配 max(现有ID)+1 并追加一行
func (r *VideogameCollabFileRepository) Create(ctx context.Context, collab *domain.VideogameCollab) (*domain.VideogameCollab, error) {
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
func (r *VideogameCollabFileRepository) Update(ctx context.Context, id int64, patch *domain.VideogameCollabPatch) (*domain.VideogameCollab, error) {
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
	return nil, domain.ErrVideogameCollabNotFound
}

// Delete 读入全部记录、移除目标后重写整个文件
func (r *VideogameCollabFileRepository) Delete(ctx context.Context, id int64) (*domain.VideogameCollab, error) {
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
	return nil, domain.ErrVideogameCollabNotFound
}

// SearchByName 按游戏名精确匹配，不区分大小写
func (r *VideogameCollabFileRepository) SearchByName(ctx context.Context, name string) ([]*domain.VideogameCollab, error) {
	collabs, err := r.readAll()
	if err != nil {
		return nil, err
	}

	var matches []*domain.VideogameCollab
	for _, c := range collabs {
		if strings.EqualFold(c.Videogame, name) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// ListByDateDesc 内存中稳定排序，日期降序
func (r *VideogameCollabFileRepository) ListByDateDesc(ctx context.Context) ([]*domain.VideogameCollab, error) {
	collabs, err := r.readAll()
	if err != nil {
		return nil, err
	}

	sorted := make([]*domain.VideogameCollab, len(collabs))
	copy(sorted, collabs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CollabDate.After(sorted[j].CollabDate)
	})
	return sorted, nil
}

// readAll 从头解析整个文件，文件缺失视为空存储
func (r *VideogameCollabFileRepository) readAll() ([]*domain.VideogameCollab, error) {
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

	collabs := make([]*domain.VideogameCollab, 0, len(rows)-1)
	for _, row := range rows[1:] {
		c, err := parseVideogameRow(row)
		if err != nil {
			return nil, storeErr(err)
		}
		collabs = append(collabs, c)
	}
	return collabs, nil
}

// appendRow 追加一行，文件为空或不存在时先写表头
func (r *VideogameCollabFileRepository) appendRow(c *domain.VideogameCollab) error {
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
		if err := w.Write(videogameCSVHeader); err != nil {
			return err
		}
	}
	if err := w.Write(videogameRow(c)); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// writeAll 用内存中的记录集重写整个文件（含表头）
func (r *VideogameCollabFileRepository) writeAll(collabs []*domain.VideogameCollab) error {
	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(videogameCSVHeader); err != nil {
		return err
	}
	for _, c := range collabs {
		if err := w.Write(videogameRow(c)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func videogameRow(c *domain.VideogameCollab) []string {
	return []string{
		strconv.FormatInt(c.ID, 10),
		c.Videogame,
		c.MakeupBrand,
		c.CollabDate.String(),
		c.SalesIncrease,
	}
}

func parseVideogameRow(row []string) (*domain.VideogameCollab, error) {
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(row[3])
	if err != nil {
		return nil, err
	}
	return &domain.VideogameCollab{
		ID:            id,
		Videogame:     row[1],
		MakeupBrand:   row[2],
		CollabDate:    date,
		SalesIncrease: row[4],
	}, nil
}
