package domain

import "strings"

// VideogameCollab 游戏与化妆品品牌的联名记录
// 与 CosmeticCollab 结构平行，但没有联名类型字段
type VideogameCollab struct {
	ID            int64  `json:"id"`
	Videogame     string `json:"videogame"`
	MakeupBrand   string `json:"makeup_brand"`
	CollabDate    Date   `json:"collaboration_date"`
	SalesIncrease string `json:"videogame_sales_increase"`
}

// VideogameCollabCreate 创建游戏联名的请求载荷
type VideogameCollabCreate struct {
	Videogame     string `json:"videogame"`
	MakeupBrand   string `json:"makeup_brand"`
	CollabDate    string `json:"collaboration_date"`
	SalesIncrease string `json:"videogame_sales_increase"`
}

// Validate 校验创建载荷并转换为领域实体（ID 未分配）
func (p *VideogameCollabCreate) Validate() (*VideogameCollab, error) {
	game := strings.TrimSpace(p.Videogame)
	if err := checkLength("videogame", game, 3, 50); err != nil {
		return nil, err
	}
	brand := strings.TrimSpace(p.MakeupBrand)
	if err := checkLength("makeup_brand", brand, 3, 50); err != nil {
		return nil, err
	}
	date, verr := checkDate("collaboration_date", strings.TrimSpace(p.CollabDate))
	if verr != nil {
		return nil, verr
	}
	increase := strings.TrimSpace(p.SalesIncrease)
	if err := checkSalesIncrease("videogame_sales_increase", increase); err != nil {
		return nil, err
	}

	return &VideogameCollab{
		Videogame:     game,
		MakeupBrand:   brand,
		CollabDate:    date,
		SalesIncrease: increase,
	}, nil
}

// VideogameCollabUpdate 部分更新的请求载荷
// 空字符串视为"未提供该字段"
type VideogameCollabUpdate struct {
	Videogame     string `json:"videogame"`
	MakeupBrand   string `json:"makeup_brand"`
	CollabDate    string `json:"collaboration_date"`
	SalesIncrease string `json:"videogame_sales_increase"`
}

// VideogameCollabPatch 校验后的部分更新
type VideogameCollabPatch struct {
	Videogame     string
	MakeupBrand   string
	CollabDate    *Date
	SalesIncrease string
}

// Validate 校验更新载荷，空白字段规整为"未提供"
func (p *VideogameCollabUpdate) Validate() (*VideogameCollabPatch, error) {
	patch := &VideogameCollabPatch{}

	if game := strings.TrimSpace(p.Videogame); game != "" {
		if err := checkLength("videogame", game, 3, 50); err != nil {
			return nil, err
		}
		patch.Videogame = game
	}
	if brand := strings.TrimSpace(p.MakeupBrand); brand != "" {
		if err := checkLength("makeup_brand", brand, 3, 50); err != nil {
			return nil, err
		}
		patch.MakeupBrand = brand
	}
	if raw := strings.TrimSpace(p.CollabDate); raw != "" {
		date, verr := checkDate("collaboration_date", raw)
		if verr != nil {
			return nil, verr
		}
		patch.CollabDate = &date
	}
	if increase := strings.TrimSpace(p.SalesIncrease); increase != "" {
		if err := checkSalesIncrease("videogame_sales_increase", increase); err != nil {
			return nil, err
		}
		patch.SalesIncrease = increase
	}

	return patch, nil
}

// Apply 将补丁中已提供的字段覆盖到记录上
func (v *VideogameCollab) Apply(patch *VideogameCollabPatch) {
	if patch.Videogame != "" {
		v.Videogame = patch.Videogame
	}
	if patch.MakeupBrand != "" {
		v.MakeupBrand = patch.MakeupBrand
	}
	if patch.CollabDate != nil {
		v.CollabDate = *patch.CollabDate
	}
	if patch.SalesIncrease != "" {
		v.SalesIncrease = patch.SalesIncrease
	}
}
