package domain

import "strings"

// CosmeticCollab 化妆品品牌与游戏的联名记录
// id 由存储后端在创建时分配，创建后不可变
type CosmeticCollab struct {
	ID            int64  `json:"id"`
	MakeupBrand   string `json:"makeup_brand"`
	Videogame     string `json:"videogame"`
	CollabDate    Date   `json:"collaboration_date"`
	CollabType    string `json:"collaboration_type"`
	SalesIncrease string `json:"makeup_sales_increase"`
}

// CosmeticCollabCreate 创建化妆品联名的请求载荷
type CosmeticCollabCreate struct {
	MakeupBrand   string `json:"makeup_brand"`
	Videogame     string `json:"videogame"`
	CollabDate    string `json:"collaboration_date"`
	CollabType    string `json:"collaboration_type"`
	SalesIncrease string `json:"makeup_sales_increase"`
}

// Validate 校验创建载荷并转换为领域实体（ID 未分配）
// 所有文本字段先去除首尾空白再校验
func (p *CosmeticCollabCreate) Validate() (*CosmeticCollab, error) {
	brand := strings.TrimSpace(p.MakeupBrand)
	if err := checkLength("makeup_brand", brand, 3, 50); err != nil {
		return nil, err
	}
	game := strings.TrimSpace(p.Videogame)
	if err := checkLength("videogame", game, 3, 50); err != nil {
		return nil, err
	}
	date, verr := checkDate("collaboration_date", strings.TrimSpace(p.CollabDate))
	if verr != nil {
		return nil, verr
	}
	collabType := strings.TrimSpace(p.CollabType)
	if err := checkLength("collaboration_type", collabType, 3, 100); err != nil {
		return nil, err
	}
	increase := strings.TrimSpace(p.SalesIncrease)
	if err := checkSalesIncrease("makeup_sales_increase", increase); err != nil {
		return nil, err
	}

	return &CosmeticCollab{
		MakeupBrand:   brand,
		Videogame:     game,
		CollabDate:    date,
		CollabType:    collabType,
		SalesIncrease: increase,
	}, nil
}

// CosmeticCollabUpdate 部分更新的请求载荷
// 空字符串视为"未提供该字段"，而不是清空
type CosmeticCollabUpdate struct {
	MakeupBrand   string `json:"makeup_brand"`
	Videogame     string `json:"videogame"`
	CollabDate    string `json:"collaboration_date"`
	CollabType    string `json:"collaboration_type"`
	SalesIncrease string `json:"makeup_sales_increase"`
}

// CosmeticCollabPatch 校验后的部分更新
// 文本字段为空字符串、日期为 nil 表示保持原值
type CosmeticCollabPatch struct {
	MakeupBrand   string
	Videogame     string
	CollabDate    *Date
	CollabType    string
	SalesIncrease string
}

// Validate 校验更新载荷，空白字段规整为"未提供"
func (p *CosmeticCollabUpdate) Validate() (*CosmeticCollabPatch, error) {
	patch := &CosmeticCollabPatch{}

	if brand := strings.TrimSpace(p.MakeupBrand); brand != "" {
		if err := checkLength("makeup_brand", brand, 3, 50); err != nil {
			return nil, err
		}
		patch.MakeupBrand = brand
	}
	if game := strings.TrimSpace(p.Videogame); game != "" {
		if err := checkLength("videogame", game, 3, 50); err != nil {
			return nil, err
		}
		patch.Videogame = game
	}
	if raw := strings.TrimSpace(p.CollabDate); raw != "" {
		date, verr := checkDate("collaboration_date", raw)
		if verr != nil {
			return nil, verr
		}
		patch.CollabDate = &date
	}
	if collabType := strings.TrimSpace(p.CollabType); collabType != "" {
		if err := checkLength("collaboration_type", collabType, 3, 100); err != nil {
			return nil, err
		}
		patch.CollabType = collabType
	}
	if increase := strings.TrimSpace(p.SalesIncrease); increase != "" {
		if err := checkSalesIncrease("makeup_sales_increase", increase); err != nil {
			return nil, err
		}
		patch.SalesIncrease = increase
	}

	return patch, nil
}

// Apply 将补丁中已提供的字段覆盖到记录上，未提供的字段保持不变
func (c *CosmeticCollab) Apply(patch *CosmeticCollabPatch) {
	if patch.MakeupBrand != "" {
		c.MakeupBrand = patch.MakeupBrand
	}
	if patch.Videogame != "" {
		c.Videogame = patch.Videogame
	}
	if patch.CollabDate != nil {
		c.CollabDate = *patch.CollabDate
	}
	if patch.CollabType != "" {
		c.CollabType = patch.CollabType
	}
	if patch.SalesIncrease != "" {
		c.SalesIncrease = patch.SalesIncrease
	}
}
