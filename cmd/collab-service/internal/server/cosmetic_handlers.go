package server

import (
	"net/http"
	"strconv"

	"collabservice/cmd/collab-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// cosmeticCollabData 删除响应载荷
// 删除后 ID 已不可解析，回显的数据不携带 id 字段
type cosmeticCollabData struct {
	MakeupBrand   string      `json:"makeup_brand"`
	Videogame     string      `json:"videogame"`
	CollabDate    domain.Date `json:"collaboration_date"`
	CollabType    string      `json:"collaboration_type"`
	SalesIncrease string      `json:"makeup_sales_increase"`
}

// listCosmetics GET /cosmetics
func (s *HTTPServer) listCosmetics(c *gin.Context) {
	collabs, err := s.service.ListCosmetics(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}
	if collabs == nil {
		collabs = []*domain.CosmeticCollab{}
	}
	c.JSON(http.StatusOK, collabs)
}

// searchCosmeticsByBrand GET /cosmetics/search_by_brand?brand_name=
// 结果为空时返回 404
func (s *HTTPServer) searchCosmeticsByBrand(c *gin.Context) {
	brand := c.Query("brand_name")
	if brand == "" {
		Fail(c, http.StatusUnprocessableEntity, "validation failed", "brand_name: query parameter is required")
		return
	}

	collabs, err := s.service.SearchCosmeticsByBrand(c.Request.Context(), brand)
	if err != nil {
		Error(c, err)
		return
	}
	if len(collabs) == 0 {
		Fail(c, http.StatusNotFound, "resource not found", "no collaborations found for that makeup brand")
		return
	}
	c.JSON(http.StatusOK, collabs)
}

// listCosmeticsByRecentDate GET /cosmetics/by_recent_date
func (s *HTTPServer) listCosmeticsByRecentDate(c *gin.Context) {
	collabs, err := s.service.ListCosmeticsByRecentDate(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}
	if collabs == nil {
		collabs = []*domain.CosmeticCollab{}
	}
	c.JSON(http.StatusOK, collabs)
}

// getCosmetic GET /cosmetics/:id
func (s *HTTPServer) getCosmetic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	collab, err := s.service.GetCosmetic(c.Request.Context(), id)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, collab)
}

// createCosmetic POST /cosmetics
func (s *HTTPServer) createCosmetic(c *gin.Context) {
	var payload domain.CosmeticCollabCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		Fail(c, http.StatusUnprocessableEntity, "validation failed", "request body is not valid JSON")
		return
	}

	created, err := s.service.CreateCosmetic(c.Request.Context(), &payload)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// updateCosmetic PUT /cosmetics/:id
func (s *HTTPServer) updateCosmetic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload domain.CosmeticCollabUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		Fail(c, http.StatusUnprocessableEntity, "validation failed", "request body is not valid JSON")
		return
	}

	updated, err := s.service.UpdateCosmetic(c.Request.Context(), id, &payload)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteCosmetic DELETE /cosmetics/:id
func (s *HTTPServer) deleteCosmetic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := s.service.DeleteCosmetic(c.Request.Context(), id)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cosmeticCollabData{
		MakeupBrand:   deleted.MakeupBrand,
		Videogame:     deleted.Videogame,
		CollabDate:    deleted.CollabDate,
		CollabType:    deleted.CollabType,
		SalesIncrease: deleted.SalesIncrease,
	})
}

// parseID 解析路径中的数字 ID，非法时写出 422 响应
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, http.StatusUnprocessableEntity, "validation failed", "id: must be an integer")
		return 0, false
	}
	return id, true
}
