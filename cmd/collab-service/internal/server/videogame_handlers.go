package server

import (
	"net/http"

	"collabservice/cmd/collab-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// videogameCollabData 删除响应载荷，不携带 id 字段
type videogameCollabData struct {
	Videogame     string      `json:"videogame"`
	MakeupBrand   string      `json:"makeup_brand"`
	CollabDate    domain.Date `json:"collaboration_date"`
	SalesIncrease string      `json:"videogame_sales_increase"`
}

// listVideogames GET /videogames
func (s *HTTPServer) listVideogames(c *gin.Context) {
	collabs, err := s.service.ListVideogames(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}
	if collabs == nil {
		collabs = []*domain.VideogameCollab{}
	}
	c.JSON(http.StatusOK, collabs)
}

// searchVideogamesByName GET /videogames/search_by_name?videogame_name=
// 结果为空时返回 404
func (s *HTTPServer) searchVideogamesByName(c *gin.Context) {
	name := c.Query("videogame_name")
	if name == "" {
		Fail(c, http.StatusUnprocessableEntity, "validation failed", "videogame_name: query parameter is required")
		return
	}

	collabs, err := s.service.SearchVideogamesByName(c.Request.Context(), name)
	if err != nil {
		Error(c, err)
		return
	}
	if len(collabs) == 0 {
		Fail(c, http.StatusNotFound, "resource not found", "no collaborations found for that videogame")
		return
	}
	c.JSON(http.StatusOK, collabs)
}

// listVideogamesByRecentDate GET /videogames/by_date
func (s *HTTPServer) listVideogamesByRecentDate(c *gin.Context) {
	collabs, err := s.service.ListVideogamesByRecentDate(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}
	if collabs == nil {
		collabs = []*domain.VideogameCollab{}
	}
	c.JSON(http.StatusOK, collabs)
}

// getVideogame GET /videogames/:id
func (s *HTTPServer) getVideogame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	collab, err := s.service.GetVideogame(c.Request.Context(), id)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, collab)
}

// createVideogame POST /videogames
func (s *HTTPServer) createVideogame(c *gin.Context) {
	var payload domain.VideogameCollabCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		Fail(c, http.StatusUnprocessableEntity, "validation failed", "request body is not valid JSON")
		return
	}

	created, err := s.service.CreateVideogame(c.Request.Context(), &payload)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// updateVideogame PUT /videogames/:id
func (s *HTTPServer) updateVideogame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload domain.VideogameCollabUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		Fail(c, http.StatusUnprocessableEntity, "validation failed", "request body is not valid JSON")
		return
	}

	updated, err := s.service.UpdateVideogame(c.Request.Context(), id, &payload)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteVideogame DELETE /videogames/:id
func (s *HTTPServer) deleteVideogame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := s.service.DeleteVideogame(c.Request.Context(), id)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, videogameCollabData{
		Videogame:     deleted.Videogame,
		MakeupBrand:   deleted.MakeupBrand,
		CollabDate:    deleted.CollabDate,
		SalesIncrease: deleted.SalesIncrease,
	})
}
