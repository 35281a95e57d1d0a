package handlers

import (
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
	"github.com/daffahilmyf/dictators-seed/internal/domain/repository"
	"github.com/daffahilmyf/dictators-seed/internal/domain/service"
	"github.com/daffahilmyf/dictators-seed/internal/transport/http/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog service.CatalogService
}

func NewHandler(catalog service.CatalogService) *Handler {
	return &Handler{catalog: catalog}
}

type createDictatorRequest struct {
	Username     string `json:"username" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Country      string `json:"country" binding:"required"`
	Description  string `json:"description"`
	YearsInPower string `json:"yearsInPower"`
}

type createAchievementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Year        int    `json:"year"`
}

func (h *Handler) createDictator(c *gin.Context) {
	var req createDictatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "Failed to create dictator: "+err.Error())
		return
	}

	d, err := h.catalog.CreateDictator(c.Request.Context(), entity.DictatorRecord{
		Username:     req.Username,
		Name:         req.Name,
		Country:      req.Country,
		Description:  req.Description,
		YearsInPower: req.YearsInPower,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDictatorExists) {
			response.RespondError(c, nethttp.StatusBadRequest, "Dictator with username '"+req.Username+"' already exists")
			return
		}
		_ = c.Error(err)
		response.RespondError(c, nethttp.StatusBadRequest, "Failed to create dictator: "+err.Error())
		return
	}
	response.RespondOK(c, nethttp.StatusOK, d)
}

func (h *Handler) createAchievement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req createAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "Failed to create achievement: "+err.Error())
		return
	}

	a, err := h.catalog.CreateAchievement(c.Request.Context(), id, entity.AchievementRecord{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(nethttp.StatusNotFound)
			return
		}
		_ = c.Error(err)
		response.RespondError(c, nethttp.StatusBadRequest, "Failed to create achievement: "+err.Error())
		return
	}
	response.RespondOK(c, nethttp.StatusOK, a)
}

func (h *Handler) initSampleData(c *gin.Context) {
	res, err := h.catalog.InitSampleData(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.RespondError(c, nethttp.StatusBadRequest, "Failed to initialize sample data: "+err.Error())
		return
	}
	response.RespondOK(c, nethttp.StatusOK, res)
}

func (h *Handler) listDictators(c *gin.Context) {
	dictators, err := h.catalog.ListDictators(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.RespondError(c, nethttp.StatusInternalServerError, "list failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, dictators)
}

func (h *Handler) getDictator(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	d, err := h.catalog.GetDictator(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(nethttp.StatusNotFound)
			return
		}
		_ = c.Error(err)
		response.RespondError(c, nethttp.StatusInternalServerError, "get failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, d)
}

func (h *Handler) listAchievements(c *gin.Context) {
	achievements, err := h.catalog.ListAchievements(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.RespondError(c, nethttp.StatusInternalServerError, "list failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, achievements)
}

func (h *Handler) health(c *gin.Context) {
	response.RespondOK(c, nethttp.StatusOK, gin.H{"status": "ok"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
