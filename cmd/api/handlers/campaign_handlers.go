package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adforge/cmd/api/dto"
	"adforge/cmd/api/services"
	"adforge/repositories"
)

// CreateCampaignHandler godoc
// @Summary      Create campaign
// @Description  Create a marketing campaign from a business brief
// @Tags         campaigns
// @Accept       json
// @Param        request  body  dto.CreateCampaignRequest  true  "Campaign brief"
// @Produce      json
// @Success      201  {object}  dto.CampaignDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /campaigns/create [post]
func CreateCampaignHandler(svc *services.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CreateCampaignRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		out, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// GetCampaignHandler godoc
// @Summary      Get campaign by id
// @Description  Get a single campaign by ObjectID
// @Tags         campaigns
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.CampaignDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /campaigns/{id} [get]
func GetCampaignHandler(svc *services.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ListCampaignsHandler godoc
// @Summary      List campaigns
// @Description  List campaigns with simple pagination
// @Tags         campaigns
// @Param        page      query  int  false  "Page number (1-based)"
// @Param        pageSize  query  int  false  "Page size (<=100)"
// @Produce      json
// @Success      200  {object}  dto.Pagination[dto.CampaignDTO]
// @Router       /campaigns [get]
func ListCampaignsHandler(svc *services.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
		out, err := svc.List(c.Request.Context(), page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ListCampaignPostsHandler godoc
// @Summary      List campaign posts
// @Description  List every generated post of a campaign
// @Tags         campaigns
// @Param        id   path   string  true  "Campaign ObjectID"
// @Produce      json
// @Success      200  {array}   dto.PostDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /campaigns/{id}/posts [get]
func ListCampaignPostsHandler(svc *services.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListPosts(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
