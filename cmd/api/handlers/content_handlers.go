package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adforge/cmd/api/dto"
	"adforge/cmd/api/services"
	"adforge/repositories"
)

// GenerateContentHandler godoc
// @Summary      Generate text posts
// @Description  Generate one post per platform for a campaign. Failed platforms fall back to a placeholder draft with an error field.
// @Tags         content
// @Accept       json
// @Param        request  body  dto.GenerateContentRequest  true  "Generation request"
// @Produce      json
// @Success      200  {array}   dto.PostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /content/generate [post]
func GenerateContentHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.GenerateContentRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		out, err := svc.GenerateText(c.Request.Context(), in)
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

// GenerateVisualsHandler godoc
// @Summary      Queue visual generation
// @Description  Queue image and video generation for a campaign's posts; processing is asynchronous.
// @Tags         content
// @Accept       json
// @Param        request  body  dto.GenerateVisualsRequest  true  "Visual generation request"
// @Produce      json
// @Success      202  {object}  dto.GenerateVisualsResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /content/generate-visuals [post]
func GenerateVisualsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.GenerateVisualsRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		out, err := svc.GenerateVisuals(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
				return
			}
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusAccepted, out)
	}
}
