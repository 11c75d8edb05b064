package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adforge/cmd/api/dto"
	"adforge/cmd/api/services"
	"adforge/repositories"
)

// AnalyzeURLHandler godoc
// @Summary      Analyze a business URL
// @Description  Fetch a web page or RSS feed and extract a structured business context. When campaignId is given the result is saved onto that campaign.
// @Tags         analysis
// @Accept       json
// @Param        request  body  dto.AnalyzeURLRequest  true  "URL to analyze"
// @Produce      json
// @Success      200  {object}  dto.AnalyzeURLResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /analysis/url [post]
func AnalyzeURLHandler(svc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.AnalyzeURLRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		out, err := svc.AnalyzeURL(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
				return
			}
			// URL 을 읽지 못한 경우가 대부분이므로 upstream 실패로 돌려준다.
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
