package api

import (
	"gokkankeeper/internal"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) getPublicPortfolio(c *gin.Context) {
	rows, err := h.PositionRepository.ListPublic()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, internal.BuildPublicPortfolio(rows))
}
