package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success helpers; lists go out as bare arrays, no envelope.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
