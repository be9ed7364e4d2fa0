package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BCatalog/res"
	"github.com/gin-gonic/gin"
)

func abortWithErrorRes(c *gin.Context, errRes *res.ErrorRes) {
	c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
		Success:    false,
		StatusCode: errRes.StatusCode,
		Message:    errRes.Err.Error(),
	})
}

func abortBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
		Success:    false,
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	})
}
