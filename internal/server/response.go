package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every API response rides the {code, msg, data} envelope on HTTP 200.
// Code 1 means success; anything else is a business failure whose msg the
// client surfaces verbatim. Only authentication problems use the HTTP
// status line (401), because that is what clients key session expiry on.
const (
	codeSuccess = 1
	codeFailure = 0
)

// Envelope is the uniform response body for all API endpoints
type Envelope struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Code: codeSuccess, Msg: "success", Data: data})
}

func fail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Envelope{Code: codeFailure, Msg: msg})
}
