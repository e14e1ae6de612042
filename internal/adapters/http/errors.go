package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
)

// NoRoute answers requests for paths no route matches.
func NoRoute(c *gin.Context) {
	dto.Abort(c, http.StatusNotFound, dto.MessageRouteNotFound)
}

// NoMethod answers requests whose path exists under a different method.
func NoMethod(c *gin.Context) {
	dto.Abort(c, http.StatusMethodNotAllowed, dto.MessageMethodNotAllowed)
}
