package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/techbay/store-analytics/internal/utils"
)

// serverErrorMessage is the only error text clients see for store or query
// failures; the underlying cause goes to the log.
const serverErrorMessage = "Sorry, there is a server problem :("

// serverError logs the cause and writes the generic error envelope. With
// debug enabled the underlying error text is surfaced instead.
func serverError(c *gin.Context, err error, debug bool) {
	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	msg := serverErrorMessage
	if debug {
		msg = err.Error()
	}
	utils.Error(c, http.StatusInternalServerError, msg)
}
