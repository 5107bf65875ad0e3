package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stellrent/response/ctxutil"
	"github.com/stellrent/response/net/resp"
	"github.com/stellrent/response/validator"
	"github.com/stellrent/response/version"
)

// EchoRequest is the body accepted by POST /v1/echo.
type EchoRequest struct {
	Name      string `json:"name" binding:"required"`
	ID        int    `json:"id" binding:"required"`
	Cellphone string `json:"cellphone" binding:"required"`
}

// EchoResponse returns the request with server-assigned fields.
type EchoResponse struct {
	UID        uuid.UUID `json:"uid"`
	ReceivedAt time.Time `json:"received_at"`
	EchoRequest
}

func (s *Server) health(c *gin.Context) {
	resp.JSON(c, resp.Confirmation(resp.WithDetails("healthy"), s.withLogger(c)))
}

func (s *Server) version(c *gin.Context) {
	resp.JSON(c, resp.MustData(version.GetVersionInfo(), s.withLogger(c)))
}

func (s *Server) createEcho(c *gin.Context) {
	var req EchoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			resp.JSON(c, resp.BadRequest(resp.WithDetails("request body is empty"), s.withLogger(c)))
			return
		}
		resp.JSON(c, resp.BadRequest(resp.WithValidation(err, s.language(c)), s.withLogger(c)))
		return
	}

	resp.JSON(c, resp.Created(resp.WithData(EchoResponse{
		UID:         uuid.New(),
		ReceivedAt:  s.now().UTC(),
		EchoRequest: req,
	}), s.withLogger(c)))
}

func (s *Server) deleteEcho(c *gin.Context) {
	if _, err := uuid.Parse(c.Param("id")); err != nil {
		resp.JSON(c, resp.BadRequest(resp.WithErrors(resp.FieldError{
			Loc: []any{"id"},
			Msg: "The field 'id' must be a valid UUID.",
		}), s.withLogger(c)))
		return
	}
	resp.JSON(c, resp.NoContent(s.withLogger(c)))
}

func (s *Server) status(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil || code < http.StatusOK || code > 599 {
		resp.JSON(c, resp.BadRequest(resp.WithErrors(resp.FieldError{
			Loc: []any{"code"},
			Msg: fmt.Sprintf("The field 'code' must be an HTTP status between 200 and 599, got %q.", c.Param("code")),
		}), s.withLogger(c)))
		return
	}

	opts := []resp.Option{resp.WithMessage(c.Query("message")), s.withLogger(c)}
	if details, ok := c.GetQuery("details"); ok {
		opts = append(opts, resp.WithDetails(details))
	}
	resp.JSON(c, resp.FromStatus(code, opts...))
}

// language picks the validation message language for the request,
// defaulting to the configured one.
func (s *Server) language(c *gin.Context) string {
	supported := append([]string{s.config.Response.Language}, validator.Languages()...)
	return ctxutil.GetLanguage(c.Request.Context(), supported...)
}
