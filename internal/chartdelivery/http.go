// Package chartdelivery manages delivery layer of charts of accounts.
package chartdelivery

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/coa-seeder/internal/domain"
	"github.com/go-petr/coa-seeder/internal/middleware"
	"github.com/go-petr/coa-seeder/pkg/errorspkg"
	"github.com/go-petr/coa-seeder/pkg/tokenpkg"
	"github.com/go-petr/coa-seeder/pkg/web"
)

// Service provides service layer interface needed by chart delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package chartdelivery
type Service interface {
	Seed(ctx context.Context, arg domain.SeedParams) (domain.SeedResult, error)
	Preview(industry string) []domain.AccountNode
	Industries() []domain.Industry
	Tree(ctx context.Context, projectID int64) ([]*domain.AccountTree, error)
}

// Handler facilitates chart delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns chart handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

func badRequest(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	errMsg := err.Error()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		errMsg = field.Field() + web.GetErrorMsg(field)
	}

	l.Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})
}

type industriesData struct {
	Industries []domain.Industry `json:"industries"`
}

// ListIndustries handles http request to list the known industry keys.
func (h *Handler) ListIndustries(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, web.Response{Data: industriesData{h.service.Industries()}})
}

type previewRequest struct {
	Key string `uri:"key" binding:"required,industry"`
}

type previewData struct {
	Accounts []domain.AccountNode `json:"accounts"`
}

// Preview handles http request to show the catalog an industry would seed.
func (h *Handler) Preview(gctx *gin.Context) {
	var req previewRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: previewData{h.service.Preview(req.Key)}})
}

type projectRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// seedRequest fields are optional. Unknown industries seed the base template
// and unknown currencies fall back to the default one.
type seedRequest struct {
	Industry    string `json:"industry"`
	CurrencyID  int64  `json:"currency_id"`
	CompanySize string `json:"company_size" binding:"omitempty,oneof=small medium large enterprise"`
}

// Seed handles http request to seed a project's chart of accounts.
func (h *Handler) Seed(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri projectRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	var req seedRequest
	if err := gctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(gctx, err)
		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	l.Info().Str("subject", authPayload.Subject).Int64("project_id", uri.ID).Msg("seed requested")

	result, err := h.service.Seed(ctx, domain.SeedParams{
		ProjectID:   uri.ID,
		Industry:    req.Industry,
		CurrencyID:  req.CurrencyID,
		CompanySize: req.CompanySize,
	})
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: result})
}

type treeData struct {
	Accounts []*domain.AccountTree `json:"accounts"`
}

// Tree handles http request to get a project's stored chart of accounts.
func (h *Handler) Tree(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri projectRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	tree, err := h.service.Tree(ctx, uri.ID)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: treeData{tree}})
}
