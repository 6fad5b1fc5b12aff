// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/coa-seeder/internal/catalog"
	"github.com/go-petr/coa-seeder/internal/chartdelivery"
	"github.com/go-petr/coa-seeder/internal/chartrepo"
	"github.com/go-petr/coa-seeder/internal/chartservice"
	"github.com/go-petr/coa-seeder/internal/currencyrepo"
	"github.com/go-petr/coa-seeder/internal/middleware"
	"github.com/go-petr/coa-seeder/pkg/configpkg"
	"github.com/go-petr/coa-seeder/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	tokenMaker, err := tokenpkg.NewMaker(config.TokenType, config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	accounts, err := catalog.New()
	if err != nil {
		return nil, fmt.Errorf("cannot load catalog: %w", err)
	}

	chartRepo := chartrepo.NewRepoPGS(conn)
	currencyRepo := currencyrepo.NewRepoPGS(conn)

	chartService := chartservice.New(chartRepo, currencyRepo, accounts, config.DefaultCurrencyID)
	chartHandler := chartdelivery.NewHandler(chartService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.GET("/industries", chartHandler.ListIndustries)
	authRoutes.GET("/industries/:key/accounts", chartHandler.Preview)

	authRoutes.POST("/projects/:id/chart", chartHandler.Seed)
	authRoutes.GET("/projects/:id/accounts", chartHandler.Tree)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("industry", chartdelivery.ValidIndustry); err != nil {
			return nil, fmt.Errorf("cannot register industry validator: %w", err)
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
