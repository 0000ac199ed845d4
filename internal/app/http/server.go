package http

import (
	"net/http"

	echo "github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GamesCrafters/gamesman-gateway/internal/domain"
	"github.com/GamesCrafters/gamesman-gateway/internal/ports"
	"github.com/GamesCrafters/gamesman-gateway/internal/usecase"
)

type Server struct {
	e      *echo.Echo
	solver ports.SolverPort
	log    *zap.Logger
}

func NewServer(solver ports.SolverPort, log *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	s := &Server{e: e, solver: solver, log: log}
	e.Use(requestLogger(log))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.e.GET("/:gameName/:variantId/", s.handleGetStart)
	s.e.GET("/:gameName/:variantId/:position", s.handleQuery)
}

// Both solver routes reply 200 whether the solver succeeded or reported a
// logical error; callers distinguish the two by body shape. Only launch
// faults (binary missing, permission denied) fall through to echo's error
// handler and produce a 500.
func (s *Server) handleGetStart(c echo.Context) error {
	q := domain.Query{
		Game:    c.Param("gameName"),
		Variant: c.Param("variantId"),
	}
	body, err := usecase.GetStart(c.Request().Context(), s.solver, q)
	return s.reply(c, "getstart", q, body, err)
}

func (s *Server) handleQuery(c echo.Context) error {
	q := domain.Query{
		Game:     c.Param("gameName"),
		Variant:  c.Param("variantId"),
		Position: c.Param("position"),
	}
	body, err := usecase.QueryPosition(c.Request().Context(), s.solver, q)
	return s.reply(c, "query", q, body, err)
}

func (s *Server) reply(c echo.Context, op string, q domain.Query, body string, err error) error {
	if err != nil {
		observeSolverCall(op, outcomeFault)
		s.log.Error("solver launch failed",
			zap.String("op", op),
			zap.String("game", q.Game),
			zap.String("variant", q.Variant),
			zap.Error(err))
		return err
	}
	observeSolverCall(op, outcomeServed)
	return c.String(http.StatusOK, body)
}

func (s *Server) Start(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	return s.e.Start(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}
