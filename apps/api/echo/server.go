package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/ylearn/ylearn/core"
	"github.com/ylearn/ylearn/core/assessment"
	"github.com/ylearn/ylearn/core/course"
	"github.com/ylearn/ylearn/core/grade"
	"github.com/ylearn/ylearn/core/notification"
	"github.com/ylearn/ylearn/core/topology"
	"github.com/ylearn/ylearn/core/user"
)

type (
	Deps struct {
		Conf            *core.Config
		Logger          core.Logger
		UserSvc         *user.Service
		CourseSvc       *course.Service
		AssessmentSvc   *assessment.Service
		GradeSvc        *grade.Service
		NotificationSvc *notification.Service
		TopologySvc     *topology.Service
		Validate        *validator.Validate
		Translator      ut.Translator
	}

	Server struct {
		deps     Deps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps Deps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(newJWTConfig(conf))

	registerUserAPI(v1, jwt, &s.deps)
	registerCourseAPI(v1, jwt, &s.deps)
	registerAssessmentAPI(v1, jwt, &s.deps)
	registerGradeAPI(v1, jwt, &s.deps)
	registerNotificationAPI(v1, jwt, &s.deps)
	registerTopologyAPI(v1, jwt, &s.deps)
}

func (s *Server) Start() {
	go func() {
		s.errs <- s.app.Start(s.deps.Conf.Server.Addr)
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) Errors() <-chan error {
	return s.errs
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// signalShutdown is handed to the error handler so an integrity error can
// gracefully stop the server.
func (s *Server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the yLearn API!")
}
