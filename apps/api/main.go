package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/ylearn/ylearn/apps/api/echo"
	"github.com/ylearn/ylearn/core"
	"github.com/ylearn/ylearn/core/assessment"
	"github.com/ylearn/ylearn/core/course"
	"github.com/ylearn/ylearn/core/grade"
	"github.com/ylearn/ylearn/core/notification"
	"github.com/ylearn/ylearn/core/topology"
	"github.com/ylearn/ylearn/core/user"
	emailsvc "github.com/ylearn/ylearn/services/email"
	logsvc "github.com/ylearn/ylearn/services/logger"
	inmemdb "github.com/ylearn/ylearn/storage/database/inmem"
	sessionstore "github.com/ylearn/ylearn/storage/session"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up the in-memory catalog
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("seeding catalog: %v", err), err)
	}
	courseRepo := inmemdb.NewCourseRepository(db)
	assessmentRepo := inmemdb.NewAssessmentRepository(db)
	gradeRepo := inmemdb.NewGradeRepository(db)
	notifRepo := inmemdb.NewNotificationRepository(db)
	topologyRepo := inmemdb.NewTopologyRepository(db)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	usrSvc := user.NewService(sessionstore.NewFileStore(conf.SessionFile), conf)
	courseSvc := course.NewService(courseRepo)
	notifSvc := notification.NewService(notifRepo, mailSvc)
	assessmentSvc := assessment.NewService(assessmentRepo, notifSvc, conf)
	gradeSvc := grade.NewService(gradeRepo, courseRepo, assessmentRepo)
	topologySvc := topology.NewService(topologyRepo)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.Deps{
			Conf:            conf,
			Logger:          logger,
			UserSvc:         usrSvc,
			CourseSvc:       courseSvc,
			AssessmentSvc:   assessmentSvc,
			GradeSvc:        gradeSvc,
			NotificationSvc: notifSvc,
			TopologySvc:     topologySvc,
			Validate:        validate,
			Translator:      translator,
		},
	)
	server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
