package echoapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

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

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

func setup(t *testing.T) *Server {
	conf := core.NewTestConfig(filepath.Join(t.TempDir(), "session.json"))

	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}
	courseRepo := inmemdb.NewCourseRepository(db)
	assessmentRepo := inmemdb.NewAssessmentRepository(db)
	gradeRepo := inmemdb.NewGradeRepository(db)
	notifRepo := inmemdb.NewNotificationRepository(db)
	topologyRepo := inmemdb.NewTopologyRepository(db)

	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	emailsvc.ResetSentMessages()

	notifSvc := notification.NewService(notifRepo, mailSvc)

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	return NewServer(Deps{
		Conf:            conf,
		Logger:          logger,
		UserSvc:         user.NewService(sessionstore.NewFileStore(conf.SessionFile), conf),
		CourseSvc:       course.NewService(courseRepo),
		AssessmentSvc:   assessment.NewService(assessmentRepo, notifSvc, conf),
		GradeSvc:        grade.NewService(gradeRepo, courseRepo, assessmentRepo),
		NotificationSvc: notifSvc,
		TopologySvc:     topology.NewService(topologyRepo),
		Validate:        validate,
		Translator:      translator,
	})
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, conf *core.Config, usr user.User) string {
	token, err := GenerateToken(conf, GetUserClaims(conf, usr))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func roleToken(t *testing.T, s *Server, role string) string {
	usr, ok := user.MockUser(role)
	if !ok {
		t.Fatalf("no mock user for role %q", role)
	}
	return getToken(t, s.deps.Conf, usr)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, s *Server, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			wantCode := tt.wantCode
			if wantCode == 0 {
				wantCode = http.StatusOK
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			s.ServeHTTP(rec, req)
			checkCodeAndData(t, httpTest{wantCode: wantCode, wantData: tt.wantData}, rec)
		})
	}
}
