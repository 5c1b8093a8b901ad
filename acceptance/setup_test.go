package acceptance

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/everylingua/dealership-backend/agent"
	"github.com/everylingua/dealership-backend/api"
	"github.com/everylingua/dealership-backend/catalog"
	"github.com/everylingua/dealership-backend/crm"
	"github.com/everylingua/dealership-backend/gemini"
	"github.com/everylingua/dealership-backend/internal/o11y"
	"github.com/everylingua/dealership-backend/location"
	"github.com/everylingua/dealership-backend/notify"
	"github.com/everylingua/dealership-backend/otp"
)

type TestServer struct {
	Router     *gin.Engine
	Assistant  *gemini.FakeClient
	Geocoder   *location.FakeGeocoder
	Mailer     *notify.FakeMailer
	SMS        *notify.FakeSMSSender
	Dispatcher *agent.Dispatcher
	CRMStore   *crm.MemoryStore
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	obs := &o11y.Observability{
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}

	cat := catalog.New()
	mailer := notify.NewFakeMailer()
	sms := notify.NewFakeSMSSender()
	crmStore := crm.NewMemoryStore()
	crmSvc := crm.NewService(crmStore, cat, mailer, sms, logger)
	otpSvc := otp.NewService(otp.NewMemoryStore(), mailer, sms, logger)
	assistant := gemini.NewFakeClient("Namaste! How can I help you today?")
	geocoder := &location.FakeGeocoder{Point: location.Point{Latitude: 19.0760, Longitude: 72.8777}}
	dispatcher := agent.NewDispatcher(logger)

	a, err := api.New(cat, crmSvc, assistant, otpSvc, dispatcher, geocoder, obs, api.Config{})
	if err != nil {
		t.Fatalf("failed to build api: %v", err)
	}

	return &TestServer{
		Router:     a.Router(),
		Assistant:  assistant,
		Geocoder:   geocoder,
		Mailer:     mailer,
		SMS:        sms,
		Dispatcher: dispatcher,
		CRMStore:   crmStore,
	}
}

func (ts *TestServer) GET(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) POST(path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorded response body.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}
