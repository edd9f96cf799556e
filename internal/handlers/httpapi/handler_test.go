package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/services/lottery"
	"github.com/KirkDiggler/prizedraw/internal/services/lottery/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *mocks.MockService
	router      *gin.Engine
	healthErr   error

	testTenantID string
}

// brokenWriter accepts headers but fails every body write
type brokenWriter struct {
	header http.Header
	code   int
}

func (w *brokenWriter) Header() http.Header {
	return w.header
}

func (w *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func (w *brokenWriter) WriteHeader(code int) {
	w.code = code
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.mockCtrl)
	s.testTenantID = "acme"
	s.healthErr = nil

	handler, err := New(&Config{
		Service: s.mockService,
		HealthCheck: func(ctx context.Context) error {
			return s.healthErr
		},
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TenantHeader, s.testTenantID)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func (s *HandlerTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilService, err)
}

func (s *HandlerTestSuite) TestMissingTenantHeader() {
	req := httptest.NewRequest(http.MethodGet, "/api/prizes", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(s.decode(rec).Success)
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, rec.Code)

	s.healthErr = errors.New("redis down")
	rec = s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *HandlerTestSuite) TestMetricsExposed() {
	rec := s.do(http.MethodGet, "/metrics", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "go_goroutines")
}

func (s *HandlerTestSuite) TestDraw() {
	winTime := time.Date(2026, 1, 23, 19, 0, 0, 0, time.UTC)
	s.mockService.EXPECT().
		Draw(gomock.Any(), &lottery.DrawInput{
			TenantID: s.testTenantID,
			PrizeID:  "gold",
			Count:    2,
		}).
		Return(&lottery.DrawOutput{
			Prize: models.Prize{ID: "gold", Name: "Gold", Count: 2, Remaining: 0},
			Winners: []models.WinRecord{
				{ID: "w1", PrizeID: "gold", WinnerID: "1001", WinnerName: "Alice", WinTime: winTime},
				{ID: "w2", PrizeID: "gold", WinnerID: "1002", WinnerName: "Bob", WinTime: winTime},
			},
		}, nil)

	rec := s.do(http.MethodPost, "/api/lottery/draw", `{"prizeId":"gold","count":2}`)

	s.Equal(http.StatusOK, rec.Code)
	env := s.decode(rec)
	s.True(env.Success)

	var data struct {
		Prize   models.Prize       `json:"prize"`
		Winners []models.WinRecord `json:"winners"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(0, data.Prize.Remaining)
	s.Require().Len(data.Winners, 2)
	s.Equal("Alice", data.Winners[0].WinnerName)
	s.True(winTime.Equal(data.Winners[1].WinTime))
}

func (s *HandlerTestSuite) TestDraw_ErrorStatuses() {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: gold", lottery.ErrPrizeNotFound), http.StatusNotFound},
		{lottery.ErrOutOfStock, http.StatusBadRequest},
		{lottery.ErrAllOutOfStock, http.StatusBadRequest},
		{lottery.ErrEmptyRoster, http.StatusBadRequest},
		{lottery.ErrNoCandidates, http.StatusBadRequest},
		{lottery.ErrInsufficientCapacity, http.StatusBadRequest},
		{fmt.Errorf("%w: %w", lottery.ErrStorageUnavailable, errors.New("timeout")), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		s.mockService.EXPECT().Draw(gomock.Any(), gomock.Any()).Return(nil, tc.err)

		rec := s.do(http.MethodPost, "/api/lottery/draw", `{}`)

		s.Equal(tc.status, rec.Code, tc.err.Error())
		env := s.decode(rec)
		s.False(env.Success)
		s.Equal(tc.err.Error(), env.Message)
	}
}

func (s *HandlerTestSuite) TestDraw_MalformedBody() {
	rec := s.do(http.MethodPost, "/api/lottery/draw", `{"count":"two"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestInvalidate() {
	s.mockService.EXPECT().
		Invalidate(gomock.Any(), &lottery.InvalidateInput{
			TenantID: s.testTenantID,
			RecordID: "w1",
		}).
		Return(&lottery.InvalidateOutput{
			Record: models.WinRecord{ID: "w1"},
			Prize:  &models.Prize{ID: "gold", Count: 2, Remaining: 1},
		}, nil)

	rec := s.do(http.MethodPost, "/api/lottery/invalidate", `{"id":"w1"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.True(s.decode(rec).Success)
}

func (s *HandlerTestSuite) TestInvalidate_RecordNotFound() {
	s.mockService.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil, lottery.ErrRecordNotFound)

	rec := s.do(http.MethodPost, "/api/lottery/invalidate", `{"id":"nope"}`)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestResetWinners() {
	s.mockService.EXPECT().
		ResetWinners(gomock.Any(), &lottery.ResetWinnersInput{TenantID: s.testTenantID}).
		Return(&lottery.ResetWinnersOutput{Cleared: 4}, nil)

	rec := s.do(http.MethodPost, "/api/lottery/reset-winners", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"cleared":4}`, string(s.decode(rec).Data))
}

func (s *HandlerTestSuite) TestUpsertPrize() {
	s.mockService.EXPECT().
		UpsertPrize(gomock.Any(), &lottery.UpsertPrizeInput{
			TenantID:   s.testTenantID,
			Name:       "Mug",
			Count:      5,
			Level:      "third",
			LevelLabel: "Third Prize",
		}).
		Return(&lottery.UpsertPrizeOutput{
			Prize:   models.Prize{ID: "p1", Name: "Mug", Count: 5, Remaining: 5, Level: "third", LevelLabel: "Third Prize"},
			Created: true,
		}, nil)

	rec := s.do(http.MethodPost, "/api/prizes", `{"name":"Mug","count":5,"level":"third","levelLabel":"Third Prize"}`)

	s.Equal(http.StatusOK, rec.Code)
	env := s.decode(rec)
	s.Equal("prize created", env.Message)
	s.JSONEq(`{"id":"p1","name":"Mug","count":5,"remaining":5,"level":"third","levelLabel":"Third Prize"}`, string(env.Data))
}

func (s *HandlerTestSuite) TestUpsertPrize_InvalidInput() {
	s.mockService.EXPECT().
		UpsertPrize(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: prize name is required", lottery.ErrInvalidInput))

	rec := s.do(http.MethodPost, "/api/prizes", `{"count":5}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestDeletePrize() {
	s.mockService.EXPECT().
		DeletePrize(gomock.Any(), &lottery.DeletePrizeInput{TenantID: s.testTenantID, PrizeID: "gold"}).
		Return(&lottery.DeletePrizeOutput{Deleted: true}, nil)

	rec := s.do(http.MethodDelete, "/api/prizes/gold", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"deleted":true}`, string(s.decode(rec).Data))
}

func (s *HandlerTestSuite) TestClearPrizes() {
	s.mockService.EXPECT().
		ClearPrizes(gomock.Any(), &lottery.ClearPrizesInput{TenantID: s.testTenantID}).
		Return(&lottery.ClearPrizesOutput{Removed: 3}, nil)

	rec := s.do(http.MethodPost, "/api/prizes/reset", "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestListPrizes() {
	s.mockService.EXPECT().
		ListPrizes(gomock.Any(), &lottery.ListPrizesInput{TenantID: s.testTenantID}).
		Return(&lottery.ListPrizesOutput{Prizes: []models.Prize{{ID: "gold"}}}, nil)

	rec := s.do(http.MethodGet, "/api/prizes", "")

	s.Equal(http.StatusOK, rec.Code)
	var prizes []models.Prize
	s.Require().NoError(json.Unmarshal(s.decode(rec).Data, &prizes))
	s.Len(prizes, 1)
}

func (s *HandlerTestSuite) TestUploadRoster_JSON() {
	s.mockService.EXPECT().
		ReplaceRoster(gomock.Any(), &lottery.ReplaceRosterInput{
			TenantID: s.testTenantID,
			People: []models.Person{
				{ID: "1001", Name: "Alice", Seat: "A-01"},
				{ID: "1002", Name: "Bob", Seat: "A-02"},
			},
		}).
		Return(&lottery.ReplaceRosterOutput{Count: 2}, nil)

	rec := s.do(http.MethodPost, "/api/upload",
		`{"data":[{"id":"1001","name":"Alice","seat":"A-01"},{"id":"1002","name":"Bob","seat":"A-02"}]}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("saved 2 records", s.decode(rec).Message)
}

func (s *HandlerTestSuite) TestUploadRoster_CSV() {
	s.mockService.EXPECT().
		ReplaceRoster(gomock.Any(), &lottery.ReplaceRosterInput{
			TenantID: s.testTenantID,
			People: []models.Person{
				{ID: "1001", Name: "Alice", Seat: "A-01"},
				{ID: "1002", Name: "Bob"},
			},
		}).
		Return(&lottery.ReplaceRosterOutput{Count: 2}, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "roster.csv")
	s.Require().NoError(err)
	_, err = part.Write([]byte("id,name,seat\n1001,Alice,A-01\n1002,Bob\n"))
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(TenantHeader, s.testTenantID)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestUploadRoster_EmptyIsRejected() {
	s.mockService.EXPECT().
		ReplaceRoster(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: roster is empty", lottery.ErrInvalidInput))

	rec := s.do(http.MethodPost, "/api/upload", `{"data":[]}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestGetRoster() {
	s.mockService.EXPECT().
		GetRoster(gomock.Any(), &lottery.GetRosterInput{TenantID: s.testTenantID}).
		Return(&lottery.GetRosterOutput{People: []models.Person{{ID: "1001", Name: "Alice", Seat: "A-01"}}}, nil)

	rec := s.do(http.MethodGet, "/api/data", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"id":"1001","name":"Alice","seat":"A-01"}]`, string(s.decode(rec).Data))
}

func (s *HandlerTestSuite) TestListWinners_StorageUnavailable() {
	s.mockService.EXPECT().
		ListWinners(gomock.Any(), gomock.Any()).
		Return(nil, lottery.ErrStorageUnavailable)

	rec := s.do(http.MethodGet, "/api/lottery/winners", "")

	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *HandlerTestSuite) TestExportWinners() {
	winTime := time.Date(2026, 1, 23, 19, 5, 0, 0, time.UTC)
	s.mockService.EXPECT().
		ListWinners(gomock.Any(), &lottery.ListWinnersInput{TenantID: s.testTenantID}).
		Return(&lottery.ListWinnersOutput{Winners: []models.WinRecord{
			{ID: "w1", WinnerID: "1001", WinnerName: "Alice", PrizeName: "Mug", PrizeLevelLabel: "Third Prize", WinTime: winTime},
		}}, nil)

	rec := s.do(http.MethodGet, "/api/lottery/export", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/csv", rec.Header().Get("Content-Type"))
	s.Equal("ID,Name,Prize Level,Prize,Win Time\n1001,Alice,Third Prize,Mug,2026-01-23 19:05:00\n", rec.Body.String())
}

func (s *HandlerTestSuite) TestExportWinners_WriteFailureIsLogged() {
	core, logs := observer.New(zap.ErrorLevel)
	handler, err := New(&Config{
		Service: s.mockService,
		Logger:  zap.New(core),
	})
	s.Require().NoError(err)
	router := gin.New()
	handler.RegisterRoutes(router)

	s.mockService.EXPECT().
		ListWinners(gomock.Any(), gomock.Any()).
		Return(&lottery.ListWinnersOutput{Winners: []models.WinRecord{
			{ID: "w1", WinnerID: "1001", WinnerName: "Alice", PrizeName: "Mug"},
		}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/lottery/export", nil)
	req.Header.Set(TenantHeader, s.testTenantID)
	w := &brokenWriter{header: http.Header{}}
	router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.code)
	entries := logs.FilterMessage("failed to write winners export").All()
	s.Require().Len(entries, 1)
	s.Equal(s.testTenantID, entries[0].ContextMap()["tenant_id"])
}
