//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomescape-api/internal/handler/api"
	resdto "roomescape-api/internal/handler/dto/response"
	"roomescape-api/internal/usecase"
	"roomescape-api/internal/usecase/queries"
	usecasemock "roomescape-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimeSlotHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockTimeSlot     *usecasemock.MockTimeSlotUseCase
	mockAvailability *usecasemock.MockAvailabilityUseCase
}

func (s *TimeSlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTimeSlot = usecasemock.NewMockTimeSlotUseCase(s.mockCtrl)
	s.mockAvailability = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)
	handler := api.NewTimeSlotHandler(s.mockTimeSlot, s.mockAvailability)

	s.router.GET("/times", handler.List)
	s.router.GET("/times/available", handler.Available)
	s.router.POST("/times", handler.Create)
	s.router.DELETE("/times/:id", handler.Delete)
}

func (s *TimeSlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTimeSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(TimeSlotHandlerTestSuite))
}

func (s *TimeSlotHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TimeSlotHandlerTestSuite) TestAvailable() {
	s.Run("reports every catalog slot with its booked flag", func() {
		slots := []*queries.AvailableSlotView{
			{TimeID: 1, StartAt: "01:00", Booked: true},
			{TimeID: 2, StartAt: "02:00", Booked: false},
		}
		s.mockAvailability.EXPECT().
			ListSlots(gomock.Any(), gomock.Any(), int64(5)).
			Return(slots, nil)

		rec := s.get("/times/available?date=2026-09-01&themeId=5")
		s.Equal(http.StatusOK, rec.Code)

		var res []resdto.AvailableSlotResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		s.Require().Len(res, 2)
		s.True(res[0].Booked)
		s.False(res[1].Booked)
	})

	s.Run("400 without a parseable date", func() {
		rec := s.get("/times/available?date=bogus&themeId=5")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("400 without a numeric theme id", func() {
		rec := s.get("/times/available?date=2026-09-01&themeId=five")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *TimeSlotHandlerTestSuite) TestCreate() {
	s.Run("201 with the stored slot", func() {
		s.mockTimeSlot.EXPECT().Create(gomock.Any(), "10:00").
			Return(&queries.TimeSlotView{ID: 1, StartAt: "10:00"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/times", jsonBody(s.T(), map[string]any{"startAt": "10:00"}))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("409 on a duplicate start time", func() {
		s.mockTimeSlot.EXPECT().Create(gomock.Any(), "10:00").
			Return(nil, usecase.ErrDuplicateTime)

		req := httptest.NewRequest(http.MethodPost, "/times", jsonBody(s.T(), map[string]any{"startAt": "10:00"}))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *TimeSlotHandlerTestSuite) TestDelete() {
	s.Run("400 when the time is still referenced", func() {
		s.mockTimeSlot.EXPECT().Delete(gomock.Any(), int64(1)).Return(usecase.ErrTimeInUse)

		req := httptest.NewRequest(http.MethodDelete, "/times/1", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
