//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/domain/user"
	"field-booking/internal/handler/api"
	resdto "field-booking/internal/handler/dto/response"
	commandsmock "field-booking/internal/mock/commands"
	queriesmock "field-booking/internal/mock/queries"
	"field-booking/internal/testing/builder"
	"field-booking/internal/testing/httptest"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FieldHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFieldCommands
	mockQueries  *queriesmock.MockFieldQueries
	mockBookings *queriesmock.MockBookingQueries
	mockReviews  *queriesmock.MockReviewQueries
	actor        *access.Actor
}

func (s *FieldHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFieldCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFieldQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockReviews = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.actor = actorWith(user.RoleOwner)

	h := api.NewFieldHandler(s.mockCommands, s.mockQueries, s.mockBookings, s.mockReviews)
	s.router = newEngine(s.actor)
	s.router.GET("/fields", h.List)
	s.router.POST("/fields", h.Create)
	s.router.GET("/fields/available", h.Available)
	s.router.GET("/fields/:id", h.Get)
	s.router.PUT("/fields/:id", h.Update)
	s.router.DELETE("/fields/:id", h.Delete)
	s.router.GET("/fields/:id/availability", h.Availability)
	s.router.GET("/fields/:id/bookings", h.Bookings)
	s.router.GET("/fields/:id/reviews", h.Reviews)
	s.router.GET("/fields/:id/facilities", h.Facilities)
	s.router.PUT("/fields/:id/facilities", h.SetFacilities)
}

func (s *FieldHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFieldHandlerSuite(t *testing.T) {
	suite.Run(t, new(FieldHandlerTestSuite))
}

func (s *FieldHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	url := "/fields/" + id.String() + "/availability"

	s.Run("returns the day plan", func() {
		view := &queries.AvailabilityView{
			FieldID:        id,
			Date:           "2025-03-10",
			OpeningTime:    "08:00",
			ClosingTime:    "22:00",
			BookedSlots:    []queries.SlotView{{StartTime: "10:00", EndTime: "12:00"}},
			AvailableSlots: []queries.SlotView{{StartTime: "08:00", EndTime: "10:00"}, {StartTime: "12:00", EndTime: "22:00"}},
		}
		s.mockQueries.EXPECT().Availability(gomock.Any(), id, timeslot.MustParseDate("2025-03-10")).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-03-10", nil)

		var res queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		if diff := cmp.Diff(*view, res); diff != "" {
			s.Failf("availability mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("date is required", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid_request")
	})

	s.Run("unknown field", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), id, gomock.Any()).Return(nil, field.ErrNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-03-10", nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "field_not_found")
	})
}

func (s *FieldHandlerTestSuite) TestCreate() {
	fb := builder.NewFieldBuilder()
	reqBody := fb.BuildCreateRequestDTO()

	s.Run("success", func() {
		created := fb.With(func(b *builder.FieldBuilder) { b.OwnerID = s.actor.ID }).BuildDomain()
		s.mockCommands.EXPECT().Create(gomock.Any(), *s.actor, gomock.Any()).
			DoAndReturn(func(_ any, _ access.Actor, p field.Params) (*field.Field, error) {
				s.Require().NotNil(p.Hours)
				s.Equal(timeslot.MustParseInterval("08:00", "22:00"), *p.Hours)
				s.True(decimal.NewFromInt(100).Equal(p.PricePerHour))
				return created, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/fields", reqBody, httptest.WithBearer(testToken))

		var res resdto.FieldResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal(created.ID(), res.ID)
		s.Equal("08:00", res.OpeningTime)
		s.Equal("22:00", res.ClosingTime)
		s.Equal(fb.Name, res.Name)
	})

	s.Run("hours default when both omitted", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ access.Actor, p field.Params) (*field.Field, error) {
				s.Nil(p.Hours)
				return fb.BuildDomain(), nil
			})

		body := httptest.BodyWith(s.T(), reqBody, httptest.Field("opening_time", nil), httptest.Field("closing_time", nil))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/fields", body, httptest.WithBearer(testToken))

		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("opening time without closing time", func() {
		body := httptest.BodyWith(s.T(), reqBody, httptest.Field("closing_time", nil))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/fields", body, httptest.WithBearer(testToken))

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid_operating_hours")
	})

	s.Run("regular user cannot list a field", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, access.ErrForbidden)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/fields", reqBody, httptest.WithBearer(testToken))

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "unauthorized")
	})
}

func (s *FieldHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	name := "Renamed Pitch"

	s.mockCommands.EXPECT().Update(gomock.Any(), *s.actor, id, commands.FieldPatch{Name: &name}).
		Return(builder.NewFieldBuilder().With(func(b *builder.FieldBuilder) {
			b.ID = id
			b.Name = name
		}).BuildDomain(), nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/fields/"+id.String(), map[string]any{"name": name}, httptest.WithBearer(testToken))

	var res resdto.FieldResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	s.Equal(name, res.Name)
}

func (s *FieldHandlerTestSuite) TestList() {
	s.Run("filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), queries.PageRequest{Page: 1, PerPage: 10}).
			DoAndReturn(func(_ any, f queries.FieldFilter, _ queries.PageRequest) (*queries.FieldPage, error) {
				s.Equal("cairo", f.Governorate)
				s.Equal("turf", f.Search)
				s.Require().NotNil(f.MinPrice)
				s.True(decimal.NewFromInt(50).Equal(*f.MinPrice))
				s.Nil(f.MaxPrice)
				s.Nil(f.OwnerID)
				return &queries.FieldPage{Fields: []*queries.FieldView{}}, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fields?governorate=cairo&min_price=50&search=turf&per_page=10", nil)

		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &queries.FieldPage{})
	})

	s.Run("malformed owner id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fields?owner_id=42", nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid_request")
	})
}

func (s *FieldHandlerTestSuite) TestAvailable() {
	s.Run("search window", func() {
		want := queries.AvailableSearch{
			Date:   timeslot.MustParseDate("2025-03-10"),
			Window: timeslot.MustParseInterval("18:00", "20:00"),
		}
		s.mockQueries.EXPECT().SearchAvailable(gomock.Any(), want, gomock.Any()).Return([]*queries.FieldView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fields/available?date=2025-03-10&start_time=18:00&end_time=20:00", nil)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("window required", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fields/available?date=2025-03-10", nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid_request")
	})
}

func (s *FieldHandlerTestSuite) TestBookingsRequireActor() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fields/"+uuid.NewString()+"/bookings", nil)

	httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "unauthenticated")
}

func (s *FieldHandlerTestSuite) TestFacilities() {
	id := uuid.New()
	url := "/fields/" + id.String() + "/facilities"

	s.Run("public listing", func() {
		s.mockQueries.EXPECT().Facilities(gomock.Any(), id).Return([]string{"Lighting", "Parking"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var names []string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &names)
		s.Equal([]string{"Lighting", "Parking"}, names)
	})

	s.Run("owner replaces the list", func() {
		s.mockCommands.EXPECT().SetFacilities(gomock.Any(), *s.actor, id, []string{"parking", "Showers"}).
			Return([]string{"Showers", "parking"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"facilities": []string{"parking", "Showers"}}, httptest.WithBearer(testToken))

		var names []string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &names)
		s.Equal([]string{"Showers", "parking"}, names)
	})

	s.Run("blank facility", func() {
		s.mockCommands.EXPECT().SetFacilities(gomock.Any(), *s.actor, id, []string{" "}).Return(nil, field.ErrInvalidFacility)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"facilities": []string{" "}}, httptest.WithBearer(testToken))

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid_facility")
	})

	s.Run("unknown field", func() {
		s.mockQueries.EXPECT().Facilities(gomock.Any(), id).Return(nil, field.ErrNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "field_not_found")
	})
}
