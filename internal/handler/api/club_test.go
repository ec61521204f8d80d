//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"field-booking/internal/domain/club"
	"field-booking/internal/domain/user"
	"field-booking/internal/handler/api"
	queriesmock "field-booking/internal/mock/queries"
	"field-booking/internal/testing/httptest"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClubHandler(t *testing.T) {
	ownerID := uuid.New()
	minRating := 4.0

	tests := []struct {
		name       string
		url        string
		setupMock  func(q *queriesmock.MockClubQueries)
		wantStatus int
		wantReason string
		check      func(t *testing.T, body string)
	}{
		{
			name: "details",
			url:  "/clubs/" + ownerID.String(),
			setupMock: func(q *queriesmock.MockClubQueries) {
				q.EXPECT().Get(gomock.Any(), ownerID).Return(&queries.ClubDetailView{
					ClubView:        queries.ClubView{ID: ownerID, Name: "Nile Sports", TotalFields: 2},
					RegisteredTeams: 3,
					Fields:          []*queries.ClubFieldView{},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body string) {
				assert.Contains(t, body, `"name":"Nile Sports"`)
				assert.Contains(t, body, `"registered_teams":3`)
			},
		},
		{
			name: "unknown owner",
			url:  "/clubs/" + ownerID.String(),
			setupMock: func(q *queriesmock.MockClubQueries) {
				q.EXPECT().Get(gomock.Any(), ownerID).Return(nil, club.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantReason: "club_not_found",
		},
		{
			name:       "malformed owner id",
			url:        "/clubs/nile",
			setupMock:  func(*queriesmock.MockClubQueries) {},
			wantStatus: http.StatusBadRequest,
			wantReason: "invalid_id",
		},
		{
			name: "search by rating",
			url:  "/clubs/search?governorate=Cairo&min_rating=4&sort_by=rating&sort_order=desc",
			setupMock: func(q *queriesmock.MockClubQueries) {
				filter := queries.ClubFilter{Governorate: "Cairo", MinRating: &minRating, SortBy: club.SortByRating, Desc: true}
				q.EXPECT().Search(gomock.Any(), filter, queries.PageRequest{}.Normalize()).
					Return(&queries.ClubPage{Clubs: []*queries.ClubView{{ID: ownerID, AverageRating: 4.5}}}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body string) {
				assert.Contains(t, body, `"average_rating":4.5`)
			},
		},
		{
			name:       "search rejects ratings above five",
			url:        "/clubs/search?min_rating=7",
			setupMock:  func(*queriesmock.MockClubQueries) {},
			wantStatus: http.StatusBadRequest,
			wantReason: "invalid_request",
		},
		{
			name: "top rated",
			url:  "/clubs/top-rated?limit=3",
			setupMock: func(q *queriesmock.MockClubQueries) {
				q.EXPECT().TopRated(gomock.Any(), 3).Return([]*queries.ClubView{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "top rated limit too large",
			url:        "/clubs/top-rated?limit=500",
			setupMock:  func(*queriesmock.MockClubQueries) {},
			wantStatus: http.StatusBadRequest,
			wantReason: "invalid_request",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := queriesmock.NewMockClubQueries(ctrl)
			tc.setupMock(q)

			h := api.NewClubHandler(q)
			router := newEngine(actorWith(user.RoleUser))
			router.GET("/clubs/search", h.Search)
			router.GET("/clubs/top-rated", h.TopRated)
			router.GET("/clubs/:ownerId", h.Get)

			w := httptest.PerformRequest(t, router, http.MethodGet, tc.url, nil)

			if tc.wantReason != "" {
				httptest.AssertErrorResponse(t, w, tc.wantStatus, tc.wantReason)
				return
			}
			require.Equal(t, tc.wantStatus, w.Code, w.Body.String())
			if tc.check != nil {
				tc.check(t, w.Body.String())
			}
		})
	}
}
