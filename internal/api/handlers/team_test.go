package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hackathon-portal-backend/internal/api/handlers"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/service"
	"hackathon-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewTeamHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	api := suite.httpSuite.Router.Group("/api/v1")
	{
		api.POST("/teams", suite.handler.CreateTeam)
		api.GET("/teams", suite.handler.ListTeams)
		api.GET("/teams/:id", suite.handler.GetTeam)
		api.PUT("/teams/:id", suite.handler.UpdateTeam)
		api.PATCH("/teams/:id/status", suite.handler.SetTeamStatus)
		api.POST("/teams/join", suite.handler.JoinTeam)
		api.POST("/teams/:id/leave", suite.handler.LeaveTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *TeamHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		stackID := uuid.New()
		leaderID := uuid.New()

		requestBody := map[string]interface{}{
			"name":          "Rocket Squad",
			"description":   "We build rockets",
			"tech_stack_id": stackID.String(),
			"leader_id":     leaderID.String(),
		}

		expectedResponse := &service.TeamResponse{
			ID:          teamID,
			Name:        "Rocket Squad",
			Description: "We build rockets",
			TechStackID: stackID,
			JoinCode:    "ABCD2345",
			Status:      models.TeamStatusOpen,
			LeaderID:    leaderID,
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.Name, response.Name)
		assert.Equal(t, expectedResponse.JoinCode, response.JoinCode)
		assert.Equal(t, models.TeamStatusOpen, response.Status)
	})

	suite.T().Run("Leader already in a team", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":          "Second Team",
			"tech_stack_id": uuid.New().String(),
			"leader_id":     uuid.New().String(),
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrAlreadyInTeam).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, apperrors.ErrAlreadyInTeam.Error())
	})

	suite.T().Run("Unknown tech stack", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":          "Stackless",
			"tech_stack_id": uuid.New().String(),
			"leader_id":     uuid.New().String(),
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrTechStackNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/v1/teams")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Service Error", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":          "Broken",
			"tech_stack_id": uuid.New().String(),
			"leader_id":     uuid.New().String(),
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, fmt.Errorf("database connection failed")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		expectedResponse := &service.TeamResponse{
			ID:     teamID,
			Name:   "Rocket Squad",
			Status: models.TeamStatusOpen,
			Members: []service.TeamMemberResponse{
				{ProfileID: uuid.New(), FullName: "Alice Adams"},
			},
		}

		suite.mockService.EXPECT().
			GetByID(teamID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, teamID, response.ID)
		assert.Len(t, response.Members, 1)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(teamID).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/"+teamID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, apperrors.ErrTeamNotFound.Error())
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})
}

// TestListTeams tests the ListTeams handler
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.TeamListResponse{
			Teams: []service.TeamResponse{
				{ID: uuid.New(), Name: "Team One"},
				{ID: uuid.New(), Name: "Team Two"},
			},
			Total:    2,
			Page:     1,
			PageSize: 20,
		}

		suite.mockService.EXPECT().
			List(models.TeamStatus(""), 1, 20).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TeamListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Teams, 2)
		assert.Equal(t, int64(2), response.Total)
	})

	suite.T().Run("Status filter and pagination", func(t *testing.T) {
		expectedResponse := &service.TeamListResponse{
			Teams:    []service.TeamResponse{},
			Total:    0,
			Page:     2,
			PageSize: 5,
		}

		suite.mockService.EXPECT().
			List(models.TeamStatusLocked, 2, 5).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams?status=locked&page=2&page_size=5", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestSetTeamStatus tests the SetTeamStatus handler
func (suite *TeamHandlerTestSuite) TestSetTeamStatus() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{"status": "locked"}

		suite.mockService.EXPECT().
			SetStatus(teamID, models.TeamStatusLocked).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/teams/"+teamID.String()+"/status", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid transition", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{"status": "active"}

		suite.mockService.EXPECT().
			SetStatus(teamID, models.TeamStatusActive).
			Return(apperrors.ErrInvalidStatus).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/teams/"+teamID.String()+"/status", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, apperrors.ErrInvalidStatus.Error())
	})

	suite.T().Run("Team not found", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{"status": "open"}

		suite.mockService.EXPECT().
			SetStatus(teamID, models.TeamStatusOpen).
			Return(apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/teams/"+teamID.String()+"/status", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestJoinTeam tests the JoinTeam handler
func (suite *TeamHandlerTestSuite) TestJoinTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		profileID := uuid.New()
		requestBody := map[string]interface{}{
			"join_code":  "ABCD2345",
			"profile_id": profileID.String(),
		}

		expectedResponse := &service.TeamResponse{
			ID:     teamID,
			Name:   "Rocket Squad",
			Status: models.TeamStatusOpen,
		}

		suite.mockService.EXPECT().
			Join("ABCD2345", profileID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, teamID, response.ID)
	})

	suite.T().Run("Unknown join code", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"join_code":  "XXXXXXXX",
			"profile_id": uuid.New().String(),
		}

		suite.mockService.EXPECT().
			Join("XXXXXXXX", gomock.Any()).
			Return(nil, apperrors.ErrInvalidJoinCode).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, apperrors.ErrInvalidJoinCode.Error())
	})

	suite.T().Run("Team full", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"join_code":  "ABCD2345",
			"profile_id": uuid.New().String(),
		}

		suite.mockService.EXPECT().
			Join("ABCD2345", gomock.Any()).
			Return(nil, apperrors.ErrTeamFull).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, apperrors.ErrTeamFull.Error())
	})

	suite.T().Run("Team not open", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"join_code":  "ABCD2345",
			"profile_id": uuid.New().String(),
		}

		suite.mockService.EXPECT().
			Join("ABCD2345", gomock.Any()).
			Return(nil, apperrors.ErrInvalidStatus).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Missing join code", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"profile_id": uuid.New().String(),
		}

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestLeaveTeam tests the LeaveTeam handler
func (suite *TeamHandlerTestSuite) TestLeaveTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		profileID := uuid.New()
		requestBody := map[string]interface{}{"profile_id": profileID.String()}

		suite.mockService.EXPECT().
			Leave(teamID, profileID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/"+teamID.String()+"/leave", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not a member", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{"profile_id": uuid.New().String()}

		suite.mockService.EXPECT().
			Leave(teamID, gomock.Any()).
			Return(apperrors.ErrNotTeamMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/"+teamID.String()+"/leave", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, apperrors.ErrNotTeamMember.Error())
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
