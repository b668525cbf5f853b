package service_test

import (
	"testing"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fixedRand is a deterministic Rand for join code generation
type fixedRand struct{ next int }

func (r *fixedRand) Intn(n int) int {
	v := r.next % n
	r.next++
	return v
}

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTeamRepo    *mocks.MockTeamRepositoryInterface
	mockProfileRepo *mocks.MockProfileRepositoryInterface
	mockStackRepo   *mocks.MockTechnologyStackRepositoryInterface
	teamService     *service.TeamService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockProfileRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockStackRepo = mocks.NewMockTechnologyStackRepositoryInterface(suite.ctrl)

	suite.teamService = service.NewTeamService(
		suite.mockTeamRepo,
		suite.mockProfileRepo,
		suite.mockStackRepo,
		&fixedRand{},
		3,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests team creation including the join code path
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		stackID := uuid.New()
		leaderID := uuid.New()

		req := &service.CreateTeamRequest{
			Name:        "Rocket Squad",
			Description: "We build rockets",
			TechStackID: stackID,
			LeaderID:    leaderID,
		}

		suite.mockStackRepo.EXPECT().GetByID(stackID).Return(&models.TechnologyStack{}, nil)
		suite.mockProfileRepo.EXPECT().GetByID(leaderID).Return(&models.Profile{}, nil)
		suite.mockTeamRepo.EXPECT().GetMembershipByProfile(leaderID).Return(nil, gorm.ErrRecordNotFound)
		suite.mockTeamRepo.EXPECT().GetByJoinCode(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		suite.mockTeamRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(team *models.Team) error {
			assert.Equal(t, models.TeamStatusOpen, team.Status)
			assert.Len(t, team.JoinCode, 8)
			team.ID = uuid.New()
			return nil
		})
		suite.mockTeamRepo.EXPECT().AddMember(gomock.Any()).DoAndReturn(func(member *models.TeamMember) error {
			assert.Equal(t, leaderID, member.ProfileID)
			return nil
		})

		resp, err := suite.teamService.Create(req)
		assert.NoError(t, err)
		assert.Equal(t, "Rocket Squad", resp.Name)
		assert.Equal(t, leaderID, resp.LeaderID)
		assert.Len(t, resp.Members, 1)
	})

	suite.T().Run("Join code collision retried", func(t *testing.T) {
		stackID := uuid.New()
		leaderID := uuid.New()

		req := &service.CreateTeamRequest{
			Name:        "Retry Team",
			TechStackID: stackID,
			LeaderID:    leaderID,
		}

		suite.mockStackRepo.EXPECT().GetByID(stackID).Return(&models.TechnologyStack{}, nil)
		suite.mockProfileRepo.EXPECT().GetByID(leaderID).Return(&models.Profile{}, nil)
		suite.mockTeamRepo.EXPECT().GetMembershipByProfile(leaderID).Return(nil, gorm.ErrRecordNotFound)

		// First code collides, second is free
		gomock.InOrder(
			suite.mockTeamRepo.EXPECT().GetByJoinCode(gomock.Any()).Return(&models.Team{}, nil),
			suite.mockTeamRepo.EXPECT().GetByJoinCode(gomock.Any()).Return(nil, gorm.ErrRecordNotFound),
		)
		suite.mockTeamRepo.EXPECT().Create(gomock.Any()).Return(nil)
		suite.mockTeamRepo.EXPECT().AddMember(gomock.Any()).Return(nil)

		_, err := suite.teamService.Create(req)
		assert.NoError(t, err)
	})

	suite.T().Run("Leader already in a team", func(t *testing.T) {
		stackID := uuid.New()
		leaderID := uuid.New()

		req := &service.CreateTeamRequest{
			Name:        "Second Team",
			TechStackID: stackID,
			LeaderID:    leaderID,
		}

		suite.mockStackRepo.EXPECT().GetByID(stackID).Return(&models.TechnologyStack{}, nil)
		suite.mockProfileRepo.EXPECT().GetByID(leaderID).Return(&models.Profile{}, nil)
		suite.mockTeamRepo.EXPECT().GetMembershipByProfile(leaderID).Return(&models.TeamMember{}, nil)

		_, err := suite.teamService.Create(req)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyInTeam)
	})

	suite.T().Run("Stack not found", func(t *testing.T) {
		req := &service.CreateTeamRequest{
			Name:        "No Stack",
			TechStackID: uuid.New(),
			LeaderID:    uuid.New(),
		}

		suite.mockStackRepo.EXPECT().GetByID(req.TechStackID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.teamService.Create(req)
		assert.ErrorIs(t, err, apperrors.ErrTechStackNotFound)
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		req := &service.CreateTeamRequest{Name: ""}

		_, err := suite.teamService.Create(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

// TestJoinTeam tests joining via join code
func (suite *TeamServiceTestSuite) TestJoinTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		profileID := uuid.New()
		team := &models.Team{Status: models.TeamStatusOpen}
		team.ID = teamID

		suite.mockTeamRepo.EXPECT().GetByJoinCode("GOODCODE").Return(team, nil)
		suite.mockTeamRepo.EXPECT().GetMembershipByProfile(profileID).Return(nil, gorm.ErrRecordNotFound)
		suite.mockTeamRepo.EXPECT().MemberCount(teamID).Return(int64(1), nil)
		suite.mockTeamRepo.EXPECT().AddMember(gomock.Any()).Return(nil)
		suite.mockTeamRepo.EXPECT().GetMembers(teamID).Return([]models.TeamMember{{TeamID: teamID, ProfileID: profileID}}, nil)

		resp, err := suite.teamService.Join("GOODCODE", profileID)
		assert.NoError(t, err)
		assert.Len(t, resp.Members, 1)
	})

	suite.T().Run("Unknown code", func(t *testing.T) {
		suite.mockTeamRepo.EXPECT().GetByJoinCode("BADCODE1").Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.teamService.Join("BADCODE1", uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrInvalidJoinCode)
	})

	suite.T().Run("Team not open", func(t *testing.T) {
		team := &models.Team{Status: models.TeamStatusLocked}

		suite.mockTeamRepo.EXPECT().GetByJoinCode("LOCKED12").Return(team, nil)

		_, err := suite.teamService.Join("LOCKED12", uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	suite.T().Run("Already in a team", func(t *testing.T) {
		profileID := uuid.New()
		team := &models.Team{Status: models.TeamStatusOpen}

		suite.mockTeamRepo.EXPECT().GetByJoinCode("OPENCODE").Return(team, nil)
		suite.mockTeamRepo.EXPECT().GetMembershipByProfile(profileID).Return(&models.TeamMember{}, nil)

		_, err := suite.teamService.Join("OPENCODE", profileID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyInTeam)
	})

	suite.T().Run("Team full", func(t *testing.T) {
		teamID := uuid.New()
		profileID := uuid.New()
		team := &models.Team{Status: models.TeamStatusOpen}
		team.ID = teamID

		suite.mockTeamRepo.EXPECT().GetByJoinCode("FULLTEAM").Return(team, nil)
		suite.mockTeamRepo.EXPECT().GetMembershipByProfile(profileID).Return(nil, gorm.ErrRecordNotFound)
		suite.mockTeamRepo.EXPECT().MemberCount(teamID).Return(int64(3), nil)

		_, err := suite.teamService.Join("FULLTEAM", profileID)
		assert.ErrorIs(t, err, apperrors.ErrTeamFull)
	})
}

// TestLeaveTeam tests leaving, leader promotion and parking empty teams
func (suite *TeamServiceTestSuite) TestLeaveTeam() {
	suite.T().Run("Leader leaving promotes earliest member", func(t *testing.T) {
		teamID := uuid.New()
		leaderID := uuid.New()
		successorID := uuid.New()
		team := &models.Team{LeaderID: leaderID}
		team.ID = teamID

		suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
		suite.mockTeamRepo.EXPECT().RemoveMember(teamID, leaderID).Return(nil)
		suite.mockTeamRepo.EXPECT().GetMembers(teamID).Return([]models.TeamMember{
			{TeamID: teamID, ProfileID: successorID},
			{TeamID: teamID, ProfileID: uuid.New()},
		}, nil)
		suite.mockTeamRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Team) error {
			assert.Equal(t, successorID, updated.LeaderID)
			return nil
		})

		err := suite.teamService.Leave(teamID, leaderID)
		assert.NoError(t, err)
	})

	suite.T().Run("Last member leaving parks the team in draft", func(t *testing.T) {
		teamID := uuid.New()
		profileID := uuid.New()
		team := &models.Team{LeaderID: profileID}
		team.ID = teamID

		suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
		suite.mockTeamRepo.EXPECT().RemoveMember(teamID, profileID).Return(nil)
		suite.mockTeamRepo.EXPECT().GetMembers(teamID).Return(nil, nil)
		suite.mockTeamRepo.EXPECT().SetStatus(teamID, models.TeamStatusDraft).Return(nil)

		err := suite.teamService.Leave(teamID, profileID)
		assert.NoError(t, err)
	})

	suite.T().Run("Non-member leaving", func(t *testing.T) {
		teamID := uuid.New()
		profileID := uuid.New()
		team := &models.Team{LeaderID: uuid.New()}
		team.ID = teamID

		suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
		suite.mockTeamRepo.EXPECT().RemoveMember(teamID, profileID).Return(gorm.ErrRecordNotFound)

		err := suite.teamService.Leave(teamID, profileID)
		assert.ErrorIs(t, err, apperrors.ErrNotTeamMember)
	})

	suite.T().Run("Regular member leaving keeps the leader", func(t *testing.T) {
		teamID := uuid.New()
		leaderID := uuid.New()
		memberID := uuid.New()
		team := &models.Team{LeaderID: leaderID}
		team.ID = teamID

		suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
		suite.mockTeamRepo.EXPECT().RemoveMember(teamID, memberID).Return(nil)
		suite.mockTeamRepo.EXPECT().GetMembers(teamID).Return([]models.TeamMember{
			{TeamID: teamID, ProfileID: leaderID},
		}, nil)

		err := suite.teamService.Leave(teamID, memberID)
		assert.NoError(t, err)
	})
}

// TestSetTeamStatus tests lifecycle transitions
func (suite *TeamServiceTestSuite) TestSetTeamStatus() {
	testCases := []struct {
		name        string
		from        models.TeamStatus
		to          models.TeamStatus
		expectError bool
	}{
		{"Open to locked", models.TeamStatusOpen, models.TeamStatusLocked, false},
		{"Locked to pending mentor", models.TeamStatusLocked, models.TeamStatusPendingMentor, false},
		{"Pending mentor to active", models.TeamStatusPendingMentor, models.TeamStatusActive, false},
		{"Locked back to open", models.TeamStatusLocked, models.TeamStatusOpen, false},
		{"Open straight to active", models.TeamStatusOpen, models.TeamStatusActive, true},
		{"Active is terminal", models.TeamStatusActive, models.TeamStatusOpen, true},
		{"Draft to locked", models.TeamStatusDraft, models.TeamStatusLocked, true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			teamID := uuid.New()
			team := &models.Team{Status: tc.from}
			team.ID = teamID

			suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
			if !tc.expectError {
				suite.mockTeamRepo.EXPECT().SetStatus(teamID, tc.to).Return(nil)
			}

			err := suite.teamService.SetStatus(teamID, tc.to)
			if tc.expectError {
				assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestGetTeamByID tests retrieval
func (suite *TeamServiceTestSuite) TestGetTeamByID() {
	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockTeamRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.teamService.GetByID(id)
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
