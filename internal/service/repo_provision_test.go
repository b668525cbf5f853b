package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/notify"
	"hackathon-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeGitHubAPI records calls and fails invites for configured usernames
type fakeGitHubAPI struct {
	mu            sync.Mutex
	createdRepos  []string
	collaborators []string
	failInviteFor map[string]bool
	createErr     error
}

func (f *fakeGitHubAPI) CreateRepository(ctx context.Context, org, name, description string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdRepos = append(f.createdRepos, name)
	return fmt.Sprintf("https://github.com/%s/%s", org, name), nil
}

func (f *fakeGitHubAPI) AddCollaborator(ctx context.Context, org, repo, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInviteFor[username] {
		return fmt.Errorf("user %s not found", username)
	}
	f.collaborators = append(f.collaborators, username)
	return nil
}

// RepoProvisionServiceTestSuite defines the test suite for RepoProvisionService
type RepoProvisionServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTeamRepo    *mocks.MockTeamRepositoryInterface
	mockProfileRepo *mocks.MockProfileRepositoryInterface
	api             *fakeGitHubAPI
}

// SetupTest sets up the test suite
func (suite *RepoProvisionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockProfileRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.api = &fakeGitHubAPI{failInviteFor: map[string]bool{}}
}

// TearDownTest cleans up after each test
func (suite *RepoProvisionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RepoProvisionServiceTestSuite) newService(api service.GitHubAPI, org string) *service.RepoProvisionService {
	notifier, err := notify.NewMailNotifier(notify.SMTPConfig{}, "")
	suite.Require().NoError(err)
	return service.NewRepoProvisionService(suite.mockTeamRepo, suite.mockProfileRepo, api, notifier, org, 2)
}

// TestProvision tests repository creation and collaborator fan-out
func (suite *RepoProvisionServiceTestSuite) TestProvision() {
	suite.T().Run("Success with slugified name", func(t *testing.T) {
		teamID := uuid.New()
		team := &models.Team{Name: "Rocket Squad #1", Description: "We build rockets"}
		team.ID = teamID

		members := []models.TeamMember{
			{ProfileID: uuid.New(), Profile: &models.Profile{GithubUser: "alice", Email: "alice@test.local"}},
			{ProfileID: uuid.New(), Profile: &models.Profile{GithubUser: "bob", Email: "bob@test.local"}},
			{ProfileID: uuid.New(), Profile: &models.Profile{Email: "nogithub@test.local"}},
		}

		suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
		suite.mockTeamRepo.EXPECT().GetMembers(teamID).Return(members, nil)
		suite.mockTeamRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Team) error {
			assert.Equal(t, "https://github.com/hack-org/rocket-squad-1", updated.RepositoryURL)
			return nil
		})

		svc := suite.newService(suite.api, "hack-org")
		result, err := svc.Provision(context.Background(), teamID)
		assert.NoError(t, err)
		assert.Equal(t, "https://github.com/hack-org/rocket-squad-1", result.RepositoryURL)

		// Members without a GitHub username are skipped
		assert.Len(t, result.Collaborators, 2)
		assert.Equal(t, "alice", result.Collaborators[0].Username)
		assert.Equal(t, "bob", result.Collaborators[1].Username)
		assert.Empty(t, result.Collaborators[0].Error)
	})

	suite.T().Run("Assigned mentor is invited alongside members", func(t *testing.T) {
		teamID := uuid.New()
		mentorID := uuid.New()
		team := &models.Team{Name: "Mentored Team", MentorID: &mentorID}
		team.ID = teamID

		members := []models.TeamMember{
			{ProfileID: uuid.New(), Profile: &models.Profile{GithubUser: "alice", Email: "alice@test.local"}},
		}
		mentor := &models.Profile{FullName: "Mia Mentor", Email: "mia@test.local", GithubUser: "mia-mentor"}
		mentor.ID = mentorID

		suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
		suite.mockTeamRepo.EXPECT().GetMembers(teamID).Return(members, nil)
		suite.mockProfileRepo.EXPECT().GetByID(mentorID).Return(mentor, nil)
		suite.mockTeamRepo.EXPECT().Update(gomock.Any()).Return(nil)

		svc := suite.newService(suite.api, "hack-org")
		result, err := svc.Provision(context.Background(), teamID)
		assert.NoError(t, err)
		assert.Len(t, result.Collaborators, 2)
		assert.Equal(t, "mia-mentor", result.Collaborators[1].Username)
		assert.Contains(t, suite.api.collaborators, "mia-mentor")
	})

	suite.T().Run("Failed invite is reported per collaborator", func(t *testing.T) {
		teamID := uuid.New()
		team := &models.Team{Name: "Partial Team"}
		team.ID = teamID

		members := []models.TeamMember{
			{ProfileID: uuid.New(), Profile: &models.Profile{GithubUser: "good", Email: "good@test.local"}},
			{ProfileID: uuid.New(), Profile: &models.Profile{GithubUser: "ghost", Email: "ghost@test.local"}},
		}

		suite.api.failInviteFor["ghost"] = true

		suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
		suite.mockTeamRepo.EXPECT().GetMembers(teamID).Return(members, nil)
		suite.mockTeamRepo.EXPECT().Update(gomock.Any()).Return(nil)

		svc := suite.newService(suite.api, "hack-org")
		result, err := svc.Provision(context.Background(), teamID)
		assert.NoError(t, err)
		assert.Len(t, result.Collaborators, 2)
		assert.Empty(t, result.Collaborators[0].Error)
		assert.Contains(t, result.Collaborators[1].Error, "not found")
	})

	suite.T().Run("Not configured", func(t *testing.T) {
		svc := suite.newService(nil, "")
		_, err := svc.Provision(context.Background(), uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrRepoNotConfigured)
	})

	suite.T().Run("Team already has a repository", func(t *testing.T) {
		teamID := uuid.New()
		team := &models.Team{Name: "Done Team", RepositoryURL: "https://github.com/hack-org/done-team"}
		team.ID = teamID

		suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)

		svc := suite.newService(suite.api, "hack-org")
		_, err := svc.Provision(context.Background(), teamID)
		assert.True(t, apperrors.IsAlreadyExists(err))
	})

	suite.T().Run("Team not found", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

		svc := suite.newService(suite.api, "hack-org")
		_, err := svc.Provision(context.Background(), teamID)
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})

	suite.T().Run("Repository creation failure aborts", func(t *testing.T) {
		teamID := uuid.New()
		team := &models.Team{Name: "Doomed Team"}
		team.ID = teamID

		api := &fakeGitHubAPI{createErr: fmt.Errorf("rate limited")}

		suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
		suite.mockTeamRepo.EXPECT().GetMembers(teamID).Return(nil, nil)

		svc := suite.newService(api, "hack-org")
		_, err := svc.Provision(context.Background(), teamID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
	})
}

// TestRepoProvisionServiceTestSuite runs the test suite
func TestRepoProvisionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RepoProvisionServiceTestSuite))
}
