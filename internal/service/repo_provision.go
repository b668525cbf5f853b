package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/notify"
	"hackathon-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RepoProvisionService creates a GitHub repository for a team and invites
// its members as collaborators.
type RepoProvisionService struct {
	teamRepo    repository.TeamRepositoryInterface
	profileRepo repository.ProfileRepositoryInterface
	api         GitHubAPI
	notifier    notify.Notifier
	org         string
	concurrency int
	log         *logger.Logger
}

// NewRepoProvisionService creates a new repo provisioning service. A nil
// api or empty org leaves the service unconfigured; provisioning then
// fails with ErrRepoNotConfigured.
func NewRepoProvisionService(teamRepo repository.TeamRepositoryInterface, profileRepo repository.ProfileRepositoryInterface, api GitHubAPI, notifier notify.Notifier, org string, concurrency int) *RepoProvisionService {
	if concurrency < 1 {
		concurrency = 4
	}
	return &RepoProvisionService{
		teamRepo:    teamRepo,
		profileRepo: profileRepo,
		api:         api,
		notifier:    notifier,
		org:         org,
		concurrency: concurrency,
		log:         logger.New(),
	}
}

// CollaboratorResult records the outcome for one invited member
type CollaboratorResult struct {
	Username string `json:"username"`
	Error    string `json:"error,omitempty"`
}

// ProvisionResult is the outcome of provisioning a team repository
type ProvisionResult struct {
	TeamID        uuid.UUID            `json:"team_id"`
	RepositoryURL string               `json:"repository_url"`
	Collaborators []CollaboratorResult `json:"collaborators"`
}

// Provision creates the repository and fans out collaborator invites
// with bounded concurrency. A failed invite is reported per collaborator
// and does not fail the provisioning.
func (s *RepoProvisionService) Provision(ctx context.Context, teamID uuid.UUID) (*ProvisionResult, error) {
	if s.api == nil || s.org == "" {
		return nil, apperrors.ErrRepoNotConfigured
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if team.RepositoryURL != "" {
		return nil, apperrors.NewAlreadyExistsError("repository", "for this team")
	}

	members, err := s.teamRepo.GetMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	repoName := slugify(team.Name)
	url, err := s.api.CreateRepository(ctx, s.org, repoName, team.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}

	// Collect members with a GitHub username; the rest are skipped.
	// The assigned mentor is invited alongside the members.
	var usernames []string
	for _, m := range members {
		if m.Profile != nil && m.Profile.GithubUser != "" {
			usernames = append(usernames, m.Profile.GithubUser)
		}
	}
	if team.MentorID != nil {
		mentor, err := s.profileRepo.GetByID(*team.MentorID)
		if err != nil {
			return nil, fmt.Errorf("failed to load mentor: %w", err)
		}
		if mentor.GithubUser != "" {
			usernames = append(usernames, mentor.GithubUser)
		}
	}

	results := s.inviteAll(ctx, repoName, usernames)

	team.RepositoryURL = url
	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to store repository URL: %w", err)
	}

	s.notifyProvisioned(team.Name, url, members)

	return &ProvisionResult{
		TeamID:        teamID,
		RepositoryURL: url,
		Collaborators: results,
	}, nil
}

// inviteAll adds collaborators concurrently, bounded by the configured
// worker count, preserving the input order in the results.
func (s *RepoProvisionService) inviteAll(ctx context.Context, repoName string, usernames []string) []CollaboratorResult {
	results := make([]CollaboratorResult, len(usernames))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, username := range usernames {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, username string) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i].Username = username
			if err := s.api.AddCollaborator(ctx, s.org, repoName, username); err != nil {
				results[i].Error = err.Error()
			}
		}(i, username)
	}
	wg.Wait()

	return results
}

// notifyProvisioned emails every team member the repository link.
// Failures are logged and never fail the provisioning.
func (s *RepoProvisionService) notifyProvisioned(teamName, url string, members []models.TeamMember) {
	if !s.notifier.Enabled() {
		return
	}
	for _, m := range members {
		if m.Profile == nil {
			continue
		}
		data := map[string]interface{}{
			"FullName":      m.Profile.FullName,
			"TeamName":      teamName,
			"RepositoryURL": url,
		}
		if err := s.notifier.Send("repository_ready", m.Profile.Email, data); err != nil {
			s.log.WithError(err).WithField("email", m.Profile.Email).Warn("repository notification failed")
		}
	}
}

// slugify converts a team name to a repository-safe name
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
