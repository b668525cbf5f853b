package service

import (
	"context"
	"fmt"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubAPI is the subset of the GitHub API used for repository
// provisioning. Tests substitute a fake implementation.
type GitHubAPI interface {
	CreateRepository(ctx context.Context, org, name, description string) (string, error)
	AddCollaborator(ctx context.Context, org, repo, username string) error
}

// GitHubClient implements GitHubAPI against the real GitHub API
type GitHubClient struct {
	client *github.Client
}

// NewGitHubClient creates a token-authenticated GitHub client. A non-empty
// baseURL points the client at a GitHub Enterprise instance.
func NewGitHubClient(ctx context.Context, token, baseURL string) (*GitHubClient, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, ts)

	client := github.NewClient(httpClient)
	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("configure enterprise URLs: %w", err)
		}
	}

	return &GitHubClient{client: client}, nil
}

// CreateRepository creates a private repository in the organization
func (c *GitHubClient) CreateRepository(ctx context.Context, org, name, description string) (string, error) {
	repo := &github.Repository{
		Name:        github.String(name),
		Description: github.String(description),
		Private:     github.Bool(true),
		AutoInit:    github.Bool(true),
	}

	created, _, err := c.client.Repositories.Create(ctx, org, repo)
	if err != nil {
		return "", fmt.Errorf("create repository: %w", err)
	}
	return created.GetHTMLURL(), nil
}

// AddCollaborator invites a user to the repository with push access
func (c *GitHubClient) AddCollaborator(ctx context.Context, org, repo, username string) error {
	opts := &github.RepositoryAddCollaboratorOptions{Permission: "push"}
	_, _, err := c.client.Repositories.AddCollaborator(ctx, org, repo, username, opts)
	if err != nil {
		return fmt.Errorf("add collaborator %s: %w", username, err)
	}
	return nil
}
