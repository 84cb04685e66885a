package services

import (
	"context"
	"fmt"
	"time"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/user"
	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/models"
)

// UserService manages user records and doubles as the calendar credential
// store: tokens live on the user row.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// CreateUser registers a user
func (s *UserService) CreateUser(httpCtx context.Context, req models.CreateUserRequest) (*ent.User, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Email == "" {
		return nil, NewValidationError("email", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := s.client.User.Create().
		SetID(req.UserID).
		SetName(req.Name).
		SetEmail(req.Email).
		SetCreatedAt(time.Now())
	if req.Timezone != "" {
		builder.SetTimezone(req.Timezone)
	}

	u, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUsersByIDs retrieves users by their IDs. Missing IDs are simply absent
// from the result; callers that need all participants check the length.
func (s *UserService) GetUsersByIDs(ctx context.Context, userIDs []string) ([]*ent.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	users, err := s.client.User.Query().
		Where(user.IDIn(userIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// FindUsersByNames resolves display names to user rows. The orchestrator
// uses this to turn "영희랑 철수" into participant IDs. Names that resolve
// to nothing are skipped; ambiguous names resolve to the oldest account.
func (s *UserService) FindUsersByNames(ctx context.Context, names []string) ([]*ent.User, error) {
	if len(names) == 0 {
		return nil, nil
	}

	found := make([]*ent.User, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		u, err := s.client.User.Query().
			Where(user.NameEQ(name)).
			Order(ent.Asc(user.FieldCreatedAt)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to find user by name: %w", err)
		}
		if !seen[u.ID] {
			seen[u.ID] = true
			found = append(found, u)
		}
	}
	return found, nil
}

// DisplayNames returns an id → name map for the given users. IDs with no
// user row fall back to the raw id so transcripts never show blanks.
func (s *UserService) DisplayNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	for _, id := range userIDs {
		names[id] = id
	}

	users, err := s.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

// Credentials implements calendar.CredentialStore. A user without stored
// tokens yields zero credentials and no error; the token source downgrades
// that to "no calendar".
func (s *UserService) Credentials(ctx context.Context, userID string) (calendar.UserCredentials, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return calendar.UserCredentials{}, ErrNotFound
		}
		return calendar.UserCredentials{}, fmt.Errorf("failed to load credentials: %w", err)
	}

	var creds calendar.UserCredentials
	if u.AccessToken != nil {
		creds.AccessToken = *u.AccessToken
	}
	if u.RefreshToken != nil {
		creds.RefreshToken = *u.RefreshToken
	}
	if u.TokenExpiry != nil {
		creds.Expiry = *u.TokenExpiry
	}
	return creds, nil
}

// SaveTokens implements calendar.CredentialStore: persists a refreshed
// access token and its expiry.
func (s *UserService) SaveTokens(ctx context.Context, userID, accessToken string, expiry time.Time) error {
	err := s.client.User.UpdateOneID(userID).
		SetAccessToken(accessToken).
		SetTokenExpiry(expiry).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save tokens: %w", err)
	}
	return nil
}
