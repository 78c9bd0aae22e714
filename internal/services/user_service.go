package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"users-api/internal/models"
	"users-api/internal/repositories"
)

// userService implements UserService
type userService struct {
	userRepo  repositories.UserRepository
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{
		userRepo:  userRepo,
		validator: validator.New(),
	}
}

// GetUser parses rawID and retrieves the user from the repository
func (s *userService) GetUser(ctx context.Context, rawID string) (*models.User, error) {
	id, err := ParseUserID(rawID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	return user, nil
}

// ListUsers retrieves all users from the repository
func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// CreateUser decodes body and echoes the user back. Nothing is stored.
func (s *userService) CreateUser(ctx context.Context, body []byte) (*models.User, error) {
	req, err := decodeCreateUserRequest(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUserPayload, err)
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUserPayload, err)
	}

	return models.NewUser(*req.Username, *req.Email), nil
}

// decodeCreateUserRequest matches keys exactly. encoding/json folds case when
// decoding into a struct and lets a repeated key win, so the object is split
// into raw fields first and only "username" and "email" are decoded.
func decodeCreateUserRequest(body []byte) (*CreateUserRequest, error) {
	if !utf8.Valid(body) {
		return nil, errors.New("body is not valid UTF-8")
	}

	if err := checkDuplicateKeys(body); err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("body is not a JSON object")
	}

	var req CreateUserRequest
	if raw, ok := fields["username"]; ok {
		if err := json.Unmarshal(raw, &req.Username); err != nil {
			return nil, fmt.Errorf("username: %w", err)
		}
	}
	if raw, ok := fields["email"]; ok {
		if err := json.Unmarshal(raw, &req.Email); err != nil {
			return nil, fmt.Errorf("email: %w", err)
		}
	}

	return &req, nil
}

// checkDuplicateKeys rejects a top-level object that repeats a key.
// Anything that is not an object is left to the full decode.
func checkDuplicateKeys(body []byte) error {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate field %q", key)
		}
		seen[key] = struct{}{}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
	}

	return nil
}

// ParseUserID parses an unsigned 64-bit decimal ID. One leading '+' is
// accepted and leading zeros are dropped, so "+007" is ID 7.
func ParseUserID(raw string) (uint64, error) {
	digits := strings.TrimPrefix(raw, "+")

	id, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidUserID, raw, err)
	}

	return id, nil
}
