package admin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/CodeSmart-NG/school-service/internal/validator"
)

// usersStore is the one resource store whose bodies do not decode
// straight into the model: the password arrives in plain text, is
// bcrypt-hashed before storage and never appears in responses.
type usersStore struct {
	users repositories.UserRepository
	v     *validator.Validator
}

func newUsersStore(users repositories.UserRepository, v *validator.Validator) Store {
	return &usersStore{users: users, v: v}
}

func (s *usersStore) List(ctx context.Context) (interface{}, error) {
	users, _, err := s.users.List(ctx, repositories.UserFilters{})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

func (s *usersStore) Get(ctx context.Context, id uint) (interface{}, error) {
	return s.users.GetByID(ctx, id)
}

func (s *usersStore) Create(ctx context.Context, body []byte) (interface{}, error) {
	var req validator.UserCreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if verrs := s.v.Validate(&req); verrs != nil {
		return nil, &InvalidRecordError{Fields: verrs}
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if req.Role != "" {
		user.Role = models.UserRole(req.Role)
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *usersStore) Update(ctx context.Context, id uint, body []byte) (interface{}, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var req validator.UserUpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if verrs := s.v.Validate(&req); verrs != nil {
		return nil, &InvalidRecordError{Fields: verrs}
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}
	if req.Password != nil {
		hash, err := HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *usersStore) Delete(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}
