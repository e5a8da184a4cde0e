package services

import (
	"context"

	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/pkg/rest"
	"github.com/labelsight/labelsight/pkg/validate"
)

// ListUsersParams are the /users filters.
type ListUsersParams struct {
	Skip    int
	Limit   int
	Role    string
	Keyword string
}

// UserCreateInput is the POST /users/email payload.
type UserCreateInput struct {
	Email        string `json:"email"         validate:"required,email"`
	EmployeeCode string `json:"employee_code" validate:"required,max=100"`
	Name         string `json:"name"          validate:"required,max=255"`
	Role         string `json:"role"          validate:"required,in=ADMIN,EMPLOYEE"`
	AvatarURL    string `json:"avatar_url"    validate:"nullable"`
}

// UserUpdateInput is the PUT /users/email/{email} payload. Email itself is
// immutable; it only addresses the record.
type UserUpdateInput struct {
	Name      string `json:"name"       validate:"required,max=255"`
	Role      string `json:"role"       validate:"required,in=ADMIN,EMPLOYEE"`
	AvatarURL string `json:"avatar_url" validate:"nullable"`
}

// UserService calls the /users and /me endpoints.
type UserService struct {
	client *rest.Client
}

func NewUserService(client *rest.Client) *UserService {
	return &UserService{client: client}
}

// Me fetches the account behind the current bearer token.
func (s *UserService) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Get("/me").Result(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// List fetches one page of employee accounts.
func (s *UserService) List(ctx context.Context, p ListUsersParams) (*models.UserPage, error) {
	var page models.UserPage
	err := s.client.Get("/users").
		QueryInt("skip", p.Skip).
		QueryInt("limit", p.Limit).
		Query("role", p.Role).
		Query("keyword", p.Keyword).
		Result(ctx, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Create validates in and registers a new account keyed by email.
func (s *UserService) Create(ctx context.Context, in UserCreateInput) (*models.User, error) {
	if err := validate.AsError(validate.Struct(in)); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.client.Post("/users/email").Body(in).Result(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update replaces the mutable fields of the account addressed by email.
func (s *UserService) Update(ctx context.Context, email string, in UserUpdateInput) (*models.User, error) {
	if err := validate.AsError(validate.Struct(in)); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.client.Put("/users/email/" + email).Body(in).Result(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the account addressed by email.
func (s *UserService) Delete(ctx context.Context, email string) error {
	return s.client.Delete("/users/email/" + email).Result(ctx, nil)
}
