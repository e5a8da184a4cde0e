package controllers

import (
	"context"

	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/app/services"
	"github.com/labelsight/labelsight/pkg/collection"
)

// UserStats are the employee screen's header numbers. All but TotalFromAPI
// are derived from the currently loaded page.
type UserStats struct {
	Total          int  // loaded on this page
	Administrators int  // ADMIN accounts on this page
	Employees      int  // EMPLOYEE accounts on this page
	TotalFromAPI   int  // server-side total for the committed filters
	ShowingAll     bool // the loaded page is the whole result set
}

// UserListController is the employee screen's state: a paged account
// collection filtered by role and debounced keyword.
type UserListController struct {
	*ListController[models.User]
}

// NewUserListController wires the generic list controller to the user
// service. The filter value is a role ("" for all); deletion addresses
// accounts by email.
func NewUserListController(ctx context.Context, svc *services.UserService, opts ...ListOption) *UserListController {
	fetch := func(ctx context.Context, p FetchParams) ([]models.User, int, error) {
		page, err := svc.List(ctx, services.ListUsersParams{
			Skip:    p.Skip,
			Limit:   p.Limit,
			Role:    p.Filter,
			Keyword: p.Keyword,
		})
		if err != nil {
			return nil, 0, err
		}
		return page.Users, page.Total, nil
	}

	return &UserListController{
		ListController: NewListController(ctx, fetch, svc.Delete, opts...),
	}
}

// SetRole commits a role filter ("" clears it) and refetches.
func (c *UserListController) SetRole(role string) error {
	return c.SetFilter(role)
}

// Stats derives the header numbers from the loaded page plus the server
// total.
func (c *UserListController) Stats() UserStats {
	users := c.Items()
	total := c.Total()

	return UserStats{
		Total:          len(users),
		Administrators: collection.CountWhere(users, models.User.IsAdmin),
		Employees:      collection.CountWhere(users, func(u models.User) bool { return u.Role == models.RoleEmployee }),
		TotalFromAPI:   total,
		ShowingAll:     len(users) == total,
	}
}
