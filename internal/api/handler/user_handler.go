package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zerosmoke/health-portal/internal/core/ports"
)

// UserHandler exposes administrator account management.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List godoc
//
// @Summary   List users
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}   domain.User
// @Failure   401  {object}  map[string]string
// @Failure   403  {object}  map[string]string
// @Router    /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get godoc
//
// @Summary   Get a user
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "User ID"
// @Success   200  {object}  domain.User
// @Failure   404  {object}  map[string]string
// @Router    /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create godoc
//
// @Summary   Create a user with an explicit role
// @Tags      users
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      createUserRequest  true  "User"
// @Success   201   {object}  domain.User
// @Failure   400   {object}  map[string]string
// @Router    /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Role:          req.Role,
		AccountStatus: req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update godoc
//
// @Summary   Update a user, including role and status
// @Tags      users
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      string             true  "User ID"
// @Param     body  body      updateUserRequest  true  "Fields to change"
// @Success   200   {object}  domain.User
// @Failure   400   {object}  map[string]string
// @Failure   404   {object}  map[string]string
// @Router    /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Role:          req.Role,
		AccountStatus: req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
//
// @Summary   Delete a user
// @Tags      users
// @Security  BearerAuth
// @Param     id  path  string  true  "User ID"
// @Success   204
// @Failure   404  {object}  map[string]string
// @Router    /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
