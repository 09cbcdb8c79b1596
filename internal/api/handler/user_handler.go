package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/user-management/internal/core/domain"
	"github.com/adminhub/user-management/internal/core/ports"
)

// UserHandler handles HTTP requests for user record operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /v1/users.
//
// @Summary      List user records
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        filter       query     string  false  "Case-insensitive substring filter on name and role"
// @Param        page         query     int     false  "1-based page number"
// @Param        limit        query     int     false  "Rows per page (max 100)"
// @Param        date_format  query     string  false  "Timestamp display mode: short, date, time, full"
// @Success      200          {object}  listUsersResponse
// @Failure      401          {object}  errorResponse
// @Failure      500          {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListUsersInput{
		Filter: c.QueryParam("filter"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result, c.QueryParam("date_format")))
}

// Stats handles GET /v1/users/stats.
//
// @Summary      Aggregate user counts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/users/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		Total:    stats.Total,
		Active:   stats.Active,
		Inactive: stats.Inactive,
	})
}

// Get handles GET /v1/users/:id.
//
// @Summary      Get a user record
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create handles POST /v1/users.
//
// @Summary      Add a user record
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New record"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, _ := c.Get("username").(string)
	created, err := h.service.Create(c.Request().Context(), toCreateInput(req, actor))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(created))
}

// Update handles PUT /v1/users/:id.
//
// @Summary      Edit a user record
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Record ID"
// @Param        body  body      updateUserRequest  true  "Partial patch"
// @Success      200   {object}  userResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, _ := c.Get("username").(string)
	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req, actor))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// ToggleStatus handles PATCH /v1/users/:id/status.
//
// @Summary      Toggle a record's active flag
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id}/status [patch]
func (h *UserHandler) ToggleStatus(c echo.Context) error {
	actor, _ := c.Get("username").(string)
	updated, err := h.service.ToggleStatus(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete handles DELETE /v1/users/:id. Without confirm=true the gate
// declines and the response carries the confirmation prompt; the store is
// never reached.
//
// @Summary      Delete a user record
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id       path   string  true   "Record ID"
// @Param        confirm  query  bool    false  "Explicit confirmation of the delete"
// @Success      204  "deleted"
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  confirmationRequiredResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, _ := c.Get("username").(string)
	gate := newRequestGate(c.QueryParam("confirm") == "true")

	err := h.service.Delete(c.Request().Context(), c.Param("id"), actor, gate)
	if errors.Is(err, domain.ErrNotConfirmed) {
		return c.JSON(http.StatusConflict, confirmationRequiredResponse{
			Error:  "confirmation required",
			Prompt: gate.Prompt(),
		})
	}
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
