package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-action-tracker/errors"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/dto/action"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/presenter"
	actionUsecase "github.com/johnquangdev/meeting-action-tracker/internal/usecase/action"
)

// Action handles action-related HTTP requests
type Action struct {
	actionService actionUsecase.Service
	logger        *zap.Logger
}

// NewActionHandler creates a new action handler
func NewActionHandler(actionService actionUsecase.Service, logger *zap.Logger) *Action {
	return &Action{
		actionService: actionService,
		logger:        logger,
	}
}

// CreateAction handles POST /actions
// @Summary      Create an action
// @Description  Creates an action for an existing meeting; status defaults to "not started"
// @Tags         Actions
// @Accept       json
// @Produce      json
// @Param        request  body      action.CreateActionRequest  true  "Action creation request"
// @Success      201      {object}  common.SuccessResponse{data=action.ActionResponse}  "Action created"
// @Failure      400      {object}  common.ErrorResponse  "Invalid payload or validation failed"
// @Failure      404      {object}  common.ErrorResponse  "Referenced meeting does not exist"
// @Router       /actions [post]
func (h *Action) CreateAction(c echo.Context) error {
	var req action.CreateActionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	// Validate request
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	a, err := h.actionService.CreateAction(c.Request().Context(), actionUsecase.CreateActionInput{
		MeetingID: *req.MeetingID,
		Content:   req.Content,
		DueDate:   req.DueDate,
		Status:    req.Status,
		UserID:    req.UserID,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToActionResponse(a))
}

// ListActions handles GET /actions
// @Summary      List actions
// @Description  Lists actions in creation order. An unknown meeting_id yields an empty list.
// @Tags         Actions
// @Produce      json
// @Param        meeting_id  query     int  false  "Only actions of this meeting"
// @Success      200         {object}  common.SuccessResponse{data=[]action.ActionResponse}  "Actions"
// @Failure      400         {object}  common.ErrorResponse  "Invalid meeting_id"
// @Router       /actions [get]
func (h *Action) ListActions(c echo.Context) error {
	var filter actionUsecase.ListActionsFilter
	if c.QueryParam("meeting_id") != "" {
		var meetingID uint
		if err := echo.QueryParamsBinder(c).Uint("meeting_id", &meetingID).BindError(); err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
		}
		filter.MeetingID = &meetingID
	}

	actions, err := h.actionService.ListActions(c.Request().Context(), filter)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToActionListResponse(actions))
}

// GetAction handles GET /actions/:id
// @Summary      Get an action
// @Tags         Actions
// @Produce      json
// @Param        id   path      int  true  "Action ID"
// @Success      200  {object}  common.SuccessResponse{data=action.ActionResponse}  "Action"
// @Failure      400  {object}  common.ErrorResponse  "Invalid action ID"
// @Failure      404  {object}  common.ErrorResponse  "Action not found"
// @Router       /actions/{id} [get]
func (h *Action) GetAction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	a, err := h.actionService.GetAction(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToActionResponse(a))
}

// UpdateAction handles PATCH /actions/:id
// @Summary      Update an action
// @Description  Changes only the supplied fields. Null or empty values are rejected.
// @Tags         Actions
// @Accept       json
// @Produce      json
// @Param        id       path      int                         true  "Action ID"
// @Param        request  body      action.UpdateActionRequest  true  "Fields to change"
// @Success      200      {object}  common.SuccessResponse{data=action.ActionResponse}  "Action updated"
// @Failure      400      {object}  common.ErrorResponse  "Invalid payload or validation failed"
// @Failure      404      {object}  common.ErrorResponse  "Action not found"
// @Router       /actions/{id} [patch]
func (h *Action) UpdateAction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req action.UpdateActionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	a, err := h.actionService.UpdateAction(c.Request().Context(), id, actionUsecase.UpdateActionInput{
		Content: req.Content.Ptr(),
		DueDate: req.DueDate.Ptr(),
		Status:  req.Status.Ptr(),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToActionResponse(a))
}

// ToggleAction handles PATCH /actions/:id/toggle
// @Summary      Toggle an action
// @Description  Flips the status between "not started" and "completed"
// @Tags         Actions
// @Produce      json
// @Param        id   path      int  true  "Action ID"
// @Success      200  {object}  common.SuccessResponse{data=action.ActionResponse}  "Action toggled"
// @Failure      404  {object}  common.ErrorResponse  "Action not found"
// @Router       /actions/{id}/toggle [patch]
func (h *Action) ToggleAction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	a, err := h.actionService.ToggleActionStatus(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToActionResponse(a))
}

// CompleteAction handles PATCH /actions/:id/complete
// @Summary      Complete an action
// @Tags         Actions
// @Produce      json
// @Param        id   path      int  true  "Action ID"
// @Success      200  {object}  common.SuccessResponse{data=action.ActionResponse}  "Action completed"
// @Failure      404  {object}  common.ErrorResponse  "Action not found"
// @Router       /actions/{id}/complete [patch]
func (h *Action) CompleteAction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	a, err := h.actionService.CompleteAction(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToActionResponse(a))
}

// DeleteAction handles DELETE /actions/:id
// @Summary      Delete an action
// @Tags         Actions
// @Produce      json
// @Param        id   path      int  true  "Action ID"
// @Success      200  {object}  common.SuccessResponse{data=common.MessageResponse}  "Action deleted"
// @Failure      404  {object}  common.ErrorResponse  "Action not found"
// @Router       /actions/{id} [delete]
func (h *Action) DeleteAction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.actionService.DeleteAction(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.MessageResponse{Message: "Action deleted"})
}
