package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-action-tracker/errors"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/presenter"
	actionUsecase "github.com/johnquangdev/meeting-action-tracker/internal/usecase/action"
	meetingUsecase "github.com/johnquangdev/meeting-action-tracker/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	actionService  actionUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, actionService actionUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		actionService:  actionService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /meetings
// @Summary      Create a meeting
// @Description  Creates a meeting with a title and a YYYY-MM-DD date
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      201      {object}  common.SuccessResponse{data=meeting.MeetingResponse}  "Meeting created"
// @Failure      400      {object}  common.ErrorResponse  "Invalid payload or validation failed"
// @Failure      500      {object}  common.ErrorResponse  "Failed to create meeting"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meeting.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	// Validate request
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	m, err := h.meetingService.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		Title:       req.Title,
		MeetingDate: req.MeetingDate,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToMeetingResponse(m))
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Description  Lists all meetings, most recent meeting date first
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=[]meeting.MeetingResponse}  "Meetings"
// @Failure      500  {object}  common.ErrorResponse  "Failed to list meetings"
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	meetings, err := h.meetingService.ListMeetings(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=meeting.MeetingResponse}  "Meeting"
// @Failure      400  {object}  common.ErrorResponse  "Invalid meeting ID"
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// DeleteMeeting handles DELETE /meetings/:id
// @Summary      Delete a meeting
// @Description  Deletes the meeting together with all of its actions
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=common.MessageResponse}  "Meeting deleted"
// @Failure      400  {object}  common.ErrorResponse  "Invalid meeting ID"
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Router       /meetings/{id} [delete]
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.DeleteMeeting(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.MessageResponse{Message: "Meeting deleted"})
}

// ListMeetingActions handles GET /meetings/:id/actions
// @Summary      List a meeting's actions
// @Description  Lists the actions of an existing meeting, earliest due date first
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=[]action.ActionResponse}  "Actions"
// @Failure      400  {object}  common.ErrorResponse  "Invalid meeting ID"
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Router       /meetings/{id}/actions [get]
func (h *Meeting) ListMeetingActions(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	actions, err := h.actionService.ListActionsByMeeting(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToActionListResponse(actions))
}
