package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-action-tracker/errors"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/dto/action"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/http/session"
	actionUsecase "github.com/johnquangdev/meeting-action-tracker/internal/usecase/action"
	usecaseErrors "github.com/johnquangdev/meeting-action-tracker/internal/usecase/errors"
	meetingUsecase "github.com/johnquangdev/meeting-action-tracker/internal/usecase/meeting"
)

const meetingsPage = "/ui/meetings"

// Pages serves the server-rendered meeting pages
type Pages struct {
	meetingService meetingUsecase.Service
	actionService  actionUsecase.Service
	flash          *session.Flash
	logger         *zap.Logger
}

// NewPagesHandler creates a new pages handler
func NewPagesHandler(meetingService meetingUsecase.Service, actionService actionUsecase.Service, flash *session.Flash, logger *zap.Logger) *Pages {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pages{
		meetingService: meetingService,
		actionService:  actionService,
		flash:          flash,
		logger:         logger,
	}
}

type meetingsView struct {
	Flash    *session.Message
	Meetings []*meeting.MeetingResponse
}

type meetingDetailView struct {
	Flash   *session.Message
	Meeting *meeting.MeetingResponse
	Actions []*action.ActionResponse
}

type notFoundView struct {
	Flash   *session.Message
	Message string
}

// ListMeetings handles GET /ui/meetings
func (h *Pages) ListMeetings(c echo.Context) error {
	meetings, err := h.meetingService.ListMeetings(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "meetings.html", meetingsView{
		Flash:    h.popFlash(c),
		Meetings: presenter.ToMeetingListResponse(meetings),
	})
}

// CreateMeeting handles POST /ui/meetings
func (h *Pages) CreateMeeting(c echo.Context) error {
	var req meeting.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return h.redirect(c, meetingsPage, session.KindError, "Invalid form submission")
	}

	m, err := h.meetingService.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		Title:       req.Title,
		MeetingDate: req.MeetingDate,
	})
	if err != nil {
		return h.redirectOnError(c, meetingsPage, err)
	}

	return h.redirect(c, meetingsPage, session.KindSuccess, fmt.Sprintf("Meeting %q created", m.Title))
}

// MeetingDetail handles GET /ui/meetings/:id
func (h *Pages) MeetingDetail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.notFound(c, "Meeting not found")
	}

	ctx := c.Request().Context()
	m, err := h.meetingService.GetMeeting(ctx, id)
	if stdErrors.Is(err, usecaseErrors.ErrNotFound) {
		return h.notFound(c, "Meeting not found")
	}
	if err != nil {
		return err
	}

	actions, err := h.actionService.ListActionsByMeeting(ctx, id)
	if stdErrors.Is(err, usecaseErrors.ErrNotFound) {
		// Deleted between the two reads
		return h.notFound(c, "Meeting not found")
	}
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "meeting_detail.html", meetingDetailView{
		Flash:   h.popFlash(c),
		Meeting: presenter.ToMeetingResponse(m),
		Actions: presenter.ToActionListResponse(actions),
	})
}

// CreateAction handles POST /ui/meetings/:id/actions
func (h *Pages) CreateAction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.notFound(c, "Meeting not found")
	}
	detail := meetingPage(id)

	var req action.CreateActionRequest
	if err := c.Bind(&req); err != nil {
		return h.redirect(c, detail, session.KindError, "Invalid form submission")
	}

	_, err = h.actionService.CreateAction(c.Request().Context(), actionUsecase.CreateActionInput{
		MeetingID: id,
		Content:   req.Content,
		DueDate:   req.DueDate,
	})
	if stdErrors.Is(err, usecaseErrors.ErrNotFound) {
		return h.redirectOnError(c, meetingsPage, err)
	}
	if err != nil {
		return h.redirectOnError(c, detail, err)
	}

	return h.redirect(c, detail, session.KindSuccess, "Action added")
}

// DeleteMeeting handles POST /ui/meetings/:id/delete
func (h *Pages) DeleteMeeting(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.notFound(c, "Meeting not found")
	}

	err = h.meetingService.DeleteMeeting(c.Request().Context(), id)
	if stdErrors.Is(err, usecaseErrors.ErrNotFound) {
		return h.notFound(c, "Meeting not found")
	}
	if err != nil {
		return err
	}

	return h.redirect(c, meetingsPage, session.KindSuccess, "Meeting deleted")
}

// ToggleAction handles POST /ui/actions/:id/toggle
func (h *Pages) ToggleAction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.redirect(c, meetingsPage, session.KindError, "Action not found")
	}

	a, err := h.actionService.ToggleActionStatus(c.Request().Context(), id)
	if err != nil {
		return h.redirectOnError(c, meetingsPage, err)
	}

	return c.Redirect(http.StatusSeeOther, meetingPage(a.MeetingID))
}

// DeleteAction handles POST /ui/actions/:id/delete
func (h *Pages) DeleteAction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.redirect(c, meetingsPage, session.KindError, "Action not found")
	}

	ctx := c.Request().Context()
	a, err := h.actionService.GetAction(ctx, id)
	if err != nil {
		return h.redirectOnError(c, meetingsPage, err)
	}

	if err := h.actionService.DeleteAction(ctx, id); err != nil {
		return h.redirectOnError(c, meetingsPage, err)
	}

	return h.redirect(c, meetingPage(a.MeetingID), session.KindSuccess, "Action deleted")
}

// redirectOnError flashes domain errors and redirects; other errors
// reach the echo error handler unchanged
func (h *Pages) redirectOnError(c echo.Context, to string, err error) error {
	if !usecaseErrors.IsDomain(err) {
		return err
	}
	return h.redirect(c, to, session.KindError, errors.FromUsecase(err).Message)
}

func (h *Pages) redirect(c echo.Context, to, kind, message string) error {
	if err := h.flash.Set(c, kind, message); err != nil {
		// The redirect still happens, only the message is lost
		h.logger.Warn("flash.set_failed",
			zap.String("request_id", getRequestID(c)),
			zap.Error(err),
		)
	}
	return c.Redirect(http.StatusSeeOther, to)
}

func (h *Pages) popFlash(c echo.Context) *session.Message {
	msg, err := h.flash.Pop(c)
	if err != nil {
		h.logger.Warn("flash.pop_failed",
			zap.String("request_id", getRequestID(c)),
			zap.Error(err),
		)
		return nil
	}
	return msg
}

func (h *Pages) notFound(c echo.Context, message string) error {
	return c.Render(http.StatusNotFound, "not_found.html", notFoundView{Message: message})
}

func meetingPage(id uint) string {
	return fmt.Sprintf("%s/%d", meetingsPage, id)
}
