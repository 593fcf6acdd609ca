package apiv1

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zaplanuj/terminarz/calendar"
	"github.com/zaplanuj/terminarz/plugin/eventparse"
	"github.com/zaplanuj/terminarz/store"
)

const userHandleHeader = "X-User-Handle"

type createUserRequest struct {
	Handle               string `json:"handle"`
	Admin                bool   `json:"admin"`
	EventCreationAllowed bool   `json:"eventCreationAllowed"`
}

type userResponse struct {
	Handle               string `json:"handle"`
	Admin                bool   `json:"admin"`
	EventCreationAllowed bool   `json:"eventCreationAllowed"`
}

type createEventRequest struct {
	Text string `json:"text"`
}

type eventResponse struct {
	UID        string  `json:"uid"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Owner      string  `json:"owner"`
	StartTime  string  `json:"startTime"`
	RemindTime *string `json:"remindTime,omitempty"`
	// Message is the confirmation text for the channel; only set on creation.
	Message string `json:"message,omitempty"`
}

type declareRequest struct {
	Attendance string `json:"attendance"`
}

type declarationResponse struct {
	UserHandle string `json:"userHandle"`
	Attendance string `json:"attendance"`
}

type setReminderRequest struct {
	DeltaSeconds int64 `json:"deltaSeconds"`
}

func (s *APIV1Service) createUser(c echo.Context) error {
	request := &createUserRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if request.Handle == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "handle is required")
	}
	user, err := s.Calendar.AddUser(c.Request().Context(), request.Handle, request.Admin, request.EventCreationAllowed)
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, &userResponse{
		Handle:               user.Handle,
		Admin:                user.Admin,
		EventCreationAllowed: user.EventCreationAllowed,
	})
}

func (s *APIV1Service) deleteUser(c echo.Context) error {
	if err := s.Calendar.RemoveUser(c.Request().Context(), c.Param("handle")); err != nil {
		return apiError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *APIV1Service) createEvent(c echo.Context) error {
	handle, err := callerHandle(c)
	if err != nil {
		return err
	}
	request := &createEventRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if request.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	event, err := s.Calendar.CreateEventFromText(c.Request().Context(), handle, request.Text)
	if err != nil {
		return apiError(err)
	}
	response := s.convertEvent(event)
	var remindAt *time.Time
	if event.RemindTs != nil {
		at := time.Unix(*event.RemindTs, 0)
		remindAt = &at
	}
	response.Message = calendar.CreationMessage(event.Name, event.Code, time.Unix(event.StartTs, 0), remindAt)
	return c.JSON(http.StatusCreated, response)
}

func (s *APIV1Service) listEvents(c echo.Context) error {
	events, err := s.Calendar.ListUpcomingEvents(c.Request().Context())
	if err != nil {
		return apiError(err)
	}
	list := make([]*eventResponse, 0, len(events))
	for _, event := range events {
		list = append(list, s.convertEvent(event))
	}
	return c.JSON(http.StatusOK, list)
}

func (s *APIV1Service) getEvent(c echo.Context) error {
	event, err := s.Calendar.GetEvent(c.Request().Context(), c.Param("code"))
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, s.convertEvent(event))
}

func (s *APIV1Service) deleteEvent(c echo.Context) error {
	handle, err := callerHandle(c)
	if err != nil {
		return err
	}
	if err := s.Calendar.DeleteEvent(c.Request().Context(), handle, c.Param("code")); err != nil {
		return apiError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *APIV1Service) declare(c echo.Context) error {
	handle, err := callerHandle(c)
	if err != nil {
		return err
	}
	request := &declareRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	var attendance store.Attendance
	switch request.Attendance {
	case "YES", "yes":
		attendance = store.AttendanceYes
	case "NO", "no":
		attendance = store.AttendanceNo
	case "MAYBE", "maybe":
		attendance = store.AttendanceMaybe
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "attendance must be YES, NO or MAYBE")
	}
	if err := s.Calendar.Declare(c.Request().Context(), handle, c.Param("code"), attendance); err != nil {
		return apiError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *APIV1Service) listDeclarations(c echo.Context) error {
	declarations, err := s.Calendar.ListDeclarations(c.Request().Context(), c.Param("code"))
	if err != nil {
		return apiError(err)
	}
	list := make([]*declarationResponse, 0, len(declarations))
	for _, declaration := range declarations {
		list = append(list, &declarationResponse{
			UserHandle: declaration.UserHandle,
			Attendance: string(declaration.Attendance),
		})
	}
	return c.JSON(http.StatusOK, list)
}

func (s *APIV1Service) setReminder(c echo.Context) error {
	handle, err := callerHandle(c)
	if err != nil {
		return err
	}
	request := &setReminderRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if request.DeltaSeconds <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "deltaSeconds must be positive")
	}
	delta := time.Duration(request.DeltaSeconds) * time.Second
	if err := s.Calendar.SetReminder(c.Request().Context(), handle, c.Param("code"), delta); err != nil {
		return apiError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *APIV1Service) convertEvent(event *store.Event) *eventResponse {
	response := &eventResponse{
		UID:       event.UID,
		Code:      event.Code,
		Name:      event.Name,
		Owner:     event.OwnerHandle,
		StartTime: time.Unix(event.StartTs, 0).Format(time.RFC3339),
	}
	if event.RemindTs != nil {
		remind := time.Unix(*event.RemindTs, 0).Format(time.RFC3339)
		response.RemindTime = &remind
	}
	return response
}

func callerHandle(c echo.Context) (string, error) {
	handle := c.Request().Header.Get(userHandleHeader)
	if handle == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, userHandleHeader+" header is required")
	}
	return handle, nil
}

// apiError maps domain errors onto HTTP statuses.
func apiError(err error) error {
	var (
		parseErr       *eventparse.ParseError
		pastErr        *calendar.EventInPastError
		remindErr      *calendar.ReminderInPastError
		invalidCode    *calendar.InvalidEventCodeError
		eventNotFound  *calendar.EventNotFoundError
		userNotFound   *calendar.UserNotFoundError
		deleteDenied   *calendar.NotPermittedToDeleteError
		reminderDenied *calendar.NotPermittedToSetReminderError
		forbidden      *calendar.CreationForbiddenError
	)
	switch {
	case errors.As(err, &parseErr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &pastErr), errors.As(err, &remindErr), errors.As(err, &invalidCode):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &eventNotFound), errors.As(err, &userNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &deleteDenied), errors.As(err, &reminderDenied), errors.As(err, &forbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
