package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eventlyhq/evently-backend/internal/adapter/handler/dto/request"
	"github.com/eventlyhq/evently-backend/internal/adapter/handler/dto/response"
	"github.com/eventlyhq/evently-backend/internal/pkg/httputil"
	"github.com/eventlyhq/evently-backend/internal/usecase/event"
)

type EventHandler struct {
	eventSvc EventService
}

func NewEventHandler(eventSvc EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// parseEventDate accepts RFC 3339 timestamps or plain dates. A plain date
// means midnight UTC of that day.
func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Create godoc
//
//	@Summary		Create an event
//	@Description	Create an event owned by the authenticated user; available seats start equal to capacity
//	@Tags			events
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.CreateEventRequest	true	"Event data"
//	@Success		201		{object}	response.EventResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Router			/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req request.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid date format")
		return
	}

	e, err := h.eventSvc.Create(c.Request.Context(), event.CreateInput{
		UserID:   httputil.GetUserID(c),
		Name:     req.Name,
		Date:     date,
		Capacity: req.Capacity,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.EventFromEntity(e))
}

// List godoc
//
//	@Summary		List events
//	@Description	Public listing with optional inclusive date range and offset pagination
//	@Tags			events
//	@Produce		json
//	@Param			start	query		string	false	"Range start (RFC 3339 or YYYY-MM-DD)"
//	@Param			end		query		string	false	"Range end (RFC 3339 or YYYY-MM-DD)"
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{object}	response.EventsListResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Router			/events [get]
func (h *EventHandler) List(c *gin.Context) {
	var req request.ListEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	input := event.ListInput{
		Page:  req.Page,
		Limit: req.Limit,
	}

	// The range filter only applies when both bounds are present.
	if req.Start != "" && req.End != "" {
		from, err := parseEventDate(req.Start)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, "invalid start date")
			return
		}
		to, err := parseEventDate(req.End)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, "invalid end date")
			return
		}
		input.From = &from
		input.To = &to
	}

	events, pageInfo, err := h.eventSvc.List(c.Request.Context(), input)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.EventsListResponse{
		Events:      response.EventsFromEntities(events),
		TotalEvents: pageInfo.TotalItems,
		Page:        pageInfo.Page,
		TotalPages:  pageInfo.TotalPages,
	})
}

// Update godoc
//
//	@Summary		Update an event
//	@Description	Owner-only partial update; a new capacity resets available seats
//	@Tags			events
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Event id"
//	@Param			request	body		request.UpdateEventRequest	true	"Fields to update"
//	@Success		200		{object}	response.EventResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Failure		403		{object}	httputil.ErrorResponse
//	@Failure		404		{object}	httputil.ErrorResponse
//	@Router			/events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid event id")
		return
	}

	var req request.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	input := event.UpdateInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	}

	if req.Date != nil {
		date, err := parseEventDate(*req.Date)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, "invalid date format")
			return
		}
		input.Date = &date
	}

	e, err := h.eventSvc.Update(c.Request.Context(), httputil.GetUserID(c), eventID, input)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.EventFromEntity(e))
}

// Delete godoc
//
//	@Summary		Delete an event
//	@Description	Owner-only removal
//	@Tags			events
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Event id"
//	@Success		200	{object}	response.MessageResponse
//	@Failure		401	{object}	httputil.ErrorResponse
//	@Failure		403	{object}	httputil.ErrorResponse
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Router			/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid event id")
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), httputil.GetUserID(c), eventID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.MessageResponse{Message: "event removed"})
}
