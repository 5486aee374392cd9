package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/padelarena/booking-backend/internal/auth"
	"github.com/padelarena/booking-backend/internal/booking"
	"github.com/padelarena/booking-backend/internal/pkg/response"
	"github.com/padelarena/booking-backend/internal/user"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service  booking.Service
	location *time.Location
}

func NewHandler(service booking.Service, location *time.Location) *Handler {
	return &Handler{service: service, location: location}
}

func isAdmin(c *gin.Context) bool {
	return auth.GetUserRole(c) == user.RoleAdmin
}

// Availability serves GET /resources/:id/availability?date=YYYY-MM-DD.
// The date is interpreted in the business timezone; omitting it means today.
func (h *Handler) Availability(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var day time.Time
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation(dateLayout, v, h.location)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	} else {
		day = time.Now().In(h.location)
	}

	slots, err := h.service.Availability(c.Request.Context(), id, day)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{
			Start:           s.Start,
			End:             s.End,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		}
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		ResourceID: id,
		Date:       day.In(h.location).Format(dateLayout),
		Slots:      out,
	})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:          userID,
		ResourceID:      body.ResourceID,
		StartTime:       body.StartTime,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if b.UserID != auth.GetUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			from = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			to = &t
		}
	}

	// Members only see their own bookings; admins may filter by any user.
	filterUserID := auth.GetUserID(c)
	if isAdmin(c) {
		filterUserID = c.Query("user_id")
	}

	filter := booking.Filter{
		UserID:     filterUserID,
		ResourceID: c.Query("resource_id"),
		Status:     c.Query("status"),
		From:       from,
		To:         to,
		Page:       page,
		PageSize:   pageSize,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, auth.GetUserID(c), isAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
