package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	bk "github.com/ihor-metko/RSP-sub000/booking"
	"github.com/ihor-metko/RSP-sub000/lock"
	"github.com/ihor-metko/RSP-sub000/realtime"
)

type SyncService interface {
	Bookings() []bk.Booking
	BookingsForCourt(courtID string) []bk.Booking
	Locks() []lock.SlotLock
	LocksForCourt(courtID string) []lock.SlotLock
	IsSlotLocked(courtID string, start, end time.Time) bool
	IsSlotAvailable(courtID string, start, end time.Time) bool
	HoldSlot(ctx context.Context, courtID, userID string, start, end time.Time) (lock.SlotLock, error)
	ReleaseHold(ctx context.Context, slotID string) error
}

type SyncHandler struct {
	service SyncService
}

func NewSyncHandler(service SyncService) *SyncHandler {
	return &SyncHandler{service: service}
}

func (h *SyncHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/courts/:courtId/bookings", h.ListCourtBookings)
	rg.GET("/locks", h.ListLocks)
	rg.GET("/courts/:courtId/locks", h.ListCourtLocks)
	rg.GET("/courts/:courtId/availability", h.CheckAvailability)
	rg.POST("/holds", h.CreateHold)
	rg.DELETE("/holds/:slotId", h.ReleaseHold)
}

func (h *SyncHandler) ListBookings(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.Bookings())
}

func (h *SyncHandler) ListCourtBookings(c *gin.Context) {
	courtID := c.Param("courtId")
	c.IndentedJSON(http.StatusOK, h.service.BookingsForCourt(courtID))
}

func (h *SyncHandler) ListLocks(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.Locks())
}

func (h *SyncHandler) ListCourtLocks(c *gin.Context) {
	courtID := c.Param("courtId")
	c.IndentedJSON(http.StatusOK, h.service.LocksForCourt(courtID))
}

func (h *SyncHandler) CheckAvailability(c *gin.Context) {
	courtID := c.Param("courtId")

	start, err := time.Parse(time.RFC3339, c.Query("start"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse start"})
		return
	}

	end, err := time.Parse(time.RFC3339, c.Query("end"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse end"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"courtId":   courtID,
		"locked":    h.service.IsSlotLocked(courtID, start, end),
		"available": h.service.IsSlotAvailable(courtID, start, end),
	})
}

type holdRequest struct {
	CourtID   string    `json:"courtId"`
	UserID    string    `json:"userId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func (h *SyncHandler) CreateHold(c *gin.Context) {
	var req holdRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	held, err := h.service.HoldSlot(c.Request.Context(), req.CourtID, req.UserID, req.StartTime, req.EndTime)

	if err != nil {
		c.Error(err)
		if errors.Is(err, realtime.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "court not found",
			})
		} else if errors.Is(err, realtime.ErrSlotUnavailable) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "slot is already booked or held",
			})
		} else if errors.Is(err, realtime.ErrInvalidSlot) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid slot time range",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to hold slot",
			})
		}

		return
	}

	c.JSON(http.StatusCreated, held)
}

func (h *SyncHandler) ReleaseHold(c *gin.Context) {
	slotID := c.Param("slotId")

	err := h.service.ReleaseHold(c.Request.Context(), slotID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, realtime.ErrHoldNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "slot hold not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to release hold",
			})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "hold released"})
}
