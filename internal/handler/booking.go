package handler

import (
	"net/http"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/handler/dto"
	"github.com/stpnv0/CarBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	start, err := req.Pickup.ToDomain().In(h.cfg.Location)
	if err != nil {
		h.handleError(c, err)
		return
	}
	end, err := req.Return.ToDomain().In(h.cfg.Location)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.bookingService.Book(c.Request.Context(), domain.BookInput{
		CarID:       req.CarID,
		UserID:      req.UserID,
		StartAt:     start,
		EndAt:       end,
		TotalAmount: req.Totals.Total,
		PayMode:     domain.PayMode(req.PayMode),
		LicensePath: req.LicensePath,
		Addons:      req.Addons.ToDomain(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	if sid := c.GetHeader(HeaderSessionID); sid != "" {
		// бронь уже создана, ошибка очистки черновика на ответ не влияет
		if err = h.draftService.Clear(c.Request.Context(), sid); err != nil {
			c.Set("error", err.Error())
		}
	}

	c.JSON(http.StatusCreated, dto.ToBookResponse(res))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if !validID(id) {
		badRequest(c, "invalid booking id")
		return
	}

	b, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if !validID(id) {
		badRequest(c, "invalid booking id")
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	b, err := h.bookingService.Cancel(c.Request.Context(), id, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) AdminCancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if !validID(id) {
		badRequest(c, "invalid booking id")
		return
	}

	b, err := h.bookingService.AdminRelease(c.Request.Context(), id, c.GetString(middleware.CtxAdminID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if !validID(userID) {
		badRequest(c, "invalid user id")
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// SweepHolds runs one expiry pass on demand.
func (h *Handler) SweepHolds(c *ginext.Context) {
	n, err := h.bookingService.ExpireHolds(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SweepResponse{Success: true, ExpiredBookings: n})
}
