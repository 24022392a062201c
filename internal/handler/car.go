package handler

import (
	"net/http"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/handler/dto"
	"github.com/stpnv0/CarBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateCar(c *ginext.Context) {
	var req dto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	car, err := h.carService.Create(c.Request.Context(), domain.CreateCarInput{
		Name:              req.Name,
		Make:              req.Make,
		Model:             req.Model,
		Seats:             req.Seats,
		PricePerDayPaise:  req.PricePerDayPaise,
		PricePerHourPaise: req.PricePerHourPaise,
		Currency:          req.Currency,
	}, c.GetString(middleware.CtxAdminID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCarResponse(car))
}

// GetCar is display-only; booking never relies on what it returned.
func (h *Handler) GetCar(c *ginext.Context) {
	id := c.Param("id")
	if !validID(id) {
		badRequest(c, "invalid car id")
		return
	}

	car, err := h.carService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

func (h *Handler) ListCars(c *ginext.Context) {
	onlyAvailable := c.Query("available") == "true"

	cars, err := h.carService.List(c.Request.Context(), onlyAvailable)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CarResponse, 0, len(cars))
	for _, car := range cars {
		resp = append(resp, dto.ToCarResponse(car))
	}

	c.JSON(http.StatusOK, resp)
}
