package handler

import (
	"errors"
	"net/http"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) sessionID(c *ginext.Context) (string, bool) {
	sid := c.GetHeader(HeaderSessionID)
	if sid == "" {
		badRequest(c, "missing "+HeaderSessionID+" header")
		return "", false
	}
	return sid, true
}

func (h *Handler) SaveDraft(c *ginext.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req dto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	draft := domain.Draft{
		CarID:   req.CarID,
		Pickup:  req.Pickup.ToDomain(),
		Return:  req.Return.ToDomain(),
		Addons:  req.Addons.ToDomain(),
		Totals:  req.Totals.ToDomain(),
		PayMode: domain.PayMode(req.PayMode),
	}
	redirect, err := h.draftService.SaveAndRedirect(c.Request.Context(), sid, draft, domain.SaveDraftOptions{
		RedirectToProfile: req.RedirectToProfile,
		ReturnTo:          req.ReturnTo,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SaveDraftResponse{Success: true, RedirectURL: redirect})
}

// ResumeDraft answers 202 to a duplicate resume while the first one is still
// running; the client simply ignores it.
func (h *Handler) ResumeDraft(c *ginext.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req dto.ResumeDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.draftService.Resume(c.Request.Context(), sid, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrResumeInProgress) {
			c.JSON(http.StatusAccepted, dto.ErrorResponse{Error: err.Error()})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResumeResponse(res))
}

func (h *Handler) DraftProfileUpdated(c *ginext.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.draftService.MarkProfileUpdated(c.Request.Context(), sid); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}

func (h *Handler) ClearDraft(c *ginext.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.draftService.Clear(c.Request.Context(), sid); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) QuoteDraft(c *ginext.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	totals, err := h.draftService.Quote(
		c.Request.Context(), req.CarID,
		req.Pickup.ToDomain(), req.Return.ToDomain(), req.Addons.ToDomain(),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}
