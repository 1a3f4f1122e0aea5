package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"barberhub/internal/httperr"
	"barberhub/internal/httpresp"
	"barberhub/internal/middleware"
	ucreview "barberhub/internal/usecase/review"
)

type ReviewHandler struct {
	create *ucreview.CreateReview
	list   *ucreview.ListForBarber
}

func NewReviewHandler(create *ucreview.CreateReview, list *ucreview.ListForBarber) *ReviewHandler {
	return &ReviewHandler{create: create, list: list}
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	view, err := h.create.Execute(c.Request.Context(), ucreview.CreateReviewInput{
		ClientID: c.GetUint(middleware.ContextUserID),
		BarberID: barberID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, view)
}

func (h *ReviewHandler) ListForBarber(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	view, err := h.list.Execute(c.Request.Context(), barberID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, view)
}

func barberIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return 0, false
	}
	return uint(id), true
}
