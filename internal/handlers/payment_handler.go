package handlers

import (
	"github.com/gin-gonic/gin"

	"barberhub/internal/httperr"
	"barberhub/internal/httpresp"
	"barberhub/internal/middleware"
	ucpayment "barberhub/internal/usecase/payment"
)

type PaymentHandler struct {
	createIntent *ucpayment.CreateIntent
}

func NewPaymentHandler(createIntent *ucpayment.CreateIntent) *PaymentHandler {
	return &PaymentHandler{createIntent: createIntent}
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	result, err := h.createIntent.Execute(
		c.Request.Context(),
		bookingID,
		c.GetUint(middleware.ContextUserID),
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, result)
}
