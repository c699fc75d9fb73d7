package handlers

import (
	"net/http"

	portssvc "github.com/jvamontagens/jva_backend/internal/core/ports/services"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// financialHandler handles periods, their service and payment entries, and the
// financial projections built from them.
type financialHandler struct {
	financialService portssvc.FinancialSvcFacade
}

func newFinancialHandler(fs portssvc.FinancialSvcFacade) *financialHandler {
	return &financialHandler{financialService: fs}
}

// registerFinancialRoutes registers every route under /financial.
func registerFinancialRoutes(rg *gin.RouterGroup, financialService portssvc.FinancialSvcFacade) {
	h := newFinancialHandler(financialService)

	financial := rg.Group("/financial")
	{
		periods := financial.Group("/periods")
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/:periodId", h.getPeriod)
		periods.PUT("/:periodId", h.updatePeriod)
		periods.DELETE("/:periodId", h.deletePeriod)
		periods.GET("/:periodId/services", h.listServices)
		periods.POST("/:periodId/services", h.addService)
		periods.GET("/:periodId/payments", h.listPayments)
		periods.POST("/:periodId/payments", h.addPayment)
		periods.GET("/:periodId/summary", h.periodSummary)

		financial.PUT("/services/:serviceId", h.updateService)
		financial.DELETE("/services/:serviceId", h.deleteService)
		financial.PUT("/payments/:paymentId", h.updatePayment)
		financial.DELETE("/payments/:paymentId", h.deletePayment)

		financial.GET("/parks/:parkId/overview", h.parkOverview)
		financial.GET("/parks/:parkId/overview.xlsx", h.parkOverviewXLSX)
		financial.GET("/car-rentals/summary", h.carRentalSummary)
		financial.GET("/car-rentals/summary.xlsx", h.carRentalSummaryXLSX)
	}
}

// createPeriod godoc
// @Summary Open a financial period
// @Description Creates the period of a park for one month. Tax rates of 1 or more are percentages.
// @Tags financial
// @Accept json
// @Produce json
// @Param period body dto.CreatePeriodRequest true "Period details"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Period already exists for the park and month"
// @Security BearerAuth
// @Router /api/v1/financial/periods [post]
func (h *financialHandler) createPeriod(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.CreatePeriodRequest
	if !bindJSON(c, &req) {
		return
	}

	period, err := h.financialService.CreatePeriod(c.Request.Context(), req, session)
	if err != nil {
		respondError(c, err, "create period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List financial periods
// @Description Newest first.
// @Tags financial
// @Produce json
// @Param parkId query int false "Only periods of this park"
// @Success 200 {array} dto.PeriodResponse
// @Security BearerAuth
// @Router /api/v1/financial/periods [get]
func (h *financialHandler) listPeriods(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	parkID, ok := optionalInt64Query(c, "parkId")
	if !ok {
		return
	}

	periods, err := h.financialService.ListPeriods(c.Request.Context(), parkID, session)
	if err != nil {
		respondError(c, err, "list periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPeriodResponse(periods))
}

// getPeriod godoc
// @Summary Get a financial period
// @Tags financial
// @Produce json
// @Param periodId path int true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/periods/{periodId} [get]
func (h *financialHandler) getPeriod(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	periodID, ok := int64Param(c, "periodId")
	if !ok {
		return
	}

	period, err := h.financialService.GetPeriod(c.Request.Context(), periodID, session)
	if err != nil {
		respondError(c, err, "get period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// updatePeriod godoc
// @Summary Update a financial period
// @Description Partial update of pricing and status. A closed period cannot be reopened.
// @Tags financial
// @Accept json
// @Produce json
// @Param periodId path int true "Period ID"
// @Param period body dto.UpdatePeriodRequest true "Fields to change"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/periods/{periodId} [put]
func (h *financialHandler) updatePeriod(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	periodID, ok := int64Param(c, "periodId")
	if !ok {
		return
	}
	var req dto.UpdatePeriodRequest
	if !bindJSON(c, &req) {
		return
	}

	period, err := h.financialService.UpdatePeriod(c.Request.Context(), periodID, req, session)
	if err != nil {
		respondError(c, err, "update period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// deletePeriod godoc
// @Summary Delete a financial period
// @Description Removes the period with all of its services and payments.
// @Tags financial
// @Param periodId path int true "Period ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/periods/{periodId} [delete]
func (h *financialHandler) deletePeriod(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	periodID, ok := int64Param(c, "periodId")
	if !ok {
		return
	}

	if err := h.financialService.DeletePeriod(c.Request.Context(), periodID, session); err != nil {
		respondError(c, err, "delete period")
		return
	}
	c.Status(http.StatusNoContent)
}

// listServices godoc
// @Summary List the services of a period
// @Tags financial
// @Produce json
// @Param periodId path int true "Period ID"
// @Success 200 {array} dto.ServiceEntryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/periods/{periodId}/services [get]
func (h *financialHandler) listServices(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	periodID, ok := int64Param(c, "periodId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	services, err := h.financialService.ListServices(ctx, periodID, session)
	if err != nil {
		respondError(c, err, "list services")
		return
	}
	period, err := h.financialService.GetPeriod(ctx, periodID, session)
	if err != nil {
		respondError(c, err, "list services")
		return
	}
	c.JSON(http.StatusOK, dto.ToListServiceEntryResponse(services, period))
}

// addService godoc
// @Summary Add a service to a period
// @Tags financial
// @Accept json
// @Produce json
// @Param periodId path int true "Period ID"
// @Param service body dto.ServiceEntryRequest true "Service details"
// @Success 201 {object} dto.ServiceEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/periods/{periodId}/services [post]
func (h *financialHandler) addService(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	periodID, ok := int64Param(c, "periodId")
	if !ok {
		return
	}
	var req dto.ServiceEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	service, err := h.financialService.AddService(c.Request.Context(), periodID, req, session)
	if err != nil {
		respondError(c, err, "add service")
		return
	}
	h.writeService(c, http.StatusCreated, service.PeriodID, service, session)
}

// updateService godoc
// @Summary Update a service
// @Description Changes only the fields sent. Helpers, when sent, replace the crew.
// @Tags financial
// @Accept json
// @Produce json
// @Param serviceId path int true "Service ID"
// @Param service body dto.UpdateServiceEntryRequest true "Fields to change"
// @Success 200 {object} dto.ServiceEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/services/{serviceId} [put]
func (h *financialHandler) updateService(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	serviceID, ok := int64Param(c, "serviceId")
	if !ok {
		return
	}
	var req dto.UpdateServiceEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	service, err := h.financialService.UpdateService(c.Request.Context(), serviceID, req, session)
	if err != nil {
		respondError(c, err, "update service")
		return
	}
	h.writeService(c, http.StatusOK, service.PeriodID, service, session)
}

// deleteService godoc
// @Summary Delete a service
// @Tags financial
// @Param serviceId path int true "Service ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Period is closed"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/services/{serviceId} [delete]
func (h *financialHandler) deleteService(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	serviceID, ok := int64Param(c, "serviceId")
	if !ok {
		return
	}

	if err := h.financialService.DeleteService(c.Request.Context(), serviceID, session); err != nil {
		respondError(c, err, "delete service")
		return
	}
	c.Status(http.StatusNoContent)
}

// listPayments godoc
// @Summary List the payments of a period
// @Tags financial
// @Produce json
// @Param periodId path int true "Period ID"
// @Success 200 {array} dto.PaymentEntryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/periods/{periodId}/payments [get]
func (h *financialHandler) listPayments(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	periodID, ok := int64Param(c, "periodId")
	if !ok {
		return
	}

	payments, err := h.financialService.ListPayments(c.Request.Context(), periodID, session)
	if err != nil {
		respondError(c, err, "list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentEntryResponse(payments))
}

// addPayment godoc
// @Summary Record a payment in a period
// @Tags financial
// @Accept json
// @Produce json
// @Param periodId path int true "Period ID"
// @Param payment body dto.PaymentEntryRequest true "Payment details"
// @Success 201 {object} dto.PaymentEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/periods/{periodId}/payments [post]
func (h *financialHandler) addPayment(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	periodID, ok := int64Param(c, "periodId")
	if !ok {
		return
	}
	var req dto.PaymentEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.financialService.AddPayment(c.Request.Context(), periodID, req, session)
	if err != nil {
		respondError(c, err, "add payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentEntryResponse(payment))
}

// updatePayment godoc
// @Summary Update a payment
// @Description Changes only the fields sent.
// @Tags financial
// @Accept json
// @Produce json
// @Param paymentId path int true "Payment ID"
// @Param payment body dto.UpdatePaymentEntryRequest true "Fields to change"
// @Success 200 {object} dto.PaymentEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/payments/{paymentId} [put]
func (h *financialHandler) updatePayment(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	paymentID, ok := int64Param(c, "paymentId")
	if !ok {
		return
	}
	var req dto.UpdatePaymentEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.financialService.UpdatePayment(c.Request.Context(), paymentID, req, session)
	if err != nil {
		respondError(c, err, "update payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentEntryResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Tags financial
// @Param paymentId path int true "Payment ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Period is closed"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/payments/{paymentId} [delete]
func (h *financialHandler) deletePayment(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	paymentID, ok := int64Param(c, "paymentId")
	if !ok {
		return
	}

	if err := h.financialService.DeletePayment(c.Request.Context(), paymentID, session); err != nil {
		respondError(c, err, "delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}
