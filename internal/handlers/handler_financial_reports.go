package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/jvamontagens/jva_backend/internal/export"
	"github.com/jvamontagens/jva_backend/internal/middleware"
)

// writeService resolves the entry's price against its period and writes it.
func (h *financialHandler) writeService(c *gin.Context, status int, periodID int64, service *domain.ServiceEntry, session domain.Session) {
	period, err := h.financialService.GetPeriod(c.Request.Context(), periodID, session)
	if err != nil {
		respondError(c, err, "load period of service")
		return
	}
	c.JSON(status, dto.ToServiceEntryResponse(service, period))
}

// periodSummary godoc
// @Summary Financial summary of a period
// @Description Revenue, costs, leader earnings, client balance and margin of one period.
// @Tags financial
// @Produce json
// @Param periodId path int true "Period ID"
// @Success 200 {object} domain.FinancialSummary
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Stored entries are inconsistent"
// @Security BearerAuth
// @Router /api/v1/financial/periods/{periodId}/summary [get]
func (h *financialHandler) periodSummary(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	periodID, ok := int64Param(c, "periodId")
	if !ok {
		return
	}

	summary, err := h.financialService.Summary(c.Request.Context(), periodID, session)
	if err != nil {
		respondError(c, err, "compute period summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// parkOverview godoc
// @Summary Financial overview of a park
// @Description Inflow, outflow and balance of every period of the park.
// @Tags financial
// @Produce json
// @Param parkId path int true "Park ID"
// @Success 200 {object} domain.ParkFinancialOverview
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/parks/{parkId}/overview [get]
func (h *financialHandler) parkOverview(c *gin.Context) {
	overview, ok := h.loadParkOverview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, overview)
}

// parkOverviewXLSX godoc
// @Summary Park overview workbook
// @Tags financial
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param parkId path int true "Park ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/parks/{parkId}/overview.xlsx [get]
func (h *financialHandler) parkOverviewXLSX(c *gin.Context) {
	overview, ok := h.loadParkOverview(c)
	if !ok {
		return
	}

	data, err := export.ParkOverview(overview)
	if err != nil {
		respondError(c, err, "export park overview")
		return
	}
	writeWorkbook(c, export.ParkOverviewFilename(overview), data)
}

func (h *financialHandler) loadParkOverview(c *gin.Context) (*domain.ParkFinancialOverview, bool) {
	session, ok := requireSession(c)
	if !ok {
		return nil, false
	}
	parkID, ok := int64Param(c, "parkId")
	if !ok {
		return nil, false
	}

	overview, err := h.financialService.ParkOverview(c.Request.Context(), parkID, session)
	if err != nil {
		respondError(c, err, "compute park overview")
		return nil, false
	}
	return overview, true
}

// carRentalSummary godoc
// @Summary Car rental spend
// @Description Totals per year, month and period, for one park or every park.
// @Tags financial
// @Produce json
// @Param parkId query int false "Only this park"
// @Success 200 {object} domain.CarRentalSummary
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/car-rentals/summary [get]
func (h *financialHandler) carRentalSummary(c *gin.Context) {
	summary, ok := h.loadCarRentalSummary(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, summary)
}

// carRentalSummaryXLSX godoc
// @Summary Car rental workbook
// @Tags financial
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param parkId query int false "Only this park"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/financial/car-rentals/summary.xlsx [get]
func (h *financialHandler) carRentalSummaryXLSX(c *gin.Context) {
	summary, ok := h.loadCarRentalSummary(c)
	if !ok {
		return
	}

	data, err := export.CarRentalSummary(summary)
	if err != nil {
		respondError(c, err, "export car rental summary")
		return
	}
	writeWorkbook(c, export.CarRentalFilename(summary), data)
}

func (h *financialHandler) loadCarRentalSummary(c *gin.Context) (*domain.CarRentalSummary, bool) {
	session, ok := requireSession(c)
	if !ok {
		return nil, false
	}
	parkID, ok := optionalInt64Query(c, "parkId")
	if !ok {
		return nil, false
	}

	summary, err := h.financialService.CarRentalSummary(c.Request.Context(), parkID, session)
	if err != nil {
		respondError(c, err, "compute car rental summary")
		return nil, false
	}
	return summary, true
}

func writeWorkbook(c *gin.Context, filename string, data []byte) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Serving workbook", slog.String("filename", filename), slog.Int("bytes", len(data)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, data)
}
