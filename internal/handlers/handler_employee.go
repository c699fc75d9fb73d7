package handlers

import (
	"net/http"
	"strconv"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portssvc "github.com/jvamontagens/jva_backend/internal/core/ports/services"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
	}
}

// createEmployee godoc
// @Summary Create an employee
// @Description Administrators with CPF, gov email and gov password also get a login.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	emp, err := h.employeeService.CreateEmployee(c.Request.Context(), req, session)
	if err != nil {
		respondError(c, err, "create employee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(emp))
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Param role query string false "ASSEMBLER, LEADER or ADMINISTRATOR"
// @Param onlyActive query bool false "Only active employees"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var role *domain.JobRole
	if raw := c.Query("role"); raw != "" {
		parsed, err := domain.ParseJobRole(raw)
		if err != nil {
			respondError(c, err, "list employees")
			return
		}
		role = &parsed
	}
	onlyActive := false
	if raw := c.Query("onlyActive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid onlyActive", Field: "onlyActive"})
			return
		}
		onlyActive = parsed
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), role, onlyActive, session)
	if err != nil {
		respondError(c, err, "list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	employeeID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	emp, err := h.employeeService.GetEmployee(c.Request.Context(), employeeID, session)
	if err != nil {
		respondError(c, err, "get employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(emp))
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	employeeID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	emp, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req, session)
	if err != nil {
		respondError(c, err, "update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(emp))
}
