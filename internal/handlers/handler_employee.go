package handlers

import (
	"net/http"

	portssvc "github.com/giftvote/giftvote_app/internal/core/ports/services"
	"github.com/giftvote/giftvote_app/internal/dto"
	"github.com/giftvote/giftvote_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers all employee-related routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
	}
}

// listEmployees godoc
// @Summary List all employees
// @Description Returns every employee, ordered by full name.
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}
