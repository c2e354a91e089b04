package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sillicon-village/ledger-api/internal/apperrors"
	portssvc "github.com/sillicon-village/ledger-api/internal/core/ports/services"
	"github.com/sillicon-village/ledger-api/internal/dto"
	"github.com/sillicon-village/ledger-api/internal/middleware"
)

// personHandler handles HTTP requests related to persons.
type personHandler struct {
	personService portssvc.PersonSvcFacade
}

// newPersonHandler creates a new personHandler.
func newPersonHandler(ps portssvc.PersonSvcFacade) *personHandler {
	return &personHandler{
		personService: ps,
	}
}

// registerPersonRoutes registers all person-related routes.
func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade) {
	h := newPersonHandler(personService)

	persons := rg.Group("/persons")
	{
		persons.POST("", h.createPerson)
		persons.GET("", h.listPersons)
		persons.GET("/:id", h.getPerson)
		persons.PUT("/:id", h.updatePerson)
		persons.DELETE("/:id", h.deletePerson)
	}
}

// createPerson godoc
// @Summary Register a new person
// @Description Registers a new person who can own accounts
// @Tags persons
// @Accept  json
// @Produce  json
// @Param   person body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "National ID already registered"
// @Failure 500 {object} map[string]string "Failed to create person"
// @Router /persons [post]
func (h *personHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create person request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create person", slog.String("person_name", req.Name))

	createdPerson, err := h.personService.CreatePerson(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate national ID on create person")
			c.JSON(http.StatusConflict, gin.H{"error": "A person with this national ID already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation failure on create person", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create person"})
		}
		return
	}

	logger.Info("Person created successfully", slog.Int64("new_person_id", createdPerson.PersonID))
	c.JSON(http.StatusCreated, dto.ToPersonResponse(createdPerson))
}

// getPerson godoc
// @Summary Get a person by ID
// @Description Retrieves details for a specific person by their ID
// @Tags persons
// @Produce  json
// @Param   id path int true "Person ID"
// @Success 200 {object} dto.PersonResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 500 {object} map[string]string "Failed to retrieve person"
// @Router /persons/{id} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	person, err := h.personService.GetPersonByID(c.Request.Context(), personID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Person not found", slog.Int64("person_id", personID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		} else {
			logger.Error("Failed to get person from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve person"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}

// listPersons godoc
// @Summary List persons
// @Description Retrieves a paginated list of registered persons
// @Tags persons
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.PersonResponse
// @Failure 500 {object} map[string]string "Failed to list persons"
// @Router /persons [get]
func (h *personHandler) listPersons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPersonsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	persons, err := h.personService.ListPersons(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list persons from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list persons"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPersonResponse(persons))
}

// updatePerson godoc
// @Summary Update a person
// @Description Updates details for a specific person
// @Tags persons
// @Accept  json
// @Produce  json
// @Param   id path int true "Person ID"
// @Param   person body dto.UpdatePersonRequest true "Fields to update"
// @Success 200 {object} dto.PersonResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 409 {object} map[string]string "National ID already registered"
// @Failure 500 {object} map[string]string "Failed to update person"
// @Router /persons/{id} [put]
func (h *personHandler) updatePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update person request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updatedPerson, err := h.personService.UpdatePerson(c.Request.Context(), personID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Person not found for update", slog.Int64("person_id", personID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate national ID on update person", slog.Int64("person_id", personID))
			c.JSON(http.StatusConflict, gin.H{"error": "A person with this national ID already exists"})
		} else {
			logger.Error("Failed to update person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update person"})
		}
		return
	}

	logger.Info("Person updated successfully", slog.Int64("person_id", personID))
	c.JSON(http.StatusOK, dto.ToPersonResponse(updatedPerson))
}

// deletePerson godoc
// @Summary Delete a person
// @Description Deletes a person who owns no accounts
// @Tags persons
// @Produce  json
// @Param   id path int true "Person ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Person still owns accounts"
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 500 {object} map[string]string "Failed to delete person"
// @Router /persons/{id} [delete]
func (h *personHandler) deletePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.personService.DeletePerson(c.Request.Context(), personID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Person not found for delete", slog.Int64("person_id", personID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Person delete rejected", slog.Int64("person_id", personID), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete person"})
		}
		return
	}

	logger.Info("Person deleted successfully", slog.Int64("person_id", personID))
	c.Status(http.StatusNoContent)
}
