package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openvillage/village-api/internal/api/metrics"
	"github.com/openvillage/village-api/internal/core/domain"
	"github.com/openvillage/village-api/internal/core/ports"
)

// VillageHandler handles HTTP requests for village operations.
type VillageHandler struct {
	service ports.VillageService
}

func NewVillageHandler(service ports.VillageService) *VillageHandler {
	return &VillageHandler{service: service}
}

// Create founds a new village owned by the authenticated user.
//
// @Summary      Create a village
// @Tags         villages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVillageRequest  true  "Village details"
// @Success      201   {object}  villageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /villages [post]
func (h *VillageHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createVillageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	village, err := h.service.CreateVillage(c.Request().Context(), ports.CreateVillageInput{
		OwnerID: userID,
		Name:    req.Name,
		X:       req.X,
		Y:       req.Y,
	})
	if err != nil {
		return err
	}

	metrics.VillagesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toVillageResponse(village))
}

// List returns all villages owned by the authenticated user, oldest first.
//
// @Summary      List the caller's villages
// @Tags         villages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   villageResponse
// @Failure      401  {object}  errorResponse
// @Router       /villages [get]
func (h *VillageHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	villages, err := h.service.ListVillages(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]villageResponse, 0, len(villages))
	for _, v := range villages {
		resp = append(resp, toVillageResponse(v))
	}

	return c.JSON(http.StatusOK, resp)
}

func toVillageResponse(v *domain.Village) villageResponse {
	return villageResponse{
		ID:         v.ID,
		OwnerID:    v.OwnerID,
		Name:       v.Name,
		X:          v.X,
		Y:          v.Y,
		Population: v.Population,
		CreatedAt:  v.CreatedAt,
	}
}
