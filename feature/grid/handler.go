package grid

import (
	"errors"

	"movie-grid/core/logger"
	core "movie-grid/core/grid"
	"movie-grid/core/reconcile"
	"movie-grid/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ResizeRequest is the body of PUT /grid/size.
type ResizeRequest struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// FilterRequest is the body of PUT /grid/filter.
type FilterRequest struct {
	IDs []reconcile.ID `json:"ids"`
}

// ItemsRequest is the body of POST /grid/items. IDs get default titles.
type ItemsRequest struct {
	IDs   []reconcile.ID   `json:"ids"`
	Items []reconcile.Item `json:"items"`
}

// ItemsResponse reports the catalog size after a batch.
type ItemsResponse struct {
	Accepted   int `json:"accepted"`
	Collection int `json:"collection"`
}

// CycleResponse is the last cycle report, optionally with plan descriptions.
type CycleResponse struct {
	*core.CycleReport
	Plans [][]string `json:"plans,omitempty"`
}

// Handler handles HTTP requests for the grid.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the grid routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/grid")
	group.Get("/", h.HandleGetState)
	group.Put("/size", h.HandleResize)
	group.Put("/filter", h.HandleSetFilter)
	group.Post("/items", h.HandleAddItems)
	group.Get("/cycle", h.HandleGetCycle)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// HandleGetState returns what the grid shows.
// @Summary Get Grid State
// @Description Get the cells of every row, the active ids and the current filter.
// @Tags grid
// @Produce json
// @Success 200 {object} grid.State "Grid State"
// @Router /grid [get]
func (h *Handler) HandleGetState(c *fiber.Ctx) error {
	return c.JSON(h.service.State())
}

// HandleResize resizes the grid and clears its data.
// @Summary Resize Grid
// @Description Rebuild the grid with new dimensions. Clears the filter and the catalog.
// @Tags grid
// @Accept json
// @Produce json
// @Param request body grid.ResizeRequest true "Dimensions"
// @Success 200 {object} grid.State "Grid State"
// @Failure 400 {object} map[string]string "Invalid dimensions"
// @Failure 409 {object} map[string]string "Cycle in flight"
// @Router /grid/size [put]
func (h *Handler) HandleResize(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ResizeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.service.Resize(req.Rows, req.Columns); err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidDimensions):
			return badRequest(c, err.Error())
		case IsBusy(err):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Grid resize failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Grid resized", zap.Int("rows", req.Rows), zap.Int("columns", req.Columns))
	return c.JSON(h.service.State())
}

// HandleSetFilter replaces the filter.
// @Summary Set Filter
// @Description Replace the ids hidden from the grid. The change is animated asynchronously.
// @Tags grid
// @Accept json
// @Produce json
// @Param request body grid.FilterRequest true "Filtered ids"
// @Success 202 {object} map[string]int "Filter size"
// @Failure 400 {object} map[string]string "Invalid body"
// @Router /grid/filter [put]
func (h *Handler) HandleSetFilter(c *fiber.Ctx) error {
	var req FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	h.service.SetFilter(req.IDs)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"filtered": len(req.IDs)})
}

// HandleAddItems delivers a batch of items to the catalog.
// @Summary Add Items
// @Description Merge a batch of items into the catalog. The grid animates the result asynchronously.
// @Tags grid
// @Accept json
// @Produce json
// @Param request body grid.ItemsRequest true "Items"
// @Success 202 {object} grid.ItemsResponse "Catalog size"
// @Failure 400 {object} map[string]string "Invalid body"
// @Router /grid/items [post]
func (h *Handler) HandleAddItems(c *fiber.Ctx) error {
	var req ItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	items := append(reconcile.ItemsFromIDs(req.IDs...), req.Items...)
	if len(items) == 0 {
		return badRequest(c, "no items given")
	}

	size := h.service.AddItems(items)
	return c.Status(fiber.StatusAccepted).JSON(ItemsResponse{Accepted: len(items), Collection: size})
}

// HandleGetCycle returns the last cycle report.
// @Summary Get Last Cycle
// @Description Get the plans and counts of the most recent animation cycle.
// @Tags grid
// @Produce json
// @Param describe query bool false "Include plan descriptions"
// @Success 200 {object} grid.CycleResponse "Cycle Report"
// @Failure 404 {object} map[string]string "No cycle yet"
// @Router /grid/cycle [get]
func (h *Handler) HandleGetCycle(c *fiber.Ctx) error {
	report := h.service.LastCycle()
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no cycle has run yet"})
	}

	resp := CycleResponse{CycleReport: report}
	if utils.ToBool(c.Query("describe")) {
		for _, row := range report.Rows {
			resp.Plans = append(resp.Plans, row.Plan.Describe())
		}
	}
	return c.JSON(resp)
}
