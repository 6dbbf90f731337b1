package integrity

import (
	"context"
	"errors"

	"movie-grid/core/logger"
	"movie-grid/core/utils"
	"movie-grid/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/drift", h.HandleDriftCheck)
	group.Get("/grid", h.HandleGridCheck)
}

func section(report any, err error) any {
	switch {
	case errors.Is(err, checks.ErrNotConfigured):
		return fiber.Map{"status": checks.StatusSkipped}
	case err != nil:
		return fiber.Map{"status": "error", "error": err.Error()}
	}
	return report
}

func failure(c *fiber.Ctx, err error) error {
	if errors.Is(err, checks.ErrNotConfigured) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the catalog document, the movies table, their drift and the grid layout. Unconfigured backends are skipped.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	storageReport, storageErr := h.service.CheckStorage(ctx)
	tableReport, tableErr := h.service.CheckDatabase(ctx)
	driftReport, driftErr := h.service.CheckDrift(ctx)
	gridReport, gridErr := h.service.CheckGrid()

	return c.JSON(fiber.Map{
		"storage":  section(storageReport, storageErr),
		"database": section(tableReport, tableErr),
		"drift":    section(driftReport, driftErr),
		"grid":     section(gridReport, gridErr),
	})
}

// HandleStorageCheck checks and optionally fixes the catalog document.
// @Summary Check Catalog Document
// @Description Checks that the bucket and the catalog document exist. Optionally creates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create a missing bucket or document"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 404 {object} map[string]string "Storage not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	return h.checkAndFix(c, "storage",
		func(ctx context.Context) (any, string, error) {
			r, err := h.service.CheckStorage(ctx)
			if err != nil {
				return nil, "", err
			}
			return r, r.Status, nil
		},
		h.service.FixStorage,
	)
}

// HandleDatabaseCheck checks and optionally migrates the movies table.
// @Summary Check Movies Table
// @Description Compares the movies table with the movie model. Optionally creates or migrates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create or migrate the table"
// @Success 200 {object} checks.TableReport "Table Report"
// @Failure 404 {object} map[string]string "Database not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	return h.checkAndFix(c, "database",
		func(ctx context.Context) (any, string, error) {
			r, err := h.service.CheckDatabase(ctx)
			if err != nil {
				return nil, "", err
			}
			return r, r.Status, nil
		},
		h.service.FixDatabase,
	)
}

// HandleDriftCheck compares the movies table with the catalog document.
// @Summary Check Catalog Drift
// @Description Lists movies missing from either store and titles that differ. With fix the document is rewritten from the table.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Publish the table to the document"
// @Success 200 {object} checks.DriftReport "Drift Report"
// @Failure 404 {object} map[string]string "Database or storage not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/drift [get]
func (h *Handler) HandleDriftCheck(c *fiber.Ctx) error {
	return h.checkAndFix(c, "drift",
		func(ctx context.Context) (any, string, error) {
			r, err := h.service.CheckDrift(ctx)
			if err != nil {
				return nil, "", err
			}
			return r, r.Status, nil
		},
		h.service.FixDrift,
	)
}

func (h *Handler) checkAndFix(c *fiber.Ctx, name string, check func(context.Context) (any, string, error), fix func(context.Context) error) error {
	l := logger.WithRayID(h.service.logger, c).With(zap.String("check", name))
	ctx := c.UserContext()

	report, status, err := check(ctx)
	if err != nil {
		l.Error("Integrity check failed", zap.Error(err))
		return failure(c, err)
	}
	if status == checks.StatusOK || !utils.ToBool(c.Query("fix")) {
		return c.JSON(report)
	}

	l.Warn("Integrity problem detected, fixing", zap.String("status", status))
	if err := fix(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fix " + name,
			"details": err.Error(),
		})
	}

	report, _, err = check(ctx)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(report)
}

// HandleGridCheck checks the grid layout.
// @Summary Check Grid Layout
// @Description Verifies that the grid shows unique ids in ascending row-major order within capacity.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.GridReport "Grid Report"
// @Failure 404 {object} map[string]string "Grid not configured"
// @Router /integrity/grid [get]
func (h *Handler) HandleGridCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckGrid()
	if err != nil {
		return failure(c, err)
	}
	if report.Status != checks.StatusOK {
		logger.WithRayID(h.service.logger, c).Warn("Grid layout problems", zap.Strings("problems", report.Problems))
	}
	return c.JSON(report)
}
