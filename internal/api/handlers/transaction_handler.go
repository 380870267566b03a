package handlers

import (
	"bytes"
	"errors"
	"time"

	"spendsense/internal/dto"
	"spendsense/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateFormat = "2006-01-02"

type TransactionHandler struct {
	txService     *service.TransactionService
	statsService  *service.StatsService
	importService *service.ImportService
	logger        *zap.Logger
}

func NewTransactionHandler(
	txService *service.TransactionService,
	statsService *service.StatsService,
	importService *service.ImportService,
	logger *zap.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		txService:     txService,
		statsService:  statsService,
		importService: importService,
		logger:        logger,
	}
}

// parseDateRange reads startDate/endDate query params, defaulting to the
// last 30 days when absent.
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -30)

	if raw := c.Query("endDate"); raw != "" {
		parsed, err := time.Parse(dateFormat, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}
	if raw := c.Query("startDate"); raw != "" {
		parsed, err := time.Parse(dateFormat, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}

	return start, end, nil
}

// List godoc
// @Summary List transactions
// @Description Paged transactions within a date range, newest first. The range defaults to the last 30 days.
// @Tags transactions
// @Produce json
// @Param page query int false "Page number (0-based)"
// @Param size query int false "Page size"
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Security Bearer
// @Success 200 {object} dto.TransactionPageResponse
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
	}

	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	resp, err := h.txService.List(c.Context(), userID, start, end, page, size)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}

	return c.JSON(resp)
}

// Create godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.txService.Create(c.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		h.logger.Error("Failed to create transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Delete godoc
// @Summary Delete a transaction
// @Description Delete one of the caller's own transactions
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	if err := h.txService.Delete(c.Context(), userID, txID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transaction not found",
			})
		case errors.Is(err, service.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You are not authorized to delete this transaction",
			})
		}
		h.logger.Error("Failed to delete transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete transaction",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary Dashboard totals
// @Description Total income, total expense and balance over a date range (default last 30 days)
// @Tags stats
// @Produce json
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Security Bearer
// @Success 200 {object} dto.StatsResponse
// @Router /api/transactions/stats [get]
func (h *TransactionHandler) Stats(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
	}

	resp, err := h.statsService.Totals(c.Context(), userID, start, end)
	if err != nil {
		h.logger.Error("Failed to compute stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute stats",
		})
	}

	return c.JSON(resp)
}

// MonthlyStats godoc
// @Summary Monthly breakdown
// @Description Income/expense sums per calendar month, twelve slots JAN..DEC, for one year (default current)
// @Tags stats
// @Produce json
// @Param year query int false "Calendar year"
// @Security Bearer
// @Success 200 {array} dto.MonthlyStatsResponse
// @Router /api/transactions/stats/monthly [get]
func (h *TransactionHandler) MonthlyStats(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	year := c.QueryInt("year", time.Now().Year())

	resp, err := h.statsService.Monthly(c.Context(), userID, year)
	if err != nil {
		h.logger.Error("Failed to compute monthly stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute monthly stats",
		})
	}

	return c.JSON(resp)
}

// ChartStats godoc
// @Summary Per-category expense totals
// @Tags stats
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CategoryStatsResponse
// @Router /api/transactions/stats/chart [get]
func (h *TransactionHandler) ChartStats(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.statsService.CategoryChart(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to compute chart stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute chart stats",
		})
	}

	return c.JSON(resp)
}

// Import godoc
// @Summary Import transactions from CSV
// @Description Upload a CSV file (date, description, amount). Bad rows are skipped and reported, the batch continues.
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Security Bearer
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} map[string]string
// @Router /api/transactions/import [post]
func (h *TransactionHandler) Import(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	resp, err := h.importService.ImportCSV(c.Context(), userID, src)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Import failed",
		})
	}

	return c.JSON(resp)
}

// Export godoc
// @Summary Export transactions as CSV
// @Description Download the caller's transactions within a date range
// @Tags transactions
// @Produce text/csv
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Security Bearer
// @Success 200 {string} string "CSV content"
// @Router /api/transactions/export [get]
func (h *TransactionHandler) Export(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
	}

	var buf bytes.Buffer
	if err := h.txService.Export(c.Context(), userID, start, end, &buf); err != nil {
		h.logger.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Export failed",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=transactions.csv")
	return c.Send(buf.Bytes())
}
