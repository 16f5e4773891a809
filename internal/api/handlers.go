package api

import (
	"casetracker/internal/engine"
	"casetracker/internal/models"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	table   *engine.Table
	queries *engine.Querier
}

func NewHandler(table *engine.Table, queries *engine.Querier) *Handler {
	return &Handler{table: table, queries: queries}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/cases", h.GetCases)
	api.GET("/regions/top", h.GetTopRegions)
	api.GET("/regions/unchanged", h.GetUnchanged)
	api.GET("/dataset", h.GetDataset)
}

// --- HANDLERS ---
func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// getDate reads day, month and the optional year from the query string.
func getDate(c echo.Context) (engine.Date, error) {
	d := engine.Date{Year: engine.DefaultYear}
	var err error
	if d.Day, err = strconv.Atoi(c.QueryParam("day")); err != nil {
		return d, echo.NewHTTPError(http.StatusBadRequest, "day must be an integer")
	}
	if d.Month, err = strconv.Atoi(c.QueryParam("month")); err != nil {
		return d, echo.NewHTTPError(http.StatusBadRequest, "month must be an integer")
	}
	if y := c.QueryParam("year"); y != "" {
		if d.Year, err = strconv.Atoi(y); err != nil {
			return d, echo.NewHTTPError(http.StatusBadRequest, "year must be an integer")
		}
	}
	return d, nil
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, engine.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, engine.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return fmt.Errorf("query: %w", err)
	}
}

func (h *Handler) GetCases(c echo.Context) error {
	d, err := getDate(c)
	if err != nil {
		return err
	}
	n, err := h.queries.CasesOnDate(d.Day, d.Month, d.Year)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, models.CasesResult{
		Region: h.queries.Region(),
		Date:   d.Key(),
		Cases:  n,
	})
}

// returns the ranking page [offset, offset+limit), top 5 by default
func (h *Handler) GetTopRegions(c echo.Context) error {
	d, err := getDate(c)
	if err != nil {
		return err
	}
	limit, offset := getPaginationParams(c, engine.DefaultTopN)

	top, err := h.queries.TopRegionsOnDate(d.Day, d.Month, d.Year, offset+limit)
	if err != nil {
		return toHTTPError(err)
	}

	page := models.TopRegionsPage{
		Date:   d.Key(),
		Data:   []models.TopRegion{},
		Limit:  limit,
		Offset: offset,
	}
	if offset < len(top) {
		for i, r := range top[offset:] {
			page.Data = append(page.Data, models.TopRegion{
				Rank: offset + i + 1, Region: r.Region, Cases: r.Cases,
			})
		}
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) GetUnchanged(c echo.Context) error {
	d, err := getDate(c)
	if err != nil {
		return err
	}
	n, err := h.queries.UnchangedCountOnDate(d.Day, d.Month, d.Year)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, models.UnchangedResult{
		Date:     d.Key(),
		Previous: d.Previous().Key(),
		Count:    n,
	})
}

func (h *Handler) GetDataset(c echo.Context) error {
	return c.JSON(http.StatusOK, models.DatasetInfo{
		Rows:    h.table.Len(),
		Regions: len(h.table.DistinctRegions()),
		Dates:   h.table.DateKeys(),
	})
}
