package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cryptopulse/internal/domain/dto"
	"github.com/guttosm/cryptopulse/internal/domain/errs"
	"github.com/guttosm/cryptopulse/internal/service"
)

// Handler provides HTTP handlers for the currency registry and price
// statistics endpoints.
//
// Responsibilities:
//   - Validate incoming JSON bodies, query parameters, and uploads
//   - Delegate to the service layer
//   - Translate service results and domain errors into response DTOs
//     with appropriate HTTP status codes
type Handler struct {
	currencies service.CurrencyService
	stats      service.StatsService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - currencies (service.CurrencyService): registry operations.
//   - stats (service.StatsService): ingestion and aggregation operations.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(currencies service.CurrencyService, stats service.StatsService) *Handler {
	return &Handler{currencies: currencies, stats: stats}
}

// respondError maps domain errors onto HTTP statuses:
//
//	errs.NotFoundError        → 404
//	errs.CSVProcessError      → 400
//	errs.WrongTimePeriodError → 400
//	errs.DuplicateError       → 400
//	anything else             → 500
func respondError(c *gin.Context, err error) {
	var nf *errs.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(nf.Message, nil))
		return
	}
	var csvErr *errs.CSVProcessError
	if errors.As(err, &csvErr) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(csvErr.Message, csvErr.Err))
		return
	}
	var wtp *errs.WrongTimePeriodError
	if errors.As(err, &wtp) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(wtp.Error(), nil))
		return
	}
	var dup *errs.DuplicateError
	if errors.As(err, &dup) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dup.Error(), nil))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("unexpected error", err))
}

// parseDateTimeParam reads an optional ISO local date-time query parameter.
// Returns (nil, true) when absent, (value, true) when valid; writes a 400
// response and returns (nil, false) when malformed.
func parseDateTimeParam(c *gin.Context, name string) (*time.Time, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	t, err := dto.ParseLocalDateTime(s)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid "+name+" format, expected YYYY-MM-DDTHH:MM[:SS]", err))
		return nil, false
	}
	return &t, true
}

// CreateCurrency handles POST /api/v1/currencies requests.
//
// CreateCurrency godoc
// @Summary      Register a currency
// @Description  Registers a new currency symbol so price files for it can be ingested
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        currency  body      dto.CurrencyRequest  true  "Currency to register"
// @Success      201       "Created"
// @Failure      400       {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/currencies [post]
func (h *Handler) CreateCurrency(c *gin.Context) {
	var req dto.CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol is required", err))
		return
	}
	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol is required", nil))
		return
	}

	if _, err := h.currencies.CreateCurrency(c.Request.Context(), symbol); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// GetCurrency handles GET /api/v1/currencies/:name requests.
//
// GetCurrency godoc
// @Summary      Get one currency
// @Description  Returns the registered currency with the given symbol
// @Tags         currencies
// @Produce      json
// @Param        name  path      string  true  "Currency symbol" example(BTC)
// @Success      200   {object}  dto.CurrencyResponse  "Success"
// @Failure      404   {object}  dto.ErrorResponse     "Not Found"
// @Router       /api/v1/currencies/{name} [get]
func (h *Handler) GetCurrency(c *gin.Context) {
	symbol := c.Param("name")

	cur, err := h.currencies.GetCurrency(c.Request.Context(), symbol)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CurrencyResponse{Symbol: cur.Symbol})
}

// GetAllCurrencies handles GET /api/v1/currencies requests.
//
// GetAllCurrencies godoc
// @Summary      List currencies
// @Description  Returns every registered currency
// @Tags         currencies
// @Produce      json
// @Success      200  {array}   dto.CurrencyResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/v1/currencies [get]
func (h *Handler) GetAllCurrencies(c *gin.Context) {
	currencies, err := h.currencies.GetAllCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.CurrencyResponse, 0, len(currencies))
	for _, cur := range currencies {
		resp = append(resp, dto.CurrencyResponse{Symbol: cur.Symbol})
	}
	c.JSON(http.StatusOK, resp)
}

// UploadStats handles POST /api/v1/currencies/stats requests.
//
// UploadStats godoc
// @Summary      Upload a CSV price file
// @Description  Ingests a CSV file (timestamp-millis, symbol, price) for one registered currency
// @Tags         stats
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV file"
// @Success      201   "Created"
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse  "Currency not registered"
// @Router       /api/v1/currencies/stats [post]
func (h *Handler) UploadStats(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("file is required", err))
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("file could not be read", err))
		return
	}
	defer f.Close()

	if err := h.stats.CreateStats(c.Request.Context(), f, file.Filename); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// GetCurrencyStats handles GET /api/v1/currencies/stats/:name requests.
//
// GetCurrencyStats godoc
// @Summary      Get currency statistics
// @Description  Returns oldest/newest timestamps and min/max price for one currency within the period
// @Tags         stats
// @Produce      json
// @Param        name           path      string  true   "Currency symbol" example(BTC)
// @Param        startDateTime  query     string  false  "Period start (ISO local date-time)" example(2022-01-01T00:00)
// @Param        endDateTime    query     string  false  "Period end (ISO local date-time)" example(2022-02-01T00:00)
// @Success      200            {object}  dto.CurrencyStatsResponse  "Success"
// @Failure      400            {object}  dto.ErrorResponse          "Bad Request"
// @Failure      404            {object}  dto.ErrorResponse          "Not Found"
// @Router       /api/v1/currencies/stats/{name} [get]
func (h *Handler) GetCurrencyStats(c *gin.Context) {
	symbol := c.Param("name")

	start, ok := parseDateTimeParam(c, "startDateTime")
	if !ok {
		return
	}
	end, ok := parseDateTimeParam(c, "endDateTime")
	if !ok {
		return
	}

	stats, err := h.stats.GetCurrencyStats(c.Request.Context(), symbol, start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyStatsResponse{
		Symbol:     stats.Symbol,
		OldestDate: dto.LocalDateTime(stats.OldestDate),
		NewestDate: dto.LocalDateTime(stats.NewestDate),
		MinPrice:   stats.MinPrice,
		MaxPrice:   stats.MaxPrice,
	})
}

// GetAllNormalized handles GET /api/v1/currencies/stats requests.
//
// GetAllNormalized godoc
// @Summary      List normalized price ranges
// @Description  Returns (max-min)/min per currency over the period, descending
// @Tags         stats
// @Produce      json
// @Param        startDateTime  query     string  false  "Period start (ISO local date-time)" example(2022-01-01T00:00)
// @Param        endDateTime    query     string  false  "Period end (ISO local date-time)" example(2022-02-01T00:00)
// @Success      200            {array}   dto.NormalizedPriceResponse  "Success"
// @Failure      400            {object}  dto.ErrorResponse            "Bad Request"
// @Router       /api/v1/currencies/stats [get]
func (h *Handler) GetAllNormalized(c *gin.Context) {
	start, ok := parseDateTimeParam(c, "startDateTime")
	if !ok {
		return
	}
	end, ok := parseDateTimeParam(c, "endDateTime")
	if !ok {
		return
	}

	prices, err := h.stats.GetAllCurrenciesNormalized(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.NormalizedPriceResponse, 0, len(prices))
	for _, p := range prices {
		resp = append(resp, dto.NormalizedPriceResponse{Symbol: p.Symbol, NormalizedPrice: p.Value})
	}
	c.JSON(http.StatusOK, resp)
}

// GetHighestForDay handles GET /api/v1/currencies/stats/highest requests.
//
// GetHighestForDay godoc
// @Summary      Highest normalized range for a day
// @Description  Returns the currency with the highest (max-min)/min within the given day (default: today)
// @Tags         stats
// @Produce      json
// @Param        day  query     string  false  "Day in YYYY-MM-DD" example(2022-01-04)
// @Success      200  {object}  dto.NormalizedPriceResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse            "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse            "Not Found"
// @Router       /api/v1/currencies/stats/highest [get]
func (h *Handler) GetHighestForDay(c *gin.Context) {
	var day *time.Time
	if s := c.Query("day"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid day format, expected YYYY-MM-DD", err))
			return
		}
		day = &parsed
	}

	top, err := h.stats.GetHighestNormalizedPriceForDay(c.Request.Context(), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NormalizedPriceResponse{Symbol: top.Symbol, NormalizedPrice: top.Value})
}
