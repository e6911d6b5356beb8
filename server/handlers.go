package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/etnz/partsledger"
	"github.com/etnz/partsledger/date"
)

// Handler serves the ledger routes.
type Handler struct {
	book      *partsledger.Book
	gate      *partsledger.DeleteGate
	currency  string
	threshold int64
	logger    *zap.Logger
}

// NewHandler constructs the HTTP handler adapter.
func NewHandler(book *partsledger.Book, gate *partsledger.DeleteGate, currency string, threshold int64, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{book: book, gate: gate, currency: currency, threshold: threshold, logger: logger}
}

// statusOf maps ledger errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, partsledger.ErrInvalidInput),
		errors.Is(err, partsledger.ErrUnknownPart),
		errors.Is(err, partsledger.ErrInsufficientStock):
		return http.StatusBadRequest
	case errors.Is(err, partsledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, partsledger.ErrPasswordTooShort),
		errors.Is(err, partsledger.ErrPasswordMismatch),
		errors.Is(err, partsledger.ErrIncorrectPassword):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err))
	} else {
		h.logger.Warn(msg, zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// ledger reloads the ledgers from the store, so that writes of other
// processes are served. It reports false after answering with an error.
func (h *Handler) ledger(c *gin.Context) (partsledger.Ledger, bool) {
	if err := h.book.Refresh(c.Request.Context()); err != nil {
		h.fail(c, "failed loading ledgers", err)
		return partsledger.Ledger{}, false
	}
	return h.book.Snapshot(), true
}

// ListPurchases returns the purchases, most recent first.
func (h *Handler) ListPurchases(c *gin.Context) {
	l, ok := h.ledger(c)
	if !ok {
		return
	}
	ps := l.Purchases.ByDateDesc()
	if ps == nil {
		ps = partsledger.Purchases{}
	}
	c.JSON(http.StatusOK, ps)
}

// ListSales returns the sales, most recent first.
func (h *Handler) ListSales(c *gin.Context) {
	l, ok := h.ledger(c)
	if !ok {
		return
	}
	ss := l.Sales.ByDateDesc()
	if ss == nil {
		ss = partsledger.Sales{}
	}
	c.JSON(http.StatusOK, ss)
}

// Stock returns the derived stock.
func (h *Handler) Stock(c *gin.Context) {
	l, ok := h.ledger(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, l.Stock())
}

// LowStock returns the stock items below the threshold.
func (h *Handler) LowStock(c *gin.Context) {
	l, ok := h.ledger(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, partsledger.LowStock(l.Stock(), h.threshold))
}

// Summary returns the dashboard metrics.
func (h *Handler) Summary(c *gin.Context) {
	l, ok := h.ledger(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, l.Summary(h.currency, h.threshold))
}

// CreatePurchase records a new purchase. An id is assigned when missing.
func (h *Handler) CreatePurchase(c *gin.Context) {
	var p partsledger.Purchase
	if err := c.ShouldBindJSON(&p); err != nil {
		h.logger.Warn("invalid purchase payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := partsledger.ValidatePurchase(p); err != nil {
		h.fail(c, "invalid purchase", err)
		return
	}
	if err := h.book.AddOrUpdatePurchase(c.Request.Context(), p); err != nil {
		h.fail(c, "failed saving purchase", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdatePurchase replaces the purchase identified in the path.
func (h *Handler) UpdatePurchase(c *gin.Context) {
	var p partsledger.Purchase
	if err := c.ShouldBindJSON(&p); err != nil {
		h.logger.Warn("invalid purchase payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p.ID = c.Param("id")
	if err := partsledger.ValidatePurchase(p); err != nil {
		h.fail(c, "invalid purchase", err)
		return
	}
	if err := h.book.UpdatePurchase(c.Request.Context(), p); err != nil {
		h.fail(c, "failed updating purchase", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type deleteRequest struct {
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// DeletePurchase removes the purchase identified in the path, once the
// delete password is confirmed.
func (h *Handler) DeletePurchase(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid delete payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ctx := c.Request.Context()
	if err := h.gate.Confirm(ctx, req.Password, req.Confirm); err != nil {
		h.fail(c, "delete refused", err)
		return
	}
	if err := h.book.DeletePurchase(ctx, c.Param("id")); err != nil {
		h.fail(c, "failed deleting purchase", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// saleRequest is a Sale whose price may be omitted.
type saleRequest struct {
	ID string `json:"id"`
	partsledger.PartKey
	Quantity  int64            `json:"quantity"`
	SalePrice *decimal.Decimal `json:"salePrice"`
	Date      date.Date        `json:"date"`
}

// CreateSale records a sale after checking it against the stock, under the
// book write lock. The price defaults to the average purchase price of the part.
func (h *Handler) CreateSale(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid sale payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	l, ok := h.ledger(c)
	if !ok {
		return
	}
	s := partsledger.Sale{
		ID:       req.ID,
		PartKey:  req.PartKey,
		Quantity: req.Quantity,
		Date:     req.Date,
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if req.SalePrice != nil {
		s.SalePrice = *req.SalePrice
	} else if item, ok := partsledger.FindStock(l.Stock(), s.PartKey); ok {
		s.SalePrice = item.AvgPurchasePrice
	}
	if err := h.book.Sell(c.Request.Context(), s); err != nil {
		h.fail(c, "failed recording sale", err)
		return
	}
	c.JSON(http.StatusCreated, s)
}
