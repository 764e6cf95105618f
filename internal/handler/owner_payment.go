package handler // handler package contains owner-specific payment handlers

import (
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/iliyamo/property-management/internal/model"
    "github.com/iliyamo/property-management/internal/queue"
    "github.com/iliyamo/property-management/internal/repository"
    queue_publisher "github.com/iliyamo/property-management/internal/service"
    "github.com/labstack/echo/v4"
)

// paymentBody is the JSON payload accepted when recording a payment.
type paymentBody struct {
    ContractID uint64  `json:"contract_id"`
    Amount     float64 `json:"amount"`
    Type       string  `json:"type"`
    DueDate    string  `json:"due_date"`
}

// CreatePayment handles POST /v1/payments and records a new obligation on
// one of the owner's contracts.
func (h *OwnerHandler) CreatePayment(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    var body paymentBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    if body.ContractID == 0 {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "contract_id is required"})
    }
    if body.Amount <= 0 {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "amount must be positive"})
    }
    due, err := parseDay(body.DueDate)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid due_date"})
    }
    payment := &model.Payment{
        ContractID: body.ContractID,
        Amount:     body.Amount,
        Type:       strings.ToLower(strings.TrimSpace(body.Type)),
        DueDate:    due,
    }
    if err := h.PaymentRepo.Create(c.Request().Context(), ownerID, payment); err != nil {
        if err == repository.ErrForbidden {
            return c.JSON(http.StatusNotFound, map[string]string{"error": "contract not found"})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create payment"})
    }
    return c.JSON(http.StatusCreated, payment)
}

// ListPayments handles GET /v1/payments for the authenticated owner
func (h *OwnerHandler) ListPayments(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    items, err := h.PaymentRepo.ListByOwner(c.Request().Context(), ownerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// MarkPaymentPaid handles POST /v1/payments/:id/pay.  It settles the payment
// and publishes a payment.recorded event for downstream consumers; publish
// failures are ignored so settlement never blocks on the broker.
func (h *OwnerHandler) MarkPaymentPaid(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    paidAt := time.Now().UTC()
    if err := h.PaymentRepo.MarkPaid(c.Request().Context(), id, ownerID, paidAt); err != nil {
        switch err {
        case repository.ErrPaymentNotFound:
            return c.JSON(http.StatusNotFound, map[string]string{"error": "payment not found"})
        case repository.ErrConflict:
            return c.JSON(http.StatusConflict, map[string]string{"error": "payment already paid"})
        default:
            return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
        }
    }
    payment, err := h.PaymentRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    _ = queue_publisher.PublishPaymentRecorded(c.Request().Context(), queue.PaymentRecordedEvent{
        PaymentID:  payment.ID,
        ContractID: payment.ContractID,
        OwnerID:    ownerID,
        Amount:     payment.Amount,
        Type:       payment.Type,
        PaidAt:     paidAt.Format(time.RFC3339),
    })
    return c.JSON(http.StatusOK, payment)
}
