package response

import (
	"distrito_racing/internal/usecase"
)

type PaymentStatusResponse struct {
	OrderID      string              `json:"order_id"`
	ChargeID     string              `json:"charge_id,omitempty"`
	Status       string              `json:"status"`
	StatusDetail string              `json:"status_detail,omitempty"`
	IsPaid       bool                `json:"is_paid"`
	Payment      PaymentInfoResponse `json:"payment"`
}

func FromPaymentStatus(r usecase.PaymentStatusResult) PaymentStatusResponse {
	return PaymentStatusResponse{
		OrderID:      r.OrderID,
		ChargeID:     r.ChargeID,
		Status:       string(r.Status),
		StatusDetail: r.StatusDetail,
		IsPaid:       r.IsPaid,
		Payment:      fromPaymentInfo(r.Payment),
	}
}
