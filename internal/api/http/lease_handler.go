package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/service"
)

type createLeaseRequest struct {
	UnitID        uuid.UUID        `json:"unit_id"`
	TenantID      uuid.UUID        `json:"tenant_id"`
	StartDate     string           `json:"start_date"`
	EndDate       string           `json:"end_date"`
	RentAmount    *decimal.Decimal `json:"rent_amount,omitempty"`
	DepositAmount *decimal.Decimal `json:"deposit_amount,omitempty"`
}

func (h *Handler) CreateLease(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r.Context())

	var req createLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.accessSvc.CanManageUnit(r.Context(), caller, req.UnitID); err != nil {
		writeDomainError(w, err)
		return
	}

	lease, err := h.leaseSvc.CreateLease(r.Context(), service.CreateLeaseParams{
		UnitID:        req.UnitID,
		TenantID:      req.TenantID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		RentAmount:    req.RentAmount,
		DepositAmount: req.DepositAmount,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lease)
}

func (h *Handler) GetLease(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid lease id"})
		return
	}
	if err := h.accessSvc.CanViewLease(r.Context(), callerFrom(r.Context()), id); err != nil {
		writeDomainError(w, err)
		return
	}
	lease, err := h.leaseSvc.GetLease(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lease)
}

func (h *Handler) ListMyLeases(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r.Context())

	var (
		leases []domain.Lease
		err    error
	)
	if caller.Role == domain.RoleLandlord {
		leases, err = h.leaseSvc.ListLandlordLeases(r.Context(), caller.ID)
	} else {
		leases, err = h.leaseSvc.ListTenantLeases(r.Context(), caller.ID)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leases)
}

func (h *Handler) ActivateLease(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid lease id"})
		return
	}
	if err := h.accessSvc.CanManageLease(r.Context(), callerFrom(r.Context()), id); err != nil {
		writeDomainError(w, err)
		return
	}
	lease, err := h.leaseSvc.ActivateLease(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lease)
}

func (h *Handler) TerminateLease(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid lease id"})
		return
	}
	if err := h.accessSvc.CanManageLease(r.Context(), callerFrom(r.Context()), id); err != nil {
		writeDomainError(w, err)
		return
	}
	lease, err := h.leaseSvc.TerminateLease(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lease)
}

func (h *Handler) ListLeaseInvoices(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid lease id"})
		return
	}
	if err := h.accessSvc.CanViewLease(r.Context(), callerFrom(r.Context()), id); err != nil {
		writeDomainError(w, err)
		return
	}
	invoices, err := h.leaseSvc.ListLeaseInvoices(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}
