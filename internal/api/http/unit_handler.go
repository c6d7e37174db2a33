package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"rentdesk-backend/internal/domain"
)

type unitRequest struct {
	UnitNumber string          `json:"unit_number"`
	UnitType   string          `json:"unit_type"`
	RentAmount decimal.Decimal `json:"rent_amount"`
	Status     string          `json:"status"`
}

func (h *Handler) AddUnit(w http.ResponseWriter, r *http.Request) {
	propertyID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}
	if err := h.accessSvc.CanManageProperty(r.Context(), callerFrom(r.Context()), propertyID); err != nil {
		writeDomainError(w, err)
		return
	}

	var req unitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	u := &domain.Unit{
		PropertyID: propertyID,
		UnitNumber: req.UnitNumber,
		UnitType:   domain.UnitType(req.UnitType),
		RentAmount: req.RentAmount,
		Status:     domain.UnitStatus(req.Status),
	}
	if err := h.unitSvc.AddUnit(r.Context(), u); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *Handler) GetUnit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid unit id"})
		return
	}
	u, err := h.unitSvc.GetUnit(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	propertyID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}
	units, err := h.unitSvc.ListUnits(r.Context(), propertyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

func (h *Handler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid unit id"})
		return
	}
	if err := h.accessSvc.CanManageUnit(r.Context(), callerFrom(r.Context()), id); err != nil {
		writeDomainError(w, err)
		return
	}

	existing, err := h.unitSvc.GetUnit(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var req unitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	existing.UnitNumber = req.UnitNumber
	if req.UnitType != "" {
		existing.UnitType = domain.UnitType(req.UnitType)
	}
	if req.Status != "" {
		existing.Status = domain.UnitStatus(req.Status)
	}
	existing.RentAmount = req.RentAmount
	if err := h.unitSvc.UpdateUnit(r.Context(), existing); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

func (h *Handler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid unit id"})
		return
	}
	if err := h.accessSvc.CanManageUnit(r.Context(), callerFrom(r.Context()), id); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := h.unitSvc.DeleteUnit(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type adjustmentRequest struct {
	NewRent       decimal.Decimal `json:"new_rent"`
	EffectiveDate string          `json:"effective_date"`
}

func (h *Handler) ScheduleRentAdjustment(w http.ResponseWriter, r *http.Request) {
	unitID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid unit id"})
		return
	}
	if err := h.accessSvc.CanManageUnit(r.Context(), callerFrom(r.Context()), unitID); err != nil {
		writeDomainError(w, err)
		return
	}

	var req adjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	adj, err := h.unitSvc.ScheduleRentAdjustment(r.Context(), unitID, req.NewRent, req.EffectiveDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, adj)
}

func (h *Handler) ListRentAdjustments(w http.ResponseWriter, r *http.Request) {
	unitID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid unit id"})
		return
	}
	if err := h.accessSvc.CanManageUnit(r.Context(), callerFrom(r.Context()), unitID); err != nil {
		writeDomainError(w, err)
		return
	}
	adjustments, err := h.unitSvc.ListRentAdjustments(r.Context(), unitID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adjustments)
}

func (h *Handler) CancelRentAdjustment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid adjustment id"})
		return
	}
	caller := callerFrom(r.Context())
	if caller.Role != domain.RoleLandlord && caller.Role != domain.RoleAdmin {
		writeDomainError(w, domain.ErrForbidden)
		return
	}
	if err := h.unitSvc.CancelRentAdjustment(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
