package http

import (
	"net/http"

	"rentdesk-backend/internal/domain"
)

func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid invoice id"})
		return
	}
	if err := h.accessSvc.CanViewInvoice(r.Context(), callerFrom(r.Context()), id); err != nil {
		writeDomainError(w, err)
		return
	}
	inv, err := h.invoiceSvc.GetInvoice(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *Handler) ListMyInvoices(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r.Context())
	invoices, err := h.invoiceSvc.ListTenantInvoices(r.Context(), caller.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

func (h *Handler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid invoice id"})
		return
	}
	if err := h.accessSvc.CanPayInvoice(r.Context(), callerFrom(r.Context()), id); err != nil {
		writeDomainError(w, err)
		return
	}
	inv, err := h.invoiceSvc.PayInvoice(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// MarkInvoiceOverdue is the corrective admin path; the nightly sweep handles
// the regular transition.
func (h *Handler) MarkInvoiceOverdue(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r.Context())
	if caller.Role != domain.RoleAdmin {
		writeDomainError(w, domain.ErrForbidden)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid invoice id"})
		return
	}
	inv, err := h.invoiceSvc.MarkOverdue(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}
