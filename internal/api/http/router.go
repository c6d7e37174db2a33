// Package http exposes the JSON API. Callers are identified by the
// X-User-ID header set by the identity gateway in front of this service;
// token verification itself is not this service's concern.
package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
	"rentdesk-backend/internal/service"
)

type contextKey string

const callerKey contextKey = "caller"

// Handler bundles the services behind the JSON API
type Handler struct {
	leaseSvc    service.LeaseService
	invoiceSvc  service.InvoiceService
	propertySvc service.PropertyService
	unitSvc     service.UnitService
	accessSvc   service.AccessService
	userRepo    repository.UserRepository
}

func NewHandler(
	leaseSvc service.LeaseService,
	invoiceSvc service.InvoiceService,
	propertySvc service.PropertyService,
	unitSvc service.UnitService,
	accessSvc service.AccessService,
	userRepo repository.UserRepository,
) *Handler {
	return &Handler{
		leaseSvc:    leaseSvc,
		invoiceSvc:  invoiceSvc,
		propertySvc: propertySvc,
		unitSvc:     unitSvc,
		accessSvc:   accessSvc,
		userRepo:    userRepo,
	}
}

// NewRouter builds the mux router with all API routes registered
func (h *Handler) NewRouter() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.withCaller)

	// Properties
	api.HandleFunc("/properties", h.CreateProperty).Methods(http.MethodPost)
	api.HandleFunc("/properties", h.ListMyProperties).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}", h.GetProperty).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}", h.UpdateProperty).Methods(http.MethodPut)
	api.HandleFunc("/properties/{id}", h.DeleteProperty).Methods(http.MethodDelete)
	api.HandleFunc("/properties/{id}/units", h.AddUnit).Methods(http.MethodPost)
	api.HandleFunc("/properties/{id}/units", h.ListUnits).Methods(http.MethodGet)

	// Units and rent adjustments
	api.HandleFunc("/units/{id}", h.GetUnit).Methods(http.MethodGet)
	api.HandleFunc("/units/{id}", h.UpdateUnit).Methods(http.MethodPut)
	api.HandleFunc("/units/{id}", h.DeleteUnit).Methods(http.MethodDelete)
	api.HandleFunc("/units/{id}/adjustments", h.ScheduleRentAdjustment).Methods(http.MethodPost)
	api.HandleFunc("/units/{id}/adjustments", h.ListRentAdjustments).Methods(http.MethodGet)
	api.HandleFunc("/adjustments/{id}", h.CancelRentAdjustment).Methods(http.MethodDelete)

	// Amenities
	api.HandleFunc("/amenities", h.CreateAmenity).Methods(http.MethodPost)
	api.HandleFunc("/amenities", h.ListAmenities).Methods(http.MethodGet)
	api.HandleFunc("/amenities/{id}", h.UpdateAmenity).Methods(http.MethodPut)
	api.HandleFunc("/amenities/{id}", h.DeleteAmenity).Methods(http.MethodDelete)

	// Leases
	api.HandleFunc("/leases", h.CreateLease).Methods(http.MethodPost)
	api.HandleFunc("/leases", h.ListMyLeases).Methods(http.MethodGet)
	api.HandleFunc("/leases/{id}", h.GetLease).Methods(http.MethodGet)
	api.HandleFunc("/leases/{id}/activate", h.ActivateLease).Methods(http.MethodPost)
	api.HandleFunc("/leases/{id}/terminate", h.TerminateLease).Methods(http.MethodPost)
	api.HandleFunc("/leases/{id}/invoices", h.ListLeaseInvoices).Methods(http.MethodGet)

	// Invoices
	api.HandleFunc("/invoices", h.ListMyInvoices).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}", h.GetInvoice).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}/pay", h.PayInvoice).Methods(http.MethodPost)
	api.HandleFunc("/invoices/{id}/overdue", h.MarkInvoiceOverdue).Methods(http.MethodPost)

	return r
}

// withCaller resolves the authenticated caller from the X-User-ID header
func (h *Handler) withCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing X-User-ID header"})
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid X-User-ID header"})
			return
		}
		caller, err := h.userRepo.GetByID(r.Context(), id)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unknown caller"})
			return
		}
		ctx := context.WithValue(r.Context(), callerKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerFrom(ctx context.Context) *domain.User {
	caller, _ := ctx.Value(callerKey).(*domain.User)
	return caller
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}
