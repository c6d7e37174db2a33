package http

import (
	"encoding/json"
	"net/http"

	"rentdesk-backend/internal/domain"
)

type propertyRequest struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r.Context())
	if caller.Role != domain.RoleLandlord && caller.Role != domain.RoleAdmin {
		writeDomainError(w, domain.ErrForbidden)
		return
	}

	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	p := &domain.Property{
		LandlordID:   caller.ID,
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
	}
	if err := h.propertySvc.CreateProperty(r.Context(), p); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}
	p, err := h.propertySvc.GetProperty(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) ListMyProperties(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r.Context())
	properties, err := h.propertySvc.ListMyProperties(r.Context(), caller.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}
	caller := callerFrom(r.Context())
	if err := h.accessSvc.CanManageProperty(r.Context(), caller, id); err != nil {
		writeDomainError(w, err)
		return
	}

	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	p := &domain.Property{
		ID:           id,
		LandlordID:   caller.ID,
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
	}
	if err := h.propertySvc.UpdateProperty(r.Context(), p); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}
	if err := h.accessSvc.CanManageProperty(r.Context(), callerFrom(r.Context()), id); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := h.propertySvc.DeleteProperty(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type amenityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	if callerFrom(r.Context()).Role != domain.RoleAdmin {
		writeDomainError(w, domain.ErrForbidden)
		return
	}
	var req amenityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	a := &domain.Amenity{Name: req.Name, Description: req.Description}
	if err := h.propertySvc.CreateAmenity(r.Context(), a); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.propertySvc.ListAmenities(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, amenities)
}

func (h *Handler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	if callerFrom(r.Context()).Role != domain.RoleAdmin {
		writeDomainError(w, domain.ErrForbidden)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid amenity id"})
		return
	}
	var req amenityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	a := &domain.Amenity{ID: id, Name: req.Name, Description: req.Description}
	if err := h.propertySvc.UpdateAmenity(r.Context(), a); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	if callerFrom(r.Context()).Role != domain.RoleAdmin {
		writeDomainError(w, domain.ErrForbidden)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid amenity id"})
		return
	}
	if err := h.propertySvc.DeleteAmenity(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
