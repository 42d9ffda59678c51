package http

import (
	"net/http"
	"strconv"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type pagination struct {
	Page       int32 `json:"page"`
	PageSize   int32 `json:"page_size"`
	Total      int32 `json:"total"`
	TotalPages int32 `json:"total_pages"`
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Clamp before the envelope math; page_size=0 would divide by zero below.
	page := queryInt32(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt32(q.Get("page_size"), 20)
	if pageSize < 1 {
		pageSize = 20
	}

	opts := service.RentalListOptions{
		CameraCode:   q.Get("camera_code"),
		Agent:        q.Get("agent"),
		CustomerName: q.Get("customer_name"),
		StartDate:    q.Get("start_date"),
		EndDate:      q.Get("end_date"),
		Status:       domain.RentalStatus(q.Get("status")),
		Page:         page,
		PageSize:     pageSize,
	}

	rentals, total, err := h.rentalSvc.ListRentals(r.Context(), viewerFrom(r.Context()), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}

	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rentals": rentals,
		"pagination": pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func (h *RentalHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year := int(queryInt32(q.Get("year"), 0))
	month := int(queryInt32(q.Get("month"), 0))
	cameraID := queryInt32(q.Get("camera_id"), 0)

	rentals, err := h.rentalSvc.GetCalendar(r.Context(), year, month, cameraID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) CheckConflict(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cameraID := queryInt32(q.Get("camera_id"), 0)
	excludeID := queryInt32(q.Get("exclude_rental_id"), 0)

	hasConflict, err := h.rentalSvc.CheckConflict(r.Context(), cameraID, q.Get("rental_date"), q.Get("return_date"), excludeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"has_conflict": hasConflict})
}

type createRentalRequest struct {
	CameraID      int32  `json:"camera_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	RentalDate    string `json:"rental_date"`
	ReturnDate    string `json:"return_date"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental := &domain.Rental{
		CameraID:      req.CameraID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		RentalDate:    req.RentalDate,
		ReturnDate:    req.ReturnDate,
		Status:        domain.RentalStatus(req.Status),
		Notes:         req.Notes,
	}

	if err := h.rentalSvc.CreateRental(r.Context(), rental); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Extend(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req struct {
		NewReturnDate string `json:"new_return_date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.rentalSvc.ExtendRental(r.Context(), id, req.NewReturnDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "rental extended",
		"rental":  rental,
	})
}

func (h *RentalHandler) ModifyDates(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req struct {
		NewRentalDate string `json:"new_rental_date"`
		NewReturnDate string `json:"new_return_date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.rentalSvc.ModifyRentalDates(r.Context(), id, req.NewRentalDate, req.NewReturnDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "rental dates updated",
		"rental":  rental,
	})
}

func (h *RentalHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.rentalSvc.UpdateRentalNotes(r.Context(), id, req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "rental notes updated",
		"rental":  rental,
	})
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	if err := h.rentalSvc.DeleteRental(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "rental deleted"})
}

func queryInt32(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
