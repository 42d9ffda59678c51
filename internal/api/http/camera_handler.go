package http

import (
	"net/http"
	"strconv"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

type CameraHandler struct {
	cameraSvc service.CameraService
}

func NewCameraHandler(cameraSvc service.CameraService) *CameraHandler {
	return &CameraHandler{cameraSvc: cameraSvc}
}

func (h *CameraHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := service.CameraListOptions{
		Status:     domain.CameraStatus(q.Get("status")),
		Agent:      q.Get("agent"),
		RentalDate: q.Get("rental_date"),
		ReturnDate: q.Get("return_date"),
	}

	cameras, err := h.cameraSvc.ListCameras(r.Context(), viewerFrom(r.Context()), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if cameras == nil {
		cameras = []domain.Camera{}
	}
	writeJSON(w, http.StatusOK, cameras)
}

func (h *CameraHandler) Search(w http.ResponseWriter, r *http.Request) {
	cameras, err := h.cameraSvc.SearchCameras(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if cameras == nil {
		cameras = []domain.Camera{}
	}
	writeJSON(w, http.StatusOK, cameras)
}

func (h *CameraHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid camera id")
		return
	}

	camera, err := h.cameraSvc.GetCamera(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, camera)
}

type cameraRequest struct {
	CameraCode   string `json:"camera_code"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Agent        string `json:"agent"`
	Status       string `json:"status"`
	Description  string `json:"description"`
}

func (h *CameraHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req cameraRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	camera := &domain.Camera{
		CameraCode:   req.CameraCode,
		Brand:        req.Brand,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Agent:        req.Agent,
		Status:       domain.CameraStatus(req.Status),
		Description:  req.Description,
	}
	if camera.Status == "" {
		camera.Status = domain.CameraStatusAvailable
	}

	if err := h.cameraSvc.AddCamera(r.Context(), camera); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, camera)
}

func (h *CameraHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid camera id")
		return
	}

	var req cameraRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	camera := &domain.Camera{
		ID:           id,
		CameraCode:   req.CameraCode,
		Brand:        req.Brand,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Agent:        req.Agent,
		Status:       domain.CameraStatus(req.Status),
		Description:  req.Description,
	}

	if err := h.cameraSvc.UpdateCamera(r.Context(), camera); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, camera)
}

func (h *CameraHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid camera id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	camera, err := h.cameraSvc.UpdateCameraStatus(r.Context(), id, domain.CameraStatus(req.Status))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, camera)
}

func (h *CameraHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid camera id")
		return
	}

	if err := h.cameraSvc.DeleteCamera(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "camera deleted"})
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
