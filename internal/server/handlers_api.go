package server

import (
	"net/http"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/model"
)

type machineStatusResponse struct {
	Status      model.MachineStatus `json:"status"`
	Metrics     model.Metrics       `json:"metricas"`
	CurrentTime string              `json:"current_time"`
}

func (h *Handler) machineStatus(w http.ResponseWriter, r *http.Request) {
	h.telemetry.Refresh()
	snap := h.telemetry.Read()

	writeJSON(w, http.StatusOK, machineStatusResponse{
		Status:      snap.Status,
		Metrics:     snap.Metrics,
		CurrentTime: h.now().Format(model.ClockLayout),
	})
}

// alerts returns the seeded list without touching the live readings.
func (h *Handler) alerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.telemetry.Read().Alerts)
}
