package model

// MachineStatus is the live sensor block of the cutting machine.
type MachineStatus struct {
	Operational      bool    `json:"operacional"`
	Temperature      float64 `json:"temperatura"`
	Vibration        float64 `json:"vibracao"`
	PowerConsumption float64 `json:"consumo_energia"`
	AirPressure      float64 `json:"pressao_ar"`
	WorkHours        int     `json:"horas_trabalho"`
	NextMaintenance  string  `json:"proxima_manutencao"`
	LastMaintenance  string  `json:"ultima_manutencao"`
}

// Metrics are percentage figures fixed at startup.
type Metrics struct {
	Uptime       float64 `json:"uptime"`
	Efficiency   float64 `json:"eficiencia"`
	CutQuality   float64 `json:"qualidade_corte"`
	AverageSpeed float64 `json:"velocidade_media"`
}
