package telemetry

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/model"
)

// Baselines around which Refresh draws new readings.
const (
	baseTemperature = 42.0
	baseVibration   = 2.0
	basePower       = 245.0
	basePressure    = 6.0

	spreadTemperature = 1.0
	spreadVibration   = 0.2
	spreadPower       = 5.0
	spreadPressure    = 0.1
)

type Snapshot struct {
	Status  model.MachineStatus
	Metrics model.Metrics
	Alerts  []model.Alert
}

// Simulator holds the in-memory state of one simulated machine. It replaces
// real sensor polling: every Refresh perturbs the four live readings.
type Simulator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	status  model.MachineStatus
	metrics model.Metrics
	alerts  []model.Alert
}

// NewSimulator seeds the machine state relative to now. A nil rng is
// replaced by one seeded from the wall clock.
func NewSimulator(now time.Time, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Simulator{
		rng: rng,
		status: model.MachineStatus{
			Operational:      true,
			Temperature:      42.3,
			Vibration:        2.1,
			PowerConsumption: 245.8,
			AirPressure:      6.2,
			WorkHours:        1247,
			NextMaintenance:  now.AddDate(0, 0, 15).Format(model.DateLayout),
			LastMaintenance:  now.AddDate(0, 0, -45).Format(model.DateLayout),
		},
		metrics: model.Metrics{
			Uptime:       98.7,
			Efficiency:   92.3,
			CutQuality:   95.8,
			AverageSpeed: 85.2,
		},
		alerts: []model.Alert{
			{
				Severity:  model.SeverityInfo,
				Message:   "Manutenção preventiva agendada para 15 dias",
				Timestamp: now.Format(model.DateTimeLayout),
			},
			{
				Severity:  model.SeverityWarning,
				Message:   "Vibração acima do normal detectada",
				Timestamp: now.Add(-2 * time.Hour).Format(model.DateTimeLayout),
			},
			{
				Severity:  model.SeveritySuccess,
				Message:   "Calibração realizada com sucesso",
				Timestamp: now.AddDate(0, 0, -1).Format(model.DateTimeLayout),
			},
		},
	}
}

// Refresh overwrites temperature, vibration, power and pressure with fresh
// draws rounded to one decimal place.
func (s *Simulator) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.Temperature = round1(baseTemperature + s.uniform(spreadTemperature))
	s.status.Vibration = round1(baseVibration + s.uniform(spreadVibration))
	s.status.PowerConsumption = round1(basePower + s.uniform(spreadPower))
	s.status.AirPressure = round1(basePressure + s.uniform(spreadPressure))
}

// Read returns the current state. The alert slice is a copy.
func (s *Simulator) Read() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts := make([]model.Alert, len(s.alerts))
	copy(alerts, s.alerts)

	return Snapshot{
		Status:  s.status,
		Metrics: s.metrics,
		Alerts:  alerts,
	}
}

// Peek returns the status without perturbing it.
func (s *Simulator) Peek() model.MachineStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// uniform draws from [-spread, spread). Callers hold s.mu.
func (s *Simulator) uniform(spread float64) float64 {
	return spread * (2*s.rng.Float64() - 1)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
