package web

import (
	"strconv"
	"time"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/model"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/session"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/telemetry"
)

const (
	anonymousName = "Visitante"
	anonymousRole = "visitante"
)

// CurrentUser is the per-request view of who is browsing.
type CurrentUser struct {
	IsAuthenticated bool
	Username        string
	Role            string
}

func NewCurrentUser(sess *session.Session) CurrentUser {
	if sess == nil || !sess.Authenticated {
		return CurrentUser{Username: anonymousName, Role: anonymousRole}
	}
	return CurrentUser{
		IsAuthenticated: true,
		Username:        sess.Username,
		Role:            string(sess.Role),
	}
}

// PageData is the root object handed to every template.
type PageData struct {
	CurrentUser CurrentUser
	CurrentYear int
	CurrentTime string
	Flashes     []session.Flash
	Page        any
}

func NewPageData(user CurrentUser, flashes []session.Flash, now time.Time, page any) PageData {
	return PageData{
		CurrentUser: user,
		CurrentYear: now.Year(),
		CurrentTime: now.Format(model.ClockLayout),
		Flashes:     flashes,
		Page:        page,
	}
}

type HomeView struct {
	CurrentTime      string
	NextMaintenance  string
	PowerConsumption string
	Temperature      string
	Vibration        string
	Uptime           string
}

func NewHomeView(snap telemetry.Snapshot, now time.Time) HomeView {
	return HomeView{
		CurrentTime:      now.Format(model.ClockLayout),
		NextMaintenance:  snap.Status.NextMaintenance,
		PowerConsumption: decimal(snap.Status.PowerConsumption) + " kWh",
		Temperature:      decimal(snap.Status.Temperature) + "°C",
		Vibration:        decimal(snap.Status.Vibration) + " mm/s",
		Uptime:           decimal(snap.Metrics.Uptime) + "%",
	}
}

type StatusView struct {
	Temperature      string
	Vibration        string
	PowerConsumption string
	AirPressure      string
	WorkHours        string
	NextMaintenance  string
	LastMaintenance  string
}

type MetricsView struct {
	Uptime       string
	Efficiency   string
	CutQuality   string
	AverageSpeed string
}

type DashboardView struct {
	Status  StatusView
	Metrics MetricsView
	Alerts  []model.Alert
}

func NewDashboardView(snap telemetry.Snapshot) DashboardView {
	st := snap.Status
	m := snap.Metrics

	return DashboardView{
		Status: StatusView{
			Temperature:      decimal(st.Temperature) + "°C",
			Vibration:        decimal(st.Vibration) + " mm/s",
			PowerConsumption: decimal(st.PowerConsumption) + " kWh",
			AirPressure:      decimal(st.AirPressure) + " bar",
			WorkHours:        strconv.Itoa(st.WorkHours) + "h",
			NextMaintenance:  st.NextMaintenance,
			LastMaintenance:  st.LastMaintenance,
		},
		Metrics: MetricsView{
			Uptime:       decimal(m.Uptime),
			Efficiency:   decimal(m.Efficiency),
			CutQuality:   decimal(m.CutQuality),
			AverageSpeed: decimal(m.AverageSpeed),
		},
		Alerts: snap.Alerts,
	}
}

// decimal renders a reading with one fractional digit, "43.0" included.
func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
