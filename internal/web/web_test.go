package web

import (
	"bytes"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/auth"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/model"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/session"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/telemetry"
)

var testNow = time.Date(2024, time.March, 10, 14, 30, 5, 0, time.UTC)

func testSnapshot() telemetry.Snapshot {
	return telemetry.NewSimulator(testNow, rand.New(rand.NewSource(1))).Read()
}

func TestNewCurrentUser(t *testing.T) {
	assert.Equal(t, CurrentUser{Username: "Visitante", Role: "visitante"}, NewCurrentUser(nil))
	assert.Equal(t, CurrentUser{Username: "Visitante", Role: "visitante"}, NewCurrentUser(&session.Session{}))

	sess := &session.Session{}
	sess.Login("sid", "tecnico", auth.RoleTechnician, testNow)
	assert.Equal(t, CurrentUser{IsAuthenticated: true, Username: "tecnico", Role: "tecnico"}, NewCurrentUser(sess))
}

func TestNewPageData(t *testing.T) {
	data := NewPageData(CurrentUser{}, nil, testNow, nil)
	assert.Equal(t, 2024, data.CurrentYear)
	assert.Equal(t, "14:30:05", data.CurrentTime)
}

func TestNewHomeView(t *testing.T) {
	v := NewHomeView(testSnapshot(), testNow)

	assert.Equal(t, HomeView{
		CurrentTime:      "14:30:05",
		NextMaintenance:  "25/03/2024",
		PowerConsumption: "245.8 kWh",
		Temperature:      "42.3°C",
		Vibration:        "2.1 mm/s",
		Uptime:           "98.7%",
	}, v)
}

func TestNewDashboardView(t *testing.T) {
	snap := testSnapshot()
	snap.Status.Temperature = 43.0

	v := NewDashboardView(snap)

	assert.Equal(t, StatusView{
		Temperature:      "43.0°C",
		Vibration:        "2.1 mm/s",
		PowerConsumption: "245.8 kWh",
		AirPressure:      "6.2 bar",
		WorkHours:        "1247h",
		NextMaintenance:  "25/03/2024",
		LastMaintenance:  "25/01/2024",
	}, v.Status)
	assert.Equal(t, MetricsView{
		Uptime:       "98.7",
		Efficiency:   "92.3",
		CutQuality:   "95.8",
		AverageSpeed: "85.2",
	}, v.Metrics)
	assert.Len(t, v.Alerts, 3)
}

func TestRendererRendersEveryPage(t *testing.T) {
	r, err := NewRenderer(Assets(""), false)
	require.NoError(t, err)

	snap := testSnapshot()
	payloads := map[string]any{
		PageIndex:     NewHomeView(snap, testNow),
		PageDashboard: NewDashboardView(snap),
	}

	user := CurrentUser{IsAuthenticated: true, Username: "admin", Role: "administrador"}
	for _, page := range allPages {
		t.Run(page, func(t *testing.T) {
			var buf bytes.Buffer
			data := NewPageData(user, nil, testNow, payloads[page])
			require.NoError(t, r.Render(&buf, page, data))

			out := buf.String()
			assert.Contains(t, out, "<!DOCTYPE html>")
			assert.Contains(t, out, "admin")
			assert.Contains(t, out, "2024")
		})
	}
}

func TestRendererDashboardContent(t *testing.T) {
	r, err := NewRenderer(Assets(""), false)
	require.NoError(t, err)

	flashes := []session.Flash{{Category: model.SeveritySuccess, Message: "Login realizado com sucesso! Bem-vindo, admin."}}
	data := NewPageData(CurrentUser{IsAuthenticated: true, Username: "admin"}, flashes, testNow, NewDashboardView(testSnapshot()))

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageDashboard, data))

	out := buf.String()
	assert.Contains(t, out, "42.3°C")
	assert.Contains(t, out, "1247h")
	assert.Contains(t, out, "Vibração acima do normal detectada")
	assert.Contains(t, out, `flash-message success`)
	assert.Contains(t, out, "Bem-vindo, admin.")
}

func TestRendererAnonymousLayout(t *testing.T) {
	r, err := NewRenderer(Assets(""), false)
	require.NoError(t, err)

	var buf bytes.Buffer
	data := NewPageData(NewCurrentUser(nil), nil, testNow, nil)
	require.NoError(t, r.Render(&buf, PageLogin, data))

	out := buf.String()
	assert.Contains(t, out, "Visitante")
	assert.NotContains(t, out, `href="/dashboard"`)
	assert.Contains(t, out, `name="password"`)
}

func TestRendererUnknownPage(t *testing.T) {
	r, err := NewRenderer(Assets(""), false)
	require.NoError(t, err)

	assert.Error(t, r.Render(&bytes.Buffer{}, "missing.html", nil))
}

func TestRendererReloadReadsCurrentFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/base.html":  {Data: []byte(`{{block "content" .}}{{end}}`)},
		"templates/index.html": {Data: []byte(`{{define "content"}}v1{{end}}`)},
	}

	r := &Renderer{assets: fsys, reload: true}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageIndex, nil))
	assert.Equal(t, "v1", buf.String())

	fsys["templates/index.html"] = &fstest.MapFile{Data: []byte(`{{define "content"}}v2{{end}}`)}

	buf.Reset()
	require.NoError(t, r.Render(&buf, PageIndex, nil))
	assert.Equal(t, "v2", buf.String())
}

func TestNewRendererFailsOnMissingTemplates(t *testing.T) {
	_, err := NewRenderer(fstest.MapFS{}, false)
	assert.Error(t, err)
}

func TestStaticHandler(t *testing.T) {
	h, err := StaticHandler(Assets(""))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/style.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".status-grid")
}

func TestMissingAssets(t *testing.T) {
	assert.Empty(t, MissingAssets(Assets("")))

	fsys := fstest.MapFS{
		"templates/base.html":  {Data: []byte("x")},
		"templates/index.html": {Data: []byte("x")},
	}
	missing := MissingAssets(fsys)
	require.Len(t, missing, 2)
	assert.Equal(t, "static/css/style.css", missing[0].Path)
	assert.Equal(t, "templates/login.html", missing[1].Path)
}

func TestWriteStartupReport(t *testing.T) {
	var buf bytes.Buffer
	ok := WriteStartupReport(&buf, Assets(""), "http://localhost:5000", auth.DemoAccounts())
	assert.True(t, ok)

	out := buf.String()
	assert.Contains(t, out, "Todos os arquivos essenciais encontrados!")
	assert.Contains(t, out, "http://localhost:5000")
	assert.Contains(t, out, "admin / admin123")
	assert.Contains(t, out, "operador / op123")
	assert.Contains(t, out, "tecnico / tec123")

	buf.Reset()
	ok = WriteStartupReport(&buf, fstest.MapFS{}, "http://localhost:5000", nil)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "Página de Login - AUSENTE")
}
