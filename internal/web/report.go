package web

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/auth"
)

type EssentialAsset struct {
	Path        string
	Description string
}

var EssentialAssets = []EssentialAsset{
	{Path: "static/css/style.css", Description: "CSS Principal"},
	{Path: "templates/base.html", Description: "Template Base"},
	{Path: "templates/index.html", Description: "Página Inicial"},
	{Path: "templates/login.html", Description: "Página de Login"},
}

// MissingAssets lists the essential assets absent from assets.
func MissingAssets(assets fs.FS) []EssentialAsset {
	var missing []EssentialAsset
	for _, a := range EssentialAssets {
		if _, err := fs.Stat(assets, a.Path); err != nil {
			missing = append(missing, a)
		}
	}
	return missing
}

// WriteStartupReport prints the asset checklist and the login banner. It
// reports whether every essential asset was found.
func WriteStartupReport(w io.Writer, assets fs.FS, url string, accounts []auth.DemoAccount) bool {
	rule := strings.Repeat("=", 60)

	missing := make(map[string]bool)
	for _, a := range MissingAssets(assets) {
		missing[a.Path] = true
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "DUPLOTECH 6040 - PLATAFORMA DE MANUTENÇÃO PREDITIVA")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Verificando arquivos...")

	for _, a := range EssentialAssets {
		if missing[a.Path] {
			fmt.Fprintf(w, "  [FALTA] %s - AUSENTE\n", a.Description)
		} else {
			fmt.Fprintf(w, "  [OK]    %s\n", a.Description)
		}
	}

	ok := len(missing) == 0
	if ok {
		fmt.Fprintln(w, "Todos os arquivos essenciais encontrados!")
	} else {
		fmt.Fprintln(w, "Alguns arquivos estão ausentes. O sistema pode não funcionar corretamente.")
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Servidor iniciando em: %s\n", url)
	fmt.Fprintln(w, "Credenciais de teste:")
	for _, a := range accounts {
		fmt.Fprintf(w, "   %-9s %s / %s\n", a.Label+":", a.Username, a.Password)
	}
	fmt.Fprintln(w, rule)

	return ok
}
