package httpapi

import (
	"encoding/xml"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/domain/validation"
	"github.com/hH-13/tilde/internal/infrastructure/colors"
	"github.com/hH-13/tilde/internal/logging"
)

var startPage = template.Must(template.New("start").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>~</title>
<link rel="search" type="application/opensearchdescription+xml" title="tilde" href="/opensearch.xml">
<style>
body { background: #111; color: #eee; font-family: monospace; margin: 10vh auto; max-width: 48rem; }
input { width: 100%; font: inherit; font-size: 2rem; background: none; border: 0; color: inherit; outline: none; }
ul { list-style: none; padding: 0; display: grid; grid-template-columns: repeat(auto-fill, minmax(11rem, 1fr)); gap: .5rem; }
a { display: block; padding: .5rem; text-decoration: none; color: inherit; border-radius: .25rem; }
.key { font-weight: bold; margin-right: .5rem; }
</style>
</head>
<body>
<form action="/" method="get"><input name="q" autofocus autocomplete="off" placeholder="{{.HelpKey}} for help"></form>
<ul>
{{- range .Commands}}
<li><a href="{{.URL}}" style="{{.Style}}"><span class="key">{{.Key}}</span>{{.Name}}</a></li>
{{- end}}
</ul>
</body>
</html>
`))

var fanOutPage = template.Must(template.New("fanout").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>~ {{.Raw}}</title>
</head>
<body>
<ul>
{{- range .URLs}}
<li><a href="{{.}}" target="_blank" rel="noopener">{{.}}</a></li>
{{- end}}
</ul>
<script>
for (const u of {{.URLs}}) { window.open(u, "_blank", "noopener"); }
</script>
</body>
</html>
`))

type commandView struct {
	Key   string
	Name  string
	URL   string
	Style template.CSS
}

// commandStyle renders the badge colours of c. Only validated hex colours
// reach the stylesheet.
func commandStyle(c entity.Command) template.CSS {
	if !validation.IsHexColor(c.Color) {
		return ""
	}

	background := c.Color
	var gradient []string
	for _, g := range c.Gradient {
		if validation.IsHexColor(g) {
			gradient = append(gradient, g)
		}
	}
	if len(gradient) > 1 {
		background = "linear-gradient(90deg, " + strings.Join(gradient, ", ") + ")"
	}

	//nolint:gosec // built from validated hex colours only
	return template.CSS("background: " + background + "; color: " + colors.TextOn(c.Color) + ";")
}

func (s *Server) renderStartPage(w http.ResponseWriter, r *http.Request) {
	omnibox := s.omnibox.Load()
	commands := omnibox.Commands()
	views := make([]commandView, 0, len(commands))
	for _, c := range commands {
		views = append(views, commandView{Key: c.Key, Name: c.Name, URL: c.URL, Style: commandStyle(c)})
	}

	data := struct {
		HelpKey  string
		Commands []commandView
	}{HelpKey: omnibox.Options().HelpKey, Commands: views}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := startPage.Execute(w, data); err != nil {
		logging.FromContext(r.Context()).Warn().Err(err).Msg("failed to render start page")
	}
}

// renderFanOut answers a script query with a page opening every destination.
func (s *Server) renderFanOut(w http.ResponseWriter, q *entity.ParsedQuery) {
	data := struct {
		Raw  string
		URLs []string
	}{Raw: q.Raw, URLs: q.Redirects()}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := fanOutPage.Execute(w, data); err != nil {
		s.logger.Warn().Err(err).Msg("failed to render fan-out page")
	}
}

type openSearchURL struct {
	Type     string `xml:"type,attr"`
	Method   string `xml:"method,attr"`
	Template string `xml:"template,attr"`
}

type openSearchDescription struct {
	XMLName       xml.Name        `xml:"OpenSearchDescription"`
	Namespace     string          `xml:"xmlns,attr"`
	ShortName     string          `xml:"ShortName"`
	Description   string          `xml:"Description"`
	InputEncoding string          `xml:"InputEncoding"`
	URLs          []openSearchURL `xml:"Url"`
}

// handleOpenSearch describes the server to browsers so it can be added as a
// search engine. Templates point back at the host the browser used.
func (s *Server) handleOpenSearch(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	base := (&url.URL{Scheme: scheme, Host: r.Host}).String()

	doc := openSearchDescription{
		Namespace:     "http://a9.com/-/spec/opensearch/1.1/",
		ShortName:     "tilde",
		Description:   "Route queries through tilde commands",
		InputEncoding: "UTF-8",
		URLs: []openSearchURL{
			{Type: "text/html", Method: "get", Template: base + "/?q={searchTerms}"},
			{Type: "application/x-suggestions+json", Method: "get", Template: base + "/suggest?format=opensearch&q={searchTerms}"},
		},
	}

	w.Header().Set("Content-Type", "application/opensearchdescription+xml")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		logging.FromContext(r.Context()).Warn().Err(err).Msg("failed to write opensearch description")
	}
}
