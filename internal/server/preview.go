package server

import (
	"html/template"
	"net/http"

	"github.com/alexisbeaulieu97/brutalist/internal/components"
	"github.com/alexisbeaulieu97/brutalist/internal/utility"
)

var previewTemplate = template.Must(template.New("preview").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Brutalist preview: {{.ThemeName}}</title>
{{.Head}}</head>
<body style="background: var(--brutal-white); color: var(--brutal-black); font-family: ui-sans-serif, system-ui, sans-serif;">
<h1 id="brutal-theme-name">{{.ThemeName}}</h1>
<p>{{.Description}}</p>
<section>
{{range .Buttons}}{{.}}
{{end}}</section>
<section>
{{range .Badges}}{{.}}
{{end}}</section>
<script>
(function () {
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
  ws.onmessage = function (event) {
    var change = JSON.parse(event.data);
    if (change.type === "root-property") {
      document.documentElement.style.setProperty(change.name, change.value || "");
      return;
    }
    if (change.type && change.type.indexOf("theme.") === 0) {
      if (change.type !== "theme.rejected" && change.payload && change.payload.theme_name) {
        document.getElementById("brutal-theme-name").textContent = change.payload.theme_name;
        document.title = "Brutalist preview: " + change.payload.theme_name;
      }
      return;
    }
    var el = document.querySelector('style[data-brutal-utilities="' + change.id + '"]');
    if (change.type === "style-remove") {
      if (el) el.remove();
      return;
    }
    if (!el) {
      el = document.createElement("style");
      el.setAttribute("data-brutal-utilities", change.id);
      document.head.appendChild(el);
    }
    el.textContent = change.css || "";
  };
})();
</script>
</body>
</html>
`))

type previewData struct {
	ThemeName   string
	Description string
	Head        template.HTML
	Buttons     []template.HTML
	Badges      []template.HTML
}

// handleIndex renders a gallery of every variant. Component instances stay
// open for the life of the server so their style elements remain in the
// document for reconnecting clients.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.ensureGallery()

	current := s.provider.Current()
	data := previewData{
		ThemeName:   current.Name,
		Description: current.Description,
	}
	for _, v := range components.Variants() {
		btn := components.NewButton(v.String(), components.ButtonOptions{Variant: v, Size: components.SizeMedium})
		data.Buttons = append(data.Buttons, template.HTML(btn.Render(s.gallery[v]).HTML))
		badge := components.NewBadge(v.String(), components.BadgeOptions{Variant: v, Size: components.SizeSmall})
		data.Badges = append(data.Badges, template.HTML(badge.Render(nil).HTML))
	}
	data.Head = template.HTML(s.doc.RenderHead())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := previewTemplate.Execute(w, data); err != nil {
		s.log.Error(err, "render preview page")
	}
}

func (s *Server) ensureGallery() {
	s.galleryOnce.Do(func() {
		s.gallery = make(map[components.Variant]*utility.Instance)
		for _, v := range components.Variants() {
			s.gallery[v] = utility.NewInstance(s.doc, utility.WithLogger(s.log))
		}
	})
}

func (s *Server) closeGallery() {
	s.galleryOnce.Do(func() {})
	for _, inst := range s.gallery {
		inst.Close()
	}
}
