package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
)

// HTML renders an interactive page: the SVG inside .heatmap-container, a
// shared #tooltip element and a script that applies domain.Hover and
// domain.Unhover semantics in the browser.
type HTML struct{}

// ContentType implements Renderer.
func (HTML) ContentType() string { return "text/html; charset=utf-8" }

// Render implements Renderer.
func (HTML) Render(w io.Writer, chart domain.Chart) error {
	var svg bytes.Buffer
	if err := (SVG{}).Render(&svg, chart); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}

	data := pageData{
		Title:          domain.ChartTitle,
		SVG:            template.HTML(svg.String()), //nolint:gosec // produced by SVG renderer with escaped text
		VisibleOpacity: domain.TooltipVisibleOpacity,
		HiddenOpacity:  domain.TooltipHiddenOpacity,
		OffsetX:        domain.TooltipOffsetX,
		OffsetY:        domain.TooltipOffsetY,
	}
	return pageTemplate.Execute(w, data)
}

type pageData struct {
	Title          string
	SVG            template.HTML
	VisibleOpacity float64
	HiddenOpacity  float64
	OffsetX        int
	OffsetY        int
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; }
.heatmap-container { position: relative; display: flex; justify-content: center; }
.tooltip { position: absolute; pointer-events: none; display: flex; flex-direction: column; align-items: center;
  padding: 6px 10px; border-radius: 4px; background: #222; color: #fff; font-size: 14px; transition: opacity 0.1s; }
</style>
</head>
<body>
<div class="heatmap-container">
{{.SVG}}
<div class="tooltip" id="tooltip" style="opacity: {{.HiddenOpacity}}"></div>
</div>
<script>
(function () {
  var tooltip = document.getElementById("tooltip");
  var cells = document.querySelectorAll(".cell");
  function hover(event) {
    var cell = event.target;
    tooltip.replaceChildren();
    ["data-date", "data-temp-label", "data-variance-label"].forEach(function (attr) {
      var span = document.createElement("span");
      span.textContent = cell.getAttribute(attr);
      tooltip.appendChild(span);
    });
    tooltip.style.opacity = {{.VisibleOpacity}};
    tooltip.style.left = (event.pageX + {{.OffsetX}}) + "px";
    tooltip.style.top = (event.pageY + {{.OffsetY}}) + "px";
    tooltip.setAttribute("data-year", cell.getAttribute("data-year"));
    cell.style.stroke = "#000";
  }
  function unhover(event) {
    tooltip.style.opacity = {{.HiddenOpacity}};
    event.target.style.stroke = "";
  }
  for (var i = 0; i < cells.length; i++) {
    cells[i].addEventListener("mouseover", hover);
    cells[i].addEventListener("mouseout", unhover);
  }
})();
</script>
</body>
</html>
`))
