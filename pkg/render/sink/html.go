package sink

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/matzehuels/dialoguewheel/pkg/render/geometry"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// HTMLOption configures [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title      string
	hostID     string
	selected   int
	options    []wheel.Option
	selectURL  string
	eventsURL  string
	background string
}

func WithHTMLTitle(title string) HTMLOption    { return func(r *htmlRenderer) { r.title = title } }
func WithHTMLHostID(id string) HTMLOption      { return func(r *htmlRenderer) { r.hostID = id } }
func WithHTMLSelected(index int) HTMLOption    { return func(r *htmlRenderer) { r.selected = index } }
func WithHTMLBackground(c string) HTMLOption   { return func(r *htmlRenderer) { r.background = c } }
func WithSelectEndpoint(url string) HTMLOption { return func(r *htmlRenderer) { r.selectURL = url } }
func WithEventsEndpoint(url string) HTMLOption { return func(r *htmlRenderer) { r.eventsURL = url } }

// WithHTMLOptions embeds the option list so selection events carry the
// option data alongside the index.
func WithHTMLOptions(opts []wheel.Option) HTMLOption {
	return func(r *htmlRenderer) { r.options = wheel.CloneOptions(opts) }
}

// RenderHTML encodes the scene as a self-contained page. The wheel is an
// inline SVG inside a tilted container and labels are positioned HTML
// elements, so the perspective and label depth match what browsers show for
// the live widget.
//
// With [WithSelectEndpoint] clicks are posted to url + index instead of
// being applied locally; with [WithEventsEndpoint] the page follows a
// server-sent event stream and reloads when the wheel is re-rendered.
func RenderHTML(s geometry.Scene, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{title: "Dialogue Wheel", hostID: "dialogue-wheel", selected: -1, background: "#1e1e24"}
	for _, opt := range opts {
		opt(&r)
	}

	if r.options == nil {
		r.options = optionsFromScene(s)
	}
	cfg, err := json.Marshal(pageConfig{
		Options:   r.options,
		Selected:  r.selected,
		SelectURL: r.selectURL,
		EventsURL: r.eventsURL,
	})
	if err != nil {
		return nil, fmt.Errorf("encode page config: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n  <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	buf.WriteString("  <style>")
	r.writeCSS(&buf, s)
	buf.WriteString("\n  </style>\n</head>\n<body>\n")

	fmt.Fprintf(&buf, "<div class=\"dialogue-wheel\" id=\"%s\">\n", escapeXML(r.hostID))
	buf.WriteString("  <div class=\"wheel-container\">\n")
	fmt.Fprintf(&buf, "    <svg viewBox=\"0 0 %s %s\">\n", num(s.DrawSize), num(s.DrawSize))
	if s.Filter != nil {
		buf.WriteString("    <defs>\n")
		writeFilter(&buf, s.Filter)
		buf.WriteString("    </defs>\n")
	}

	svg := svgRenderer{selected: r.selected}
	for _, l := range s.Layers {
		svg.renderLayer(&buf, s, l)
	}
	for _, l := range s.Lines {
		svg.renderLine(&buf, s, l)
	}
	buf.WriteString("    </svg>\n")

	for _, l := range s.Labels {
		pos := fmt.Sprintf("left: %spx", num(l.Left))
		if !l.Side.ExtendsRight() {
			pos = fmt.Sprintf("right: %spx", num(l.Right))
		}
		fmt.Fprintf(&buf, "    <div class=\"%s\" style=\"color: %s; top: %spx; %s;\">%s</div>\n",
			labelClass(l), escapeXML(l.Color), num(l.Top), pos, escapeXML(l.Text))
	}
	buf.WriteString("  </div>\n</div>\n")

	fmt.Fprintf(&buf, "<script>\n  const wheelConfig = %s;\n%s\n</script>\n", cfg, pageJS)
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

// optionsFromScene recovers the option records from the top layers and
// labels of s.
func optionsFromScene(s geometry.Scene) []wheel.Option {
	opts := make([]wheel.Option, len(s.Labels))
	for i, l := range s.Labels {
		opts[i] = wheel.Option{Text: l.Text, Color: l.Color}
		if top, ok := s.TopLayer(i); ok {
			opts[i].Color = top.Fill
			opts[i].Disabled = top.Disabled
		}
	}
	return opts
}

type pageConfig struct {
	Options   []wheel.Option `json:"options"`
	Selected  int            `json:"selected"`
	SelectURL string         `json:"selectURL,omitempty"`
	EventsURL string         `json:"eventsURL,omitempty"`
}

func (r htmlRenderer) writeCSS(buf *bytes.Buffer, s geometry.Scene) {
	fmt.Fprintf(buf, `
    body { margin: 0; min-height: 100vh; display: flex; align-items: center; justify-content: center; background: %s; }
    .dialogue-wheel {
      display: inline-block; position: relative;
      width: %spx; height: %spx;
      font-family: 'Arial', sans-serif;
      perspective: 1000px;
      --disabled-opacity: %s;
      --disabled-saturation: %s;
    }
    .wheel-container {
      position: absolute; left: 50%%; top: 50%%;
      transform: translate(-50%%, -50%%) rotateX(%sdeg);
      transform-style: preserve-3d;
      width: %spx; height: %spx;
    }
    svg { position: absolute; top: 0; left: 0; width: %spx; height: %spx; overflow: visible; }`,
		escapeXML(r.background),
		num(s.Width), num(s.Height),
		num(s.DisabledOpacity), num(s.DisabledSaturation),
		num(s.PerspectiveAngleX),
		num(s.DrawSize), num(s.DrawSize),
		num(s.DrawSize), num(s.DrawSize))
	buf.WriteString(wheelCSS)
	fmt.Fprintf(buf, `
    .segment-label { position: absolute; color: white; font-size: %spx; text-shadow: 1px 1px 2px rgba(0, 0, 0, 0.8); transform: translateY(-50%%) translateZ(%spx); }
    .left-label { text-align: right; }
    .right-label { text-align: left; }`, num(s.FontSize), num(s.LabelZ))
}

const pageJS = `
  (function() {
    const host = document.querySelector('.dialogue-wheel');
    const segments = () => host.querySelectorAll('.segment');

    function mark(index) {
      segments().forEach(s => s.classList.toggle('selected', Number(s.dataset.index) === index));
    }

    function select(index) {
      const option = wheelConfig.options[index];
      if (!option || option.disabled) return;
      mark(index);
      host.dispatchEvent(new CustomEvent('option-selected', {
        detail: { index: index, option: Object.assign({}, option) },
        bubbles: true,
        composed: true
      }));
    }

    host.querySelectorAll('.segment[data-clickable]').forEach(seg => {
      const index = Number(seg.dataset.index);
      seg.addEventListener('click', () => {
        if (wheelConfig.selectURL) {
          fetch(wheelConfig.selectURL + index, { method: 'POST' });
        } else {
          select(index);
        }
      });
    });

    if (wheelConfig.eventsURL) {
      const events = new EventSource(wheelConfig.eventsURL);
      events.addEventListener('selection', e => select(JSON.parse(e.data).index));
      events.addEventListener('render', () => window.location.reload());
    }

    mark(wheelConfig.selected);
  })();`
