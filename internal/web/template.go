package web

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/sweeney/rescue-rover/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"lower": strings.ToLower,
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"meters": func(v float64) string {
		if v >= 999.0 {
			return "—"
		}
		return fmt.Sprintf("%.2f m", v)
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Rescue Rover</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.searching { color: green; font-weight: bold; }
.avoiding_obstacle { color: orange; font-weight: bold; }
.deploying_aid { color: blue; font-weight: bold; }
.tilted { color: red; font-weight: bold; }
.connected { color: green; }
.disconnected { color: red; }
.live-dot { display: inline-block; width: 8px; height: 8px; border-radius: 50%; margin-left: 6px; vertical-align: middle; }
.live-dot.ok { background: green; }
.live-dot.err { background: red; }
.live-dot.pending { background: orange; }
</style>
</head>
<body>
<h1>Rescue Rover<span id="live-dot" class="live-dot pending" title="connecting"></span></h1>

<h2>Behavior</h2>
<table>
<tr><th>State</th><td id="state" class="{{.State | printf "%s" | lower}}">{{.State}}</td></tr>
<tr><th>Aid timer</th><td id="aid-ticks">{{.Timer}} ticks</td></tr>
<tr><th>Survivor in range</th><td id="survivor">{{if .SurvivorDetected}}yes{{else}}no{{end}}</td></tr>
<tr><th>Tilted</th><td id="tilted">{{if .Tilted}}yes{{else}}no{{end}}</td></tr>
<tr><th>Survivors signaled</th><td id="signaled">{{.SurvivorsSignaled}}</td></tr>
</table>

<h2>Sensors</h2>
<table>
<tr><th>Front</th><td id="ds-front">{{meters .Front}}</td></tr>
<tr><th>Left</th><td id="ds-left">{{meters .Left}}</td></tr>
<tr><th>Right</th><td id="ds-right">{{meters .Right}}</td></tr>
</table>

<h2>Motors</h2>
<table>
<tr><th>Left wheel</th><td id="speed-left">{{printf "%.1f" .LeftSpeed}}</td></tr>
<tr><th>Right wheel</th><td id="speed-right">{{printf "%.1f" .RightSpeed}}</td></tr>
</table>

<h2>Connectivity</h2>
<table>
<tr><th>Radio</th><td class="{{if .RadioConnected}}connected{{else}}disconnected{{end}}">{{if .RadioConnected}}connected{{else}}disconnected{{end}}</td></tr>
<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>
<tr><th>Channel</th><td>{{.Config.Channel}}</td></tr>
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Ticks</th><td>{{.Tick}}</td></tr>
<tr><th>Simulator</th><td>{{.Config.SimAddr}}</td></tr>
<tr><th>Time step</th><td>{{.Config.TimeStepMs}}ms</td></tr>
<tr><th>Survivor label</th><td>{{.Config.SurvivorLabel}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
<script>
(function() {
  var dot = document.getElementById("live-dot");

  function setDot(cls, title) {
    dot.className = "live-dot " + cls;
    dot.title = title;
  }

  function text(id, value) {
    document.getElementById(id).textContent = value;
  }

  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/live");

    ws.onopen = function() { setDot("ok", "live"); };
    ws.onclose = function() {
      setDot("err", "disconnected");
      setTimeout(connect, 5000);
    };
    ws.onmessage = function(ev) {
      try {
        var s = JSON.parse(ev.data).status;
        var el = document.getElementById("state");
        el.textContent = s.state;
        el.className = s.state.toLowerCase();
        text("aid-ticks", s.aid_ticks + " ticks");
        text("survivor", s.survivor_detected ? "yes" : "no");
        text("tilted", s.tilted ? "yes" : "no");
        text("signaled", s.survivors_signaled);
        text("ds-front", s.sensors.front.toFixed(2) + " m");
        text("ds-left", s.sensors.left.toFixed(2) + " m");
        text("ds-right", s.sensors.right.toFixed(2) + " m");
        text("speed-left", s.speeds.left.toFixed(1));
        text("speed-right", s.speeds.right.toFixed(1));
      } catch (e) {}
    };
  }

  connect();
})();
</script>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	// Snapshot has Uptime() method but the template needs a Duration field.
	data := struct {
		status.Snapshot
		Uptime time.Duration
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
	}
	indexTmpl.Execute(w, data)
}
