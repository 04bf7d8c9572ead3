package web

const pageHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>sleeptimer - bedtime</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; padding: 24px; max-width: 860px; box-sizing: border-box; }
    * { box-sizing: border-box; }
    .err { color: #b00020; margin: 12px 0; padding: 10px; background: #ffebee; border-radius: 6px; }
    .card { border: 1px solid #e0e0e0; border-radius: 10px; padding: 16px; margin: 16px 0; background: #fafafa; }
    .mono { font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, monospace; }
    .row { display: flex; gap: 24px; flex-wrap: wrap; align-items: flex-start; }
    table { border-collapse: collapse; }
    td { padding: 6px 10px; border-top: 1px solid #eee; }
    .k { color: #444; width: 220px; }
    .field { margin-bottom: 14px; }
    .field label { display: block; font-weight: 500; margin-bottom: 4px; }
    .field input, .field select { padding: 8px 10px; font-size: 1em; border: 1px solid #ccc; border-radius: 6px; max-width: 160px; }
    .legend span { display: inline-block; margin-right: 14px; }
    .dot { display: inline-block; width: 10px; height: 10px; border-radius: 50%; margin-right: 4px; }
    button[type="submit"] { padding: 10px 20px; font-size: 1em; background: #1976d2; color: #fff; border: none; border-radius: 6px; cursor: pointer; }
    footer { margin-top: 40px; color: #666; font-size: 0.9em; text-align: center; }
  </style>
</head>
<body>
  <form method="POST" action="/calc">
    <div class="row">
      <div class="field">
        <label for="wake">Wake up at</label>
        <input id="wake" name="wake" type="text" value="{{.Wake}}" placeholder="06:30" pattern="[0-9]{1,2}:[0-9]{2}" required autocomplete="off">
      </div>
      <div class="field">
        <label for="hours">Sleep</label>
        <select id="hours" name="hours">
          {{range .Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
        </select>
      </div>
      <div class="field">
        <label for="custom">Custom hours</label>
        <input id="custom" name="custom" type="text" value="{{.Custom}}" placeholder="7,5" autocomplete="off">
      </div>
    </div>
    <button type="submit">Calculate</button>
  </form>

  {{if .Error}}<div class="err">{{.Error}}</div>{{end}}

  {{with .Result}}
  <div class="card row">
    <svg width="{{.Size}}" height="{{.Size}}" viewBox="0 0 {{.Size}} {{.Size}}" role="img" aria-label="24-hour ring">
      <circle cx="{{.Ring.CX}}" cy="{{.Ring.CY}}" r="{{.Ring.R}}" fill="none" stroke="#bdbdbd" stroke-width="6"/>
      {{range .Ring.Cycles}}<line x1="{{.Inner.X}}" y1="{{.Inner.Y}}" x2="{{.Outer.X}}" y2="{{.Outer.Y}}" stroke="#1976d2" stroke-width="2"/>
      {{end}}
      {{range .Ring.Hours}}<text x="{{.At.X}}" y="{{.At.Y}}" text-anchor="middle" dominant-baseline="middle" font-size="11" fill="#777">{{.Text}}</text>
      {{end}}
      <circle cx="{{.Ring.Now.X}}" cy="{{.Ring.Now.Y}}" r="7" fill="#f57c00"/>
      <circle cx="{{.Ring.Wake.X}}" cy="{{.Ring.Wake.Y}}" r="7" fill="#2e7d32"/>
      <text x="{{.Ring.CX}}" y="{{.Ring.CY}}" text-anchor="middle" dominant-baseline="middle" font-size="15">{{.Ring.Caption}}</text>
    </svg>
    <div>
      <table>
        <tr><td class="k">Now</td><td class="mono">{{.Now}}</td></tr>
        <tr><td class="k">Wake</td><td class="mono">{{.Wake}}</td></tr>
        <tr><td class="k">Sleep if you go to bed now</td><td class="mono">{{.Until}} ({{.Cycles}} cycles)</td></tr>
        <tr><td class="k">Bedtime for {{.Hours}}</td><td class="mono"><b>{{.Primary}}</b></td></tr>
        {{if .Earlier}}<tr><td class="k">One hour less</td><td class="mono">{{.Earlier}}</td></tr>{{end}}
        <tr><td class="k">One hour more</td><td class="mono">{{.Later}}</td></tr>
        <tr><td class="k">Cycle marks</td><td class="mono">{{range $i, $m := .Marks}}{{if $i}}, {{end}}{{$m}}{{end}}</td></tr>
      </table>
      <div class="legend">
        <span><i class="dot" style="background:#f57c00"></i>now</span>
        <span><i class="dot" style="background:#2e7d32"></i>wake</span>
        <span><i class="dot" style="background:#1976d2"></i>90 min cycle</span>
      </div>
    </div>
  </div>
  {{end}}

  <footer>sleeptimer {{.Version}}</footer>
</body>
</html>`
