package httpserver

import "html/template"

// The widget is a single server-rendered page. Message bodies arrive
// as pre-sanitized markup from the image rewriter; the templates never
// escape them a second time.
const widgetTemplates = `
{{define "transcript"}}{{range .}}<div class="entry {{.Role}}{{if .IsError}} error{{end}}"><span class="who">{{.Who}}</span><div class="body">{{.Body}}</div></div>
{{end}}{{end}}

{{define "widget"}}<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; }
h1 { font-size: 1.2rem; }
.greeting { color: #555; }
#transcript { border: 1px solid #ddd; border-radius: 6px; padding: 0.5rem; height: 420px; overflow-y: auto; }
.entry { margin: 0.5rem 0; }
.entry .who { font-weight: 600; font-size: 0.8rem; color: #666; display: block; }
.entry.user .body { color: #1a3c6e; }
.entry.error .body { color: #a22; background: #fee; border-radius: 4px; padding: 0.25rem 0.5rem; }
.entry img { max-width: 100%; }
#composer { display: flex; gap: 0.5rem; margin-top: 0.75rem; }
#message { flex: 1; padding: 0.5rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Greeting}}<p class="greeting">{{.Greeting}}</p>{{end}}
<div id="transcript">{{template "transcript" .Entries}}</div>
<form id="composer">
<input id="message" name="message" autocomplete="off" placeholder="Type a message">
<button id="send" type="submit">Send</button>
</form>
<script>
var form = document.getElementById('composer');
var input = document.getElementById('message');
var send = document.getElementById('send');
var transcript = document.getElementById('transcript');

// One turn in flight at a time: the controller relies on the widget
// disabling input until the reply (or error) lands.
function setBusy(busy) { input.disabled = busy; send.disabled = busy; }

form.addEventListener('submit', async function (e) {
  e.preventDefault();
  var text = input.value.trim();
  if (!text) { return; }
  setBusy(true);
  try {
    var resp = await fetch('/v1/chat/turns', {
      method: 'POST',
      headers: { 'Content-Type': 'application/x-www-form-urlencoded' },
      body: new URLSearchParams({ message: text })
    });
    if (resp.ok) {
      transcript.innerHTML = await resp.text();
      transcript.scrollTop = transcript.scrollHeight;
      input.value = '';
    }
  } finally {
    setBusy(false);
    input.focus();
  }
});

var events = new EventSource('/v1/chat/events');
events.addEventListener('transcript', async function () {
  var resp = await fetch('/v1/chat/transcript');
  if (resp.ok) {
    transcript.innerHTML = await resp.text();
    transcript.scrollTop = transcript.scrollHeight;
  }
});
</script>
</body>
</html>
{{end}}`

func newTemplates() *template.Template {
	return template.Must(template.New("quill").Parse(widgetTemplates))
}
