// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package api

import "net/http"

// indexHTML is the root documentation page. It doubles as a smoke test: the
// inline script calls /compose with the browser's clock and renders the
// result, so an operator can eyeball the schedule without curl.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Poemclock - Poem/1 Compatible</title>
    <style>
        body { font-family: monospace; padding: 40px; max-width: 900px; margin: 0 auto; }
        code { background: #f0f0f0; padding: 2px 6px; border-radius: 3px; }
        pre { background: #f0f0f0; padding: 15px; border-radius: 5px; overflow-x: auto; }
        h2 { margin-top: 30px; border-bottom: 2px solid #333; padding-bottom: 5px; }
        .endpoint { background: #e8f4f8; padding: 10px; margin: 10px 0; border-left: 4px solid #0066cc; }
    </style>
</head>
<body>
    <h1>Poemclock</h1>
    <p>Compatible with <a href="https://poem.town/developer/device-api">Poem/1 Device API</a></p>

    <h2>Poem/1 Compatible Endpoints:</h2>

    <div class="endpoint">
        <strong>POST /api/v1/clock/status</strong><br>
        Check device status (no auth required)
    </div>

    <div class="endpoint">
        <strong>POST /api/v1/clock/compose</strong><br>
        Get poem for current time
    </div>

    <div class="endpoint">
        <strong>POST /api/v1/clock/notes/{noteId}/seen</strong><br>
        Mark note as seen
    </div>

    <div class="endpoint">
        <strong>POST /api/v1/clock/likes/{poemId}/mark</strong><br>
        Like a poem
    </div>

    <div class="endpoint">
        <strong>POST /api/v1/clock/likes/{poemId}/unmark</strong><br>
        Unlike a poem
    </div>

    <h2>Convenience Endpoints (for testing):</h2>
    <ul>
        <li><a href="/api/v1/clock">/api/v1/clock</a> - Current minute's content (GET)</li>
        <li><a href="/api/v1/clock/minute/720">/api/v1/clock/minute/720</a> - Content for minute 720 (GET)</li>
        <li><a href="/api/v1/clock/stats">/api/v1/clock/stats</a> - Content pool statistics (GET)</li>
        <li><a href="/api/v1/health">/api/v1/health</a> - Health status (GET)</li>
        <li><a href="/metrics">/metrics</a> - Prometheus metrics (GET)</li>
    </ul>

    <h2>Test /compose endpoint:</h2>
    <pre>curl -X POST \
  -H "Content-Type: application/json" \
  -d '{"time24": "12:34"}' \
  http://localhost:1440/api/v1/clock/compose</pre>

    <h2>Current Content:</h2>
    <div id="content" style="margin-top: 20px; padding: 20px; background: #f0f0f0; border-radius: 5px;"></div>

    <script>
        fetch('/api/v1/clock/compose', {
            method: 'POST',
            headers: { 'Content-Type': 'application/json' },
            body: JSON.stringify({ geolocate: new Date().toISOString() })
        })
        .then(r => r.json())
        .then(data => {
            document.getElementById('content').innerHTML =
                '<strong>' + data.time24 + '</strong><br><br>' +
                '<div style="font-size: 18px; line-height: 1.6;">' + data.poem + '</div><br>' +
                '<em style="color: #666;">Poem ID: ' + data.poemId + '</em>';
        })
        .catch(err => {
            document.getElementById('content').textContent = 'compose failed: ' + err;
        });
    </script>
</body>
</html>
`

// Index serves the HTML documentation page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexHTML))
}
