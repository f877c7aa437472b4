package handlers

import (
	"net/http"
)

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func writeError(w http.ResponseWriter, status int, detail string) {
	body := http.StatusText(status)
	if detail != "" {
		body += "\n\n" + detail
	}
	writeText(w, status, body)
}
