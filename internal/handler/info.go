package handler

import "net/http"

// infoResponse is the static restaurant identity record served to the
// dashboard shell.
type infoResponse struct {
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	Currency string `json:"currency"`
	Tables   int    `json:"tables"`
}

// Info handles GET /info.
func Info(tableCount int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, infoResponse{
			Name:     "Tavola Trattoria",
			Tagline:  "Honest food, busy tables",
			Currency: "USD",
			Tables:   tableCount,
		})
	}
}
