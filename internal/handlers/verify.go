package handlers

import (
	"io"
	"net/http"

	"github.com/bogodb/ringopt/internal/config"
	"github.com/bogodb/ringopt/internal/models"
	"github.com/bogodb/ringopt/internal/parser"
	"github.com/bogodb/ringopt/internal/validator"
)

type VerifyResponse struct {
	Valid     bool                 `json:"valid"`
	Violation *validator.Violation `json:"violation,omitempty"`
	Stats     *models.Stats        `json:"stats"`
}

// VerifyHandler checks a posted graph against limits. Constraint violations
// are reported in the body with a 200 status; only unreadable input is a 400.
func VerifyHandler(limits config.Limits) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		graph, err := parser.ParseGraph(body)
		if err != nil {
			http.Error(w, "Invalid graph: "+err.Error(), http.StatusBadRequest)
			return
		}

		violation := validator.Check(graph, limits)
		writeJSON(w, http.StatusOK, VerifyResponse{
			Valid:     violation == nil,
			Violation: violation,
			Stats:     graph.Stats(limits.MaxTotalEdges, limits.MaxEdgesPerNode),
		}, r.URL.Query().Get("pretty") == "true")
	}
}
