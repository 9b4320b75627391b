// Package handlers provides HTTP request handlers for the API endpoints.
// It exposes the optimization pipeline and the constraint checker over HTTP.
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/bogodb/ringopt/internal/analyzer"
	"github.com/bogodb/ringopt/internal/builder"
	"github.com/bogodb/ringopt/internal/config"
	"github.com/bogodb/ringopt/internal/models"
	"github.com/bogodb/ringopt/internal/parser"
	"github.com/bogodb/ringopt/internal/validator"
)

// ConstraintsHeader carries the validation outcome of a generated graph.
// The graph is returned even when it is "false".
const ConstraintsHeader = "X-Constraints-Valid"

// OptimizeHandler accepts a results log and responds with the generated
// graph. The server has no initial graph, so the builder receives an empty one.
func OptimizeHandler(logger *zap.Logger, limits config.Limits, layout config.Layout) http.HandlerFunc {
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

		results, err := parser.ParseResults(body)
		if err != nil {
			http.Error(w, "Invalid results: "+err.Error(), http.StatusBadRequest)
			return
		}

		graph, err := builder.OptimizeGraph(logger, models.Graph{}, results, limits, layout)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, analyzer.ErrNoQueries) {
				status = http.StatusBadRequest
			}
			logger.Error("optimization failed", zap.Error(err))
			http.Error(w, "Optimization failed: "+err.Error(), status)
			return
		}

		valid := validator.Check(graph, limits) == nil
		w.Header().Set(ConstraintsHeader, strconv.FormatBool(valid))
		writeJSON(w, http.StatusOK, graph, r.URL.Query().Get("pretty") == "true")
	}
}
