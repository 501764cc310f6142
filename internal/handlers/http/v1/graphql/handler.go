// Package graphql exposes the board and post operations as a graphql schema.
package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/gfdmit/board-service/internal/apperror"
	"github.com/gfdmit/board-service/internal/service"
)

type gqlHandler struct {
	svc *service.Service

	schema graphql.Schema
}

func New(svc *service.Service) (*gqlHandler, error) {
	gh := &gqlHandler{
		svc: svc,
	}

	if err := gh.initSchema(); err != nil {
		return nil, err
	}

	return gh, nil
}

func (gh *gqlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(apperror.BadRequest("invalid graphql request body"))
		return
	}

	res := graphql.Do(graphql.Params{
		Context:        r.Context(),
		Schema:         gh.schema,
		RequestString:  body.Query,
		VariableValues: body.Variables,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
