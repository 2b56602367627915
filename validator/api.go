package validator

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alovak/cardnum/internal/luhn"
	"github.com/alovak/cardnum/internal/metrics"
)

// API is the HTTP adapter around the Luhn engine. It extracts parameters
// from the request path, calls the engine, and renders the result; it adds
// no semantics of its own.
type API struct {
	engine  *Service
	metrics *metrics.Collector
}

func NewAPI(engine *Service, collector *metrics.Collector) *API {
	return &API{
		engine:  engine,
		metrics: collector,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Get("/validate/{number}", a.validate)
	r.Get("/generate/{mii}", a.generate)
}

func (a *API) validate(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	result, err := a.engine.Validate(number)
	if err != nil {
		a.metrics.ValidateRejected()
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	a.metrics.Validated(result.Valid)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (a *API) generate(w http.ResponseWriter, r *http.Request) {
	// The engine takes the identifier as an int, so multi-digit values pass
	// through and are rejected there. Signs and other non-digit bytes are
	// rejected here before Atoi can accept them.
	param := chi.URLParam(r, "mii")
	if !luhn.IsDigits(param) {
		a.metrics.GenerateRejected()
		http.Error(w, "major industry identifier must be a single digit", http.StatusBadRequest)
		return
	}
	mii, err := strconv.Atoi(param)
	if err != nil {
		a.metrics.GenerateRejected()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	length := 0
	if q := r.URL.Query().Get("length"); q != "" {
		length, err = strconv.Atoi(q)
		if err != nil {
			a.metrics.GenerateRejected()
			http.Error(w, "length must be an integer", http.StatusBadRequest)
			return
		}
	}

	result, err := a.engine.Generate(mii, length)
	if err != nil {
		a.metrics.GenerateRejected()
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	a.metrics.Generated()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}
