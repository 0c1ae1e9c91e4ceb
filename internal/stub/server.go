package stub

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/five82/motodash/internal/moto"
)

// Services bundles the backends the router serves.
type Services struct {
	HAL        HALService
	Network    NetworkService
	Motorcycle MotorcycleService
}

// Defaults returns the canned stub services.
func Defaults() Services {
	return Services{HAL: StubHAL{}, Network: StubNetwork{}, Motorcycle: StubMotorcycle{}}
}

// NewRouter registers every device endpoint on a gorilla/mux router wrapped
// in the CORS middleware.
func NewRouter(svc Services) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc(moto.HAL.Path(), statusHandler(svc.HAL.Status)).Methods(http.MethodGet)
	r.HandleFunc(moto.Network.Path(), statusHandler(svc.Network.Status)).Methods(http.MethodGet)
	r.HandleFunc(moto.Motorcycle.Path(), statusHandler(svc.Motorcycle.Status)).Methods(http.MethodGet)
	r.HandleFunc(moto.GPSPath, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Motorcycle.GPS())
	}).Methods(http.MethodGet)
	r.HandleFunc("/v1/api/motorcycle/{action}", actionHandler(svc.Motorcycle)).Methods(http.MethodPost)

	return corsMiddleware(r)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func statusHandler(status func() map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, status())
	}
}

func actionHandler(svc MotorcycleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := moto.ParseAction(mux.Vars(r)["action"])
		if err != nil {
			http.NotFound(w, r)
			return
		}
		msg, err := svc.Trigger(a)
		if err != nil {
			log.Printf("stub: %s failed: %v", a, err)
			writeJSON(w, http.StatusInternalServerError, moto.ActionResponse{Message: err.Error()})
			return
		}
		log.Printf("stub: %s accepted", a)
		writeJSON(w, http.StatusOK, moto.ActionResponse{Message: msg})
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("stub: encode response: %v", err)
	}
}

// Serve runs the stub backend on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, svc Services) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(svc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("stub backend listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
