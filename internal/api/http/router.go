package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

func NewRouter(handler *Handler, origins []string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	if len(origins) == 0 {
		return cors.Default().Handler(r)
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Infof("cafe backend listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
