package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, roles RoleProvider) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r, roles)
	return cors.AllowAll().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("[storefront] listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
