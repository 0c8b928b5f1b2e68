package httptransport

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	appplayers "tablerelay/internal/app/players"
	appsync "tablerelay/internal/app/statesync"
	apptables "tablerelay/internal/app/tables"
	"tablerelay/internal/config"
	"tablerelay/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, cfg config.ServerConfig) *chi.Mux {
	playerHandlers := NewPlayerHandlers(appplayers.NewService(st))
	tableHandlers := NewTableHandlers(apptables.NewService(st, cfg))
	stateHandlers := NewStateHandlers(appsync.NewService(st))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Post("/players/register", playerHandlers.Register())
		r.Post("/sessions/create", playerHandlers.CreateSession())

		r.Get("/tables", tableHandlers.List())
		r.Post("/tables", tableHandlers.Create())
		r.Route("/tables/{tableId}", func(r chi.Router) {
			r.Get("/", tableHandlers.Get())
			r.Post("/join", tableHandlers.Join())
			r.Post("/leave", tableHandlers.Leave())
			r.Post("/heartbeat", tableHandlers.Heartbeat())
			r.Post("/chat", tableHandlers.Chat())

			r.Post("/state/sync", stateHandlers.Sync())
			r.Get("/state", stateHandlers.StateSince())
			r.Post("/events", stateHandlers.Events())
			r.Post("/action", stateHandlers.Action())
			r.Post("/resync", stateHandlers.Resync())
		})
	})
	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 32)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
