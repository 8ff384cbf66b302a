package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/seasons", handler.ListSeasonsByLeague)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/standings", handler.GetStandings)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams/statistics", handler.GetTeamStatistics)
	mux.HandleFunc("POST /v1/teams/seasons", handler.CommonSeasons)

	mux.HandleFunc("POST /v1/seasons/teams", handler.ListProgression)
}
