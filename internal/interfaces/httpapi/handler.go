package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/soccer-insights/internal/domain/teamstats"
	"github.com/riskibarqy/soccer-insights/internal/usecase"
)

type Handler struct {
	leagueService      *usecase.LeagueService
	standingsService   *usecase.StandingsService
	teamStatsService   *usecase.TeamStatsService
	progressionService *usecase.ProgressionService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	standingsService *usecase.StandingsService,
	teamStatsService *usecase.TeamStatsService,
	progressionService *usecase.ProgressionService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		leagueService:      leagueService,
		standingsService:   standingsService,
		teamStatsService:   teamStatsService,
		progressionService: progressionService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagues)
}

func (h *Handler) ListSeasonsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonsByLeague")
	defer span.End()

	leagueID, err := parsePathID(ctx, r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons, err := h.leagueService.ListSeasonsByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasons)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.leagueService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	leagueID, err := parsePathID(ctx, r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req standingsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingsService.GetStandings(ctx, leagueID, usecase.StandingsInput{
		SeasonIDs:  req.SeasonIDs,
		RoundStart: req.RoundStart,
		RoundEnd:   req.RoundEnd,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) GetTeamStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStatistics")
	defer span.End()

	var req teamStatisticsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.teamStatsService.GetTeamStatistics(ctx, teamstats.Filter{
		TeamIDs:    req.TeamIDs,
		Seasons:    req.Seasons,
		RoundStart: req.RoundStart,
		RoundEnd:   req.RoundEnd,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get team statistics failed", "team_ids", req.TeamIDs, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamStatisticsResponse{
		Teams:          result.Teams,
		LeagueAverages: result.LeagueAverages,
	})
}

// CommonSeasons answers POST /v1/teams/seasons: the seasons every
// requested team has a rollup for.
func (h *Handler) CommonSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CommonSeasons")
	defer span.End()

	var req teamIDsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons, err := h.progressionService.CommonSeasons(ctx, req.TeamIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "common seasons failed", "team_ids", req.TeamIDs, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasons)
}

// ListProgression answers POST /v1/seasons/teams: per-season rollups
// for the requested teams.
func (h *Handler) ListProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListProgression")
	defer span.End()

	var req progressionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.progressionService.ListProgression(ctx, req.IDs)
	if err != nil {
		h.logger.WarnContext(ctx, "list progression failed", "team_ids", req.IDs, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parsePathID(ctx context.Context, r *http.Request, name string) (int64, error) {
	ctx, span := startSpan(ctx, "httpapi.parsePathID")
	defer span.End()

	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

type standingsRequest struct {
	SeasonIDs  []int64 `json:"seasons" validate:"required,min=1,dive,gt=0"`
	RoundStart *int    `json:"roundStart" validate:"omitempty,gte=1"`
	RoundEnd   *int    `json:"roundEnd" validate:"omitempty,gte=1"`
}

type teamStatisticsRequest struct {
	TeamIDs    []int64  `json:"teamIds" validate:"dive,gt=0"`
	Seasons    []string `json:"seasons" validate:"dive,required"`
	RoundStart *int     `json:"roundStart" validate:"omitempty,gte=1"`
	RoundEnd   *int     `json:"roundEnd" validate:"omitempty,gte=1"`
}

// An empty team list is a valid common-seasons request; the service
// answers it with an empty intersection.
type teamIDsRequest struct {
	TeamIDs []int64 `json:"teamIds" validate:"omitempty,dive,gt=0"`
}

type progressionRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

type teamStatisticsResponse struct {
	Teams          []teamstats.TeamStatistics `json:"teams"`
	LeagueAverages []teamstats.LeagueAverage  `json:"leagueAverages"`
}
