package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/katalvlaran/domino"
	"github.com/katalvlaran/domino/chain"
	"github.com/katalvlaran/domino/eulerian"
	"github.com/katalvlaran/domino/tile"
)

// maxBody bounds request bodies.
const maxBody = 64 << 10

type tilesReq struct {
	Tiles []string `json:"tiles,omitempty"`
	Input string   `json:"input,omitempty"`
}

// tokens prefers the explicit list and falls back to splitting Input.
func (q tilesReq) tokens() []string {
	if q.Tiles != nil {
		return q.Tiles
	}

	return domino.SplitInput(q.Input)
}

type solveResp struct {
	Outcome    domino.Outcome    `json:"outcome"`
	Message    string            `json:"message"`
	Chain      []string          `json:"chain,omitempty"`
	Placements []chain.Placement `json:"placements,omitempty"`
	Nodes      int               `json:"nodes"`
	DurationMs int64             `json:"durationMs"`
	Reason     string            `json:"reason,omitempty"`
}

type analyzeResp struct {
	Outcome domino.Outcome   `json:"outcome"`
	Report  *eulerian.Report `json:"report,omitempty"`
	Trail   []string         `json:"trail,omitempty"`
}

type exampleResp struct {
	Input   string         `json:"input"`
	Note    string         `json:"note,omitempty"`
	Outcome domino.Outcome `json:"outcome"`
	Message string         `json:"message"`
}

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decode(w http.ResponseWriter, r *http.Request) (tilesReq, bool) {
	var req tilesReq
	err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return req, false
	}

	return req, true
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	req, ok := decode(w, r)
	if !ok {
		return
	}

	rep, err := domino.Evaluate(req.tokens(), s.solverOptions(r.Context())...)
	if err != nil {
		s.log.Warn("search aborted", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResp{Error: err.Error()})
		return
	}
	s.log.Debug("evaluated", "outcome", rep.Outcome.String(), "tiles", len(rep.Tokens), "nodes", rep.Stats.Nodes)

	writeJSON(w, http.StatusOK, solveResp{
		Outcome:    rep.Outcome,
		Message:    rep.Message(),
		Chain:      rep.Chain,
		Placements: rep.Placements,
		Nodes:      rep.Stats.Nodes,
		DurationMs: rep.Stats.Duration.Milliseconds(),
		Reason:     rep.Reason,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := decode(w, r)
	if !ok {
		return
	}

	tiles, err := tile.Validate(req.tokens())
	if err != nil {
		writeJSON(w, http.StatusOK, analyzeResp{Outcome: domino.OutcomeInvalid})
		return
	}

	rep := eulerian.Analyze(tiles)
	resp := analyzeResp{Outcome: domino.OutcomeNoChain, Report: &rep}
	if c, ok := eulerian.Trail(tiles); ok {
		resp.Outcome = domino.OutcomeChain
		resp.Trail = c.Strings()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	out := make([]exampleResp, 0, len(domino.Examples))
	for _, ex := range domino.Examples {
		rep, err := domino.Evaluate(domino.SplitInput(ex.Input), s.solverOptions(r.Context())...)
		if err != nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResp{Error: err.Error()})
			return
		}
		out = append(out, exampleResp{Input: ex.Input, Note: ex.Note, Outcome: rep.Outcome, Message: rep.Message()})
	}
	writeJSON(w, http.StatusOK, out)
}
