// Package http is the gin-gonic transport over the akari/game façade.
// There are no user accounts and no session tokens: every request
// carries the puzzle's params/descriptor and (where relevant) the
// caller's current board state, and the server treats each request
// independently.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"akari-engine/internal/akari/game"
	"akari-engine/internal/akari/grid"
	"akari-engine/internal/akari/rng"
	"akari-engine/internal/core"
	"akari-engine/internal/puzzles"
	"akari-engine/pkg/config"
	"akari-engine/pkg/constants"
)

var cfg *config.Config

var (
	errDimensionMismatch       = errors.New("http: submitted state dimensions do not match the puzzle")
	errLightImpossibleConflict = errors.New("http: submitted cell claims both a light and an impossible mark")
)

// RegisterRoutes wires the Akari API onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.GET("/presets", presetsHandler)
		api.GET("/daily", dailyHandler)
		api.GET("/puzzle/:seed", puzzleBySeedHandler)
		api.POST("/new", newPuzzleHandler)
		api.POST("/custom/validate", customValidateHandler)
		api.POST("/move", moveHandler)
		api.POST("/solve", solveHandler)
		api.POST("/status", statusHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

func presetsHandler(c *gin.Context) {
	presets := game.Presets()
	out := make([]gin.H, 0, len(presets))
	for _, p := range presets {
		out = append(out, gin.H{
			"label":  p.Label,
			"params": game.EncodeParams(p.Params, true),
		})
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}

// puzzleResponse builds the common payload for any endpoint that hands
// the caller a fresh puzzle: its params string, descriptor, and a blank
// decoded state ready for play.
func puzzleResponse(c *gin.Context, p core.Params, descriptor string) {
	s, err := game.NewState(p, descriptor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "corrupt stored puzzle: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"params":     game.EncodeParams(p, true),
		"descriptor": descriptor,
		"state":      stateToDTO(s),
	})
}

func dailyHandler(c *gin.Context) {
	loader := puzzles.Global()
	if loader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no puzzle batch loaded"})
		return
	}
	p, descriptor, idx, err := loader.GetTodayPuzzle()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date_utc":     time.Now().UTC().Format("2006-01-02"),
		"puzzle_index": idx,
		"params":       game.EncodeParams(p, true),
		"descriptor":   descriptor,
	})
}

func puzzleBySeedHandler(c *gin.Context) {
	seed := c.Param("seed")

	loader := puzzles.Global()
	if loader != nil {
		if p, descriptor, _, err := loader.GetPuzzleBySeed(seed); err == nil {
			puzzleResponse(c, p, descriptor)
			return
		}
	}

	// Fall back to generating on demand from the seed, same shape as the
	// pre-generated path since the façade is pure.
	p := game.DefaultParams()
	descriptor, err := game.NewDescription(p, rng.New(seed))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	puzzleResponse(c, p, descriptor)
}

type NewPuzzleRequest struct {
	Params string `json:"params" binding:"required"`
	Seed   string `json:"seed" binding:"required"`
}

func newPuzzleHandler(c *gin.Context) {
	var req NewPuzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := game.DecodeParams(req.Params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params: " + err.Error()})
		return
	}
	if err := game.ValidateParams(p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	descriptor, err := game.NewDescription(p, rng.New(req.Seed))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	puzzleResponse(c, p, descriptor)
}

type CustomValidateRequest struct {
	Params     string `json:"params" binding:"required"`
	Descriptor string `json:"descriptor" binding:"required"`
}

func customValidateHandler(c *gin.Context) {
	var req CustomValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := game.DecodeParams(req.Params)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "reason": "invalid params: " + err.Error()})
		return
	}
	if err := game.ValidateParams(p); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "reason": err.Error()})
		return
	}
	if err := game.ValidateDescription(req.Descriptor, p); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "reason": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// puzzleRequest is embedded by every endpoint that needs to reconstruct
// the caller's board: the immutable params+descriptor pair identifying
// the puzzle, plus the caller's current working state.
type puzzleRequest struct {
	Params     string   `json:"params" binding:"required"`
	Descriptor string   `json:"descriptor" binding:"required"`
	State      StateDTO `json:"state" binding:"required"`
}

func loadWorkingState(req puzzleRequest) (original, current *grid.State, err error) {
	p, err := game.DecodeParams(req.Params)
	if err != nil {
		return nil, nil, err
	}
	base, err := game.NewState(p, req.Descriptor)
	if err != nil {
		return nil, nil, err
	}
	cur, err := dtoToState(base, req.State)
	if err != nil {
		return nil, nil, err
	}
	return base, cur, nil
}

type MoveRequest struct {
	puzzleRequest
	Move string `json:"move" binding:"required"`
}

func moveHandler(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, current, err := loadWorkingState(req.puzzleRequest)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	next, ok := game.ExecuteMove(current, req.Move)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"applied": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applied": true,
		"state":   stateToDTO(next),
		"status":  game.Status(next),
	})
}

func solveHandler(c *gin.Context) {
	var req puzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	original, current, err := loadWorkingState(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	move, err := game.Solve(original, current)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"solvable": false, "error": err.Error()})
		return
	}
	solved, ok := game.ExecuteMove(current, move)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "solve move did not apply", "move": move})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"solvable": true,
		"move":     move,
		"state":    stateToDTO(solved),
	})
}

func statusHandler(c *gin.Context) {
	var req puzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, current, err := loadWorkingState(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": game.Status(current)})
}
