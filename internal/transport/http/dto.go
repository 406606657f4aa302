package http

import "akari-engine/internal/akari/grid"

// CellDTO is the wire representation of a single cell, row-major indexed
// implicitly by its position in StateDTO.Cells.
type CellDTO struct {
	Black      bool `json:"black"`
	Numbered   bool `json:"numbered"`
	Number     int  `json:"number,omitempty"`
	Light      bool `json:"light"`
	Impossible bool `json:"impossible"`
	LitCount   int  `json:"lit_count"`
}

// StateDTO is the JSON shape of a puzzle state: since the façade keeps
// all state caller-managed, the client round-trips this on every move
// instead of the server holding a session.
type StateDTO struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Cells      []CellDTO `json:"cells"`
	LightCount int       `json:"light_count"`
	Completed  bool      `json:"completed"`
	UsedSolve  bool      `json:"used_solve"`
}

// stateToDTO renders s for JSON transport.
func stateToDTO(s *grid.State) StateDTO {
	dto := StateDTO{
		Width:      s.Width,
		Height:     s.Height,
		Cells:      make([]CellDTO, 0, s.Width*s.Height),
		LightCount: s.LightCount,
		Completed:  s.Completed,
		UsedSolve:  s.UsedSolve,
	}
	s.ForEachCell(func(x, y int) {
		cell := CellDTO{Black: s.IsBlack(x, y)}
		if cell.Black {
			cell.Numbered = s.IsNumbered(x, y)
			if cell.Numbered {
				cell.Number = s.LitCount(x, y)
			}
		} else {
			cell.Light = s.HasLight(x, y)
			cell.Impossible = s.IsImpossible(x, y)
			cell.LitCount = s.LitCount(x, y)
		}
		dto.Cells = append(dto.Cells, cell)
	})
	return dto
}

// dtoToState rebuilds a *grid.State from a client-submitted DTO. Used
// only to recover the caller's working copy before applying a move; the
// black/clue layout is always re-derived from the puzzle's descriptor
// rather than trusted from the client, so a client cannot smuggle in a
// different wall layout.
func dtoToState(base *grid.State, dto StateDTO) (*grid.State, error) {
	s := base.Duplicate()
	if dto.Width != s.Width || dto.Height != s.Height || len(dto.Cells) != s.Width*s.Height {
		return nil, errDimensionMismatch
	}
	i := 0
	var cellErr error
	s.ForEachCell(func(x, y int) {
		cell := dto.Cells[i]
		i++
		if s.IsBlack(x, y) {
			return
		}
		if cell.Light && cell.Impossible {
			cellErr = errLightImpossibleConflict
			return
		}
		if cell.Light != s.HasLight(x, y) {
			s.SetLight(x, y, cell.Light)
		}
		s.SetImpossible(x, y, cell.Impossible)
	})
	if cellErr != nil {
		return nil, cellErr
	}
	s.Completed = dto.Completed
	s.UsedSolve = dto.UsedSolve
	return s, nil
}
