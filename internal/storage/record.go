package storage

import "github.com/vovakirdan/turtle-adventure/internal/core"

// ResultFromState builds a ledger row from a finished game's state.
// The bool is false while the game is still running.
func ResultFromState(gameID string, st core.GameState) (Result, bool) {
	if !st.GameOver {
		return Result{}, false
	}
	outcome := OutcomeLose
	if st.Won {
		outcome = OutcomeWin
	}
	return Result{
		GameID:  gameID,
		Outcome: outcome,
		Level:   st.Level,
		Ticks:   st.Tick,
		Enemies: st.Enemies,
	}, true
}

// Record saves the outcome of a finished game. A nil store or a running game
// is a no-op.
func (s *Store) Record(gameID string, st core.GameState) error {
	r, ok := ResultFromState(gameID, st)
	if s == nil || !ok {
		return nil
	}
	_, err := s.SaveResult(r)
	return err
}
