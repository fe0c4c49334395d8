package fixtures

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// MaxEventMinute bounds the minute recorded for goals and cards, stoppage
// time included.
const MaxEventMinute = 130

// ValidateFixtureInput checks a single league fixture create.
func ValidateFixtureInput(in models.FixtureInput) error {
	if err := validateDivisionWeek(in.Division, in.WeekNumber); err != nil {
		return err
	}
	if err := validatePairing(in.HomeTeamID, in.AwayTeamID, in.MatchDate); err != nil {
		return apperr.Invalid("%v", err)
	}
	return nil
}

// ValidateBulkInput checks a whole matchday. A team may appear only once.
func ValidateBulkInput(in models.BulkFixtureInput) error {
	if err := validateDivisionWeek(in.Division, in.WeekNumber); err != nil {
		return err
	}
	if len(in.Fixtures) == 0 {
		return apperr.Invalid("at least one fixture is required")
	}
	playing := make(map[string]bool, 2*len(in.Fixtures))
	for i, f := range in.Fixtures {
		if err := validatePairing(f.HomeTeamID, f.AwayTeamID, f.MatchDate); err != nil {
			return apperr.Invalid("fixture %d: %v", i+1, err)
		}
		for _, id := range []string{f.HomeTeamID, f.AwayTeamID} {
			if playing[id] {
				return apperr.Invalid("team %s is scheduled twice in week %d", id, in.WeekNumber)
			}
			playing[id] = true
		}
	}
	return nil
}

// ValidateFixtureUpdate checks a score, status or scheduling edit.
func ValidateFixtureUpdate(in models.FixtureUpdate) error {
	if (in.HomeScore != nil && *in.HomeScore < 0) || (in.AwayScore != nil && *in.AwayScore < 0) {
		return apperr.Invalid("scores must not be negative")
	}
	if in.Status != nil {
		switch *in.Status {
		case models.FixtureStatusScheduled, models.FixtureStatusLive, models.FixtureStatusHalftime, models.FixtureStatusCompleted:
		default:
			return apperr.Invalid("unknown status %q", *in.Status)
		}
	}
	if in.WeekNumber != nil && *in.WeekNumber < 1 {
		return apperr.Invalid("week_number must be positive")
	}
	if in.MatchDate != nil {
		if _, err := models.ParseTimestamp(*in.MatchDate); err != nil {
			return apperr.Invalid("match_date: %v", err)
		}
	}
	return nil
}

// ValidateScoreReport checks a final score entry.
func ValidateScoreReport(home, away *int) error {
	if home == nil || away == nil {
		return apperr.Invalid("both scores are required")
	}
	if *home < 0 || *away < 0 {
		return apperr.Invalid("scores must not be negative")
	}
	return nil
}

// ValidateAddGoal checks a goal scorer entry.
func ValidateAddGoal(in models.AddGoal) error {
	if !in.TeamSide.Valid() {
		return apperr.Invalid("team_side must be home or away, got %q", in.TeamSide)
	}
	if _, err := uuid.Parse(in.PlayerID); err != nil {
		return apperr.Invalid("invalid player_id %q", in.PlayerID)
	}
	return validateMinute(in.Minute)
}

// ValidateAddCard checks a card entry.
func ValidateAddCard(in models.AddCard) error {
	if !in.TeamSide.Valid() {
		return apperr.Invalid("team_side must be home or away, got %q", in.TeamSide)
	}
	if !in.CardType.Valid() {
		return apperr.Invalid("card_type must be yellow or red, got %q", in.CardType)
	}
	if _, err := uuid.Parse(in.PlayerID); err != nil {
		return apperr.Invalid("invalid player_id %q", in.PlayerID)
	}
	return validateMinute(in.Minute)
}

// ValidateRemoval checks the target of a goal or card removal.
func ValidateRemoval(eventID string, side models.TeamSide) error {
	if eventID == "" {
		return apperr.Invalid("event id is required")
	}
	if !side.Valid() {
		return apperr.Invalid("team_side must be home or away, got %q", side)
	}
	return nil
}

func validateMinute(m *int) error {
	if m != nil && (*m < 0 || *m > MaxEventMinute) {
		return apperr.Invalid("minute must be between 0 and %d", MaxEventMinute)
	}
	return nil
}

func validateDivisionWeek(division, week int) error {
	if division != 1 && division != 2 {
		return apperr.Invalid("division must be 1 or 2, got %d", division)
	}
	if week < 1 {
		return apperr.Invalid("week_number must be positive")
	}
	return nil
}

func validatePairing(home, away, matchDate string) error {
	for _, id := range []string{home, away} {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("invalid team id %q", id)
		}
	}
	if home == away {
		return errors.New("a team cannot play itself")
	}
	if _, err := models.ParseTimestamp(matchDate); err != nil {
		return fmt.Errorf("match_date: %w", err)
	}
	return nil
}
