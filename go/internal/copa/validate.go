package copa

import (
	"strings"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// ValidateGroupName accepts the four group letters.
func ValidateGroupName(name string) error {
	for _, g := range GroupNames {
		if name == g {
			return nil
		}
	}
	return apperr.Invalid("group must be one of %s, got %q", strings.Join(GroupNames, ", "), name)
}

// ValidateJornada accepts matchdays 1 to MaxJornada.
func ValidateJornada(n int) error {
	if n < 1 || n > MaxJornada {
		return apperr.Invalid("jornada must be between 1 and %d, got %d", MaxJornada, n)
	}
	return nil
}

// ValidateGroupInput checks a group create or replace.
func ValidateGroupInput(in models.CopaGroupInput) error {
	if err := ValidateGroupName(in.GroupName); err != nil {
		return err
	}
	seen := make(map[string]bool, len(in.TeamIDs))
	for _, id := range in.TeamIDs {
		if seen[id] {
			return apperr.Invalid("team %s is listed twice in group %s", id, in.GroupName)
		}
		seen[id] = true
	}
	return nil
}

// ValidateFixtureInput checks a group-stage match create.
func ValidateFixtureInput(in models.CopaFixtureInput) error {
	if err := ValidateGroupName(in.GroupName); err != nil {
		return err
	}
	if err := ValidateJornada(in.Jornada); err != nil {
		return err
	}
	if in.HomeTeamID == "" || in.AwayTeamID == "" {
		return apperr.Invalid("both teams are required")
	}
	if in.HomeTeamID == in.AwayTeamID {
		return apperr.Invalid("a team cannot play itself")
	}
	if _, err := models.ParseTimestamp(in.MatchDate); err != nil {
		return apperr.Invalid("match_date: %v", err)
	}
	return nil
}

// ValidateFixtureUpdate checks a group-stage match edit.
func ValidateFixtureUpdate(in models.CopaFixtureUpdate) error {
	if in.Jornada != nil {
		if err := ValidateJornada(*in.Jornada); err != nil {
			return err
		}
	}
	if err := validateScores(in.HomeScore, in.AwayScore); err != nil {
		return err
	}
	if in.Status != nil {
		if err := validateStatus(*in.Status); err != nil {
			return err
		}
	}
	if in.MatchDate != nil {
		if _, err := models.ParseTimestamp(*in.MatchDate); err != nil {
			return apperr.Invalid("match_date: %v", err)
		}
	}
	return nil
}

// ValidateBracketInput checks a knockout match create.
func ValidateBracketInput(in models.CopaBracketInput) error {
	if err := validatePosition(in.RoundType, in.MatchPosition); err != nil {
		return err
	}
	if in.HomeTeamID != nil && in.AwayTeamID != nil && *in.HomeTeamID != "" && *in.HomeTeamID == *in.AwayTeamID {
		return apperr.Invalid("a team cannot play itself")
	}
	if in.MatchDate != nil && *in.MatchDate != "" {
		if _, err := models.ParseTimestamp(*in.MatchDate); err != nil {
			return apperr.Invalid("match_date: %v", err)
		}
	}
	return nil
}

// ValidateBracketUpdate checks a knockout match edit. The winner, when set,
// must be one of the two teams.
func ValidateBracketUpdate(current models.CopaBracket, in models.CopaBracketUpdate) error {
	if err := validateScores(in.HomeScore, in.AwayScore); err != nil {
		return err
	}
	if in.Status != nil {
		if err := validateStatus(*in.Status); err != nil {
			return err
		}
	}
	if in.WinnerTeamID != nil && *in.WinnerTeamID != "" {
		home := pick(in.HomeTeamID, current.HomeTeamID)
		away := pick(in.AwayTeamID, current.AwayTeamID)
		if *in.WinnerTeamID != home && *in.WinnerTeamID != away {
			return apperr.Invalid("winner must be one of the two teams")
		}
	}
	if in.MatchDate != nil && *in.MatchDate != "" {
		if _, err := models.ParseTimestamp(*in.MatchDate); err != nil {
			return apperr.Invalid("match_date: %v", err)
		}
	}
	return nil
}

func validatePosition(round models.RoundType, position int) error {
	slots := round.Slots()
	if slots == 0 {
		return apperr.Invalid("unknown round type %q", round)
	}
	if position < 1 || position > slots {
		return apperr.Invalid("match_position for %s must be between 1 and %d, got %d", round, slots, position)
	}
	return nil
}

func validateScores(home, away *int) error {
	if (home != nil && *home < 0) || (away != nil && *away < 0) {
		return apperr.Invalid("scores must not be negative")
	}
	return nil
}

func validateStatus(s models.FixtureStatus) error {
	switch s {
	case models.FixtureStatusScheduled, models.FixtureStatusLive, models.FixtureStatusHalftime, models.FixtureStatusCompleted:
		return nil
	}
	return apperr.Invalid("unknown status %q", s)
}

func pick(update, current *string) string {
	if update != nil {
		return *update
	}
	if current != nil {
		return *current
	}
	return ""
}
