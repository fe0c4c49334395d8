package sanctions

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// LeagueAPI defines what the sanctions views need from the league API
type LeagueAPI interface {
	ListSanctions(ctx context.Context) ([]models.Sanction, error)
	UpdateSanction(ctx context.Context, playerID string, in models.SanctionUpdate) error
}

// Suspension is the ban attached to a red card record.
type Suspension struct {
	Pending  bool    `json:"pending"`
	Games    *int    `json:"games,omitempty"`
	FromWeek *int    `json:"from_week,omitempty"`
	ToWeek   *int    `json:"to_week,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// RedCardRow is a player with at least one red card.
type RedCardRow struct {
	models.Sanction
	Suspension Suspension `json:"suspension"`
}

// DivisionSanctions is the sanctions board of one division.
type DivisionSanctions struct {
	Division    int               `json:"division"`
	RedCards    []RedCardRow      `json:"red_cards"`
	YellowCards []models.Sanction `json:"yellow_cards"`
}

// Page is the public sanctions view.
type Page struct {
	Divisions []DivisionSanctions `json:"divisions"`
	Notice    string              `json:"notice,omitempty"`
}

// EmptyPage is the fallback view when loading failed.
func EmptyPage() *Page {
	return &Page{
		Divisions: []DivisionSanctions{
			{Division: 1, RedCards: []RedCardRow{}, YellowCards: []models.Sanction{}},
			{Division: 2, RedCards: []RedCardRow{}, YellowCards: []models.Sanction{}},
		},
		Notice: "Failed to load sanctions",
	}
}

// App builds the sanctions views
type App struct {
	api LeagueAPI
}

// NewApp creates a new sanctions App
func NewApp(api LeagueAPI) *App {
	return &App{api: api}
}

// Page returns the sanctions of both divisions.
func (a *App) Page(ctx context.Context) (*Page, error) {
	all, err := a.api.ListSanctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sanctions: %w", err)
	}
	return BuildPage(all), nil
}

// List returns the raw sanctions for the admin tab.
func (a *App) List(ctx context.Context) ([]models.Sanction, error) {
	all, err := a.api.ListSanctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sanctions: %w", err)
	}
	if all == nil {
		all = []models.Sanction{}
	}
	return all, nil
}

// BuildPage splits sanctions per division into red card records and players
// who only have yellow cards.
func BuildPage(all []models.Sanction) *Page {
	page := &Page{}
	for _, division := range []int{1, 2} {
		ds := DivisionSanctions{
			Division:    division,
			RedCards:    []RedCardRow{},
			YellowCards: []models.Sanction{},
		}
		for _, s := range all {
			if s.Division != division {
				continue
			}
			switch {
			case s.TotalRedCards > 0:
				ds.RedCards = append(ds.RedCards, RedCardRow{Sanction: s, Suspension: suspensionOf(s)})
			case s.TotalYellowCards > 0:
				ds.YellowCards = append(ds.YellowCards, s)
			}
		}
		sort.SliceStable(ds.RedCards, func(i, j int) bool {
			return ds.RedCards[i].TotalRedCards > ds.RedCards[j].TotalRedCards
		})
		sort.SliceStable(ds.YellowCards, func(i, j int) bool {
			return ds.YellowCards[i].TotalYellowCards > ds.YellowCards[j].TotalYellowCards
		})
		page.Divisions = append(page.Divisions, ds)
	}
	return page
}

func suspensionOf(s models.Sanction) Suspension {
	if s.SuspensionGames == nil || *s.SuspensionGames == 0 {
		return Suspension{Pending: true}
	}
	sus := Suspension{Games: s.SuspensionGames, Notes: s.Notes}
	// The week range is only meaningful when both ends are set.
	if s.SuspensionFromWeek != nil && s.SuspensionToWeek != nil {
		sus.FromWeek = s.SuspensionFromWeek
		sus.ToWeek = s.SuspensionToWeek
	}
	return sus
}

// Update sets the suspension of a player.
func (a *App) Update(ctx context.Context, playerID string, in models.SanctionUpdate) error {
	if err := validateUpdate(in); err != nil {
		return err
	}
	if in.Notes != nil {
		notes := strings.TrimSpace(*in.Notes)
		if notes == "" {
			in.Notes = nil
		} else {
			in.Notes = &notes
		}
	}

	if err := a.api.UpdateSanction(ctx, playerID, in); err != nil {
		return err
	}

	log.Info().Str("player_id", playerID).Msg("updated sanction")
	return nil
}

func validateUpdate(in models.SanctionUpdate) error {
	for name, v := range map[string]*int{
		"suspension_games":     in.SuspensionGames,
		"suspension_from_week": in.SuspensionFromWeek,
		"suspension_to_week":   in.SuspensionToWeek,
	} {
		if v != nil && *v < 0 {
			return apperr.Invalid("%s must not be negative", name)
		}
	}
	if in.SuspensionFromWeek != nil && in.SuspensionToWeek != nil && *in.SuspensionFromWeek > *in.SuspensionToWeek {
		return apperr.Invalid("suspension_from_week must not be after suspension_to_week")
	}
	return nil
}
