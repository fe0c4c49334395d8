package copa

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/fixtures"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// AdminAPI defines what Copa management needs from the league API
type AdminAPI interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListCopaGroups(ctx context.Context) ([]models.CopaGroup, error)
	CreateCopaGroup(ctx context.Context, in models.CopaGroupInput) (*models.CopaGroup, error)
	UpdateCopaGroup(ctx context.Context, name string, in models.CopaGroupInput) error
	DeleteCopaGroup(ctx context.Context, name string) error
	ListCopaFixtures(ctx context.Context) ([]models.CopaFixture, error)
	CreateCopaFixture(ctx context.Context, in models.CopaFixtureInput) (*models.CopaFixture, error)
	UpdateCopaFixture(ctx context.Context, id string, in models.CopaFixtureUpdate) error
	DeleteCopaFixture(ctx context.Context, id string) error
	AddCopaFixtureGoal(ctx context.Context, id string, in models.AddGoal) error
	AddCopaFixtureCard(ctx context.Context, id string, in models.AddCard) error
	ListCopaBrackets(ctx context.Context) ([]models.CopaBracket, error)
	CreateCopaBracket(ctx context.Context, in models.CopaBracketInput) (*models.CopaBracket, error)
	UpdateCopaBracket(ctx context.Context, id string, in models.CopaBracketUpdate) error
	DeleteCopaBracket(ctx context.Context, id string) error
	AddCopaBracketGoal(ctx context.Context, id string, in models.AddGoal) error
	AddCopaBracketCard(ctx context.Context, id string, in models.AddCard) error
}

// AdminTab is the Copa tab of the admin dashboard.
type AdminTab struct {
	Groups   []models.CopaGroup   `json:"groups"`
	Fixtures []models.CopaFixture `json:"fixtures"`
	Brackets []models.CopaBracket `json:"brackets"`
	Teams    []models.Team        `json:"teams"`
}

// Admin manages the Copa groups, group matches and knockout bracket
type Admin struct {
	api AdminAPI
}

// NewAdmin creates a new Copa Admin
func NewAdmin(api AdminAPI) *Admin {
	return &Admin{api: api}
}

// Tab loads everything the Copa tab edits.
func (a *Admin) Tab(ctx context.Context) (*AdminTab, error) {
	tab := &AdminTab{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { tab.Groups, err = a.api.ListCopaGroups(gctx); return })
	g.Go(func() (err error) { tab.Fixtures, err = a.api.ListCopaFixtures(gctx); return })
	g.Go(func() (err error) { tab.Brackets, err = a.api.ListCopaBrackets(gctx); return })
	g.Go(func() (err error) { tab.Teams, err = a.api.ListTeams(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load copa tab: %w", err)
	}

	if tab.Groups == nil {
		tab.Groups = []models.CopaGroup{}
	}
	if tab.Fixtures == nil {
		tab.Fixtures = []models.CopaFixture{}
	}
	if tab.Brackets == nil {
		tab.Brackets = []models.CopaBracket{}
	}
	if tab.Teams == nil {
		tab.Teams = []models.Team{}
	}
	sort.SliceStable(tab.Groups, func(i, j int) bool { return tab.Groups[i].GroupName < tab.Groups[j].GroupName })
	return tab, nil
}

func (a *Admin) CreateGroup(ctx context.Context, in models.CopaGroupInput) (*models.CopaGroup, error) {
	if err := ValidateGroupInput(in); err != nil {
		return nil, err
	}
	g, err := a.api.CreateCopaGroup(ctx, in)
	if err != nil {
		return nil, err
	}
	log.Info().Str("group", g.GroupName).Int("teams", len(g.TeamIDs)).Msg("created copa group")
	return g, nil
}

// UpdateGroup replaces the teams of a group. The group name in the path wins
// over the body.
func (a *Admin) UpdateGroup(ctx context.Context, name string, in models.CopaGroupInput) error {
	in.GroupName = name
	if err := ValidateGroupInput(in); err != nil {
		return err
	}
	if err := a.api.UpdateCopaGroup(ctx, name, in); err != nil {
		return err
	}
	log.Info().Str("group", name).Msg("updated copa group")
	return nil
}

func (a *Admin) DeleteGroup(ctx context.Context, name string) error {
	if err := ValidateGroupName(name); err != nil {
		return err
	}
	if err := a.api.DeleteCopaGroup(ctx, name); err != nil {
		return err
	}
	log.Info().Str("group", name).Msg("deleted copa group")
	return nil
}

func (a *Admin) CreateFixture(ctx context.Context, in models.CopaFixtureInput) (*models.CopaFixture, error) {
	if err := ValidateFixtureInput(in); err != nil {
		return nil, err
	}
	f, err := a.api.CreateCopaFixture(ctx, in)
	if err != nil {
		return nil, err
	}
	log.Info().Str("fixture_id", f.ID).Str("group", f.GroupName).Int("jornada", f.Jornada).Msg("created copa fixture")
	return f, nil
}

func (a *Admin) UpdateFixture(ctx context.Context, id string, in models.CopaFixtureUpdate) error {
	if err := ValidateFixtureUpdate(in); err != nil {
		return err
	}
	if err := a.api.UpdateCopaFixture(ctx, id, in); err != nil {
		return err
	}
	log.Info().Str("fixture_id", id).Msg("updated copa fixture")
	return nil
}

func (a *Admin) DeleteFixture(ctx context.Context, id string) error {
	if err := a.api.DeleteCopaFixture(ctx, id); err != nil {
		return err
	}
	log.Info().Str("fixture_id", id).Msg("deleted copa fixture")
	return nil
}

func (a *Admin) AddFixtureGoal(ctx context.Context, id string, in models.AddGoal) error {
	if err := fixtures.ValidateAddGoal(in); err != nil {
		return err
	}
	return a.api.AddCopaFixtureGoal(ctx, id, in)
}

func (a *Admin) AddFixtureCard(ctx context.Context, id string, in models.AddCard) error {
	if err := fixtures.ValidateAddCard(in); err != nil {
		return err
	}
	return a.api.AddCopaFixtureCard(ctx, id, in)
}

func (a *Admin) CreateBracket(ctx context.Context, in models.CopaBracketInput) (*models.CopaBracket, error) {
	if err := ValidateBracketInput(in); err != nil {
		return nil, err
	}
	b, err := a.api.CreateCopaBracket(ctx, in)
	if err != nil {
		return nil, err
	}
	log.Info().Str("bracket_id", b.ID).Str("round", string(b.RoundType)).Int("position", b.MatchPosition).Msg("created copa bracket match")
	return b, nil
}

// UpdateBracket edits a knockout match. The current match is loaded so the
// winner can be checked against the teams it will have after the edit.
func (a *Admin) UpdateBracket(ctx context.Context, id string, in models.CopaBracketUpdate) error {
	brackets, err := a.api.ListCopaBrackets(ctx)
	if err != nil {
		return fmt.Errorf("failed to load copa brackets: %w", err)
	}
	var current *models.CopaBracket
	for i := range brackets {
		if brackets[i].ID == id {
			current = &brackets[i]
			break
		}
	}
	if current == nil {
		return apperr.NotFound("bracket match %s", id)
	}

	if err := ValidateBracketUpdate(*current, in); err != nil {
		return err
	}
	if err := a.api.UpdateCopaBracket(ctx, id, in); err != nil {
		return err
	}
	log.Info().Str("bracket_id", id).Msg("updated copa bracket match")
	return nil
}

func (a *Admin) DeleteBracket(ctx context.Context, id string) error {
	if err := a.api.DeleteCopaBracket(ctx, id); err != nil {
		return err
	}
	log.Info().Str("bracket_id", id).Msg("deleted copa bracket match")
	return nil
}

func (a *Admin) AddBracketGoal(ctx context.Context, id string, in models.AddGoal) error {
	if err := fixtures.ValidateAddGoal(in); err != nil {
		return err
	}
	return a.api.AddCopaBracketGoal(ctx, id, in)
}

func (a *Admin) AddBracketCard(ctx context.Context, id string, in models.AddCard) error {
	if err := fixtures.ValidateAddCard(in); err != nil {
		return err
	}
	return a.api.AddCopaBracketCard(ctx, id, in)
}
