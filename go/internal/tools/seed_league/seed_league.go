package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mcdev12/ligaveteranos/go/clients/liga_api_client"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
	"github.com/mcdev12/ligaveteranos/go/internal/player"
	"github.com/mcdev12/ligaveteranos/go/internal/teams"
)

// SeedFile mirrors the YAML snapshot of a season's clubs and squads.
type SeedFile struct {
	Teams []SeedTeam `yaml:"teams"`
}

type SeedTeam struct {
	Name     string       `yaml:"name"`
	Division int          `yaml:"division"`
	LogoURL  string       `yaml:"logo_url"`
	Players  []SeedPlayer `yaml:"players"`
}

type SeedPlayer struct {
	Name   string `yaml:"name"`
	Jersey int    `yaml:"jersey"`
}

// TeamsApp and SquadsApp are the dashboard apps the seeder drives.
type TeamsApp interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	CreateTeam(ctx context.Context, in models.TeamInput) (*models.Team, error)
}

type SquadsApp interface {
	Squad(ctx context.Context, teamID string) ([]models.Player, error)
	CreatePlayer(ctx context.Context, in models.PlayerInput) (*models.Player, error)
}

type summary struct {
	teamsCreated, teamsSkipped     int
	playersCreated, playersSkipped int
	errs                           int
}

const (
	defaultBackend  = "http://localhost:8000"
	defaultSeedFile = "seed/league.yaml"
)

// options are the resolved connection settings. Flags win over the
// environment, which is read only when the command runs so .env applies.
type options struct {
	backend  string
	username string
	password string
}

func (o options) resolve() options {
	if o.backend == "" {
		o.backend = envOr("BACKEND_URL", defaultBackend)
	}
	if o.username == "" {
		o.username = os.Getenv("ADMIN_USERNAME")
	}
	if o.password == "" {
		o.password = os.Getenv("ADMIN_PASSWORD")
	}
	return o
}

type runFunc func(ctx context.Context, fsys afero.Fs, path string, opts options) error

func newRootCmd(runSeed runFunc) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "seed_league [FILE]",
		Short: "Create the clubs and squads of a season in the league API",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultSeedFile
			if len(args) == 1 {
				path = args[0]
			}
			return runSeed(cmd.Context(), afero.NewOsFs(), path, opts.resolve())
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&opts.backend, "backend", "", "league API base URL (default $BACKEND_URL or "+defaultBackend+")")
	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "administrator username (default $ADMIN_USERNAME; password from $ADMIN_PASSWORD)")
	return cmd
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .env file: %v\n", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := newRootCmd(run).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, fsys afero.Fs, path string, opts options) error {
	// 1) Load the YAML snapshot
	file, err := loadSeedFile(fsys, path)
	if err != nil {
		return err
	}

	// 2) Sign in as an administrator
	client := liga_api_client.NewLigaApiClient(opts.backend)
	token, err := client.Login(ctx, models.Credentials{
		Username: opts.username,
		Password: opts.password,
	})
	if err != nil {
		return fmt.Errorf("failed to sign in to %s: %w", opts.backend, err)
	}
	admin := client.WithToken(token.AccessToken)

	// 3) Create what is missing and count
	s := seed(ctx, teams.NewApp(admin), player.NewApp(admin), file)

	// 4) Print summary
	fmt.Printf(
		"League seed complete: teams %d created, %d skipped; players %d created, %d skipped; %d errors\n",
		s.teamsCreated, s.teamsSkipped, s.playersCreated, s.playersSkipped, s.errs,
	)
	if s.errs > 0 {
		return fmt.Errorf("%d errors while seeding", s.errs)
	}
	return nil
}

func loadSeedFile(fsys afero.Fs, path string) (SeedFile, error) {
	var file SeedFile
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return file, fmt.Errorf("read seed file: %w", err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("unmarshal YAML: %w", err)
	}
	if len(file.Teams) == 0 {
		return file, fmt.Errorf("seed file %s lists no teams", path)
	}
	return file, nil
}

// seed creates the teams and players of file that the league does not have
// yet. Teams match by name and players by name within their team, both case
// insensitive, so reruns are no-ops.
func seed(ctx context.Context, teamsApp TeamsApp, squads SquadsApp, file SeedFile) summary {
	var s summary

	existing, err := teamsApp.ListTeams(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list teams: %v\n", err)
		s.errs++
		return s
	}
	byName := make(map[string]models.Team, len(existing))
	for _, t := range existing {
		byName[normalize(t.Name)] = t
	}

	for _, st := range file.Teams {
		team, ok := byName[normalize(st.Name)]
		if ok {
			s.teamsSkipped++
		} else {
			in := models.TeamInput{Name: st.Name, Division: st.Division}
			if st.LogoURL != "" {
				in.LogoURL = &st.LogoURL
			}
			created, err := teamsApp.CreateTeam(ctx, in)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error creating team %s: %v\n", st.Name, err)
				s.errs++
				continue
			}
			team = *created
			byName[normalize(team.Name)] = team
			s.teamsCreated++
		}

		seedSquad(ctx, squads, team, st.Players, &s)
	}
	return s
}

func seedSquad(ctx context.Context, squads SquadsApp, team models.Team, players []SeedPlayer, s *summary) {
	if len(players) == 0 {
		return
	}
	squad, err := squads.Squad(ctx, team.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list squad of %s: %v\n", team.Name, err)
		s.errs++
		return
	}
	known := make(map[string]bool, len(squad))
	for _, p := range squad {
		known[normalize(p.Name)] = true
	}

	for _, sp := range players {
		if known[normalize(sp.Name)] {
			s.playersSkipped++
			continue
		}
		in := models.PlayerInput{Name: sp.Name, TeamID: team.ID}
		if sp.Jersey != 0 {
			jersey := sp.Jersey
			in.JerseyNumber = &jersey
		}
		if _, err := squads.CreatePlayer(ctx, in); err != nil {
			fmt.Fprintf(os.Stderr, "error creating player %s (%s): %v\n", sp.Name, team.Name, err)
			s.errs++
			continue
		}
		known[normalize(sp.Name)] = true
		s.playersCreated++
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
