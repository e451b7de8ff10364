package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dchizhov/profcard/internal/config"
	"github.com/dchizhov/profcard/internal/logging"
	"github.com/dchizhov/profcard/internal/models"
	"github.com/dchizhov/profcard/internal/services"
	"github.com/dchizhov/profcard/internal/storage"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// App wires the profile card editor together: it owns the in-memory form
// state (profile + avatar selection) and delegates persistence to the
// profile service. Field edits mutate only the in-memory state; "save"
// commits the text fields, while avatar commands persist eagerly.
type App struct {
	config  *config.Config
	service services.ProfileService
	repos   *storage.Repositories
	log     logging.Logger

	profile models.Profile
	avatar  models.Avatar

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local settings database and builds the editor around it.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, err := storage.InitDatabase(ctx, cfg.DBPath, cfg.DBBusyTimeout)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	color.NoColor = cfg.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))

	svc := services.NewProfileService(repos.Settings, cfg.PhotoDir, log)

	return &App{
		config:  cfg,
		service: svc,
		repos:   repos,
		log:     log,
		avatar:  models.NoAvatar(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run loads the stored profile, shows the card once, and enters the REPL.
func (a *App) Run(ctx context.Context) error {
	defer func() { _ = a.repos.Close() }()

	p, avatar, err := a.service.Load(ctx)
	if err != nil {
		a.log.Error(ctx, "error loading profile", "error", err)
		return err
	}
	a.profile = p
	a.avatar = avatar

	_ = a.Show(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
	return nil
}
