package bootstrap

import (
	"context"
	"fmt"

	"studywise-client/internal/api"
	"studywise-client/internal/config"
	"studywise-client/internal/pkg/logger"
	"studywise-client/internal/session"
	"studywise-client/internal/storage"
	"studywise-client/internal/stub"
)

// Container holds what a CLI run needs. It is built once in main and passed
// down; nothing in here is global.
type Container struct {
	Config  *config.Config
	Logger  *logger.ZapLogger
	Storage storage.Storage
	Session *session.Session
	Client  *api.Client
}

// ClientOptions adjusts NewContainer for a single run.
type ClientOptions struct {
	Host     string // overrides cfg.API.Host when set
	Prompter session.Prompter
}

func NewContainer(ctx context.Context, cfg *config.Config, opts ClientOptions) (*Container, error) {
	// 1. Logger (file only)
	sysLogger := logger.NewIsolatedLogger(cfg.App.LogFilePath)

	// 2. Local storage and session
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	sess, err := session.Open(ctx, store, opts.Prompter, sysLogger)
	if err != nil {
		return nil, err
	}

	// 3. API client
	apiCfg := cfg.API
	if opts.Host != "" {
		apiCfg.Host = opts.Host
	}
	client := api.New(apiCfg, sess, api.WithLogger(sysLogger))
	sysLogger.Debug("bootstrap", "api client ready", map[string]interface{}{"base_url": client.BaseURL()})

	return &Container{
		Config:  cfg,
		Logger:  sysLogger,
		Storage: store,
		Session: sess,
		Client:  client,
	}, nil
}

// StubContainer wires the local backend.
type StubContainer struct {
	Logger logger.ILogger
	Store  *stub.Store

	AIController        stub.IAIController
	UploadController    stub.IUploadController
	QuizController      stub.IQuizController
	PlanController      stub.IPlanController
	DashboardController stub.IDashboardController
	TimetableController stub.ITimetableController
	NoteController      stub.INoteController
}

func NewStubContainer(cfg *config.Config, log logger.ILogger) *StubContainer {
	if log == nil {
		log = logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	}

	store := stub.NewStore()
	studyService := stub.NewStudyService(store, stub.Options{
		OllamaAvailable: cfg.Stub.OllamaAvailable,
		CloudConfigured: cfg.Stub.CloudConfigured,
	}, log)

	return &StubContainer{
		Logger: log,
		Store:  store,

		AIController:        stub.NewAIController(studyService),
		UploadController:    stub.NewUploadController(studyService),
		QuizController:      stub.NewQuizController(studyService),
		PlanController:      stub.NewPlanController(studyService),
		DashboardController: stub.NewDashboardController(studyService),
		TimetableController: stub.NewTimetableController(studyService),
		NoteController:      stub.NewNoteController(studyService),
	}
}
