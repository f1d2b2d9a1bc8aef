package wire

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"campusbuzz/internal/chat/repository"
	"campusbuzz/internal/chat/service"
	"campusbuzz/internal/common"
	"campusbuzz/internal/config"
	"campusbuzz/internal/dbmongo"
	"campusbuzz/internal/dbmysql"
	"campusbuzz/internal/dbpostgres"
	"campusbuzz/internal/memstore"
	"campusbuzz/internal/mentorship"
	"campusbuzz/internal/notif"
)

// Application is everything an embedding UI needs.
type Application struct {
	Config        *config.Config
	Logger        *log.Logger
	Medium        common.Medium
	Chat          service.ChatService
	Notifications *notif.NotificationService
	Manager       *notif.NotificationManager
	Mentorship    *mentorship.Directory
	Roster        common.Roster
}

func ProvideConfig() (*config.Config, error) {
	return config.LoadConfig()
}

func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}

	formatter := log.TextFormatter
	switch strings.ToLower(cfg.Logging.Format) {
	case "", "text":
	case "json":
		formatter = log.JSONFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Logging.Format)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		Prefix:          "campusbuzz",
	}), nil
}

// ProvideMedium opens the configured storage backend. The cleanup closes
// whatever connection was opened.
func ProvideMedium(ctx context.Context, cfg *config.Config, logger *log.Logger) (common.Medium, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory, "":
		logger.Info("using in-memory storage", "quota_bytes", cfg.Storage.QuotaBytes)
		return memstore.New(memstore.WithQuota(cfg.Storage.QuotaBytes)), func() {}, nil

	case config.BackendMySQL:
		db, err := dbmysql.NewMySQL(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := dbmysql.Close(db); err != nil {
				logger.Error("failed to close MySQL", "err", err)
			}
		}
		return dbmysql.NewMedium(db), cleanup, nil

	case config.BackendMongo:
		client, err := dbmongo.NewMongoConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to MongoDB", "database", cfg.MongoDB.Database, "collection", cfg.MongoDB.Collection)
		cleanup := func() {
			if err := client.Close(context.Background()); err != nil {
				logger.Error("failed to disconnect MongoDB", "err", err)
			}
		}
		return dbmongo.NewMedium(client.Entries), cleanup, nil

	case config.BackendPostgres:
		repo, err := dbpostgres.New(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to Postgres", "host", cfg.Postgres.Host, "database", cfg.Postgres.Database)
		cleanup := func() {
			if err := repo.Close(); err != nil {
				logger.Error("failed to close Postgres", "err", err)
			}
		}
		return repo, cleanup, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func ProvideMessageStore(medium common.Medium, logger *log.Logger) repository.ConversationStore[common.Message] {
	return repository.NewConversationStore[common.Message](medium, logger)
}

func ProvideDirectMessageStore(medium common.Medium, logger *log.Logger) repository.ConversationStore[common.DirectMessage] {
	return repository.NewDirectConversationStore[common.DirectMessage](medium, logger)
}

func ProvideChatService(
	cfg *config.Config,
	rooms repository.ConversationStore[common.Message],
	directs repository.ConversationStore[common.DirectMessage],
) service.ChatService {
	opts := []service.Option{service.WithTimestampLayout(cfg.Chat.TimestampLayout)}
	if !cfg.Chat.SeedDemoMessages {
		opts = append(opts, service.WithoutDemoSeed())
	}
	return service.NewChatService(rooms, directs, opts...)
}

func ProvideNotificationManager(logger *log.Logger) *notif.NotificationManager {
	manager := notif.NewNotificationManager(logger)
	manager.Subscribe(notif.NewMetricsObserver())
	manager.Subscribe(notif.NewLoggingObserver(logger))
	return manager
}

func ProvideNotificationService(
	cfg *config.Config,
	medium common.Medium,
	manager *notif.NotificationManager,
	logger *log.Logger,
) *notif.NotificationService {
	opts := []notif.Option{notif.WithPreviewLimit(cfg.Notification.PreviewLimit)}
	if !cfg.Notification.SeedDemo {
		opts = append(opts, notif.WithoutDemoSeed())
	}
	return notif.NewNotificationService(medium, manager, logger, opts...)
}

func ProvideMentorship(cfg *config.Config, medium common.Medium, logger *log.Logger) *mentorship.Directory {
	if !cfg.Chat.SeedDemoMessages {
		return mentorship.NewDirectory(medium, logger, mentorship.WithoutDemoSeed())
	}
	return mentorship.NewDirectory(medium, logger)
}
