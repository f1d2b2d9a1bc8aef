//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"campusbuzz/internal/directory"
)

func InitializeApplication(ctx context.Context) (*Application, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideMedium,
		ProvideMessageStore,
		ProvideDirectMessageStore,
		ProvideChatService,
		ProvideNotificationManager,
		ProvideNotificationService,
		ProvideMentorship,
		directory.NewRoster,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
