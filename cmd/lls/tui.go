package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/arunvs830/lls-app-sub000/cmd/lls/ui"
	"github.com/arunvs830/lls-app-sub000/internal/api"
	"github.com/arunvs830/lls-app-sub000/internal/poll"
)

// runTUI opens the interactive interface and keeps the unread badges
// fresh in the background. The poller lives exactly as long as the
// program: it stops when the TUI exits, never after.
func runTUI() error {
	app := ui.NewApp(client, store, cfg, logger)
	program := tea.NewProgram(app, tea.WithAltScreen())

	badges := poll.New(cfg.PollInterval, func(ctx context.Context) error {
		user, ok := store.Principal()
		if !ok {
			// Anonymous: nothing to count, try again next tick.
			return nil
		}
		userType := string(user.Role)

		var unreadMessages, unreadNotifications int
		err := api.FetchAll(ctx,
			func(ctx context.Context) error {
				var err error
				unreadMessages, err = client.Messages().UnreadCount(ctx, userType, user.ID)
				return err
			},
			func(ctx context.Context) error {
				var err error
				unreadNotifications, err = client.Notifications().UnreadCount(ctx, userType, user.ID)
				return err
			},
		)
		if err != nil {
			return err
		}
		program.Send(ui.BadgeMsg{
			UnreadMessages:      unreadMessages,
			UnreadNotifications: unreadNotifications,
		})
		return nil
	}, func(err error) {
		// Stale badges are tolerable; the next tick retries.
		logger.Debug("badge poll", zap.Error(err))
	})

	badges.Start(context.Background())
	defer badges.Stop()

	_, err := program.Run()
	return err
}
