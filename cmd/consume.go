package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/events"
)

func newConsumeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "consume",
		Short: "Consume cleaner and booking change events and refresh next availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return newEventConsumer(a).Run(ctx)
		},
	}
}

func newEventConsumer(a *app) *events.Consumer {
	reader := events.NewReader(events.Config{
		Brokers: a.cfg.Kafka.Brokers,
		Topic:   a.cfg.Kafka.Topic,
		GroupID: a.cfg.Kafka.GroupID,
	})
	a.log.Info("Consuming topic %s as group %s from %s", a.cfg.Kafka.Topic, a.cfg.Kafka.GroupID, a.cfg.Kafka.Brokers)

	return events.NewConsumer(reader, a.refresh, a.bookingRepo, a.metrics, a.log)
}
