package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/xavierca1/mailchimp-organizer/internal/config"
	"github.com/xavierca1/mailchimp-organizer/internal/infra/csvio"
	"github.com/xavierca1/mailchimp-organizer/internal/infra/mail"
	"github.com/xavierca1/mailchimp-organizer/internal/infra/metrics"
	"github.com/xavierca1/mailchimp-organizer/internal/infra/queue"
	"github.com/xavierca1/mailchimp-organizer/internal/usecase"
)

// app holds the wiring shared by the CLI commands and the HTTP server.
type app struct {
	Convert *usecase.ConvertFileUseCase
	Queue   *queue.RabbitMQ
}

func newApp(cfg *config.Config, log *zap.Logger, reg prometheus.Registerer) *app {
	a := &app{}

	var notifiers []usecase.ResultNotifier
	if cfg.Mail.Enabled() {
		notifiers = append(notifiers, mail.NewEmailSender(
			cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From, cfg.Mail.To,
		))
	}
	if cfg.Queue.Enabled() {
		rmq, err := queue.NewRabbitMQ(cfg.Queue.URL)
		if err != nil {
			// Events are optional; conversions still run without them.
			log.Warn("queue unavailable, conversion events disabled", zap.Error(err))
		} else {
			a.Queue = rmq
			notifiers = append(notifiers, queue.NewProducer(rmq.Ch))
		}
	}

	a.Convert = usecase.NewConvertFileUseCase(
		csvio.NewFileSource(),
		csvio.NewFileSink(),
		log,
		usecase.RosterOptions{PerProgramTags: cfg.Roster.PerProgramTags},
		notifiers...,
	)
	if reg != nil {
		a.Convert.Recorder = metrics.NewRecorder(reg)
	}
	return a
}

func (a *app) Close() error {
	if a.Queue == nil {
		return nil
	}
	return a.Queue.Close()
}
