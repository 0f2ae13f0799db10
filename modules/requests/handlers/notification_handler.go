package handlers

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/servicedesk/modules/requests/domain/aggregates/request"
	"github.com/iota-uz/servicedesk/modules/requests/services"
	"github.com/iota-uz/servicedesk/pkg/application"
	"github.com/iota-uz/servicedesk/pkg/email"
)

var (
	notificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "servicedesk_notifications_sent_total",
		Help: "Notification emails handed to the transport, by event kind.",
	}, []string{"kind"})
	notificationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "servicedesk_notifications_failed_total",
		Help: "Notification emails the transport rejected, by event kind.",
	}, []string{"kind"})
)

// RequestEventsHandler turns request lifecycle events into email
// notifications. Delivery is fire and forget: a failed send is logged and
// counted, never surfaced to the operation that triggered it.
type RequestEventsHandler struct {
	settings *services.SettingsService
	sender   email.Sender
	logger   *logrus.Logger
}

func RegisterRequestEventHandlers(app application.Application, sender email.Sender) *RequestEventsHandler {
	handler := &RequestEventsHandler{
		settings: app.Service(services.SettingsService{}).(*services.SettingsService),
		sender:   sender,
		logger:   app.Logger(),
	}
	app.EventPublisher().Subscribe(handler.onRequestCreated)
	app.EventPublisher().Subscribe(handler.onStatusChanged)
	return handler
}

func (h *RequestEventsHandler) onRequestCreated(event *request.CreatedEvent) {
	r := event.Result
	subject := fmt.Sprintf("New IT request %s (%s)", r.ID(), r.Priority())
	body := fmt.Sprintf(
		"A new IT request has been submitted.\n\n"+
			"ID: %s\nCategory: %s\nPriority: %s\nStatus: %s\nCreated On: %s\n\n%s\n",
		r.ID(), r.Category(), r.Priority(), r.Status(), r.CreatedOn(), r.Description(),
	)
	h.deliver("created", subject, body)
}

func (h *RequestEventsHandler) onStatusChanged(event *request.StatusChangedEvent) {
	r := event.Result
	subject := fmt.Sprintf("Request %s is now %s", r.ID(), event.NewStatus)
	body := fmt.Sprintf(
		"The status of request %s changed from %s to %s.\n\n"+
			"Category: %s\nPriority: %s\n\n%s\n",
		r.ID(), event.OldStatus, event.NewStatus,
		r.Category(), r.Priority(), r.Description(),
	)
	h.deliver("status_changed", subject, body)
}

func (h *RequestEventsHandler) deliver(kind, subject, body string) {
	if !h.settings.IsEnabled() {
		return
	}
	recipient := h.settings.Recipient()
	if recipient == "" {
		return
	}

	go func() {
		if err := h.sender.Send(context.Background(), recipient, subject, body); err != nil {
			notificationsFailed.WithLabelValues(kind).Inc()
			h.logger.WithError(err).WithFields(logrus.Fields{
				"kind":      kind,
				"recipient": recipient,
			}).Warn("failed to send notification email")
			return
		}
		notificationsSent.WithLabelValues(kind).Inc()
	}()
}
