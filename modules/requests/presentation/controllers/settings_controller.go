package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/iota-uz/servicedesk/modules/requests/services"
	"github.com/iota-uz/servicedesk/pkg/application"
	"github.com/iota-uz/servicedesk/pkg/email"
)

type SettingsController struct {
	app      application.Application
	settings *services.SettingsService
	sender   email.Sender
	basePath string
}

func NewSettingsController(app application.Application, sender email.Sender) application.Controller {
	return &SettingsController{
		app:      app,
		settings: app.Service(services.SettingsService{}).(*services.SettingsService),
		sender:   sender,
		basePath: "/settings",
	}
}

func (c *SettingsController) Key() string {
	return c.basePath
}

func (c *SettingsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/notifications", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/notifications", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/notifications/test", c.SendTest).Methods(http.MethodPost)
}

func (c *SettingsController) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.settings.Get())
}

func (c *SettingsController) Update(w http.ResponseWriter, r *http.Request) {
	var dto services.NotificationSettings
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "SETTINGS_INVALID_JSON", "invalid json")
		return
	}

	dto.Recipient = strings.TrimSpace(dto.Recipient)
	if dto.Enabled && !strings.Contains(dto.Recipient, "@") {
		writeValidationError(w, r, map[string]string{
			"Recipient": "a valid email address is required when notifications are enabled",
		})
		return
	}

	writeJSON(w, http.StatusOK, c.settings.Update(dto))
}

// SendTest fires one synchronous test email to the configured recipient so
// operators can verify the transport without touching a real request.
func (c *SettingsController) SendTest(w http.ResponseWriter, r *http.Request) {
	recipient := c.settings.Recipient()
	if !strings.Contains(recipient, "@") {
		writeValidationError(w, r, map[string]string{
			"Recipient": "a valid email address must be configured first",
		})
		return
	}

	err := c.sender.Send(
		r.Context(),
		recipient,
		"IT Request Manager test notification",
		"This is a test notification from IT Request Manager. If you received this message, email notifications are working.\n",
	)
	if err != nil {
		writeAPIError(w, r, http.StatusBadGateway, "SETTINGS_TEST_SEND_FAILED", "failed to send test email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "test notification sent to " + recipient,
	})
}
