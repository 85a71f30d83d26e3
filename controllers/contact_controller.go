package controllers

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/east-hides/eastbackend/dto"
	"github.com/east-hides/eastbackend/mailer"
	"github.com/east-hides/eastbackend/middleware"
	"github.com/east-hides/eastbackend/models"
)

// Shown to the client on any dispatch fault. SMTP detail stays in the logs.
const contactFailure = "Failed to send message"

func CreateContactMessage(cfg mailer.Config, dispatcher mailer.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateContactDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		// Honeypot tripped: report success, send nothing.
		if body.IsSpam() {
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}

		if missing := body.MissingFields(); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields: " + strings.Join(missing, ", ")})
			return
		}

		msg := body.ToModel()

		// Recipient is decided server side; the client never supplies an
		// address.
		recipient := cfg.InfoInbox
		if msg.Topic == models.TopicSales {
			recipient = cfg.SalesInbox
		}

		staff := mailer.ContactStaffEmail(msg)
		err := dispatcher.Send(c.Request.Context(), mailer.Message{
			FromName:    "East Hides — Website",
			To:          recipient,
			ReplyToName: msg.Name,
			ReplyTo:     msg.Email,
			Subject:     staff.Subject,
			Text:        staff.Text,
			HTML:        staff.HTML,
		})

		if err == nil && cfg.ContactConfirm {
			ack := mailer.ContactAckEmail(msg)
			err = dispatcher.Send(c.Request.Context(), mailer.Message{
				FromName: "East Hides — No-Reply",
				To:       msg.Email,
				Subject:  ack.Subject,
				Text:     ack.Text,
				HTML:     ack.HTML,
			})
		}

		if err != nil {
			log.Error("contact dispatch failed",
				"err", err,
				"topic", msg.Topic,
				"requestId", c.GetString(middleware.RequestIDKey))
			c.JSON(http.StatusInternalServerError, gin.H{"error": contactFailure})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
