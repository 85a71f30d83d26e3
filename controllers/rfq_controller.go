package controllers

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/east-hides/eastbackend/dto"
	"github.com/east-hides/eastbackend/mailer"
	"github.com/east-hides/eastbackend/middleware"
	"github.com/east-hides/eastbackend/utils"
)

const rfqFailure = "Failed to send request"

func CreateQuoteRequest(cfg mailer.Config, dispatcher mailer.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateRFQDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		if missing := body.MissingFields(); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields: " + strings.Join(missing, ", ")})
			return
		}

		req := body.ToModel()

		// Advisory correlation token; returned to the caller, never stored.
		referenceID := utils.MakeReferenceID(req.ProductReferenceCode)

		staff := mailer.RFQStaffEmail(req, referenceID)
		err := dispatcher.Send(c.Request.Context(), mailer.Message{
			FromName: "East Hides RFQ Bot",
			To:       cfg.SalesInbox,
			Subject:  staff.Subject,
			Text:     staff.Text,
			HTML:     staff.HTML,
		})

		if err == nil && cfg.MailConfirm {
			confirm := mailer.RFQConfirmEmail(req, referenceID)
			err = dispatcher.Send(c.Request.Context(), mailer.Message{
				FromName: "East Hides Sales",
				To:       req.Email,
				Subject:  confirm.Subject,
				Text:     confirm.Text,
				HTML:     confirm.HTML,
			})
		}

		if err != nil {
			log.Error("rfq dispatch failed",
				"err", err,
				"product", req.ProductSlug,
				"referenceId", referenceID,
				"requestId", c.GetString(middleware.RequestIDKey))
			c.JSON(http.StatusInternalServerError, gin.H{"error": rfqFailure})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "referenceId": referenceID})
	}
}
