package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/everylingua/dealership-backend/agent"
	"github.com/everylingua/dealership-backend/internal/middleware"
)

type chatRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
}

func (a *API) chatHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "message is required")
		return
	}

	escalate, reason := agent.ShouldEscalate(req.Message)

	answer, err := a.assistant.Generate(c.Request.Context(), req.Message, a.assistantContext(req.Language))
	if err != nil {
		logger.ErrorContext(c, "assistant request failed", "error", err)
		middleware.CountChat("upstream_error")
		fail(c, http.StatusBadGateway, "assistant is temporarily unavailable")
		return
	}

	body := gin.H{"response": answer}
	if escalate {
		middleware.CountChat("escalated")
		body["escalation_suggested"] = true
		body["escalation_reason"] = reason
	} else {
		middleware.CountChat("ok")
	}
	respond(c, http.StatusOK, body)
}

type voiceCommandRequest struct {
	Command string `json:"command" binding:"required"`
}

// voiceCommandHandler maps short spoken commands to front-end actions.
// Anything that is not a recognised command falls through to the
// assistant as a normal chat message.
func (a *API) voiceCommandHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req voiceCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "command is required")
		return
	}

	cmd := strings.ToLower(req.Command)
	switch {
	case strings.Contains(cmd, "test ride"):
		respond(c, http.StatusOK, gin.H{
			"action":   "open_test_ride_form",
			"response": "Opening the test ride booking form.",
		})
	case strings.Contains(cmd, "service"):
		respond(c, http.StatusOK, gin.H{
			"action":   "show_services",
			"response": "Here are our service packages.",
			"services": a.catalog.Services(),
		})
	case strings.Contains(cmd, "bike") || strings.Contains(cmd, "scooter"):
		respond(c, http.StatusOK, gin.H{
			"action":   "show_bikes",
			"response": "Here are the bikes we have in our showroom.",
			"bikes":    a.catalog.Bikes(),
		})
	case strings.Contains(cmd, "dealer") || strings.Contains(cmd, "showroom") || strings.Contains(cmd, "location"):
		respond(c, http.StatusOK, gin.H{
			"action":      "show_dealerships",
			"response":    "Here are our showroom locations.",
			"dealerships": a.catalog.Dealerships(),
		})
	default:
		answer, err := a.assistant.Generate(c.Request.Context(), req.Command, a.assistantContext(""))
		if err != nil {
			logger.ErrorContext(c, "assistant request failed", "error", err)
			fail(c, http.StatusBadGateway, "assistant is temporarily unavailable")
			return
		}
		respond(c, http.StatusOK, gin.H{"action": "chat", "response": answer})
	}
}

// geminiKeyHandler exists because an earlier front end fetched the
// upstream API key directly. The credential never leaves the server;
// chat goes through /api/chat.
func (a *API) geminiKeyHandler(c *gin.Context) {
	fail(c, http.StatusGone, "this endpoint has been removed; use /api/chat")
}

// assistantContext summarises the showroom inventory for the model so
// answers stay grounded in what is actually for sale.
func (a *API) assistantContext(language string) string {
	var b strings.Builder
	b.WriteString("You are a helpful assistant for EveryLingua Motors, a motorcycle dealership in India.\n")
	if language != "" && language != "en" {
		fmt.Fprintf(&b, "Reply in the language with ISO code %q.\n", language)
	}

	b.WriteString("\nBikes available:\n")
	for _, bike := range a.catalog.Bikes() {
		stock := "in stock"
		if !bike.InStock {
			stock = "out of stock"
		}
		fmt.Fprintf(&b, "- %s %s (%s): Rs %.0f, %d cc, %.0f km/l, %s\n",
			bike.Brand, bike.Name, bike.Category, bike.Price, bike.EngineCC, bike.Mileage, stock)
	}

	b.WriteString("\nService packages:\n")
	for _, s := range a.catalog.Services() {
		fmt.Fprintf(&b, "- %s: Rs %.0f, %d hours. %s\n", s.Name, s.Price, s.DurationHours, s.Description)
	}

	b.WriteString("\nShowrooms:\n")
	for _, d := range a.catalog.Dealerships() {
		fmt.Fprintf(&b, "- %s, %s, %s. Phone %s\n", d.Name, d.Address, d.City, d.Phone)
	}

	b.WriteString("\nCustomers can book test rides and services through the website. Financing is available from 12.5% annual interest.")
	return b.String()
}
