// Package agent routes customer queries the assistant cannot handle to
// human agents. The queue and roster are in-process and ephemeral; a
// restart clears pending escalations.
package agent

import (
	"strings"
	"time"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusBusy      Status = "busy"
	StatusOffline   Status = "offline"
	StatusBreak     Status = "break"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusAvailable, StatusBusy, StatusOffline, StatusBreak:
		return true
	}
	return false
}

type Reason string

const (
	ReasonTechnicalIssue     Reason = "technical_issue"
	ReasonComplexQuery       Reason = "complex_query"
	ReasonCustomerComplaint  Reason = "customer_complaint"
	ReasonPriceNegotiation   Reason = "price_negotiation"
	ReasonCustomRequirements Reason = "custom_requirements"
	ReasonLanguageBarrier    Reason = "language_barrier"
	ReasonEmergency          Reason = "emergency"
)

type Agent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Expertise    []string  `json:"expertise"`
	Languages    []string  `json:"languages"`
	Status       Status    `json:"status"`
	CurrentChats int       `json:"current_chats"`
	MaxChats     int       `json:"max_chats"`
	LastActivity time.Time `json:"last_activity"`
}

type QueryStatus string

const (
	QueryPending  QueryStatus = "pending"
	QueryAssigned QueryStatus = "assigned"
	QueryResolved QueryStatus = "resolved"
)

type Query struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Text       string      `json:"query"`
	Reason     Reason      `json:"reason"`
	Language   string      `json:"language"`
	Priority   int         `json:"priority"`
	AgentID    string      `json:"agent_id,omitempty"`
	Status     QueryStatus `json:"status"`
	Response   string      `json:"response,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	AssignedAt time.Time   `json:"assigned_at,omitempty"`
	ResolvedAt time.Time   `json:"resolved_at,omitempty"`
}

func seedAgents() []*Agent {
	now := time.Now()
	return []*Agent{
		{
			ID: "agent_1", Name: "Rajesh Kumar",
			Email: "rajesh@everylingua.com", Phone: "+91-9876543211",
			Expertise: []string{"sales", "test_rides", "finance"},
			Languages: []string{"hi", "en", "mr"},
			Status:    StatusAvailable, MaxChats: 5, LastActivity: now,
		},
		{
			ID: "agent_2", Name: "Priya Sharma",
			Email: "priya@everylingua.com", Phone: "+91-9876543212",
			Expertise: []string{"service", "maintenance", "complaints"},
			Languages: []string{"en", "hi", "ta"},
			Status:    StatusAvailable, MaxChats: 4, LastActivity: now,
		},
		{
			ID: "agent_3", Name: "Amit Patel",
			Email: "amit@everylingua.com", Phone: "+91-9876543213",
			Expertise: []string{"sales", "custom_requirements", "price_negotiation"},
			Languages: []string{"en", "hi", "gu"},
			Status:    StatusAvailable, MaxChats: 6, LastActivity: now,
		},
		{
			ID: "agent_4", Name: "Sneha Reddy",
			Email: "sneha@everylingua.com", Phone: "+91-9876543214",
			Expertise: []string{"service", "emergency", "complaints"},
			Languages: []string{"en", "hi", "te", "kn"},
			Status:    StatusAvailable, MaxChats: 4, LastActivity: now,
		},
	}
}

// ShouldEscalate decides whether a customer message needs a human and
// why, using the same keyword heuristics the assistant front end relies
// on.
func ShouldEscalate(query string) (bool, Reason) {
	q := strings.ToLower(query)

	groups := []struct {
		keywords []string
		reason   Reason
	}{
		{[]string{"speak to human", "talk to agent", "customer service", "complaint", "not satisfied", "wrong information"}, ReasonCustomerComplaint},
		{[]string{"negotiate", "discount", "bargain", "lower price", "best price"}, ReasonPriceNegotiation},
		{[]string{"emergency", "urgent", "accident", "stranded", "danger"}, ReasonEmergency},
		{[]string{"not working", "broken", "malfunction", "defect", "damage"}, ReasonTechnicalIssue},
		{[]string{"custom", "modify", "special requirement"}, ReasonCustomRequirements},
	}

	for _, g := range groups {
		for _, kw := range g.keywords {
			if strings.Contains(q, kw) {
				return true, g.reason
			}
		}
	}
	return false, ""
}
