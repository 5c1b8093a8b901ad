package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

var (
	ErrQueryNotFound = errors.New("query not found")
	ErrAgentNotFound = errors.New("agent not found")
)

const assignInterval = 10 * time.Second

// Dispatcher owns the escalation queue and the agent roster, and matches
// pending queries to the best available agent.
type Dispatcher struct {
	mu      sync.Mutex
	agents  []*Agent
	queries []*Query
	logger  *slog.Logger
	nowFn   func() time.Time
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		agents: seedAgents(),
		logger: logger,
		nowFn:  time.Now,
	}
}

// Run assigns pending queries every 10 seconds until the context is
// cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(assignInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.AssignPending()
		}
	}
}

type EscalationResult struct {
	QueryID       string `json:"query_id"`
	Message       string `json:"message"`
	EstimatedWait string `json:"estimated_wait_time"`
}

// Escalate queues a query and immediately attempts an assignment.
func (d *Dispatcher) Escalate(customerID, text string, reason Reason, priority int, language string) *EscalationResult {
	d.mu.Lock()

	q := &Query{
		ID:         fmt.Sprintf("ESC_%s", d.nowFn().Format("20060102150405")),
		CustomerID: customerID,
		Text:       text,
		Reason:     reason,
		Language:   language,
		Priority:   priority,
		Status:     QueryPending,
		CreatedAt:  d.nowFn(),
	}
	d.queries = append(d.queries, q)
	wait := d.estimatedWaitLocked()
	d.mu.Unlock()

	d.AssignPending()

	return &EscalationResult{
		QueryID:       q.ID,
		Message:       "Query escalated to human agent. You will receive a response shortly.",
		EstimatedWait: wait,
	}
}

// AssignPending matches every pending query to the best available agent.
func (d *Dispatcher) AssignPending() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, q := range d.queries {
		if q.Status != QueryPending {
			continue
		}
		agent := d.bestAgentLocked(q)
		if agent == nil {
			continue
		}

		q.AgentID = agent.ID
		q.Status = QueryAssigned
		q.AssignedAt = d.nowFn()
		agent.CurrentChats++
		agent.LastActivity = d.nowFn()

		d.logger.Info("escalated query assigned",
			"query_id", q.ID, "agent_id", agent.ID, "priority", q.Priority)
	}
}

// bestAgentLocked scores available agents: expertise matching the
// escalation reason weighs most, then language, priority and free
// capacity break ties.
func (d *Dispatcher) bestAgentLocked(q *Query) *Agent {
	var best *Agent
	bestScore := -1.0

	for _, a := range d.agents {
		if a.Status != StatusAvailable || a.CurrentChats >= a.MaxChats {
			continue
		}

		score := 0.0
		for _, token := range strings.Split(string(q.Reason), "_") {
			for _, exp := range a.Expertise {
				if strings.Contains(exp, token) {
					score += 2
					break
				}
			}
		}
		for _, lang := range a.Languages {
			if lang == q.Language {
				score++
				break
			}
		}
		if q.Priority >= 4 {
			score++
		}
		score += float64(a.MaxChats-a.CurrentChats) * 0.5

		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

type AgentResponse struct {
	QueryID    string    `json:"query_id"`
	Response   string    `json:"response"`
	AgentName  string    `json:"agent_name"`
	ResolvedAt time.Time `json:"response_time"`
}

// Response returns the agent's answer for a resolved query.
func (d *Dispatcher) Response(queryID string) (*AgentResponse, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, q := range d.queries {
		if q.ID == queryID && q.Status == QueryResolved {
			name := "Unknown"
			for _, a := range d.agents {
				if a.ID == q.AgentID {
					name = a.Name
					break
				}
			}
			return &AgentResponse{
				QueryID:    q.ID,
				Response:   q.Response,
				AgentName:  name,
				ResolvedAt: q.ResolvedAt,
			}, nil
		}
	}
	return nil, ErrQueryNotFound
}

// SetStatus updates an agent's availability.
func (d *Dispatcher) SetStatus(agentID string, status Status) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, a := range d.agents {
		if a.ID == agentID {
			a.Status = status
			a.LastActivity = d.nowFn()
			return nil
		}
	}
	return ErrAgentNotFound
}

// Resolve stores the agent's response and frees a chat slot.
func (d *Dispatcher) Resolve(queryID, response string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, q := range d.queries {
		if q.ID != queryID {
			continue
		}
		q.Status = QueryResolved
		q.Response = response
		q.ResolvedAt = d.nowFn()

		for _, a := range d.agents {
			if a.ID == q.AgentID && a.CurrentChats > 0 {
				a.CurrentChats--
				break
			}
		}
		return nil
	}
	return ErrQueryNotFound
}

type AgentSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Status       Status   `json:"status"`
	CurrentChats int      `json:"current_chats"`
	Expertise    []string `json:"expertise"`
}

type DashboardData struct {
	TotalAgents     int            `json:"total_agents"`
	AvailableAgents int            `json:"available_agents"`
	BusyAgents      int            `json:"busy_agents"`
	TotalQueries    int            `json:"total_queries"`
	PendingQueries  int            `json:"pending_queries"`
	ResolvedQueries int            `json:"resolved_queries"`
	Agents          []AgentSummary `json:"agents"`
}

// Dashboard summarizes the roster and the queue.
func (d *Dispatcher) Dashboard() DashboardData {
	d.mu.Lock()
	defer d.mu.Unlock()

	data := DashboardData{TotalAgents: len(d.agents)}
	for _, a := range d.agents {
		switch a.Status {
		case StatusAvailable:
			data.AvailableAgents++
		case StatusBusy:
			data.BusyAgents++
		}
		data.Agents = append(data.Agents, AgentSummary{
			ID:           a.ID,
			Name:         a.Name,
			Status:       a.Status,
			CurrentChats: a.CurrentChats,
			Expertise:    a.Expertise,
		})
	}
	for _, q := range d.queries {
		data.TotalQueries++
		switch q.Status {
		case QueryPending:
			data.PendingQueries++
		case QueryResolved:
			data.ResolvedQueries++
		}
	}
	return data
}

func (d *Dispatcher) estimatedWaitLocked() string {
	available := 0
	for _, a := range d.agents {
		if a.Status == StatusAvailable && a.CurrentChats < a.MaxChats {
			available++
		}
	}
	pending := 0
	for _, q := range d.queries {
		if q.Status == QueryPending {
			pending++
		}
	}

	switch {
	case available == 0:
		return "15-30 minutes"
	case pending == 0:
		return "2-5 minutes"
	default:
		wait := pending * 10 / available
		return fmt.Sprintf("%d-%d minutes", wait, wait*3/2)
	}
}
