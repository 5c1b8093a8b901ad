package agent

import (
	"errors"
	"log/slog"
	"testing"
)

func TestEscalateAssignsMatchingAgent(t *testing.T) {
	d := NewDispatcher(slog.Default())

	result := d.Escalate("cust_1", "can you give me a better price?", ReasonPriceNegotiation, 3, "en")
	if result.QueryID == "" {
		t.Fatal("expected a query id")
	}

	d.mu.Lock()
	q := d.queries[0]
	d.mu.Unlock()

	if q.Status != QueryAssigned {
		t.Fatalf("query status = %s, want assigned", q.Status)
	}
	// Amit Patel is the only agent with price negotiation expertise.
	if q.AgentID != "agent_3" {
		t.Errorf("assigned to %s, want agent_3", q.AgentID)
	}
}

func TestEscalateNoAgentsAvailable(t *testing.T) {
	d := NewDispatcher(slog.Default())
	for _, a := range d.agents {
		a.Status = StatusOffline
	}

	result := d.Escalate("cust_1", "help", ReasonComplexQuery, 3, "en")
	if result.EstimatedWait != "15-30 minutes" {
		t.Errorf("wait = %q, want 15-30 minutes", result.EstimatedWait)
	}

	d.mu.Lock()
	status := d.queries[0].Status
	d.mu.Unlock()
	if status != QueryPending {
		t.Errorf("query status = %s, want pending", status)
	}
}

func TestResolveFreesAgentSlot(t *testing.T) {
	d := NewDispatcher(slog.Default())

	result := d.Escalate("cust_1", "my bike is broken", ReasonTechnicalIssue, 4, "en")

	d.mu.Lock()
	agentID := d.queries[0].AgentID
	var before int
	for _, a := range d.agents {
		if a.ID == agentID {
			before = a.CurrentChats
		}
	}
	d.mu.Unlock()
	if before != 1 {
		t.Fatalf("agent chats = %d, want 1", before)
	}

	if err := d.Resolve(result.QueryID, "we will send a mechanic"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	d.mu.Lock()
	for _, a := range d.agents {
		if a.ID == agentID && a.CurrentChats != 0 {
			t.Errorf("agent chats after resolve = %d, want 0", a.CurrentChats)
		}
	}
	d.mu.Unlock()
}

func TestResponseLifecycle(t *testing.T) {
	d := NewDispatcher(slog.Default())

	result := d.Escalate("cust_1", "custom seat options?", ReasonCustomRequirements, 2, "en")

	if _, err := d.Response(result.QueryID); !errors.Is(err, ErrQueryNotFound) {
		t.Fatalf("response before resolve err = %v, want ErrQueryNotFound", err)
	}

	if err := d.Resolve(result.QueryID, "yes, we do custom seats"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	resp, err := d.Response(result.QueryID)
	if err != nil {
		t.Fatalf("response: %v", err)
	}
	if resp.Response != "yes, we do custom seats" {
		t.Errorf("response = %q", resp.Response)
	}
	if resp.AgentName == "" || resp.AgentName == "Unknown" {
		t.Errorf("agent name = %q, want a seeded agent", resp.AgentName)
	}
}

func TestSetStatus(t *testing.T) {
	d := NewDispatcher(slog.Default())

	if err := d.SetStatus("agent_2", StatusBreak); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := d.SetStatus("agent_99", StatusBusy); !errors.Is(err, ErrAgentNotFound) {
		t.Errorf("err = %v, want ErrAgentNotFound", err)
	}

	dash := d.Dashboard()
	if dash.TotalAgents != 4 {
		t.Errorf("total agents = %d, want 4", dash.TotalAgents)
	}
	if dash.AvailableAgents != 3 {
		t.Errorf("available agents = %d, want 3", dash.AvailableAgents)
	}
}

func TestShouldEscalate(t *testing.T) {
	tests := []struct {
		query  string
		want   bool
		reason Reason
	}{
		{"I want to speak to human", true, ReasonCustomerComplaint},
		{"can I get a discount on the Classic 350?", true, ReasonPriceNegotiation},
		{"my bike is not working", true, ReasonTechnicalIssue},
		{"this is an emergency, I am stranded", true, ReasonEmergency},
		{"what is the mileage of the Activa?", false, ""},
	}

	for _, tt := range tests {
		got, reason := ShouldEscalate(tt.query)
		if got != tt.want || reason != tt.reason {
			t.Errorf("ShouldEscalate(%q) = %v, %q; want %v, %q", tt.query, got, reason, tt.want, tt.reason)
		}
	}
}
