package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/everylingua/dealership-backend/agent"
)

type escalateRequest struct {
	CustomerID string `json:"customer_id"`
	Query      string `json:"query" binding:"required"`
	Reason     string `json:"reason"`
	Priority   int    `json:"priority"`
	Language   string `json:"language"`
}

func (a *API) escalateHandler(c *gin.Context) {
	var req escalateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "query is required")
		return
	}

	reason := agent.Reason(req.Reason)
	if reason == "" {
		if ok, detected := agent.ShouldEscalate(req.Query); ok {
			reason = detected
		} else {
			reason = agent.ReasonComplexQuery
		}
	}
	if req.Priority == 0 {
		req.Priority = 3
	}
	if req.Language == "" {
		req.Language = "en"
	}

	result := a.dispatcher.Escalate(req.CustomerID, req.Query, reason, req.Priority, req.Language)
	respond(c, http.StatusOK, gin.H{
		"query_id":            result.QueryID,
		"message":             result.Message,
		"estimated_wait_time": result.EstimatedWait,
	})
}

func (a *API) agentResponseHandler(c *gin.Context) {
	resp, err := a.dispatcher.Response(c.Param("queryId"))
	if err != nil {
		if errors.Is(err, agent.ErrQueryNotFound) {
			// Pending and assigned queries have no response yet.
			respond(c, http.StatusOK, gin.H{"status": "waiting"})
			return
		}
		fail(c, http.StatusInternalServerError, "failed to load response")
		return
	}

	respond(c, http.StatusOK, gin.H{
		"status":        "resolved",
		"query_id":      resp.QueryID,
		"response":      resp.Response,
		"agent_name":    resp.AgentName,
		"response_time": resp.ResolvedAt,
	})
}

func (a *API) agentDashboardHandler(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"dashboard": a.dispatcher.Dashboard()})
}

type agentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (a *API) agentStatusHandler(c *gin.Context) {
	var req agentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "status is required")
		return
	}
	if !agent.ValidStatus(req.Status) {
		fail(c, http.StatusBadRequest, "invalid status")
		return
	}

	if err := a.dispatcher.SetStatus(c.Param("agentId"), agent.Status(req.Status)); err != nil {
		fail(c, http.StatusNotFound, "agent not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "status updated"})
}

type agentResolveRequest struct {
	Response string `json:"response" binding:"required"`
}

func (a *API) agentResolveHandler(c *gin.Context) {
	var req agentResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "response is required")
		return
	}

	if err := a.dispatcher.Resolve(c.Param("queryId"), req.Response); err != nil {
		fail(c, http.StatusNotFound, "query not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "query resolved"})
}
