package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/everylingua/dealership-backend/catalog"
)

func (a *API) bikesHandler(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"bikes": a.catalog.Bikes()})
}

func (a *API) servicesHandler(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"services": a.catalog.Services()})
}

func (a *API) dealershipsHandler(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"dealerships": a.catalog.Dealerships()})
}

func (a *API) searchBikesHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		fail(c, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	results := a.catalog.Search(query)
	if results == nil {
		results = []catalog.Bike{}
	}
	respond(c, http.StatusOK, gin.H{"bikes": results, "count": len(results)})
}

type emiRequest struct {
	Price        float64  `json:"price" binding:"required,gt=0"`
	DownPayment  *float64 `json:"down_payment"`
	TenureMonths int      `json:"tenure_months"`
	InterestRate float64  `json:"interest_rate"`
}

func (a *API) emiHandler(c *gin.Context) {
	var req emiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	// Defaults: 20% down, 36 months, the standard financing rate.
	downPayment := req.Price * 0.20
	if req.DownPayment != nil {
		downPayment = *req.DownPayment
	}
	if downPayment < 0 || downPayment >= req.Price {
		fail(c, http.StatusBadRequest, "down payment must be between 0 and the bike price")
		return
	}

	tenure := req.TenureMonths
	if tenure == 0 {
		tenure = 36
	}
	if tenure < 0 {
		fail(c, http.StatusBadRequest, "tenure_months must be positive")
		return
	}

	rate := req.InterestRate
	if rate == 0 {
		rate = catalog.DefaultInterestRate
	}

	quote := catalog.CalculateEMI(req.Price, downPayment, tenure, rate)
	respond(c, http.StatusOK, gin.H{"emi": quote, "tenure_months": tenure})
}
