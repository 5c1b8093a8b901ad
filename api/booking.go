package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/everylingua/dealership-backend/crm"
	"github.com/everylingua/dealership-backend/internal/middleware"
)

type testRideBookingRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	BikeModel string `json:"bike_model" binding:"required"`
	Date      string `json:"preferred_date" binding:"required"`
	Email     string `json:"email"`
	City      string `json:"city"`
}

func (a *API) testRideBookingHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req testRideBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.crm.BookTestRide(c.Request.Context(), crm.TestRideRequest{
		Name:      req.Name,
		Phone:     req.Phone,
		BikeModel: req.BikeModel,
		Date:      req.Date,
		Email:     req.Email,
		City:      req.City,
	})
	if err != nil {
		logger.ErrorContext(c, "failed to book test ride", "error", err)
		fail(c, http.StatusInternalServerError, "failed to book test ride")
		return
	}

	middleware.CountBooking("test_ride")
	respond(c, http.StatusCreated, gin.H{
		"booking_id": result.BookingID,
		"message":    result.Message,
	})
}

type serviceBookingRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	BikeModel   string `json:"bike_model" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Date        string `json:"preferred_date" binding:"required"`
	Email       string `json:"email"`
}

func (a *API) serviceBookingHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req serviceBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.crm.BookService(c.Request.Context(), crm.ServiceRequest{
		Name:        req.Name,
		Phone:       req.Phone,
		BikeModel:   req.BikeModel,
		ServiceType: req.ServiceType,
		Date:        req.Date,
		Email:       req.Email,
	})
	if err != nil {
		if errors.Is(err, crm.ErrUnknownService) {
			fail(c, http.StatusBadRequest, "unknown service type")
			return
		}
		logger.ErrorContext(c, "failed to book service", "error", err)
		fail(c, http.StatusInternalServerError, "failed to book service")
		return
	}

	middleware.CountBooking("service")
	respond(c, http.StatusCreated, gin.H{
		"booking_id": result.BookingID,
		"message":    result.Message,
	})
}

func (a *API) customerDashboardHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	dashboard, err := a.crm.CustomerDashboard(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		if errors.Is(err, crm.ErrCustomerNotFound) {
			fail(c, http.StatusNotFound, "customer not found")
			return
		}
		logger.ErrorContext(c, "failed to load customer dashboard", "error", err)
		fail(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	respond(c, http.StatusOK, gin.H{
		"customer": dashboard.Customer,
		"bookings": dashboard.Bookings,
	})
}
