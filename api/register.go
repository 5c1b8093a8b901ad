package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/everylingua/dealership-backend/internal/middleware"
	"github.com/everylingua/dealership-backend/otp"
)

type sendOTPRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Method     string `json:"method" binding:"required"`
}

func (a *API) sendOTPHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "identifier and method are required")
		return
	}

	if err := a.otp.Send(c.Request.Context(), req.Identifier, req.Method); err != nil {
		if errors.Is(err, otp.ErrInvalidMethod) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.ErrorContext(c, "failed to send otp", "error", err)
		fail(c, http.StatusInternalServerError, "failed to send OTP")
		return
	}

	respond(c, http.StatusOK, gin.H{"message": "OTP sent via " + req.Method})
}

type verifyOTPRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	OTP        string `json:"otp" binding:"required"`
}

func (a *API) verifyOTPHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "identifier and otp are required")
		return
	}

	if err := a.otp.Verify(c.Request.Context(), req.Identifier, req.OTP); err != nil {
		switch {
		case errors.Is(err, otp.ErrNotFound),
			errors.Is(err, otp.ErrExpired),
			errors.Is(err, otp.ErrTooManyAttempts),
			errors.Is(err, otp.ErrInvalidCode):
			fail(c, http.StatusBadRequest, err.Error())
		default:
			logger.ErrorContext(c, "failed to verify otp", "error", err)
			fail(c, http.StatusInternalServerError, "failed to verify OTP")
		}
		return
	}

	respond(c, http.StatusOK, gin.H{"message": "registration verified"})
}

func (a *API) resendOTPHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "identifier and method are required")
		return
	}

	if err := a.otp.Resend(c.Request.Context(), req.Identifier, req.Method); err != nil {
		switch {
		case errors.Is(err, otp.ErrNoPending), errors.Is(err, otp.ErrInvalidMethod):
			fail(c, http.StatusBadRequest, err.Error())
		default:
			logger.ErrorContext(c, "failed to resend otp", "error", err)
			fail(c, http.StatusInternalServerError, "failed to resend OTP")
		}
		return
	}

	respond(c, http.StatusOK, gin.H{"message": "OTP resent via " + req.Method})
}
