package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	method string
	path   string
}

var auditActions = map[auditRoute]struct {
	action   domain.AuditAction
	resource string
}{
	{http.MethodPost, "/api/v1/session/connect"}:   {domain.AuditActionConnect, "session"},
	{http.MethodDelete, "/api/v1/session"}:         {domain.AuditActionDisconnect, "session"},
	{http.MethodPost, "/api/v1/adoption"}:          {domain.AuditActionAdopt, "pet"},
	{http.MethodPost, "/api/v1/breeding"}:          {domain.AuditActionBreed, "pet"},
	{http.MethodPost, "/api/v1/sign-in"}:           {domain.AuditActionSignIn, "sign_in"},
	{http.MethodPost, "/api/v1/pets/:id/transfer"}: {domain.AuditActionTransfer, "pet"},
	{http.MethodPut, "/api/v1/contracts"}:          {domain.AuditActionUpdateContracts, "contracts"},
}

// AuditLog creates an audit middleware that logs accepted write operations.
// Routes are matched on their registered pattern.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		route, ok := auditActions[auditRoute{c.Request.Method, c.FullPath()}]
		if !ok {
			return
		}

		var sessionID *uuid.UUID
		if id := SessionID(c); id != uuid.Nil {
			sessionID = &id
		}
		resourceID := c.Param("id")

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			SessionID:    sessionID,
			Account:      c.GetString(CtxAccount),
			Action:       route.action,
			ResourceType: route.resource,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}
