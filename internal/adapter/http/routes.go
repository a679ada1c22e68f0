package http

import "github.com/labstack/echo/v4"

// Handlers groups every resource handler mounted by Register.
type Handlers struct {
	Health        *Handler
	Workspaces    *WorkspaceHandler
	Clients       *ClientHandler
	LoanTypes     *LoanTypeHandler
	TaskTemplates *TaskTemplateHandler
	LoanFiles     *LoanFileHandler
	Tasks         *TaskHandler
	Messages      *MessageHandler
	Audit         *AuditHandler
}

// Register mounts the API. idem guards loan file provisioning only; pass nil
// to mount it unguarded.
func Register(e *echo.Echo, h Handlers, idem echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	v1 := e.Group("/v1")
	v1.GET("/health", h.Health.Health)

	v1.POST("/workspaces", h.Workspaces.Create)
	v1.GET("/workspaces", h.Workspaces.List)

	ws := v1.Group("/workspaces/:workspace_id")
	ws.GET("", h.Workspaces.Get)
	ws.PATCH("", h.Workspaces.Update)
	ws.DELETE("", h.Workspaces.Delete)
	ws.POST("/members", h.Workspaces.AddMember)
	ws.GET("/members", h.Workspaces.ListMembers)
	ws.DELETE("/members/:user_id", h.Workspaces.RemoveMember)

	ws.POST("/clients", h.Clients.Create)
	ws.GET("/clients", h.Clients.List)
	ws.GET("/clients/:client_id", h.Clients.Get)
	ws.PATCH("/clients/:client_id", h.Clients.Update)
	ws.DELETE("/clients/:client_id", h.Clients.Delete)
	ws.GET("/clients/:client_id/loan-files", h.Clients.ListLoanFiles)

	ws.POST("/loan-types", h.LoanTypes.Create)
	ws.GET("/loan-types", h.LoanTypes.List)
	ws.GET("/loan-types/:loan_type_id", h.LoanTypes.Get)
	ws.PATCH("/loan-types/:loan_type_id", h.LoanTypes.Update)
	ws.DELETE("/loan-types/:loan_type_id", h.LoanTypes.Delete)
	ws.GET("/loan-types/:loan_type_id/templates", h.LoanTypes.ListTemplates)
	ws.POST("/loan-types/:loan_type_id/templates", h.LoanTypes.AttachTemplate)
	ws.DELETE("/loan-types/:loan_type_id/templates/:template_id", h.LoanTypes.DetachTemplate)

	ws.POST("/task-templates", h.TaskTemplates.Create)
	ws.GET("/task-templates", h.TaskTemplates.List)
	ws.GET("/task-templates/:template_id", h.TaskTemplates.Get)
	ws.PATCH("/task-templates/:template_id", h.TaskTemplates.Update)
	ws.DELETE("/task-templates/:template_id", h.TaskTemplates.Delete)

	if idem != nil {
		ws.POST("/loan-files", h.LoanFiles.Create, idem)
	} else {
		ws.POST("/loan-files", h.LoanFiles.Create)
	}
	ws.GET("/loan-files", h.LoanFiles.List)
	ws.GET("/loan-files/:loan_file_id", h.LoanFiles.Get)
	ws.PATCH("/loan-files/:loan_file_id/status", h.LoanFiles.UpdateStatus)
	ws.PATCH("/loan-files/:loan_file_id/stage", h.LoanFiles.UpdateStage)

	ws.GET("/loan-files/:loan_file_id/tasks", h.Tasks.ListByLoanFile)
	ws.GET("/tasks/:task_id", h.Tasks.Get)
	ws.PATCH("/tasks/:task_id/status", h.Tasks.UpdateStatus)
	ws.PATCH("/tasks/:task_id/assignee", h.Tasks.Reassign)

	ws.POST("/loan-files/:loan_file_id/messages", h.Messages.Create)
	ws.GET("/loan-files/:loan_file_id/messages", h.Messages.List)
	ws.DELETE("/messages/:message_id", h.Messages.Delete)

	ws.GET("/audit", h.Audit.List)
}
