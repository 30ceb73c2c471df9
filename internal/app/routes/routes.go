package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mathspoint/mathspoint/internal/app/controllers"
	"github.com/mathspoint/mathspoint/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	portalController *controllers.PortalController,
	announcementController *controllers.AnnouncementController,
	assignmentController *controllers.AssignmentController,
	submissionController *controllers.SubmissionController,
	contactController *controllers.ContactController,
	sessionController *controllers.SessionController,
	pdfController *controllers.PDFController,
	preferenceController *controllers.PreferenceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/announcements", announcementController.GetBoard)
	v1.GET("/announcements/:id", announcementController.GetByID)
	v1.POST("/contact", contactController.Submit)

	portal := v1.Group("/portal")
	{
		portal.POST("/admin/login", portalController.AdminLogin)
		portal.POST("/student/login", portalController.StudentLogin)
		portal.GET("/password-hint", portalController.PasswordHint)
	}

	// Login auto-fill storage. Public by design: the key is chosen by the
	// caller and the payload holds nothing the login form did not already.
	preferences := v1.Group("/preferences")
	{
		preferences.PUT("/:userKey", preferenceController.Save)
		preferences.GET("/:userKey", preferenceController.Get)
		preferences.DELETE("/:userKey", preferenceController.Clear)
	}

	// --- Admin portal ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.AdminOnly())
	{
		admin.POST("/announcements", announcementController.Create)
		admin.PUT("/announcements/:id", announcementController.Update)
		admin.PUT("/announcements/:id/pin", announcementController.SetPinned)
		admin.DELETE("/announcements/:id", announcementController.Delete)

		admin.GET("/assignments", assignmentController.GetAll)
		admin.POST("/assignments", assignmentController.Create)
		admin.PUT("/assignments/:id", assignmentController.Update)
		admin.DELETE("/assignments/:id", assignmentController.Delete)
		admin.GET("/assignments/:id/submissions", submissionController.GetByAssignment)

		admin.PUT("/submissions/:id/grade", submissionController.Grade)
		admin.PUT("/submissions/:id/status", submissionController.UpdateStatus)

		admin.GET("/contact-messages", contactController.GetAll)
		admin.PUT("/contact-messages/:id/status", contactController.UpdateStatus)

		admin.GET("/students", portalController.ListStudents)

		admin.GET("/sessions", sessionController.List)
		admin.GET("/sessions/:id", sessionController.GetByID)

		admin.POST("/pdfs", pdfController.Upload)
		admin.PUT("/pdfs/:id", pdfController.Update)
		admin.DELETE("/pdfs/:id", pdfController.Delete)
		admin.GET("/pdfs", pdfController.List)
	}

	// --- Student portal ---
	student := v1.Group("/student")
	student.Use(authMiddleware.StudentOnly())
	{
		student.GET("/assignments", assignmentController.GetMine)
		student.GET("/assignments/:id", assignmentController.GetByID)
		student.POST("/assignments/:id/submissions", submissionController.Submit)
		student.GET("/submissions", submissionController.GetMine)

		student.POST("/session/features", sessionController.TrackFeature)
		student.POST("/session/heartbeat", sessionController.Heartbeat)

		student.GET("/library", pdfController.List)
		student.POST("/library/:id/download", pdfController.Download)
	}
	v1.POST("/portal/student/logout", authMiddleware.StudentOnly(), portalController.StudentLogout)
}
