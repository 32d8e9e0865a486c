package http

import (
	"net/http"

	"clinic-backend/internal/delivery/http/handler"
	"clinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	directoryHandler    *handler.DirectoryHandler
	scheduleHandler     *handler.ScheduleHandler
	appointmentHandler  *handler.AppointmentHandler
	reviewHandler       *handler.ReviewHandler
	medicalHandler      *handler.MedicalHandler
	paymentHandler      *handler.PaymentHandler
	notificationHandler *handler.NotificationHandler
	systemHandler       *handler.SystemHandler
	publicHandler       *handler.PublicHandler
	authMiddleware      *middleware.AuthMiddleware
	actorMiddleware     *middleware.ActorMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	directoryHandler *handler.DirectoryHandler,
	scheduleHandler *handler.ScheduleHandler,
	appointmentHandler *handler.AppointmentHandler,
	reviewHandler *handler.ReviewHandler,
	medicalHandler *handler.MedicalHandler,
	paymentHandler *handler.PaymentHandler,
	notificationHandler *handler.NotificationHandler,
	systemHandler *handler.SystemHandler,
	publicHandler *handler.PublicHandler,
	authMiddleware *middleware.AuthMiddleware,
	actorMiddleware *middleware.ActorMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		directoryHandler:    directoryHandler,
		scheduleHandler:     scheduleHandler,
		appointmentHandler:  appointmentHandler,
		reviewHandler:       reviewHandler,
		medicalHandler:      medicalHandler,
		paymentHandler:      paymentHandler,
		notificationHandler: notificationHandler,
		systemHandler:       systemHandler,
		publicHandler:       publicHandler,
		authMiddleware:      authMiddleware,
		actorMiddleware:     actorMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes (no authentication)
	public := api.PathPrefix("/public").Subrouter()
	public.HandleFunc("/doctors", r.publicHandler.GetDoctors).Methods(http.MethodGet)
	public.HandleFunc("/doctors/{id}", r.publicHandler.GetDoctor).Methods(http.MethodGet)
	public.HandleFunc("/doctors/{id}/slots", r.publicHandler.GetDoctorSlots).Methods(http.MethodGet)
	public.HandleFunc("/doctors/{id}/reviews", r.publicHandler.GetDoctorReviews).Methods(http.MethodGet)
	public.HandleFunc("/specializations", r.publicHandler.GetSpecializations).Methods(http.MethodGet)
	public.HandleFunc("/services", r.publicHandler.GetServices).Methods(http.MethodGet)
	public.HandleFunc("/clinics", r.publicHandler.GetClinics).Methods(http.MethodGet)
	public.HandleFunc("/sections", r.publicHandler.GetSections).Methods(http.MethodGet)
	public.HandleFunc("/settings", r.publicHandler.GetSettings).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/verify-email", r.authHandler.VerifyEmail).Methods(http.MethodPost)
	auth.HandleFunc("/resend-otp", r.authHandler.ResendOTP).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/me", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Authenticated routes with a resolved actor
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.Use(r.actorMiddleware.Resolve)

	// Appointments (any authenticated role; usecase scopes per actor)
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)

	// Reviews
	protected.HandleFunc("/reviews", r.reviewHandler.CreateReview).Methods(http.MethodPost)

	// Payments
	protected.HandleFunc("/payments", r.paymentHandler.CreatePayment).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{id}", r.paymentHandler.GetPayment).Methods(http.MethodGet)

	// Notifications
	protected.HandleFunc("/notifications", r.notificationHandler.GetMyNotifications).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", r.notificationHandler.MarkNotificationRead).Methods(http.MethodPatch)

	// Own medical history
	protected.HandleFunc("/patients/{id}/medical-records", r.medicalHandler.GetPatientMedicalRecords).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}", r.medicalHandler.GetPrescription).Methods(http.MethodGet)

	// Staff routes (doctor or manager)
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(r.actorMiddleware.Resolve)
	staff.Use(middleware.RequireManagerOrDoctor)

	staff.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	staff.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	staff.HandleFunc("/doctors/{id}/affiliations", r.directoryHandler.GetDoctorAffiliations).Methods(http.MethodGet)

	staff.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	staff.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)

	staff.HandleFunc("/schedules", r.scheduleHandler.CreateSchedule).Methods(http.MethodPost)
	staff.HandleFunc("/schedules", r.scheduleHandler.GetAllSchedules).Methods(http.MethodGet)
	staff.HandleFunc("/schedules/{id}", r.scheduleHandler.UpdateSchedule).Methods(http.MethodPut)
	staff.HandleFunc("/schedules/{id}", r.scheduleHandler.DeleteSchedule).Methods(http.MethodDelete)
	staff.HandleFunc("/time-slots/generate", r.scheduleHandler.GenerateSlots).Methods(http.MethodPost)
	staff.HandleFunc("/doctors/{id}/slots", r.scheduleHandler.GetDoctorSlots).Methods(http.MethodGet)
	staff.HandleFunc("/time-slots/{id}", r.scheduleHandler.DeleteSlot).Methods(http.MethodDelete)

	staff.HandleFunc("/prescriptions", r.medicalHandler.CreatePrescription).Methods(http.MethodPost)
	staff.HandleFunc("/prescriptions", r.medicalHandler.GetAllPrescriptions).Methods(http.MethodGet)
	staff.HandleFunc("/prescriptions/{id}/deactivate", r.medicalHandler.DeactivatePrescription).Methods(http.MethodPatch)
	staff.HandleFunc("/medical-records", r.medicalHandler.CreateMedicalRecord).Methods(http.MethodPost)

	staff.HandleFunc("/payments", r.paymentHandler.GetAllPayments).Methods(http.MethodGet)
	staff.HandleFunc("/payments/{id}/status", r.paymentHandler.UpdatePaymentStatus).Methods(http.MethodPatch)

	staff.HandleFunc("/reviews", r.reviewHandler.GetAllReviews).Methods(http.MethodGet)

	// Manager routes (console administration)
	manager := api.PathPrefix("/manager").Subrouter()
	manager.Use(r.authMiddleware.Authenticate)
	manager.Use(r.actorMiddleware.Resolve)
	manager.Use(middleware.RequireManager)

	manager.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	manager.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	manager.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	manager.HandleFunc("/doctors/{id}/verify", r.doctorHandler.VerifyDoctor).Methods(http.MethodPatch)
	manager.HandleFunc("/doctors/{id}/availability", r.doctorHandler.ToggleAvailability).Methods(http.MethodPatch)

	manager.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	manager.HandleFunc("/specializations", r.directoryHandler.CreateSpecialization).Methods(http.MethodPost)
	manager.HandleFunc("/specializations", r.directoryHandler.GetAllSpecializations).Methods(http.MethodGet)
	manager.HandleFunc("/specializations/{id}", r.directoryHandler.UpdateSpecialization).Methods(http.MethodPut)
	manager.HandleFunc("/specializations/{id}", r.directoryHandler.DeleteSpecialization).Methods(http.MethodDelete)

	manager.HandleFunc("/services", r.directoryHandler.CreateService).Methods(http.MethodPost)
	manager.HandleFunc("/services", r.directoryHandler.GetAllServices).Methods(http.MethodGet)
	manager.HandleFunc("/services/{id}", r.directoryHandler.UpdateService).Methods(http.MethodPut)
	manager.HandleFunc("/services/{id}", r.directoryHandler.DeleteService).Methods(http.MethodDelete)

	manager.HandleFunc("/clinics", r.directoryHandler.CreateClinic).Methods(http.MethodPost)
	manager.HandleFunc("/clinics", r.directoryHandler.GetAllClinics).Methods(http.MethodGet)
	manager.HandleFunc("/clinics/{id}", r.directoryHandler.GetClinic).Methods(http.MethodGet)
	manager.HandleFunc("/clinics/{id}", r.directoryHandler.UpdateClinic).Methods(http.MethodPut)
	manager.HandleFunc("/clinics/{id}", r.directoryHandler.DeleteClinic).Methods(http.MethodDelete)
	manager.HandleFunc("/clinics/{id}/departments", r.directoryHandler.CreateDepartment).Methods(http.MethodPost)
	manager.HandleFunc("/clinics/{id}/departments", r.directoryHandler.GetDepartments).Methods(http.MethodGet)
	manager.HandleFunc("/affiliations", r.directoryHandler.CreateAffiliation).Methods(http.MethodPost)

	manager.HandleFunc("/reviews/{id}/approve", r.reviewHandler.ApproveReview).Methods(http.MethodPatch)
	manager.HandleFunc("/reviews/{id}/reject", r.reviewHandler.RejectReview).Methods(http.MethodPatch)

	manager.HandleFunc("/sections", r.systemHandler.CreateSection).Methods(http.MethodPost)
	manager.HandleFunc("/sections", r.systemHandler.GetAllSections).Methods(http.MethodGet)
	manager.HandleFunc("/sections/reorder", r.systemHandler.ReorderSections).Methods(http.MethodPut)
	manager.HandleFunc("/sections/{id}", r.systemHandler.UpdateSection).Methods(http.MethodPut)
	manager.HandleFunc("/sections/{id}/toggle-active", r.systemHandler.ToggleSectionActive).Methods(http.MethodPatch)
	manager.HandleFunc("/sections/{id}", r.systemHandler.DeleteSection).Methods(http.MethodDelete)

	manager.HandleFunc("/settings", r.systemHandler.CreateSetting).Methods(http.MethodPost)
	manager.HandleFunc("/settings", r.systemHandler.GetAllSettings).Methods(http.MethodGet)
	manager.HandleFunc("/settings/by-key/{key}", r.systemHandler.GetSettingByKey).Methods(http.MethodGet)
	manager.HandleFunc("/settings/{id}", r.systemHandler.UpdateSetting).Methods(http.MethodPut)
	manager.HandleFunc("/settings/{id}", r.systemHandler.DeleteSetting).Methods(http.MethodDelete)

	manager.HandleFunc("/audit-logs", r.systemHandler.GetAuditLogs).Methods(http.MethodGet)
	manager.HandleFunc("/audit-logs/{id}", r.systemHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
