package middleware

import (
	"context"
	"net/http"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const ActorKey contextKey = "actor"

// ActorMiddleware resolves the authenticated principal into an Actor,
// attaching the linked doctor and patient rows when they exist. Must run
// after AuthMiddleware.Authenticate.
type ActorMiddleware struct {
	db          *gorm.DB
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewActorMiddleware(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) *ActorMiddleware {
	return &ActorMiddleware{
		db:          db,
		log:         log,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

func (m *ActorMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Invalid token")
			return
		}
		roleID, _ := GetRoleIDFromContext(r.Context())

		actor := &entity.Actor{UserID: userID, RoleID: roleID}

		doctor, err := m.doctorRepo.FindByUserID(m.db, userID)
		if err != nil {
			m.log.Warnf("Failed to resolve doctor identity: %+v", err)
			response.InternalServerError(w, "Failed to resolve identity")
			return
		}
		if doctor != nil {
			actor.DoctorID = &doctor.ID
		}

		patient, err := m.patientRepo.FindByUserID(m.db, userID)
		if err != nil {
			m.log.Warnf("Failed to resolve patient identity: %+v", err)
			response.InternalServerError(w, "Failed to resolve identity")
			return
		}
		if patient != nil {
			actor.PatientID = &patient.ID
		}

		ctx := context.WithValue(r.Context(), ActorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActorFromContext extracts the resolved actor from context
func GetActorFromContext(ctx context.Context) (*entity.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(*entity.Actor)
	return actor, ok
}
