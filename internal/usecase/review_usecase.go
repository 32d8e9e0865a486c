package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review for this appointment already exists")
)

type ReviewUsecase interface {
	Create(ctx context.Context, actor *entity.Actor, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetByID(ctx context.Context, actor *entity.Actor, id int) (*dto.ReviewResponse, error)
	List(ctx context.Context, actor *entity.Actor, filter *entity.ReviewFilter) ([]dto.ReviewResponse, error)
	ListPublicByDoctor(ctx context.Context, doctorID int) ([]dto.ReviewResponse, error)
	Approve(ctx context.Context, actor *entity.Actor, id int) (*dto.ReviewResponse, error)
	Reject(ctx context.Context, actor *entity.Actor, id int) error
}

type reviewUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reviewRepo   repository.ReviewRepository
	doctorRepo   repository.DoctorRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) ReviewUsecase {
	return &reviewUsecase{
		db:           db,
		log:          log,
		reviewRepo:   reviewRepo,
		doctorRepo:   doctorRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

// Create stores the review unapproved and refreshes the doctor's rating
// aggregate in the same transaction.
func (u *reviewUsecase) Create(ctx context.Context, actor *entity.Actor, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patientID := req.PatientID
	if actor.IsClient() {
		if actor.PatientID == nil {
			return nil, ErrPatientNotFound
		}
		patientID = *actor.PatientID
	}
	if patientID == 0 {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(tx, nil, req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	review := &entity.DoctorReview{
		DoctorID:       req.DoctorID,
		PatientID:      patientID,
		AppointmentID:  req.AppointmentID,
		Rating:         req.Rating,
		WaitTimeRating: req.WaitTimeRating,
		Comment:        req.Comment,
		WouldRecommend: req.WouldRecommend,
	}

	if err := u.reviewRepo.Create(tx, review); err != nil {
		if isDuplicateKeyError(err, "idx_doctor_patient_appt") {
			return nil, ErrReviewAlreadyExists
		}
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	if err := u.refreshDoctorStats(tx, req.DoctorID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	review.Doctor = *doctor
	return converter.ReviewToResponse(review), nil
}

func (u *reviewUsecase) GetByID(ctx context.Context, actor *entity.Actor, id int) (*dto.ReviewResponse, error) {
	review, err := u.reviewRepo.FindByID(u.db.WithContext(ctx), actor, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return converter.ReviewToResponse(review), nil
}

func (u *reviewUsecase) List(ctx context.Context, actor *entity.Actor, filter *entity.ReviewFilter) ([]dto.ReviewResponse, error) {
	reviews, err := u.reviewRepo.FindAll(u.db.WithContext(ctx), actor, filter)
	if err != nil {
		return nil, err
	}
	return converter.ReviewsToResponses(reviews), nil
}

// ListPublicByDoctor returns only approved reviews.
func (u *reviewUsecase) ListPublicByDoctor(ctx context.Context, doctorID int) ([]dto.ReviewResponse, error) {
	reviews, err := u.reviewRepo.FindAll(u.db.WithContext(ctx), nil, &entity.ReviewFilter{DoctorID: doctorID})
	if err != nil {
		return nil, err
	}
	return converter.ReviewsToResponses(reviews), nil
}

func (u *reviewUsecase) Approve(ctx context.Context, actor *entity.Actor, id int) (*dto.ReviewResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	review, err := u.reviewRepo.FindByID(tx, actor, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	approved := true
	review.IsApproved = &approved
	if err := u.reviewRepo.Update(tx, review); err != nil {
		u.log.Warnf("Failed to approve review: %+v", err)
		return nil, err
	}

	if err := u.refreshDoctorStats(tx, review.DoctorID); err != nil {
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionReviewApprove, "review", "", nil, review)

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.ReviewToResponse(review), nil
}

// Reject deletes the review and refreshes the aggregate, since rejected
// feedback no longer counts toward the doctor's rating.
func (u *reviewUsecase) Reject(ctx context.Context, actor *entity.Actor, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	review, err := u.reviewRepo.FindByID(tx, actor, id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}

	if _, err := u.reviewRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete review: %+v", err)
		return err
	}

	if err := u.refreshDoctorStats(tx, review.DoctorID); err != nil {
		return err
	}

	u.auditService.LogDelete(ctx, tx, &actor.UserID, entity.AuditActionReviewReject, "review", "", review)

	return tx.Commit().Error
}

// refreshDoctorStats recomputes the stored rating aggregate from every
// review row. The mean is rounded to two decimal places; a doctor with no
// reviews goes back to zero.
func (u *reviewUsecase) refreshDoctorStats(tx *gorm.DB, doctorID int) error {
	ratings, err := u.reviewRepo.FindRatingsByDoctor(tx, doctorID)
	if err != nil {
		return err
	}

	rating := AverageRating(ratings)
	if err := u.doctorRepo.UpdateReviewStats(tx, doctorID, rating, len(ratings)); err != nil {
		u.log.Warnf("Failed to refresh doctor rating: %+v", err)
		return err
	}
	return nil
}

// AverageRating computes the mean of ratings rounded to 2 decimals,
// zero when there are none.
func AverageRating(ratings []int) decimal.Decimal {
	if len(ratings) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(ratings)))).Round(2)
}
