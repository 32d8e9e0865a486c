package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// Visibility policy applied uniformly by the repositories instead of
// per-handler role checks.
//
// Manager actors with a linked doctor identity see only their own doctor
// chain. Other authenticated actors get the unrestricted base query; route
// level role gates decide whether they reach the repository at all.
// A nil actor is an anonymous read and gets the public subset.

// scopeDoctors narrows a doctor queryset for the acting principal.
func scopeDoctors(db *gorm.DB, actor *entity.Actor) *gorm.DB {
	if actor == nil {
		return db.Where("doctors.is_available = ? AND doctors.is_verified = ?", true, true)
	}
	if actor.SelfScoped() {
		return db.Where("doctors.id = ?", *actor.DoctorID)
	}
	return db
}

// scopeByDoctor narrows an entity carrying a doctor_id column to the
// actor's own doctor when self-scoped.
func scopeByDoctor(db *gorm.DB, actor *entity.Actor, column string) *gorm.DB {
	if actor != nil && actor.SelfScoped() {
		return db.Where(column+" = ?", *actor.DoctorID)
	}
	return db
}

// scopeReviews additionally hides unapproved reviews from anonymous reads.
func scopeReviews(db *gorm.DB, actor *entity.Actor) *gorm.DB {
	if actor == nil {
		return db.Where("doctor_reviews.is_approved = ?", true)
	}
	return scopeByDoctor(db, actor, "doctor_reviews.doctor_id")
}
