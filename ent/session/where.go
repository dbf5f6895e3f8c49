// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dkoval/padelwiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// SessionNumber applies equality check predicate on the "session_number" field. It's identical to SessionNumberEQ.
func SessionNumber(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionNumber, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// InterimRating applies equality check predicate on the "interim_rating" field. It's identical to InterimRatingEQ.
func InterimRating(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInterimRating, v))
}

// ExperienceMonths applies equality check predicate on the "experience_months" field. It's identical to ExperienceMonthsEQ.
func ExperienceMonths(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExperienceMonths, v))
}

// ExperienceLevel applies equality check predicate on the "experience_level" field. It's identical to ExperienceLevelEQ.
func ExperienceLevel(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExperienceLevel, v))
}

// Finished applies equality check predicate on the "finished" field. It's identical to FinishedEQ.
func Finished(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinished, v))
}

// FinalLevel applies equality check predicate on the "final_level" field. It's identical to FinalLevelEQ.
func FinalLevel(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinalLevel, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinishedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionNumberEQ applies the EQ predicate on the "session_number" field.
func SessionNumberEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionNumber, v))
}

// SessionNumberNEQ applies the NEQ predicate on the "session_number" field.
func SessionNumberNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSessionNumber, v))
}

// SessionNumberIn applies the In predicate on the "session_number" field.
func SessionNumberIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSessionNumber, vs...))
}

// SessionNumberNotIn applies the NotIn predicate on the "session_number" field.
func SessionNumberNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSessionNumber, vs...))
}

// SessionNumberGT applies the GT predicate on the "session_number" field.
func SessionNumberGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSessionNumber, v))
}

// SessionNumberGTE applies the GTE predicate on the "session_number" field.
func SessionNumberGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSessionNumber, v))
}

// SessionNumberLT applies the LT predicate on the "session_number" field.
func SessionNumberLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSessionNumber, v))
}

// SessionNumberLTE applies the LTE predicate on the "session_number" field.
func SessionNumberLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSessionNumber, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserID, vs...))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldAnswers))
}

// InterimRatingEQ applies the EQ predicate on the "interim_rating" field.
func InterimRatingEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInterimRating, v))
}

// InterimRatingNEQ applies the NEQ predicate on the "interim_rating" field.
func InterimRatingNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldInterimRating, v))
}

// InterimRatingIn applies the In predicate on the "interim_rating" field.
func InterimRatingIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldInterimRating, vs...))
}

// InterimRatingNotIn applies the NotIn predicate on the "interim_rating" field.
func InterimRatingNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldInterimRating, vs...))
}

// InterimRatingGT applies the GT predicate on the "interim_rating" field.
func InterimRatingGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldInterimRating, v))
}

// InterimRatingGTE applies the GTE predicate on the "interim_rating" field.
func InterimRatingGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldInterimRating, v))
}

// InterimRatingLT applies the LT predicate on the "interim_rating" field.
func InterimRatingLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldInterimRating, v))
}

// InterimRatingLTE applies the LTE predicate on the "interim_rating" field.
func InterimRatingLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldInterimRating, v))
}

// InterimRatingIsNil applies the IsNil predicate on the "interim_rating" field.
func InterimRatingIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldInterimRating))
}

// InterimRatingNotNil applies the NotNil predicate on the "interim_rating" field.
func InterimRatingNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldInterimRating))
}

// ExperienceMonthsEQ applies the EQ predicate on the "experience_months" field.
func ExperienceMonthsEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExperienceMonths, v))
}

// ExperienceMonthsNEQ applies the NEQ predicate on the "experience_months" field.
func ExperienceMonthsNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldExperienceMonths, v))
}

// ExperienceMonthsIn applies the In predicate on the "experience_months" field.
func ExperienceMonthsIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldExperienceMonths, vs...))
}

// ExperienceMonthsNotIn applies the NotIn predicate on the "experience_months" field.
func ExperienceMonthsNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldExperienceMonths, vs...))
}

// ExperienceMonthsGT applies the GT predicate on the "experience_months" field.
func ExperienceMonthsGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldExperienceMonths, v))
}

// ExperienceMonthsGTE applies the GTE predicate on the "experience_months" field.
func ExperienceMonthsGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldExperienceMonths, v))
}

// ExperienceMonthsLT applies the LT predicate on the "experience_months" field.
func ExperienceMonthsLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldExperienceMonths, v))
}

// ExperienceMonthsLTE applies the LTE predicate on the "experience_months" field.
func ExperienceMonthsLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldExperienceMonths, v))
}

// ExperienceMonthsIsNil applies the IsNil predicate on the "experience_months" field.
func ExperienceMonthsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldExperienceMonths))
}

// ExperienceMonthsNotNil applies the NotNil predicate on the "experience_months" field.
func ExperienceMonthsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldExperienceMonths))
}

// ExperienceLevelEQ applies the EQ predicate on the "experience_level" field.
func ExperienceLevelEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExperienceLevel, v))
}

// ExperienceLevelNEQ applies the NEQ predicate on the "experience_level" field.
func ExperienceLevelNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldExperienceLevel, v))
}

// ExperienceLevelIn applies the In predicate on the "experience_level" field.
func ExperienceLevelIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelNotIn applies the NotIn predicate on the "experience_level" field.
func ExperienceLevelNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelGT applies the GT predicate on the "experience_level" field.
func ExperienceLevelGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldExperienceLevel, v))
}

// ExperienceLevelGTE applies the GTE predicate on the "experience_level" field.
func ExperienceLevelGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldExperienceLevel, v))
}

// ExperienceLevelLT applies the LT predicate on the "experience_level" field.
func ExperienceLevelLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldExperienceLevel, v))
}

// ExperienceLevelLTE applies the LTE predicate on the "experience_level" field.
func ExperienceLevelLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldExperienceLevel, v))
}

// ExperienceLevelContains applies the Contains predicate on the "experience_level" field.
func ExperienceLevelContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldExperienceLevel, v))
}

// ExperienceLevelHasPrefix applies the HasPrefix predicate on the "experience_level" field.
func ExperienceLevelHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldExperienceLevel, v))
}

// ExperienceLevelHasSuffix applies the HasSuffix predicate on the "experience_level" field.
func ExperienceLevelHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldExperienceLevel, v))
}

// ExperienceLevelIsNil applies the IsNil predicate on the "experience_level" field.
func ExperienceLevelIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldExperienceLevel))
}

// ExperienceLevelNotNil applies the NotNil predicate on the "experience_level" field.
func ExperienceLevelNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldExperienceLevel))
}

// ExperienceLevelEqualFold applies the EqualFold predicate on the "experience_level" field.
func ExperienceLevelEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldExperienceLevel, v))
}

// ExperienceLevelContainsFold applies the ContainsFold predicate on the "experience_level" field.
func ExperienceLevelContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldExperienceLevel, v))
}

// FinishedEQ applies the EQ predicate on the "finished" field.
func FinishedEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinished, v))
}

// FinishedNEQ applies the NEQ predicate on the "finished" field.
func FinishedNEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldFinished, v))
}

// FinalLevelEQ applies the EQ predicate on the "final_level" field.
func FinalLevelEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinalLevel, v))
}

// FinalLevelNEQ applies the NEQ predicate on the "final_level" field.
func FinalLevelNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldFinalLevel, v))
}

// FinalLevelIn applies the In predicate on the "final_level" field.
func FinalLevelIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldFinalLevel, vs...))
}

// FinalLevelNotIn applies the NotIn predicate on the "final_level" field.
func FinalLevelNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldFinalLevel, vs...))
}

// FinalLevelGT applies the GT predicate on the "final_level" field.
func FinalLevelGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldFinalLevel, v))
}

// FinalLevelGTE applies the GTE predicate on the "final_level" field.
func FinalLevelGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldFinalLevel, v))
}

// FinalLevelLT applies the LT predicate on the "final_level" field.
func FinalLevelLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldFinalLevel, v))
}

// FinalLevelLTE applies the LTE predicate on the "final_level" field.
func FinalLevelLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldFinalLevel, v))
}

// FinalLevelContains applies the Contains predicate on the "final_level" field.
func FinalLevelContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldFinalLevel, v))
}

// FinalLevelHasPrefix applies the HasPrefix predicate on the "final_level" field.
func FinalLevelHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldFinalLevel, v))
}

// FinalLevelHasSuffix applies the HasSuffix predicate on the "final_level" field.
func FinalLevelHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldFinalLevel, v))
}

// FinalLevelIsNil applies the IsNil predicate on the "final_level" field.
func FinalLevelIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldFinalLevel))
}

// FinalLevelNotNil applies the NotNil predicate on the "final_level" field.
func FinalLevelNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldFinalLevel))
}

// FinalLevelEqualFold applies the EqualFold predicate on the "final_level" field.
func FinalLevelEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldFinalLevel, v))
}

// FinalLevelContainsFold applies the ContainsFold predicate on the "final_level" field.
func FinalLevelContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldFinalLevel, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldFinishedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
