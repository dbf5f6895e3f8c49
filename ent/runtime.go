// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dkoval/padelwiz/ent/schema"
	"github.com/dkoval/padelwiz/ent/session"
	"github.com/dkoval/padelwiz/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescFinished is the schema descriptor for finished field.
	sessionDescFinished := sessionFields[6].Descriptor()
	// session.DefaultFinished holds the default value on creation for the finished field.
	session.DefaultFinished = sessionDescFinished.Default.(bool)
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[8].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[10].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescQuestionnaireCompleted is the schema descriptor for questionnaire_completed field.
	userDescQuestionnaireCompleted := userFields[1].Descriptor()
	// user.DefaultQuestionnaireCompleted holds the default value on creation for the questionnaire_completed field.
	user.DefaultQuestionnaireCompleted = userDescQuestionnaireCompleted.Default.(bool)
	// userDescAdviceReceived is the schema descriptor for advice_received field.
	userDescAdviceReceived := userFields[2].Descriptor()
	// user.DefaultAdviceReceived holds the default value on creation for the advice_received field.
	user.DefaultAdviceReceived = userDescAdviceReceived.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
