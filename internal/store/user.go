package store

import (
	"context"

	"github.com/dkoval/padelwiz/ent"
	"github.com/dkoval/padelwiz/ent/user"
)

// entRepo implements Repo on the ent client.
type entRepo struct {
	client *ent.Client
}

func (r *entRepo) GetOrCreateUser(ctx context.Context, externalID int64) (*UserRecord, error) {
	u, err := r.client.User.Query().
		Where(user.ExternalID(externalID)).
		Only(ctx)
	if err == nil {
		return toUserRecord(u), nil
	}
	if !ent.IsNotFound(err) {
		return nil, &PersistenceError{Op: "get user", Err: err}
	}

	u, err = r.client.User.Create().
		SetExternalID(externalID).
		Save(ctx)
	if err == nil {
		return toUserRecord(u), nil
	}
	if !ent.IsConstraintError(err) {
		return nil, &PersistenceError{Op: "create user", Err: err}
	}

	// Lost a create race with another event for the same account; the row
	// exists now.
	u, err = r.client.User.Query().
		Where(user.ExternalID(externalID)).
		Only(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "get user after conflict", Err: err}
	}
	return toUserRecord(u), nil
}

func (r *entRepo) SetAdviceReceived(ctx context.Context, externalID int64) error {
	_, err := r.client.User.Update().
		Where(user.ExternalID(externalID)).
		SetAdviceReceived(true).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "set advice received", Err: err}
	}
	return nil
}

func toUserRecord(u *ent.User) *UserRecord {
	return &UserRecord{
		ID:                     u.ID,
		ExternalID:             u.ExternalID,
		QuestionnaireCompleted: u.QuestionnaireCompleted,
		AdviceReceived:         u.AdviceReceived,
		CreatedAt:              u.CreatedAt,
	}
}
