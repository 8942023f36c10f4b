package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	usersTable         = "users"
	subscriptionsTable = "subscriptions"
)

var userColumns = []interface{}{
	goqu.I("u.id"),
	goqu.I("u.email"),
	goqu.I("u.username"),
	goqu.I("u.first_name"),
	goqu.I("u.last_name"),
	goqu.I("u.password_hash"),
	goqu.I("u.is_staff"),
	goqu.I("u.is_active"),
	goqu.I("u.created_at"),
}

// isSubscribed renders whether viewer follows the user identified by userID.
func isSubscribed(viewer domain.UserID, userID exp.IdentifierExpression) exp.LiteralExpression {
	if viewer.IsAnonymous() {
		return goqu.L("FALSE")
	}

	return goqu.L("EXISTS (SELECT 1 FROM subscriptions s WHERE s.user_id = ? AND s.follower_id = ?)",
		userID, int64(viewer))
}

func (p *PgSQL) usersDataset(viewer domain.UserID) *goqu.SelectDataset {
	cols := append(append([]interface{}{}, userColumns...),
		isSubscribed(viewer, goqu.I("u.id")).As("is_subscribed"))

	return p.Builder.From(goqu.T(usersTable).As("u")).Select(cols...)
}

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning("id", "email", "username", "first_name", "last_name",
			"password_hash", "is_staff", "is_active", "created_at").
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", mapError(err))
	}

	u := stored.ToDomain()

	return &u, nil
}

func (p *PgSQL) UserByID(ctx context.Context, viewer domain.UserID, ID domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.usersDataset(viewer).
		Where(goqu.I("u.id").Eq(int64(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	u := row.ToDomain()

	return &u, nil
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row PgUser
	found, err := p.usersDataset(0).
		Where(goqu.I("u.email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	u := row.ToDomain()

	return &u, nil
}

func (p *PgSQL) Users(ctx context.Context, viewer domain.UserID, page domain.Page) (storage.Users, error) {
	count, err := p.Builder.From(usersTable).CountContext(ctx)
	if err != nil {
		return storage.Users{}, fmt.Errorf("could not count users in pg: %w", err)
	}

	var rows []PgUser
	if err := p.usersDataset(viewer).
		Order(goqu.I("u.username").Asc()).
		Limit(page.Size).
		Offset(page.Offset()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Users{}, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	return storage.Users{Users: pgUsersToDomain(rows), Count: count}, nil
}

func (p *PgSQL) UpdatePassword(ctx context.Context, ID domain.UserID, passwordHash string) error {
	_, err := p.Builder.Update(usersTable).
		Set(goqu.Record{"password_hash": passwordHash}).
		Where(goqu.I("id").Eq(int64(ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update password in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) AddSubscription(ctx context.Context, followerID, authorID domain.UserID) (bool, error) {
	res, err := p.Builder.Insert(subscriptionsTable).
		Rows(goqu.Record{"user_id": int64(authorID), "follower_id": int64(followerID)}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not store subscription into pg: %w", mapError(err))
	}

	return affected(res)
}

func (p *PgSQL) RemoveSubscription(ctx context.Context, followerID, authorID domain.UserID) (bool, error) {
	res, err := p.Builder.Delete(subscriptionsTable).
		Where(
			goqu.I("user_id").Eq(int64(authorID)),
			goqu.I("follower_id").Eq(int64(followerID)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete subscription in pg: %w", err)
	}

	return affected(res)
}

func (p *PgSQL) Subscriptions(ctx context.Context,
	followerID domain.UserID,
	page domain.Page) (storage.Users, error) {
	count, err := p.Builder.From(subscriptionsTable).
		Where(goqu.I("follower_id").Eq(int64(followerID))).
		CountContext(ctx)
	if err != nil {
		return storage.Users{}, fmt.Errorf("could not count subscriptions in pg: %w", err)
	}

	cols := append(append([]interface{}{}, userColumns...), goqu.L("TRUE").As("is_subscribed"))

	var rows []PgUser
	if err := p.Builder.From(goqu.T(usersTable).As("u")).
		Join(goqu.T(subscriptionsTable).As("s"), goqu.On(goqu.I("s.user_id").Eq(goqu.I("u.id")))).
		Select(cols...).
		Where(goqu.I("s.follower_id").Eq(int64(followerID))).
		Order(goqu.I("s.created_at").Desc(), goqu.I("u.id").Desc()).
		Limit(page.Size).
		Offset(page.Offset()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Users{}, fmt.Errorf("could not fetch subscriptions from pg: %w", err)
	}

	return storage.Users{Users: pgUsersToDomain(rows), Count: count}, nil
}
