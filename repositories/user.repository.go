package repositories

import (
	"context"

	"github.com/CPU-commits/Intranet_BCatalog/db"
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository struct {
	users models.Collection
}

// GetUser returns nil without error when the user does not exist
func (u *UserRepository) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user *models.User
	cursor := u.users.GetByID(ctx, id)
	if err := cursor.Decode(&user); err != nil {
		if db.IsNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func NewUserRepository(users models.Collection) *UserRepository {
	return &UserRepository{
		users: users,
	}
}
