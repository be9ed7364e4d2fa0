package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/CPU-commits/Intranet_BCatalog/forms"
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAdmin() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Username: "admin", Role: models.ADMIN}
}

func usersWith(users ...*models.User) *stubUsers {
	stub := &stubUsers{users: map[primitive.ObjectID]*models.User{}}
	for _, user := range users {
		stub.users[user.ID] = user
	}
	return stub
}

func TestCategoryService_CreateCategory(t *testing.T) {
	admin := newAdmin()
	categories := &stubCategories{}
	service := NewCategoryService(usersWith(admin), categories)

	category, errRes := service.CreateCategory(
		context.Background(),
		&Claims{ID: admin.ID.Hex(), Role: admin.Role},
		&forms.CategoryForm{Name: "Programming"},
	)
	if errRes != nil {
		t.Fatalf("CreateCategory() error = %v", errRes)
	}
	if category.CreatedBy != admin.ID {
		t.Fatalf("expected createdBy %v, got %v", admin.ID, category.CreatedBy)
	}
	if len(categories.inserted) != 1 || categories.inserted[0].Name != "Programming" {
		t.Fatalf("unexpected inserts %+v", categories.inserted)
	}
}

func TestCategoryService_CreateCategoryUnknownUser(t *testing.T) {
	categories := &stubCategories{}
	service := NewCategoryService(usersWith(), categories)

	for _, id := range []string{primitive.NewObjectID().Hex(), "not-an-id"} {
		_, errRes := service.CreateCategory(
			context.Background(),
			&Claims{ID: id},
			&forms.CategoryForm{Name: "Programming"},
		)
		if errRes == nil || errRes.StatusCode != http.StatusNotFound || errRes.Error() != "User not found" {
			t.Fatalf("expected NotFound User not found, got %+v", errRes)
		}
	}
	if len(categories.inserted) != 0 {
		t.Fatal("no category must be written")
	}
}

func TestCategoryService_GetCategoriesError(t *testing.T) {
	service := NewCategoryService(usersWith(), &stubCategories{listErr: errors.New("connection reset")})

	_, errRes := service.GetCategories(context.Background())
	if errRes == nil || errRes.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request, got %+v", errRes)
	}
	if errRes.Error() != "connection reset" {
		t.Fatalf("expected store message, got %q", errRes.Error())
	}
}
