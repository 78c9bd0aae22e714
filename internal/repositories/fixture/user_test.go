package fixture

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"users-api/internal/models"
)

func TestUserRepository_GetByID(t *testing.T) {
	repo := NewUserRepository()

	user, err := repo.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	want := &models.User{Username: "username_42", Email: "test@example.com"}
	if diff := cmp.Diff(want, user); diff != "" {
		t.Errorf("GetByID() mismatch (-want +got):\n%s", diff)
	}
}

func TestUserRepository_List(t *testing.T) {
	repo := NewUserRepository()

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []*models.User{
		{Username: "test_user1", Email: "example1@example.com"},
		{Username: "test_user2", Email: "example2@example.com"},
	}
	if diff := cmp.Diff(want, users); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestUserRepository_ListReturnsFreshSlices(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	first, _ := repo.List(ctx)
	first[0].Username = "mutated"

	second, _ := repo.List(ctx)
	if second[0].Username != "test_user1" {
		t.Errorf("List() leaked mutation across calls: got %q", second[0].Username)
	}
}
