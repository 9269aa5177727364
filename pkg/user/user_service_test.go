package user

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/jwt"
)

type stubUserRepo struct {
	users map[string]*entities.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*entities.User)}
}

func (r *stubUserRepo) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *stubUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
		Role:     domain.RoleDonor,
		Location: "123 Main St",
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, jwt.NewJWTServiceWithSecret("test-secret"))

	res, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.UserID == "" {
		t.Fatalf("expected a user id")
	}

	stored := repo.users["alice@example.com"]
	if stored == nil {
		t.Fatalf("user not stored")
	}
	if stored.Password == "correct-horse" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct-horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, jwt.NewJWTServiceWithSecret("test-secret"))

	if _, err := svc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	_, err := svc.Register(context.Background(), registerRequest())
	if err != domain.ErrEmailAlreadyExists {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, jwt.NewJWTServiceWithSecret("test-secret"))

	req := registerRequest()
	req.Role = "admin"

	if _, err := svc.Register(context.Background(), req); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestLogin_TokenCarriesIdentityAndRole(t *testing.T) {
	repo := newStubUserRepo()
	jwtService := jwt.NewJWTServiceWithSecret("test-secret")
	svc := NewUserService(repo, jwtService)

	reg, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.User.ID != reg.UserID {
		t.Fatalf("unexpected user id in response: %s", res.User.ID)
	}

	id, role, err := jwtService.GetUserIDByToken(res.Token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if id != reg.UserID {
		t.Fatalf("token user id mismatch: %s", id)
	}
	if role != domain.RoleDonor {
		t.Fatalf("token role mismatch: %s", role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, jwt.NewJWTServiceWithSecret("test-secret"))

	if _, err := svc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, jwt.NewJWTServiceWithSecret("test-secret"))

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
