package user

import (
	"errors"
	"testing"

	"travelogue/models"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := r.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if u, ok := r.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(RegisterRequest{
		Email:     "  Ada@Example.COM ",
		Password:  "hunter22",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.User.Email != "ada@example.com" {
		t.Errorf("email not normalized: %q", resp.User.Email)
	}
	if resp.User.Role != models.RoleUser {
		t.Errorf("role = %q, want user", resp.User.Role)
	}
	if resp.Token == "" {
		t.Error("no token issued on registration")
	}

	stored := repo.byEmail["ada@example.com"]
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.PasswordHash == "hunter22" || stored.PasswordHash == "" {
		t.Error("password stored unhashed")
	}

	auth, err := svc.Authenticate("Ada@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if auth.Token == "" {
		t.Error("no token issued on login")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	req := RegisterRequest{Email: "dup@example.com", Password: "secret1", FirstName: "A", LastName: "B"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing email", RegisterRequest{Password: "secret1", FirstName: "A", LastName: "B"}},
		{"missing names", RegisterRequest{Email: "a@b.com", Password: "secret1"}},
		{"short password", RegisterRequest{Email: "a@b.com", Password: "abc", FirstName: "A", LastName: "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.req)
			var vErr ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	if _, err := svc.Register(RegisterRequest{
		Email: "a@b.com", Password: "secret1", FirstName: "A", LastName: "B",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Authenticate("a@b.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate("nobody@b.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateProfileKeepsEmptyFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(RegisterRequest{
		Email: "a@b.com", Password: "secret1", FirstName: "Ada", LastName: "Lovelace", Phone: "123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	profile, err := svc.UpdateProfile(resp.User.ID, UpdateProfileRequest{FirstName: "Adeline"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if profile.FirstName != "Adeline" {
		t.Errorf("FirstName = %q, want Adeline", profile.FirstName)
	}
	if profile.LastName != "Lovelace" || profile.Phone != "123" {
		t.Errorf("unset fields overwritten: %+v", profile)
	}
}

func TestToggleFavorite(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(RegisterRequest{
		Email: "a@b.com", Password: "secret1", FirstName: "A", LastName: "B",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	favorites, err := svc.ToggleFavorite(resp.User.ID, "t1")
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if len(favorites) != 1 || favorites[0] != "t1" {
		t.Errorf("favorites = %v, want [t1]", favorites)
	}

	favorites, err = svc.ToggleFavorite(resp.User.ID, "t1")
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("favorites = %v, want empty after second toggle", favorites)
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	if _, err := svc.GetUserByID("missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
