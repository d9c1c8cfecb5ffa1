package application

import (
	"context"
	"errors"
	"testing"
	"time"

	bcryptadapter "inkwell/contexts/identity/account-service/adapters/bcrypt"
	"inkwell/contexts/identity/account-service/adapters/memory"
	tokenadapter "inkwell/contexts/identity/account-service/adapters/token"
	"inkwell/contexts/identity/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity/account-service/domain/errors"
	"inkwell/contexts/identity/account-service/ports"
)

func newTestService(store *memory.Store) Service {
	return Service{
		Profiles: store,
		Hasher:   bcryptadapter.Hasher{},
		Tokens:   tokenadapter.NewCodec([]byte("service-test-key"), time.Hour),
	}
}

func TestRegisterAssignsUserRoleAndID(t *testing.T) {
	service := newTestService(memory.NewStore())
	profile, err := service.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if profile.UserID == 0 {
		t.Fatal("expected store-assigned user id")
	}
	if profile.Role != ports.RoleUser {
		t.Fatalf("expected default role user, got %q", profile.Role)
	}
	if profile.PasswordHash == "pw1" {
		t.Fatal("password must be stored hashed")
	}
}

// No credential policy exists at this layer: uniqueness is the store's
// only constraint, so empty usernames and passwords register fine.
func TestRegisterAcceptsEmptyCredentials(t *testing.T) {
	service := newTestService(memory.NewStore())
	profile, err := service.Register(context.Background(), "", "")
	if err != nil {
		t.Fatalf("expected empty credentials to be accepted, got %v", err)
	}
	if profile.UserID == 0 {
		t.Fatal("expected store-assigned user id")
	}

	token, err := service.Login(context.Background(), "", "")
	if err != nil {
		t.Fatalf("login with empty credentials failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token for the registered empty username")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service := newTestService(memory.NewStore())
	if _, err := service.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := service.Register(context.Background(), "alice", "pw2"); !errors.Is(err, domainerrors.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	service := newTestService(memory.NewStore())
	if _, err := service.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, unknownErr := service.Login(context.Background(), "nobody", "pw1")
	_, wrongErr := service.Login(context.Background(), "alice", "wrong")
	if !errors.Is(unknownErr, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatal("unknown-user and wrong-password errors must be identical")
	}
}

func TestLoginThenAuthenticateRoundTrip(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	if _, err := service.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := service.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	identity, err := service.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity.Username != "alice" {
		t.Fatalf("expected subject alice, got %q", identity.Username)
	}
	if identity.Role != ports.RoleUser {
		t.Fatalf("expected role user, got %q", identity.Role)
	}
}

// A role change in the store must take effect for tokens issued before the
// change: the role is re-read at verification time, never trusted from the
// token payload.
func TestAuthenticateReflectsCurrentStoreRole(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	if _, err := service.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := service.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !store.SetRole("alice", ports.RoleAdmin) {
		t.Fatal("set role failed")
	}

	identity, err := service.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity.Role != ports.RoleAdmin {
		t.Fatalf("expected promoted role admin, got %q", identity.Role)
	}
}

// A validly signed token with a fabricated role claim must not escalate:
// the store's role wins.
func TestAuthenticateIgnoresForgedRoleClaim(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	if _, err := service.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	forged, err := service.Tokens.Issue(ports.TokenClaims{Subject: "alice", Role: ports.RoleAdmin})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	identity, err := service.Authenticate(context.Background(), forged)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity.Role != ports.RoleUser {
		t.Fatalf("expected store role user despite admin claim, got %q", identity.Role)
	}
}

func TestAuthenticateUnknownSubject(t *testing.T) {
	service := newTestService(memory.NewStore())
	token, err := service.Tokens.Issue(ports.TokenClaims{Subject: "ghost", Role: ports.RoleUser})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := service.Authenticate(context.Background(), token); !errors.Is(err, domainerrors.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestRequireAdminIsCaseInsensitive(t *testing.T) {
	service := newTestService(memory.NewStore())
	for _, role := range []string{"admin", "Admin", "ADMIN"} {
		if _, err := service.RequireAdmin(entities.Identity{Role: role}); err != nil {
			t.Fatalf("expected role %q to pass, got %v", role, err)
		}
	}
	for _, role := range []string{"user", ""} {
		if _, err := service.RequireAdmin(entities.Identity{Role: role}); !errors.Is(err, domainerrors.ErrAdminRequired) {
			t.Fatalf("expected ErrAdminRequired for role %q, got %v", role, err)
		}
	}
}

func TestRequireAdminPassesIdentityThrough(t *testing.T) {
	service := newTestService(memory.NewStore())
	in := entities.Identity{UserID: 7, Username: "root", Role: "admin"}
	out, err := service.RequireAdmin(in)
	if err != nil {
		t.Fatalf("require admin failed: %v", err)
	}
	if out != in {
		t.Fatalf("expected identity to pass through unchanged, got %+v", out)
	}
}
