package service

import (
	"academic_dashboard/internal/config"
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/repository"
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/kvstore"
	"academic_dashboard/pkg/logger"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionProvider holds the identity of one session. It is backed by the
// userRole/userId keys of a session-scoped store and mirrors them in
// memory once hydrated.
type SessionProvider struct {
	store kvstore.Store

	mu       sync.RWMutex
	identity *model.Identity
}

func NewSessionProvider(store kvstore.Store) *SessionProvider {
	return &SessionProvider{store: store}
}

// Hydrate loads a previously stored identity. It reports false when the
// session holds no valid identity; a half-written session counts as none.
func (p *SessionProvider) Hydrate(ctx context.Context) (bool, error) {
	role, okRole, err := p.store.Get(ctx, repository.KeyUserRole)
	if err != nil {
		return false, err
	}
	id, okID, err := p.store.Get(ctx, repository.KeyUserID)
	if err != nil {
		return false, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	r := model.UserRole(role)
	if !okRole || !okID || id == "" || !r.Valid() {
		p.identity = nil
		return false, nil
	}
	p.identity = &model.Identity{Role: r, UserID: id}
	return true, nil
}

// Login replaces any current identity.
func (p *SessionProvider) Login(ctx context.Context, role model.UserRole, userID string) error {
	if !role.Valid() {
		return util.ErrInvalidRole
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return &util.ValidationError{Field: "userId", Rule: "required"}
	}

	if err := p.store.Set(ctx, repository.KeyUserRole, string(role)); err != nil {
		return err
	}
	if err := p.store.Set(ctx, repository.KeyUserID, userID); err != nil {
		// never leave a role without an id behind
		_ = p.store.Remove(ctx, repository.KeyUserRole)
		return err
	}

	p.mu.Lock()
	p.identity = &model.Identity{Role: role, UserID: userID}
	p.mu.Unlock()
	return nil
}

// Logout is idempotent.
func (p *SessionProvider) Logout(ctx context.Context) error {
	p.mu.Lock()
	p.identity = nil
	p.mu.Unlock()

	if err := p.store.Remove(ctx, repository.KeyUserRole); err != nil {
		return err
	}
	return p.store.Remove(ctx, repository.KeyUserID)
}

func (p *SessionProvider) Authenticated() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.identity != nil
}

func (p *SessionProvider) Identity() (model.Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.identity == nil {
		return model.Identity{}, util.ErrNotAuthenticated
	}
	return *p.identity, nil
}

// MustIdentity panics when used outside an authenticated session. Reaching
// it unauthenticated is a wiring bug, not a user error.
func (p *SessionProvider) MustIdentity() model.Identity {
	id, err := p.Identity()
	if err != nil {
		panic(fmt.Sprintf("session identity used outside a provider: %v", err))
	}
	return id
}

// SessionService issues and resolves sessions. Each login gets its own
// session id; the token only names the session, the store decides whether
// it is still live.
type SessionService struct {
	Store  kvstore.Store
	Config *config.JWTConfig
}

func NewSessionService(store kvstore.Store, cfg *config.JWTConfig) *SessionService {
	return &SessionService{Store: store, Config: cfg}
}

type LoginRequest struct {
	Role   model.UserRole `json:"role" validate:"required,oneof=student teacher"`
	UserID string         `json:"userId"`
}

type LoginResponse struct {
	Token    string         `json:"token"`
	Identity model.Identity `json:"identity"`
}

// Provider returns the provider of session sid.
func (s *SessionService) Provider(sid string) *SessionProvider {
	return NewSessionProvider(kvstore.Prefixed(s.Store, repository.SessionPrefix(sid)))
}

// Login starts a new session. Without a user id the demo id of the role
// is used.
func (s *SessionService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := validateStruct(req); err != nil {
		if verr, ok := err.(*util.ValidationError); ok && verr.Rule == "oneof" {
			return nil, util.ErrInvalidRole
		}
		return nil, err
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = string(req.Role) + "_001"
	}

	sid := uuid.NewString()
	if err := s.Provider(sid).Login(ctx, req.Role, userID); err != nil {
		return nil, err
	}

	id := model.Identity{Role: req.Role, UserID: userID}
	token, err := util.GenerateJWT(sid, id, s.Config.Secret, s.Config.ExpireTime)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("session started",
		zap.String("role", string(id.Role)),
		zap.String("userId", id.UserID),
	)
	return &LoginResponse{Token: token, Identity: id}, nil
}

// Resume hydrates the session named by claims. A session that was logged
// out, or whose stored identity no longer matches the token, is rejected.
func (s *SessionService) Resume(ctx context.Context, claims *util.Claims) (*SessionProvider, error) {
	p := s.Provider(claims.SessionID)
	ok, err := p.Hydrate(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrNotAuthenticated
	}
	id := p.MustIdentity()
	if id.Role != claims.Role || id.UserID != claims.UserID {
		return nil, util.ErrNotAuthenticated
	}
	return p, nil
}

func (s *SessionService) Logout(ctx context.Context, sid string) error {
	return s.Provider(sid).Logout(ctx)
}
