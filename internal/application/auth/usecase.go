package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/notify"
	"github.com/jhoicas/dolphnet-api/internal/application/ports"
	"github.com/jhoicas/dolphnet-api/internal/application/shell"
	"github.com/jhoicas/dolphnet-api/internal/domain"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
	"github.com/jhoicas/dolphnet-api/pkg/jwt"
	"github.com/jhoicas/dolphnet-api/pkg/logger"
)

// TempUserID ID de las identidades sintetizadas cuando el email no coincide con el seed.
const TempUserID = "temp-user-id"

// SessionConfig configuración de los tokens de sesión.
type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	Issuer     string
	LoginDelay time.Duration
}

// ViewResetter descarta las copias locales de dashboard de una sesión.
type ViewResetter interface {
	Reset(sessionID string)
}

// AuthUseCase casos de uso de sesión: login sin verificación, logout, recarga y validación del token.
type AuthUseCase struct {
	identities repository.IdentityRepository
	sessions   repository.SessionRepository
	notifier   *notify.Service
	metrics    ports.MetricsRecorder
	views      []ViewResetter
	cfg        SessionConfig
	log        *logger.Logger

	group singleflight.Group
	now   func() time.Time
}

// NewAuthUseCase construye el caso de uso de sesión. views son los dashboards cuyas copias
// se descartan al cerrar o recargar la sesión.
func NewAuthUseCase(
	identities repository.IdentityRepository,
	sessions repository.SessionRepository,
	notifier *notify.Service,
	metrics ports.MetricsRecorder,
	cfg SessionConfig,
	log *logger.Logger,
	views ...ViewResetter,
) *AuthUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		identities: identities,
		sessions:   sessions,
		notifier:   notifier,
		metrics:    metrics,
		views:      views,
		cfg:        cfg,
		log:        log.Named("auth"),
		now:        time.Now,
	}
}

// Login siempre tiene éxito: busca la identidad por email Y rol o sintetiza una a partir del email.
// La sesión se guarda antes de devolver el destino. previousSessionID, si viene, se reemplaza.
// Envíos simultáneos con el mismo TabID comparten un único resultado; la cancelación de uno
// de ellos no afecta a los demás.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, previousSessionID string) (*dto.LoginResponse, error) {
	if in.TabID == "" {
		return uc.login(ctx, in, previousSessionID)
	}
	shared := context.WithoutCancel(ctx)
	ch := uc.group.DoChan(in.TabID, func() (interface{}, error) {
		return uc.login(shared, in, previousSessionID)
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("login cancelado: %w", ctx.Err())
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		if r.Shared {
			uc.log.Debug().Str("tab_id", in.TabID).Msg("login duplicado resuelto con el envío en curso")
		}
		return r.Val.(*dto.LoginResponse), nil
	}
}

func (uc *AuthUseCase) login(ctx context.Context, in dto.LoginRequest, previousSessionID string) (*dto.LoginResponse, error) {
	if err := wait(ctx, uc.cfg.LoginDelay); err != nil {
		return nil, fmt.Errorf("login cancelado: %w", err)
	}

	role := entity.Role(strings.TrimSpace(in.Role))
	if role == "" {
		role = entity.RoleSeller
	}
	email := strings.TrimSpace(in.Email)
	identity, ok := uc.identities.FindByEmailAndRole(email, role)
	if !ok {
		identity = synthesize(email, role)
	}

	if previousSessionID != "" {
		uc.end(previousSessionID)
	}

	now := uc.now()
	session := entity.Session{
		ID:        uuid.NewString(),
		Identity:  identity,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.cfg.TTL),
	}
	if err := uc.sessions.Save(session); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	token, err := jwt.Generate(uc.cfg.Secret, session.ID, identity.ID, string(identity.Role), uc.cfg.Issuer, uc.cfg.TTL)
	if err != nil {
		uc.sessions.Delete(session.ID)
		return nil, fmt.Errorf("generar token: %w", err)
	}

	n := uc.notifier.Push(session.ID, "Login successful!", "Welcome, "+identity.Name+"!", entity.VariantDefault)
	uc.metrics.LoginRecorded(string(role))

	res := navigation.Resolve(role)
	uc.log.Info().
		Str("session_id", session.ID).
		Str("identity_id", identity.ID).
		Str("role", string(role)).
		Str("redirect_to", res.DashboardPath).
		Msg("sesión iniciada")

	return &dto.LoginResponse{
		Token:        token,
		ExpiresAt:    session.ExpiresAt,
		User:         shell.User(identity),
		RedirectTo:   res.DashboardPath,
		Menu:         shell.Menu(navigation.Menu(role, res.DashboardPath)),
		Notification: notify.ToDTO(n),
	}, nil
}

// synthesize identidad para un email sin coincidencia: el nombre es la parte local del email.
func synthesize(email string, role entity.Role) entity.Identity {
	name := email
	if i := strings.Index(email, "@"); i >= 0 {
		name = email[:i]
	}
	if name == "" {
		name = "User"
	}
	return entity.Identity{
		ID:       TempUserID,
		Name:     name,
		Email:    email,
		Role:     role,
		IsActive: true,
	}
}

// Logout elimina la sesión con sus copias de dashboard y avisos. No falla si ya no existe.
func (uc *AuthUseCase) Logout(sessionID string) *dto.LogoutResponse {
	uc.end(sessionID)
	uc.log.Info().Str("session_id", sessionID).Msg("sesión cerrada")
	n := uc.notifier.Build("Logged Out", "You have been successfully logged out", entity.VariantDefault)
	return &dto.LogoutResponse{RedirectTo: navigation.PathLogin, Notification: notify.ToDTO(n)}
}

func (uc *AuthUseCase) end(sessionID string) {
	uc.sessions.Delete(sessionID)
	uc.notifier.Clear(sessionID)
	for _, v := range uc.views {
		v.Reset(sessionID)
	}
}

// Authenticate valida el token y devuelve la sesión viva a la que apunta.
// Un token válido cuya sesión ya se cerró se rechaza. Si el token o la sesión vencieron,
// se descartan también sus copias de dashboard y avisos.
func (uc *AuthUseCase) Authenticate(token string) (entity.Session, error) {
	sessionID, identityID, _, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) && sessionID != "" {
			uc.expire(sessionID)
		}
		return entity.Session{}, fmt.Errorf("token: %v: %w", err, domain.ErrSessionRequired)
	}
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		// Get elimina la sesión vencida; sus copias se descartan aquí.
		uc.end(sessionID)
		return entity.Session{}, err
	}
	if session.Identity.ID != identityID {
		return entity.Session{}, fmt.Errorf("token no corresponde a la sesión: %w", domain.ErrSessionRequired)
	}
	return session, nil
}

// Sweep cierra las sesiones vencidas con sus copias de dashboard y avisos.
// Devuelve cuántas se cerraron.
func (uc *AuthUseCase) Sweep() int {
	ids := uc.sessions.DeleteExpired(uc.now())
	for _, id := range ids {
		uc.expire(id)
	}
	if len(ids) > 0 {
		uc.log.Info().Int("sessions", len(ids)).Msg("sesiones vencidas cerradas")
	}
	return len(ids)
}

// RunSweeper ejecuta Sweep cada interval hasta que ctx se cancela.
func (uc *AuthUseCase) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			uc.Sweep()
		}
	}
}

func (uc *AuthUseCase) expire(sessionID string) {
	uc.end(sessionID)
	uc.log.Debug().Str("session_id", sessionID).Msg("sesión vencida")
}

// Current sesión viva por ID.
func (uc *AuthUseCase) Current(sessionID string) (*dto.SessionResponse, error) {
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	res := navigation.Resolve(session.Identity.Role)
	return &dto.SessionResponse{
		SessionID:  session.ID,
		User:       shell.User(session.Identity),
		RedirectTo: res.DashboardPath,
		Menu:       shell.Menu(navigation.Menu(session.Identity.Role, res.DashboardPath)),
		CreatedAt:  session.CreatedAt,
		ExpiresAt:  session.ExpiresAt,
	}, nil
}

// Reload descarta las copias locales de la sesión, como una recarga del navegador.
// La sesión se conserva.
func (uc *AuthUseCase) Reload(sessionID string) (*dto.ReloadResponse, error) {
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	for _, v := range uc.views {
		v.Reset(sessionID)
	}
	uc.log.Debug().Str("session_id", sessionID).Msg("copias locales descartadas")
	return &dto.ReloadResponse{RedirectTo: navigation.Resolve(session.Identity.Role).DashboardPath}, nil
}

// Notifications avisos vivos de la sesión.
func (uc *AuthUseCase) Notifications(sessionID string) *dto.NotificationListResponse {
	return &dto.NotificationListResponse{Items: notify.ListToDTO(uc.notifier.Live(sessionID))}
}

// IsSessionError informa si err significa "sin sesión".
func IsSessionError(err error) bool {
	return errors.Is(err, domain.ErrSessionRequired)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
