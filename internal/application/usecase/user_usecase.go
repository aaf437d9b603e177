package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/notify"
	"github.com/jhoicas/dolphnet-api/internal/application/ports"
	"github.com/jhoicas/dolphnet-api/internal/application/shell"
	"github.com/jhoicas/dolphnet-api/internal/domain/collection"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
	"github.com/jhoicas/dolphnet-api/pkg/money"
)

// AdminView copia de sesión del panel de administración: usuarios y log del sistema.
type AdminView struct {
	Users []entity.Identity
	Logs  []entity.SystemLog
}

// AdminUseCase panel de administración: gestión de usuarios y log del sistema.
type AdminUseCase struct {
	users    repository.IdentityRepository
	logs     repository.SystemLogRepository
	views    repository.ViewRepository[AdminView]
	notifier *notify.Service
	metrics  ports.MetricsRecorder
	now      func() time.Time
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(
	users repository.IdentityRepository,
	logs repository.SystemLogRepository,
	views repository.ViewRepository[AdminView],
	notifier *notify.Service,
	metrics ports.MetricsRecorder,
) *AdminUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &AdminUseCase{users: users, logs: logs, views: views, notifier: notifier, metrics: metrics, now: time.Now}
}

func (uc *AdminUseCase) seed() AdminView {
	return AdminView{Users: uc.users.List(), Logs: uc.logs.List()}
}

// Dashboard página de administración calculada sobre la copia de la sesión.
func (uc *AdminUseCase) Dashboard(s entity.Session) *dto.AdminPanelResponse {
	return uc.page(s, uc.views.Load(s.ID, uc.seed))
}

// GetUser fila de un usuario de la copia de la sesión.
func (uc *AdminUseCase) GetUser(s entity.Session, id string) (*dto.AdminUserRow, error) {
	u, err := collection.Find(uc.views.Load(s.ID, uc.seed).Users, id)
	if err != nil {
		return nil, fmt.Errorf("usuario: %w", err)
	}
	row := toAdminUserRow(u)
	return &row, nil
}

// ToggleActive invierte IsActive del usuario y antepone la entrada correspondiente al log.
func (uc *AdminUseCase) ToggleActive(s entity.Session, userID string) (*dto.ActionResponse[*dto.AdminPanelResponse], error) {
	var target entity.Identity
	view, err := uc.views.Update(s.ID, uc.seed, func(cur AdminView) (AdminView, error) {
		users, u, err := collection.Replace(cur.Users, userID, func(u entity.Identity) (entity.Identity, error) {
			u.IsActive = !u.IsActive
			return u, nil
		})
		if err != nil {
			return cur, err
		}
		target = u
		entry := entity.SystemLog{
			ID:        "log-" + uuid.NewString(),
			Type:      entity.LogUser,
			Action:    fmt.Sprintf("User %s %s", u.Name, statusVerb(u.IsActive)),
			Timestamp: uc.now().UTC(),
			Level:     entity.LevelInfo,
		}
		return AdminView{Users: users, Logs: collection.Prepend(cur.Logs, entry)}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("usuario: %w", err)
	}

	verb := statusVerb(target.IsActive)
	n := uc.notifier.Push(s.ID, "User "+verb, fmt.Sprintf("User %s has been %s.", target.Name, verb), entity.VariantDefault)
	uc.metrics.TransitionRecorded("admin", "toggle_active")
	return &dto.ActionResponse[*dto.AdminPanelResponse]{Notification: notify.ToDTO(n), Page: uc.page(s, view)}, nil
}

// statusVerb verbo del log según el estado resultante.
func statusVerb(active bool) string {
	if active {
		return "activated"
	}
	return "deactivated"
}

func (uc *AdminUseCase) page(s entity.Session, v AdminView) *dto.AdminPanelResponse {
	alerts := collection.CountWhere(v.Logs, func(l entity.SystemLog) bool { return l.Level == entity.LevelError })

	users := make([]dto.AdminUserRow, 0, len(v.Users))
	for _, u := range v.Users {
		users = append(users, toAdminUserRow(u))
	}
	logs := make([]dto.SystemLogRow, 0, len(v.Logs))
	for _, l := range v.Logs {
		logs = append(logs, dto.SystemLogRow{
			ID:        l.ID,
			Type:      string(l.Type),
			Action:    l.Action,
			Timestamp: l.Timestamp,
			Level:     string(l.Level),
		})
	}
	return &dto.AdminPanelResponse{
		ShellDTO: shell.Build(s.Identity, navigation.PathAdminPanel),
		Stats: []dto.StatCard{
			{Title: "Total Users", Value: money.Count(len(v.Users)), Hint: "Across all roles", Icon: "users"},
			{Title: "System Alerts", Value: money.Count(alerts), Hint: "Require attention", Icon: "shield-alert"},
			{Title: "Database Status", Value: "Healthy", Hint: "Last checked: 2 mins ago", Icon: "database"},
			{Title: "API Uptime", Value: "99.9%", Hint: "Last 30 days", Icon: "activity-square"},
		},
		Users: users,
		Logs:  logs,
	}
}

func toAdminUserRow(u entity.Identity) dto.AdminUserRow {
	status := "Inactive"
	if u.IsActive {
		status = "Active"
	}
	return dto.AdminUserRow{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Avatar:    u.AvatarURL(),
		IsActive:  u.IsActive,
		Status:    status,
		LastLogin: u.LastLoginLabel(),
	}
}
