package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/domain"
)

type contextKey string

const userTypeKey contextKey = "userType"

const msgUnauthorized = "требуется авторизация администратора"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// BasicAuth проверяет HTTP Basic авторизацию администратора
// Учетные данные сравниваются в константное время
type BasicAuth struct {
	username string
	password string
	logger   Logger
}

// NewBasicAuth создает middleware авторизации админки
func NewBasicAuth(username, password string, logger Logger) *BasicAuth {
	return &BasicAuth{
		username: username,
		password: password,
		logger:   logger,
	}
}

// Middleware оборачивает обработчик проверкой Basic auth
// Успешная авторизация помечает контекст ролью админа
func (a *BasicAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !a.credentialsMatch(user, pass) {
			a.logger.Warn("%s %s - unauthorized admin request", r.Method, r.URL.Path)
			w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserType(r.Context(), domain.UserTypeAdmin)))
	})
}

func (a *BasicAuth) credentialsMatch(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(a.password)) == 1
	return userOK && passOK
}

// WithUserType помечает контекст ролью вызывающего
func WithUserType(ctx context.Context, userType domain.UserType) context.Context {
	return context.WithValue(ctx, userTypeKey, userType)
}

// UserTypeFromContext возвращает роль вызывающего
// Без авторизации любая заявленная роль понижается до клиента
func UserTypeFromContext(ctx context.Context) domain.UserType {
	if v, ok := ctx.Value(userTypeKey).(domain.UserType); ok && v.Valid() {
		return v
	}
	return domain.UserTypeCustomer
}
