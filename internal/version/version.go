package version

import "fmt"

// Заполняются через -ldflags "-X github.com/vladislavdragonenkov/cart/internal/version.version=...".
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Info возвращает версию, коммит и дату сборки.
func Info() (v, c, d string) { return version, commit, date }

// GetVersion возвращает версию сборки; её же отдаёт /healthz.
func GetVersion() string { return version }

// GetCommit возвращает хеш коммита, из которого собран бинарник.
func GetCommit() string { return commit }

// GetDate возвращает дату сборки.
func GetDate() string { return date }

// String форматирует сведения о сборке для логов при старте cart-service.
func String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s", version, commit, date)
}
