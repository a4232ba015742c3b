package server

// Server объединяет HTTP-серверы отдельных сущностей. Пока есть только настройки и пробная оценка.
type Server struct {
	SettingsServer
}

func NewServer(
	settingsServer SettingsServer,
) Server {
	return Server{
		SettingsServer: settingsServer,
	}
}
