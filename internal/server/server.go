package server

// Server объединяет HTTP-обработчики страницы. Сейчас он один — DashboardServer.
type Server struct {
	DashboardServer
}

func NewServer(
	dashboardServer DashboardServer,
) Server {
	return Server{
		DashboardServer: dashboardServer,
	}
}
